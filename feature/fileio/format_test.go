package fileio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"in.csv", FormatCSV},
		{"IN.CSV", FormatCSV},
		{"/tmp/x.Json", FormatJSON},
		{"a.b.xml", FormatXML},
		{"d.yaml", FormatYAML},
		{"d.yml", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"in.txt", "noext", "dir.csv/file"} {
		_, err := DetectFormat(bad)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, bad)
	}
}

func TestDetectOutputFormat(t *testing.T) {
	_, err := DetectOutputFormat("out.xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	f, err := DetectOutputFormat("out.json")
	require.NoError(t, err)
	assert.Equal(t, "application/json", f.ContentType())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat(".yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "XML", FormatXML.String())
	assert.Equal(t, "Format(9)", Format(9).String())
	assert.False(t, FormatXML.CanWrite())
	assert.Equal(t, ".yaml", FormatYAML.Extension())
}
