package fileio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned when no reader or writer handles a path.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format is the closed set of dispute file formats.
type Format int

const (
	FormatCSV Format = iota + 1
	FormatJSON
	FormatXML
	FormatYAML
)

var formatsByExt = map[string]Format{
	".csv":  FormatCSV,
	".json": FormatJSON,
	".xml":  FormatXML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
}

// String returns the upper-case format name used in logs and errors.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "CSV"
	case FormatJSON:
		return "JSON"
	case FormatXML:
		return "XML"
	case FormatYAML:
		return "YAML"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ContentType returns the MIME type for published reports.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatXML:
		return "application/xml"
	case FormatYAML:
		return "application/yaml"
	default:
		return "application/octet-stream"
	}
}

// Extension returns the canonical file extension, with the leading dot.
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatJSON:
		return ".json"
	case FormatXML:
		return ".xml"
	case FormatYAML:
		return ".yaml"
	default:
		return ""
	}
}

// CanWrite reports whether results can be written in this format.
// XML is input-only.
func (f Format) CanWrite() bool {
	return f == FormatCSV || f == FormatJSON || f == FormatYAML
}

// DetectFormat selects a format from the path's extension, case-insensitively.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatsByExt[ext]; ok {
		return f, nil
	}
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// DetectOutputFormat is DetectFormat restricted to writable formats.
func DetectOutputFormat(path string) (Format, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return 0, err
	}
	if !f.CanWrite() {
		return 0, fmt.Errorf("%w: cannot write %s output", ErrUnsupportedFormat, f)
	}
	return f, nil
}

// ParseFormat maps a name like "csv" or "json" to a Format.
func ParseFormat(name string) (Format, error) {
	return DetectFormat("." + strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "."))
}
