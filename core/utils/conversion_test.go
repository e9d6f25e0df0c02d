package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"String", " 100.50 ", "100.5"},
		{"Bytes", []byte("7"), "7"},
		{"Int", 42, "42"},
		{"Float", 1.25, "1.25"},
		{"Garbage", "abc", "0"},
		{"Empty", "", "0"},
		{"Nil", nil, "0"},
		{"Decimal", decimal.RequireFromString("3.14"), "3.14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToDecimal(tt.in).String())
		})
	}
}

func TestParseDecimal(t *testing.T) {
	d, ok := ParseDecimal("12.30")
	assert.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("12.3")))

	_, ok = ParseDecimal("12,30")
	assert.False(t, ok)
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "USD", ToString("  USD "))
	assert.Equal(t, "12", ToString(12))
}

func TestDefaultString(t *testing.T) {
	assert.Equal(t, "USD", DefaultString("  ", "USD"))
	assert.Equal(t, "EUR", DefaultString(" EUR", "USD"))
}
