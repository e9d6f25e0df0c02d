package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ToString converts various types to a trimmed string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []byte:
		return strings.TrimSpace(string(v))
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// ToDecimal converts various types to a decimal amount.
// Unparseable input yields zero, matching how dispute files treat malformed amounts.
func ToDecimal(val any) decimal.Decimal {
	switch v := val.(type) {
	case decimal.Decimal:
		return v
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	default:
		d, err := decimal.NewFromString(ToString(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	}
}

// ParseDecimal is ToDecimal for strings, reporting whether the input was valid.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// DefaultString returns s trimmed, or fallback when s is blank.
func DefaultString(s, fallback string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return fallback
}
