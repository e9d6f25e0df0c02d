package rates

import (
	"testing"

	"dispute-reconciler/core/reconcile"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ reconcile.RateProvider = (*Provider)(nil)

func TestProvider_Convert(t *testing.T) {
	inverseOnly := NewTable(map[string]decimal.Decimal{"USD_EUR": decimal.RequireFromString("0.85")})

	tests := []struct {
		name  string
		table *Table
		in    string
		from  string
		to    string
		want  string
	}{
		{"SameCurrency", nil, "42", "usd", "USD", "42"},
		{"Direct", nil, "100", "USD", "EUR", "85"},
		{"DirectLowercase", nil, "100", "gbp", "usd", "137"},
		{"Inverse", inverseOnly, "85", "EUR", "USD", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProvider(tt.table, nil)
			got, err := p.Convert(decimal.RequireFromString(tt.in), tt.from, tt.to)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}

	t.Run("Unsupported", func(t *testing.T) {
		_, err := NewProvider(nil, nil).Convert(decimal.NewFromInt(1), "USD", "JPY")
		assert.ErrorIs(t, err, ErrUnsupportedPair)
	})
}

func TestProvider_Rate(t *testing.T) {
	p := NewProvider(NewTable(map[string]decimal.Decimal{"USD_EUR": decimal.RequireFromString("0.5")}), nil)

	r, err := p.Rate("EUR", "eur")
	require.NoError(t, err)
	assert.Equal(t, "1", r.String())

	r, err = p.Rate("USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, "0.5", r.String())

	r, err = p.Rate("EUR", "USD")
	require.NoError(t, err)
	assert.True(t, r.Equal(decimal.NewFromInt(2)))

	_, err = p.Rate("EUR", "JPY")
	assert.ErrorIs(t, err, ErrUnsupportedPair)
}

func TestProvider_WithNormalizer(t *testing.T) {
	inverseOnly := NewTable(map[string]decimal.Decimal{"USD_EUR": decimal.RequireFromString("0.85")})
	n := reconcile.NewNormalizer(NewProvider(inverseOnly, nil))

	got, err := n.Convert(decimal.NewFromInt(85), "EUR", "USD")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(100)))

	_, err = n.Convert(decimal.NewFromInt(1), "EUR", "JPY")
	assert.ErrorIs(t, err, reconcile.ErrRateUnavailable)
}
