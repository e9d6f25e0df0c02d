package reconcile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrRateUnavailable is returned when a currency pair cannot be converted.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// Normalizer expresses amounts in a common currency using an injected RateProvider.
type Normalizer struct {
	rates RateProvider
}

// NewNormalizer creates a Normalizer backed by rates. A nil provider
// converts only between identical currencies.
func NewNormalizer(rates RateProvider) *Normalizer {
	return &Normalizer{rates: rates}
}

// Convert returns amount expressed in the to currency.
// Identical codes (case-insensitive) are returned unchanged.
func (n *Normalizer) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if strings.EqualFold(from, to) {
		return amount, nil
	}
	if n.rates == nil {
		return decimal.Zero, fmt.Errorf("%w: %s to %s", ErrRateUnavailable, from, to)
	}

	converted, err := n.rates.Convert(amount, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s to %s: %v", ErrRateUnavailable, from, to, err)
	}
	return converted, nil
}
