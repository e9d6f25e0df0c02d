package rates

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrUnsupportedPair is returned when neither the direct nor the inverse rate exists.
var ErrUnsupportedPair = errors.New("currency conversion not supported")

// divisionPrecision keeps inverse conversions stable for cent-level comparisons.
const divisionPrecision = 16

// Provider converts amounts using a rate Table.
// It is read-only after construction and safe for concurrent use.
type Provider struct {
	table  *Table
	logger *zap.Logger
}

// NewProvider creates a provider over table. A nil table uses DefaultTable.
func NewProvider(table *Table, logger *zap.Logger) *Provider {
	if table == nil {
		table = DefaultTable()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{table: table, logger: logger}
}

// Table returns the underlying rate table.
func (p *Provider) Table() *Table {
	return p.table
}

// Convert converts amount from one currency to another.
// The direct rate multiplies; the inverse rate divides.
func (p *Provider) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if strings.EqualFold(from, to) {
		return amount, nil
	}

	if rate, ok := p.table.Lookup(from, to); ok {
		converted := amount.Mul(rate)
		p.logger.Debug("Converted amount",
			zap.String("amount", amount.String()),
			zap.String("from", from),
			zap.String("to", to),
			zap.String("rate", rate.String()),
			zap.String("result", converted.String()))
		return converted, nil
	}

	if rate, ok := p.table.Lookup(to, from); ok {
		converted := amount.DivRound(rate, divisionPrecision)
		p.logger.Debug("Converted amount using inverse rate",
			zap.String("amount", amount.String()),
			zap.String("from", from),
			zap.String("to", to),
			zap.String("rate", rate.String()),
			zap.String("result", converted.String()))
		return converted, nil
	}

	return decimal.Zero, fmt.Errorf("%w: %s to %s", ErrUnsupportedPair, from, to)
}

// Rate returns the multiplier from one currency to another.
func (p *Provider) Rate(from, to string) (decimal.Decimal, error) {
	if strings.EqualFold(from, to) {
		return decimal.NewFromInt(1), nil
	}
	if rate, ok := p.table.Lookup(from, to); ok {
		return rate, nil
	}
	if rate, ok := p.table.Lookup(to, from); ok {
		return decimal.NewFromInt(1).DivRound(rate, divisionPrecision), nil
	}
	return decimal.Zero, fmt.Errorf("%w: %s to %s", ErrUnsupportedPair, from, to)
}
