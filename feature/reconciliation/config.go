package reconciliation

import (
	"fmt"
	"strings"

	"dispute-reconciler/core/reconcile"

	"github.com/shopspring/decimal"
)

// Config holds engine tuning.
type Config struct {
	// Workers bounds concurrent pair comparisons. 0 means CPU count minus one.
	Workers int `mapstructure:"workers" default:"0"`
	// Tolerance is the largest amount difference treated as rounding noise.
	Tolerance string `mapstructure:"tolerance" default:"0.01"`
}

// EngineOptions converts the config into engine options.
func (c Config) EngineOptions() (reconcile.Options, error) {
	opts := reconcile.Options{Workers: c.Workers}
	if strings.TrimSpace(c.Tolerance) == "" {
		return opts, nil
	}

	tol, err := decimal.NewFromString(strings.TrimSpace(c.Tolerance))
	if err != nil {
		return opts, fmt.Errorf("invalid reconcile tolerance %q: %w", c.Tolerance, err)
	}
	if tol.IsNegative() {
		return opts, fmt.Errorf("invalid reconcile tolerance %q: must not be negative", c.Tolerance)
	}
	opts.Tolerance = tol
	return opts, nil
}
