// Package rates provides the exchange-rate table used to normalize amounts
// before comparison.
//
// A Table is immutable once built, either from the built-in defaults or from a
// YAML file. Provider implements reconcile.RateProvider: the direct rate is
// multiplied, the inverse rate divided, and any other pair fails with
// ErrUnsupportedPair.
//
// # Usage
//
//	table, err := rates.LoadTable("rates.yaml")
//	provider := rates.NewProvider(table, log)
//	usd, err := provider.Convert(decimal.NewFromInt(85), "EUR", "USD")
package rates
