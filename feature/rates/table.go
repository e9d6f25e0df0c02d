package rates

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/shopspring/decimal"
)

// Table is an immutable set of directional exchange rates keyed "FROM_TO".
type Table struct {
	rates map[string]decimal.Decimal
}

// tableFile is the on-disk shape of a rate table.
type tableFile struct {
	Rates map[string]string `yaml:"rates"`
}

// NewTable builds a table from FROM_TO keys. Keys are upper-cased.
func NewTable(rates map[string]decimal.Decimal) *Table {
	t := &Table{rates: make(map[string]decimal.Decimal, len(rates))}
	for k, v := range rates {
		t.rates[strings.ToUpper(strings.TrimSpace(k))] = v
	}
	return t
}

// DefaultTable returns the built-in rates.
func DefaultTable() *Table {
	return NewTable(map[string]decimal.Decimal{
		"USD_EUR": decimal.RequireFromString("0.85"),
		"EUR_USD": decimal.RequireFromString("1.18"),
		"USD_GBP": decimal.RequireFromString("0.73"),
		"GBP_USD": decimal.RequireFromString("1.37"),
		"EUR_GBP": decimal.RequireFromString("0.86"),
		"GBP_EUR": decimal.RequireFromString("1.16"),
	})
}

// LoadTable reads a YAML rate table of the form:
//
//	rates:
//	  USD_EUR: "0.85"
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate table %s: %w", path, err)
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rate table %s: %w", path, err)
	}

	rates := make(map[string]decimal.Decimal, len(file.Rates))
	for key, raw := range file.Rates {
		if _, _, ok := splitKey(key); !ok {
			return nil, fmt.Errorf("invalid rate key %q: expected FROM_TO", key)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid rate %s=%q: %w", key, raw, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("invalid rate %s=%s: must be positive", key, raw)
		}
		rates[key] = rate
	}
	return NewTable(rates), nil
}

// Lookup returns the direct rate for from->to.
func (t *Table) Lookup(from, to string) (decimal.Decimal, bool) {
	r, ok := t.rates[key(from, to)]
	return r, ok
}

// Entries returns all rates sorted by key.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.rates))
	for k, v := range t.rates {
		from, to, _ := splitKey(k)
		out = append(out, Entry{Pair: k, From: from, To: to, Rate: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pair < out[j].Pair })
	return out
}

// Len returns the number of configured rates.
func (t *Table) Len() int {
	return len(t.rates)
}

// Entry is one directional rate.
type Entry struct {
	Pair string          `json:"pair"`
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}

func key(from, to string) string {
	return strings.ToUpper(strings.TrimSpace(from)) + "_" + strings.ToUpper(strings.TrimSpace(to))
}

func splitKey(k string) (string, string, bool) {
	from, to, ok := strings.Cut(strings.ToUpper(strings.TrimSpace(k)), "_")
	if !ok || from == "" || to == "" {
		return "", "", false
	}
	return from, to, true
}
