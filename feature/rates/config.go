package rates

// Config selects the exchange-rate table source.
type Config struct {
	// File is an optional YAML rate table. Empty uses the built-in table.
	File string `mapstructure:"file" default:""`
}
