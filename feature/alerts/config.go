package alerts

// Config holds alert sink settings.
type Config struct {
	// Console prints alerts to stdout in addition to the log.
	Console bool `mapstructure:"console" default:"true"`
	// History is how many recent alerts are kept for GET /alerts.
	History int `mapstructure:"history" default:"50"`
}
