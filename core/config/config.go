package config

import (
	"reflect"
	"strings"

	"dispute-reconciler/core/database"
	"dispute-reconciler/core/logger"
	"dispute-reconciler/core/server"
	"dispute-reconciler/core/storage"
	"dispute-reconciler/feature/alerts"
	"dispute-reconciler/feature/rates"
	"dispute-reconciler/feature/reconciliation"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations owned by the packages that use them.
type Config struct {
	// Server holds configuration for the HTTP API.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for publishing reports to object storage.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the internal dispute store.
	Database database.Config `mapstructure:"database"`
	// Reconcile holds engine tuning (worker budget, amount tolerance).
	Reconcile reconciliation.Config `mapstructure:"reconcile"`
	// Rates holds the exchange-rate table source.
	Rates rates.Config `mapstructure:"rates"`
	// Alerts holds the alert sink settings.
	Alerts alerts.Config `mapstructure:"alerts"`
}

// LoadConfig loads configuration from environment variables and an optional .env file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine (e.g. production).
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// RECONCILE_WORKERS -> reconcile.workers
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every mapstructure key with its
// `default` tag so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Set even empty defaults to register the key.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
