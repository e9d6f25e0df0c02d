// Package config provides configuration management for the dispute reconciler.
//
// It uses Viper to read environment variables (optionally seeded from a .env
// file via godotenv). Defaults come from `default` struct tags on each section.
//
// # Configuration Structure
//
//   - Server: HTTP API port and API key
//   - Storage: S3/MinIO settings for publishing reports
//   - Log: logging level and format
//   - Database: internal dispute store connection (sqlite or mysql)
//   - Reconcile: worker budget and amount tolerance
//   - Rates: optional YAML exchange-rate table
//   - Alerts: alert sink output
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Reconcile.Workers)
package config
