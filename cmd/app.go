package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"dispute-reconciler/core/config"
	"dispute-reconciler/core/database"
	"dispute-reconciler/core/logger"
	"dispute-reconciler/core/reconcile"
	"dispute-reconciler/core/storage"
	"dispute-reconciler/feature/alerts"
	"dispute-reconciler/feature/disputes"
	"dispute-reconciler/feature/fileio"
	"dispute-reconciler/feature/rates"
	"dispute-reconciler/feature/reconciliation"

	"go.uber.org/zap"
)

// app holds the wired dependencies shared by every command.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	store   *disputes.Store
	rates   *rates.Provider
	alerts  *alerts.Service
	engine  *reconcile.Engine
	service *reconciliation.Service
}

// loadConfig reads configuration and applies the --verbose override.
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// newApp wires configuration, logging, the dispute store, rates, alerts,
// report publishing and the engine. overrides run after config is loaded.
func newApp(ctx context.Context, overrides ...func(*config.Config)) (*app, error) {
	cfg, l, err := loadConfig()
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(cfg)
	}

	store, err := openStore(ctx, cfg.Database, l)
	if err != nil {
		return nil, err
	}

	provider, err := newRateProvider(cfg, l)
	if err != nil {
		return nil, err
	}

	var console io.Writer
	if cfg.Alerts.Console {
		console = os.Stdout
	}
	alertSvc := alerts.NewService(console, l, cfg.Alerts.History)

	// Left as a nil interface when publishing is off.
	var publisher reconciliation.ReportPublisher
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		publisher = storage.NewPublisher(client, cfg.Storage.Bucket, cfg.Storage.Prefix)
		l.Info("Publishing reports", zap.String("bucket", cfg.Storage.Bucket), zap.String("prefix", cfg.Storage.Prefix))
	}

	opts, err := cfg.Reconcile.EngineOptions()
	if err != nil {
		return nil, err
	}
	engine := reconcile.NewEngine(provider, alertSvc, l, opts)

	return &app{
		cfg:     cfg,
		log:     l,
		store:   store,
		rates:   provider,
		alerts:  alertSvc,
		engine:  engine,
		service: reconciliation.NewService(engine, store, fileio.NewFiles(l), publisher, l),
	}, nil
}

// newRateProvider uses the configured rate file, or the built-in table.
func newRateProvider(cfg *config.Config, l *zap.Logger) (*rates.Provider, error) {
	if cfg.Rates.File == "" {
		return rates.NewProvider(rates.DefaultTable(), l), nil
	}
	table, err := rates.LoadTable(cfg.Rates.File)
	if err != nil {
		return nil, err
	}
	l.Info("Loaded exchange rates", zap.String("file", cfg.Rates.File), zap.Int("count", table.Len()))
	return rates.NewProvider(table, l), nil
}

// openStore connects to the database, migrates and optionally seeds the store.
func openStore(ctx context.Context, cfg database.Config, l *zap.Logger) (*disputes.Store, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	l.Info("Connected to dispute database", zap.String("driver", cfg.Driver))

	store := disputes.NewStore(db, l)
	if err := store.Migrate(ctx); err != nil {
		return nil, err
	}
	if err := store.VerifySchema(); err != nil {
		return nil, err
	}
	if cfg.Seed {
		if _, err := store.Seed(ctx); err != nil {
			return nil, err
		}
	}
	return store, nil
}
