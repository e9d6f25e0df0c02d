package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dispute-reconciler/core/loader"
	"dispute-reconciler/core/logger"
	"dispute-reconciler/core/middleware/auth"
	"dispute-reconciler/core/middleware/rayid"
	"dispute-reconciler/feature/alerts"
	"dispute-reconciler/feature/disputes"
	"dispute-reconciler/feature/rates"
	"dispute-reconciler/feature/reconciliation"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "dispute-reconciler/docs/swagger"
)

// @title Dispute Reconciler API
// @version 1.0
// @description API for reconciling external dispute reports against internal records.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the dispute reconciler API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.log.Sync()
		zap.ReplaceGlobals(a.log)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             a.cfg.Server.BodyLimit(),
			ReadTimeout:           a.cfg.Server.ReadTimeout(),
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		mgr := loader.NewManager(a.log)
		mgr.Register(disputes.NewFeature(a.store))
		mgr.Register(rates.NewFeature(a.rates))
		mgr.Register(alerts.NewFeature(a.alerts))
		mgr.Register(reconciliation.NewFeature(a.service))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(a.log, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		errCh := make(chan error, 1)
		go func() {
			a.log.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			errCh <- app.Listen(a.cfg.Server.Address())
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-sig:
			a.log.Info("Shutting down server...")
			return app.Shutdown()
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
