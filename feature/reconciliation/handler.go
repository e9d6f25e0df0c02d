package reconciliation

import (
	"bytes"

	"dispute-reconciler/core/logger"
	"dispute-reconciler/feature/fileio"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/reconcile", h.HandleReconcile)
	app.Get("/reconcile/reports", h.HandleReports)
}

// HandleReconcile reconciles the posted external disputes against the store.
// @Summary Reconcile Disputes
// @Description Reconciles an external dispute file (JSON by default) against the internal store. The result is returned as JSON unless output selects csv or yaml.
// @Tags reconciliation
// @Accept json
// @Accept text/csv
// @Accept application/xml
// @Produce json
// @Param format query string false "Input format (json, csv, xml, yaml)"
// @Param output query string false "Output format (json, csv, yaml)"
// @Success 200 {object} reconcile.Result
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	in, err := fileio.ParseFormat(c.Query("format", "json"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	out, err := fileio.ParseFormat(c.Query("output", "json"))
	if err == nil && !out.CanWrite() {
		err = fileio.ErrUnsupportedFormat
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	external, err := fileio.Decode(in, bytes.NewReader(c.Body()))
	if err != nil {
		l.Warn("Rejected reconcile input", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input", "details": err.Error()})
	}

	result, err := h.service.ReconcileRecords(c.UserContext(), external)
	if err != nil {
		l.Error("Reconcile failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Reconcile completed",
		zap.String("run_id", result.RunID),
		zap.Int("discrepancies", result.Summary.TotalDiscrepancies))

	if out == fileio.FormatJSON {
		return c.JSON(result)
	}
	data, err := h.service.Render(result, out)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, out.ContentType())
	return c.Send(data)
}

// HandleReports lists published reports.
// @Summary List Published Reports
// @Description Lists report keys published to object storage. Empty when publishing is disabled.
// @Tags reconciliation
// @Produce json
// @Success 200 {array} string
// @Failure 502 {object} map[string]string "Storage error"
// @Router /reconcile/reports [get]
func (h *Handler) HandleReports(c *fiber.Ctx) error {
	keys, err := h.service.Reports(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list reports", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	if keys == nil {
		keys = []string{}
	}
	return c.JSON(keys)
}
