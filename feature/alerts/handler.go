package alerts

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes recent alerts over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the alert routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/alerts", h.HandleRecent)
}

// HandleRecent returns the most recent alerts.
// @Summary Recent Alerts
// @Description Lists alerts raised by recent reconciliation runs, oldest first.
// @Tags alerts
// @Produce json
// @Success 200 {array} alerts.Alert
// @Router /alerts [get]
func (h *Handler) HandleRecent(c *fiber.Ctx) error {
	return c.JSON(h.service.Recent())
}
