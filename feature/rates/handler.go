package rates

import (
	"errors"

	"dispute-reconciler/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Handler exposes the rate table over HTTP.
type Handler struct {
	provider *Provider
}

// NewHandler creates a new HTTP handler.
func NewHandler(provider *Provider) *Handler {
	return &Handler{provider: provider}
}

// RegisterRoutes registers the rate routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/rates")
	group.Get("/", h.HandleList)
	group.Get("/convert", h.HandleConvert)
}

// HandleList returns the configured rate table.
// @Summary List Exchange Rates
// @Description Returns every configured directional exchange rate.
// @Tags rates
// @Produce json
// @Success 200 {array} rates.Entry
// @Router /rates [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.provider.Table().Entries())
}

// HandleConvert converts an amount between two currencies.
// @Summary Convert Amount
// @Description Converts using the direct rate, falling back to the inverse rate.
// @Tags rates
// @Produce json
// @Param amount query string true "Amount"
// @Param from query string true "Source currency"
// @Param to query string true "Target currency"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 422 {object} map[string]string "Unsupported pair"
// @Router /rates/convert [get]
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	l := logger.WithRayID(h.provider.logger, c)

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid amount"})
	}
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from and to are required"})
	}

	converted, err := h.provider.Convert(amount, from, to)
	if errors.Is(err, ErrUnsupportedPair) {
		l.Warn("Unsupported conversion requested", zap.String("from", from), zap.String("to", to))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"amount": amount.String(),
		"from":   from,
		"to":     to,
		"result": converted.StringFixed(2),
	})
}
