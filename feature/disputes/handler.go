package disputes

import (
	"errors"

	"dispute-reconciler/core/logger"
	"dispute-reconciler/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the internal dispute store.
type Handler struct {
	store *Store
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers the dispute routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/disputes")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:id", h.HandleUpdate)
}

// HandleList lists internal disputes.
// @Summary List Disputes
// @Description Lists internal disputes, optionally filtered by status (case-insensitive).
// @Tags disputes
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {array} reconcile.Dispute
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /disputes [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.store.logger, c)

	var (
		list []reconcile.Dispute
		err  error
	)
	if status := c.Query("status"); status != "" {
		list, err = h.store.GetByStatus(c.Context(), status)
	} else {
		list, err = h.store.GetAll(c.Context())
	}
	if err != nil {
		l.Error("Failed to list disputes", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(list)
}

// HandleGet returns a single dispute.
// @Summary Get Dispute
// @Tags disputes
// @Produce json
// @Param id path string true "Dispute ID"
// @Success 200 {object} reconcile.Dispute
// @Failure 404 {object} map[string]string "Not Found"
// @Router /disputes/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	d, err := h.store.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if d == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "dispute not found"})
	}
	return c.JSON(d)
}

// HandleCreate adds a dispute.
// @Summary Create Dispute
// @Tags disputes
// @Accept json
// @Produce json
// @Param dispute body reconcile.Dispute true "Dispute"
// @Success 201 {object} reconcile.Dispute
// @Failure 400 {object} map[string]string "Invalid body"
// @Failure 409 {object} map[string]string "Already exists"
// @Router /disputes [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.store.logger, c)

	var d reconcile.Dispute
	if err := c.BodyParser(&d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body", "details": err.Error()})
	}
	if d.DisputeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "dispute_id is required"})
	}

	if err := h.store.Add(c.Context(), d); err != nil {
		if errors.Is(err, ErrExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Failed to add dispute", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Dispute added", zap.String("dispute_id", d.DisputeID))
	return c.Status(fiber.StatusCreated).JSON(d)
}

// HandleUpdate replaces a dispute.
// @Summary Update Dispute
// @Tags disputes
// @Accept json
// @Produce json
// @Param id path string true "Dispute ID"
// @Param dispute body reconcile.Dispute true "Dispute"
// @Success 200 {object} reconcile.Dispute
// @Failure 404 {object} map[string]string "Not Found"
// @Router /disputes/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.store.logger, c)

	var d reconcile.Dispute
	if err := c.BodyParser(&d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body", "details": err.Error()})
	}
	d.DisputeID = c.Params("id")

	updated, err := h.store.Update(c.Context(), d)
	if err != nil {
		l.Error("Failed to update dispute", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !updated {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "dispute not found"})
	}
	return c.JSON(d)
}
