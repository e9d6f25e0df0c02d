package reconciliation

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// errNotConfigured is returned by Load when the service lacks its engine or store.
var errNotConfigured = errors.New("reconciliation service is not configured")

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the reconciliation feature.
func NewFeature(service *Service) *Feature {
	return &Feature{service: service, handler: NewHandler(service)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "reconciliation"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if f.service == nil || f.service.engine == nil || f.service.source == nil {
		return errNotConfigured
	}
	f.handler.RegisterRoutes(app)
	return nil
}
