package disputes

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   *Store
	handler *Handler
}

// NewFeature creates the disputes feature. A nil store disables it.
func NewFeature(store *Store) *Feature {
	f := &Feature{store: store}
	if store != nil {
		f.handler = NewHandler(store)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "disputes"
}

// IsEnabled reports whether a store is available.
func (f *Feature) IsEnabled() bool {
	return f.store != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
