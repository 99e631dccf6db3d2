package health

import (
	"unit-converter/core/metrics"

	"github.com/gofiber/fiber/v2"

	_ "unit-converter/docs/swagger"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new Health feature.
func NewFeature(cfg metrics.Config, m *metrics.Metrics) *Feature {
	return &Feature{handler: NewHandler(cfg, m)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "health"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
