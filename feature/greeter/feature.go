package greeter

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the greeter into the feature loader.
type Feature struct {
	logger *zap.Logger
}

// NewFeature creates the greeter feature.
func NewFeature(logger *zap.Logger) *Feature {
	return &Feature{logger: logger}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "greeter"
}

// IsEnabled reports whether the feature is active.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the greeter route.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.logger).RegisterRoutes(app)
	return nil
}
