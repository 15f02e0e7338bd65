package checker

import (
	"codecheck/feature/checker/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Feature wires the checker into the feature loader.
type Feature struct {
	service *Service
}

// NewFeature creates the checker feature.
func NewFeature(fsys afero.Fs, manifest checks.Manifest, logger *zap.Logger) *Feature {
	return &Feature{service: NewService(fsys, manifest, logger)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "checker"
}

// IsEnabled reports whether the feature is active.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the checker routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
