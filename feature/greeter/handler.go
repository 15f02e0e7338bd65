package greeter

import (
	"codecheck/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Greeting is the response body served on the root path.
const Greeting = "Hello World!"

// Handler handles HTTP requests for the greeter.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// RegisterRoutes registers the greeter route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleGreeting)
}

// HandleGreeting serves the static greeting.
// @Summary Greeting
// @Description Returns the static greeting. Query parameters and headers are ignored.
// @Tags greeter
// @Produce plain
// @Success 200 {string} string "Hello World!"
// @Router / [get]
func (h *Handler) HandleGreeting(c *fiber.Ctx) error {
	logger.WithRayID(h.logger, c).Debug("Serving greeting")
	return c.SendString(Greeting)
}
