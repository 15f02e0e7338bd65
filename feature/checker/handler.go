package checker

import (
	"errors"
	"io/fs"

	"codecheck/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for structural checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the check routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/checks")
	group.Get("/", h.HandleReport)
	group.Get("/files", h.HandleFiles)
	group.Get("/syntax", h.HandleSyntax)
}

// HandleReport runs a full validation pass.
// @Summary Run All Structural Checks
// @Description Performs the existence, syntax and entry-point checks and returns the full report.
// @Tags checks
// @Accept json
// @Produce json
// @Success 200 {object} checks.Report "Validation Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /checks [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running structural checks")

	report, err := h.service.Run(c.Context())
	if err != nil {
		l.Error("Structural check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Structural checks completed",
		zap.Int("present", report.Present()),
		zap.Int("expected", len(report.Files)),
		zap.Int("issues", report.IssueCount()))

	return c.JSON(report)
}

// HandleFiles runs the existence checks only.
// @Summary Check Expected Files
// @Description Reports per-file existence for the expected file set, skipping syntax checks.
// @Tags checks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "File Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /checks/files [get]
func (h *Handler) HandleFiles(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	files, err := h.service.ListFiles(c.Context())
	if err != nil {
		l.Error("File check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"root":  h.service.Manifest().Root,
		"files": files,
	})
}

// HandleSyntax runs the syntax checks on one file.
// @Summary Check Syntax Of One File
// @Description Runs the brace, parenthesis and package-declaration checks on a single path under the manifest root.
// @Tags checks
// @Accept json
// @Produce json
// @Param path query string true "Path relative to the manifest root"
// @Success 200 {object} map[string]interface{} "Syntax Report"
// @Failure 400 {object} map[string]string "Missing path parameter"
// @Failure 404 {object} map[string]string "File not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /checks/syntax [get]
func (h *Handler) HandleSyntax(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	path := c.Query("path")
	if path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "path query parameter is required"})
	}

	issues, err := h.service.CheckFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Syntax check failed", zap.String("path", path), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"path":   path,
		"issues": issues,
	})
}
