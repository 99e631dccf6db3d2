package health

import (
	"unit-converter/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Handler serves operational endpoints.
type Handler struct {
	metrics *metrics.Metrics
	cfg     metrics.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(cfg metrics.Config, m *metrics.Metrics) *Handler {
	return &Handler{metrics: m, cfg: cfg}
}

// RegisterRoutes registers the health, metrics and documentation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/healthz", h.HandleHealth)
	if h.cfg.Enabled && h.metrics != nil {
		app.Get(h.cfg.Path, h.metrics.Handler())
	}
	app.Get("/swagger/*", swagger.HandlerDefault)
}

// HandleHealth reports liveness.
// @Summary Health Check
// @Description Liveness probe. The service has no dependencies, so it is ready as soon as it listens.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Service is up"
// @Router /healthz [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
