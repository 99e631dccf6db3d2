package conversion

import (
	"encoding/json"
	"errors"
	"fmt"

	"unit-converter/core/logger"
	"unit-converter/core/units"
	"unit-converter/feature/conversion/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for conversions and the unit catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the conversion routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/convert", h.HandleConvert)
	app.Get("/units", h.HandleListUnits)
	app.Get("/units/:category", h.HandleCategoryUnits)
}

// HandleConvert converts a value between two units of a category.
// @Summary Convert Value
// @Description Converts a value from one unit to another within a category. The result is rounded to 6 decimal places.
// @Tags conversion
// @Accept json
// @Produce json
// @Param request body models.ConvertRequest true "Conversion request"
// @Success 200 {object} models.ConvertResponse "Conversion result"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /convert [post]
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.ConvertRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		l.Debug("Malformed conversion body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: bodyError(err),
		})
	}

	resp, err := h.service.Convert(req)
	if err != nil {
		return h.fail(c, l, err)
	}

	l.Debug("Conversion completed",
		zap.String("category", resp.Category),
		zap.String("from_unit", resp.FromUnit),
		zap.String("to_unit", resp.ToUnit),
	)
	return c.JSON(resp)
}

// HandleListUnits returns every category with its units.
// @Summary List Units
// @Description Returns the supported units grouped by category, in display order.
// @Tags units
// @Produce json
// @Success 200 {object} map[string][]models.UnitOption "Unit catalog"
// @Router /units [get]
func (h *Handler) HandleListUnits(c *fiber.Ctx) error {
	return c.JSON(h.service.Units())
}

// HandleCategoryUnits returns the units of a single category.
// @Summary List Category Units
// @Description Returns the supported units of one category, in display order.
// @Tags units
// @Produce json
// @Param category path string true "Category (length, weight, volume, temperature, area)"
// @Success 200 {array} models.UnitOption "Units"
// @Failure 400 {object} models.ErrorResponse "Unknown category"
// @Router /units/{category} [get]
func (h *Handler) HandleCategoryUnits(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	list, err := h.service.CategoryUnits(c.Params("category"))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(list)
}

// fail maps validation errors to 400 and anything else to 500.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	if units.IsValidation(err) {
		l.Info("Request rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: err.Error()})
	}
	l.Error("Conversion failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "Internal Server Error"})
}

// bodyError names the offending field when the body is an object with a
// field of the wrong type.
func bodyError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("invalid %s for field %q", typeErr.Value, typeErr.Field)
	}
	return "request body must be a JSON object"
}
