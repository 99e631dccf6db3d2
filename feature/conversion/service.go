package conversion

import (
	"time"

	"unit-converter/core/metrics"
	"unit-converter/core/units"
	"unit-converter/core/utils"
	"unit-converter/feature/conversion/models"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ResultPrecision is the number of decimal places kept in conversion results.
const ResultPrecision = 6

// Service validates conversion requests and runs them through the engine.
type Service struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewService creates a new conversion service.
func NewService(logger *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{
		logger:  logger,
		metrics: m,
	}
}

// Convert validates the request, converts the value and rounds the result.
// Every failure is a *units.ValidationError.
func (s *Service) Convert(req models.ConvertRequest) (*models.ConvertResponse, error) {
	value, category, err := validate(req)
	if err != nil {
		s.metrics.Conversions.WithLabelValues(metrics.CategoryLabel(req.Category, units.Category(req.Category).IsValid()), metrics.OutcomeRejected).Inc()
		return nil, err
	}

	start := time.Now()
	result, err := units.Convert(category, value, req.FromUnit, req.ToUnit)
	s.metrics.ConversionDuration.WithLabelValues(category.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.Conversions.WithLabelValues(category.String(), metrics.OutcomeRejected).Inc()
		return nil, err
	}
	s.metrics.Conversions.WithLabelValues(category.String(), metrics.OutcomeSuccess).Inc()

	return &models.ConvertResponse{
		Result:    utils.RoundTo(result, ResultPrecision),
		FromValue: value,
		FromUnit:  req.FromUnit,
		ToUnit:    req.ToUnit,
		Category:  req.Category,
	}, nil
}

// validate checks fields in request order: value, from_unit, to_unit, category.
func validate(req models.ConvertRequest) (float64, units.Category, error) {
	if req.Value == nil {
		return 0, "", missing("value")
	}
	if req.FromUnit == "" {
		return 0, "", missing("from_unit")
	}
	if req.ToUnit == "" {
		return 0, "", missing("to_unit")
	}
	if req.Category == "" {
		return 0, "", missing("category")
	}

	value, err := utils.ToFloat(req.Value)
	if err != nil {
		return 0, "", &units.ValidationError{Field: "value", Value: utils.ToString(req.Value), Err: units.ErrInvalidValue}
	}

	category, err := units.ParseCategory(req.Category)
	if err != nil {
		return 0, "", err
	}
	return value, category, nil
}

func missing(field string) error {
	return &units.ValidationError{Field: field, Err: units.ErrMissingField}
}

// Units returns the full catalog keyed by category name.
func (s *Service) Units() map[string][]models.UnitOption {
	s.metrics.CatalogRequests.Inc()

	out := make(map[string][]models.UnitOption)
	for c, list := range units.Catalog() {
		out[c.String()] = toOptions(list)
	}
	return out
}

// CategoryUnits returns the ordered units of one category.
func (s *Service) CategoryUnits(name string) ([]models.UnitOption, error) {
	c, err := units.ParseCategory(name)
	if err != nil {
		return nil, err
	}
	list, err := units.UnitsOf(c)
	if err != nil {
		return nil, err
	}
	s.metrics.CatalogRequests.Inc()
	return toOptions(list), nil
}

func toOptions(list []units.Unit) []models.UnitOption {
	return lo.Map(list, func(u units.Unit, _ int) models.UnitOption {
		return models.UnitOption{Value: u.ID, Label: u.Label}
	})
}
