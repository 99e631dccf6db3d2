package conversion

import (
	"testing"

	"unit-converter/core/metrics"
	"unit-converter/core/units"
	"unit-converter/feature/conversion/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() (*Service, *metrics.Metrics) {
	m := metrics.NewForTesting()
	return NewService(zap.NewNop(), m), m
}

func TestService_Convert(t *testing.T) {
	tests := []struct {
		name string
		req  models.ConvertRequest
		want float64
	}{
		{"MileToKilometer", models.ConvertRequest{Value: 1.0, FromUnit: "mile", ToUnit: "kilometer", Category: "length"}, 1.60934},
		{"StringValue", models.ConvertRequest{Value: "100", FromUnit: "celsius", ToUnit: "fahrenheit", Category: "temperature"}, 212},
		{"RoundedToSixPlaces", models.ConvertRequest{Value: 1.0, FromUnit: "fahrenheit", ToUnit: "celsius", Category: "temperature"}, -17.222222},
		{"Negative", models.ConvertRequest{Value: -5.5, FromUnit: "kilogram", ToUnit: "gram", Category: "weight"}, -5500},
		{"Zero", models.ConvertRequest{Value: 0.0, FromUnit: "acre", ToUnit: "hectare", Category: "area"}, 0},
		{"Identity", models.ConvertRequest{Value: 3.78541, FromUnit: "liter", ToUnit: "liter", Category: "volume"}, 3.78541},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			resp, err := svc.Convert(tt.req)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, resp.Result, 1e-9)
			assert.Equal(t, tt.req.FromUnit, resp.FromUnit)
			assert.Equal(t, tt.req.ToUnit, resp.ToUnit)
			assert.Equal(t, tt.req.Category, resp.Category)
		})
	}
}

func TestService_ConvertEchoesParsedValue(t *testing.T) {
	svc, _ := newTestService()
	resp, err := svc.Convert(models.ConvertRequest{Value: " 2.5 ", FromUnit: "liter", ToUnit: "milliliter", Category: "volume"})
	require.NoError(t, err)
	assert.Equal(t, 2.5, resp.FromValue)
	assert.InDelta(t, 2500, resp.Result, 1e-9)
}

func TestService_ConvertRejected(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ConvertRequest
		wantErr error
		field   string
	}{
		{"MissingValue", models.ConvertRequest{FromUnit: "meter", ToUnit: "inch", Category: "length"}, units.ErrMissingField, "value"},
		{"MissingFrom", models.ConvertRequest{Value: 1.0, ToUnit: "inch", Category: "length"}, units.ErrMissingField, "from_unit"},
		{"MissingTo", models.ConvertRequest{Value: 1.0, FromUnit: "meter", Category: "length"}, units.ErrMissingField, "to_unit"},
		{"MissingCategory", models.ConvertRequest{Value: 1.0, FromUnit: "meter", ToUnit: "inch"}, units.ErrMissingField, "category"},
		{"NonNumeric", models.ConvertRequest{Value: "ten", FromUnit: "meter", ToUnit: "inch", Category: "length"}, units.ErrInvalidValue, "value"},
		{"NonFinite", models.ConvertRequest{Value: "Inf", FromUnit: "meter", ToUnit: "inch", Category: "length"}, units.ErrInvalidValue, "value"},
		{"BadCategory", models.ConvertRequest{Value: 1.0, FromUnit: "liter", ToUnit: "milliliter", Category: "volume_bad"}, units.ErrUnknownCategory, "category"},
		{"BadUnit", models.ConvertRequest{Value: 1.0, FromUnit: "furlong", ToUnit: "meter", Category: "length"}, units.ErrUnknownUnit, "from_unit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			resp, err := svc.Convert(tt.req)
			assert.Nil(t, resp)
			require.ErrorIs(t, err, tt.wantErr)

			var verr *units.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestService_Metrics(t *testing.T) {
	svc, m := newTestService()

	_, err := svc.Convert(models.ConvertRequest{Value: 1.0, FromUnit: "meter", ToUnit: "foot", Category: "length"})
	require.NoError(t, err)
	_, err = svc.Convert(models.ConvertRequest{Value: 1.0, FromUnit: "furlong", ToUnit: "foot", Category: "length"})
	require.Error(t, err)
	_, err = svc.Convert(models.ConvertRequest{Value: 1.0, FromUnit: "a", ToUnit: "b", Category: "bogus"})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("length", metrics.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("length", metrics.OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("invalid", metrics.OutcomeRejected)))
}

func TestService_Units(t *testing.T) {
	svc, m := newTestService()

	catalog := svc.Units()
	assert.Len(t, catalog, 5)
	require.Len(t, catalog["temperature"], 3)
	assert.Equal(t, models.UnitOption{Value: "celsius", Label: "Celsius (°C)"}, catalog["temperature"][0])
	assert.Equal(t, "us_ton", catalog["weight"][7].Value)

	list, err := svc.CategoryUnits("area")
	require.NoError(t, err)
	assert.Equal(t, "square_meter", list[0].Value)
	assert.Equal(t, "square_inch", list[len(list)-1].Value)

	_, err = svc.CategoryUnits("bogus")
	assert.ErrorIs(t, err, units.ErrUnknownCategory)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CatalogRequests))
}
