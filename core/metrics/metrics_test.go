package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"unit-converter/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.NewForTesting()

	m.Conversions.WithLabelValues("length", metrics.OutcomeSuccess).Inc()
	m.Conversions.WithLabelValues("length", metrics.OutcomeSuccess).Inc()
	m.Conversions.WithLabelValues("invalid", metrics.OutcomeRejected).Inc()
	m.CatalogRequests.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Conversions.WithLabelValues("length", metrics.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("invalid", metrics.OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CatalogRequests))
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.CatalogRequests.Inc()

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "unit_converter_catalog_requests_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "area", metrics.CategoryLabel("area", true))
	assert.Equal(t, "invalid", metrics.CategoryLabel("anything", false))
}
