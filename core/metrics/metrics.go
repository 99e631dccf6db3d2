package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "unit_converter"

// Outcome label values for conversions.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	// Conversions counts conversions by category and outcome.
	Conversions *prometheus.CounterVec
	// ConversionDuration observes engine latency per category.
	ConversionDuration *prometheus.HistogramVec
	// CatalogRequests counts unit catalog reads.
	CatalogRequests prometheus.Counter

	registry *prometheus.Registry
}

// New creates the service metrics on a dedicated registry that also carries the
// Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return newOn(reg)
}

// NewForTesting creates Metrics with a bare registry so tests can assert on
// exactly the service collectors.
func NewForTesting() *Metrics {
	return newOn(prometheus.NewRegistry())
}

func newOn(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Conversions by category and outcome.",
		}, []string{"category", "outcome"}),
		ConversionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Time spent in the conversion engine.",
			Buckets:   []float64{1e-7, 5e-7, 1e-6, 5e-6, 1e-5, 5e-5, 1e-4},
		}, []string{"category"}),
		CatalogRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_requests_total",
			Help:      "Unit catalog reads.",
		}),
		registry: reg,
	}

	reg.MustRegister(m.Conversions, m.ConversionDuration, m.CatalogRequests)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// CategoryLabel folds unknown categories into "invalid" so request input cannot
// grow the label set.
func CategoryLabel(category string, valid bool) string {
	if !valid {
		return "invalid"
	}
	return category
}
