package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Total HTTP requests partitioned by method, route, and status code
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	// Request duration in seconds partitioned by method, route, and status code
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// In-flight HTTP requests
	httpInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	nicheEstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "niche_estimates_total",
			Help: "Total number of Cost Per Lead estimates served",
		},
		[]string{"category"},
	)

	nicheEstimateCPL = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "niche_estimate_cpl",
			Help:    "Distribution of estimated Cost Per Lead values in dollars",
			Buckets: []float64{0.5, 1, 2, 3, 5, 8, 10, 13, 16, 20},
		},
	)

	directoryFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_fetch_total",
			Help: "Country directory fetches partitioned by list and result",
		},
		[]string{"list", "result"},
	)
)

// Metrics returns a Fiber v3 middleware that records basic Prometheus metrics.
// Labels are kept low-cardinality by using the matched route path when available.
func Metrics() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}

		labels := prometheus.Labels{
			"method": c.Method(),
			"route":  route,
			"status": strconv.Itoa(status),
		}
		httpRequestsTotal.With(labels).Inc()
		httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())

		return err
	}
}

// DomainMetrics records estimate and directory outcomes
type DomainMetrics struct{}

func NewDomainMetrics() *DomainMetrics {
	return &DomainMetrics{}
}

// ObserveEstimate counts an estimate and records its value
func (m *DomainMetrics) ObserveEstimate(category string, cpl float64) {
	nicheEstimatesTotal.WithLabelValues(category).Inc()
	nicheEstimateCPL.Observe(cpl)
}

// ObserveDirectoryFetch counts a directory fetch outcome
func (m *DomainMetrics) ObserveDirectoryFetch(list, result string) {
	directoryFetchTotal.WithLabelValues(list, result).Inc()
}
