package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	modelCallsTotal *prometheus.CounterVec
	persistTotal    *prometheus.CounterVec
	extractedChars  *prometheus.HistogramVec
}

func New(service string) *Metrics {
	registry := prometheus.NewRegistry()
	labels := prometheus.Labels{"service": service}

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "legaldoc",
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests processed.",
			ConstLabels: labels,
		},
		[]string{"method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   "legaldoc",
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request duration in seconds.",
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
			ConstLabels: labels,
		},
		[]string{"method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace:   "legaldoc",
			Subsystem:   "http",
			Name:        "in_flight_requests",
			Help:        "Number of in-flight HTTP requests.",
			ConstLabels: labels,
		},
	)
	modelCallsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "legaldoc",
			Subsystem:   "model",
			Name:        "calls_total",
			Help:        "Model calls by endpoint and result.",
			ConstLabels: labels,
		},
		[]string{"endpoint", "result"},
	)
	persistTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "legaldoc",
			Subsystem:   "persist",
			Name:        "outcomes_total",
			Help:        "Best-effort persistence outcomes by step (upload, metadata).",
			ConstLabels: labels,
		},
		[]string{"step", "outcome"},
	)
	extractedChars := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   "legaldoc",
			Subsystem:   "extract",
			Name:        "characters",
			Help:        "Characters of text extracted per analyzed document.",
			Buckets:     prometheus.ExponentialBuckets(100, 4, 7),
			ConstLabels: labels,
		},
		[]string{"file_type"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		modelCallsTotal,
		persistTotal,
		extractedChars,
	)

	return &Metrics{
		registry:        registry,
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		requestInFlight: requestInFlight,
		modelCallsTotal: modelCallsTotal,
		persistTotal:    persistTotal,
		extractedChars:  extractedChars,
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency by route pattern.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		m.requestTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) RecordModelCall(endpoint string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.modelCallsTotal.WithLabelValues(endpoint, result).Inc()
}

func (m *Metrics) RecordPersist(step, outcome string) {
	m.persistTotal.WithLabelValues(step, outcome).Inc()
}

func (m *Metrics) RecordExtraction(fileType string, chars int) {
	if fileType == "" {
		fileType = "unknown"
	}
	m.extractedChars.WithLabelValues(fileType).Observe(float64(chars))
}
