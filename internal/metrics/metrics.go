// Package metrics holds the Prometheus collectors exported by the device
// simulator.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "devicesim"

// Metrics owns its registry so several simulators can run in one process.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	busyRejections  prometheus.Counter
	thumbnailsTotal *prometheus.CounterVec
	thumbnailBytes  prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		busyRejections: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "busy_rejections_total",
				Help:      "Requests refused because another command was in flight",
			},
		),
		thumbnailsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "thumbnails_total",
				Help:      "Thumbnail requests by source",
			},
			[]string{"source"},
		),
		thumbnailBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "thumbnail_bytes_total",
				Help:      "Total bytes of thumbnails served",
			},
		),
	}
}

// Handler exposes the registry in the text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RecordRequest(method, route string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) RecordBusy() {
	m.busyRejections.Inc()
}

// RecordThumbnail counts a served thumbnail; source is "ok" or "error".
func (m *Metrics) RecordThumbnail(size int, success bool) {
	source := "ok"
	if !success {
		source = "error"
	}
	m.thumbnailsTotal.WithLabelValues(source).Inc()
	if success {
		m.thumbnailBytes.Add(float64(size))
	}
}
