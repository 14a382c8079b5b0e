// Package metrics instruments the query facade with prometheus/client_golang,
// grounded on samirrijal-bilbopass's internal/pkg/metrics (same
// promauto.NewCounterVec/NewHistogramVec shape, same namespace/subsystem
// convention), adapted from bilbopass's Fiber middleware to net/http/chi
// since this service's domain stack wires in chi rather than Fiber.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "transitraptor",
		Subsystem: "query",
		Name:      "requests_total",
		Help:      "Total routing queries served, by query kind and outcome",
	}, []string{"kind", "outcome"})

	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "transitraptor",
		Subsystem: "query",
		Name:      "duration_seconds",
		Help:      "Time spent answering a routing query, by query kind",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
	}, []string{"kind"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "transitraptor",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "transitraptor",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path"})
)

// ObserveQuery records the outcome and duration of one facade call. kind is
// one of "earliest_arrival", "earliest_arrival_multiple",
// "earliest_arrival_all", "range", "range_all", "latest_departure".
func ObserveQuery(kind string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	queriesTotal.WithLabelValues(kind, outcome).Inc()
	queryDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// Middleware wraps an http.Handler, recording per-request count and
// latency by method and request path (r.URL.Path as received, not the
// router's route pattern).
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		duration := time.Since(start).Seconds()
		path := r.URL.Path
		method := r.Method

		httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(sw.status)).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)
	})
}

// Handler serves the Prometheus /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
