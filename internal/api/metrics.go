package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "brewmatch"

// Metrics holds the server's Prometheus collectors. Each server owns its
// registry so tests can build many servers in one process.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	entriesSaved    prometheus.Counter
}

// NewMetrics registers the HTTP and engine collectors. memoStats reports
// engine cache hits and misses.
func NewMetrics(memoStats func() (hits, misses uint64)) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(
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
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		entriesSaved: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "journal_entries_saved_total",
				Help:      "Total number of brew log entries saved through the API",
			},
		),
	}

	if memoStats != nil {
		factory.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "engine_memo_hits_total",
				Help:      "Total number of engine result cache hits",
			},
			func() float64 {
				hits, _ := memoStats()
				return float64(hits)
			},
		)
		factory.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "engine_memo_misses_total",
				Help:      "Total number of engine result cache misses",
			},
			func() float64 {
				_, misses := memoStats()
				return float64(misses)
			},
		)
	}

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency by route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
