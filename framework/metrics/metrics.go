// Package metrics holds the Prometheus collectors for the HTTP surface, the
// Postgrest manager and the upstream REST clients.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so several collectors (one per test) never
// collide on registration.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	DBOperations *prometheus.CounterVec
	DBDuration   *prometheus.HistogramVec

	UpstreamRequests *prometheus.CounterVec
}

// NewCollector creates and registers every metric under namespace.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_operations_total",
			Help:      "Total number of Postgrest operations",
		}, []string{"operation", "table", "status"}),
		DBDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_operation_duration_seconds",
			Help:      "Postgrest operation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "table"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of upstream REST calls",
		}, []string{"client", "outcome"}),
	}

	c.registry.MustRegister(
		c.HTTPRequests, c.HTTPDuration,
		c.DBOperations, c.DBDuration,
		c.UpstreamRequests,
		prometheus.NewGoCollector(),
	)
	return c
}

// Registry exposes the underlying registry (tests gather from it).
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency labelled by the matched chi
// route pattern, so /user/settings/{section}/{userId} is one series.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		c.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		c.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveDB records one Postgrest call.
func (c *Collector) ObserveDB(operation, table string, err error, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.DBOperations.WithLabelValues(operation, table, outcome(err)).Inc()
	c.DBDuration.WithLabelValues(operation, table).Observe(elapsed.Seconds())
}

// ObserveUpstream records one call made by a REST client.
func (c *Collector) ObserveUpstream(client string, err error) {
	if c == nil {
		return
	}
	c.UpstreamRequests.WithLabelValues(client, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
