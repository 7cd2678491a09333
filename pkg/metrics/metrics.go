package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors the service reports: HTTP traffic by route,
// employee operations by outcome and the current size of the store.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	Operations          *prometheus.CounterVec
	Records             prometheus.Gauge
}

// NewRegistry returns a registry with the Go and process collectors attached.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// NewMetrics creates the service collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employees_http_requests_total",
			Help: "Total HTTP requests served, by method, route template and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employees_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Operations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employees_operations_total",
			Help: "Employee operations by name and result (ok, id_exists, id_not_found, invalid_input, error).",
		}, []string{"operation", "result"}),
		Records: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "employees_records",
			Help: "Number of employee records currently held.",
		}),
	}

	return m
}
