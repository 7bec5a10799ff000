package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const metricsNamespace = "todo"

// Collector is a prometheus.Collector that collects metrics about the
// todo HTTP server.
type Collector struct {
	requestsTotal   prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

// NewCollector returns a new Collector.
func NewCollector() *Collector {
	return &Collector{
		requestsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "my_app_requests_total",
				Help: "Total number of requests served by the liveness route.",
			},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "The time taken to serve an HTTP request.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"method", "route", "status"},
		),
	}
}

// IncRequests records one hit on the liveness route.
func (c *Collector) IncRequests() {
	c.requestsTotal.Inc()
}

// RequestsTotal exposes the liveness request counter.
func (c *Collector) RequestsTotal() prometheus.Counter {
	return c.requestsTotal
}

// ObserveRequest records the duration of a served request.
func (c *Collector) ObserveRequest(method, route string, status int, duration time.Duration) {
	c.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.requestsTotal.Describe(ch)
	c.requestDuration.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.requestsTotal.Collect(ch)
	c.requestDuration.Collect(ch)
}

// NewRegistry returns a registry holding c plus the Go runtime and process
// collectors. Each server owns its registry so tests never share counters.
func NewRegistry(c *Collector) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	for _, col := range []prometheus.Collector{
		c,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
