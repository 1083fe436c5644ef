// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpLatency  prometheus.Histogram

	loginSuccess *prometheus.CounterVec
	loginFailure prometheus.Counter
	signupTotal  prometheus.Counter
	deniedTotal  *prometheus.CounterVec

	usersGauge    prometheus.Gauge
	sessionsGauge prometheus.Gauge
	projectsGauge prometheus.Gauge
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brandscope_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "brandscope_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		loginSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brandscope_login_success_total",
			Help: "Successful logins by method (password or google).",
		}, []string{"method"}),
		loginFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "brandscope_login_failure_total",
			Help: "Failed login attempts.",
		}),
		signupTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "brandscope_signup_total",
			Help: "Accounts created through signup.",
		}),
		deniedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brandscope_access_denied_total",
			Help: "Requests rejected by the access gate, by reason.",
		}, []string{"reason"}),
		usersGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "brandscope_users",
			Help: "Users currently stored.",
		}),
		sessionsGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "brandscope_active_sessions",
			Help: "Active session tokens.",
		}),
		projectsGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "brandscope_projects",
			Help: "Projects currently stored.",
		}),
	}

	c.registry.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.loginSuccess,
		c.loginFailure,
		c.signupTotal,
		c.deniedTotal,
		c.usersGauge,
		c.sessionsGauge,
		c.projectsGauge,
	)

	return c
}

func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.Observe(duration.Seconds())
}

func (c *Collector) RecordLoginSuccess(method string) {
	c.loginSuccess.WithLabelValues(method).Inc()
}

func (c *Collector) RecordLoginFailure() {
	c.loginFailure.Inc()
}

func (c *Collector) RecordSignup() {
	c.signupTotal.Inc()
}

func (c *Collector) RecordAccessDenied(reason string) {
	c.deniedTotal.WithLabelValues(reason).Inc()
}

func (c *Collector) SetStoreSizes(users, sessions, projects int) {
	c.usersGauge.Set(float64(users))
	c.sessionsGauge.Set(float64(sessions))
	c.projectsGauge.Set(float64(projects))
}

// Handler serves the /metrics endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
