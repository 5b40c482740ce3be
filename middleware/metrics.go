package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lead submission outcomes
const (
	LeadOutcomeStored  = "stored"
	LeadOutcomeInvalid = "invalid"
	LeadOutcomeFailed  = "failed"
	LeadOutcomeCaptcha = "captcha"
)

type siteMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	leadsTotal      *prometheus.CounterVec
	subscribeTotal  *prometheus.CounterVec
}

var (
	globalMetrics   *siteMetrics
	globalMetricsMu sync.Mutex
)

func initMetrics(reg prometheus.Registerer) *siteMetrics {
	factory := promauto.With(reg)

	return &siteMetrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "autobot",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code",
		}, []string{"route", "method", "code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "autobot",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),

		leadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "autobot",
			Name:      "lead_submissions_total",
			Help:      "Contact form submissions by outcome",
		}, []string{"outcome"}),

		subscribeTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "autobot",
			Name:      "newsletter_signups_total",
			Help:      "Newsletter signups by outcome",
		}, []string{"outcome"}),
	}
}

// Metrics records request counts and latency per route. Metrics register
// with reg on the first call; later calls reuse them.
func Metrics(reg prometheus.Registerer) echo.MiddlewareFunc {
	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(reg)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			code := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				code = he.Code
			}

			m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
			m.requestsTotal.WithLabelValues(route, c.Request().Method, strconv.Itoa(code)).Inc()
			return err
		}
	}
}

// MetricsHandler serves the registry in the Prometheus exposition format
func MetricsHandler(gatherer prometheus.Gatherer) echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}

// RecordLeadSubmission counts a contact form submission outcome
func RecordLeadSubmission(outcome string) {
	globalMetricsMu.Lock()
	m := globalMetrics
	globalMetricsMu.Unlock()
	if m != nil {
		m.leadsTotal.WithLabelValues(outcome).Inc()
	}
}

// RecordSubscription counts a newsletter signup outcome
func RecordSubscription(outcome string) {
	globalMetricsMu.Lock()
	m := globalMetrics
	globalMetricsMu.Unlock()
	if m != nil {
		m.subscribeTotal.WithLabelValues(outcome).Inc()
	}
}
