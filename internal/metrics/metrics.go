package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "facturepro"

// Metrics holds all Prometheus metrics of the API. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Billing metrics
	DocumentsCreatedTotal   *prometheus.CounterVec
	StatusTransitionsTotal  *prometheus.CounterVec
	QuoteConversionsTotal   prometheus.Counter
	AccessDecisionsTotal    *prometheus.CounterVec
	CheckoutPollAttempts    *prometheus.CounterVec
	TotalsComputationsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		DocumentsCreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "documents_created_total",
				Help:      "Total number of invoices and quotes created",
			},
			[]string{"kind"},
		),
		StatusTransitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "document_status_transitions_total",
				Help:      "Total number of document status changes",
			},
			[]string{"kind", "from", "to"},
		),
		QuoteConversionsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quote_conversions_total",
				Help:      "Total number of quotes converted into invoices",
			},
		),
		AccessDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "access_decisions_total",
				Help:      "Total number of subscription access evaluations",
			},
			[]string{"reason", "has_access"},
		),
		CheckoutPollAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkout_poll_attempts_total",
				Help:      "Total number of checkout status polls by observed status",
			},
			[]string{"status"},
		),
		TotalsComputationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "totals_computations_total",
				Help:      "Total number of document totals computations",
			},
			[]string{"jurisdiction", "result"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DocumentsCreatedTotal,
		m.StatusTransitionsTotal,
		m.QuoteConversionsTotal,
		m.AccessDecisionsTotal,
		m.CheckoutPollAttempts,
		m.TotalsComputationsTotal,
	)

	return m
}

// RecordDocumentCreated counts a new invoice or quote
func (m *Metrics) RecordDocumentCreated(kind string) {
	if m == nil {
		return
	}
	m.DocumentsCreatedTotal.WithLabelValues(kind).Inc()
}

// RecordTransition counts a stored status change
func (m *Metrics) RecordTransition(kind, from, to string) {
	if m == nil {
		return
	}
	m.StatusTransitionsTotal.WithLabelValues(kind, from, to).Inc()
}

// RecordQuoteConversion counts a quote converted into an invoice
func (m *Metrics) RecordQuoteConversion() {
	if m == nil {
		return
	}
	m.QuoteConversionsTotal.Inc()
}

// RecordAccessDecision counts an access evaluation by reason
func (m *Metrics) RecordAccessDecision(reason string, hasAccess bool) {
	if m == nil {
		return
	}
	m.AccessDecisionsTotal.WithLabelValues(reason, strconv.FormatBool(hasAccess)).Inc()
}

// RecordCheckoutPoll counts one poll of a checkout session
func (m *Metrics) RecordCheckoutPoll(status string) {
	if m == nil {
		return
	}
	m.CheckoutPollAttempts.WithLabelValues(status).Inc()
}

// RecordTotalsComputation counts a totals computation and whether it succeeded
func (m *Metrics) RecordTotalsComputation(jurisdiction string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "invalid"
	}
	m.TotalsComputationsTotal.WithLabelValues(jurisdiction, result).Inc()
}

// GinMiddleware instruments HTTP requests with Prometheus metrics.
// Paths are reported as route templates to keep label cardinality bounded.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
