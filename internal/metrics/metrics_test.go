package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)
	require.NotNil(t, m)

	m.RecordDocumentCreated("invoice")
	m.RecordDocumentCreated("invoice")
	m.RecordTransition("invoice", "draft", "sent")
	m.RecordQuoteConversion()
	m.RecordAccessDecision("trial_active", true)
	m.RecordTotalsComputation("QC", nil)
	m.RecordTotalsComputation("QC", errors.New("bad items"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DocumentsCreatedTotal.WithLabelValues("invoice")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatusTransitionsTotal.WithLabelValues("invoice", "draft", "sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QuoteConversionsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccessDecisionsTotal.WithLabelValues("trial_active", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TotalsComputationsTotal.WithLabelValues("QC", "invalid")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordDocumentCreated("quote")
		m.RecordTransition("quote", "pending", "accepted")
		m.RecordQuoteConversion()
		m.RecordAccessDecision("exempt", true)
		m.RecordCheckoutPoll("open")
		m.RecordTotalsComputation("ON", nil)
	})
}

func TestGinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics(prometheus.NewRegistry())

	router := gin.New()
	router.Use(m.GinMiddleware())
	router.GET("/api/v1/documents/:document_id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	router.GET("/metrics", m.Handler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/documents/abc", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/documents/:document_id", "204")))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "facturepro_http_requests_total"))
}
