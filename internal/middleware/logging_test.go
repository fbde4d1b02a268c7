package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/facturepro/facturepro-api/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.DebugLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })

	router := gin.New()
	router.Use(CorrelationIDMiddleware(), RequestLoggingMiddleware(), DetailedLoggingMiddleware(true))
	router.POST("/ok", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ok", strings.NewReader(`{"a":1}`))
	req.Header.Set("Authorization", "Bearer secret")
	router.ServeHTTP(w, req)
	assert.Equal(t, `{"a":1}`, w.Body.String(), "body must still be readable by handlers")

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	completed := logs.FilterMessage("Request completed").All()
	if assert.Len(t, completed, 2) {
		assert.Equal(t, zap.InfoLevel, completed[0].Level)
		assert.Equal(t, zap.WarnLevel, completed[1].Level)
	}

	detailed := logs.FilterMessage("Detailed request").All()
	if assert.Len(t, detailed, 2) {
		headers := detailed[0].ContextMap()["headers"]
		assert.Contains(t, headers, "Authorization")
		assert.Equal(t, "[REDACTED]", headers.(map[string]string)["Authorization"])
	}
}
