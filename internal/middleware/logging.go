package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxLoggedBody caps the request body captured by the development logger.
const maxLoggedBody = 4096

var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
}

// RequestLoggingMiddleware logs one line per completed request
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		fields := []zap.Field{
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		if workspaceID := c.GetString(constants.WorkspaceIDKey); workspaceID != "" {
			fields = append(fields, zap.String("workspace_id", workspaceID))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Log.Error("Request completed", fields...)
		case c.Writer.Status() >= 400:
			logger.Log.Warn("Request completed", fields...)
		default:
			logger.Log.Info("Request completed", fields...)
		}
	}
}

// DetailedLoggingMiddleware logs headers and request bodies. It is a no-op
// outside local development.
func DetailedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment {
			c.Next()
			return
		}

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		headers := make(map[string]string, len(c.Request.Header))
		for key, values := range c.Request.Header {
			if redactedHeaders[key] {
				headers[key] = "[REDACTED]"
				continue
			}
			if len(values) > 0 {
				headers[key] = values[0]
			}
		}

		logged := requestBody
		if len(logged) > maxLoggedBody {
			logged = logged[:maxLoggedBody]
		}

		LogWithCorrelationID(c.Request.Context()).Debug("Detailed request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Any("headers", headers),
			zap.ByteString("body", logged),
			zap.Int("body_size", len(requestBody)),
		)

		c.Next()

		for _, ginErr := range c.Errors {
			LogWithCorrelationID(c.Request.Context()).Error("Request error",
				zap.Error(ginErr.Err),
				zap.Uint64("type", uint64(ginErr.Type)),
			)
		}
	}
}
