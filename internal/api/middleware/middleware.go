package middleware

import (
	"net/http"
	"strconv"
	"time"

	"organisation-api/internal/logger"
	"organisation-api/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// maxRequestBodySize is the maximum accepted request body (1 MB)
const maxRequestBodySize = 1 << 20

// RequestID reuses the client's X-Request-ID or generates one, and echoes it back
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(logger.RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// Logger logs one structured line per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		entry := logger.WithContext(c).WithFields(map[string]interface{}{
			"method":      c.Request.Method,
			"path":        path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
		})

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Error("http request")
		case status >= http.StatusBadRequest:
			entry.Warn("http request")
		default:
			entry.Info("http request")
		}
	}
}

// Recovery turns a panicking handler into a 500 failure envelope
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithContext(c).WithFields(map[string]interface{}{
					"panic":  err,
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
				}).Error("panic recovered in HTTP handler")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"status":     "Internal server error",
					"message":    "Internal server error",
					"statusCode": http.StatusInternalServerError,
				})
			}
		}()
		c.Next()
	}
}

// BodyLimit caps request bodies at 1 MB
func BodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBodySize)
		}
		c.Next()
	}
}

// Metrics records request counts and latency by matched route
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
