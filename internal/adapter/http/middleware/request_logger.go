package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"dispatch_service/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request and records its latency. Slow
// requests log at WARN and server errors at ERROR.
func RequestLogger(slow time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", elapsed.Milliseconds(),
		}
		if biz := BusinessID(c); biz != "" {
			attrs = append(attrs, "business_id", biz)
		}
		switch {
		case status >= 500:
			slog.Error("request failed", append(attrs, "errors", c.Errors.String())...)
		case slow > 0 && elapsed > slow:
			slog.Warn("slow request", attrs...)
		default:
			slog.Info("request", attrs...)
		}
	}
}
