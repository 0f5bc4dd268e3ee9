package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// StructuredLogging emits one slog record per request. Liveness and metrics
// scrapes arrive every few seconds from orchestrators and would drown out
// the transcription traffic, so /health and /metrics are not logged.
func StructuredLogging(logger *slog.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		if param.Path == "/health" || param.Path == "/metrics" {
			return ""
		}

		requestID := ""
		if param.Keys != nil {
			if id, ok := param.Keys["request_id"].(string); ok {
				requestID = id
			}
		}

		logger.Info("request completed",
			"request_id", requestID,
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency_ms", param.Latency.Milliseconds(),
			"client_ip", param.ClientIP,
			"error", param.ErrorMessage,
		)

		return ""
	})
}
