package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whisper-transcription/internal/api/v1/dto"
)

const serviceName = "whisper-transcription"

// HealthHandler serves the health and service-info endpoints.
type HealthHandler struct{}

// NewHealthHandler creates a health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health handles GET /health. It reports that the process is up and serving;
// it does not probe the transcription provider.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Service: serviceName,
	})
}

// ServiceInfo handles GET / with a short description of the available routes.
func (h *HealthHandler) ServiceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceInfoResponse{
		Service: serviceName,
		Endpoints: map[string]string{
			"transcribe": "POST /v1/audio/transcriptions",
			"health":     "GET /health",
			"metrics":    "GET /metrics",
		},
	})
}
