package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whisper-transcription/internal/api/v1/dto"
)

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHealthHandler()
	router.GET("/health", handler.Health)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "healthy", "service": "whisper-transcription"}`, w.Body.String())
}

func TestServiceInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHealthHandler()
	router.GET("/", handler.ServiceInfo)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var info dto.ServiceInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))

	assert.Equal(t, "whisper-transcription", info.Service)
	assert.Contains(t, info.Endpoints, "transcribe")
	assert.Contains(t, info.Endpoints, "health")
}
