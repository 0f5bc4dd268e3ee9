package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "whisper-transcription/internal/api/errors"
	"whisper-transcription/internal/api/middleware"
	"whisper-transcription/internal/api/v1/dto"
	"whisper-transcription/internal/api/v1/services"
)

// TranscriptionHandler serves the audio transcription endpoint.
type TranscriptionHandler struct {
	service services.TranscriptionService
	logger  *slog.Logger
}

// NewTranscriptionHandler creates a transcription handler
func NewTranscriptionHandler(service services.TranscriptionService, logger *slog.Logger) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
		logger:  logger,
	}
}

// Transcribe handles POST /v1/audio/transcriptions. The request is multipart
// form data with a required "file" part and an optional "language" field.
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		// A part submitted with filename="" is parsed as a form value, not a
		// file, so FormFile reports it as missing. Distinguish the two cases:
		// a "file" value means the client sent the part without picking a file.
		if form, formErr := c.MultipartForm(); formErr == nil && form != nil && len(form.Value["file"]) > 0 {
			middleware.HandleError(c, apierrors.NewValidationError("No file selected"))
			return
		}
		middleware.HandleError(c, apierrors.NewValidationError("No file provided"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleError(c, apierrors.NewTranscriptionError("Failed to read uploaded file"))
		return
	}
	defer file.Close()

	language := c.PostForm("language")

	text, err := h.service.Transcribe(c.Request.Context(), file, language)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TranscriptionResponse{Text: text})
}
