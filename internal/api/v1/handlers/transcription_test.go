package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "whisper-transcription/internal/api/errors"
)

type stubService struct {
	lastLanguage string
	text         string
	err          error
}

func (s *stubService) Transcribe(ctx context.Context, audio io.Reader, language string) (string, error) {
	s.lastLanguage = language
	if s.err != nil {
		return "", s.err
	}
	// Drain the reader the way the real service does.
	if _, err := io.Copy(io.Discard, audio); err != nil {
		return "", err
	}
	return s.text, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func setupRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewTranscriptionHandler(svc, testLogger())
	router.POST("/v1/audio/transcriptions", handler.Transcribe)
	return router
}

func multipartBody(t *testing.T, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if filename != "" || content != nil {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestTranscribeSuccess(t *testing.T) {
	svc := &stubService{text: "hello world"}
	router := setupRouter(svc)

	body, contentType := multipartBody(t, "clip.webm", []byte("fake-audio"), nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/audio/transcriptions", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text": "hello world"}`, w.Body.String())
}

func TestTranscribeLanguageField(t *testing.T) {
	tests := []struct {
		name         string
		fields       map[string]string
		wantLanguage string
	}{
		{"absent language", nil, ""},
		{"explicit language", map[string]string{"language": "fr"}, "fr"},
		{"auto language passes to the service untouched", map[string]string{"language": "auto"}, "auto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{text: "ok"}
			router := setupRouter(svc)

			body, contentType := multipartBody(t, "clip.webm", []byte("fake-audio"), tt.fields)
			req := httptest.NewRequest(http.MethodPost, "/v1/audio/transcriptions", body)
			req.Header.Set("Content-Type", contentType)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantLanguage, svc.lastLanguage)
		})
	}
}

func TestTranscribeMissingFile(t *testing.T) {
	svc := &stubService{text: "never"}
	router := setupRouter(svc)

	body, contentType := multipartBody(t, "", nil, map[string]string{"language": "en"})
	req := httptest.NewRequest(http.MethodPost, "/v1/audio/transcriptions", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "No file provided"}`, w.Body.String())
}

func TestTranscribeEmptyFilename(t *testing.T) {
	svc := &stubService{text: "never"}
	router := setupRouter(svc)

	// A file part whose filename is the empty string, the shape a browser
	// sends when the user submits without picking a file. The multipart
	// parser stores such a part as a form value named "file", not a file.
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename=""`)
	header.Set("Content-Type", "application/octet-stream")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte{})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/audio/transcriptions", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "No file selected"}`, w.Body.String())
}

func TestTranscribeNoMultipartBody(t *testing.T) {
	svc := &stubService{text: "never"}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/v1/audio/transcriptions", nil)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "No file provided"}`, w.Body.String())
}

func TestTranscribeServiceFailure(t *testing.T) {
	svc := &stubService{err: errors.New("boom")}
	router := setupRouter(svc)

	body, contentType := multipartBody(t, "clip.webm", []byte("fake-audio"), nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/audio/transcriptions", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "boom"}`, w.Body.String())
}

func TestTranscribeValidationErrorFromService(t *testing.T) {
	svc := &stubService{err: apierrors.NewValidationError("unsupported input")}
	router := setupRouter(svc)

	body, contentType := multipartBody(t, "clip.webm", []byte("fake-audio"), nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/audio/transcriptions", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "unsupported input"}`, w.Body.String())
}
