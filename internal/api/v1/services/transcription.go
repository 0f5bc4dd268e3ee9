package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"whisper-transcription/internal/app/api/provider"
)

// TranscriptionService transcribes an uploaded audio stream to text.
type TranscriptionService interface {
	Transcribe(ctx context.Context, audio io.Reader, language string) (string, error)
}

type transcriptionService struct {
	provider provider.TranscriptionProvider
	tempDir  string
	metrics  *provider.Metrics
	logger   *slog.Logger
}

// NewTranscriptionService creates a transcription service backed by the given
// provider. Uploads are spooled to tempDir and removed when the request ends,
// whether it succeeds or fails.
func NewTranscriptionService(p provider.TranscriptionProvider, tempDir string, metrics *provider.Metrics, logger *slog.Logger) TranscriptionService {
	return &transcriptionService{
		provider: p,
		tempDir:  tempDir,
		metrics:  metrics,
		logger:   logger,
	}
}

// NormalizeLanguage maps the absent and "auto" cases to the empty string,
// which providers interpret as auto-detection. Any other value is passed to
// the provider verbatim.
func NormalizeLanguage(language string) string {
	if language == "auto" {
		return ""
	}
	return language
}

func (s *transcriptionService) Transcribe(_ context.Context, audio io.Reader, language string) (string, error) {
	tempFile, err := os.CreateTemp(s.tempDir, "upload-*.webm")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	_, err = io.Copy(tempFile, audio)
	closeErr := tempFile.Close()
	if err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	if closeErr != nil {
		return "", fmt.Errorf("failed to save upload: %w", closeErr)
	}

	req := &provider.TranscriptionRequest{
		InputFilePath:     tempPath,
		Language:          NormalizeLanguage(language),
		CompatibilityMode: true,
	}

	providerName := s.provider.GetProviderInfo().Name

	s.logger.Info("Starting transcription",
		"provider", providerName,
		"language", req.Language,
		"file", tempPath,
	)

	// Inference runs to completion once started. The caller's context is
	// intentionally not propagated, so a dropped connection does not abort
	// work already in flight.
	resp, err := s.provider.TranscriptWithOptions(context.Background(), req)
	if err != nil {
		s.metrics.RecordFailure(providerName)
		s.logger.Error("Transcription failed",
			"provider", providerName,
			"error", err,
		)
		return "", err
	}

	s.metrics.RecordSuccess(providerName, resp.ProcessingTime)
	s.logger.Info("Transcription complete",
		"provider", providerName,
		"duration_ms", resp.ProcessingTime.Milliseconds(),
		"chars", len(resp.Text),
	)

	return strings.TrimSpace(resp.Text), nil
}
