package whisper

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"whisper-transcription/internal/app/api/provider"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
// The underlying client is safe for concurrent use.
type RemoteTranscriber struct {
	client *openai.Client
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{client: client}
}

// Transcript uses the OpenAI API for remote transcription with language
// auto-detection.
func (rt *RemoteTranscriber) Transcript(inputFilePath string) (string, error) {
	resp, err := rt.TranscriptWithOptions(context.Background(), &provider.TranscriptionRequest{
		InputFilePath:     inputFilePath,
		CompatibilityMode: true,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// TranscriptWithOptions uses the OpenAI API for remote transcription. The
// hosted API has no precision toggle, so CompatibilityMode is implicit here.
func (rt *RemoteTranscriber) TranscriptWithOptions(ctx context.Context, request *provider.TranscriptionRequest) (*provider.TranscriptionResponse, error) {
	startTime := time.Now()

	req := openai.AudioRequest{
		Model:       openai.Whisper1,
		FilePath:    request.InputFilePath,
		Language:    request.Language, // empty lets the API auto-detect
		Prompt:      request.Prompt,
		Temperature: request.Temperature,
	}

	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:     "transcription_failed",
			Message:  fmt.Sprintf("createTranscription failed: %s", err),
			Provider: "openai",
		}
	}

	return &provider.TranscriptionResponse{
		Text:           resp.Text,
		Language:       resp.Language,
		ProcessingTime: time.Since(startTime),
		ModelUsed:      string(openai.Whisper1),
	}, nil
}

// GetProviderInfo returns metadata about the OpenAI whisper provider
func (rt *RemoteTranscriber) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:                      "openai",
		DisplayName:               "OpenAI Whisper API",
		Type:                      provider.ProviderTypeRemote,
		SupportedLanguages:        nil, // all languages
		MaxFileSizeMB:             25,
		SupportsLanguageDetection: true,
		RequiresInternet:          true,
		RequiresAPIKey:            true,
		RequiresBinary:            false,
		DefaultModel:              string(openai.Whisper1),
	}
}

// ValidateConfiguration validates the provider configuration
func (rt *RemoteTranscriber) ValidateConfiguration() error {
	if rt.client == nil {
		return fmt.Errorf("openai client is not configured")
	}
	return nil
}

// HealthCheck performs a health check on the provider
func (rt *RemoteTranscriber) HealthCheck(ctx context.Context) error {
	return rt.ValidateConfiguration()
}
