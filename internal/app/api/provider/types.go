package provider

import (
	"time"
)

// ProviderType defines the type of transcription provider
type ProviderType string

const (
	ProviderTypeLocal  ProviderType = "local"
	ProviderTypeRemote ProviderType = "remote"
)

// TranscriptionRequest represents a single transcription call against a provider.
type TranscriptionRequest struct {
	// Path to the audio file to transcribe. The file may be in any container
	// the provider can decode; local providers resample internally.
	InputFilePath string `json:"input_file_path"`

	// Language hint, e.g. "en", "fr". Empty means the provider auto-detects.
	Language string `json:"language,omitempty"`

	// Context prompt for better accuracy, where the provider supports it.
	Prompt string `json:"prompt,omitempty"`

	// Decoding temperature (0.0-1.0) for providers that support it.
	Temperature float32 `json:"temperature,omitempty"`

	// CompatibilityMode prefers the widely-compatible inference path over the
	// fast one (e.g. full precision instead of reduced-precision decoding).
	CompatibilityMode bool `json:"compatibility_mode,omitempty"`
}

// TranscriptionResponse represents the result of a transcription call.
type TranscriptionResponse struct {
	// Transcribed text as produced by the provider, untrimmed.
	Text string `json:"text"`

	Language       string        `json:"language,omitempty"`
	ProcessingTime time.Duration `json:"processing_time,omitempty"`
	ModelUsed      string        `json:"model_used,omitempty"`
}

// ProviderInfo contains metadata about a transcription provider
type ProviderInfo struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"display_name"`
	Type        ProviderType `json:"type"`

	SupportedLanguages []string `json:"supported_languages,omitempty"` // Empty means all languages
	MaxFileSizeMB      int      `json:"max_file_size_mb,omitempty"`    // 0 means no limit

	SupportsLanguageDetection bool `json:"supports_language_detection"`

	RequiresInternet bool `json:"requires_internet"`
	RequiresAPIKey   bool `json:"requires_api_key"`
	RequiresBinary   bool `json:"requires_binary"`

	DefaultModel string `json:"default_model,omitempty"`
}

// TranscriptionError represents provider-specific errors. Error() returns the
// bare message so the failure text reaches the API boundary unchanged.
type TranscriptionError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Provider string `json:"provider"`
}

func (e *TranscriptionError) Error() string {
	return e.Message
}
