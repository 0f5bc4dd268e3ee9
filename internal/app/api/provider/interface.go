package provider

import (
	"context"
)

// TranscriptionProvider is the contract every speech-to-text backend fulfils.
// Implementations are constructed once at process startup and treated as
// shared read-only resources afterwards; Transcript and TranscriptWithOptions
// must therefore be safe for concurrent invocation. A call that has started
// runs to completion: implementations do not cancel in-flight inference when
// the caller goes away.
type TranscriptionProvider interface {
	// Transcript converts the audio file at the given path to text using the
	// provider's defaults (language auto-detection, compatibility mode on).
	Transcript(inputFilePath string) (string, error)

	// TranscriptWithOptions converts audio to text with full request options.
	TranscriptWithOptions(ctx context.Context, request *TranscriptionRequest) (*TranscriptionResponse, error)

	// GetProviderInfo returns provider metadata and capabilities.
	GetProviderInfo() ProviderInfo

	// ValidateConfiguration verifies the provider is usable (binary present,
	// model readable, credentials set). Called fail-fast at startup.
	ValidateConfiguration() error

	// HealthCheck verifies the provider is available and functioning. The
	// serving path never calls it: readiness is enforced once at startup via
	// ValidateConfiguration and /health stays a pure liveness probe. It is
	// part of the contract for operator tooling and future readiness probes.
	HealthCheck(ctx context.Context) error
}

// ProviderFactory creates provider instances based on configuration
type ProviderFactory interface {
	CreateProvider(providerType string, config map[string]interface{}) (TranscriptionProvider, error)

	GetAvailableProviders() []string
}
