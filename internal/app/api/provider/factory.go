package provider

import (
	"fmt"
)

// DefaultProviderFactory implements ProviderFactory interface
type DefaultProviderFactory struct{}

// NewProviderFactory creates a new provider factory
func NewProviderFactory() *DefaultProviderFactory {
	return &DefaultProviderFactory{}
}

// CreateProvider creates a provider instance based on type and configuration.
// The type must have been registered by importing its package; there is no
// fallback chain and no retry around the created provider.
func (f *DefaultProviderFactory) CreateProvider(providerType string, config map[string]interface{}) (TranscriptionProvider, error) {
	creator, err := GetProviderCreator(providerType)
	if err != nil {
		return nil, fmt.Errorf("unknown provider type %q: %w", providerType, err)
	}
	return creator(config)
}

// GetAvailableProviders returns a list of registered provider types
func (f *DefaultProviderFactory) GetAvailableProviders() []string {
	return ListRegisteredProviders()
}
