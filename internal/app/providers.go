package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"whisper-transcription/internal/api/v1/services"
	"whisper-transcription/internal/app/api/provider"
	appconfig "whisper-transcription/internal/app/config"
	"whisper-transcription/internal/config"
)

// provideTranscriptionProvider builds the configured transcription provider.
// It prefers the providers YAML config when one exists at the default path
// and falls back to environment variables otherwise. The provider's
// configuration is validated before the server accepts traffic.
func provideTranscriptionProvider(logger *slog.Logger) (provider.TranscriptionProvider, error) {
	providerType, providerConfig := resolveProviderConfig()

	factory := provider.NewProviderFactory()
	p, err := factory.CreateProvider(providerType, providerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider %q: %w", providerType, err)
	}

	if err := p.ValidateConfiguration(); err != nil {
		return nil, fmt.Errorf("provider %q configuration invalid: %w", providerType, err)
	}

	info := p.GetProviderInfo()
	logger.Info("Transcription provider ready",
		"provider", info.Name,
		"type", info.Type,
	)

	return p, nil
}

// resolveProviderConfig returns the provider type and its settings. A
// providers YAML file wins when present; environment variables are the
// fallback for container deployments without a config file.
func resolveProviderConfig() (string, map[string]interface{}) {
	configPath := appconfig.GetDefaultConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		if cfg, err := appconfig.LoadProvidersConfig(configPath); err == nil {
			name := cfg.DefaultProvider
			pc := cfg.Providers[name]
			return pc.Type, map[string]interface{}{
				"auth":     pc.Auth,
				"settings": pc.Settings,
			}
		}
	}

	providerType := os.Getenv("WHISPER_PROVIDER")
	if providerType == "" {
		providerType = "whisper_cpp"
	}

	settings := map[string]interface{}{}
	switch providerType {
	case "whisper_cpp":
		settings["binary_path"] = os.Getenv("WHISPER_CPP_BINARY")
		settings["model_path"] = os.Getenv("WHISPER_CPP_MODEL")
		if tempDir := config.GetTempDir(); tempDir != "" {
			settings["temp_dir"] = tempDir
		}
	case "openai":
		settings["api_key"] = os.Getenv("OPENAI_API_KEY")
	}

	return providerType, map[string]interface{}{"settings": settings}
}

func provideMetricsRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func provideMetrics(registry *prometheus.Registry) *provider.Metrics {
	return provider.NewMetrics(registry)
}

func provideTranscriptionService(
	p provider.TranscriptionProvider,
	metrics *provider.Metrics,
	logger *slog.Logger,
) services.TranscriptionService {
	return services.NewTranscriptionService(p, config.GetTempDir(), metrics, logger)
}
