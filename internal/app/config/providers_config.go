package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProvidersConfig represents the overall configuration for all providers
type ProvidersConfig struct {
	DefaultProvider string                    `yaml:"default_provider"`
	Providers       map[string]ProviderConfig `yaml:"providers"`
}

// ProviderConfig represents configuration for a single provider
type ProviderConfig struct {
	Type     string                 `yaml:"type"`
	Enabled  bool                   `yaml:"enabled"`
	Auth     map[string]interface{} `yaml:"auth,omitempty"`
	Settings map[string]interface{} `yaml:"settings,omitempty"`
}

// LoadProvidersConfig loads provider configuration from a YAML file
func LoadProvidersConfig(configPath string) (*ProvidersConfig, error) {
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config ProvidersConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.expandEnvironmentVariables()
	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// expandEnvironmentVariables replaces ${VAR} values in auth and settings
// sections with their environment values.
func (c *ProvidersConfig) expandEnvironmentVariables() {
	for _, provider := range c.Providers {
		for key, value := range provider.Auth {
			if strValue, ok := value.(string); ok {
				if strings.HasPrefix(strValue, "${") && strings.HasSuffix(strValue, "}") {
					envVar := strings.TrimSuffix(strings.TrimPrefix(strValue, "${"), "}")
					provider.Auth[key] = os.Getenv(envVar)
				}
			}
		}

		for key, value := range provider.Settings {
			if strValue, ok := value.(string); ok {
				if strings.HasPrefix(strValue, "${") && strings.HasSuffix(strValue, "}") {
					envVar := strings.TrimSuffix(strings.TrimPrefix(strValue, "${"), "}")
					provider.Settings[key] = os.Getenv(envVar)
				}
			}
		}
	}
}

// setDefaults sets default values for the configuration
func (c *ProvidersConfig) setDefaults() {
	if c.DefaultProvider == "" && len(c.Providers) > 0 {
		if _, ok := c.Providers["whisper_cpp"]; ok {
			c.DefaultProvider = "whisper_cpp"
		} else {
			for name, provider := range c.Providers {
				if provider.Enabled {
					c.DefaultProvider = name
					break
				}
			}
		}
	}
}

// Validate validates the configuration
func (c *ProvidersConfig) Validate() error {
	hasEnabledProvider := false
	for _, provider := range c.Providers {
		if provider.Enabled {
			hasEnabledProvider = true
			break
		}
	}

	if !hasEnabledProvider {
		return fmt.Errorf("at least one provider must be enabled")
	}

	if c.DefaultProvider != "" {
		provider, exists := c.Providers[c.DefaultProvider]
		if !exists {
			return fmt.Errorf("default provider '%s' does not exist", c.DefaultProvider)
		}
		if !provider.Enabled {
			return fmt.Errorf("default provider '%s' is not enabled", c.DefaultProvider)
		}
	}

	validTypes := map[string]bool{
		"whisper_cpp": true,
		"openai":      true,
	}

	for name, provider := range c.Providers {
		if !validTypes[provider.Type] {
			return fmt.Errorf("invalid provider type '%s' for provider '%s'", provider.Type, name)
		}
	}

	return nil
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	if path := os.Getenv("PROVIDERS_CONFIG_PATH"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "providers.yaml"
	}

	return filepath.Join(home, ".whisper-transcription", "providers.yaml")
}
