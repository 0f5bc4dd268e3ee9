package whisper_cpp

import (
	"fmt"

	"whisper-transcription/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider("whisper_cpp", createWhisperCppProvider)
}

// createWhisperCppProvider creates a whisper.cpp provider from configuration
func createWhisperCppProvider(config map[string]interface{}) (provider.TranscriptionProvider, error) {
	settings, ok := config["settings"].(map[string]interface{})
	if !ok {
		settings = config // Use entire config as settings if not nested
	}

	binaryPath, ok := settings["binary_path"].(string)
	if !ok || binaryPath == "" {
		return nil, fmt.Errorf("whisper_cpp provider requires 'binary_path' setting")
	}

	modelPath, ok := settings["model_path"].(string)
	if !ok || modelPath == "" {
		return nil, fmt.Errorf("whisper_cpp provider requires 'model_path' setting")
	}

	providerConfig := LocalProviderConfig{
		BinaryPath: binaryPath,
		ModelPath:  modelPath,
	}

	if tempDir, ok := settings["temp_dir"].(string); ok {
		providerConfig.TempDir = tempDir
	}

	return NewLocalTranscriber(providerConfig), nil
}
