package whisper

import (
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"

	"whisper-transcription/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider("openai", createOpenAIProvider)
}

// createOpenAIProvider creates an OpenAI whisper provider from configuration.
// The API key comes from the 'api_key' auth or settings entry, falling back
// to the OPENAI_API_KEY environment variable.
func createOpenAIProvider(config map[string]interface{}) (provider.TranscriptionProvider, error) {
	settings, ok := config["settings"].(map[string]interface{})
	if !ok {
		settings = config
	}

	apiKey, _ := settings["api_key"].(string)
	if apiKey == "" {
		if auth, ok := config["auth"].(map[string]interface{}); ok {
			apiKey, _ = auth["api_key"].(string)
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("openai provider requires an API key: set 'api_key' or OPENAI_API_KEY")
	}

	return NewRemoteTranscriber(openai.NewClient(apiKey)), nil
}
