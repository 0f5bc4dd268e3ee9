package main

import (
	"fmt"
	"os"

	"whisper-transcription/cmd/whisper-server/cmd"
	"whisper-transcription/internal/config"

	// Import providers to register them
	_ "whisper-transcription/internal/app/api/openai/whisper"
	_ "whisper-transcription/internal/app/api/whisper_cpp"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load environment: %v\n", err)
		os.Exit(1)
	}

	cmd.Execute()
}
