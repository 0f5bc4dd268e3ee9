package whisper_cpp

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"whisper-transcription/internal/app/api/provider"
	"whisper-transcription/internal/app/audio"
	"whisper-transcription/internal/app/util/files"
)

// LocalTranscriber runs a local whisper.cpp binary for transcription. Each
// call spawns its own subprocess, so concurrent invocations are safe; they
// compete for CPU but share no mutable state.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
	tempDir    string
}

// LocalProviderConfig represents configuration for the whisper.cpp provider.
type LocalProviderConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	TempDir    string `yaml:"temp_dir"`
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(config LocalProviderConfig) *LocalTranscriber {
	tempDir := config.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	return &LocalTranscriber{
		binaryPath: config.BinaryPath,
		modelPath:  config.ModelPath,
		tempDir:    tempDir,
	}
}

// Transcript converts the audio file to text with language auto-detection
// and compatibility mode enabled.
func (lt *LocalTranscriber) Transcript(inputFilePath string) (string, error) {
	resp, err := lt.TranscriptWithOptions(context.Background(), &provider.TranscriptionRequest{
		InputFilePath:     inputFilePath,
		CompatibilityMode: true,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// TranscriptWithOptions runs the whisper.cpp binary on the input file.
// The context is accepted for interface compatibility only: a transcription
// that has started runs to completion and is not cancelled mid-flight.
func (lt *LocalTranscriber) TranscriptWithOptions(_ context.Context, request *provider.TranscriptionRequest) (*provider.TranscriptionResponse, error) {
	startTime := time.Now()

	if request.InputFilePath == "" {
		return nil, &provider.TranscriptionError{
			Code:     "invalid_input",
			Message:  "input file path is required",
			Provider: "whisper_cpp",
		}
	}

	if _, err := os.Stat(request.InputFilePath); os.IsNotExist(err) {
		return nil, &provider.TranscriptionError{
			Code:     "file_not_found",
			Message:  fmt.Sprintf("input file not found: %s", request.InputFilePath),
			Provider: "whisper_cpp",
		}
	}

	// The model expects 16 kHz mono PCM; resample internally when the upload
	// arrives in any other container or rate.
	inputFilePath := request.InputFilePath
	is16kHzWav, err := audio.Is16kHzWavFile(inputFilePath)
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:     "audio_probe_failed",
			Message:  fmt.Sprintf("error probing input file: %v", err),
			Provider: "whisper_cpp",
		}
	}

	if !is16kHzWav {
		converted, err := audio.ConvertTo16kHzWav(inputFilePath)
		if err != nil {
			return nil, &provider.TranscriptionError{
				Code:     "audio_conversion_failed",
				Message:  fmt.Sprintf("error converting input file: %v", err),
				Provider: "whisper_cpp",
			}
		}
		defer os.Remove(converted)
		inputFilePath = converted
	}

	outputBase := filepath.Join(lt.tempDir, fmt.Sprintf("whisper_%d", time.Now().UnixNano()))
	args := lt.buildArgs(request.Language, request.CompatibilityMode, inputFilePath, outputBase)

	slog.Debug("running whisper.cpp", "binary", lt.binaryPath, "args", args)

	command := exec.Command(lt.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return nil, &provider.TranscriptionError{
			Code:     "transcription_failed",
			Message:  fmt.Sprintf("whisper.cpp failed: %v, stderr: %s", err, stderr.String()),
			Provider: "whisper_cpp",
		}
	}
	defer os.Remove(outputBase + ".txt")

	text, err := files.ReadOutputFile(outputBase + ".txt")
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:     "output_read_failed",
			Message:  fmt.Sprintf("failed to read output file: %v", err),
			Provider: "whisper_cpp",
		}
	}

	return &provider.TranscriptionResponse{
		Text:           text,
		Language:       request.Language,
		ProcessingTime: time.Since(startTime),
		ModelUsed:      lt.modelPath,
	}, nil
}

// buildArgs assembles the whisper.cpp command line. An empty language maps to
// "auto" so the model detects the language itself; compatibility mode forces
// the CPU path over GPU offload.
func (lt *LocalTranscriber) buildArgs(language string, compatibilityMode bool, inputFilePath, outputBase string) []string {
	if language == "" {
		language = "auto"
	}

	args := []string{
		"-m", lt.modelPath,
		"-l", language,
		"-otxt",
		"-f", inputFilePath,
		"-of", outputBase,
	}

	if compatibilityMode {
		args = append(args, "--no-gpu")
	}

	return args
}

// GetProviderInfo returns metadata about the whisper.cpp provider
func (lt *LocalTranscriber) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:                      "whisper_cpp",
		DisplayName:               "Whisper.cpp (Local)",
		Type:                      provider.ProviderTypeLocal,
		SupportedLanguages:        nil, // whisper supports all languages
		SupportsLanguageDetection: true,
		RequiresInternet:          false,
		RequiresAPIKey:            false,
		RequiresBinary:            true,
		DefaultModel:              filepath.Base(lt.modelPath),
	}
}

// ValidateConfiguration checks that the binary and model exist. This is the
// expensive-ish startup gate: the process refuses to serve without them.
func (lt *LocalTranscriber) ValidateConfiguration() error {
	if _, err := os.Stat(lt.binaryPath); os.IsNotExist(err) {
		return fmt.Errorf("whisper.cpp binary not found at %s", lt.binaryPath)
	}

	if _, err := os.Stat(lt.modelPath); os.IsNotExist(err) {
		return fmt.Errorf("whisper model not found at %s", lt.modelPath)
	}

	if err := os.MkdirAll(lt.tempDir, 0755); err != nil {
		return fmt.Errorf("cannot create temp directory %s: %v", lt.tempDir, err)
	}

	return nil
}

// HealthCheck performs a health check on the provider
func (lt *LocalTranscriber) HealthCheck(ctx context.Context) error {
	if err := lt.ValidateConfiguration(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
