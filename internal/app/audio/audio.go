package audio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"whisper-transcription/internal/app/model"
)

// Is16kHzWavFile reports whether the file is already 16 kHz signed 16-bit PCM,
// the input format whisper.cpp expects.
func Is16kHzWavFile(filePath string) (bool, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("ffprobe failed for %s: %w", filePath, err)
	}

	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(output, &probeOutput); err != nil {
		return false, fmt.Errorf("parsing ffprobe output: %w", err)
	}

	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 {
			return true, nil
		}
	}

	return false, nil
}

// ConvertTo16kHzWav resamples the input to a mono 16 kHz WAV next to the
// input file and returns the new path. The caller owns the returned file and
// is responsible for removing it. Any container ffmpeg can decode is accepted.
func ConvertTo16kHzWav(inputFilePath string) (string, error) {
	outputFilePath := Output16kHzWavPath(inputFilePath)

	cmd := exec.Command("ffmpeg", "-y", "-i", inputFilePath, "-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", outputFilePath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg error: %v, stderr: %s", err, stderr.String())
	}

	return outputFilePath, nil
}

// Output16kHzWavPath returns the path ConvertTo16kHzWav writes for an input.
func Output16kHzWavPath(inputFilePath string) string {
	return strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "_16khz.wav"
}
