package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutput16kHzWavPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"webm upload", "/tmp/upload-123.webm", "/tmp/upload-123_16khz.wav"},
		{"mp3", "/data/a.mp3", "/data/a_16khz.wav"},
		{"no extension", "/data/raw", "/data/raw_16khz.wav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Output16kHzWavPath(tt.input))
		})
	}
}
