//go:build wireinject
// +build wireinject

package app

import (
	"log/slog"

	"github.com/google/wire"

	"whisper-transcription/internal/api/server"
)

// InitializeServer builds the API server with its full dependency graph.
func InitializeServer(config server.Config, logger *slog.Logger) (*server.Server, error) {
	wire.Build(
		provideMetricsRegistry,
		provideMetrics,
		provideTranscriptionProvider,
		provideTranscriptionService,
		server.NewServer,
	)
	return nil, nil
}
