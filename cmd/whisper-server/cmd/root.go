package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"whisper-transcription/internal/app"
	"whisper-transcription/internal/config"
)

var (
	host string
	port string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "whisper-server",
	Short: "HTTP service for Whisper speech-to-text transcription",
	Long: `whisper-server exposes a Whisper transcription backend over HTTP.
Audio is uploaded as multipart form data and the transcribed text is
returned as JSON. Local whisper.cpp and the OpenAI API are supported
as backends.`,
	RunE: runServer,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&host, "host", "", "bind address (default from WHISPER_HOST, else 0.0.0.0)")
	rootCmd.Flags().StringVar(&port, "port", "", "listen port (default from WHISPER_PORT, else 9000)")
}

func runServer(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	serverConfig := config.GetServerConfig()
	if host != "" {
		serverConfig.Host = host
	}
	if port != "" {
		serverConfig.Port = port
	}

	srv, err := app.InitializeServer(serverConfig, logger)
	if err != nil {
		logger.Error("Failed to initialize server", "error", err)
		return err
	}

	if err := srv.Start(); err != nil {
		return err
	}

	// Block until a termination signal arrives
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("Received shutdown signal", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
