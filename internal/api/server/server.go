package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"whisper-transcription/internal/api/middleware"
	"whisper-transcription/internal/api/v1/handlers"
	"whisper-transcription/internal/api/v1/services"
)

// Config represents API server configuration
type Config struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Environment  string
}

// Server represents the API server
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a new API server
func NewServer(
	config Config,
	transcriptionService services.TranscriptionService,
	registry *prometheus.Registry,
	logger *slog.Logger,
) *Server {
	// Set Gin mode based on environment
	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Create router
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	transcriptionHandler := handlers.NewTranscriptionHandler(transcriptionService, logger)
	healthHandler := handlers.NewHealthHandler()

	// Register routes
	router.POST("/v1/audio/transcriptions", transcriptionHandler.Transcribe)
	router.GET("/health", healthHandler.Health)
	router.GET("/", healthHandler.ServiceInfo)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", config.Host, config.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		config:     config,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start starts the API server
func (s *Server) Start() error {
	s.logger.Info("Starting API server",
		"host", s.config.Host,
		"port", s.config.Port,
		"environment", s.config.Environment,
	)

	// Start server in a goroutine
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	s.logger.Info("API server started successfully",
		"address", s.httpServer.Addr,
	)

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	s.logger.Info("API server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
