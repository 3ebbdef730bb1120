package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-intelligence/docs"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/handler"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/repository"
	"github.com/johnquangdev/meeting-intelligence/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-intelligence/internal/infrastructure/storage"
	aiuse "github.com/johnquangdev/meeting-intelligence/internal/usecase/ai"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/task"
	pkgai "github.com/johnquangdev/meeting-intelligence/pkg/ai"
	"github.com/johnquangdev/meeting-intelligence/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-intelligence/pkg/validator"
)

// @title           Meeting Intelligence API
// @version         1.0.0
// @description     Upload meeting audio, get a transcript, a structured summary and action items.
// @BasePath        /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Initialize Database
	logger.Info("📦 Connecting to database...")
	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if cfg.Database.AutoMigrate {
		logger.Info("🔄 Running migrations...")
		if err := database.Migrate(db, cfg.Database.Driver, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	} else {
		logger.Info("🔄 Skipping migrations; run cmd/migrate to manage the schema")
	}

	// Initialize audio storage
	logger.Info("🗄️  Initializing audio storage...", zap.String("type", cfg.Storage.Type))
	store, err := newAudioStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize audio storage", zap.Error(err))
	}

	// Initialize AI components
	logger.Info("🤖 Initializing AI components...")
	aiService, err := newAIService(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize AI service", zap.Error(err))
	}

	// Initialize repositories
	logger.Info("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)

	meetingService := meeting.NewMeetingService(meetingRepo, actionItemRepo, store, aiService, cfg.Storage.MaxUploadSize, logger)
	taskService := task.NewTaskService(actionItemRepo, logger)

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	logger.Info("🛣️  Setting up routes...")
	router := handler.NewRouter(
		handler.NewHealthHandler(store, cfg.GeminiConfigured(), logger),
		handler.NewMeetingHandler(meetingService, cfg.Storage.MaxUploadSize, logger),
		handler.NewTaskHandler(taskService, logger),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newAudioStore(ctx context.Context, cfg *config.Config) (storage.AudioStore, error) {
	if cfg.Storage.Type == "minio" {
		return storage.NewMinIOStore(ctx, &cfg.Storage)
	}
	return storage.NewLocalStore(cfg.Storage.UploadDir)
}

// newAIService picks the transcriber and summarizer named in config. A provider without
// credentials is left unset so the server still starts and uploads fail with a clear error.
func newAIService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (aiuse.Service, error) {
	var gemini *pkgai.GeminiClient
	if cfg.GeminiConfigured() {
		client, err := pkgai.NewGeminiClient(ctx, &cfg.AI)
		if err != nil {
			return nil, err
		}
		gemini = client
	}

	var transcriber aiuse.Transcriber
	switch {
	case cfg.AI.Transcriber == "assemblyai" && cfg.AI.AssemblyAIAPIKey != "":
		client, err := pkgai.NewAssemblyAIClient(&cfg.AI)
		if err != nil {
			return nil, err
		}
		transcriber = client
	case cfg.AI.Transcriber == "gemini" && gemini != nil:
		transcriber = aiuse.NewFileTranscriber(gemini, cfg.AI.PollInterval, cfg.AI.PollTimeout, logger)
	default:
		logger.Warn("⚠️  No transcription provider configured", zap.String("transcriber", cfg.AI.Transcriber))
	}

	var generator aiuse.TextGenerator
	switch {
	case cfg.AI.Summarizer == "groq" && cfg.AI.GroqAPIKey != "":
		generator = pkgai.NewGroqClient(&cfg.AI)
	case cfg.AI.Summarizer == "gemini" && gemini != nil:
		generator = gemini
	default:
		logger.Warn("⚠️  No summary provider configured", zap.String("summarizer", cfg.AI.Summarizer))
	}

	logger.Info("✅ AI service ready",
		zap.String("transcriber", cfg.AI.Transcriber),
		zap.String("summarizer", cfg.AI.Summarizer),
	)
	return aiuse.NewService(transcriber, generator, logger), nil
}
