package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"study-buddy/backend/internal/api"
	"study-buddy/backend/internal/auth"
	"study-buddy/backend/internal/config"
	"study-buddy/backend/internal/database"
	"study-buddy/backend/internal/llm"
	"study-buddy/backend/internal/prompt"
	"study-buddy/backend/internal/repository"
	"study-buddy/backend/internal/service"
)

const shutdownTimeout = 15 * time.Second

// App holds the long-lived resources of the server process.
type App struct {
	DB     *sql.DB
	Server *http.Server
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx); err != nil {
		slog.Error("Server failed", "error", err)
		return 1
	}

	slog.Info("Server stopped")
	return 0
}

// NewApp opens the database and wires every service, handler and the router.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.")

	prompts, err := prompt.LoadCatalog(cfg.PromptsFile)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	repo := repository.NewSQLiteRepository(db)
	gateway := llm.NewGatewayProvider(cfg.GatewayURL, cfg.GatewayAPIKey, cfg.UpstreamTimeout)
	transcriber := llm.NewWhisperTranscriber(cfg.TranscriptionURL, cfg.TranscriptionAPIKey, cfg.UpstreamTimeout)
	settingsService := service.NewSettingsService(db, service.Settings{Model: cfg.GatewayModel})

	appSettings, err := settingsService.InitAndGet(context.Background())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize application settings: %w", err)
	}
	slog.Info("Loaded application settings", "model", appSettings.Model, "default_language", appSettings.DefaultLanguage)

	actionService := service.NewActionService(gateway, prompts, settingsService, cfg.GatewayModel)
	transcriptionService := service.NewTranscriptionService(transcriber)
	noteService := service.NewNoteService(repo)
	catalogService := service.NewCatalogService()

	handlers := api.Handlers{
		Study:         api.NewStudyHandler(actionService),
		Transcription: api.NewTranscriptionHandler(transcriptionService),
		Notes:         api.NewNoteHandler(noteService),
		Settings:      api.NewSettingsHandler(settingsService, catalogService),
	}
	router := api.NewRouter(handlers, auth.NewVerifier(cfg.AuthJWTSecret), cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	return &App{DB: db, Server: server}, nil
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully, letting in-flight streams finish within shutdownTimeout.
func (a *App) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting server", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
