package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rag-mecanico/internal/api"
	"rag-mecanico/internal/api/handlers"
	"rag-mecanico/internal/repository"
	"rag-mecanico/internal/service"
	"rag-mecanico/pkg/auth"
	"rag-mecanico/pkg/config"
	"rag-mecanico/pkg/logger"
	"rag-mecanico/pkg/polly"
	"rag-mecanico/pkg/postgres"

	"go.uber.org/zap"
)

// @title Miguel Mecánico API
// @version 1.0
// @description Asistente de voz para diagnóstico y mantenimiento de vehículos
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@miguel-mecanico.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Miguel Mecánico service", zap.String("agent", cfg.Agent.Name))

	ctx := context.Background()

	// Embedding model is loaded lazily on first use
	loader, modelName, err := service.NewModelLoader(&cfg.Embedding, cfg.Database.Dimension)
	if err != nil {
		appLogger.Fatal("Invalid embedding configuration", zap.Error(err))
	}
	embedder := service.NewEmbeddingService(loader, modelName, cfg.Database.Dimension, logger.Named("embedding"))
	defer func() {
		if err := embedder.Close(); err != nil {
			appLogger.Warn("Failed to release embedding model", zap.Error(err))
		}
	}()

	// Vector store is optional; without it chat answers with the no-match reply
	var index service.VectorIndex
	if cfg.Database.Configured() {
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to create database pool", zap.Error(err))
		}
		defer db.Close()
		index = repository.NewKnowledgeRepository(db, cfg.Database.IndexName, logger.Named("repository"))
	} else {
		appLogger.Warn("DB_HOST not set, knowledge search is disabled")
	}

	ragService := service.NewRAGService(embedder, index, &cfg.RAG, cfg.Database.IndexName, cfg.Agent.Name, logger.Named("rag"))
	if ragService.Configured() {
		go func() {
			warmCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()
			if err := ragService.EnsureReady(warmCtx); err != nil {
				appLogger.Warn("Knowledge index not ready yet, will retry on demand", zap.Error(err))
			}
		}()
	}

	// Speech falls back to browser TTS when AWS credentials are missing
	var synth service.SpeechSynthesizer
	if cfg.Speech.Configured() {
		synth = service.NewPollySynthesizer(polly.NewClient(&cfg.Speech))
	} else {
		appLogger.Warn("AWS credentials not set, speech will use browser TTS")
	}
	speechService := service.NewSpeechService(synth, &cfg.Speech, logger.Named("speech"))

	responseService := service.NewResponseService(cfg.Agent.Name, logger.Named("response"))
	chatService := service.NewChatService(ragService, responseService, logger.Named("chat"))
	healthService := service.NewHealthService(ragService, speechService, cfg.Agent.Name, cfg.Speech.VoiceID, appLogger)

	// Initialize JWT manager
	var jwtManager *auth.JWTManager
	if cfg.Auth.Enabled() {
		jwtManager = auth.NewJWTManager(cfg.Auth.SecretKey, cfg.Auth.Expiration)
	}

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	speechHandler := handlers.NewSpeechHandler(speechService, appLogger)
	knowledgeHandler := handlers.NewKnowledgeHandler(ragService, appLogger)
	healthHandler := handlers.NewHealthHandler(healthService)

	// Setup router
	app := api.SetupRouter(chatHandler, speechHandler, knowledgeHandler, healthHandler, jwtManager, &cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
