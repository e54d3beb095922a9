package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/kost/internal/config"
	"github.com/joshua-takyi/kost/internal/connect"
	"github.com/joshua-takyi/kost/internal/container"
	"github.com/joshua-takyi/kost/internal/events"
	"github.com/joshua-takyi/kost/internal/helpers"
	"github.com/joshua-takyi/kost/internal/metrics"
	"github.com/joshua-takyi/kost/internal/models"
	"github.com/joshua-takyi/kost/internal/routes"
	"github.com/joshua-takyi/kost/internal/services"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup logger
	logger := setupLogger(cfg)
	logger.Info("Starting Kost API server", "environment", cfg.Environment)

	mongoClient, err := connect.MongoDBConnect(cfg.MongoDB.URI, cfg.MongoDB.Password)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to MongoDB successfully")

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := models.MongodbNewRepo(mongoClient, cfg.MongoDB.Database).EnsureIndexes(indexCtx); err != nil {
		cancelIndexes()
		logger.Error("Failed to create MongoDB indexes", "error", err)
		os.Exit(1)
	}
	cancelIndexes()

	var cache models.ListingCache = models.NopListingCache{}
	if cfg.Redis.Addr != "" {
		redisClient, err := connect.RedisConnect(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("Redis unavailable, listing cache disabled", "error", err)
		} else {
			cache = models.NewRedisListingCache(redisClient, cfg.Redis.ListingTTL)
			logger.Info("Connected to Redis successfully")
		}
	}

	var publisher services.EventPublisher = events.Nop{}
	var natsPublisher *events.Publisher
	if cfg.NATS.URL != "" {
		natsPublisher, err = events.NewPublisher(cfg.NATS.URL)
		if err != nil {
			logger.Warn("NATS unavailable, booking events disabled", "error", err)
		} else {
			publisher = natsPublisher
			logger.Info("Connected to NATS successfully")
		}
	}

	tokens := helpers.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if cfg.Auth.JWKSURL != "" {
		tokens, err = helpers.NewJWKSTokenManager(context.Background(), cfg.Auth.JWKSURL, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		if err != nil {
			logger.Error("Failed to load JWKS", "error", err)
			os.Exit(1)
		}
	}

	// Initialize dependency container
	appContainer := container.NewContainer(logger, mongoClient, cfg.MongoDB.Database, cache, publisher, tokens, metrics.New("kost"))

	// Setup routes
	router := routes.SetupRoutes(appContainer, routes.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		SecureCookies:  cfg.IsProduction(),
		ReleaseMode:    !cfg.IsDevelopment(),
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if natsPublisher != nil {
		natsPublisher.Close()
	}
	tokens.Close()
	if err := connect.RedisDisconnect(); err != nil {
		logger.Error("Error disconnecting from Redis", "error", err)
	}
	if err := connect.MongoDBDisconnect(); err != nil {
		logger.Error("Error disconnecting from MongoDB", "error", err)
	}

	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.LogLevel)

	var handler slog.Handler
	if cfg.IsProduction() {
		// JSON logging for production
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		// Human-readable logging for development
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
