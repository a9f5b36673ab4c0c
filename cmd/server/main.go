package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portfolio-blog-api/internal/api"
	"github.com/portfolio-blog-api/internal/auth"
	"github.com/portfolio-blog-api/internal/config"
	"github.com/portfolio-blog-api/internal/database"
	"github.com/portfolio-blog-api/internal/ratelimit"
	"github.com/portfolio-blog-api/internal/repository"
	"github.com/portfolio-blog-api/internal/service"
	"github.com/portfolio-blog-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting Portfolio Blog API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Build the authorization gate for the configured mode
	var gate auth.Gate
	var tokens *auth.TokenVerifier
	switch cfg.Auth.Mode {
	case config.AuthModeToken:
		tokens = auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		gate = auth.NewTokenGate(tokens)
	case config.AuthModeSecret:
		gate = auth.NewSecretGate(cfg.Auth.BlogSecret)
	}
	log.Info().Str("auth_mode", cfg.Auth.Mode).Msg("Authorization gate configured")

	// Initialize services
	services := service.NewServices(repos, tokens, cfg, log)

	// Bootstrap the default admin account in token mode
	if cfg.Auth.Mode == config.AuthModeToken {
		if err := services.Auth.EnsureDefaultAdmin(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure default admin user")
		}
	}

	// Optional redis-backed rate limiter for credential endpoints
	var limiter ratelimit.Limiter
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer client.Close()
		limiter = ratelimit.NewRedisLimiter(client, "authrl", cfg.Redis.AuthLimit, cfg.Redis.AuthWindow)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Auth rate limiter enabled")
	}

	// Initialize router
	router := api.NewRouter(services, gate, limiter, db, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
