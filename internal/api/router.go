package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/portfolio-blog-api/internal/auth"
	"github.com/portfolio-blog-api/internal/config"
	"github.com/portfolio-blog-api/internal/ratelimit"
	"github.com/portfolio-blog-api/internal/service"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewRouter creates and configures the Gin router. The auth mode decides
// which credential endpoints exist: register/login in token mode,
// verify-secret in secret mode. A nil limiter disables rate limiting on the
// credential endpoints; a nil HealthChecker makes the health endpoint static.
func NewRouter(services *service.Services, gate auth.Gate, limiter ratelimit.Limiter, db HealthChecker, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Public read-only mount for stored uploads
	router.Static(cfg.Upload.PublicURL, cfg.Upload.Dir)

	// Handlers
	postHandler := NewPostHandler(services, gate, log)
	projectHandler := NewProjectHandler(services, gate, log)
	authHandler := NewAuthHandler(services, gate, log)
	uploadHandler := NewUploadHandler(services, gate, log)
	taxonomyHandler := NewTaxonomyHandler(services, log)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck(db))

		// Blog posts
		api.GET("/posts", postHandler.List)
		api.GET("/posts/:id", postHandler.Get)
		api.POST("/posts", postHandler.Create)
		api.PUT("/posts/:id", postHandler.Update)
		api.DELETE("/posts/:id", postHandler.Delete)

		// Projects
		api.GET("/projects", projectHandler.List)
		api.GET("/projects/:id", projectHandler.Get)
		api.POST("/projects", projectHandler.Create)
		api.PUT("/projects/:id", projectHandler.Update)
		api.DELETE("/projects/:id", projectHandler.Delete)

		// Uploads and aggregations
		api.POST("/upload", uploadHandler.Upload)
		api.GET("/categories", taxonomyHandler.Categories)
		api.GET("/tags", taxonomyHandler.Tags)

		// Credential endpoints, rate limited when a limiter is configured
		credentials := api.Group("")
		if limiter != nil {
			credentials.Use(rateLimitMiddleware(limiter, log))
		}
		switch cfg.Auth.Mode {
		case config.AuthModeToken:
			credentials.POST("/auth/register", authHandler.Register)
			credentials.POST("/auth/login", authHandler.Login)
		case config.AuthModeSecret:
			credentials.POST("/verify-secret", authHandler.VerifySecret)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(db HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := db.HealthCheck(ctx); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection failed"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}
