package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/portfolio-blog-api/internal/auth"
	"github.com/portfolio-blog-api/internal/models"
	"github.com/portfolio-blog-api/internal/service"
)

// AuthHandler handles credential endpoints. Register and Login exist only in
// token mode, VerifySecret only in secret mode; the router picks by mode.
type AuthHandler struct {
	services *service.Services
	gate     auth.Gate
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, gate auth.Gate, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		gate:     gate,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in models.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	userID, err := h.services.Auth.Register(c.Request.Context(), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
		"user_id": userID,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in models.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	token, err := h.services.Auth.Login(c.Request.Context(), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// VerifySecret handles POST /api/verify-secret. It always answers 200 with a
// boolean so clients can probe a secret before attempting a write.
func (h *AuthHandler) VerifySecret(c *gin.Context) {
	var in struct {
		BlogSecret string `json:"blog_secret"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	secretGate, ok := h.gate.(*auth.SecretGate)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": secretGate.Check(in.BlogSecret)})
}
