package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/portfolio-blog-api/internal/auth"
	"github.com/portfolio-blog-api/internal/service"
)

// UploadHandler handles image uploads
type UploadHandler struct {
	services *service.Services
	gate     auth.Gate
	log      zerolog.Logger
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(services *service.Services, gate auth.Gate, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		services: services,
		gate:     gate,
		log:      log.With().Str("handler", "upload").Logger(),
	}
}

// Upload handles POST /api/upload (multipart). Authorization comes first:
// the bearer header in token mode, the blog_secret query or form parameter in
// secret mode (multipart bodies carry no JSON field for it). Only then is the
// content type checked.
func (h *UploadHandler) Upload(c *gin.Context) {
	secret := c.Query("blog_secret")
	if secret == "" {
		secret = c.PostForm("blog_secret")
	}

	if _, err := h.gate.AuthorizeWrite(auth.Credential{
		BearerHeader: c.GetHeader("Authorization"),
		Secret:       secret,
	}); err != nil {
		respondError(c, h.log, err)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	result, err := h.services.Upload.Save(
		c.Request.Context(),
		header.Header.Get("Content-Type"),
		header.Filename,
		file,
	)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
