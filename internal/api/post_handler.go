package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/portfolio-blog-api/internal/auth"
	"github.com/portfolio-blog-api/internal/models"
	"github.com/portfolio-blog-api/internal/service"
)

// PostHandler handles blog post endpoints
type PostHandler struct {
	services *service.Services
	gate     auth.Gate
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, gate auth.Gate, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		gate:     gate,
		log:      log.With().Str("handler", "post").Logger(),
	}
}

// List handles GET /api/posts
// Query: skip, limit, category, published_only (defaults true)
func (h *PostHandler) List(c *gin.Context) {
	publishedOnly, err := boolQuery(c, "published_only", true)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	filter := models.PostFilter{
		Category:      c.Query("category"),
		PublishedOnly: publishedOnly,
		Skip:          intQuery(c, "skip", 0),
		Limit:         intQuery(c, "limit", 10),
	}

	posts, err := h.services.Post.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.services.Post.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create handles POST /api/posts. The credential travels as a bearer header
// (token mode) or as the blog_secret body field (secret mode); the gate runs
// before any persistence.
func (h *PostHandler) Create(c *gin.Context) {
	var in models.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	identity, err := h.gate.AuthorizeWrite(auth.Credential{
		BearerHeader: c.GetHeader("Authorization"),
		Secret:       in.BlogSecret,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	post, err := h.services.Post.Create(c.Request.Context(), &in, identity)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Update handles PUT /api/posts/:id (full replace of mutable fields)
func (h *PostHandler) Update(c *gin.Context) {
	var in models.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	if _, err := h.gate.AuthorizeWrite(auth.Credential{
		BearerHeader: c.GetHeader("Authorization"),
		Secret:       in.BlogSecret,
	}); err != nil {
		respondError(c, h.log, err)
		return
	}

	post, err := h.services.Post.Replace(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/posts/:id. Deletes carry no JSON body, so in
// secret mode the credential arrives as the blog_secret query parameter.
func (h *PostHandler) Delete(c *gin.Context) {
	if _, err := h.gate.AuthorizeWrite(auth.Credential{
		BearerHeader: c.GetHeader("Authorization"),
		Secret:       c.Query("blog_secret"),
	}); err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
