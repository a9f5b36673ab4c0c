package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/portfolio-blog-api/internal/auth"
	"github.com/portfolio-blog-api/internal/models"
	"github.com/portfolio-blog-api/internal/service"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	services *service.Services
	gate     auth.Gate
	log      zerolog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(services *service.Services, gate auth.Gate, log zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{
		services: services,
		gate:     gate,
		log:      log.With().Str("handler", "project").Logger(),
	}
}

// List handles GET /api/projects
// Query: skip, limit, featured_only (defaults false)
func (h *ProjectHandler) List(c *gin.Context) {
	featuredOnly, err := boolQuery(c, "featured_only", false)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	filter := models.ProjectFilter{
		FeaturedOnly: featuredOnly,
		Skip:         intQuery(c, "skip", 0),
		Limit:        intQuery(c, "limit", 10),
	}

	projects, err := h.services.Project.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get handles GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.services.Project.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create handles POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var in models.ProjectInput
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

	project, err := h.services.Project.Create(c.Request.Context(), &in, identity)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Update handles PUT /api/projects/:id (full replace of mutable fields)
func (h *ProjectHandler) Update(c *gin.Context) {
	var in models.ProjectInput
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

	project, err := h.services.Project.Replace(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if _, err := h.gate.AuthorizeWrite(auth.Credential{
		BearerHeader: c.GetHeader("Authorization"),
		Secret:       c.Query("blog_secret"),
	}); err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.services.Project.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
