package service

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/portfolio-blog-api/internal/auth"
	"github.com/portfolio-blog-api/internal/config"
	"github.com/portfolio-blog-api/internal/models"
	"github.com/portfolio-blog-api/internal/repository"
)

// PostService defines the lifecycle operations for blog posts
type PostService interface {
	List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, in *models.PostInput, identity string) (*models.Post, error)
	Replace(ctx context.Context, id string, in *models.PostInput) (*models.Post, error)
	Delete(ctx context.Context, id string) error
}

// ProjectService defines the lifecycle operations for projects
type ProjectService interface {
	List(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, in *models.ProjectInput, identity string) (*models.Project, error)
	Replace(ctx context.Context, id string, in *models.ProjectInput) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

// AuthService defines account registration and login (token variant)
type AuthService interface {
	Register(ctx context.Context, in *models.RegisterInput) (string, error)
	Login(ctx context.Context, in *models.LoginInput) (string, error)
	EnsureDefaultAdmin(ctx context.Context) error
}

// UploadService defines image upload storage
type UploadService interface {
	Save(ctx context.Context, contentType, originalName string, r io.Reader) (*models.UploadResult, error)
}

// TaxonomyService defines the read-only aggregations over the post collection
type TaxonomyService interface {
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
}

// Services holds all service interfaces
type Services struct {
	Post     PostService
	Project  ProjectService
	Auth     AuthService
	Upload   UploadService
	Taxonomy TaxonomyService
}

// NewServices creates all services. In secret mode new posts default to
// published, in token mode to draft; the token verifier is nil in secret mode
// and the auth service is never routed there.
func NewServices(repos *repository.Repositories, tokens *auth.TokenVerifier, cfg *config.Config, log zerolog.Logger) *Services {
	defaultPublished := cfg.Auth.Mode == config.AuthModeSecret

	return &Services{
		Post:     newPostService(repos.Post, defaultPublished, log),
		Project:  newProjectService(repos.Project, log),
		Auth:     newAuthService(repos.User, tokens, cfg.Auth.AdminPassword, log),
		Upload:   newUploadService(cfg.Upload, log),
		Taxonomy: newTaxonomyService(repos.Post),
	}
}
