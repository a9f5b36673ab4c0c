package repository

import (
	"context"

	"github.com/portfolio-blog-api/internal/database"
	"github.com/portfolio-blog-api/internal/models"
)

// PostRepository defines the persistence contract for blog posts. GetByID,
// Replace and Delete report a missing or malformed id as a NotFound error;
// Insert returns the assigned id so callers can re-read the stored row.
type PostRepository interface {
	List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Insert(ctx context.Context, post *models.Post) (string, error)
	Replace(ctx context.Context, id string, post *models.Post) error
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
}

// ProjectRepository defines the persistence contract for projects.
type ProjectRepository interface {
	List(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Insert(ctx context.Context, project *models.Project) (string, error)
	Replace(ctx context.Context, id string, project *models.Project) error
	Delete(ctx context.Context, id string) error
}

// UserRepository defines the persistence contract for accounts (token auth
// variant only).
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (string, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Post    PostRepository
	Project ProjectRepository
	User    UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Post:    NewPostRepo(db),
		Project: NewProjectRepo(db),
		User:    NewUserRepo(db),
	}
}
