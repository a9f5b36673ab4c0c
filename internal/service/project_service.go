package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/portfolio-blog-api/internal/models"
	"github.com/portfolio-blog-api/internal/repository"
)

// projectService drives the project lifecycle. Projects carry only created_at;
// replaces intentionally refresh no timestamp.
type projectService struct {
	repo repository.ProjectRepository
	log  zerolog.Logger
}

func newProjectService(repo repository.ProjectRepository, log zerolog.Logger) ProjectService {
	return &projectService{
		repo: repo,
		log:  log.With().Str("service", "project").Logger(),
	}
}

// List returns projects matching the filter, newest first
func (s *projectService) List(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, error) {
	return s.repo.List(ctx, filter)
}

// Get returns a single project by id
func (s *projectService) Get(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Create normalizes the payload, stores it and returns the persisted row
// re-read from the store.
func (s *projectService) Create(ctx context.Context, in *models.ProjectInput, identity string) (*models.Project, error) {
	project := normalizeProject(in)
	project.Author = identity
	project.CreatedAt = time.Now().UTC()

	id, err := s.repo.Insert(ctx, project)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", id).Str("author", identity).Msg("Project created")
	return s.repo.GetByID(ctx, id)
}

// Replace overwrites the mutable fields of an existing project
func (s *projectService) Replace(ctx context.Context, id string, in *models.ProjectInput) (*models.Project, error) {
	if err := s.repo.Replace(ctx, id, normalizeProject(in)); err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", id).Msg("Project updated")
	return s.repo.GetByID(ctx, id)
}

// Delete removes a project permanently
func (s *projectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("project_id", id).Msg("Project deleted")
	return nil
}

func normalizeProject(in *models.ProjectInput) *models.Project {
	technologies := in.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	featured := false
	if in.Featured != nil {
		featured = *in.Featured
	}
	return &models.Project{
		Title:        in.Title,
		Description:  in.Description,
		Content:      in.Content,
		Technologies: technologies,
		DemoURL:      in.DemoURL,
		GithubURL:    in.GithubURL,
		ImageURL:     in.ImageURL,
		Featured:     featured,
	}
}
