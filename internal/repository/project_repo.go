package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/portfolio-blog-api/internal/apperrors"
	"github.com/portfolio-blog-api/internal/database"
	"github.com/portfolio-blog-api/internal/models"
)

// projectRepo is the concrete implementation of ProjectRepository
type projectRepo struct {
	db *database.DB
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(db *database.DB) ProjectRepository {
	return &projectRepo{db: db}
}

const projectColumns = `id, title, description, content, technologies, demo_url, github_url, image_url, featured, author, created_at`

// List retrieves projects matching the filter, newest first
func (r *projectRepo) List(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`

	var args []interface{}
	if filter.FeaturedOnly {
		query += fmt.Sprintf(" WHERE featured = $%d", len(args)+1)
		args = append(args, true)
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Skip, filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*models.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// GetByID retrieves a single project; malformed ids collapse to NotFound
func (r *projectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NotFound("Project not found", err)
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("Project not found")
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

// Insert stores a new project and returns the store-assigned id
func (r *projectRepo) Insert(ctx context.Context, project *models.Project) (string, error) {
	query := `
		INSERT INTO projects (title, description, content, technologies, demo_url, github_url, image_url, featured, author, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	var id string
	err := r.db.QueryRowContext(ctx, query,
		project.Title, project.Description, project.Content, pq.Array(project.Technologies),
		project.DemoURL, project.GithubURL, project.ImageURL, project.Featured,
		project.Author, project.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Replace overwrites the mutable fields of an existing project. Projects have
// no updated_at; created_at and author stay untouched.
func (r *projectRepo) Replace(ctx context.Context, id string, project *models.Project) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NotFound("Project not found", err)
	}

	query := `
		UPDATE projects
		SET title = $1, description = $2, content = $3, technologies = $4,
		    demo_url = $5, github_url = $6, image_url = $7, featured = $8
		WHERE id = $9
	`
	result, err := r.db.ExecContext(ctx, query,
		project.Title, project.Description, project.Content, pq.Array(project.Technologies),
		project.DemoURL, project.GithubURL, project.ImageURL, project.Featured, id,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("Project not found")
	}
	return nil
}

// Delete removes a project permanently
func (r *projectRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NotFound("Project not found", err)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("Project not found")
	}
	return nil
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID, &project.Title, &project.Description, &project.Content,
		pq.Array(&project.Technologies), &project.DemoURL, &project.GithubURL,
		&project.ImageURL, &project.Featured, &project.Author, &project.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	return &project, nil
}
