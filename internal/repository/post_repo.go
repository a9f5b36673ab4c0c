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

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	db *database.DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *database.DB) PostRepository {
	return &postRepo{db: db}
}

const postColumns = `id, title, content, excerpt, tags, category, featured_image, published, author, created_at, updated_at`

// List retrieves posts matching the filter, newest first
func (r *postRepo) List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts`

	var conditions []string
	var args []interface{}

	if filter.PublishedOnly {
		conditions = append(conditions, fmt.Sprintf("published = $%d", len(args)+1))
		args = append(args, true)
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, filter.Category)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Skip, filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetByID retrieves a single post. A malformed id and a missing row both
// collapse to NotFound; the parse error stays wrapped for internal inspection.
func (r *postRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NotFound("Post not found", err)
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	post, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("Post not found")
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Insert stores a new post and returns the store-assigned id
func (r *postRepo) Insert(ctx context.Context, post *models.Post) (string, error) {
	query := `
		INSERT INTO posts (title, content, excerpt, tags, category, featured_image, published, author, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	var id string
	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Content, post.Excerpt, pq.Array(post.Tags), post.Category,
		post.FeaturedImage, post.Published, post.Author,
		post.CreatedAt, post.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Replace overwrites the mutable fields of an existing post. id, created_at
// and author are left untouched.
func (r *postRepo) Replace(ctx context.Context, id string, post *models.Post) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NotFound("Post not found", err)
	}

	query := `
		UPDATE posts
		SET title = $1, content = $2, excerpt = $3, tags = $4, category = $5,
		    featured_image = $6, published = $7, updated_at = $8
		WHERE id = $9
	`
	result, err := r.db.ExecContext(ctx, query,
		post.Title, post.Content, post.Excerpt, pq.Array(post.Tags), post.Category,
		post.FeaturedImage, post.Published, post.UpdatedAt, id,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("Post not found")
	}
	return nil
}

// Delete removes a post permanently
func (r *postRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NotFound("Post not found", err)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("Post not found")
	}
	return nil
}

// Categories returns the distinct category values across all posts,
// published or not.
func (r *postRepo) Categories(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, `SELECT DISTINCT category FROM posts ORDER BY category`)
}

// Tags returns the deduplicated union of tags across all posts.
func (r *postRepo) Tags(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, `SELECT DISTINCT unnest(tags) FROM posts`)
}

func (r *postRepo) queryStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &post.Excerpt, pq.Array(&post.Tags),
		&post.Category, &post.FeaturedImage, &post.Published, &post.Author,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return &post, nil
}
