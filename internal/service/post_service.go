package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/portfolio-blog-api/internal/models"
	"github.com/portfolio-blog-api/internal/repository"
)

// postService normalizes inbound payloads and drives the post lifecycle
// against the repository.
type postService struct {
	repo             repository.PostRepository
	defaultPublished bool
	log              zerolog.Logger
}

func newPostService(repo repository.PostRepository, defaultPublished bool, log zerolog.Logger) PostService {
	return &postService{
		repo:             repo,
		defaultPublished: defaultPublished,
		log:              log.With().Str("service", "post").Logger(),
	}
}

// List returns posts matching the filter, newest first
func (s *postService) List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	return s.repo.List(ctx, filter)
}

// Get returns a single post by id
func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.repo.GetByID(ctx, id)
}

// Create normalizes the payload, stores it and returns the persisted row
// re-read from the store. The identity (token variant) is stamped as author;
// an empty identity leaves the post anonymous.
func (s *postService) Create(ctx context.Context, in *models.PostInput, identity string) (*models.Post, error) {
	now := time.Now().UTC()
	post := s.normalize(in)
	post.Author = identity
	post.CreatedAt = now
	post.UpdatedAt = now

	id, err := s.repo.Insert(ctx, post)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", id).Str("author", identity).Msg("Post created")
	return s.repo.GetByID(ctx, id)
}

// Replace overwrites the mutable fields of an existing post. created_at is
// never touched; updated_at is refreshed to now.
func (s *postService) Replace(ctx context.Context, id string, in *models.PostInput) (*models.Post, error) {
	post := s.normalize(in)
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, id, post); err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", id).Msg("Post updated")
	return s.repo.GetByID(ctx, id)
}

// Delete removes a post permanently
func (s *postService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("post_id", id).Msg("Post deleted")
	return nil
}

// normalize maps the transport payload onto a storable record: tags default
// to the empty list, published falls back to the mode default when absent.
// The blog_secret field of the input is simply never copied over.
func (s *postService) normalize(in *models.PostInput) *models.Post {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	published := s.defaultPublished
	if in.Published != nil {
		published = *in.Published
	}
	return &models.Post{
		Title:         in.Title,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		Tags:          tags,
		Category:      in.Category,
		FeaturedImage: in.FeaturedImage,
		Published:     published,
	}
}
