package service

import (
	"context"

	"github.com/portfolio-blog-api/internal/repository"
)

// taxonomyService derives the distinct categories and the tag union across
// the whole post collection. Unlike the list operation there is no implicit
// published filter here, and both scans are unauthenticated reads.
type taxonomyService struct {
	posts repository.PostRepository
}

func newTaxonomyService(posts repository.PostRepository) TaxonomyService {
	return &taxonomyService{posts: posts}
}

func (s *taxonomyService) Categories(ctx context.Context) ([]string, error) {
	return s.posts.Categories(ctx)
}

func (s *taxonomyService) Tags(ctx context.Context) ([]string, error) {
	return s.posts.Tags(ctx)
}
