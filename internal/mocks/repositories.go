package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/portfolio-blog-api/internal/apperrors"
	"github.com/portfolio-blog-api/internal/models"
	"github.com/portfolio-blog-api/internal/repository"
)

// MockPostRepository is an in-memory implementation of PostRepository with
// the same outward contract as the Postgres one: NotFound for unknown ids,
// created_at descending list order, replace leaving id/created_at/author
// untouched.
type MockPostRepository struct {
	Posts     map[string]*models.Post
	InsertErr error
}

// Verify interface compliance
var _ repository.PostRepository = (*MockPostRepository)(nil)

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{Posts: make(map[string]*models.Post)}
}

func (m *MockPostRepository) List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	matched := make([]*models.Post, 0)
	for _, p := range m.Posts {
		if filter.PublishedOnly && !p.Published {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Skip >= len(matched) {
		return []*models.Post{}, nil
	}
	matched = matched[filter.Skip:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	post, ok := m.Posts[id]
	if !ok {
		return nil, apperrors.NotFound("Post not found")
	}
	stored := *post
	return &stored, nil
}

func (m *MockPostRepository) Insert(ctx context.Context, post *models.Post) (string, error) {
	if m.InsertErr != nil {
		return "", m.InsertErr
	}
	stored := *post
	stored.ID = uuid.NewString()
	m.Posts[stored.ID] = &stored
	return stored.ID, nil
}

func (m *MockPostRepository) Replace(ctx context.Context, id string, post *models.Post) error {
	existing, ok := m.Posts[id]
	if !ok {
		return apperrors.NotFound("Post not found")
	}
	existing.Title = post.Title
	existing.Content = post.Content
	existing.Excerpt = post.Excerpt
	existing.Tags = post.Tags
	existing.Category = post.Category
	existing.FeaturedImage = post.FeaturedImage
	existing.Published = post.Published
	existing.UpdatedAt = post.UpdatedAt
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Posts[id]; !ok {
		return apperrors.NotFound("Post not found")
	}
	delete(m.Posts, id)
	return nil
}

func (m *MockPostRepository) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range m.Posts {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (m *MockPostRepository) Tags(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, p := range m.Posts {
		for _, tag := range p.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags, nil
}

// MockProjectRepository is an in-memory implementation of ProjectRepository
type MockProjectRepository struct {
	Projects  map[string]*models.Project
	InsertErr error
}

// Verify interface compliance
var _ repository.ProjectRepository = (*MockProjectRepository)(nil)

func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{Projects: make(map[string]*models.Project)}
}

func (m *MockProjectRepository) List(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, error) {
	matched := make([]*models.Project, 0)
	for _, p := range m.Projects {
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Skip >= len(matched) {
		return []*models.Project{}, nil
	}
	matched = matched[filter.Skip:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	project, ok := m.Projects[id]
	if !ok {
		return nil, apperrors.NotFound("Project not found")
	}
	return project, nil
}

func (m *MockProjectRepository) Insert(ctx context.Context, project *models.Project) (string, error) {
	if m.InsertErr != nil {
		return "", m.InsertErr
	}
	stored := *project
	stored.ID = uuid.NewString()
	m.Projects[stored.ID] = &stored
	return stored.ID, nil
}

func (m *MockProjectRepository) Replace(ctx context.Context, id string, project *models.Project) error {
	existing, ok := m.Projects[id]
	if !ok {
		return apperrors.NotFound("Project not found")
	}
	existing.Title = project.Title
	existing.Description = project.Description
	existing.Content = project.Content
	existing.Technologies = project.Technologies
	existing.DemoURL = project.DemoURL
	existing.GithubURL = project.GithubURL
	existing.ImageURL = project.ImageURL
	existing.Featured = project.Featured
	return nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Projects[id]; !ok {
		return apperrors.NotFound("Project not found")
	}
	delete(m.Projects, id)
	return nil
}

// MockUserRepository is an in-memory implementation of UserRepository
type MockUserRepository struct {
	Users map[string]*models.User // keyed by username
}

// Verify interface compliance
var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (string, error) {
	for _, u := range m.Users {
		if u.Username == user.Username || u.Email == user.Email {
			return "", apperrors.Conflict("Username or email already registered")
		}
	}
	stored := *user
	stored.ID = uuid.NewString()
	m.Users[stored.Username] = &stored
	return stored.ID, nil
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := m.Users[username]
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}
	return user, nil
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	for _, u := range m.Users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
