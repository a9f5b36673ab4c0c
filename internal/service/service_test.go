package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/portfolio-blog-api/internal/apperrors"
	"github.com/portfolio-blog-api/internal/auth"
	"github.com/portfolio-blog-api/internal/config"
	"github.com/portfolio-blog-api/internal/mocks"
	"github.com/portfolio-blog-api/internal/models"
	"github.com/portfolio-blog-api/internal/repository"
	"github.com/portfolio-blog-api/internal/service"
)

type testHarness struct {
	services    *service.Services
	postRepo    *mocks.MockPostRepository
	projectRepo *mocks.MockProjectRepository
	userRepo    *mocks.MockUserRepository
	tokens      *auth.TokenVerifier
	uploadDir   string
}

func newTestHarness(t *testing.T, mode string) *testHarness {
	t.Helper()

	postRepo := mocks.NewMockPostRepository()
	projectRepo := mocks.NewMockProjectRepository()
	userRepo := mocks.NewMockUserRepository()
	uploadDir := t.TempDir()

	repos := &repository.Repositories{
		Post:    postRepo,
		Project: projectRepo,
		User:    userRepo,
	}

	cfg := &config.Config{
		Auth: config.AuthConfig{
			Mode:          mode,
			JWTSecret:     "test-signing-key",
			TokenTTL:      time.Hour,
			BlogSecret:    "test-blog-secret",
			AdminPassword: "admin123",
		},
		Upload: config.UploadConfig{
			Dir:       uploadDir,
			PublicURL: "/uploads",
		},
	}

	tokens := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	services := service.NewServices(repos, tokens, cfg, zerolog.Nop())

	return &testHarness{
		services:    services,
		postRepo:    postRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		tokens:      tokens,
		uploadDir:   uploadDir,
	}
}

func TestPostService_Create_Defaults(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)
	ctx := context.Background()

	created, err := h.services.Post.Create(ctx, &models.PostInput{
		Title:    "First Post",
		Content:  "Some content",
		Excerpt:  "Short excerpt",
		Category: "go",
	}, "admin")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == "" {
		t.Error("Created post should have an id")
	}
	if created.Author != "admin" {
		t.Errorf("Expected author 'admin', got %q", created.Author)
	}
	if created.Published {
		t.Error("Token mode create without published should default to draft")
	}
	if created.Tags == nil || len(created.Tags) != 0 {
		t.Errorf("Omitted tags should become an empty list, got %#v", created.Tags)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("Timestamps should be assigned on create")
	}
}

func TestPostService_Create_SecretModeDefaultsPublished(t *testing.T) {
	h := newTestHarness(t, config.AuthModeSecret)

	created, err := h.services.Post.Create(context.Background(), &models.PostInput{
		Title:    "First Post",
		Content:  "Some content",
		Excerpt:  "Short excerpt",
		Category: "go",
	}, "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !created.Published {
		t.Error("Secret mode create without published should default to published")
	}
	if created.Author != "" {
		t.Errorf("Secret mode posts are anonymous, got author %q", created.Author)
	}
}

func TestPostService_Create_ExplicitPublishedWins(t *testing.T) {
	h := newTestHarness(t, config.AuthModeSecret)

	published := false
	created, err := h.services.Post.Create(context.Background(), &models.PostInput{
		Title:     "Draft Post",
		Content:   "Some content",
		Excerpt:   "Short excerpt",
		Category:  "go",
		Published: &published,
	}, "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Published {
		t.Error("Explicit published=false should override the mode default")
	}
}

func TestPostService_Replace_PreservesCreatedAt(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)
	ctx := context.Background()

	created, err := h.services.Post.Create(ctx, &models.PostInput{
		Title:    "Original",
		Content:  "Some content",
		Excerpt:  "Short excerpt",
		Category: "go",
	}, "admin")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	updated, err := h.services.Post.Replace(ctx, created.ID, &models.PostInput{
		Title:    "Renamed",
		Content:  "New content",
		Excerpt:  "New excerpt",
		Category: "databases",
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if updated.Title != "Renamed" {
		t.Errorf("Expected updated title, got %q", updated.Title)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Replace must not change created_at")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("Replace should advance updated_at")
	}
	if updated.Author != "admin" {
		t.Errorf("Replace must not change the author, got %q", updated.Author)
	}
}

func TestPostService_Replace_NotFound(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)

	_, err := h.services.Post.Replace(context.Background(), "missing-id", &models.PostInput{
		Title:    "Renamed",
		Content:  "New content",
		Excerpt:  "New excerpt",
		Category: "go",
	})
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("Expected NotFound, got %v", err)
	}
}

func TestPostService_Delete(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)
	ctx := context.Background()

	created, err := h.services.Post.Create(ctx, &models.PostInput{
		Title:    "Doomed",
		Content:  "Some content",
		Excerpt:  "Short excerpt",
		Category: "go",
	}, "admin")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := h.services.Post.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := h.services.Post.Get(ctx, created.ID); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("Deleted post should be gone, got %v", err)
	}
	if err := h.services.Post.Delete(ctx, created.ID); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("Second delete should be NotFound, got %v", err)
	}
}

func TestProjectService_Create_Defaults(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)

	created, err := h.services.Project.Create(context.Background(), &models.ProjectInput{
		Title:       "Chatbot",
		Description: "A chatbot",
		Content:     "Long write-up",
	}, "admin")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Featured {
		t.Error("Featured should default to false")
	}
	if created.Technologies == nil || len(created.Technologies) != 0 {
		t.Errorf("Omitted technologies should become an empty list, got %#v", created.Technologies)
	}
	if created.Author != "admin" {
		t.Errorf("Expected author 'admin', got %q", created.Author)
	}
	if created.CreatedAt.IsZero() {
		t.Error("created_at should be assigned on create")
	}
}

func TestProjectService_Replace_PreservesCreatedAt(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)
	ctx := context.Background()

	created, err := h.services.Project.Create(ctx, &models.ProjectInput{
		Title:       "Chatbot",
		Description: "A chatbot",
		Content:     "Long write-up",
	}, "admin")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	featured := true
	updated, err := h.services.Project.Replace(ctx, created.ID, &models.ProjectInput{
		Title:       "Chatbot v2",
		Description: "A better chatbot",
		Content:     "Longer write-up",
		Featured:    &featured,
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if !updated.Featured {
		t.Error("Explicit featured=true should be stored")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Replace must not change created_at")
	}
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)
	ctx := context.Background()

	id, err := h.services.Auth.Register(ctx, &models.RegisterInput{
		Username: "writer",
		Email:    "writer@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if id == "" {
		t.Error("Register should return the new user id")
	}

	token, err := h.services.Auth.Login(ctx, &models.LoginInput{
		Username: "writer",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	subject, err := h.tokens.Verify(token)
	if err != nil {
		t.Fatalf("Issued token should verify: %v", err)
	}
	if subject != "writer" {
		t.Errorf("Expected token subject 'writer', got %q", subject)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)
	ctx := context.Background()

	if _, err := h.services.Auth.Register(ctx, &models.RegisterInput{
		Username: "writer",
		Email:    "writer@example.com",
		Password: "correct horse",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := h.services.Auth.Register(ctx, &models.RegisterInput{
		Username: "writer",
		Email:    "other@example.com",
		Password: "another one",
	})
	if apperrors.KindOf(err) != apperrors.KindConflict {
		t.Errorf("Duplicate username should be Conflict, got %v", err)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)
	ctx := context.Background()

	if _, err := h.services.Auth.Register(ctx, &models.RegisterInput{
		Username: "writer",
		Email:    "writer@example.com",
		Password: "correct horse",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	cases := []struct {
		name  string
		input models.LoginInput
	}{
		{"wrong password", models.LoginInput{Username: "writer", Password: "wrong"}},
		{"unknown user", models.LoginInput{Username: "nobody", Password: "correct horse"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.services.Auth.Login(ctx, &tc.input)
			if apperrors.KindOf(err) != apperrors.KindUnauthorized {
				t.Errorf("Expected Unauthorized, got %v", err)
			}
		})
	}
}

func TestAuthService_EnsureDefaultAdmin(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)
	ctx := context.Background()

	if err := h.services.Auth.EnsureDefaultAdmin(ctx); err != nil {
		t.Fatalf("EnsureDefaultAdmin failed: %v", err)
	}
	// Second run is a no-op
	if err := h.services.Auth.EnsureDefaultAdmin(ctx); err != nil {
		t.Fatalf("Second EnsureDefaultAdmin failed: %v", err)
	}

	token, err := h.services.Auth.Login(ctx, &models.LoginInput{
		Username: "admin",
		Password: "admin123",
	})
	if err != nil {
		t.Fatalf("Bootstrap admin should be able to log in: %v", err)
	}
	if token == "" {
		t.Error("Login should issue a token")
	}
}

func TestTaxonomyService_AggregatesAcrossAllPosts(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)
	ctx := context.Background()

	published := true
	draft := false
	inputs := []*models.PostInput{
		{Title: "A", Content: "c", Excerpt: "e", Category: "go", Tags: []string{"concurrency", "channels"}, Published: &published},
		{Title: "B", Content: "c", Excerpt: "e", Category: "databases", Tags: []string{"postgres"}, Published: &draft},
		{Title: "C", Content: "c", Excerpt: "e", Category: "go", Tags: []string{"concurrency"}, Published: &published},
	}
	for _, in := range inputs {
		if _, err := h.services.Post.Create(ctx, in, "admin"); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	categories, err := h.services.Taxonomy.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(categories) != 2 {
		t.Errorf("Expected 2 distinct categories including the draft's, got %v", categories)
	}

	tags, err := h.services.Taxonomy.Tags(ctx)
	if err != nil {
		t.Fatalf("Tags failed: %v", err)
	}
	if len(tags) != 3 {
		t.Errorf("Expected 3 distinct tags, got %v", tags)
	}
}

func TestPostService_List_FilterAndPagination(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)
	ctx := context.Background()

	published := true
	for i, title := range []string{"Oldest", "Middle", "Newest"} {
		in := &models.PostInput{Title: title, Content: "c", Excerpt: "e", Category: "go", Published: &published}
		if i == 1 {
			in.Category = "databases"
		}
		if _, err := h.services.Post.Create(ctx, in, "admin"); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	posts, err := h.services.Post.List(ctx, models.PostFilter{PublishedOnly: true, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("Expected 3 posts, got %d", len(posts))
	}
	if posts[0].Title != "Newest" || posts[2].Title != "Oldest" {
		t.Errorf("Posts should be newest first, got %q .. %q", posts[0].Title, posts[2].Title)
	}

	goPosts, err := h.services.Post.List(ctx, models.PostFilter{Category: "go", Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(goPosts) != 2 {
		t.Errorf("Expected 2 posts in category 'go', got %d", len(goPosts))
	}

	page, err := h.services.Post.List(ctx, models.PostFilter{Skip: 1, Limit: 1})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page) != 1 || page[0].Title != "Middle" {
		t.Errorf("Skip/limit page should hold the middle post, got %+v", page)
	}
}
