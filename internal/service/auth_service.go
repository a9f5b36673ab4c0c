package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/portfolio-blog-api/internal/apperrors"
	"github.com/portfolio-blog-api/internal/auth"
	"github.com/portfolio-blog-api/internal/models"
	"github.com/portfolio-blog-api/internal/repository"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@portfolio.com"
)

// authService handles registration and login for the token auth variant.
type authService struct {
	users         repository.UserRepository
	tokens        *auth.TokenVerifier
	adminPassword string
	log           zerolog.Logger
}

func newAuthService(users repository.UserRepository, tokens *auth.TokenVerifier, adminPassword string, log zerolog.Logger) AuthService {
	return &authService{
		users:         users,
		tokens:        tokens,
		adminPassword: adminPassword,
		log:           log.With().Str("service", "auth").Logger(),
	}
}

// Register creates a new account and returns its id. A taken username or
// email fails with Conflict.
func (s *authService) Register(ctx context.Context, in *models.RegisterInput) (string, error) {
	exists, err := s.users.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return "", apperrors.Conflict("Username or email already registered")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.users.Create(ctx, &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", id).Str("username", in.Username).Msg("User registered")
	return id, nil
}

// Login verifies the credentials and issues a bearer token. An unknown
// username and a wrong password produce the same Unauthorized error.
func (s *authService) Login(ctx context.Context, in *models.LoginInput) (string, error) {
	user, err := s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return "", apperrors.Unauthorized("Incorrect username or password")
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !auth.CheckPasswordHash(in.Password, user.PasswordHash) {
		return "", apperrors.Unauthorized("Incorrect username or password")
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// EnsureDefaultAdmin creates the bootstrap admin account when no such user
// exists yet, so a fresh deployment is immediately usable.
func (s *authService) EnsureDefaultAdmin(ctx context.Context) error {
	_, err := s.users.FindByUsername(ctx, defaultAdminUsername)
	if err == nil {
		return nil
	}
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	_, err = s.Register(ctx, &models.RegisterInput{
		Username: defaultAdminUsername,
		Email:    defaultAdminEmail,
		Password: s.adminPassword,
	})
	if err != nil {
		// Lost a race against another instance doing the same bootstrap.
		var appErr *apperrors.Error
		if errors.As(err, &appErr) && appErr.Kind == apperrors.KindConflict {
			return nil
		}
		return err
	}

	s.log.Info().Str("username", defaultAdminUsername).Msg("Default admin user created")
	return nil
}
