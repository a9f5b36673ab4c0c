package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/portfolio-blog-api/internal/apperrors"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want apperrors.Kind
	}{
		{"not found", apperrors.NotFound("Post not found"), apperrors.KindNotFound},
		{"unauthorized", apperrors.Unauthorized("Invalid authentication credentials"), apperrors.KindUnauthorized},
		{"validation", apperrors.Validation("limit must be an integer"), apperrors.KindValidation},
		{"media type", apperrors.InvalidMediaType("Only image files are allowed"), apperrors.KindInvalidMediaType},
		{"conflict", apperrors.Conflict("Username or email already registered"), apperrors.KindConflict},
		{"plain error", errors.New("boom"), apperrors.KindInternal},
		{"nil", nil, apperrors.KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := apperrors.KindOf(tc.err); got != tc.want {
				t.Errorf("KindOf = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("looking up post: %w", apperrors.NotFound("Post not found"))
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Error("Kind should survive fmt.Errorf wrapping")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperrors.NotFound("Post not found"), http.StatusNotFound},
		{apperrors.Unauthorized("Invalid authentication credentials"), http.StatusUnauthorized},
		{apperrors.Validation("skip must be an integer"), http.StatusBadRequest},
		{apperrors.InvalidMediaType("Only image files are allowed"), http.StatusBadRequest},
		{apperrors.Conflict("Username or email already registered"), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := apperrors.HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestMessageOf(t *testing.T) {
	if got := apperrors.MessageOf(apperrors.NotFound("Post not found")); got != "Post not found" {
		t.Errorf("MessageOf = %q", got)
	}
	// Unclassified errors never leak their text
	if got := apperrors.MessageOf(errors.New("pq: deadlock detected")); got != "Internal server error" {
		t.Errorf("MessageOf = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("invalid UUID length")
	err := apperrors.NotFound("Post not found", cause)

	if !errors.Is(err, cause) {
		t.Error("Cause should be reachable through errors.Is")
	}
	if err.Error() != "Post not found: invalid UUID length" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err := apperrors.NotFound("Post not found"); err.Error() != "Post not found" {
		t.Errorf("Error() without cause = %q", err.Error())
	}
}
