package auth

import (
	"strings"

	"github.com/portfolio-blog-api/internal/apperrors"
)

// Credential carries whatever the request presented: the raw Authorization
// header and/or the shared secret extracted from body or query. Each gate
// consumes the part it understands and ignores the rest, which keeps the
// handler code path identical across auth modes.
type Credential struct {
	BearerHeader string
	Secret       string
}

// Gate authorizes a write operation. It is applied uniformly to create,
// update, delete and upload, and always before any persistence I/O. The
// returned identity is the authenticated username in token mode and empty in
// secret mode (writes are anonymous there).
type Gate interface {
	AuthorizeWrite(cred Credential) (identity string, err error)
}

// TokenGate authorizes via a bearer token in the Authorization header. A
// missing header and an invalid token both produce the same Unauthorized
// error; callers cannot distinguish "no attempt" from "bad attempt" by status.
type TokenGate struct {
	tokens *TokenVerifier
}

// NewTokenGate creates a gate backed by the given token verifier.
func NewTokenGate(tokens *TokenVerifier) *TokenGate {
	return &TokenGate{tokens: tokens}
}

func (g *TokenGate) AuthorizeWrite(cred Credential) (string, error) {
	header := strings.TrimSpace(cred.BearerHeader)
	if header == "" {
		return "", apperrors.Unauthorized("Invalid authentication credentials")
	}
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		header = strings.TrimSpace(header[7:])
	}
	username, err := g.tokens.Verify(header)
	if err != nil {
		return "", apperrors.Unauthorized("Invalid authentication credentials", err)
	}
	return username, nil
}

// SecretGate authorizes via exact comparison against a single
// process-configured secret string. It yields no identity.
type SecretGate struct {
	secret string
}

// NewSecretGate creates a gate comparing against the given secret.
func NewSecretGate(secret string) *SecretGate {
	return &SecretGate{secret: secret}
}

func (g *SecretGate) AuthorizeWrite(cred Credential) (string, error) {
	if !g.Check(cred.Secret) {
		return "", apperrors.Unauthorized("Invalid or missing blog secret key")
	}
	return "", nil
}

// Check reports whether the presented secret matches. It is side-effect free
// and backs the standalone verify-secret endpoint, so clients can test a
// secret before attempting a write.
func (g *SecretGate) Check(secret string) bool {
	return secret != "" && secret == g.secret
}
