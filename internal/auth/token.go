package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier issues and verifies signed bearer tokens. Tokens are stateless:
// the subject and expiry live in the token itself, there is no server-side
// session store.
type TokenVerifier struct {
	key []byte
	ttl time.Duration
}

// NewTokenVerifier creates a TokenVerifier signing with HS256.
func NewTokenVerifier(secret string, ttl time.Duration) *TokenVerifier {
	return &TokenVerifier{key: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the username as subject, expiring ttl from now.
func (v *TokenVerifier) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"exp": now.Add(v.ttl).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.key)
}

// Verify checks signature and expiry and returns the subject username. A bad
// signature, an expired token and a missing subject all yield an error;
// callers map it to Unauthorized.
func (v *TokenVerifier) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("subject claim missing")
	}
	return sub, nil
}
