// Package session manages the ephemeral token registry. Tokens are
// minted on login and die with the process, a reset or the account
// that owns them; nothing here is ever persisted.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Registry maps live session tokens to logins. A token is only valid
// while it is present in the map, so revocation is just deletion; the
// JWT envelope gives tokens a self-describing format, not authority.
type Registry struct {
	secret []byte
	tokens map[string]string
}

// NewRegistry creates an empty session registry signing tokens with
// the given secret.
func NewRegistry(secret string) *Registry {
	return &Registry{
		secret: []byte(secret),
		tokens: make(map[string]string),
	}
}

// Open mints a token for login and registers it.
func (r *Registry) Open(login string) (string, error) {
	claims := jwt.MapClaims{
		"login": login,
		"iat":   time.Now().Unix(),
		"jti":   uuid.NewString(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	r.tokens[token] = login
	return token, nil
}

// Resolve returns the login a token was minted for.
func (r *Registry) Resolve(token string) (string, bool) {
	login, ok := r.tokens[token]
	return login, ok
}

// Close revokes a single token.
func (r *Registry) Close(token string) {
	delete(r.tokens, token)
}

// CloseAll revokes every token minted for login.
func (r *Registry) CloseAll(login string) {
	for token, owner := range r.tokens {
		if owner == login {
			delete(r.tokens, token)
		}
	}
}

// Clear revokes every session.
func (r *Registry) Clear() {
	r.tokens = make(map[string]string)
}
