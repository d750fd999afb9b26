package middleware

import (
	"context"
	"net/http"
	"strings"

	"jackut/internal/httputil"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// TokenKey is the context key for the caller's session token
	TokenKey contextKey = "session_token"
)

// Auth extracts the bearer session token from the Authorization header
// and stashes it in the request context. Requests without a token are
// rejected; whether the token maps to a live session is the service's
// call, so revoked tokens fail with the same error everywhere.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string

		authHeader := r.Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = parts[1]
			}
		}

		if token == "" {
			httputil.WriteUnauthorized(w, "Missing session token")
			return
		}

		ctx := context.WithValue(r.Context(), TokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TokenFromContext extracts the session token from the request context.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
