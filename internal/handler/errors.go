package handler

import (
	"errors"
	"net/http"

	"jackut/internal/httputil"
	"jackut/internal/model"
	"jackut/internal/transport/http/middleware"
)

// writeServiceError maps the service's sentinel errors onto the HTTP
// error envelope. Every handler funnels its failures through here so
// the taxonomy stays in one place.
func writeServiceError(w http.ResponseWriter, err error) {
	var enemyErr *model.EnemyError
	switch {
	case errors.As(err, &enemyErr):
		httputil.WriteForbidden(w, enemyErr.Error())
	case errors.Is(err, model.ErrInvalidSession),
		errors.Is(err, model.ErrInvalidCredentials):
		httputil.WriteUnauthorized(w, err.Error())
	case errors.Is(err, model.ErrUserNotFound),
		errors.Is(err, model.ErrCommunityNotFound),
		errors.Is(err, model.ErrAttributeNotSet),
		errors.Is(err, model.ErrNoMessages),
		errors.Is(err, model.ErrNoCommunityMessages):
		httputil.WriteNotFound(w, err.Error())
	case errors.Is(err, model.ErrAccountExists),
		errors.Is(err, model.ErrCommunityExists),
		errors.Is(err, model.ErrAlreadyFriends),
		errors.Is(err, model.ErrInvitePending),
		errors.Is(err, model.ErrAlreadyMember),
		errors.Is(err, model.ErrAlreadyIdol),
		errors.Is(err, model.ErrAlreadyCrush),
		errors.Is(err, model.ErrAlreadyEnemy):
		httputil.WriteConflict(w, err.Error())
	case errors.Is(err, model.ErrInvalidLogin),
		errors.Is(err, model.ErrInvalidPassword),
		errors.Is(err, model.ErrSelfFriend),
		errors.Is(err, model.ErrSelfMessage),
		errors.Is(err, model.ErrSelfFan),
		errors.Is(err, model.ErrSelfCrush),
		errors.Is(err, model.ErrSelfEnemy):
		httputil.WriteBadRequest(w, err.Error())
	default:
		httputil.WriteInternalError(w, err.Error())
	}
}

// sessionToken pulls the bearer token the auth middleware stashed in
// the request context.
func sessionToken(r *http.Request) string {
	token, _ := middleware.TokenFromContext(r.Context())
	return token
}
