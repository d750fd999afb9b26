package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"jackut/internal/httputil"
	"jackut/internal/model"
	"jackut/internal/service"
)

// RelationHandler serves the idol, crush and enemy tag operations.
type RelationHandler struct {
	sys *service.System
}

func NewRelationHandler(sys *service.System) *RelationHandler {
	return &RelationHandler{sys: sys}
}

// AddIdol tags {login} as an idol of the session owner
// POST /users/{login}/idols
func (h *RelationHandler) AddIdol(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "login")

	if err := h.sys.AddIdol(sessionToken(r), target); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CheckFan reports whether {login} is a fan of {idol}
// GET /users/{login}/idols/{idol}
func (h *RelationHandler) CheckFan(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")
	idol := chi.URLParam(r, "idol")

	isFan, err := h.sys.IsFan(login, idol)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"is_fan": isFan})
}

// Fans returns everyone who tagged {login} as an idol
// GET /users/{login}/fans
func (h *RelationHandler) Fans(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")

	fans, err := h.sys.Fans(login)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"fans": model.FormatList(fans),
	})
}

// AddCrush tags {login} as a crush of the session owner
// POST /users/{login}/crushes
func (h *RelationHandler) AddCrush(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "login")

	if err := h.sys.AddCrush(sessionToken(r), target); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CheckCrush reports whether the session owner tagged {login} as a crush
// GET /crushes/{login}
func (h *RelationHandler) CheckCrush(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "login")

	isCrush, err := h.sys.IsCrush(sessionToken(r), target)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"is_crush": isCrush})
}

// Crushes returns the session owner's crush tags
// GET /crushes
func (h *RelationHandler) Crushes(w http.ResponseWriter, r *http.Request) {
	crushes, err := h.sys.Crushes(sessionToken(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"crushes": model.FormatList(crushes),
	})
}

// AddEnemy tags {login} as an enemy of the session owner
// POST /users/{login}/enemies
func (h *RelationHandler) AddEnemy(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "login")

	if err := h.sys.AddEnemy(sessionToken(r), target); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
