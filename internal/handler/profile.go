package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jackut/internal/httputil"
	"jackut/internal/service"
)

// ProfileHandler serves profile attribute reads and edits.
type ProfileHandler struct {
	sys *service.System
}

func NewProfileHandler(sys *service.System) *ProfileHandler {
	return &ProfileHandler{sys: sys}
}

// GetAttribute resolves one profile attribute of any user
// GET /users/{login}/attributes/{name}
func (h *ProfileHandler) GetAttribute(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")
	name := chi.URLParam(r, "name")

	value, err := h.sys.GetAttribute(login, name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"value": value})
}

type editProfileRequest struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// EditProfile upserts an attribute of the session owner
// PUT /profile
func (h *ProfileHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	var req editProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := h.sys.EditProfile(sessionToken(r), req.Attribute, req.Value); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
