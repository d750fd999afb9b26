package handler

import (
	"encoding/json"
	"net/http"

	"jackut/internal/httputil"
	"jackut/internal/service"
)

// AuthHandler groups account creation and login endpoints.
type AuthHandler struct {
	sys *service.System
}

func NewAuthHandler(sys *service.System) *AuthHandler {
	return &AuthHandler{sys: sys}
}

type registerRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Register handles account creation
// POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := h.sys.CreateAccount(req.Login, req.Password, req.Name); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{"login": req.Login})
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Login authenticates and opens a session
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	token, err := h.sys.Login(req.Login, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}
