package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jackut/internal/httputil"
	"jackut/internal/model"
	"jackut/internal/service"
)

// CommunityHandler serves community lifecycle, broadcast and queries.
type CommunityHandler struct {
	sys *service.System
}

func NewCommunityHandler(sys *service.System) *CommunityHandler {
	return &CommunityHandler{sys: sys}
}

type createCommunityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create registers a community owned by the session owner
// POST /communities
func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := h.sys.CreateCommunity(sessionToken(r), req.Name, req.Description); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{"name": req.Name})
}

// Join adds the session owner to {name}
// POST /communities/{name}/join
func (h *CommunityHandler) Join(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.sys.JoinCommunity(sessionToken(r), name); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type broadcastRequest struct {
	Message string `json:"message"`
}

// Broadcast fans a message out to {name}'s current members
// POST /communities/{name}/messages
func (h *CommunityHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req broadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := h.sys.Broadcast(sessionToken(r), name, req.Message); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Read dequeues the caller's next community broadcast, scanning joined
// communities in creation order
// POST /communities/messages/read
func (h *CommunityHandler) Read(w http.ResponseWriter, r *http.Request) {
	msg, err := h.sys.ReadCommunityMessage(sessionToken(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// Get returns a community's description, owner and member list
// GET /communities/{name}
func (h *CommunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	description, err := h.sys.CommunityDescription(name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	owner, err := h.sys.CommunityOwner(name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	members, err := h.sys.CommunityMembers(name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"name":        name,
		"description": description,
		"owner":       owner,
		"members":     model.FormatList(members),
	})
}

// UserCommunities returns the communities {login} joined, in join order
// GET /users/{login}/communities
func (h *CommunityHandler) UserCommunities(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")

	names, err := h.sys.Communities(login)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"communities": model.FormatList(names),
	})
}
