package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"jackut/internal/httputil"
	"jackut/internal/model"
	"jackut/internal/service"
)

// FriendHandler serves the friendship state machine and its queries.
type FriendHandler struct {
	sys *service.System
}

func NewFriendHandler(sys *service.System) *FriendHandler {
	return &FriendHandler{sys: sys}
}

// Add sends a friend request from the session owner to {login}
// POST /users/{login}/friends
func (h *FriendHandler) Add(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "login")

	if err := h.sys.AddFriend(sessionToken(r), target); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// List returns {login}'s confirmed friends in the braced wire format
// GET /users/{login}/friends
func (h *FriendHandler) List(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")

	friends, err := h.sys.Friends(login)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"friends": model.FormatList(friends),
	})
}

// Check reports whether {friend} is a confirmed friend of {login}
// GET /users/{login}/friends/{friend}
func (h *FriendHandler) Check(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")
	friend := chi.URLParam(r, "friend")

	isFriend, err := h.sys.IsFriend(login, friend)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"is_friend": isFriend})
}
