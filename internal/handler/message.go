package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jackut/internal/httputil"
	"jackut/internal/service"
)

// MessageHandler serves direct recado sending and reading.
type MessageHandler struct {
	sys *service.System
}

func NewMessageHandler(sys *service.System) *MessageHandler {
	return &MessageHandler{sys: sys}
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

// Send enqueues a recado onto {login}'s queue
// POST /users/{login}/messages
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "login")

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := h.sys.SendMessage(sessionToken(r), target, req.Message); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Read dequeues the caller's oldest recado. POST because reading
// consumes the message.
// POST /messages/read
func (h *MessageHandler) Read(w http.ResponseWriter, r *http.Request) {
	msg, err := h.sys.ReadMessage(sessionToken(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}
