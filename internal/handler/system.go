package handler

import (
	"net/http"

	"jackut/internal/httputil"
	"jackut/internal/service"
)

// SystemHandler serves lifecycle operations: account removal, the
// full-state reset and the snapshot write. Reset and shutdown mirror
// the scripted-harness surface and are deliberately unauthenticated.
type SystemHandler struct {
	sys *service.System
}

func NewSystemHandler(sys *service.System) *SystemHandler {
	return &SystemHandler{sys: sys}
}

// RemoveAccount deletes the session owner and cascades the cleanup
// DELETE /account
func (h *SystemHandler) RemoveAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.RemoveAccount(sessionToken(r)); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Reset wipes all registries and the snapshot file
// POST /system/reset
func (h *SystemHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Reset(); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Shutdown writes the snapshot file
// POST /system/shutdown
func (h *SystemHandler) Shutdown(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Shutdown(); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
