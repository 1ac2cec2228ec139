package handler

import (
	"errors"
	"net/http"
	"strings"

	"visualizeai/internal/gateway/repository/image"
)

// HandleImage serves the archived original upload for a session so the
// frontend can re-display it.
func (h *Handler) HandleImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sessionID := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/api/image/"))
	if sessionID == "" || strings.Contains(sessionID, "/") {
		writeError(w, http.StatusBadRequest, "session id is required")
		return
	}
	if h.images == nil {
		writeError(w, http.StatusNotFound, "image archive is not configured")
		return
	}

	data, mimeType, err := h.images.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, image.ErrNotFound) {
			writeError(w, http.StatusNotFound, "image not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
