package handler

import (
	"encoding/json"
	"net/http"

	"visualizeai/internal/gateway/repository/image"
	"visualizeai/internal/gateway/service/conversation"
)

// Handler exposes the conversation engine over plain JSON/multipart HTTP.
type Handler struct {
	conv   *conversation.Service
	images image.Store
}

func New(conv *conversation.Service, images image.Store) *Handler {
	return &Handler{conv: conv, images: images}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
