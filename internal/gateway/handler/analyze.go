package handler

import (
	"io"
	"net/http"

	"visualizeai/internal/engine"
	"visualizeai/internal/gateway/service/conversation"
)

// maxUploadBytes caps the image field at 10MB, matching the upload contract.
const maxUploadBytes = 10 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type analyzeResponse struct {
	SessionID  string             `json:"sessionId"`
	Analysis   string             `json:"analysis"`
	Components []engine.Component `json:"components"`
}

// HandleAnalyze accepts a multipart upload with an `image` field and an
// optional `difficulty` field, runs the initial analysis and returns the new
// session.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	// Allow some slack beyond the image cap for the other form fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+64<<10)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid or oversized multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !allowedImageTypes[mimeType] {
		writeError(w, http.StatusBadRequest, "Invalid file type. Only JPEG, PNG, WebP, and GIF are allowed.")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image upload")
		return
	}

	res, err := h.conv.Analyze(r.Context(), conversation.AnalyzeInput{
		Image:      data,
		MimeType:   mimeType,
		Difficulty: r.FormValue("difficulty"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to analyze image: "+err.Error())
		return
	}

	components := res.Components
	if components == nil {
		components = []engine.Component{}
	}
	writeJSON(w, http.StatusOK, analyzeResponse{
		SessionID:  res.SessionID,
		Analysis:   res.Analysis,
		Components: components,
	})
}
