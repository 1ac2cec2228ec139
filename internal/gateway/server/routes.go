package server

import (
	"net/http"

	"visualizeai/internal/gateway/handler"
	"visualizeai/internal/gateway/middleware"
)

func NewMux(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/analyze", h.HandleAnalyze)
	mux.HandleFunc("/api/follow-up", h.HandleFollowUp)
	mux.HandleFunc("/api/what-if", h.HandleWhatIf)
	mux.HandleFunc("/api/image/", h.HandleImage)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	return middleware.CORS(mux)
}
