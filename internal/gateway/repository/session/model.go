package session

import (
	"strings"

	"visualizeai/internal/engine"
)

// Session is the server-held record of one image-analysis conversation.
// The id and the image payload are immutable once assigned; the history is
// append-only and the difficulty may be overwritten by later requests.
type Session struct {
	ID            string             `json:"session_id"`
	ImageData     string             `json:"image_data"` // base64-encoded upload
	ImageMimeType string             `json:"image_mime_type"`
	AnalysisText  string             `json:"analysis_text"`
	Components    []engine.Component `json:"components"`
	History       []engine.Message   `json:"conversation_history"`
	Difficulty    engine.Difficulty  `json:"difficulty"`
}

func normalizeSession(s Session) Session {
	s.ID = strings.TrimSpace(s.ID)
	s.Difficulty = engine.ParseDifficulty(string(s.Difficulty))
	return s
}
