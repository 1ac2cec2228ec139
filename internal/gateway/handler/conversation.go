package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"visualizeai/internal/engine"
	"visualizeai/internal/gateway/service/conversation"
)

type followUpRequest struct {
	SessionID  string           `json:"sessionId"`
	Question   string           `json:"question"`
	TapPoint   *engine.TapPoint `json:"tapPoint,omitempty"`
	Difficulty string           `json:"difficulty"`
}

type whatIfRequest struct {
	SessionID  string `json:"sessionId"`
	Scenario   string `json:"scenario"`
	Difficulty string `json:"difficulty"`
}

type answerResponse struct {
	Answer string `json:"answer"`
}

// HandleFollowUp answers a question about an existing session, optionally
// biased toward a tapped region of the image.
func (h *Handler) HandleFollowUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in followUpRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(in.SessionID) == "" || strings.TrimSpace(in.Question) == "" {
		writeError(w, http.StatusBadRequest, "sessionId and question are required")
		return
	}

	answer, err := h.conv.FollowUp(r.Context(), conversation.FollowUpInput{
		SessionID:  in.SessionID,
		Question:   in.Question,
		TapPoint:   in.TapPoint,
		Difficulty: in.Difficulty,
	})
	if err != nil {
		h.writeConversationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{Answer: answer})
}

// HandleWhatIf answers a hypothetical scenario against an existing session.
func (h *Handler) HandleWhatIf(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in whatIfRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(in.SessionID) == "" || strings.TrimSpace(in.Scenario) == "" {
		writeError(w, http.StatusBadRequest, "sessionId and scenario are required")
		return
	}

	answer, err := h.conv.WhatIf(r.Context(), conversation.WhatIfInput{
		SessionID:  in.SessionID,
		Scenario:   in.Scenario,
		Difficulty: in.Difficulty,
	})
	if err != nil {
		h.writeConversationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{Answer: answer})
}

// writeConversationError maps service failures to the HTTP contract: an
// unknown session is the caller's mistake, everything else is a server-side
// failure. A new session is never created implicitly.
func (h *Handler) writeConversationError(w http.ResponseWriter, err error) {
	if errors.Is(err, conversation.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "session not found or expired")
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
