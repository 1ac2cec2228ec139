package conversation

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"visualizeai/internal/engine"
	"visualizeai/internal/gateway/repository/image"
	"visualizeai/internal/gateway/repository/session"
	"visualizeai/internal/llm"
)

var ErrSessionNotFound = errors.New("conversation: session not found")

// Service orchestrates one request at a time: load or create the session,
// compose the prompt, call the inference client, persist the result. It
// performs exactly one session write and one inference call per request, and
// writes nothing when inference fails.
type Service struct {
	sessions *session.Store
	images   image.Store
	client   llm.Client
}

func New(sessions *session.Store, images image.Store, client llm.Client) *Service {
	return &Service{
		sessions: sessions,
		images:   images,
		client:   client,
	}
}

type AnalyzeInput struct {
	Image      []byte
	MimeType   string
	Difficulty string
}

type AnalyzeResult struct {
	SessionID  string
	Analysis   string
	Components []engine.Component
}

// Analyze runs the initial image analysis and creates the session.
func (s *Service) Analyze(ctx context.Context, in AnalyzeInput) (AnalyzeResult, error) {
	if len(in.Image) == 0 {
		return AnalyzeResult{}, fmt.Errorf("conversation: image payload is required")
	}
	difficulty := engine.ParseDifficulty(in.Difficulty)

	prompt := engine.ComposeInitialAnalysis(difficulty)
	analysis, err := s.client.GenerateVision(ctx, prompt, in.Image, in.MimeType)
	if err != nil {
		return AnalyzeResult{}, fmt.Errorf("analyze image: %w", err)
	}

	components := engine.ExtractComponents(analysis)
	sessionID := uuid.NewString()

	s.sessions.Put(session.Session{
		ID:            sessionID,
		ImageData:     base64.StdEncoding.EncodeToString(in.Image),
		ImageMimeType: in.MimeType,
		AnalysisText:  analysis,
		Components:    components,
		History: []engine.Message{
			{Role: engine.RoleAssistant, Content: analysis},
		},
		Difficulty: difficulty,
	})

	// The archive copy only serves re-display; a failure here must not fail
	// the analysis that already succeeded.
	if s.images != nil {
		if err := s.images.Put(ctx, sessionID, in.MimeType, in.Image); err != nil {
			log.Printf("image archive put failed for %s: %v", sessionID, err)
		}
	}

	return AnalyzeResult{
		SessionID:  sessionID,
		Analysis:   analysis,
		Components: components,
	}, nil
}

type FollowUpInput struct {
	SessionID  string
	Question   string
	TapPoint   *engine.TapPoint
	Difficulty string
}

// FollowUp answers a conversational question about an analyzed image. The
// prompt is built from the history as loaded, before the new question is
// appended; the appended user and assistant turns are persisted afterwards.
func (s *Service) FollowUp(ctx context.Context, in FollowUpInput) (string, error) {
	sess, ok := s.sessions.Get(in.SessionID)
	if !ok {
		return "", ErrSessionNotFound
	}
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return "", fmt.Errorf("conversation: question is required")
	}
	difficulty := requestDifficulty(in.Difficulty, sess.Difficulty)

	window := engine.WindowFor(engine.ModeFollowUp, sess.History)
	prompt := engine.ComposeFollowUp(window, question, in.TapPoint, difficulty)

	answer, err := s.generate(ctx, prompt, sess)
	if err != nil {
		return "", fmt.Errorf("follow-up question: %w", err)
	}

	if _, ok := s.sessions.Update(sess.ID, func(cur *session.Session) {
		cur.History = append(cur.History,
			engine.Message{Role: engine.RoleUser, Content: question},
			engine.Message{Role: engine.RoleAssistant, Content: answer},
		)
		cur.Difficulty = difficulty
	}); !ok {
		return "", ErrSessionNotFound
	}
	return answer, nil
}

type WhatIfInput struct {
	SessionID  string
	Scenario   string
	Difficulty string
}

// WhatIf answers a hypothetical scenario grounded in the image, using only
// the recent history window.
func (s *Service) WhatIf(ctx context.Context, in WhatIfInput) (string, error) {
	sess, ok := s.sessions.Get(in.SessionID)
	if !ok {
		return "", ErrSessionNotFound
	}
	scenario := strings.TrimSpace(in.Scenario)
	if scenario == "" {
		return "", fmt.Errorf("conversation: scenario is required")
	}
	difficulty := requestDifficulty(in.Difficulty, sess.Difficulty)

	window := engine.WindowFor(engine.ModeWhatIf, sess.History)
	prompt := engine.ComposeWhatIf(window, scenario, difficulty)

	answer, err := s.generate(ctx, prompt, sess)
	if err != nil {
		return "", fmt.Errorf("what-if scenario: %w", err)
	}

	if _, ok := s.sessions.Update(sess.ID, func(cur *session.Session) {
		cur.History = append(cur.History,
			engine.Message{Role: engine.RoleUser, Content: scenario},
			engine.Message{Role: engine.RoleAssistant, Content: answer},
		)
		cur.Difficulty = difficulty
	}); !ok {
		return "", ErrSessionNotFound
	}
	return answer, nil
}

func (s *Service) generate(ctx context.Context, prompt string, sess session.Session) (string, error) {
	img, err := base64.StdEncoding.DecodeString(sess.ImageData)
	if err != nil {
		return "", fmt.Errorf("decode stored image: %w", err)
	}
	return s.client.GenerateVision(ctx, prompt, img, sess.ImageMimeType)
}

// requestDifficulty applies the per-request difficulty override; an absent
// value keeps the session's stored tier.
func requestDifficulty(raw string, stored engine.Difficulty) engine.Difficulty {
	if strings.TrimSpace(raw) == "" {
		return engine.ParseDifficulty(string(stored))
	}
	return engine.ParseDifficulty(raw)
}
