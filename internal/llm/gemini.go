package llm

import (
	"context"
	"fmt"
	"os"
	"strconv"

	genai "google.golang.org/genai"
)

// Generation parameters are fixed; they are part of the product's voice and
// not user-configurable per request.
var geminiGenerateConfig = &genai.GenerateContentConfig{
	Temperature:     genai.Ptr[float32](0.7),
	TopP:            genai.Ptr[float32](0.95),
	TopK:            genai.Ptr[float32](40),
	MaxOutputTokens: 2048,
}

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli   *genai.Client
	model string
	rl    *rpsLimiter
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	// Optional RPS limiter via env: LLM_RPS/GEMINI_RPS and LLM_BURST/GEMINI_BURST
	var rps float64
	var burst int
	if v := os.Getenv("LLM_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			rps = f
		}
	}
	if rps == 0 {
		if v := os.Getenv("GEMINI_RPS"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				rps = f
			}
		}
	}
	if v := os.Getenv("LLM_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			burst = n
		}
	}
	if burst == 0 {
		if v := os.Getenv("GEMINI_BURST"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				burst = n
			}
		}
	}
	return &GeminiClient{cli: cli, model: model, rl: newRPSLimiter(rps, burst)}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error {
	if g.rl != nil {
		g.rl.Stop()
	}
	return nil
}

// GenerateVision sends the prompt with the image inlined and returns the
// generated text. Failures are not retried; the caller owns that policy.
func (g *GeminiClient) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	if err := g.rl.Acquire(ctx); err != nil {
		return "", err
	}
	contents := []*genai.Content{{
		Parts: []*genai.Part{
			{Text: prompt},
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
		},
	}}
	resp, err := g.cli.Models.GenerateContent(ctx, g.model, contents, geminiGenerateConfig)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
