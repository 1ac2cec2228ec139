package image

import (
	"context"
	"errors"
)

// Store archives the originally uploaded image per session so the frontend
// can re-fetch it for display.
type Store interface {
	Put(ctx context.Context, sessionID, mimeType string, content []byte) error
	Get(ctx context.Context, sessionID string) ([]byte, string, error)
	GetURL(ctx context.Context, sessionID string) (string, error)
}

var ErrNotFound = errors.New("image not found")
