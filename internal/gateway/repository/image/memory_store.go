package image

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type memoryEntry struct {
	content  []byte
	mimeType string
}

type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Put(_ context.Context, sessionID, mimeType string, content []byte) error {
	if s == nil {
		return fmt.Errorf("store is nil")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = memoryEntry{
		content:  append([]byte(nil), content...),
		mimeType: mimeType,
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) ([]byte, string, error) {
	if s == nil {
		return nil, "", fmt.Errorf("store is nil")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, "", fmt.Errorf("session_id is required")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.data[sessionID]
	if !ok {
		return nil, "", ErrNotFound
	}
	return append([]byte(nil), entry.content...), entry.mimeType, nil
}

func (s *MemoryStore) GetURL(context.Context, string) (string, error) {
	// Memory store has no addressable URLs.
	return "", nil
}
