package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

func (s *Store) ensureLoadedFile() {
	s.loadOnce.Do(func() {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var rows []Session
		if err := json.Unmarshal(b, &rows); err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, row := range rows {
			id := strings.TrimSpace(row.ID)
			if id == "" {
				continue
			}
			s.byID[id] = normalizeSession(row)
		}
	})
}

func (s *Store) saveFile() {
	s.mu.RLock()
	rows := make([]Session, 0, len(s.byID))
	for _, sess := range s.byID {
		rows = append(rows, sess)
	}
	s.mu.RUnlock()

	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	_ = os.WriteFile(s.path, b, 0o644)
}

func (s *Store) getFile(sessionID string) (Session, bool) {
	s.ensureLoadedFile()
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return Session{}, false
	}
	s.mu.RLock()
	sess, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	return sess, true
}

func (s *Store) putFile(sess Session) {
	s.ensureLoadedFile()
	normalized := normalizeSession(sess)
	if normalized.ID == "" {
		return
	}
	s.mu.Lock()
	s.byID[normalized.ID] = normalized
	s.mu.Unlock()
	s.saveFile()
}

func (s *Store) updateFile(sessionID string, update func(*Session)) (Session, bool) {
	s.ensureLoadedFile()
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return Session{}, false
	}
	s.mu.Lock()
	sess, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return Session{}, false
	}
	update(&sess)
	sess.ID = id
	sess = normalizeSession(sess)
	s.byID[id] = sess
	s.mu.Unlock()
	s.saveFile()
	return sess, true
}
