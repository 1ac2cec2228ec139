package session

import (
	"encoding/json"
	"strings"
)

func (s *Store) ensureSchema() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS sessions (
  session_id TEXT PRIMARY KEY,
  doc JSONB NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
`)
	})
	return s.schemaErr
}

func (s *Store) getDB(sessionID string) (Session, bool) {
	if err := s.ensureSchema(); err != nil {
		return Session{}, false
	}
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return Session{}, false
	}
	var doc []byte
	err := s.db.QueryRow(`SELECT doc FROM sessions WHERE session_id = $1`, id).Scan(&doc)
	if err != nil {
		return Session{}, false
	}
	var sess Session
	if err := json.Unmarshal(doc, &sess); err != nil {
		return Session{}, false
	}
	return normalizeSession(sess), true
}

func (s *Store) putDB(sess Session) {
	if err := s.ensureSchema(); err != nil {
		return
	}
	n := normalizeSession(sess)
	if n.ID == "" {
		return
	}
	doc, err := json.Marshal(n)
	if err != nil {
		return
	}
	_, _ = s.db.Exec(`
INSERT INTO sessions (session_id, doc, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (session_id)
DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`,
		n.ID, doc)
}

func (s *Store) updateDB(sessionID string, update func(*Session)) (Session, bool) {
	if err := s.ensureSchema(); err != nil {
		return Session{}, false
	}
	tx, err := s.db.Begin()
	if err != nil {
		return Session{}, false
	}
	defer func() { _ = tx.Rollback() }()

	id := strings.TrimSpace(sessionID)
	var doc []byte
	if err := tx.QueryRow(`SELECT doc FROM sessions WHERE session_id = $1 FOR UPDATE`, id).Scan(&doc); err != nil {
		return Session{}, false
	}
	var cur Session
	if err := json.Unmarshal(doc, &cur); err != nil {
		return Session{}, false
	}
	update(&cur)
	cur.ID = id
	cur = normalizeSession(cur)
	out, err := json.Marshal(cur)
	if err != nil {
		return Session{}, false
	}
	if _, err := tx.Exec(`UPDATE sessions SET doc = $2, updated_at = NOW() WHERE session_id = $1`, id, out); err != nil {
		return Session{}, false
	}
	if err := tx.Commit(); err != nil {
		return Session{}, false
	}
	return cur, true
}
