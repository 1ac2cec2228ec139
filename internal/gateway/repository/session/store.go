package session

import (
	"database/sql"
	"os"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Store keeps one Session document per session id. It runs against either a
// JSON file (default, suitable for local use) or Postgres when a DSN is
// configured. Concurrent updates to the same session follow last-writer-wins;
// the store itself is safe for concurrent use.
type Store struct {
	path string
	db   *sql.DB

	loadOnce sync.Once
	mu       sync.RWMutex
	byID     map[string]Session

	schemaOnce sync.Once
	schemaErr  error

	cache *lru.Cache[string, Session]
}

func New(path string) *Store {
	return &Store{
		path: path,
		byID: make(map[string]Session),
	}
}

func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, Session](1024)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{
		db:    db,
		cache: cache,
	}, nil
}

// NewFromEnv prefers Postgres when SESSION_STORE_PG_DSN is set and falls
// back to the file backend otherwise.
func NewFromEnv(path string) *Store {
	dsn := strings.TrimSpace(os.Getenv("SESSION_STORE_PG_DSN"))
	if dsn == "" {
		return New(path)
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		return New(path)
	}
	return s
}

func (s *Store) Get(sessionID string) (Session, bool) {
	if s == nil {
		return Session{}, false
	}
	if s.db != nil {
		if s.cache != nil {
			if cached, ok := s.cache.Get(strings.TrimSpace(sessionID)); ok {
				return cached, true
			}
		}
		sess, ok := s.getDB(sessionID)
		if ok && s.cache != nil {
			s.cache.Add(sess.ID, sess)
		}
		return sess, ok
	}
	return s.getFile(sessionID)
}

func (s *Store) Put(sess Session) {
	if s == nil {
		return
	}
	if s.db != nil {
		s.putDB(sess)
		if s.cache != nil {
			s.cache.Remove(strings.TrimSpace(sess.ID))
		}
		return
	}
	s.putFile(sess)
}

func (s *Store) Update(sessionID string, update func(*Session)) (Session, bool) {
	if s == nil {
		return Session{}, false
	}
	if s.db != nil {
		sess, ok := s.updateDB(sessionID, update)
		if s.cache != nil {
			s.cache.Remove(strings.TrimSpace(sessionID))
		}
		return sess, ok
	}
	return s.updateFile(sessionID, update)
}
