package session

import (
	"encoding/json"
	"sync"

	"hradmin/internal/domain/auth"
)

// Store is the single source of truth for the current session. Reads are
// valid only after Restore has run; until then the store reports loading and
// route guards must not treat the user as anonymous.
type Store struct {
	mu       sync.RWMutex
	storage  Storage
	restored bool
	current  *Session
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Restore reads a previously persisted session. Absent, unreadable, or
// malformed data all leave the store anonymous; restore never fails loudly.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.restored = true }()

	data, ok, err := s.storage.Get(KeyUser)
	if err != nil || !ok {
		return
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return
	}
	if sess.Role == "" {
		return
	}
	s.current = &sess
}

// Loading reports whether Restore has not completed yet.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.restored
}

// Commit sets the current session, persisting it in the same critical
// section so a Current call after Commit always observes the new value.
func (s *Store) Commit(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.storage.Set(KeyUser, data); err != nil {
		return err
	}
	s.current = &sess
	s.restored = true
	return nil
}

// Clear removes the session from memory and storage.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(KeyUser); err != nil {
		return err
	}
	s.current = nil
	s.restored = true
	return nil
}

// Current returns the session, or ok=false when anonymous.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// Authenticated reports session presence with a known role.
func (s *Store) Authenticated() bool {
	sess, ok := s.Current()
	return ok && auth.KnownRole(sess.Role)
}
