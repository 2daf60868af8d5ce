package session

import (
	"context"
	"fmt"
	"sync"

	id "hesabu/pkg/domain"
	"hesabu/pkg/platform/sentinel"
)

// MemoryStore holds sessions in process memory, for tests and single-node dev.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[id.SessionID]*Session
}

// NewMemoryStore constructs an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[id.SessionID]*Session)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID id.SessionID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[sessionID]; ok {
		return sess, nil
	}
	return nil, fmt.Errorf("session %s not found: %w", sessionID, sentinel.ErrNotFound)
}

func (s *MemoryStore) Put(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID id.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
