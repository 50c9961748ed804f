package memstore

import (
	"errors"
	"sync"

	"reservation-portal/internal/domain/session"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Sessions keeps the live visitor sessions. Nothing is persisted; a full
// restart logs every admin out.
type Sessions struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*session.Session
}

func NewSessions() *Sessions {
	return &Sessions{
		byID: make(map[uuid.UUID]*session.Session),
	}
}

func (s *Sessions) Put(sess *session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[sess.ID()] = sess
}

func (s *Sessions) Get(id uuid.UUID) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.byID[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}
