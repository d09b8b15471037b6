package store

import (
	"context"
	"sync"
	"time"

	"markethub/internal/session"
	id "markethub/pkg/domain"
)

// InMemoryStore is the test double for the Redis session store.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[id.SessionID]*session.Session
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[id.SessionID]*session.Session)}
}

func (s *InMemoryStore) Save(_ context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.sessions[sess.ID] = &copied
	return nil
}

func (s *InMemoryStore) ListByUser(_ context.Context, userID id.UserID) ([]*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*session.Session
	for _, sess := range s.sessions {
		if sess.UserID == userID {
			copied := *sess
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *InMemoryStore) InvalidateByUser(_ context.Context, userID id.UserID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		if sess.UserID == userID {
			sess.ApplyInvalidation(now)
		}
	}
	return nil
}
