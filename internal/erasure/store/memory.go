package store

import (
	"context"
	"sort"
	"sync"

	"markethub/internal/erasure/models"
	id "markethub/pkg/domain"
	"markethub/pkg/platform/sentinel"
)

// expectedSource returns the only status a request may hold immediately
// before reaching status. Updates are compare-and-swap on this so concurrent
// confirm/cancel attempts cannot both win.
func expectedSource(status models.DeletionStatus) models.DeletionStatus {
	if status == models.StatusCompleted {
		return models.StatusConfirmed
	}
	return models.StatusPending
}

// InMemoryStore keeps deletion requests and their audit trail in maps. It is
// the test double for the Postgres store and mirrors its conflict semantics.
type InMemoryStore struct {
	mu       sync.RWMutex
	requests map[id.RequestID]*models.AccountDeletionRequest
	logs     []*models.AccountDeletionAuditLog
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{requests: make(map[id.RequestID]*models.AccountDeletionRequest)}
}

func (s *InMemoryStore) Add(_ context.Context, request *models.AccountDeletionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.requests[request.ID]; exists {
		return sentinel.ErrConflict
	}
	copied := *request
	s.requests[request.ID] = &copied
	return nil
}

func (s *InMemoryStore) Update(_ context.Context, request *models.AccountDeletionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, exists := s.requests[request.ID]
	if !exists {
		return sentinel.ErrNotFound
	}
	if current.Status != expectedSource(request.Status) {
		return sentinel.ErrConflict
	}
	copied := *request
	s.requests[request.ID] = &copied
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, requestID id.RequestID) (*models.AccountDeletionRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	request, exists := s.requests[requestID]
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	copied := *request
	return &copied, nil
}

func (s *InMemoryStore) FindPendingByUser(_ context.Context, userID id.UserID) (*models.AccountDeletionRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, request := range s.requests {
		if request.UserID == userID && request.Status == models.StatusPending {
			copied := *request
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *InMemoryStore) ListByUser(_ context.Context, userID id.UserID) ([]*models.AccountDeletionRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.AccountDeletionRequest
	for _, request := range s.requests {
		if request.UserID == userID {
			copied := *request
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RequestedAt.Before(out[j].RequestedAt)
	})
	return out, nil
}

func (s *InMemoryStore) HasActiveRequest(ctx context.Context, userID id.UserID) (bool, error) {
	pending, err := s.FindPendingByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return pending != nil, nil
}

func (s *InMemoryStore) AppendAuditLog(_ context.Context, log *models.AccountDeletionAuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *log
	s.logs = append(s.logs, &copied)
	return nil
}

func (s *InMemoryStore) ListAuditLogsByRequest(_ context.Context, requestID id.RequestID) ([]*models.AccountDeletionAuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.AccountDeletionAuditLog
	for _, log := range s.logs {
		if log.RequestID == requestID {
			copied := *log
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *InMemoryStore) ListAuditLogsByUser(_ context.Context, userID id.UserID) ([]*models.AccountDeletionAuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.AccountDeletionAuditLog
	for _, log := range s.logs {
		if log.AffectedUserID == userID {
			copied := *log
			out = append(out, &copied)
		}
	}
	return out, nil
}
