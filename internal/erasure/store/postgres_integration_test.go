//go:build integration

package store_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"markethub/internal/erasure/models"
	"markethub/internal/erasure/store"
	id "markethub/pkg/domain"
	"markethub/pkg/platform/sentinel"
	"markethub/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(),
		"account_deletion_audit_logs", "account_deletion_requests")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) newPending(userID id.UserID) models.AccountDeletionRequest {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return models.NewRequest(userID, "203.0.113.7", "integration-test/1.0", now)
}

func (s *PostgresStoreSuite) TestAddAndFind() {
	ctx := context.Background()
	request := s.newPending(id.NewUserID())
	s.Require().NoError(s.store.Add(ctx, &request))

	found, err := s.store.FindByID(ctx, request.ID)
	s.Require().NoError(err)
	s.Equal(request.ID, found.ID)
	s.Equal(request.UserID, found.UserID)
	s.Equal(models.StatusPending, found.Status)
	s.Equal("203.0.113.7", found.IPAddress)
	s.True(request.RequestedAt.Equal(found.RequestedAt))
	s.Nil(found.ConfirmedAt)
}

func (s *PostgresStoreSuite) TestFindByID_NotFound() {
	_, err := s.store.FindByID(context.Background(), id.NewRequestID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestUpdate_Lifecycle() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	request := s.newPending(id.NewUserID())
	s.Require().NoError(s.store.Add(ctx, &request))

	confirmed, err := request.Confirm(now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Update(ctx, &confirmed))

	completed, err := confirmed.Complete(now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Update(ctx, &completed))

	found, err := s.store.FindByID(ctx, request.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusCompleted, found.Status)
	s.Require().NotNil(found.ConfirmedAt)
	s.Require().NotNil(found.CompletedAt)
}

// TestConcurrentConfirmCancel verifies the compare-and-swap guard: out of many
// simultaneous transition attempts on one pending request, exactly one wins.
func (s *PostgresStoreSuite) TestConcurrentConfirmCancel() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	request := s.newPending(id.NewUserID())
	s.Require().NoError(s.store.Add(ctx, &request))

	const goroutines = 20
	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		cancel := i%2 == 0
		wg.Add(1)
		go func() {
			defer wg.Done()

			var next models.AccountDeletionRequest
			var err error
			if cancel {
				next, err = request.Cancel(now)
			} else {
				next, err = request.Confirm(now)
			}
			if err != nil {
				return
			}

			switch updateErr := s.store.Update(ctx, &next); updateErr {
			case nil:
				successCount.Add(1)
			case sentinel.ErrConflict:
				conflictCount.Add(1)
			default:
				s.T().Errorf("unexpected update error: %v", updateErr)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load())
	s.Equal(int32(goroutines-1), conflictCount.Load())

	found, err := s.store.FindByID(ctx, request.ID)
	s.Require().NoError(err)
	s.True(found.Status == models.StatusConfirmed || found.Status == models.StatusCancelled)
}

func (s *PostgresStoreSuite) TestPendingQueries() {
	ctx := context.Background()
	userID := id.NewUserID()

	pending, err := s.store.FindPendingByUser(ctx, userID)
	s.Require().NoError(err)
	s.Nil(pending)

	request := s.newPending(userID)
	s.Require().NoError(s.store.Add(ctx, &request))

	pending, err = s.store.FindPendingByUser(ctx, userID)
	s.Require().NoError(err)
	s.Require().NotNil(pending)
	s.Equal(request.ID, pending.ID)

	active, err := s.store.HasActiveRequest(ctx, userID)
	s.Require().NoError(err)
	s.True(active)

	cancelled, err := request.Cancel(time.Now().UTC())
	s.Require().NoError(err)
	s.Require().NoError(s.store.Update(ctx, &cancelled))

	active, err = s.store.HasActiveRequest(ctx, userID)
	s.Require().NoError(err)
	s.False(active)
}

func (s *PostgresStoreSuite) TestListByUser_Ordering() {
	ctx := context.Background()
	userID := id.NewUserID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	second := models.NewRequest(userID, "", "", base)
	first := models.NewRequest(userID, "", "", base.Add(-time.Hour))
	s.Require().NoError(s.store.Add(ctx, &second))
	s.Require().NoError(s.store.Add(ctx, &first))

	listed, err := s.store.ListByUser(ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(listed, 2)
	s.Equal(first.ID, listed[0].ID)
	s.Equal(second.ID, listed[1].ID)
}

func (s *PostgresStoreSuite) TestAuditLogs() {
	ctx := context.Background()
	userID := id.NewUserID()
	request := s.newPending(userID)
	s.Require().NoError(s.store.Add(ctx, &request))

	base := time.Now().UTC().Truncate(time.Microsecond)
	actions := []models.AuditAction{models.ActionRequested, models.ActionImpactDisplayed, models.ActionConfirmed}
	for i, action := range actions {
		s.Require().NoError(s.store.AppendAuditLog(ctx, &models.AccountDeletionAuditLog{
			ID:              uuid.New(),
			RequestID:       request.ID,
			AffectedUserID:  userID,
			TriggeredByID:   userID,
			TriggeredByRole: "buyer",
			Action:          action,
			Notes:           "integration",
			IPAddress:       "203.0.113.7",
			UserAgent:       "integration-test/1.0",
			OccurredAt:      base.Add(time.Duration(i) * time.Second),
		}))
	}

	logs, err := s.store.ListAuditLogsByRequest(ctx, request.ID)
	s.Require().NoError(err)
	s.Require().Len(logs, 3)
	for i, action := range actions {
		s.Equal(action, logs[i].Action)
	}

	byUser, err := s.store.ListAuditLogsByUser(ctx, userID)
	s.Require().NoError(err)
	s.Len(byUser, 3)
}
