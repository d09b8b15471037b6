package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "markethub/pkg/domain"
	dErrors "markethub/pkg/domain-errors"
)

// =============================================================================
// Deletion Request Lifecycle Suite
// =============================================================================
// Transitions are pure functions; the suite checks the full status matrix so
// the orchestrator can rely on model-level rejection of out-of-order calls.

type RequestLifecycleSuite struct {
	suite.Suite
	userID id.UserID
	now    time.Time
}

func TestRequestLifecycleSuite(t *testing.T) {
	suite.Run(t, new(RequestLifecycleSuite))
}

func (s *RequestLifecycleSuite) SetupTest() {
	s.userID = id.NewUserID()
	s.now = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
}

func (s *RequestLifecycleSuite) newPending() AccountDeletionRequest {
	return NewRequest(s.userID, "203.0.113.7", "Mozilla/5.0", s.now)
}

func (s *RequestLifecycleSuite) TestNewRequest() {
	request := s.newPending()

	s.False(request.ID.IsNil())
	s.Equal(s.userID, request.UserID)
	s.Equal(StatusPending, request.Status)
	s.Equal(s.now, request.RequestedAt)
	s.Nil(request.ConfirmedAt)
	s.Nil(request.CompletedAt)
	s.Nil(request.CancelledAt)
	s.Equal("203.0.113.7", request.IPAddress)
}

func (s *RequestLifecycleSuite) TestConfirm() {
	s.Run("pending confirms and stamps ConfirmedAt", func() {
		confirmed, err := s.newPending().Confirm(s.now)
		s.NoError(err)
		s.Equal(StatusConfirmed, confirmed.Status)
		s.Require().NotNil(confirmed.ConfirmedAt)
		s.Equal(s.now, *confirmed.ConfirmedAt)
	})

	s.Run("receiver is not mutated", func() {
		request := s.newPending()
		_, err := request.Confirm(s.now)
		s.NoError(err)
		s.Equal(StatusPending, request.Status)
		s.Nil(request.ConfirmedAt)
	})

	s.Run("rejected from every non-pending status", func() {
		for _, status := range []DeletionStatus{StatusConfirmed, StatusCompleted, StatusCancelled, StatusBlocked} {
			request := s.newPending()
			request.Status = status
			_, err := request.Confirm(s.now)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalidState), "status %s", status)
			s.Contains(err.Error(), string(status))
		}
	})
}

func (s *RequestLifecycleSuite) TestComplete() {
	s.Run("confirmed completes and stamps CompletedAt", func() {
		confirmed, err := s.newPending().Confirm(s.now)
		s.Require().NoError(err)

		later := s.now.Add(2 * time.Second)
		completed, err := confirmed.Complete(later)
		s.NoError(err)
		s.Equal(StatusCompleted, completed.Status)
		s.Require().NotNil(completed.CompletedAt)
		s.Equal(later, *completed.CompletedAt)
	})

	s.Run("rejected straight from pending", func() {
		_, err := s.newPending().Complete(s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("rejected from terminal statuses", func() {
		for _, status := range []DeletionStatus{StatusCompleted, StatusCancelled, StatusBlocked} {
			request := s.newPending()
			request.Status = status
			_, err := request.Complete(s.now)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalidState), "status %s", status)
		}
	})
}

func (s *RequestLifecycleSuite) TestCancel() {
	s.Run("pending cancels and stamps CancelledAt", func() {
		cancelled, err := s.newPending().Cancel(s.now)
		s.NoError(err)
		s.Equal(StatusCancelled, cancelled.Status)
		s.Require().NotNil(cancelled.CancelledAt)
	})

	s.Run("rejected once confirmed", func() {
		confirmed, err := s.newPending().Confirm(s.now)
		s.Require().NoError(err)
		_, err = confirmed.Cancel(s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})
}

func (s *RequestLifecycleSuite) TestBlock() {
	s.Run("pending blocks with reason", func() {
		blocked, err := s.newPending().Block("2 open dispute(s) on your purchases must be resolved first", s.now)
		s.NoError(err)
		s.Equal(StatusBlocked, blocked.Status)
		s.Equal("2 open dispute(s) on your purchases must be resolved first", blocked.BlockedReason)
	})

	s.Run("rejected once cancelled", func() {
		cancelled, err := s.newPending().Cancel(s.now)
		s.Require().NoError(err)
		_, err = cancelled.Block("late", s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})
}

func (s *RequestLifecycleSuite) TestTerminal() {
	s.False(StatusPending.Terminal())
	s.False(StatusConfirmed.Terminal())
	s.True(StatusCompleted.Terminal())
	s.True(StatusCancelled.Terminal())
	s.True(StatusBlocked.Terminal())
}

func (s *RequestLifecycleSuite) TestOutcomes() {
	s.Run("request outcome blocked only with reasons", func() {
		s.False(RequestOutcome{}.Blocked())
		s.True(RequestOutcome{BlockingReasons: []string{"account suspended, contact support"}}.Blocked())
	})

	s.Run("confirm outcome completed only on completed request", func() {
		s.False(ConfirmOutcome{}.Completed())

		pending := s.newPending()
		s.False(ConfirmOutcome{Request: &pending}.Completed())

		confirmed, err := pending.Confirm(s.now)
		s.Require().NoError(err)
		completed, err := confirmed.Complete(s.now)
		s.Require().NoError(err)
		s.True(ConfirmOutcome{Request: &completed}.Completed())
	})
}
