package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	account "markethub/internal/account/models"
	"markethub/internal/erasure/models"
	"markethub/internal/platform/metrics"
	id "markethub/pkg/domain"
	dErrors "markethub/pkg/domain-errors"
	"markethub/pkg/platform/audit"
	"markethub/pkg/platform/sentinel"
	"markethub/pkg/requestcontext"
)

// Service is the deletion workflow orchestrator: the only public entry point
// into the erasure lifecycle. It is stateless between calls; every use case
// reads fresh state and commits through one unit of work.
type Service struct {
	uow        UnitOfWork
	users      UserStore
	requests   DeletionRequestStore
	evaluator  *BlockingEvaluator
	assessor   *ImpactAssessor
	anonymizer *Anonymizer
	trail      *AuditWriter
	metrics    *metrics.Metrics
	logger     *slog.Logger
	tracer     trace.Tracer
}

func NewService(
	uow UnitOfWork,
	users UserStore,
	requests DeletionRequestStore,
	evaluator *BlockingEvaluator,
	assessor *ImpactAssessor,
	anonymizer *Anonymizer,
	trail *AuditWriter,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:        uow,
		users:      users,
		requests:   requests,
		evaluator:  evaluator,
		assessor:   assessor,
		anonymizer: anonymizer,
		trail:      trail,
		metrics:    m,
		logger:     logger,
		tracer:     otel.Tracer("markethub/erasure"),
	}
}

// GetImpact returns the deletion preview for a user. A missing user yields a
// zeroed, blocked summary rather than an error.
func (s *Service) GetImpact(ctx context.Context, userID id.UserID) (*models.ImpactSummary, error) {
	ctx, span := s.tracer.Start(ctx, "erasure.GetImpact")
	defer span.End()

	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user ID required")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return NotFoundImpact(), nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}

	return s.assessor.Assess(ctx, user)
}

// RequestDeletion creates a Pending deletion request for the user. Blocking
// conditions refuse creation and surface as the outcome's reasons with no
// state change and no audit rows; on success the request row plus two audit
// rows (Requested, ImpactDisplayed) commit together.
func (s *Service) RequestDeletion(ctx context.Context, userID id.UserID) (*models.RequestOutcome, error) {
	ctx, span := s.tracer.Start(ctx, "erasure.RequestDeletion")
	defer span.End()

	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user ID required")
	}

	now := requestcontext.Now(ctx)
	ip := requestcontext.ClientIP(ctx)
	userAgent := requestcontext.UserAgent(ctx)

	var outcome models.RequestOutcome
	err := s.uow.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "user not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
		}

		active, err := s.requests.HasActiveRequest(ctx, userID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check active requests")
		}
		if active {
			return dErrors.New(dErrors.CodeConflict, "an active deletion request already exists")
		}

		impact, err := s.assessor.Assess(ctx, user)
		if err != nil {
			return err
		}
		if impact.Blocked {
			outcome.BlockingReasons = impact.BlockingReasons
			return nil
		}

		request := models.NewRequest(userID, ip, userAgent, now)
		if err := s.requests.Add(ctx, &request); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create deletion request")
		}

		entry := AuditEntry{
			RequestID:       request.ID,
			AffectedUserID:  userID,
			TriggeredByID:   userID,
			TriggeredByRole: string(user.Role),
			IPAddress:       ip,
			UserAgent:       userAgent,
		}
		entry.Action = models.ActionRequested
		entry.Notes = "account deletion requested"
		if err := s.trail.Append(ctx, entry, now); err != nil {
			return err
		}
		entry.Action = models.ActionImpactDisplayed
		entry.Notes = fmt.Sprintf("impact shown: %d order(s), %d review(s), %d address(es)",
			impact.OrderCount, impact.ReviewCount, impact.AddressCount)
		if err := s.trail.Append(ctx, entry, now); err != nil {
			return err
		}

		outcome.Request = &request
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !outcome.Blocked() {
		s.metrics.IncRequested()
		s.logger.InfoContext(ctx, "deletion requested",
			"user_id", userID.String(),
			"request_id", outcome.Request.ID.String(),
		)
	}
	return &outcome, nil
}

// ConfirmDeletion re-validates blocking conditions and, when clear, runs the
// anonymization and completes the request; the Confirmed and Anonymized audit
// rows, the scrub of all five aggregates and the status change commit as one
// transaction. Newly appeared blocking conditions move the request to Blocked
// instead, with its own audit row.
func (s *Service) ConfirmDeletion(ctx context.Context, requestID id.RequestID, userID id.UserID) (*models.ConfirmOutcome, error) {
	ctx, span := s.tracer.Start(ctx, "erasure.ConfirmDeletion")
	defer span.End()

	if requestID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request ID required")
	}
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user ID required")
	}

	now := requestcontext.Now(ctx)
	ip := requestcontext.ClientIP(ctx)
	userAgent := requestcontext.UserAgent(ctx)
	start := time.Now()

	var outcome models.ConfirmOutcome
	var userRole account.Role
	err := s.uow.RunInTx(ctx, func(ctx context.Context) error {
		request, err := s.findOwnedRequest(ctx, requestID, userID)
		if err != nil {
			return err
		}
		if request.Status != models.StatusPending {
			return dErrors.New(dErrors.CodeInvalidState,
				fmt.Sprintf("deletion request is %s; only pending requests can be confirmed", request.Status))
		}

		user, err := s.users.FindByID(ctx, request.UserID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
		}
		userRole = user.Role

		entry := AuditEntry{
			RequestID:       request.ID,
			AffectedUserID:  request.UserID,
			TriggeredByID:   userID,
			TriggeredByRole: string(user.Role),
			IPAddress:       ip,
			UserAgent:       userAgent,
		}

		// Safety re-check: conditions may have appeared since request time.
		reasons, err := s.evaluator.Evaluate(ctx, user)
		if err != nil {
			return err
		}
		if len(reasons) > 0 {
			blocked, err := request.Block(strings.Join(reasons, "; "), now)
			if err != nil {
				return err
			}
			if err := s.updateRequest(ctx, &blocked); err != nil {
				return err
			}
			entry.Action = models.ActionBlocked
			entry.Notes = blocked.BlockedReason
			if err := s.trail.Append(ctx, entry, now); err != nil {
				return err
			}
			outcome = models.ConfirmOutcome{Request: &blocked, BlockingReasons: reasons}
			return nil
		}

		confirmed, err := request.Confirm(now)
		if err != nil {
			return err
		}
		if err := s.updateRequest(ctx, &confirmed); err != nil {
			return err
		}
		entry.Action = models.ActionConfirmed
		entry.Notes = "deletion confirmed by account owner"
		if err := s.trail.Append(ctx, entry, now); err != nil {
			return err
		}

		if err := s.anonymizer.Anonymize(ctx, user, now); err != nil {
			return err
		}

		completed, err := confirmed.Complete(now)
		if err != nil {
			return err
		}
		if err := s.updateRequest(ctx, &completed); err != nil {
			return err
		}
		entry.Action = models.ActionAnonymized
		entry.Notes = "account anonymized; sessions invalidated, addresses removed, reviews scrubbed"
		if err := s.trail.Append(ctx, entry, now); err != nil {
			return err
		}

		outcome = models.ConfirmOutcome{Request: &completed}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if outcome.Completed() {
		s.metrics.IncCompleted()
		s.metrics.ObserveAnonymization(time.Since(start).Seconds())
		s.logger.InfoContext(ctx, "account anonymized",
			"user_id", userID.String(),
			"request_id", requestID.String(),
		)
		// Post-commit, attempted exactly once; its failure never unwinds the
		// deletion.
		s.trail.EmitSensitiveAccess(ctx, audit.SensitiveAccessRecord{
			Timestamp:       now,
			AccessedBy:      userID,
			AccessedByRole:  string(userRole),
			ResourceType:    audit.ResourceCustomerProfile,
			ResourceID:      userID.String(),
			Action:          audit.AccessActionModify,
			ResourceOwnerID: userID,
			Reason:          "account deletion and anonymization",
			IPAddress:       ip,
			UserAgent:       userAgent,
		})
	} else {
		s.metrics.IncBlocked()
		s.logger.InfoContext(ctx, "deletion confirmation blocked",
			"user_id", userID.String(),
			"request_id", requestID.String(),
			"reasons", strings.Join(outcome.BlockingReasons, "; "),
		)
	}
	return &outcome, nil
}

// CancelDeletion moves the caller's Pending request to Cancelled. No user
// data is touched.
func (s *Service) CancelDeletion(ctx context.Context, requestID id.RequestID, userID id.UserID) (*models.AccountDeletionRequest, error) {
	ctx, span := s.tracer.Start(ctx, "erasure.CancelDeletion")
	defer span.End()

	if requestID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request ID required")
	}
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user ID required")
	}

	now := requestcontext.Now(ctx)

	var cancelled models.AccountDeletionRequest
	err := s.uow.RunInTx(ctx, func(ctx context.Context) error {
		request, err := s.findOwnedRequest(ctx, requestID, userID)
		if err != nil {
			return err
		}

		cancelled, err = request.Cancel(now)
		if err != nil {
			return err
		}
		if err := s.updateRequest(ctx, &cancelled); err != nil {
			return err
		}

		return s.trail.Append(ctx, AuditEntry{
			RequestID:       cancelled.ID,
			AffectedUserID:  cancelled.UserID,
			TriggeredByID:   userID,
			Action:          models.ActionCancelled,
			Notes:           "deletion request cancelled by account owner",
			IPAddress:       requestcontext.ClientIP(ctx),
			UserAgent:       requestcontext.UserAgent(ctx),
		}, now)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncCancelled()
	s.logger.InfoContext(ctx, "deletion request cancelled",
		"user_id", userID.String(),
		"request_id", requestID.String(),
	)
	return &cancelled, nil
}

// GetPendingRequest returns the user's Pending request, or nil when none
// exists.
func (s *Service) GetPendingRequest(ctx context.Context, userID id.UserID) (*models.AccountDeletionRequest, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user ID required")
	}
	return s.requests.FindPendingByUser(ctx, userID)
}

// GetRequests returns every deletion request the user ever filed.
func (s *Service) GetRequests(ctx context.Context, userID id.UserID) ([]*models.AccountDeletionRequest, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user ID required")
	}
	return s.requests.ListByUser(ctx, userID)
}

// GetAuditLogs returns the trail for one request, newest first order is the
// store's concern.
func (s *Service) GetAuditLogs(ctx context.Context, requestID id.RequestID) ([]*models.AccountDeletionAuditLog, error) {
	if requestID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request ID required")
	}
	return s.requests.ListAuditLogsByRequest(ctx, requestID)
}

// GetAuditLogsByUser returns every trail row affecting the user, across all
// their requests.
func (s *Service) GetAuditLogsByUser(ctx context.Context, userID id.UserID) ([]*models.AccountDeletionAuditLog, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user ID required")
	}
	return s.requests.ListAuditLogsByUser(ctx, userID)
}

// findOwnedRequest loads a request and enforces ownership. The mismatch error
// is deliberately generic so nothing leaks about the real owner.
func (s *Service) findOwnedRequest(ctx context.Context, requestID id.RequestID, userID id.UserID) (models.AccountDeletionRequest, error) {
	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.AccountDeletionRequest{}, dErrors.New(dErrors.CodeNotFound, "deletion request not found")
		}
		return models.AccountDeletionRequest{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up deletion request")
	}
	if request.UserID != userID {
		return models.AccountDeletionRequest{}, dErrors.New(dErrors.CodeForbidden, "forbidden")
	}
	return *request, nil
}

// updateRequest persists a request mutation, translating the store's
// concurrency rejection into a retryable conflict.
func (s *Service) updateRequest(ctx context.Context, request *models.AccountDeletionRequest) error {
	if err := s.requests.Update(ctx, request); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return dErrors.New(dErrors.CodeConflict, "deletion request was modified concurrently, retry")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update deletion request")
	}
	return nil
}
