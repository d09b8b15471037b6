// Package models defines the account deletion request lifecycle and its
// append-only audit trail.
//
// Transitions are pure: value-receiver methods return the next request value
// or a coded invalid-state error, and never mutate the receiver. Callers own
// persistence and atomicity.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	id "markethub/pkg/domain"
	dErrors "markethub/pkg/domain-errors"
)

// DeletionStatus is the lifecycle state of a deletion request.
//
//	Pending -> {Confirmed, Cancelled, Blocked}
//	Confirmed -> Completed
//
// Blocked, Completed and Cancelled are terminal. A user whose request ended in
// Blocked must file a new request once the blocking reasons are resolved.
type DeletionStatus string

const (
	StatusPending   DeletionStatus = "pending"
	StatusConfirmed DeletionStatus = "confirmed"
	StatusCompleted DeletionStatus = "completed"
	StatusCancelled DeletionStatus = "cancelled"
	StatusBlocked   DeletionStatus = "blocked"
)

// Terminal reports whether no further transition is defined from s.
func (s DeletionStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusBlocked:
		return true
	}
	return false
}

// AccountDeletionRequest is the persisted record of a user's intent to erase
// their account. Each timestamp is set at most once, by the transition that
// reaches the corresponding state.
type AccountDeletionRequest struct {
	ID            id.RequestID   `json:"id"`
	UserID        id.UserID      `json:"user_id"`
	Status        DeletionStatus `json:"status"`
	RequestedAt   time.Time      `json:"requested_at"`
	ConfirmedAt   *time.Time     `json:"confirmed_at,omitempty"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
	CancelledAt   *time.Time     `json:"cancelled_at,omitempty"`
	BlockedReason string         `json:"blocked_reason,omitempty"`
	IPAddress     string         `json:"-"`
	UserAgent     string         `json:"-"`
}

// NewRequest creates a request in Pending. The caller is responsible for the
// one-pending-request-per-user invariant before persisting it.
func NewRequest(userID id.UserID, ip, userAgent string, now time.Time) AccountDeletionRequest {
	return AccountDeletionRequest{
		ID:          id.RequestID(uuid.New()),
		UserID:      userID,
		Status:      StatusPending,
		RequestedAt: now,
		IPAddress:   ip,
		UserAgent:   userAgent,
	}
}

func (r AccountDeletionRequest) invalidState(action string) error {
	return dErrors.New(dErrors.CodeInvalidState,
		fmt.Sprintf("cannot %s a deletion request in status %q", action, r.Status))
}

// Confirm moves Pending -> Confirmed.
func (r AccountDeletionRequest) Confirm(now time.Time) (AccountDeletionRequest, error) {
	if r.Status != StatusPending {
		return r, r.invalidState("confirm")
	}
	r.Status = StatusConfirmed
	r.ConfirmedAt = &now
	return r, nil
}

// Complete moves Confirmed -> Completed, after anonymization succeeded.
func (r AccountDeletionRequest) Complete(now time.Time) (AccountDeletionRequest, error) {
	if r.Status != StatusConfirmed {
		return r, r.invalidState("complete")
	}
	r.Status = StatusCompleted
	r.CompletedAt = &now
	return r, nil
}

// Cancel moves Pending -> Cancelled.
func (r AccountDeletionRequest) Cancel(now time.Time) (AccountDeletionRequest, error) {
	if r.Status != StatusPending {
		return r, r.invalidState("cancel")
	}
	r.Status = StatusCancelled
	r.CancelledAt = &now
	return r, nil
}

// Block moves Pending -> Blocked when confirmation-time re-validation finds
// new blocking conditions.
func (r AccountDeletionRequest) Block(reason string, now time.Time) (AccountDeletionRequest, error) {
	if r.Status != StatusPending {
		return r, r.invalidState("block")
	}
	r.Status = StatusBlocked
	r.BlockedReason = reason
	return r, nil
}

// AuditAction names the workflow transition an audit row records.
type AuditAction string

const (
	ActionRequested       AuditAction = "requested"
	ActionImpactDisplayed AuditAction = "impact_displayed"
	ActionBlocked         AuditAction = "blocked"
	ActionConfirmed       AuditAction = "confirmed"
	ActionAnonymized      AuditAction = "anonymized"
	ActionCancelled       AuditAction = "cancelled"
)

// AccountDeletionAuditLog is one append-only row in the workflow's trail.
// Rows are never updated or deleted.
type AccountDeletionAuditLog struct {
	ID              uuid.UUID    `json:"id"`
	RequestID       id.RequestID `json:"request_id"`
	AffectedUserID  id.UserID    `json:"affected_user_id"`
	TriggeredByID   id.UserID    `json:"triggered_by_id"`
	TriggeredByRole string       `json:"triggered_by_role,omitempty"`
	Action          AuditAction  `json:"action"`
	Notes           string       `json:"notes,omitempty"`
	IPAddress       string       `json:"-"`
	UserAgent       string       `json:"-"`
	OccurredAt      time.Time    `json:"occurred_at"`
}

// ImpactSummary is the user-facing preview of a deletion. It is disclosure
// only; authorization decisions come exclusively from the blocking evaluator.
type ImpactSummary struct {
	Blocked         bool     `json:"blocked"`
	BlockingReasons []string `json:"blocking_reasons,omitempty"`
	OrderCount      int      `json:"order_count"`
	ReviewCount     int      `json:"review_count"`
	AddressCount    int      `json:"address_count"`
	HasActiveShop   bool     `json:"has_active_shop"`
	ShopName        string   `json:"shop_name,omitempty"`
	Statements      []string `json:"statements"`
}

// RequestOutcome is the result of RequestDeletion. A blocked outcome is a
// legitimate business result, not an error: BlockingReasons carries the full
// list and Request stays nil because nothing was persisted.
type RequestOutcome struct {
	Request         *AccountDeletionRequest `json:"request,omitempty"`
	BlockingReasons []string                `json:"blocking_reasons,omitempty"`
}

// Blocked reports whether the request was refused for business reasons.
func (o RequestOutcome) Blocked() bool { return len(o.BlockingReasons) > 0 }

// ConfirmOutcome is the result of ConfirmDeletion. When re-validation finds
// new blocking conditions the request transitions to Blocked and the reasons
// are surfaced here; otherwise the request completed and the user is gone.
type ConfirmOutcome struct {
	Request         *AccountDeletionRequest `json:"request"`
	BlockingReasons []string                `json:"blocking_reasons,omitempty"`
}

// Completed reports whether anonymization ran and the request finished.
func (o ConfirmOutcome) Completed() bool {
	return o.Request != nil && o.Request.Status == StatusCompleted
}
