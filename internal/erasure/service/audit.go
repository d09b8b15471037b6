package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"markethub/internal/erasure/models"
	"markethub/internal/platform/device"
	id "markethub/pkg/domain"
	dErrors "markethub/pkg/domain-errors"
	"markethub/pkg/platform/audit"
)

// AuditWriter appends workflow transitions to the request's immutable trail
// and forwards sensitive-access records to the external compliance channel.
// Trail rows are part of the primary transaction; the compliance channel is
// best-effort after commit.
type AuditWriter struct {
	requests   DeletionRequestStore
	compliance audit.Logger
	logger     *slog.Logger
}

func NewAuditWriter(requests DeletionRequestStore, compliance audit.Logger, logger *slog.Logger) *AuditWriter {
	return &AuditWriter{requests: requests, compliance: compliance, logger: logger}
}

// AuditEntry carries everything one trail row needs.
type AuditEntry struct {
	RequestID       id.RequestID
	AffectedUserID  id.UserID
	TriggeredByID   id.UserID
	TriggeredByRole string
	Action          models.AuditAction
	Notes           string
	IPAddress       string
	UserAgent       string
}

// Append writes exactly one trail row for the entry. When a User-Agent is
// present, a readable device description is folded into the notes so support
// staff can answer "from where" without parsing headers.
func (w *AuditWriter) Append(ctx context.Context, entry AuditEntry, now time.Time) error {
	notes := entry.Notes
	if entry.UserAgent != "" {
		if notes != "" {
			notes += " "
		}
		notes += "(" + device.ParseUserAgent(entry.UserAgent) + ")"
	}

	row := &models.AccountDeletionAuditLog{
		ID:              uuid.New(),
		RequestID:       entry.RequestID,
		AffectedUserID:  entry.AffectedUserID,
		TriggeredByID:   entry.TriggeredByID,
		TriggeredByRole: entry.TriggeredByRole,
		Action:          entry.Action,
		Notes:           notes,
		IPAddress:       entry.IPAddress,
		UserAgent:       entry.UserAgent,
		OccurredAt:      now,
	}
	if err := w.requests.AppendAuditLog(ctx, row); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to append audit log")
	}
	return nil
}

// EmitSensitiveAccess forwards one compliance record after a successful
// anonymization. Failure is logged and swallowed: the deletion already
// committed and must not be rolled back by an audit-channel outage. The
// channel's own subsystem retries and alerts.
func (w *AuditWriter) EmitSensitiveAccess(ctx context.Context, record audit.SensitiveAccessRecord) {
	if w.compliance == nil {
		return
	}
	if err := w.compliance.Log(ctx, record); err != nil {
		w.logger.ErrorContext(ctx, "failed to emit sensitive access record",
			"resource_type", record.ResourceType,
			"resource_id", record.ResourceID,
			"resource_owner", record.ResourceOwnerID.String(),
			"error", err,
		)
	}
}
