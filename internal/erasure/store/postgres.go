// Package store persists deletion requests and their append-only audit trail.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"markethub/internal/erasure/models"
	id "markethub/pkg/domain"
	"markethub/pkg/platform/sentinel"
	txcontext "markethub/pkg/platform/tx"
)

// PostgresStore is pure I/O over the deletion request tables. It participates
// in a transaction carried through the context, falling back to the pool.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const requestColumns = `id, user_id, status, requested_at, confirmed_at, completed_at, cancelled_at, blocked_reason, ip_address, user_agent`

func (s *PostgresStore) Add(ctx context.Context, request *models.AccountDeletionRequest) error {
	query := `
		INSERT INTO account_deletion_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(request.ID),
		uuid.UUID(request.UserID),
		string(request.Status),
		request.RequestedAt,
		request.ConfirmedAt,
		request.CompletedAt,
		request.CancelledAt,
		nullString(request.BlockedReason),
		nullString(request.IPAddress),
		nullString(request.UserAgent),
	)
	if err != nil {
		return fmt.Errorf("insert deletion request: %w", err)
	}
	return nil
}

// Update is compare-and-swap on the only valid source status for the new
// status, so a concurrent confirm and cancel of the same request cannot both
// win; the loser gets sentinel.ErrConflict.
func (s *PostgresStore) Update(ctx context.Context, request *models.AccountDeletionRequest) error {
	query := `
		UPDATE account_deletion_requests
		SET status = $2, confirmed_at = $3, completed_at = $4, cancelled_at = $5, blocked_reason = $6
		WHERE id = $1 AND status = $7
	`
	result, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(request.ID),
		string(request.Status),
		request.ConfirmedAt,
		request.CompletedAt,
		request.CancelledAt,
		nullString(request.BlockedReason),
		string(expectedSource(request.Status)),
	)
	if err != nil {
		return fmt.Errorf("update deletion request: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update deletion request: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrConflict
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, requestID id.RequestID) (*models.AccountDeletionRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM account_deletion_requests WHERE id = $1`
	request, err := scanRequest(s.execer(ctx).QueryRowContext(ctx, query, uuid.UUID(requestID)))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find deletion request: %w", err)
	}
	return request, nil
}

func (s *PostgresStore) FindPendingByUser(ctx context.Context, userID id.UserID) (*models.AccountDeletionRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM account_deletion_requests
		WHERE user_id = $1 AND status = 'pending'
		ORDER BY requested_at DESC
		LIMIT 1
	`
	request, err := scanRequest(s.execer(ctx).QueryRowContext(ctx, query, uuid.UUID(userID)))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find pending deletion request: %w", err)
	}
	return request, nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID id.UserID) ([]*models.AccountDeletionRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM account_deletion_requests
		WHERE user_id = $1
		ORDER BY requested_at ASC
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list deletion requests: %w", err)
	}
	defer rows.Close()

	var out []*models.AccountDeletionRequest
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deletion request: %w", err)
		}
		out = append(out, request)
	}
	return out, rows.Err()
}

func (s *PostgresStore) HasActiveRequest(ctx context.Context, userID id.UserID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM account_deletion_requests WHERE user_id = $1 AND status = 'pending')`
	var exists bool
	if err := s.execer(ctx).QueryRowContext(ctx, query, uuid.UUID(userID)).Scan(&exists); err != nil {
		return false, fmt.Errorf("check active deletion request: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) AppendAuditLog(ctx context.Context, log *models.AccountDeletionAuditLog) error {
	query := `
		INSERT INTO account_deletion_audit_logs
			(id, request_id, affected_user_id, triggered_by_id, triggered_by_role, action, notes, ip_address, user_agent, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		log.ID,
		uuid.UUID(log.RequestID),
		uuid.UUID(log.AffectedUserID),
		uuid.UUID(log.TriggeredByID),
		nullString(log.TriggeredByRole),
		string(log.Action),
		log.Notes,
		nullString(log.IPAddress),
		nullString(log.UserAgent),
		log.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListAuditLogsByRequest(ctx context.Context, requestID id.RequestID) ([]*models.AccountDeletionAuditLog, error) {
	return s.listAuditLogs(ctx, `request_id = $1`, uuid.UUID(requestID))
}

func (s *PostgresStore) ListAuditLogsByUser(ctx context.Context, userID id.UserID) ([]*models.AccountDeletionAuditLog, error) {
	return s.listAuditLogs(ctx, `affected_user_id = $1`, uuid.UUID(userID))
}

func (s *PostgresStore) listAuditLogs(ctx context.Context, where string, arg any) ([]*models.AccountDeletionAuditLog, error) {
	query := `
		SELECT id, request_id, affected_user_id, triggered_by_id, triggered_by_role, action, notes, ip_address, user_agent, occurred_at
		FROM account_deletion_audit_logs
		WHERE ` + where + `
		ORDER BY occurred_at ASC
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var out []*models.AccountDeletionAuditLog
	for rows.Next() {
		var (
			log       models.AccountDeletionAuditLog
			logID     uuid.UUID
			requestID uuid.UUID
			affected  uuid.UUID
			triggered uuid.UUID
			role      sql.NullString
			action    string
			ip        sql.NullString
			userAgent sql.NullString
		)
		if err := rows.Scan(&logID, &requestID, &affected, &triggered, &role, &action, &log.Notes, &ip, &userAgent, &log.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		log.ID = logID
		log.RequestID = id.RequestID(requestID)
		log.AffectedUserID = id.UserID(affected)
		log.TriggeredByID = id.UserID(triggered)
		log.TriggeredByRole = role.String
		log.Action = models.AuditAction(action)
		log.IPAddress = ip.String
		log.UserAgent = userAgent.String
		out = append(out, &log)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*models.AccountDeletionRequest, error) {
	var (
		request     models.AccountDeletionRequest
		requestID   uuid.UUID
		userID      uuid.UUID
		status      string
		confirmedAt sql.NullTime
		completedAt sql.NullTime
		cancelledAt sql.NullTime
		blocked     sql.NullString
		ip          sql.NullString
		userAgent   sql.NullString
	)
	err := row.Scan(&requestID, &userID, &status, &request.RequestedAt,
		&confirmedAt, &completedAt, &cancelledAt, &blocked, &ip, &userAgent)
	if err != nil {
		return nil, err
	}
	request.ID = id.RequestID(requestID)
	request.UserID = id.UserID(userID)
	request.Status = models.DeletionStatus(status)
	request.ConfirmedAt = nullTimePtr(confirmedAt)
	request.CompletedAt = nullTimePtr(completedAt)
	request.CancelledAt = nullTimePtr(cancelledAt)
	request.BlockedReason = blocked.String
	request.IPAddress = ip.String
	request.UserAgent = userAgent.String
	return &request, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
