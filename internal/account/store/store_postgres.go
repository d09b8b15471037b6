package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"markethub/internal/account/models"
	id "markethub/pkg/domain"
	"markethub/pkg/platform/sentinel"
	txcontext "markethub/pkg/platform/tx"
)

// PostgresUserStore is pure I/O over the users table; it participates in a
// context-carried transaction.
type PostgresUserStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresUserStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const userColumns = `id, email, first_name, last_name, password_hash, role, status, anonymized, anonymized_at, created_at`

func (s *PostgresUserStore) Save(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			password_hash = EXCLUDED.password_hash,
			role = EXCLUDED.role,
			status = EXCLUDED.status,
			anonymized = EXCLUDED.anonymized,
			anonymized_at = EXCLUDED.anonymized_at
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(user.ID),
		user.Email,
		user.FirstName,
		user.LastName,
		user.PasswordHash,
		string(user.Role),
		string(user.Status),
		user.Anonymized,
		user.AnonymizedAt,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (s *PostgresUserStore) FindByID(ctx context.Context, userID id.UserID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return s.scanUser(s.execer(ctx).QueryRowContext(ctx, query, uuid.UUID(userID)))
}

func (s *PostgresUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	return s.scanUser(s.execer(ctx).QueryRowContext(ctx, query, email))
}

func (s *PostgresUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`
	var exists bool
	if err := s.execer(ctx).QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user email: %w", err)
	}
	return exists, nil
}

func (s *PostgresUserStore) scanUser(row *sql.Row) (*models.User, error) {
	var (
		user         models.User
		userID       uuid.UUID
		role         string
		status       string
		anonymizedAt sql.NullTime
	)
	err := row.Scan(&userID, &user.Email, &user.FirstName, &user.LastName,
		&user.PasswordHash, &role, &status, &user.Anonymized, &anonymizedAt, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	user.ID = id.UserID(userID)
	user.Role = models.Role(role)
	user.Status = models.Status(status)
	if anonymizedAt.Valid {
		value := anonymizedAt.Time
		user.AnonymizedAt = &value
	}
	return &user, nil
}
