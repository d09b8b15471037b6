//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// schema mirrors the production migrations closely enough for store-level
// integration tests.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	email         TEXT NOT NULL,
	first_name    TEXT NOT NULL DEFAULT '',
	last_name     TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL DEFAULT '',
	role          TEXT NOT NULL,
	status        TEXT NOT NULL,
	anonymized    BOOLEAN NOT NULL DEFAULT FALSE,
	anonymized_at TIMESTAMPTZ,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS shops (
	id             UUID PRIMARY KEY,
	owner_id       UUID NOT NULL,
	name           TEXT NOT NULL,
	published      BOOLEAN NOT NULL DEFAULT FALSE,
	status         TEXT NOT NULL,
	deactivated_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS orders (
	id            UUID PRIMARY KEY,
	buyer_id      UUID NOT NULL,
	shop_id       UUID NOT NULL,
	amount_cents  BIGINT NOT NULL,
	currency      TEXT NOT NULL DEFAULT 'EUR',
	status        TEXT NOT NULL,
	shipping_name TEXT NOT NULL DEFAULT '',
	shipping_line TEXT NOT NULL DEFAULT '',
	placed_at     TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS reviews (
	id           UUID PRIMARY KEY,
	author_id    UUID NOT NULL,
	shop_id      UUID NOT NULL,
	rating       INT NOT NULL,
	comment      TEXT NOT NULL DEFAULT '',
	author_name  TEXT NOT NULL DEFAULT '',
	author_email TEXT NOT NULL DEFAULT '',
	written_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS delivery_addresses (
	id          UUID PRIMARY KEY,
	user_id     UUID NOT NULL,
	label       TEXT NOT NULL DEFAULT '',
	line1       TEXT NOT NULL DEFAULT '',
	city        TEXT NOT NULL DEFAULT '',
	postal_code TEXT NOT NULL DEFAULT '',
	country     TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS return_requests (
	id           UUID PRIMARY KEY,
	order_id     UUID NOT NULL,
	requester_id UUID NOT NULL,
	status       TEXT NOT NULL,
	reason       TEXT NOT NULL DEFAULT '',
	opened_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS account_deletion_requests (
	id             UUID PRIMARY KEY,
	user_id        UUID NOT NULL,
	status         TEXT NOT NULL,
	requested_at   TIMESTAMPTZ NOT NULL,
	confirmed_at   TIMESTAMPTZ,
	completed_at   TIMESTAMPTZ,
	cancelled_at   TIMESTAMPTZ,
	blocked_reason TEXT,
	ip_address     TEXT,
	user_agent     TEXT
);

CREATE INDEX IF NOT EXISTS idx_deletion_requests_user
	ON account_deletion_requests (user_id, status);

CREATE TABLE IF NOT EXISTS account_deletion_audit_logs (
	id                UUID PRIMARY KEY,
	request_id        UUID NOT NULL,
	affected_user_id  UUID NOT NULL,
	triggered_by_id   UUID NOT NULL,
	triggered_by_role TEXT,
	action            TEXT NOT NULL,
	notes             TEXT NOT NULL DEFAULT '',
	ip_address        TEXT,
	user_agent        TEXT,
	occurred_at       TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_deletion_audit_request
	ON account_deletion_audit_logs (request_id, occurred_at);
`

// PostgresContainer wraps a testcontainers Postgres instance with the schema
// already applied.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

// NewPostgresContainer starts a Postgres container and applies the schema.
// The container is shared through the Manager; Ryuk handles teardown.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("markethub_test"),
		tcpostgres.WithUsername("markethub"),
		tcpostgres.WithPassword("markethub"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open postgres connection: %v", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to ping postgres: %v", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to apply schema: %v", err)
	}

	return &PostgresContainer{Container: container, DSN: dsn, DB: db}
}

// TruncateTables empties the given tables. Use between tests for isolation.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	_, err := p.DB.ExecContext(ctx,
		fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(tables, ", ")))
	return err
}
