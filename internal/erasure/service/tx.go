package service

import (
	"context"
	"database/sql"
	"sync"

	"markethub/pkg/platform/tx"
)

// UnitOfWork provides the transactional boundary for one workflow use case.
// The request mutation, every dependent-aggregate mutation and the audit rows
// of a single call must commit atomically or not at all.
type UnitOfWork interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// SQLUnitOfWork runs fn inside one database transaction carried through the
// context; tx-aware stores pick it up and participate automatically.
type SQLUnitOfWork struct {
	db *sql.DB
}

func NewSQLUnitOfWork(db *sql.DB) *SQLUnitOfWork {
	return &SQLUnitOfWork{db: db}
}

func (u *SQLUnitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return tx.Run(ctx, u.db, fn)
}

// MemoryUnitOfWork serializes use cases with a coarse lock. In-memory stores
// mutate live maps, so "rollback" does not exist; tests that exercise failure
// paths assert on observable state instead.
type MemoryUnitOfWork struct {
	mu sync.Mutex
}

func NewMemoryUnitOfWork() *MemoryUnitOfWork {
	return &MemoryUnitOfWork{}
}

func (u *MemoryUnitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx)
}
