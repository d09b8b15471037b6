package service

//go:generate mockgen -source=stores.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	account "markethub/internal/account/models"
	"markethub/internal/erasure/models"
	marketplace "markethub/internal/marketplace/models"
	"markethub/internal/session"
	id "markethub/pkg/domain"
)

// Collaborator contracts. The workflow consumes these aggregates but never
// owns their persistence; implementations must honor a transaction carried in
// the context so all mutations of one use case commit together.

type UserStore interface {
	FindByID(ctx context.Context, userID id.UserID) (*account.User, error)
	FindByEmail(ctx context.Context, email string) (*account.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *account.User) error
}

type OrderStore interface {
	CountByBuyer(ctx context.Context, userID id.UserID) (int, error)
	ListByBuyer(ctx context.Context, userID id.UserID) ([]*marketplace.Order, error)
}

type ReturnStore interface {
	// ListOpenByRequester returns the user's own unresolved return/dispute
	// requests (statuses Requested, Approved, UnderAdminReview).
	ListOpenByRequester(ctx context.Context, userID id.UserID) ([]*marketplace.ReturnRequest, error)
	// ListOpenByShop returns unresolved disputes raised against a shop's orders.
	ListOpenByShop(ctx context.Context, shopID id.ShopID) ([]*marketplace.ReturnRequest, error)
}

type ReviewStore interface {
	CountByAuthor(ctx context.Context, userID id.UserID) (int, error)
	ListByAuthor(ctx context.Context, userID id.UserID) ([]*marketplace.Review, error)
	Update(ctx context.Context, review *marketplace.Review) error
}

type AddressStore interface {
	CountByUser(ctx context.Context, userID id.UserID) (int, error)
	DeleteByUser(ctx context.Context, userID id.UserID) error
}

type ShopStore interface {
	// FindByOwner returns (nil, nil) when the user owns no shop; callers must
	// branch on absence before use.
	FindByOwner(ctx context.Context, userID id.UserID) (*marketplace.Shop, error)
	Save(ctx context.Context, shop *marketplace.Shop) error
}

type SessionStore interface {
	ListByUser(ctx context.Context, userID id.UserID) ([]*session.Session, error)
	InvalidateByUser(ctx context.Context, userID id.UserID, now time.Time) error
}

// DeletionRequestStore owns the request rows and their append-only audit
// trail. Update must reject concurrent mutations of the same row with
// sentinel.ErrConflict so simultaneous confirm/cancel attempts serialize.
type DeletionRequestStore interface {
	Add(ctx context.Context, request *models.AccountDeletionRequest) error
	Update(ctx context.Context, request *models.AccountDeletionRequest) error
	FindByID(ctx context.Context, requestID id.RequestID) (*models.AccountDeletionRequest, error)
	// FindPendingByUser returns (nil, nil) when no pending request exists.
	FindPendingByUser(ctx context.Context, userID id.UserID) (*models.AccountDeletionRequest, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*models.AccountDeletionRequest, error)
	HasActiveRequest(ctx context.Context, userID id.UserID) (bool, error)
	AppendAuditLog(ctx context.Context, log *models.AccountDeletionAuditLog) error
	ListAuditLogsByRequest(ctx context.Context, requestID id.RequestID) ([]*models.AccountDeletionAuditLog, error)
	ListAuditLogsByUser(ctx context.Context, userID id.UserID) ([]*models.AccountDeletionAuditLog, error)
}
