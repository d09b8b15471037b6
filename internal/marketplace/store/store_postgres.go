package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"markethub/internal/marketplace/models"
	id "markethub/pkg/domain"
	txcontext "markethub/pkg/platform/tx"
)

// Postgres collaborator stores. All are pure I/O and tx-aware so the
// anonymization pass commits atomically with the request mutation.

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func execer(ctx context.Context, db *sql.DB) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return db
}

type PostgresOrderStore struct {
	db *sql.DB
}

func NewPostgresOrderStore(db *sql.DB) *PostgresOrderStore {
	return &PostgresOrderStore{db: db}
}

func (s *PostgresOrderStore) CountByBuyer(ctx context.Context, userID id.UserID) (int, error) {
	var count int
	err := execer(ctx, s.db).QueryRowContext(ctx,
		`SELECT count(*) FROM orders WHERE buyer_id = $1`, uuid.UUID(userID)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

func (s *PostgresOrderStore) ListByBuyer(ctx context.Context, userID id.UserID) ([]*models.Order, error) {
	query := `
		SELECT id, buyer_id, shop_id, amount_cents, currency, status, shipping_name, shipping_line, placed_at
		FROM orders
		WHERE buyer_id = $1
		ORDER BY placed_at ASC
	`
	rows, err := execer(ctx, s.db).QueryContext(ctx, query, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*models.Order
	for rows.Next() {
		var (
			order   models.Order
			orderID uuid.UUID
			buyerID uuid.UUID
			shopID  uuid.UUID
			status  string
		)
		if err := rows.Scan(&orderID, &buyerID, &shopID, &order.AmountCents, &order.Currency,
			&status, &order.ShippingName, &order.ShippingLine, &order.PlacedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		order.ID = id.OrderID(orderID)
		order.BuyerID = id.UserID(buyerID)
		order.ShopID = id.ShopID(shopID)
		order.Status = models.OrderStatus(status)
		out = append(out, &order)
	}
	return out, rows.Err()
}

type PostgresReturnStore struct {
	db *sql.DB
}

func NewPostgresReturnStore(db *sql.DB) *PostgresReturnStore {
	return &PostgresReturnStore{db: db}
}

const openReturnStatuses = `('requested', 'approved', 'under_admin_review')`

func (s *PostgresReturnStore) ListOpenByRequester(ctx context.Context, userID id.UserID) ([]*models.ReturnRequest, error) {
	query := `
		SELECT id, order_id, requester_id, status, reason, opened_at
		FROM return_requests
		WHERE requester_id = $1 AND status IN ` + openReturnStatuses + `
		ORDER BY opened_at ASC
	`
	return s.listReturns(ctx, query, uuid.UUID(userID))
}

func (s *PostgresReturnStore) ListOpenByShop(ctx context.Context, shopID id.ShopID) ([]*models.ReturnRequest, error) {
	query := `
		SELECT r.id, r.order_id, r.requester_id, r.status, r.reason, r.opened_at
		FROM return_requests r
		JOIN orders o ON o.id = r.order_id
		WHERE o.shop_id = $1 AND r.status IN ` + openReturnStatuses + `
		ORDER BY r.opened_at ASC
	`
	return s.listReturns(ctx, query, uuid.UUID(shopID))
}

func (s *PostgresReturnStore) listReturns(ctx context.Context, query string, arg any) ([]*models.ReturnRequest, error) {
	rows, err := execer(ctx, s.db).QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list returns: %w", err)
	}
	defer rows.Close()

	var out []*models.ReturnRequest
	for rows.Next() {
		var (
			ret         models.ReturnRequest
			returnID    uuid.UUID
			orderID     uuid.UUID
			requesterID uuid.UUID
			status      string
		)
		if err := rows.Scan(&returnID, &orderID, &requesterID, &status, &ret.Reason, &ret.OpenedAt); err != nil {
			return nil, fmt.Errorf("scan return: %w", err)
		}
		ret.ID = id.ReturnID(returnID)
		ret.OrderID = id.OrderID(orderID)
		ret.RequesterID = id.UserID(requesterID)
		ret.Status = models.ReturnStatus(status)
		out = append(out, &ret)
	}
	return out, rows.Err()
}

type PostgresReviewStore struct {
	db *sql.DB
}

func NewPostgresReviewStore(db *sql.DB) *PostgresReviewStore {
	return &PostgresReviewStore{db: db}
}

func (s *PostgresReviewStore) CountByAuthor(ctx context.Context, userID id.UserID) (int, error) {
	var count int
	err := execer(ctx, s.db).QueryRowContext(ctx,
		`SELECT count(*) FROM reviews WHERE author_id = $1`, uuid.UUID(userID)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return count, nil
}

func (s *PostgresReviewStore) ListByAuthor(ctx context.Context, userID id.UserID) ([]*models.Review, error) {
	query := `
		SELECT id, author_id, shop_id, rating, comment, author_name, author_email, written_at
		FROM reviews
		WHERE author_id = $1
		ORDER BY written_at ASC
	`
	rows, err := execer(ctx, s.db).QueryContext(ctx, query, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var out []*models.Review
	for rows.Next() {
		var (
			review   models.Review
			reviewID uuid.UUID
			authorID uuid.UUID
			shopID   uuid.UUID
		)
		if err := rows.Scan(&reviewID, &authorID, &shopID, &review.Rating, &review.Comment,
			&review.AuthorName, &review.AuthorEmail, &review.WrittenAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		review.ID = id.ReviewID(reviewID)
		review.AuthorID = id.UserID(authorID)
		review.ShopID = id.ShopID(shopID)
		out = append(out, &review)
	}
	return out, rows.Err()
}

func (s *PostgresReviewStore) Update(ctx context.Context, review *models.Review) error {
	query := `
		UPDATE reviews
		SET author_name = $2, author_email = $3
		WHERE id = $1
	`
	if _, err := execer(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(review.ID), review.AuthorName, review.AuthorEmail); err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

type PostgresAddressStore struct {
	db *sql.DB
}

func NewPostgresAddressStore(db *sql.DB) *PostgresAddressStore {
	return &PostgresAddressStore{db: db}
}

func (s *PostgresAddressStore) CountByUser(ctx context.Context, userID id.UserID) (int, error) {
	var count int
	err := execer(ctx, s.db).QueryRowContext(ctx,
		`SELECT count(*) FROM delivery_addresses WHERE user_id = $1`, uuid.UUID(userID)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count addresses: %w", err)
	}
	return count, nil
}

func (s *PostgresAddressStore) DeleteByUser(ctx context.Context, userID id.UserID) error {
	if _, err := execer(ctx, s.db).ExecContext(ctx,
		`DELETE FROM delivery_addresses WHERE user_id = $1`, uuid.UUID(userID)); err != nil {
		return fmt.Errorf("delete addresses: %w", err)
	}
	return nil
}

type PostgresShopStore struct {
	db *sql.DB
}

func NewPostgresShopStore(db *sql.DB) *PostgresShopStore {
	return &PostgresShopStore{db: db}
}

func (s *PostgresShopStore) FindByOwner(ctx context.Context, userID id.UserID) (*models.Shop, error) {
	query := `
		SELECT id, owner_id, name, published, status, deactivated_at
		FROM shops
		WHERE owner_id = $1
	`
	var (
		shop          models.Shop
		shopID        uuid.UUID
		ownerID       uuid.UUID
		status        string
		deactivatedAt sql.NullTime
	)
	err := execer(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(userID)).
		Scan(&shopID, &ownerID, &shop.Name, &shop.Published, &status, &deactivatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find shop: %w", err)
	}
	shop.ID = id.ShopID(shopID)
	shop.OwnerID = id.UserID(ownerID)
	shop.Status = models.ShopStatus(status)
	if deactivatedAt.Valid {
		value := deactivatedAt.Time
		shop.DeactivatedAt = &value
	}
	return &shop, nil
}

func (s *PostgresShopStore) Save(ctx context.Context, shop *models.Shop) error {
	query := `
		INSERT INTO shops (id, owner_id, name, published, status, deactivated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			published = EXCLUDED.published,
			status = EXCLUDED.status,
			deactivated_at = EXCLUDED.deactivated_at
	`
	if _, err := execer(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(shop.ID), uuid.UUID(shop.OwnerID), shop.Name,
		shop.Published, string(shop.Status), shop.DeactivatedAt); err != nil {
		return fmt.Errorf("save shop: %w", err)
	}
	return nil
}
