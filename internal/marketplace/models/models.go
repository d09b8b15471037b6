// Package models holds the marketplace aggregates the deletion workflow
// touches: orders, reviews, delivery addresses, shops, and return requests.
// Each has its own lifecycle outside the workflow; only the fields the
// workflow reads or scrubs are modeled here.
package models

import (
	"time"

	id "markethub/pkg/domain"
)

// OrderStatus tracks fulfilment; orders are never mutated by anonymization.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// Order is retained in full after anonymization for legal/tax purposes. The
// buyer reference stays intact and resolves to the anonymized user; the
// denormalized shipping fields are part of that retention.
type Order struct {
	ID           id.OrderID
	BuyerID      id.UserID
	ShopID       id.ShopID
	AmountCents  int64
	Currency     string
	Status       OrderStatus
	ShippingName string
	ShippingLine string
	PlacedAt     time.Time
}

// Review keeps its rating and comment forever; only the author-identifying
// denormalizations are scrubbed when the author is erased.
type Review struct {
	ID          id.ReviewID
	AuthorID    id.UserID
	ShopID      id.ShopID
	Rating      int
	Comment     string
	AuthorName  string
	AuthorEmail string
	WrittenAt   time.Time
}

// AnonymizedAuthorName is the fixed marker replacing review author names.
const AnonymizedAuthorName = "Deleted User"

// ApplyAuthorAnonymization replaces author-identifying fields while keeping
// rating and comment content.
func (r *Review) ApplyAuthorAnonymization() {
	r.AuthorName = AnonymizedAuthorName
	r.AuthorEmail = ""
}

// DeliveryAddress has no retention requirement and is deleted outright.
type DeliveryAddress struct {
	ID         id.AddressID
	UserID     id.UserID
	Label      string
	Line1      string
	City       string
	PostalCode string
	Country    string
}

// ShopStatus is the storefront lifecycle state.
type ShopStatus string

const (
	ShopStatusActive      ShopStatus = "active"
	ShopStatusDeactivated ShopStatus = "deactivated"
)

// Shop is a seller's storefront. Deactivation hides its listings without
// deleting the record, preserving order references.
type Shop struct {
	ID            id.ShopID
	OwnerID       id.UserID
	Name          string
	Published     bool
	Status        ShopStatus
	DeactivatedAt *time.Time
}

// ApplyDeactivation hides the shop. Safe to call on an already deactivated
// shop.
func (s *Shop) ApplyDeactivation(now time.Time) {
	if s.Status == ShopStatusDeactivated {
		return
	}
	s.Status = ShopStatusDeactivated
	s.Published = false
	s.DeactivatedAt = &now
}

// ReturnStatus tracks a return/dispute request raised against an order.
type ReturnStatus string

const (
	ReturnStatusRequested        ReturnStatus = "requested"
	ReturnStatusApproved         ReturnStatus = "approved"
	ReturnStatusUnderAdminReview ReturnStatus = "under_admin_review"
	ReturnStatusRejected         ReturnStatus = "rejected"
	ReturnStatusCompleted        ReturnStatus = "completed"
)

// Open reports whether the return still needs resolution. Open disputes block
// account deletion for both the requester and the shop on the other side.
func (s ReturnStatus) Open() bool {
	switch s {
	case ReturnStatusRequested, ReturnStatusApproved, ReturnStatusUnderAdminReview:
		return true
	}
	return false
}

// ReturnRequest is a buyer-initiated dispute over an order.
type ReturnRequest struct {
	ID          id.ReturnID
	OrderID     id.OrderID
	RequesterID id.UserID
	Status      ReturnStatus
	Reason      string
	OpenedAt    time.Time
}
