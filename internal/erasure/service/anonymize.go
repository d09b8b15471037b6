package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	account "markethub/internal/account/models"
	marketplace "markethub/internal/marketplace/models"
	id "markethub/pkg/domain"
	dErrors "markethub/pkg/domain-errors"
)

// Anonymizer performs the irreversible scrub across the user and its
// dependent aggregates. Step order is fixed so a failed run leaves a
// well-defined intermediate state; the caller wraps the whole pass in one
// unit of work so nothing partial is ever durably committed.
type Anonymizer struct {
	users     UserStore
	sessions  SessionStore
	addresses AddressStore
	reviews   ReviewStore
	shops     ShopStore
}

func NewAnonymizer(
	users UserStore,
	sessions SessionStore,
	addresses AddressStore,
	reviews ReviewStore,
	shops ShopStore,
) *Anonymizer {
	return &Anonymizer{
		users:     users,
		sessions:  sessions,
		addresses: addresses,
		reviews:   reviews,
		shops:     shops,
	}
}

// AnonymizedSuffix derives the stable identifier used to scrub a user's
// fields. SHA-256 over the UUID string, truncated to 12 hex chars: collision
// resistant given ID uniqueness, and reproducible so a retried run scrubs to
// the same values.
func AnonymizedSuffix(userID id.UserID) string {
	sum := sha256.Sum256([]byte(userID.String()))
	return hex.EncodeToString(sum[:])[:12]
}

// Anonymize scrubs the user and every dependent aggregate. Orders are
// deliberately untouched: amounts, dates and denormalized shipping fields are
// retained for legal/audit purposes, with the buyer reference now resolving
// to an anonymized user. Observably idempotent on an already-anonymized user.
func (a *Anonymizer) Anonymize(ctx context.Context, user *account.User, now time.Time) error {
	user.ApplyAnonymization(AnonymizedSuffix(user.ID), now)
	if err := a.users.Save(ctx, user); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to scrub user record")
	}

	if err := a.sessions.InvalidateByUser(ctx, user.ID, now); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to invalidate sessions")
	}

	if err := a.addresses.DeleteByUser(ctx, user.ID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete addresses")
	}

	reviews, err := a.reviews.ListByAuthor(ctx, user.ID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list reviews")
	}
	for _, review := range reviews {
		if review.AuthorName == marketplace.AnonymizedAuthorName && review.AuthorEmail == "" {
			continue
		}
		review.ApplyAuthorAnonymization()
		if err := a.reviews.Update(ctx, review); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to anonymize review")
		}
	}

	if user.Role == account.RoleSeller {
		shop, err := a.shops.FindByOwner(ctx, user.ID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up shop")
		}
		if shop != nil && shop.Status == marketplace.ShopStatusActive {
			shop.ApplyDeactivation(now)
			if err := a.shops.Save(ctx, shop); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to deactivate shop")
			}
		}
	}

	return nil
}
