package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	account "markethub/internal/account/models"
	"markethub/internal/erasure/models"
	marketplace "markethub/internal/marketplace/models"
	dErrors "markethub/pkg/domain-errors"
)

// ImpactAssessor computes the human-readable preview shown to a user before
// they commit to deletion. Purely informational: authorization lives in the
// blocking evaluator, never here.
type ImpactAssessor struct {
	orders    OrderStore
	reviews   ReviewStore
	addresses AddressStore
	shops     ShopStore
	evaluator *BlockingEvaluator
}

func NewImpactAssessor(
	orders OrderStore,
	reviews ReviewStore,
	addresses AddressStore,
	shops ShopStore,
	evaluator *BlockingEvaluator,
) *ImpactAssessor {
	return &ImpactAssessor{
		orders:    orders,
		reviews:   reviews,
		addresses: addresses,
		shops:     shops,
		evaluator: evaluator,
	}
}

// Assess gathers counts and blocking reasons without mutating anything. The
// independent reads run concurrently with shared cancellation.
func (a *ImpactAssessor) Assess(ctx context.Context, user *account.User) (*models.ImpactSummary, error) {
	summary := &models.ImpactSummary{}

	var shop *marketplace.Shop
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		reasons, err := a.evaluator.Evaluate(gctx, user)
		if err != nil {
			return err
		}
		summary.BlockingReasons = reasons
		return nil
	})
	g.Go(func() error {
		count, err := a.orders.CountByBuyer(gctx, user.ID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to count orders")
		}
		summary.OrderCount = count
		return nil
	})
	g.Go(func() error {
		count, err := a.reviews.CountByAuthor(gctx, user.ID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to count reviews")
		}
		summary.ReviewCount = count
		return nil
	})
	g.Go(func() error {
		count, err := a.addresses.CountByUser(gctx, user.ID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to count addresses")
		}
		summary.AddressCount = count
		return nil
	})
	g.Go(func() error {
		found, err := a.shops.FindByOwner(gctx, user.ID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up shop")
		}
		shop = found
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary.Blocked = len(summary.BlockingReasons) > 0
	if shop != nil && shop.Status == marketplace.ShopStatusActive && shop.Published {
		summary.HasActiveShop = true
		summary.ShopName = shop.Name
	}
	summary.Statements = impactStatements(summary)
	return summary, nil
}

// impactStatements renders the fixed, ordered disclosure list: irreversibility
// notice first, counts in between, final confirmation line last.
func impactStatements(s *models.ImpactSummary) []string {
	statements := []string{
		"Deleting your account is permanent and cannot be reversed.",
		fmt.Sprintf("%d order(s) will be kept for legal retention, no longer linked to your identity.", s.OrderCount),
		fmt.Sprintf("%d review(s) will remain visible under the name %q.", s.ReviewCount, marketplace.AnonymizedAuthorName),
		fmt.Sprintf("%d delivery address(es) will be removed.", s.AddressCount),
	}
	if s.HasActiveShop {
		statements = append(statements,
			fmt.Sprintf("Your store %q will be deactivated and its listings hidden.", s.ShopName))
	}
	statements = append(statements, "Once confirmed, this cannot be undone.")
	return statements
}

// NotFoundImpact is the summary returned for a user that does not exist:
// everything zero and blocked, rather than an error.
func NotFoundImpact() *models.ImpactSummary {
	return &models.ImpactSummary{
		Blocked:         true,
		BlockingReasons: []string{"user not found"},
		Statements:      []string{"No account data found."},
	}
}
