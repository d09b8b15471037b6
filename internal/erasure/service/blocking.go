package service

import (
	"context"
	"fmt"

	account "markethub/internal/account/models"
	dErrors "markethub/pkg/domain-errors"
)

// BlockingEvaluator decides whether an account may currently be erased. It is
// pure decision logic over repository reads: no side effects, no caching, so
// the workflow can re-run it at confirmation time as a safety re-check and
// trust the fresh answer.
type BlockingEvaluator struct {
	returns ReturnStore
	shops   ShopStore
}

func NewBlockingEvaluator(returns ReturnStore, shops ShopStore) *BlockingEvaluator {
	return &BlockingEvaluator{returns: returns, shops: shops}
}

// Evaluate returns every reason deletion must currently be refused. An empty
// slice means deletion is permitted. Account-status reasons short-circuit:
// a deleted or suspended account gets exactly one reason and no dispute scan.
func (e *BlockingEvaluator) Evaluate(ctx context.Context, user *account.User) ([]string, error) {
	switch user.Status {
	case account.StatusDeleted:
		return []string{"account already deleted"}, nil
	case account.StatusSuspended:
		return []string{"account suspended, contact support"}, nil
	}

	var reasons []string

	open, err := e.returns.ListOpenByRequester(ctx, user.ID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check open disputes")
	}
	if len(open) > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"%d open dispute(s) on your purchases must be resolved first", len(open)))
	}

	if user.Role == account.RoleSeller {
		shop, err := e.shops.FindByOwner(ctx, user.ID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up shop")
		}
		if shop != nil {
			against, err := e.returns.ListOpenByShop(ctx, shop.ID)
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check shop disputes")
			}
			if len(against) > 0 {
				reasons = append(reasons, fmt.Sprintf(
					"%d open dispute(s) against your store's orders must be resolved first", len(against)))
			}
		}
	}

	return reasons, nil
}
