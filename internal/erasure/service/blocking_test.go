package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	account "markethub/internal/account/models"
	marketplace "markethub/internal/marketplace/models"
	marketstore "markethub/internal/marketplace/store"
	id "markethub/pkg/domain"
)

type BlockingEvaluatorSuite struct {
	suite.Suite
	ctx       context.Context
	returns   *marketstore.InMemoryReturnStore
	shops     *marketstore.InMemoryShopStore
	evaluator *BlockingEvaluator
}

func TestBlockingEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(BlockingEvaluatorSuite))
}

func (s *BlockingEvaluatorSuite) SetupTest() {
	s.ctx = context.Background()
	s.returns = marketstore.NewInMemoryReturnStore()
	s.shops = marketstore.NewInMemoryShopStore()
	s.evaluator = NewBlockingEvaluator(s.returns, s.shops)
}

func (s *BlockingEvaluatorSuite) buyer() *account.User {
	return &account.User{ID: id.NewUserID(), Role: account.RoleBuyer, Status: account.StatusVerified}
}

func (s *BlockingEvaluatorSuite) addReturn(requester id.UserID, shopID id.ShopID, status marketplace.ReturnStatus) {
	s.returns.Add(&marketplace.ReturnRequest{
		ID:          id.ReturnID(uuid.New()),
		OrderID:     id.OrderID(uuid.New()),
		RequesterID: requester,
		Status:      status,
	}, shopID)
}

func (s *BlockingEvaluatorSuite) TestEvaluate() {
	s.Run("clean verified buyer has no reasons", func() {
		reasons, err := s.evaluator.Evaluate(s.ctx, s.buyer())
		s.NoError(err)
		s.Empty(reasons)
	})

	s.Run("deleted account short-circuits", func() {
		user := s.buyer()
		user.Status = account.StatusDeleted
		s.addReturn(user.ID, id.ShopID(uuid.New()), marketplace.ReturnStatusRequested)

		reasons, err := s.evaluator.Evaluate(s.ctx, user)
		s.NoError(err)
		s.Equal([]string{"account already deleted"}, reasons)
	})

	s.Run("suspended account short-circuits", func() {
		user := s.buyer()
		user.Status = account.StatusSuspended
		reasons, err := s.evaluator.Evaluate(s.ctx, user)
		s.NoError(err)
		s.Equal([]string{"account suspended, contact support"}, reasons)
	})

	s.Run("open disputes are counted in the reason", func() {
		user := s.buyer()
		s.addReturn(user.ID, id.ShopID(uuid.New()), marketplace.ReturnStatusRequested)
		s.addReturn(user.ID, id.ShopID(uuid.New()), marketplace.ReturnStatusApproved)
		s.addReturn(user.ID, id.ShopID(uuid.New()), marketplace.ReturnStatusUnderAdminReview)

		reasons, err := s.evaluator.Evaluate(s.ctx, user)
		s.NoError(err)
		s.Equal([]string{"3 open dispute(s) on your purchases must be resolved first"}, reasons)
	})

	s.Run("resolved disputes do not block", func() {
		user := s.buyer()
		s.addReturn(user.ID, id.ShopID(uuid.New()), marketplace.ReturnStatusRejected)
		s.addReturn(user.ID, id.ShopID(uuid.New()), marketplace.ReturnStatusCompleted)

		reasons, err := s.evaluator.Evaluate(s.ctx, user)
		s.NoError(err)
		s.Empty(reasons)
	})

	s.Run("seller without a shop is not scanned for shop disputes", func() {
		user := s.buyer()
		user.Role = account.RoleSeller
		reasons, err := s.evaluator.Evaluate(s.ctx, user)
		s.NoError(err)
		s.Empty(reasons)
	})

	s.Run("seller collects both personal and shop-side reasons", func() {
		seller := s.buyer()
		seller.Role = account.RoleSeller
		shop := &marketplace.Shop{ID: id.ShopID(uuid.New()), OwnerID: seller.ID, Status: marketplace.ShopStatusActive}
		s.Require().NoError(s.shops.Save(s.ctx, shop))

		s.addReturn(seller.ID, id.ShopID(uuid.New()), marketplace.ReturnStatusRequested)
		s.addReturn(id.NewUserID(), shop.ID, marketplace.ReturnStatusRequested)
		s.addReturn(id.NewUserID(), shop.ID, marketplace.ReturnStatusApproved)

		reasons, err := s.evaluator.Evaluate(s.ctx, seller)
		s.NoError(err)
		s.Equal([]string{
			"1 open dispute(s) on your purchases must be resolved first",
			"2 open dispute(s) against your store's orders must be resolved first",
		}, reasons)
	})

	s.Run("buyer role never triggers the shop scan", func() {
		user := s.buyer()
		shop := &marketplace.Shop{ID: id.ShopID(uuid.New()), OwnerID: user.ID, Status: marketplace.ShopStatusActive}
		s.Require().NoError(s.shops.Save(s.ctx, shop))
		s.addReturn(id.NewUserID(), shop.ID, marketplace.ReturnStatusRequested)

		reasons, err := s.evaluator.Evaluate(s.ctx, user)
		s.NoError(err)
		s.Empty(reasons)
	})
}
