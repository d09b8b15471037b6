package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	account "markethub/internal/account/models"
	marketplace "markethub/internal/marketplace/models"
	marketstore "markethub/internal/marketplace/store"
	id "markethub/pkg/domain"
)

type ImpactAssessorSuite struct {
	suite.Suite
	ctx       context.Context
	orders    *marketstore.InMemoryOrderStore
	returns   *marketstore.InMemoryReturnStore
	reviews   *marketstore.InMemoryReviewStore
	addresses *marketstore.InMemoryAddressStore
	shops     *marketstore.InMemoryShopStore
	assessor  *ImpactAssessor
}

func TestImpactAssessorSuite(t *testing.T) {
	suite.Run(t, new(ImpactAssessorSuite))
}

func (s *ImpactAssessorSuite) SetupTest() {
	s.ctx = context.Background()
	s.orders = marketstore.NewInMemoryOrderStore()
	s.returns = marketstore.NewInMemoryReturnStore()
	s.reviews = marketstore.NewInMemoryReviewStore()
	s.addresses = marketstore.NewInMemoryAddressStore()
	s.shops = marketstore.NewInMemoryShopStore()
	evaluator := NewBlockingEvaluator(s.returns, s.shops)
	s.assessor = NewImpactAssessor(s.orders, s.reviews, s.addresses, s.shops, evaluator)
}

func (s *ImpactAssessorSuite) TestAssess() {
	s.Run("counts every aggregate for a buyer", func() {
		user := &account.User{ID: id.NewUserID(), Role: account.RoleBuyer, Status: account.StatusVerified}
		for range 3 {
			s.orders.Add(&marketplace.Order{ID: id.OrderID(uuid.New()), BuyerID: user.ID})
		}
		for range 2 {
			s.reviews.Add(&marketplace.Review{ID: id.ReviewID(uuid.New()), AuthorID: user.ID})
		}
		s.addresses.Add(&marketplace.DeliveryAddress{ID: id.AddressID(uuid.New()), UserID: user.ID})

		summary, err := s.assessor.Assess(s.ctx, user)
		s.Require().NoError(err)
		s.False(summary.Blocked)
		s.Equal(3, summary.OrderCount)
		s.Equal(2, summary.ReviewCount)
		s.Equal(1, summary.AddressCount)
		s.False(summary.HasActiveShop)
		s.Empty(summary.ShopName)
	})

	s.Run("statement order is fixed with the confirmation line last", func() {
		user := &account.User{ID: id.NewUserID(), Role: account.RoleBuyer, Status: account.StatusVerified}
		s.orders.Add(&marketplace.Order{ID: id.OrderID(uuid.New()), BuyerID: user.ID})

		summary, err := s.assessor.Assess(s.ctx, user)
		s.Require().NoError(err)
		s.Require().Len(summary.Statements, 5)
		s.Equal("Deleting your account is permanent and cannot be reversed.", summary.Statements[0])
		s.Equal("1 order(s) will be kept for legal retention, no longer linked to your identity.", summary.Statements[1])
		s.Equal(fmt.Sprintf("0 review(s) will remain visible under the name %q.", marketplace.AnonymizedAuthorName), summary.Statements[2])
		s.Equal("0 delivery address(es) will be removed.", summary.Statements[3])
		s.Equal("Once confirmed, this cannot be undone.", summary.Statements[4])
	})

	s.Run("active published shop adds a storefront line", func() {
		seller := &account.User{ID: id.NewUserID(), Role: account.RoleSeller, Status: account.StatusVerified}
		s.Require().NoError(s.shops.Save(s.ctx, &marketplace.Shop{
			ID: id.ShopID(uuid.New()), OwnerID: seller.ID, Name: "Vintage Vinyl",
			Published: true, Status: marketplace.ShopStatusActive,
		}))

		summary, err := s.assessor.Assess(s.ctx, seller)
		s.Require().NoError(err)
		s.True(summary.HasActiveShop)
		s.Equal("Vintage Vinyl", summary.ShopName)
		s.Require().Len(summary.Statements, 6)
		s.Equal(`Your store "Vintage Vinyl" will be deactivated and its listings hidden.`, summary.Statements[4])
		s.Equal("Once confirmed, this cannot be undone.", summary.Statements[5])
	})

	s.Run("unpublished shop is not surfaced as active", func() {
		seller := &account.User{ID: id.NewUserID(), Role: account.RoleSeller, Status: account.StatusVerified}
		s.Require().NoError(s.shops.Save(s.ctx, &marketplace.Shop{
			ID: id.ShopID(uuid.New()), OwnerID: seller.ID, Name: "Drafts Only",
			Published: false, Status: marketplace.ShopStatusActive,
		}))

		summary, err := s.assessor.Assess(s.ctx, seller)
		s.Require().NoError(err)
		s.False(summary.HasActiveShop)
		s.Len(summary.Statements, 5)
	})

	s.Run("blocking reasons flow through with counts still populated", func() {
		user := &account.User{ID: id.NewUserID(), Role: account.RoleBuyer, Status: account.StatusVerified}
		s.orders.Add(&marketplace.Order{ID: id.OrderID(uuid.New()), BuyerID: user.ID})
		s.returns.Add(&marketplace.ReturnRequest{
			ID: id.ReturnID(uuid.New()), OrderID: id.OrderID(uuid.New()),
			RequesterID: user.ID, Status: marketplace.ReturnStatusRequested,
		}, id.ShopID(uuid.New()))

		summary, err := s.assessor.Assess(s.ctx, user)
		s.Require().NoError(err)
		s.True(summary.Blocked)
		s.Equal([]string{"1 open dispute(s) on your purchases must be resolved first"}, summary.BlockingReasons)
		s.Equal(1, summary.OrderCount)
	})
}

func (s *ImpactAssessorSuite) TestNotFoundImpact() {
	summary := NotFoundImpact()
	s.True(summary.Blocked)
	s.Equal([]string{"user not found"}, summary.BlockingReasons)
	s.Equal([]string{"No account data found."}, summary.Statements)
	s.Zero(summary.OrderCount)
}
