package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	account "markethub/internal/account/models"
	accountstore "markethub/internal/account/store"
	marketplace "markethub/internal/marketplace/models"
	marketstore "markethub/internal/marketplace/store"
	"markethub/internal/session"
	sessionstore "markethub/internal/session/store"
	id "markethub/pkg/domain"
)

type AnonymizerSuite struct {
	suite.Suite
	ctx        context.Context
	now        time.Time
	users      *accountstore.InMemoryUserStore
	sessions   *sessionstore.InMemoryStore
	addresses  *marketstore.InMemoryAddressStore
	reviews    *marketstore.InMemoryReviewStore
	shops      *marketstore.InMemoryShopStore
	anonymizer *Anonymizer
}

func TestAnonymizerSuite(t *testing.T) {
	suite.Run(t, new(AnonymizerSuite))
}

func (s *AnonymizerSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	s.users = accountstore.New()
	s.sessions = sessionstore.NewInMemoryStore()
	s.addresses = marketstore.NewInMemoryAddressStore()
	s.reviews = marketstore.NewInMemoryReviewStore()
	s.shops = marketstore.NewInMemoryShopStore()
	s.anonymizer = NewAnonymizer(s.users, s.sessions, s.addresses, s.reviews, s.shops)
}

func (s *AnonymizerSuite) TestAnonymizedSuffix() {
	s.Run("deterministic for the same user", func() {
		userID := id.NewUserID()
		s.Equal(AnonymizedSuffix(userID), AnonymizedSuffix(userID))
	})

	s.Run("twelve lowercase hex characters", func() {
		suffix := AnonymizedSuffix(id.NewUserID())
		s.Len(suffix, 12)
		s.Regexp("^[0-9a-f]{12}$", suffix)
	})

	s.Run("distinct users get distinct suffixes", func() {
		s.NotEqual(AnonymizedSuffix(id.NewUserID()), AnonymizedSuffix(id.NewUserID()))
	})
}

func (s *AnonymizerSuite) TestAnonymize() {
	s.Run("scrubs the user and every dependent aggregate", func() {
		user := &account.User{
			ID: id.NewUserID(), Email: "bob@example.com",
			FirstName: "Bob", LastName: "Keller",
			Role: account.RoleBuyer, Status: account.StatusVerified,
		}
		s.Require().NoError(user.SetPassword("secret"))
		s.Require().NoError(s.users.Save(s.ctx, user))
		s.Require().NoError(s.sessions.Save(s.ctx, &session.Session{
			ID: id.NewSessionID(), UserID: user.ID, Status: session.StatusActive,
		}))
		s.addresses.Add(&marketplace.DeliveryAddress{ID: id.AddressID(uuid.New()), UserID: user.ID})
		s.reviews.Add(&marketplace.Review{
			ID: id.ReviewID(uuid.New()), AuthorID: user.ID, Rating: 5,
			Comment: "great", AuthorName: "Bob Keller", AuthorEmail: "bob@example.com",
		})

		s.Require().NoError(s.anonymizer.Anonymize(s.ctx, user, s.now))

		suffix := AnonymizedSuffix(user.ID)
		stored, err := s.users.FindByID(s.ctx, user.ID)
		s.Require().NoError(err)
		s.Equal("deleted-"+suffix+"@anonymized.invalid", stored.Email)
		s.Equal("Deleted", stored.FirstName)
		s.Equal("User "+suffix, stored.LastName)
		s.Empty(stored.PasswordHash)
		s.Equal(account.StatusDeleted, stored.Status)
		s.True(stored.Anonymized)

		sessions, err := s.sessions.ListByUser(s.ctx, user.ID)
		s.Require().NoError(err)
		s.Require().Len(sessions, 1)
		s.Equal(session.StatusInvalidated, sessions[0].Status)
		s.Require().NotNil(sessions[0].InvalidatedAt)

		count, err := s.addresses.CountByUser(s.ctx, user.ID)
		s.Require().NoError(err)
		s.Zero(count)

		reviews, err := s.reviews.ListByAuthor(s.ctx, user.ID)
		s.Require().NoError(err)
		s.Require().Len(reviews, 1)
		s.Equal(marketplace.AnonymizedAuthorName, reviews[0].AuthorName)
		s.Empty(reviews[0].AuthorEmail)
		s.Equal(5, reviews[0].Rating)
	})

	s.Run("second run changes nothing", func() {
		user := &account.User{
			ID: id.NewUserID(), Email: "carol@example.com",
			FirstName: "Carol", LastName: "Nguyen",
			Role: account.RoleBuyer, Status: account.StatusVerified,
		}
		s.Require().NoError(s.users.Save(s.ctx, user))

		s.Require().NoError(s.anonymizer.Anonymize(s.ctx, user, s.now))
		first, err := s.users.FindByID(s.ctx, user.ID)
		s.Require().NoError(err)

		later := s.now.Add(time.Hour)
		s.Require().NoError(s.anonymizer.Anonymize(s.ctx, first, later))
		second, err := s.users.FindByID(s.ctx, user.ID)
		s.Require().NoError(err)

		s.Equal(first.Email, second.Email)
		s.Equal(first.AnonymizedAt, second.AnonymizedAt)
	})

	s.Run("seller shop is deactivated exactly once", func() {
		seller := &account.User{
			ID: id.NewUserID(), Email: "dina@example.com",
			Role: account.RoleSeller, Status: account.StatusVerified,
		}
		s.Require().NoError(s.users.Save(s.ctx, seller))
		s.Require().NoError(s.shops.Save(s.ctx, &marketplace.Shop{
			ID: id.ShopID(uuid.New()), OwnerID: seller.ID, Name: "Dina's Den",
			Published: true, Status: marketplace.ShopStatusActive,
		}))

		s.Require().NoError(s.anonymizer.Anonymize(s.ctx, seller, s.now))

		shop, err := s.shops.FindByOwner(s.ctx, seller.ID)
		s.Require().NoError(err)
		s.Require().NotNil(shop)
		s.Equal(marketplace.ShopStatusDeactivated, shop.Status)
		s.False(shop.Published)
		s.Require().NotNil(shop.DeactivatedAt)
		s.Equal(s.now, *shop.DeactivatedAt)

		refetched, err := s.users.FindByID(s.ctx, seller.ID)
		s.Require().NoError(err)
		s.Require().NoError(s.anonymizer.Anonymize(s.ctx, refetched, s.now.Add(time.Hour)))
		shop, err = s.shops.FindByOwner(s.ctx, seller.ID)
		s.Require().NoError(err)
		s.Equal(s.now, *shop.DeactivatedAt)
	})

	s.Run("non-seller shop lookup is skipped entirely", func() {
		user := &account.User{
			ID: id.NewUserID(), Email: "erik@example.com",
			Role: account.RoleBuyer, Status: account.StatusVerified,
		}
		s.Require().NoError(s.users.Save(s.ctx, user))
		s.Require().NoError(s.shops.Save(s.ctx, &marketplace.Shop{
			ID: id.ShopID(uuid.New()), OwnerID: user.ID, Name: "Orphan Shop",
			Published: true, Status: marketplace.ShopStatusActive,
		}))

		s.Require().NoError(s.anonymizer.Anonymize(s.ctx, user, s.now))

		shop, err := s.shops.FindByOwner(s.ctx, user.ID)
		s.Require().NoError(err)
		s.Equal(marketplace.ShopStatusActive, shop.Status)
	})
}
