package store

import (
	"context"
	"sync"

	"markethub/internal/marketplace/models"
	id "markethub/pkg/domain"
	"markethub/pkg/platform/sentinel"
)

// In-memory collaborator stores. Tests seed them directly through the Add
// helpers; the workflow only sees the narrow interfaces it consumes.

type InMemoryOrderStore struct {
	mu     sync.RWMutex
	orders map[id.OrderID]*models.Order
}

func NewInMemoryOrderStore() *InMemoryOrderStore {
	return &InMemoryOrderStore{orders: make(map[id.OrderID]*models.Order)}
}

func (s *InMemoryOrderStore) Add(order *models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *order
	s.orders[order.ID] = &copied
}

func (s *InMemoryOrderStore) CountByBuyer(_ context.Context, userID id.UserID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, order := range s.orders {
		if order.BuyerID == userID {
			count++
		}
	}
	return count, nil
}

func (s *InMemoryOrderStore) ListByBuyer(_ context.Context, userID id.UserID) ([]*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Order
	for _, order := range s.orders {
		if order.BuyerID == userID {
			copied := *order
			out = append(out, &copied)
		}
	}
	return out, nil
}

type InMemoryReturnStore struct {
	mu      sync.RWMutex
	returns map[id.ReturnID]*models.ReturnRequest
	// shopByOrder lets the shop-side dispute scan work without an order store.
	shopByOrder map[id.OrderID]id.ShopID
}

func NewInMemoryReturnStore() *InMemoryReturnStore {
	return &InMemoryReturnStore{
		returns:     make(map[id.ReturnID]*models.ReturnRequest),
		shopByOrder: make(map[id.OrderID]id.ShopID),
	}
}

func (s *InMemoryReturnStore) Add(ret *models.ReturnRequest, shopID id.ShopID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *ret
	s.returns[ret.ID] = &copied
	s.shopByOrder[ret.OrderID] = shopID
}

func (s *InMemoryReturnStore) ListOpenByRequester(_ context.Context, userID id.UserID) ([]*models.ReturnRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.ReturnRequest
	for _, ret := range s.returns {
		if ret.RequesterID == userID && ret.Status.Open() {
			copied := *ret
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *InMemoryReturnStore) ListOpenByShop(_ context.Context, shopID id.ShopID) ([]*models.ReturnRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.ReturnRequest
	for _, ret := range s.returns {
		if s.shopByOrder[ret.OrderID] == shopID && ret.Status.Open() {
			copied := *ret
			out = append(out, &copied)
		}
	}
	return out, nil
}

type InMemoryReviewStore struct {
	mu      sync.RWMutex
	reviews map[id.ReviewID]*models.Review
}

func NewInMemoryReviewStore() *InMemoryReviewStore {
	return &InMemoryReviewStore{reviews: make(map[id.ReviewID]*models.Review)}
}

func (s *InMemoryReviewStore) Add(review *models.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *review
	s.reviews[review.ID] = &copied
}

func (s *InMemoryReviewStore) CountByAuthor(_ context.Context, userID id.UserID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, review := range s.reviews {
		if review.AuthorID == userID {
			count++
		}
	}
	return count, nil
}

func (s *InMemoryReviewStore) ListByAuthor(_ context.Context, userID id.UserID) ([]*models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Review
	for _, review := range s.reviews {
		if review.AuthorID == userID {
			copied := *review
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *InMemoryReviewStore) Update(_ context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.reviews[review.ID]; !exists {
		return sentinel.ErrNotFound
	}
	copied := *review
	s.reviews[review.ID] = &copied
	return nil
}

type InMemoryAddressStore struct {
	mu        sync.RWMutex
	addresses map[id.AddressID]*models.DeliveryAddress
}

func NewInMemoryAddressStore() *InMemoryAddressStore {
	return &InMemoryAddressStore{addresses: make(map[id.AddressID]*models.DeliveryAddress)}
}

func (s *InMemoryAddressStore) Add(address *models.DeliveryAddress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *address
	s.addresses[address.ID] = &copied
}

func (s *InMemoryAddressStore) CountByUser(_ context.Context, userID id.UserID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, address := range s.addresses {
		if address.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (s *InMemoryAddressStore) DeleteByUser(_ context.Context, userID id.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for addressID, address := range s.addresses {
		if address.UserID == userID {
			delete(s.addresses, addressID)
		}
	}
	return nil
}

type InMemoryShopStore struct {
	mu    sync.RWMutex
	shops map[id.ShopID]*models.Shop
}

func NewInMemoryShopStore() *InMemoryShopStore {
	return &InMemoryShopStore{shops: make(map[id.ShopID]*models.Shop)}
}

func (s *InMemoryShopStore) FindByOwner(_ context.Context, userID id.UserID) (*models.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, shop := range s.shops {
		if shop.OwnerID == userID {
			copied := *shop
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *InMemoryShopStore) Save(_ context.Context, shop *models.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *shop
	s.shops[shop.ID] = &copied
	return nil
}
