package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	account "markethub/internal/account/models"
	"markethub/internal/erasure/models"
	"markethub/internal/erasure/service/mocks"
	marketstore "markethub/internal/marketplace/store"
	id "markethub/pkg/domain"
	dErrors "markethub/pkg/domain-errors"
	"markethub/pkg/platform/audit/publisher"
	"markethub/pkg/platform/sentinel"
)

// Failure-path coverage with mocked stores: infrastructure errors must come
// back coded, never raw, so the transport layer can map them to statuses.

func newMockedService(t *testing.T, users UserStore, requests DeletionRequestStore) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	returns := marketstore.NewInMemoryReturnStore()
	shops := marketstore.NewInMemoryShopStore()
	orders := marketstore.NewInMemoryOrderStore()
	reviews := marketstore.NewInMemoryReviewStore()
	addresses := marketstore.NewInMemoryAddressStore()

	evaluator := NewBlockingEvaluator(returns, shops)
	assessor := NewImpactAssessor(orders, reviews, addresses, shops, evaluator)
	anonymizer := NewAnonymizer(users, nil, addresses, reviews, shops)
	trail := NewAuditWriter(requests, publisher.NewMemoryPublisher(), logger)
	return NewService(NewMemoryUnitOfWork(), users, requests, evaluator, assessor, anonymizer, trail, nil, logger)
}

func TestRequestDeletion_StoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	userID := id.NewUserID()

	t.Run("user lookup failure is internal", func(t *testing.T) {
		users := mocks.NewMockUserStore(ctrl)
		requests := mocks.NewMockDeletionRequestStore(ctrl)
		users.EXPECT().FindByID(gomock.Any(), userID).Return(nil, errors.New("connection reset"))

		svc := newMockedService(t, users, requests)
		_, err := svc.RequestDeletion(ctx, userID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("active-request check failure is internal", func(t *testing.T) {
		users := mocks.NewMockUserStore(ctrl)
		requests := mocks.NewMockDeletionRequestStore(ctrl)
		user := &account.User{ID: userID, Role: account.RoleBuyer, Status: account.StatusVerified}
		users.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
		requests.EXPECT().HasActiveRequest(gomock.Any(), userID).Return(false, errors.New("timeout"))

		svc := newMockedService(t, users, requests)
		_, err := svc.RequestDeletion(ctx, userID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("insert failure is internal", func(t *testing.T) {
		users := mocks.NewMockUserStore(ctrl)
		requests := mocks.NewMockDeletionRequestStore(ctrl)
		user := &account.User{ID: userID, Role: account.RoleBuyer, Status: account.StatusVerified}
		users.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
		requests.EXPECT().HasActiveRequest(gomock.Any(), userID).Return(false, nil)
		requests.EXPECT().Add(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		svc := newMockedService(t, users, requests)
		_, err := svc.RequestDeletion(ctx, userID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func TestCancelDeletion_ConcurrentUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	userID := id.NewUserID()
	now := time.Now()

	users := mocks.NewMockUserStore(ctrl)
	requests := mocks.NewMockDeletionRequestStore(ctrl)

	pending := models.NewRequest(userID, "", "", now)
	requests.EXPECT().FindByID(gomock.Any(), pending.ID).Return(&pending, nil)
	// Another actor won the race; the store rejects the stale write.
	requests.EXPECT().Update(gomock.Any(), gomock.Any()).Return(sentinel.ErrConflict)

	svc := newMockedService(t, users, requests)
	_, err := svc.CancelDeletion(ctx, pending.ID, userID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	assert.Contains(t, err.Error(), "retry")
}

func TestConfirmDeletion_AuditAppendFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	userID := id.NewUserID()
	now := time.Now()

	users := mocks.NewMockUserStore(ctrl)
	requests := mocks.NewMockDeletionRequestStore(ctrl)

	pending := models.NewRequest(userID, "", "", now)
	user := &account.User{ID: userID, Role: account.RoleBuyer, Status: account.StatusVerified}
	requests.EXPECT().FindByID(gomock.Any(), pending.ID).Return(&pending, nil)
	users.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
	requests.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	requests.EXPECT().AppendAuditLog(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))

	svc := newMockedService(t, users, requests)
	_, err := svc.ConfirmDeletion(ctx, pending.ID, userID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}
