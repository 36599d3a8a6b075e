package impl

import (
	"context"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	profiles  *mockRepo.MockProfileRepository
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	subs      *mockRepo.MockSubscriptionRepository
	qrcode    *mockService.MockQRCodeService
	routes    *mockService.MockRouteCache
	srv       usecase.AccountUsecase
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()
	f := &accountFixture{
		profiles:  mockRepo.NewMockProfileRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		subs:      mockRepo.NewMockSubscriptionRepository(t),
		qrcode:    mockService.NewMockQRCodeService(t),
		routes:    mockService.NewMockRouteCache(t),
	}
	f.srv = NewAccountService(AccountServiceParams{
		Gate:      newTestGate(f.profiles),
		TxManager: f.txManager,
		QRCode:    f.qrcode,
		Routes:    f.routes,
		Logger:    newDiscardLogger(),
	})

	return f
}

func (f *accountFixture) expectOwnSubscription(userID uuid.UUID, sub *entity.Subscription) {
	f.txManager.EXPECT().ExecuteAs(mock.Anything, userID, mock.Anything).RunAndReturn(runAsInTx(f.factory)).Once()
	f.factory.EXPECT().NewSubscriptionRepository().Return(f.subs).Once()
	f.subs.EXPECT().FindSubscriptionByID(mock.Anything, sub.ID).Return(sub, nil).Once()
}

func TestAccountService_GetPlaylistQR(t *testing.T) {
	f := newAccountFixture(t)
	ctx, userID := signedIn(f.profiles, entity.RoleUser)
	sub := &entity.Subscription{ID: uuid.New(), UserID: &userID, PlaylistURL: "http://line.test/get.php?u=a"}
	f.expectOwnSubscription(userID, sub)
	f.qrcode.EXPECT().GeneratePlaylistQR(sub.PlaylistURL).Return([]byte("png"), nil).Once()

	png, err := f.srv.GetPlaylistQR(ctx, sub.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestAccountService_GetPlaylistQRHidesOtherCustomersLines(t *testing.T) {
	f := newAccountFixture(t)
	ctx, userID := signedIn(f.profiles, entity.RoleUser)
	owner := uuid.New()
	sub := &entity.Subscription{ID: uuid.New(), UserID: &owner, PlaylistURL: "http://line.test/x"}
	f.expectOwnSubscription(userID, sub)

	_, err := f.srv.GetPlaylistQR(ctx, sub.ID)

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAccountService_GetPlaylistQRWithoutURL(t *testing.T) {
	f := newAccountFixture(t)
	ctx, userID := signedIn(f.profiles, entity.RoleUser)
	sub := &entity.Subscription{ID: uuid.New(), UserID: &userID}
	f.expectOwnSubscription(userID, sub)

	_, err := f.srv.GetPlaylistQR(ctx, sub.ID)

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_UpdateMyProfile(t *testing.T) {
	f := newAccountFixture(t)
	ctx, userID := signedIn(f.profiles, entity.RoleUser)
	blank := "   "

	f.txManager.EXPECT().ExecuteAs(mock.Anything, userID, mock.Anything).RunAndReturn(runAsInTx(f.factory)).Once()
	f.factory.EXPECT().NewProfileRepository().Return(f.profiles).Once()
	f.profiles.EXPECT().UpdateProfileName(mock.Anything, userID, (*string)(nil)).Return(nil).Once()
	f.routes.EXPECT().Invalidate(mock.Anything, pathAccount, customerPath(userID)).Return(nil).Once()

	profile, err := f.srv.UpdateMyProfile(ctx, usecase.UpdateProfileInput{FullName: &blank})

	require.NoError(t, err)
	assert.Equal(t, userID, profile.ID)
}

func TestAccountService_RequiresSession(t *testing.T) {
	f := newAccountFixture(t)

	_, err := f.srv.ListMyOrders(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = f.srv.ListMySubscriptions(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
