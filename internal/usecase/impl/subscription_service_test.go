package impl

import (
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionFixture struct {
	profiles *mockRepo.MockProfileRepository
	subs     *mockRepo.MockSubscriptionRepository
	orders   *mockRepo.MockOrderRepository
	mailer   *mockService.MockMailer
	routes   *mockService.MockRouteCache
	service  *subscriptionService
	now      time.Time
}

func newSubscriptionFixture(t *testing.T) *subscriptionFixture {
	f := &subscriptionFixture{
		profiles: mockRepo.NewMockProfileRepository(t),
		subs:     mockRepo.NewMockSubscriptionRepository(t),
		orders:   mockRepo.NewMockOrderRepository(t),
		mailer:   mockService.NewMockMailer(t),
		routes:   mockService.NewMockRouteCache(t),
		now:      time.Date(2026, 1, 31, 8, 0, 0, 0, time.UTC),
	}
	f.service = NewSubscriptionService(SubscriptionServiceParams{
		Gate:          newTestGate(f.profiles),
		Subscriptions: f.subs,
		Orders:        f.orders,
		Profiles:      f.profiles,
		Mailer:        f.mailer,
		Routes:        f.routes,
		Logger:        newDiscardLogger(),
	}).(*subscriptionService)
	f.service.now = func() time.Time { return f.now }

	return f
}

func TestSubscriptionService_ExtendSubscription(t *testing.T) {
	now := time.Date(2026, 1, 31, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		status     entity.SubscriptionStatus
		periodEnd  time.Time
		wantEnd    time.Time
		wantStatus entity.SubscriptionStatus
	}{
		{
			name:       "active line extends from its period end",
			status:     entity.SubscriptionActive,
			periodEnd:  now.AddDate(0, 0, 10),
			wantEnd:    now.AddDate(0, 0, 10).AddDate(0, 3, 0),
			wantStatus: entity.SubscriptionActive,
		},
		{
			name:       "expired line restarts from now",
			status:     entity.SubscriptionExpired,
			periodEnd:  now.AddDate(0, -2, 0),
			wantEnd:    now.AddDate(0, 3, 0),
			wantStatus: entity.SubscriptionActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSubscriptionFixture(t)
			ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
			sub := &entity.Subscription{ID: uuid.New(), Status: tt.status, CurrentPeriodEnd: tt.periodEnd}

			f.subs.EXPECT().FindSubscriptionByID(mock.Anything, sub.ID).Return(sub, nil)
			f.subs.EXPECT().UpdateSubscription(mock.Anything, sub).Return(nil)
			allowInvalidate(f.routes, 2)

			got, err := f.service.ExtendSubscription(ctx, sub.ID, usecase.ExtendSubscriptionInput{Months: 3})
			require.NoError(t, err)
			assert.Equal(t, tt.wantEnd, got.CurrentPeriodEnd)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestSubscriptionService_CreateSubscription_OnePerOrder(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
	order := &entity.Order{ID: uuid.New()}

	f.orders.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
	f.subs.EXPECT().FindSubscriptionByOrderID(mock.Anything, order.ID).Return(&entity.Subscription{ID: uuid.New()}, nil)

	_, err := f.service.CreateSubscription(ctx, usecase.CreateSubscriptionInput{OrderID: order.ID, DurationMonths: 1})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestSubscriptionService_SendCredentials_EscapesValues(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
	orderID := uuid.New()
	sub := &entity.Subscription{
		ID:       uuid.New(),
		OrderID:  &orderID,
		Username: "user<1>",
		Password: "p&ss",
	}

	f.subs.EXPECT().FindSubscriptionByID(mock.Anything, sub.ID).Return(sub, nil)
	f.orders.EXPECT().FindOrderByID(mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, CustomerEmail: "buyer@shop.test", CustomerName: "Buyer"}, nil)
	f.mailer.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(msg service.MailMessage) bool {
			return msg.To == "buyer@shop.test" &&
				assert.Contains(t, msg.HTML, "user&lt;1&gt;") &&
				assert.Contains(t, msg.HTML, "p&amp;ss")
		})).
		Return(nil)

	assert.NoError(t, f.service.SendCredentials(ctx, sub.ID))
}

func TestSubscriptionService_SendCredentials_NoRecipient(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
	sub := &entity.Subscription{ID: uuid.New()}
	f.subs.EXPECT().FindSubscriptionByID(mock.Anything, sub.ID).Return(sub, nil)

	err := f.service.SendCredentials(ctx, sub.ID)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
