package impl

import (
	"context"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type customerFixture struct {
	profiles  *mockRepo.MockProfileRepository
	orders    *mockRepo.MockOrderRepository
	subs      *mockRepo.MockSubscriptionRepository
	tickets   *mockRepo.MockTicketRepository
	txManager *mockRepo.MockTransactionManager
	logs      *mockRepo.MockAdminLogRepository
	routes    *mockService.MockRouteCache
	audit     *AuditRecorder
	service   *customerService
}

func newCustomerFixture(t *testing.T) *customerFixture {
	f := &customerFixture{
		profiles:  mockRepo.NewMockProfileRepository(t),
		orders:    mockRepo.NewMockOrderRepository(t),
		subs:      mockRepo.NewMockSubscriptionRepository(t),
		tickets:   mockRepo.NewMockTicketRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		logs:      mockRepo.NewMockAdminLogRepository(t),
		routes:    mockService.NewMockRouteCache(t),
	}
	f.audit = NewAuditRecorder(f.logs, mockService.NewMockMetricsRecorder(t), newDiscardLogger())
	f.service = NewCustomerService(CustomerServiceParams{
		Gate:          newTestGate(f.profiles),
		TxManager:     f.txManager,
		Profiles:      f.profiles,
		Orders:        f.orders,
		Subscriptions: f.subs,
		Tickets:       f.tickets,
		Routes:        f.routes,
		Audit:         f.audit,
		Logger:        newDiscardLogger(),
	}).(*customerService)

	return f
}

func TestCustomerService_DeleteCustomer(t *testing.T) {
	f := newCustomerFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleSuperAdmin)
	customerID := uuid.New()

	txProfiles := mockRepo.NewMockProfileRepository(t)
	txOrders := mockRepo.NewMockOrderRepository(t)
	txSubs := mockRepo.NewMockSubscriptionRepository(t)
	txTickets := mockRepo.NewMockTicketRepository(t)
	txReviews := mockRepo.NewMockReviewRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(txProfiles)
	factory.EXPECT().NewOrderRepository().Return(txOrders)
	factory.EXPECT().NewSubscriptionRepository().Return(txSubs)
	factory.EXPECT().NewTicketRepository().Return(txTickets)
	factory.EXPECT().NewReviewRepository().Return(txReviews)
	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(runInTx(factory))

	var calls []string
	txProfiles.EXPECT().FindProfileByID(mock.Anything, customerID).
		Return(&entity.Profile{ID: customerID, Email: "buyer@shop.test", Role: entity.RoleMember}, nil)
	txOrders.EXPECT().UnlinkOrdersFromUser(mock.Anything, customerID).
		Run(func(_ context.Context, _ uuid.UUID) { calls = append(calls, "orders") }).Return(3, nil)
	txSubs.EXPECT().UnlinkSubscriptionsFromUser(mock.Anything, customerID).
		Run(func(_ context.Context, _ uuid.UUID) { calls = append(calls, "subscriptions") }).Return(2, nil)
	txTickets.EXPECT().UnlinkTicketsFromUser(mock.Anything, customerID).
		Run(func(_ context.Context, _ uuid.UUID) { calls = append(calls, "tickets") }).Return(1, nil)
	txReviews.EXPECT().UnlinkReviewsFromUser(mock.Anything, customerID).
		Run(func(_ context.Context, _ uuid.UUID) { calls = append(calls, "reviews") }).Return(0, nil)
	txProfiles.EXPECT().DeleteProfile(mock.Anything, customerID).
		Run(func(_ context.Context, _ uuid.UUID) { calls = append(calls, "profile") }).Return(nil)

	f.logs.EXPECT().
		CreateAdminLog(mock.Anything, mock.MatchedBy(func(entry *entity.AdminLog) bool {
			return entry.Action == entity.AuditDeleteCustomer && entry.TargetEmail == "buyer@shop.test"
		})).
		Return(nil)
	allowInvalidate(f.routes, 4)

	result, err := f.service.DeleteCustomer(ctx, customerID)
	f.audit.Wait()

	require.NoError(t, err)
	assert.Equal(t, []string{"orders", "subscriptions", "tickets", "reviews", "profile"}, calls)
	assert.EqualValues(t, 3, result.OrdersUnlinked)
	assert.EqualValues(t, 2, result.SubscriptionsUnlinked)
	assert.EqualValues(t, 1, result.TicketsUnlinked)
}

func TestCustomerService_DeleteCustomer_RefusesStaff(t *testing.T) {
	f := newCustomerFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleSuperAdmin)
	staffID := uuid.New()

	txProfiles := mockRepo.NewMockProfileRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(txProfiles)
	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(runInTx(factory))
	txProfiles.EXPECT().FindProfileByID(mock.Anything, staffID).
		Return(&entity.Profile{ID: staffID, Role: entity.RoleSupport}, nil)

	_, err := f.service.DeleteCustomer(ctx, staffID)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestCustomerService_DeleteCustomer_RequiresSuperAdmin(t *testing.T) {
	f := newCustomerFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)

	_, err := f.service.DeleteCustomer(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestCustomerService_ListCustomers(t *testing.T) {
	f := newCustomerFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)

	withOrders := &entity.Profile{ID: uuid.New(), Email: "a@shop.test", Role: entity.RoleMember}
	without := &entity.Profile{ID: uuid.New(), Email: "b@shop.test", Role: entity.RoleUser}
	f.profiles.EXPECT().
		ListProfiles(mock.Anything, mock.MatchedBy(func(filter repository.ProfileFilter) bool {
			return len(filter.Roles) == 2 && filter.Page.Limit == 20
		})).
		Return([]*entity.Profile{withOrders, without}, 2, nil)
	f.orders.EXPECT().
		FindOrdersByUserIDs(mock.Anything, []uuid.UUID{withOrders.ID, without.ID}).
		Return([]*entity.Order{
			{UserID: &withOrders.ID, FinalAmount: decimal.RequireFromString("19.99"), PaymentStatus: entity.PaymentPaid},
			{UserID: &withOrders.ID, FinalAmount: decimal.RequireFromString("5.01"), PaymentStatus: entity.PaymentPaid},
		}, nil)

	page, err := f.service.ListCustomers(ctx, usecase.CustomerListInput{})
	require.NoError(t, err)
	require.Len(t, page.Customers, 2)
	assert.Equal(t, 2, page.Customers[0].OrderCount)
	assert.True(t, decimal.RequireFromString("25").Equal(page.Customers[0].TotalSpent))
	assert.Zero(t, page.Customers[1].OrderCount)
	assert.EqualValues(t, 2, page.Total)
}
