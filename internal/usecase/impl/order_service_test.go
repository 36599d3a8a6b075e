package impl

import (
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	profiles *mockRepo.MockProfileRepository
	orders   *mockRepo.MockOrderRepository
	subs     *mockRepo.MockSubscriptionRepository
	routes   *mockService.MockRouteCache
	cache    *mockService.MockCache
	logs     *mockRepo.MockAdminLogRepository
	audit    *AuditRecorder
	service  usecase.OrderUsecase
}

func newOrderFixture(t *testing.T) *orderFixture {
	f := &orderFixture{
		profiles: mockRepo.NewMockProfileRepository(t),
		orders:   mockRepo.NewMockOrderRepository(t),
		subs:     mockRepo.NewMockSubscriptionRepository(t),
		routes:   mockService.NewMockRouteCache(t),
		cache:    mockService.NewMockCache(t),
		logs:     mockRepo.NewMockAdminLogRepository(t),
	}
	f.audit = NewAuditRecorder(f.logs, mockService.NewMockMetricsRecorder(t), newDiscardLogger())
	f.service = NewOrderService(OrderServiceParams{
		Gate:          newTestGate(f.profiles),
		Orders:        f.orders,
		Profiles:      f.profiles,
		Subscriptions: f.subs,
		Routes:        f.routes,
		Cache:         f.cache,
		Audit:         f.audit,
		Logger:        newDiscardLogger(),
	})

	return f
}

func TestOrderService_ListOrders_CustomerPlaceholders(t *testing.T) {
	f := newOrderFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)

	ownerID := uuid.New()
	deletedID := uuid.New()
	orders := []*entity.Order{
		{ID: uuid.New(), UserID: &ownerID, CustomerName: "checkout name", CustomerEmail: "old@shop.test"},
		{ID: uuid.New(), UserID: &deletedID, CustomerName: "Snapshot", CustomerEmail: "snap@shop.test"},
		{ID: uuid.New()},
	}
	f.orders.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(orders, 3, nil)
	f.profiles.EXPECT().
		FindProfilesByIDs(mock.Anything, []uuid.UUID{ownerID, deletedID}).
		Return([]*entity.Profile{{ID: ownerID, Email: "live@shop.test", FullName: ptr("Live Name")}}, nil)

	page, err := f.service.ListOrders(ctx, usecase.OrderListInput{})
	require.NoError(t, err)
	require.Len(t, page.Orders, 3)

	assert.Equal(t, "Live Name", page.Orders[0].Customer.Name)
	assert.Equal(t, "live@shop.test", page.Orders[0].Customer.Email)
	assert.Equal(t, "Snapshot", page.Orders[1].Customer.Name)
	assert.Equal(t, entity.GuestName, page.Orders[2].Customer.Name)
	assert.Equal(t, entity.GuestEmail, page.Orders[2].Customer.Email)
}

func TestOrderService_ListOrders_RejectsUnknownStatus(t *testing.T) {
	f := newOrderFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)

	_, err := f.service.ListOrders(ctx, usecase.OrderListInput{PaymentStatus: "pending-ish"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_GetOrder_ToleratesMissingRelations(t *testing.T) {
	f := newOrderFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleSupport)
	// support may not read orders
	_, err := f.service.GetOrder(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	f = newOrderFixture(t)
	ctx, _ = signedIn(f.profiles, entity.RoleAdmin)
	ownerID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: &ownerID, CustomerName: "Snapshot"}
	f.orders.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
	f.profiles.EXPECT().FindProfileByID(mock.Anything, ownerID).Return(nil, repository.ErrProfileNotFound)
	f.subs.EXPECT().FindSubscriptionByOrderID(mock.Anything, order.ID).Return(nil, repository.ErrSubscriptionNotFound)

	detail, err := f.service.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.Subscription)
	assert.Equal(t, "Snapshot", detail.Customer.Name)
}

func TestOrderService_UpdateOrderStatus_DropsDashboardCache(t *testing.T) {
	f := newOrderFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
	order := &entity.Order{ID: uuid.New(), PaymentStatus: entity.PaymentPaid}
	paid := entity.PaymentPaid

	f.orders.EXPECT().UpdateOrderStatus(mock.Anything, order.ID, mock.Anything).Return(nil)
	f.orders.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
	allowInvalidate(f.routes, 3)
	f.cache.EXPECT().Delete(mock.Anything, "dashboard:daily", "dashboard:monthly", "dashboard:yearly").
		Return(errors.New("redis down"))

	got, err := f.service.UpdateOrderStatus(ctx, order.ID, usecase.OrderStatusInput{PaymentStatus: &paid})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, got.PaymentStatus)
}

func TestOrderService_DeleteOrder_Audited(t *testing.T) {
	f := newOrderFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleSuperAdmin)
	order := &entity.Order{ID: uuid.New(), OrderNumber: 1042, CustomerEmail: "guest@shop.test"}

	f.orders.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
	f.orders.EXPECT().DeleteOrder(mock.Anything, order.ID).Return(nil)
	f.logs.EXPECT().
		CreateAdminLog(mock.Anything, mock.MatchedBy(func(entry *entity.AdminLog) bool {
			return entry.Action == entity.AuditDeleteOrder && entry.Details["order_number"] == int64(1042)
		})).
		Return(nil)
	allowInvalidate(f.routes, 3)
	f.cache.EXPECT().Delete(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := f.service.DeleteOrder(ctx, order.ID)
	f.audit.Wait()
	assert.NoError(t, err)
}

func ptr[T any](v T) *T {
	return &v
}
