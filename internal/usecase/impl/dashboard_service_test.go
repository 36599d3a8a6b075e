package impl

import (
	"context"
	"testing"
	"time"

	"portal/internal/analytics"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	profiles *mockRepo.MockProfileRepository
	orders   *mockRepo.MockOrderRepository
	subs     *mockRepo.MockSubscriptionRepository
	tickets  *mockRepo.MockTicketRepository
	cache    *mockService.MockCache
	metrics  *mockService.MockMetricsRecorder
	service  *dashboardService
	now      time.Time
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	f := &dashboardFixture{
		profiles: mockRepo.NewMockProfileRepository(t),
		orders:   mockRepo.NewMockOrderRepository(t),
		subs:     mockRepo.NewMockSubscriptionRepository(t),
		tickets:  mockRepo.NewMockTicketRepository(t),
		cache:    mockService.NewMockCache(t),
		metrics:  mockService.NewMockMetricsRecorder(t),
		now:      time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC),
	}
	f.service = NewDashboardService(DashboardServiceParams{
		Config:        newTestConfig(),
		Gate:          newTestGate(f.profiles),
		Orders:        f.orders,
		Profiles:      f.profiles,
		Subscriptions: f.subs,
		Tickets:       f.tickets,
		Cache:         f.cache,
		Metrics:       f.metrics,
		Logger:        newDiscardLogger(),
	}).(*dashboardService)
	f.service.now = func() time.Time { return f.now }

	return f
}

func (f *dashboardFixture) expectSources(ordersErr error) {
	if ordersErr != nil {
		f.orders.EXPECT().ListOrdersCreatedSince(mock.Anything, mock.Anything).Return(nil, ordersErr)
	} else {
		f.orders.EXPECT().ListOrdersCreatedSince(mock.Anything, mock.Anything).Return([]*entity.Order{
			{FinalAmount: decimal.NewFromInt(30), PaymentStatus: entity.PaymentPaid, CreatedAt: f.now.Add(-time.Hour)},
		}, nil)
	}
	f.profiles.EXPECT().CountProfiles(mock.Anything, mock.Anything).Return(12, nil)
	f.profiles.EXPECT().ListProfilesCreatedSince(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	f.subs.EXPECT().CountActiveSubscriptions(mock.Anything, f.now).Return(7, nil)
	f.tickets.EXPECT().CountOpenTickets(mock.Anything).Return(repository.TicketCounts{Open: 4, Urgent: 1}, nil)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	f := newDashboardFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)

	f.cache.EXPECT().GetJSON(mock.Anything, "dashboard:daily", mock.Anything).Return(false, nil)
	f.expectSources(nil)
	f.cache.EXPECT().SetJSON(mock.Anything, "dashboard:daily", mock.Anything, time.Minute).Return(nil)

	stats, err := f.service.GetDashboard(ctx, "Daily")
	require.NoError(t, err)
	assert.False(t, stats.Degraded)
	assert.Equal(t, analytics.Daily, stats.Granularity)
	assert.EqualValues(t, 12, stats.CustomerCount)
	assert.EqualValues(t, 7, stats.ActiveSubscriptions)
	assert.EqualValues(t, 4, stats.OpenTickets)
	assert.EqualValues(t, 1, stats.UrgentTickets)
	assert.True(t, decimal.NewFromInt(30).Equal(stats.Revenue))
}

func TestDashboardService_GetDashboard_DegradedIsNotCached(t *testing.T) {
	f := newDashboardFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)

	f.cache.EXPECT().GetJSON(mock.Anything, "dashboard:monthly", mock.Anything).Return(false, errors.New("redis down"))
	f.expectSources(errors.New("statement timeout"))
	f.metrics.EXPECT().AggregationSourceFailed(analytics.SourceOrders).Once()

	stats, err := f.service.GetDashboard(ctx, "")
	require.NoError(t, err)
	assert.True(t, stats.Degraded)
	assert.Equal(t, []string{analytics.SourceOrders}, stats.FailedSources)
	assert.True(t, stats.Revenue.IsZero())
	assert.EqualValues(t, 7, stats.ActiveSubscriptions)
}

func TestDashboardService_GetDashboard_CacheHit(t *testing.T) {
	f := newDashboardFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)

	f.cache.EXPECT().
		GetJSON(mock.Anything, "dashboard:yearly", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			dest.(*analytics.DashboardStats).OpenTickets = 99

			return true, nil
		})

	stats, err := f.service.GetDashboard(ctx, "yearly")
	require.NoError(t, err)
	assert.EqualValues(t, 99, stats.OpenTickets)
}
