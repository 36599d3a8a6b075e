package analytics

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(at time.Time, amount int64, status entity.PaymentStatus, owner *uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		UserID:        owner,
		FinalAmount:   decimal.NewFromInt(amount),
		PaymentStatus: status,
		CreatedAt:     at,
	}
}

func dashboardFixture(now time.Time) DashboardInput {
	return DashboardInput{
		Now:             now,
		Granularity:     Monthly,
		TrendWindowDays: 30,
		Orders: []*entity.Order{
			newOrder(now.AddDate(0, 0, -2), 10, entity.PaymentPaid, nil),
			newOrder(now.AddDate(0, 0, -3), 25, entity.PaymentPaid, nil),
			newOrder(now.AddDate(0, 0, -4), 5, entity.PaymentUnpaid, nil),
			newOrder(now.AddDate(0, 0, -40), 20, entity.PaymentPaid, nil),
		},
		NewCustomers: []*entity.Profile{
			{ID: uuid.New(), CreatedAt: now.AddDate(0, 0, -1)},
		},
		CustomerCount:       12,
		ActiveSubscriptions: 4,
		OpenTickets:         3,
		UrgentTickets:       1,
	}
}

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2026, 6, 20, 10, 0, 0, 0, time.UTC)

	stats := BuildDashboard(dashboardFixture(now))

	assert.Equal(t, Monthly, stats.Granularity)
	assert.Equal(t, "55", stats.Revenue.String())
	assert.Equal(t, "35", stats.RevenueTrend.Current.String())
	assert.Equal(t, "20", stats.RevenueTrend.Previous.String())
	assert.Equal(t, "+75.0%", stats.RevenueTrend.Trend)
	assert.Equal(t, 4, stats.OrderCount)
	assert.Equal(t, 3, stats.PaidOrders)
	assert.Equal(t, int64(1), stats.NewCustomers)
	assert.Equal(t, int64(12), stats.CustomerCount)
	assert.Len(t, stats.Sales, 12)
	assert.False(t, stats.Degraded)
	assert.Empty(t, stats.FailedSources)
}

func TestBuildDashboard_DegradedKeepsOtherSources(t *testing.T) {
	now := time.Date(2026, 6, 20, 10, 0, 0, 0, time.UTC)
	in := dashboardFixture(now)
	in.NewCustomers = nil
	in.CustomerCount = 0
	in.FailedSources = []string{SourceCustomers}

	stats := BuildDashboard(in)

	assert.True(t, stats.Degraded)
	assert.Equal(t, []string{SourceCustomers}, stats.FailedSources)
	assert.Equal(t, "55", stats.Revenue.String(), "orders still aggregate")
	assert.Equal(t, int64(4), stats.ActiveSubscriptions, "subscriptions still aggregate")
	assert.Equal(t, "0%", stats.CustomersTrend.Trend)
}

func TestBuildDashboard_Idempotent(t *testing.T) {
	now := time.Date(2026, 6, 20, 10, 0, 0, 0, time.UTC)
	in := dashboardFixture(now)
	in.FailedSources = []string{SourceTickets, SourceOrders}

	first := BuildDashboard(in)
	second := BuildDashboard(in)

	assert.True(t, reflect.DeepEqual(first, second))

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
	assert.Equal(t, []string{SourceTickets, SourceOrders}, in.FailedSources, "input is not mutated")
}

func TestOrdersSince(t *testing.T) {
	now := time.Date(2026, 6, 20, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, now.AddDate(0, 0, -60), OrdersSince(now, Daily, 30))
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), OrdersSince(now, Monthly, 30))
}

func TestCustomerTotals(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	now := time.Now()
	orders := []*entity.Order{
		newOrder(now, 10, entity.PaymentPaid, &alice),
		newOrder(now, 15, entity.PaymentRefunded, &alice),
		newOrder(now, 30, entity.PaymentPaid, &bob),
		newOrder(now, 99, entity.PaymentPaid, nil),
	}

	totals := CustomerTotals(orders)

	require.Len(t, totals, 2)
	assert.Equal(t, 2, totals[alice].OrderCount)
	assert.Equal(t, "10", totals[alice].TotalSpent.String())
	assert.Equal(t, "30", totals[bob].TotalSpent.String())
}
