package analytics

import (
	"slices"
	"time"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dashboard data sources. A failed source is reported by name.
const (
	SourceOrders        = "orders"
	SourceCustomers     = "customers"
	SourceSubscriptions = "subscriptions"
	SourceTickets       = "tickets"
)

// DashboardInput is everything the dashboard fold reads. Sources that failed
// to load are listed in FailedSources and left at their zero value.
type DashboardInput struct {
	Now             time.Time
	Granularity     Granularity
	TrendWindowDays int

	// Orders created since OrdersSince(Now, Granularity, TrendWindowDays).
	Orders []*entity.Order
	// Customers created since the same instant.
	NewCustomers        []*entity.Profile
	CustomerCount       int64
	ActiveSubscriptions int64
	OpenTickets         int64
	UrgentTickets       int64

	FailedSources []string
}

// DashboardStats is the admin overview.
type DashboardStats struct {
	Granularity Granularity `json:"granularity"`
	GeneratedAt time.Time   `json:"generated_at"`

	Revenue      decimal.Decimal `json:"revenue"`
	RevenueTrend Window          `json:"revenue_trend"`
	OrderCount   int             `json:"order_count"`
	PaidOrders   int             `json:"paid_orders"`
	OrdersTrend  Window          `json:"orders_trend"`

	CustomerCount  int64  `json:"customer_count"`
	NewCustomers   int64  `json:"new_customers"`
	CustomersTrend Window `json:"customers_trend"`

	ActiveSubscriptions int64 `json:"active_subscriptions"`
	OpenTickets         int64 `json:"open_tickets"`
	UrgentTickets       int64 `json:"urgent_tickets"`

	Sales []Bucket `json:"sales"`

	Degraded      bool     `json:"degraded"`
	FailedSources []string `json:"failed_sources,omitempty"`
}

// OrdersSince is the earliest creation time the dashboard needs: the start of
// the series or of the previous trend window, whichever comes first.
func OrdersSince(now time.Time, g Granularity, trendWindowDays int) time.Time {
	seriesStart := g.Start(now)
	trendStart := now.AddDate(0, 0, -2*trendWindowDays)
	if trendStart.Before(seriesStart) {
		return trendStart
	}

	return seriesStart
}

func orderAt(o *entity.Order) time.Time { return o.CreatedAt }

func orderAmount(o *entity.Order) decimal.Decimal { return o.FinalAmount }

func profileAt(p *entity.Profile) time.Time { return p.CreatedAt }

func one[T any](T) decimal.Decimal { return decimal.NewFromInt(1) }

func isPaid(o *entity.Order) bool { return o.IsPaid() }

func withinSeries(g Granularity, now time.Time) func(*entity.Order) bool {
	start := g.Start(now)

	return func(o *entity.Order) bool {
		return !o.CreatedAt.Before(start) && !o.CreatedAt.After(now)
	}
}

// BuildDashboard folds the input into DashboardStats.
func BuildDashboard(in DashboardInput) DashboardStats {
	g := ParseGranularity(string(in.Granularity))
	days := in.TrendWindowDays
	if days <= 0 {
		days = 30
	}

	inSeries := withinSeries(g, in.Now)
	paidInSeries := func(o *entity.Order) bool { return isPaid(o) && inSeries(o) }
	paid := filter(in.Orders, isPaid)

	customersTrend := WindowTotals(in.NewCustomers, profileAt, one[*entity.Profile], in.Now, days)

	failed := slices.Clone(in.FailedSources)
	slices.Sort(failed)
	failed = slices.Compact(failed)

	return DashboardStats{
		Granularity: g,
		GeneratedAt: in.Now,

		Revenue:      Sum(in.Orders, paidInSeries, orderAmount),
		RevenueTrend: WindowTotals(paid, orderAt, orderAmount, in.Now, days),
		OrderCount:   Count(in.Orders, inSeries),
		PaidOrders:   Count(in.Orders, paidInSeries),
		OrdersTrend:  WindowTotals(in.Orders, orderAt, one[*entity.Order], in.Now, days),

		CustomerCount:  in.CustomerCount,
		NewCustomers:   customersTrend.Current.IntPart(),
		CustomersTrend: customersTrend,

		ActiveSubscriptions: in.ActiveSubscriptions,
		OpenTickets:         in.OpenTickets,
		UrgentTickets:       in.UrgentTickets,

		Sales: Series(paid, orderAt, orderAmount, g, in.Now),

		Degraded:      len(failed) > 0,
		FailedSources: failed,
	}
}

func filter[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}

	return out
}

// CustomerTotal is the purchase summary of one customer.
type CustomerTotal struct {
	OrderCount int             `json:"order_count"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// CustomerTotals groups orders by owner. Every order counts, only paid ones add to TotalSpent.
// Orders without an owner are skipped.
func CustomerTotals(orders []*entity.Order) map[uuid.UUID]CustomerTotal {
	totals := make(map[uuid.UUID]CustomerTotal)
	for _, o := range orders {
		if o.UserID == nil {
			continue
		}
		t := totals[*o.UserID]
		t.OrderCount++
		if o.IsPaid() {
			t.TotalSpent = t.TotalSpent.Add(o.FinalAmount)
		}
		totals[*o.UserID] = t
	}

	return totals
}
