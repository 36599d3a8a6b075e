package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"portal/config"
	"portal/internal/analytics"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"go.uber.org/fx"
)

// DashboardServiceParams holds dependencies for dashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	Config        *config.Config
	Gate          usecase.RoleGate
	Orders        repository.OrderRepository
	Profiles      repository.ProfileRepository
	Subscriptions repository.SubscriptionRepository
	Tickets       repository.TicketRepository
	Cache         service.Cache
	Metrics       service.MetricsRecorder
	Logger        *slog.Logger
}

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	gate            usecase.RoleGate
	orders          repository.OrderRepository
	profiles        repository.ProfileRepository
	subscriptions   repository.SubscriptionRepository
	tickets         repository.TicketRepository
	cache           service.Cache
	metrics         service.MetricsRecorder
	logger          *slog.Logger
	trendWindowDays int
	cacheTTL        time.Duration
	now             func() time.Time
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	srv := &dashboardService{
		gate:          params.Gate,
		orders:        params.Orders,
		profiles:      params.Profiles,
		subscriptions: params.Subscriptions,
		tickets:       params.Tickets,
		cache:         params.Cache,
		metrics:       params.Metrics,
		logger:        params.Logger,
		now:           time.Now,
	}
	if params.Config.Analytics != nil {
		srv.trendWindowDays = params.Config.Analytics.TrendWindowDays
	}
	if params.Config.Redis != nil {
		srv.cacheTTL = params.Config.Redis.DashboardTTL
	}

	return srv
}

// GetDashboard fetches every source concurrently. A failed source is logged,
// counted and left empty; the stats are then marked degraded and not cached.
func (srv *dashboardService) GetDashboard(ctx context.Context, granularity string) (*analytics.DashboardStats, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	g := analytics.ParseGranularity(granularity)
	key := dashboardCacheKey(g)

	var stats analytics.DashboardStats
	found, err := srv.cache.GetJSON(ctx, key, &stats)
	if err != nil {
		logger.Warn("Dashboard cache read failed", slog.Any("error", err))
	}
	if found {
		return &stats, nil
	}

	stats = analytics.BuildDashboard(srv.collect(ctx, logger, g))

	if !stats.Degraded {
		if err := srv.cache.SetJSON(ctx, key, stats, srv.cacheTTL); err != nil {
			logger.Warn("Dashboard cache write failed", slog.Any("error", err))
		}
	}

	return &stats, nil
}

// collect is a best-effort fan-out: sources never cancel each other.
func (srv *dashboardService) collect(ctx context.Context, logger *slog.Logger, g analytics.Granularity) analytics.DashboardInput {
	now := srv.now()
	since := analytics.OrdersSince(now, g, srv.trendWindowDays)
	in := analytics.DashboardInput{
		Now:             now,
		Granularity:     g,
		TrendWindowDays: srv.trendWindowDays,
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	fail := func(source string, err error) {
		srv.metrics.AggregationSourceFailed(source)
		logger.Error("Dashboard source failed", slog.String("source", source), slog.Any("error", err))

		mu.Lock()
		in.FailedSources = append(in.FailedSources, source)
		mu.Unlock()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		orders, err := srv.orders.ListOrdersCreatedSince(ctx, since)
		if err != nil {
			fail(analytics.SourceOrders, err)

			return
		}
		in.Orders = orders
	}()
	go func() {
		defer wg.Done()
		count, err := srv.profiles.CountProfiles(ctx, usecase.CustomerRoles)
		if err != nil {
			fail(analytics.SourceCustomers, err)

			return
		}
		recent, err := srv.profiles.ListProfilesCreatedSince(ctx, usecase.CustomerRoles, since)
		if err != nil {
			fail(analytics.SourceCustomers, err)

			return
		}
		in.CustomerCount = count
		in.NewCustomers = recent
	}()
	go func() {
		defer wg.Done()
		active, err := srv.subscriptions.CountActiveSubscriptions(ctx, now)
		if err != nil {
			fail(analytics.SourceSubscriptions, err)

			return
		}
		in.ActiveSubscriptions = active
	}()
	go func() {
		defer wg.Done()
		counts, err := srv.tickets.CountOpenTickets(ctx)
		if err != nil {
			fail(analytics.SourceTickets, err)

			return
		}
		in.OpenTickets = counts.Open
		in.UrgentTickets = counts.Urgent
	}()
	wg.Wait()

	return in
}
