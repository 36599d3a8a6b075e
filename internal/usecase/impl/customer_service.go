package impl

import (
	"context"
	"log/slog"
	"strings"

	"portal/internal/analytics"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// CustomerServiceParams holds dependencies for customerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	Gate          usecase.RoleGate
	TxManager     repository.TransactionManager
	Profiles      repository.ProfileRepository
	Orders        repository.OrderRepository
	Subscriptions repository.SubscriptionRepository
	Tickets       repository.TicketRepository
	Routes        service.RouteCache
	Audit         *AuditRecorder
	Logger        *slog.Logger
}

// customerService implements the CustomerUsecase interface.
type customerService struct {
	gate          usecase.RoleGate
	txManager     repository.TransactionManager
	profiles      repository.ProfileRepository
	orders        repository.OrderRepository
	subscriptions repository.SubscriptionRepository
	tickets       repository.TicketRepository
	routes        service.RouteCache
	audit         *AuditRecorder
	logger        *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		gate:          params.Gate,
		txManager:     params.TxManager,
		profiles:      params.Profiles,
		orders:        params.Orders,
		subscriptions: params.Subscriptions,
		tickets:       params.Tickets,
		routes:        params.Routes,
		audit:         params.Audit,
		logger:        params.Logger,
	}
}

// ListCustomers returns a page of customer profiles with their purchase totals.
func (srv *customerService) ListCustomers(ctx context.Context, input usecase.CustomerListInput) (*usecase.CustomerPage, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}

	profiles, total, err := srv.profiles.ListProfiles(ctx, repository.ProfileFilter{
		Roles:  usecase.CustomerRoles,
		Search: input.Search,
		Page:   input.ToRepository(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	totals := map[uuid.UUID]analytics.CustomerTotal{}
	if len(profiles) > 0 {
		ids := make([]uuid.UUID, len(profiles))
		for i, p := range profiles {
			ids[i] = p.ID
		}
		orders, err := srv.orders.FindOrdersByUserIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load customer orders")
		}
		totals = analytics.CustomerTotals(orders)
	}

	customers := make([]usecase.CustomerSummary, len(profiles))
	for i, p := range profiles {
		customers[i] = usecase.CustomerSummary{
			Profile:       p,
			CustomerTotal: totals[p.ID],
		}
	}

	return &usecase.CustomerPage{
		Customers: customers,
		PageMeta:  usecase.NewPageMeta(input.PageInput, total),
	}, nil
}

// GetCustomer loads the profile, then its orders, subscriptions and tickets concurrently.
func (srv *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*usecase.CustomerDetail, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}

	profile, err := srv.profiles.FindProfileByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrProfileNotFound, "customer")
	}

	detail := &usecase.CustomerDetail{Profile: profile}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orders, err := srv.orders.FindOrdersByUserIDs(gctx, []uuid.UUID{id})
		if err != nil {
			return errors.Wrap(err, "failed to load customer orders")
		}
		detail.Orders = orders

		return nil
	})
	g.Go(func() error {
		subs, err := srv.subscriptions.FindSubscriptionsByUserID(gctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load customer subscriptions")
		}
		detail.Subscriptions = subs

		return nil
	})
	g.Go(func() error {
		tickets, _, err := srv.tickets.ListTickets(gctx, repository.TicketFilter{UserID: &id})
		if err != nil {
			return errors.Wrap(err, "failed to load customer tickets")
		}
		detail.Tickets = tickets

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail.Totals = analytics.CustomerTotals(detail.Orders)[id]

	return detail, nil
}

func (srv *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}

	if err := srv.profiles.UpdateProfileName(ctx, id, normalizeFullName(input.FullName)); err != nil {
		return nil, notFound(err, repository.ErrProfileNotFound, "customer")
	}

	profile, err := srv.profiles.FindProfileByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrProfileNotFound, "customer")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	invalidateRoutes(ctx, srv.routes, logger, pathAdminCustomers, customerPath(id), pathAccount)

	return profile, nil
}

// DeleteCustomer removes a customer profile. Orders, subscriptions, tickets and
// reviews lose their owner but are kept; all of it happens in one transaction.
func (srv *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID) (*usecase.DeleteCustomerResult, error) {
	if _, err := srv.gate.AssertSuperAdmin(ctx); err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Deleting customer", slog.String("customer_id", id.String()))

	var (
		result  usecase.DeleteCustomerResult
		deleted *entity.Profile
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		profile, err := profileRepo.FindProfileByID(ctx, id)
		if err != nil {
			return notFound(err, repository.ErrProfileNotFound, "customer")
		}
		if profile.Role.IsStaff() {
			return errors.Wrap(domainerrors.ErrConflict, "team members must be removed from the team first")
		}

		if result.OrdersUnlinked, err = repoFactory.NewOrderRepository().UnlinkOrdersFromUser(ctx, id); err != nil {
			return errors.Wrap(err, "failed to unlink orders")
		}
		if result.SubscriptionsUnlinked, err = repoFactory.NewSubscriptionRepository().UnlinkSubscriptionsFromUser(ctx, id); err != nil {
			return errors.Wrap(err, "failed to unlink subscriptions")
		}
		if result.TicketsUnlinked, err = repoFactory.NewTicketRepository().UnlinkTicketsFromUser(ctx, id); err != nil {
			return errors.Wrap(err, "failed to unlink tickets")
		}
		if result.ReviewsUnlinked, err = repoFactory.NewReviewRepository().UnlinkReviewsFromUser(ctx, id); err != nil {
			return errors.Wrap(err, "failed to unlink reviews")
		}

		if err := profileRepo.DeleteProfile(ctx, id); err != nil {
			return notFound(err, repository.ErrProfileNotFound, "customer")
		}
		deleted = profile

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.audit.Record(ctx, entity.AuditDeleteCustomer, deleted.Email, map[string]any{
		"customer_id":            id.String(),
		"orders_unlinked":        result.OrdersUnlinked,
		"subscriptions_unlinked": result.SubscriptionsUnlinked,
		"tickets_unlinked":       result.TicketsUnlinked,
		"reviews_unlinked":       result.ReviewsUnlinked,
	})
	invalidateRoutes(ctx, srv.routes, logger, pathAdminCustomers, customerPath(id), pathAdminOrders, pathAdminSubscriptions)

	return &result, nil
}

// normalizeFullName trims the name; blank clears it.
func normalizeFullName(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
