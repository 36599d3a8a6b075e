package impl

import (
	"context"
	"log/slog"

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

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Gate          usecase.RoleGate
	Orders        repository.OrderRepository
	Profiles      repository.ProfileRepository
	Subscriptions repository.SubscriptionRepository
	Routes        service.RouteCache
	Cache         service.Cache
	Audit         *AuditRecorder
	Logger        *slog.Logger
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	gate          usecase.RoleGate
	orders        repository.OrderRepository
	profiles      repository.ProfileRepository
	subscriptions repository.SubscriptionRepository
	routes        service.RouteCache
	cache         service.Cache
	audit         *AuditRecorder
	logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		gate:          params.Gate,
		orders:        params.Orders,
		profiles:      params.Profiles,
		subscriptions: params.Subscriptions,
		routes:        params.Routes,
		cache:         params.Cache,
		audit:         params.Audit,
		logger:        params.Logger,
	}
}

// ListOrders returns a page of orders with their customers. Owners are
// loaded in one bulk lookup after the page.
func (srv *orderService) ListOrders(ctx context.Context, input usecase.OrderListInput) (*usecase.OrderPage, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}
	if input.PaymentStatus != "" && !input.PaymentStatus.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment status")
	}
	if input.FulfillmentStatus != "" && !input.FulfillmentStatus.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown fulfillment status")
	}

	orders, total, err := srv.orders.ListOrders(ctx, repository.OrderFilter{
		PaymentStatus:     input.PaymentStatus,
		FulfillmentStatus: input.FulfillmentStatus,
		Search:            input.Search,
		Page:              input.ToRepository(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	owners := make([]*uuid.UUID, len(orders))
	for i, o := range orders {
		owners[i] = o.UserID
	}
	byID, err := profilesByID(ctx, srv.profiles, ownerIDs(owners...))
	if err != nil {
		return nil, err
	}

	views := make([]usecase.OrderView, len(orders))
	for i, o := range orders {
		views[i] = usecase.OrderView{
			Order:    o,
			Customer: customerRef(o.UserID, lookupProfile(byID, o.UserID), o.CustomerName, o.CustomerEmail),
		}
	}

	return &usecase.OrderPage{
		Orders:   views,
		PageMeta: usecase.NewPageMeta(input.PageInput, total),
	}, nil
}

// GetOrder loads the order, then its customer and subscription concurrently.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*usecase.OrderDetail, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}

	order, err := srv.orders.FindOrderByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrOrderNotFound, "order")
	}

	var (
		profile      *entity.Profile
		subscription *entity.Subscription
	)
	g, gctx := errgroup.WithContext(ctx)
	if order.UserID != nil {
		g.Go(func() error {
			found, err := srv.profiles.FindProfileByID(gctx, *order.UserID)
			if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(err, "failed to load order customer")
			}
			profile = found

			return nil
		})
	}
	g.Go(func() error {
		found, err := srv.subscriptions.FindSubscriptionByOrderID(gctx, order.ID)
		if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
			return errors.Wrap(err, "failed to load order subscription")
		}
		subscription = found

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &usecase.OrderDetail{
		Order:        order,
		Customer:     customerRef(order.UserID, profile, order.CustomerName, order.CustomerEmail),
		Subscription: subscription,
	}, nil
}

func (srv *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, input usecase.OrderStatusInput) (*entity.Order, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}
	if input.PaymentStatus == nil && input.FulfillmentStatus == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("nothing to update")
	}
	if input.PaymentStatus != nil && !input.PaymentStatus.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment status")
	}
	if input.FulfillmentStatus != nil && !input.FulfillmentStatus.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown fulfillment status")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Updating order status", slog.String("order_id", id.String()))

	if err := srv.orders.UpdateOrderStatus(ctx, id, repository.OrderStatusUpdate{
		PaymentStatus:     input.PaymentStatus,
		FulfillmentStatus: input.FulfillmentStatus,
	}); err != nil {
		return nil, notFound(err, repository.ErrOrderNotFound, "order")
	}

	order, err := srv.orders.FindOrderByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrOrderNotFound, "order")
	}

	srv.afterOrderChange(ctx, logger, order)

	return order, nil
}

func (srv *orderService) AddOrderNote(ctx context.Context, id uuid.UUID, input usecase.OrderNoteInput) (*entity.OrderNote, error) {
	principal, err := srv.gate.AssertAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if input.Body == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("note body is required")
	}

	order, err := srv.orders.FindOrderByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrOrderNotFound, "order")
	}

	note := &entity.OrderNote{
		OrderID:  order.ID,
		AuthorID: principal.UserID,
		Body:     input.Body,
	}
	if err := srv.orders.AddOrderNote(ctx, note); err != nil {
		return nil, errors.Wrap(err, "failed to add order note")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	invalidateRoutes(ctx, srv.routes, logger, orderPath(order.ID))

	return note, nil
}

// DeleteOrder removes an order for good. Super admin only.
func (srv *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.gate.AssertSuperAdmin(ctx); err != nil {
		return err
	}

	order, err := srv.orders.FindOrderByID(ctx, id)
	if err != nil {
		return notFound(err, repository.ErrOrderNotFound, "order")
	}
	if err := srv.orders.DeleteOrder(ctx, id); err != nil {
		return notFound(err, repository.ErrOrderNotFound, "order")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Order deleted", slog.String("order_id", id.String()), slog.Int64("order_number", order.OrderNumber))

	srv.audit.Record(ctx, entity.AuditDeleteOrder, order.CustomerEmail, map[string]any{
		"order_id":     order.ID.String(),
		"order_number": order.OrderNumber,
		"amount":       order.FinalAmount.String(),
	})
	srv.afterOrderChange(ctx, logger, order)

	return nil
}

// afterOrderChange drops every view derived from the order.
func (srv *orderService) afterOrderChange(ctx context.Context, logger *slog.Logger, order *entity.Order) {
	paths := []string{pathAdminOrders, orderPath(order.ID), pathAdminDashboard}
	if order.UserID != nil {
		paths = append(paths, pathAccountOrders)
	}
	invalidateRoutes(ctx, srv.routes, logger, paths...)

	if err := srv.cache.Delete(ctx, dashboardCacheKeys()...); err != nil {
		logger.Warn("Failed to drop cached dashboards", slog.Any("error", err))
	}
}

func dashboardCacheKeys() []string {
	return []string{
		dashboardCacheKey(analytics.Daily),
		dashboardCacheKey(analytics.Monthly),
		dashboardCacheKey(analytics.Yearly),
	}
}

func dashboardCacheKey(g analytics.Granularity) string {
	return "dashboard:" + string(g)
}
