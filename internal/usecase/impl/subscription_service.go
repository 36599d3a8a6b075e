package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxConnections = 1

// SubscriptionServiceParams holds dependencies for subscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	Gate          usecase.RoleGate
	Subscriptions repository.SubscriptionRepository
	Orders        repository.OrderRepository
	Profiles      repository.ProfileRepository
	Mailer        service.Mailer
	Routes        service.RouteCache
	Logger        *slog.Logger
}

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	gate          usecase.RoleGate
	subscriptions repository.SubscriptionRepository
	orders        repository.OrderRepository
	profiles      repository.ProfileRepository
	mailer        service.Mailer
	routes        service.RouteCache
	logger        *slog.Logger
	now           func() time.Time
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		gate:          params.Gate,
		subscriptions: params.Subscriptions,
		orders:        params.Orders,
		profiles:      params.Profiles,
		mailer:        params.Mailer,
		routes:        params.Routes,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *subscriptionService) ListSubscriptions(ctx context.Context, input usecase.SubscriptionListInput) (*usecase.SubscriptionPage, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown subscription status")
	}

	subs, total, err := srv.subscriptions.ListSubscriptions(ctx, repository.SubscriptionFilter{
		Status: input.Status,
		Search: input.Search,
		Page:   input.ToRepository(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	owners := make([]*uuid.UUID, len(subs))
	for i, s := range subs {
		owners[i] = s.UserID
	}
	byID, err := profilesByID(ctx, srv.profiles, ownerIDs(owners...))
	if err != nil {
		return nil, err
	}

	views := make([]usecase.SubscriptionView, len(subs))
	for i, s := range subs {
		views[i] = usecase.SubscriptionView{
			Subscription: s,
			Customer:     customerRef(s.UserID, lookupProfile(byID, s.UserID), "", ""),
		}
	}

	return &usecase.SubscriptionPage{
		Subscriptions: views,
		PageMeta:      usecase.NewPageMeta(input.PageInput, total),
	}, nil
}

func (srv *subscriptionService) GetSubscriptionByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Subscription, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}

	sub, err := srv.subscriptions.FindSubscriptionByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find subscription by order")
	}

	return sub, nil
}

// CreateSubscription provisions the line of an order. An order holds at most one line.
func (srv *subscriptionService) CreateSubscription(ctx context.Context, input usecase.CreateSubscriptionInput) (*entity.Subscription, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}
	if input.DurationMonths < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("duration must be at least one month")
	}

	order, err := srv.orders.FindOrderByID(ctx, input.OrderID)
	if err != nil {
		return nil, notFound(err, repository.ErrOrderNotFound, "order")
	}

	existing, err := srv.subscriptions.FindSubscriptionByOrderID(ctx, order.ID)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, errors.Wrap(err, "failed to check existing subscription")
	}
	if existing != nil {
		return nil, errors.Wrap(domainerrors.ErrConflict, "order already has a subscription")
	}

	maxConnections := input.MaxConnections
	if maxConnections <= 0 {
		maxConnections = defaultMaxConnections
	}

	sub := &entity.Subscription{
		OrderID:          &order.ID,
		UserID:           order.UserID,
		PlanName:         input.PlanName,
		Status:           entity.SubscriptionActive,
		MaxConnections:   maxConnections,
		CurrentPeriodEnd: srv.now().AddDate(0, input.DurationMonths, 0),
	}
	applyCredentials(sub, input.SubscriptionCredentials)

	if err := srv.subscriptions.CreateSubscription(ctx, sub); err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Subscription provisioned",
		slog.String("subscription_id", sub.ID.String()),
		slog.String("order_id", order.ID.String()),
	)
	invalidateRoutes(ctx, srv.routes, logger, pathAdminSubscriptions, orderPath(order.ID), pathAccountSubs)

	return sub, nil
}

func (srv *subscriptionService) UpdateSubscription(ctx context.Context, id uuid.UUID, input usecase.SubscriptionUpdateInput) (*entity.Subscription, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown subscription status")
	}

	sub, err := srv.subscriptions.FindSubscriptionByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrSubscriptionNotFound, "subscription")
	}

	if input.Credentials != nil {
		applyCredentials(sub, *input.Credentials)
	}
	if input.Status != nil {
		sub.Status = *input.Status
	}
	if input.MaxConnections != nil {
		sub.MaxConnections = *input.MaxConnections
	}
	if input.CurrentPeriodEnd != nil {
		sub.CurrentPeriodEnd = *input.CurrentPeriodEnd
	}

	if err := srv.subscriptions.UpdateSubscription(ctx, sub); err != nil {
		return nil, notFound(err, repository.ErrSubscriptionNotFound, "subscription")
	}

	srv.afterChange(ctx, sub)

	return sub, nil
}

// ExtendSubscription adds months from the later of now and the current period end.
// An expired line becomes active again.
func (srv *subscriptionService) ExtendSubscription(ctx context.Context, id uuid.UUID, input usecase.ExtendSubscriptionInput) (*entity.Subscription, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}
	if input.Months < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("months must be at least one")
	}

	sub, err := srv.subscriptions.FindSubscriptionByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrSubscriptionNotFound, "subscription")
	}

	sub.CurrentPeriodEnd = extendPeriod(sub.CurrentPeriodEnd, srv.now(), input.Months)
	if sub.Status == entity.SubscriptionExpired {
		sub.Status = entity.SubscriptionActive
	}

	if err := srv.subscriptions.UpdateSubscription(ctx, sub); err != nil {
		return nil, notFound(err, repository.ErrSubscriptionNotFound, "subscription")
	}

	srv.afterChange(ctx, sub)

	return sub, nil
}

// SendCredentials emails the line details to the customer of its order,
// falling back to the owner's profile.
func (srv *subscriptionService) SendCredentials(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return err
	}

	sub, err := srv.subscriptions.FindSubscriptionByID(ctx, id)
	if err != nil {
		return notFound(err, repository.ErrSubscriptionNotFound, "subscription")
	}

	recipient, err := srv.credentialsRecipient(ctx, sub)
	if err != nil {
		return err
	}

	msg := service.MailMessage{
		To:      recipient.Email,
		ToName:  recipient.Name,
		Subject: "Your IPTV access details",
		HTML:    renderCredentialsEmail(recipient.Name, sub),
	}
	if err := srv.mailer.Send(ctx, msg); err != nil {
		return mailFailure(err, "failed to send credentials")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Credentials sent", slog.String("subscription_id", sub.ID.String()))

	return nil
}

func (srv *subscriptionService) credentialsRecipient(ctx context.Context, sub *entity.Subscription) (entity.Recipient, error) {
	if sub.OrderID != nil {
		order, err := srv.orders.FindOrderByID(ctx, *sub.OrderID)
		if err != nil && !errors.Is(err, repository.ErrOrderNotFound) {
			return entity.Recipient{}, errors.Wrap(err, "failed to find subscription order")
		}
		if order != nil && order.CustomerEmail != "" {
			return entity.Recipient{Email: order.CustomerEmail, Name: order.CustomerName}, nil
		}
	}

	if sub.UserID != nil {
		profile, err := srv.profiles.FindProfileByID(ctx, *sub.UserID)
		if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
			return entity.Recipient{}, errors.Wrap(err, "failed to find subscription owner")
		}
		if profile != nil {
			return entity.Recipient{Email: profile.Email, Name: profile.DisplayName()}, nil
		}
	}

	return entity.Recipient{}, domainerrors.ErrValidationFailed.WrapMessage("subscription has no recipient")
}

func (srv *subscriptionService) afterChange(ctx context.Context, sub *entity.Subscription) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	paths := []string{pathAdminSubscriptions, pathAccountSubs}
	if sub.OrderID != nil {
		paths = append(paths, orderPath(*sub.OrderID))
	}
	invalidateRoutes(ctx, srv.routes, logger, paths...)
}

func applyCredentials(sub *entity.Subscription, creds usecase.SubscriptionCredentials) {
	sub.Username = creds.Username
	sub.Password = creds.Password
	sub.PortalURL = creds.PortalURL
	sub.PlaylistURL = creds.PlaylistURL
	sub.ActivationCode = creds.ActivationCode
	sub.AlternativeURLs = creds.AlternativeURLs
}

func extendPeriod(periodEnd, now time.Time, months int) time.Time {
	base := periodEnd
	if now.After(base) {
		base = now
	}

	return base.AddDate(0, months, 0)
}

func renderCredentialsEmail(name string, sub *entity.Subscription) string {
	if name == "" {
		name = entity.GuestName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hello %s,</p>", html.EscapeString(name))
	fmt.Fprintf(&b, "<p>Your <strong>%s</strong> line is ready.</p><ul>", html.EscapeString(sub.PlanName))
	writeCredentialRow(&b, "Username", sub.Username)
	writeCredentialRow(&b, "Password", sub.Password)
	writeCredentialRow(&b, "Portal URL", sub.PortalURL)
	writeCredentialRow(&b, "Playlist URL", sub.PlaylistURL)
	writeCredentialRow(&b, "Activation code", sub.ActivationCode)
	for _, alt := range sub.AlternativeURLs {
		writeCredentialRow(&b, "Alternative URL", alt)
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p>Valid until %s.</p>", sub.CurrentPeriodEnd.Format("2006-01-02"))

	return b.String()
}

func writeCredentialRow(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "<li>%s: %s</li>", label, html.EscapeString(value))
}
