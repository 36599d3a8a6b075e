package impl

import (
	"context"
	"log/slog"

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

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Gate      usecase.RoleGate
	TxManager repository.TransactionManager
	QRCode    service.QRCodeService
	Routes    service.RouteCache
	Logger    *slog.Logger
}

// accountService implements the AccountUsecase interface.
type accountService struct {
	gate      usecase.RoleGate
	txManager repository.TransactionManager
	qrcode    service.QRCodeService
	routes    service.RouteCache
	logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		gate:      params.Gate,
		txManager: params.TxManager,
		qrcode:    params.QRCode,
		routes:    params.Routes,
		logger:    params.Logger,
	}
}

func (srv *accountService) GetMyProfile(ctx context.Context) (*entity.Profile, error) {
	principal, err := srv.gate.AssertAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	var profile *entity.Profile
	err = srv.txManager.ExecuteAs(ctx, principal.UserID, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProfileRepository().FindProfileByID(ctx, principal.UserID)
		if err != nil {
			return notFound(err, repository.ErrProfileNotFound, "profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (srv *accountService) UpdateMyProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	principal, err := srv.gate.AssertAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	var profile *entity.Profile
	err = srv.txManager.ExecuteAs(ctx, principal.UserID, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		if err := profileRepo.UpdateProfileName(ctx, principal.UserID, normalizeFullName(input.FullName)); err != nil {
			return notFound(err, repository.ErrProfileNotFound, "profile")
		}
		found, err := profileRepo.FindProfileByID(ctx, principal.UserID)
		if err != nil {
			return notFound(err, repository.ErrProfileNotFound, "profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	invalidateRoutes(ctx, srv.routes, logger, pathAccount, customerPath(principal.UserID))

	return profile, nil
}

func (srv *accountService) ListMyOrders(ctx context.Context) ([]*entity.Order, error) {
	principal, err := srv.gate.AssertAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	var orders []*entity.Order
	err = srv.txManager.ExecuteAs(ctx, principal.UserID, func(repoFactory repository.RepositoryFactory) error {
		var err error
		orders, err = repoFactory.NewOrderRepository().FindOrdersByUserIDs(ctx, []uuid.UUID{principal.UserID})

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own orders")
	}

	return orders, nil
}

func (srv *accountService) ListMySubscriptions(ctx context.Context) ([]*entity.Subscription, error) {
	principal, err := srv.gate.AssertAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	var subs []*entity.Subscription
	err = srv.txManager.ExecuteAs(ctx, principal.UserID, func(repoFactory repository.RepositoryFactory) error {
		var err error
		subs, err = repoFactory.NewSubscriptionRepository().FindSubscriptionsByUserID(ctx, principal.UserID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own subscriptions")
	}

	return subs, nil
}

// GetPlaylistQR encodes the playlist URL of one of the caller's lines.
func (srv *accountService) GetPlaylistQR(ctx context.Context, subscriptionID uuid.UUID) ([]byte, error) {
	principal, err := srv.gate.AssertAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	var sub *entity.Subscription
	err = srv.txManager.ExecuteAs(ctx, principal.UserID, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewSubscriptionRepository().FindSubscriptionByID(ctx, subscriptionID)
		if err != nil {
			return notFound(err, repository.ErrSubscriptionNotFound, "subscription")
		}
		sub = found

		return nil
	})
	if err != nil {
		return nil, err
	}
	if sub.UserID == nil || *sub.UserID != principal.UserID {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "subscription not found")
	}
	if sub.PlaylistURL == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("subscription has no playlist URL yet")
	}

	png, err := srv.qrcode.GeneratePlaylistQR(sub.PlaylistURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate playlist QR code")
	}

	return png, nil
}
