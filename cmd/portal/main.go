package main

import (
	"context"
	"log/slog"
	"os"

	"portal/config"
	"portal/internal/delivery"
	"portal/internal/delivery/http"
	"portal/internal/delivery/http/middleware"
	"portal/internal/delivery/http/router/handler"
	"portal/internal/domain/service"
	"portal/internal/infra/assets"
	"portal/internal/infra/auth"
	"portal/internal/infra/cache"
	"portal/internal/infra/cms"
	logs "portal/internal/infra/log"
	"portal/internal/infra/mail"
	"portal/internal/infra/metrics"
	"portal/internal/infra/persistence/postgres"
	"portal/internal/infra/pubsub"
	"portal/internal/infra/qrcode"
	"portal/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			drainAuditOnStop,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
		metrics.New,
		metrics.NewRecorder,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewOrderRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewTicketRepository,
			postgres.NewReviewRepository,
			postgres.NewCouponRepository,
			postgres.NewCampaignRepository,
			postgres.NewAdminLogRepository,
			postgres.NewTeamInviteRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewSessionVerifier,
			cache.NewCacheFromConfig,
			cache.NewRouteCacheFromConfig,
			cms.NewClient,
			assets.New,
			mail.NewMailer,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRoleGate,
			impl.NewAuditRecorder,
			impl.NewAccountService,
			impl.NewOrderService,
			impl.NewSubscriptionService,
			impl.NewCustomerService,
			impl.NewTicketService,
			impl.NewContentService,
			impl.NewReviewService,
			impl.NewCouponService,
			impl.NewCampaignService,
			impl.NewTeamService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewContentHandler,
			handler.NewReviewHandler,
			handler.NewCouponHandler,
			handler.NewAccountHandler,
			handler.NewTicketHandler,
			handler.NewOrderHandler,
			handler.NewSubscriptionHandler,
			handler.NewCustomerHandler,
			handler.NewCampaignHandler,
			handler.NewTeamHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// drainAuditOnStop waits for in-flight admin log writes before the database closes.
// Hooks stop in reverse order, so this runs ahead of the postgres OnStop.
func drainAuditOnStop(lc fx.Lifecycle, audit *impl.AuditRecorder) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			audit.Wait()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
