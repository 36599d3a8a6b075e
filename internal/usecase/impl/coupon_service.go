package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var hundred = decimal.NewFromInt(100)

// CouponServiceParams holds dependencies for couponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	Gate    usecase.RoleGate
	Coupons repository.CouponRepository
	Routes  service.RouteCache
	Logger  *slog.Logger
}

// couponService implements the CouponUsecase interface.
type couponService struct {
	gate    usecase.RoleGate
	coupons repository.CouponRepository
	routes  service.RouteCache
	logger  *slog.Logger
	now     func() time.Time
}

// NewCouponService is the constructor for couponService.
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		gate:    params.Gate,
		coupons: params.Coupons,
		routes:  params.Routes,
		logger:  params.Logger,
		now:     time.Now,
	}
}

func (srv *couponService) ListCoupons(ctx context.Context) ([]*entity.Coupon, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}

	coupons, err := srv.coupons.ListCoupons(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return coupons, nil
}

func (srv *couponService) CreateCoupon(ctx context.Context, input usecase.CreateCouponInput) (*entity.Coupon, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}
	if err := validateDiscount(input.DiscountType, input.Value); err != nil {
		return nil, err
	}
	code := entity.NormalizeCouponCode(input.Code)
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("coupon code is required")
	}

	coupon := &entity.Coupon{
		Code:         code,
		DiscountType: input.DiscountType,
		Value:        input.Value,
		Status:       entity.CouponActive,
		MaxUses:      input.MaxUses,
		ExpiresAt:    input.ExpiresAt,
	}
	if err := srv.coupons.CreateCoupon(ctx, coupon); err != nil {
		if errors.Is(err, repository.ErrDuplicateCoupon) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "coupon code already exists")
		}

		return nil, errors.Wrap(err, "failed to create coupon")
	}

	srv.afterChange(ctx)

	return coupon, nil
}

func (srv *couponService) UpdateCouponStatus(ctx context.Context, id uuid.UUID, input usecase.CouponStatusInput) error {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return err
	}
	if input.Status != entity.CouponActive && input.Status != entity.CouponInactive {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown coupon status")
	}

	if err := srv.coupons.UpdateCouponStatus(ctx, id, input.Status); err != nil {
		return notFound(err, repository.ErrCouponNotFound, "coupon")
	}

	srv.afterChange(ctx)

	return nil
}

func (srv *couponService) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return err
	}

	if err := srv.coupons.DeleteCoupon(ctx, id); err != nil {
		return notFound(err, repository.ErrCouponNotFound, "coupon")
	}

	srv.afterChange(ctx)

	return nil
}

// ValidateCoupon quotes a code at checkout. It needs no session and never
// tells an unknown code from an unusable one.
func (srv *couponService) ValidateCoupon(ctx context.Context, input usecase.ValidateCouponInput) (*usecase.CouponQuote, error) {
	if input.Amount.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("amount must not be negative")
	}

	coupon, err := srv.coupons.FindCouponByCode(ctx, input.Code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrCouponNotRedeemable
		}

		return nil, errors.Wrap(err, "failed to find coupon")
	}
	if !coupon.Redeemable(srv.now()) {
		return nil, domainerrors.ErrCouponNotRedeemable
	}

	discount := coupon.Discount(input.Amount)

	return &usecase.CouponQuote{
		Code:         coupon.Code,
		DiscountType: coupon.DiscountType,
		Discount:     discount,
		FinalAmount:  input.Amount.Sub(discount),
	}, nil
}

func (srv *couponService) afterChange(ctx context.Context) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	invalidateRoutes(ctx, srv.routes, logger, pathAdminCoupons)
}

func validateDiscount(kind entity.DiscountType, value decimal.Decimal) error {
	switch kind {
	case entity.DiscountPercent:
		if !value.IsPositive() || value.GreaterThan(hundred) {
			return domainerrors.ErrValidationFailed.WrapMessage("percent discount must be in (0, 100]")
		}
	case entity.DiscountFixed:
		if !value.IsPositive() {
			return domainerrors.ErrValidationFailed.WrapMessage("fixed discount must be positive")
		}
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("unknown discount type")
	}

	return nil
}
