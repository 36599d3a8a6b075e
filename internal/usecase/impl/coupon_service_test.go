package impl

import (
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCouponTestService(t *testing.T, coupons *mockRepo.MockCouponRepository, now time.Time) *couponService {
	srv := NewCouponService(CouponServiceParams{
		Gate:    newTestGate(mockRepo.NewMockProfileRepository(t)),
		Coupons: coupons,
		Routes:  mockService.NewMockRouteCache(t),
		Logger:  newDiscardLogger(),
	}).(*couponService)
	srv.now = func() time.Time { return now }

	return srv
}

func TestCouponService_ValidateCoupon(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	one := 1

	tests := []struct {
		name      string
		coupon    *entity.Coupon
		findErr   error
		amount    string
		discount  string
		final     string
		wantError error
	}{
		{
			name:     "percent",
			coupon:   &entity.Coupon{Code: "SAVE10", DiscountType: entity.DiscountPercent, Value: decimal.NewFromInt(10), Status: entity.CouponActive},
			amount:   "49.99",
			discount: "5",
			final:    "44.99",
		},
		{
			name:     "fixed capped at amount",
			coupon:   &entity.Coupon{Code: "TENOFF", DiscountType: entity.DiscountFixed, Value: decimal.NewFromInt(10), Status: entity.CouponActive},
			amount:   "7.50",
			discount: "7.5",
			final:    "0",
		},
		{
			name:      "expired",
			coupon:    &entity.Coupon{Code: "OLD", DiscountType: entity.DiscountFixed, Value: decimal.NewFromInt(1), Status: entity.CouponActive, ExpiresAt: &past},
			amount:    "10",
			wantError: domainerrors.ErrCouponNotRedeemable,
		},
		{
			name:      "used up",
			coupon:    &entity.Coupon{Code: "ONCE", DiscountType: entity.DiscountFixed, Value: decimal.NewFromInt(1), Status: entity.CouponActive, MaxUses: &one, UsedCount: 1},
			amount:    "10",
			wantError: domainerrors.ErrCouponNotRedeemable,
		},
		{
			name:      "inactive",
			coupon:    &entity.Coupon{Code: "OFF", DiscountType: entity.DiscountFixed, Value: decimal.NewFromInt(1), Status: entity.CouponInactive},
			amount:    "10",
			wantError: domainerrors.ErrCouponNotRedeemable,
		},
		{
			name:      "unknown code",
			findErr:   repository.ErrCouponNotFound,
			amount:    "10",
			wantError: domainerrors.ErrCouponNotRedeemable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coupons := mockRepo.NewMockCouponRepository(t)
			coupons.EXPECT().FindCouponByCode(mock.Anything, "code").Return(tt.coupon, tt.findErr)
			srv := newCouponTestService(t, coupons, now)

			quote, err := srv.ValidateCoupon(t.Context(), usecase.ValidateCouponInput{
				Code:   "code",
				Amount: decimal.RequireFromString(tt.amount),
			})
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)

				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.discount).Equal(quote.Discount), quote.Discount.String())
			assert.True(t, decimal.RequireFromString(tt.final).Equal(quote.FinalAmount), quote.FinalAmount.String())
		})
	}
}

func TestCouponService_ValidateCoupon_NegativeAmount(t *testing.T) {
	srv := newCouponTestService(t, mockRepo.NewMockCouponRepository(t), time.Now())

	_, err := srv.ValidateCoupon(t.Context(), usecase.ValidateCouponInput{Code: "X", Amount: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestValidateDiscount(t *testing.T) {
	assert.NoError(t, validateDiscount(entity.DiscountPercent, decimal.NewFromInt(100)))
	assert.Error(t, validateDiscount(entity.DiscountPercent, decimal.NewFromInt(101)))
	assert.Error(t, validateDiscount(entity.DiscountPercent, decimal.Zero))
	assert.NoError(t, validateDiscount(entity.DiscountFixed, decimal.RequireFromString("0.01")))
	assert.Error(t, validateDiscount(entity.DiscountFixed, decimal.NewFromInt(-5)))
	assert.Error(t, validateDiscount("bogus", decimal.NewFromInt(5)))
}
