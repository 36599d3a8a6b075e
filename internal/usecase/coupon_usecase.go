package usecase

import (
	"context"
	"time"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponUsecase defines discount code management and checkout validation.
type CouponUsecase interface {
	ListCoupons(ctx context.Context) ([]*entity.Coupon, error)
	CreateCoupon(ctx context.Context, input CreateCouponInput) (*entity.Coupon, error)
	UpdateCouponStatus(ctx context.Context, id uuid.UUID, input CouponStatusInput) error
	DeleteCoupon(ctx context.Context, id uuid.UUID) error

	// ValidateCoupon is public. Unknown and unusable codes fail the same way.
	ValidateCoupon(ctx context.Context, input ValidateCouponInput) (*CouponQuote, error)
}

// CreateCouponInput is a new discount code.
type CreateCouponInput struct {
	Code         string              `json:"code" validate:"required,min=3,max=40"`
	DiscountType entity.DiscountType `json:"discount_type" validate:"required,oneof=percent fixed"`
	Value        decimal.Decimal     `json:"value"`
	MaxUses      *int                `json:"max_uses,omitempty" validate:"omitempty,min=1"`
	ExpiresAt    *time.Time          `json:"expires_at,omitempty"`
}

// CouponStatusInput toggles a coupon.
type CouponStatusInput struct {
	Status entity.CouponStatus `json:"status" validate:"required,oneof=active inactive"`
}

// ValidateCouponInput is a code applied to a cart amount.
type ValidateCouponInput struct {
	Code   string          `json:"code" validate:"required,max=40"`
	Amount decimal.Decimal `json:"amount"`
}

// CouponQuote is the effect of a coupon on an amount.
type CouponQuote struct {
	Code         string              `json:"code"`
	DiscountType entity.DiscountType `json:"discount_type"`
	Discount     decimal.Decimal     `json:"discount"`
	FinalAmount  decimal.Decimal     `json:"final_amount"`
}
