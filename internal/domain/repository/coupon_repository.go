package repository

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for coupon persistence.
var (
	// ErrCouponNotFound is returned when a coupon is not found.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrDuplicateCoupon is returned when the coupon code is already taken.
	ErrDuplicateCoupon = errors.New("coupon code already exists")
)

// CouponRepository defines the interface for coupon-related database operations.
type CouponRepository interface {
	// ListCoupons returns every coupon, newest first.
	ListCoupons(ctx context.Context) ([]*entity.Coupon, error)

	// FindCouponByCode retrieves a coupon by its normalised code.
	FindCouponByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// CreateCoupon persists a new coupon.
	CreateCoupon(ctx context.Context, coupon *entity.Coupon) error

	// UpdateCouponStatus toggles a coupon.
	UpdateCouponStatus(ctx context.Context, id uuid.UUID, status entity.CouponStatus) error

	// DeleteCoupon removes a coupon.
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
}
