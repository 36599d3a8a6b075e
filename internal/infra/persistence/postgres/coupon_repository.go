package postgres

import (
	"context"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// ListCoupons returns every coupon, newest first.
func (repo *couponRepository) ListCoupons(ctx context.Context) ([]*entity.Coupon, error) {
	var couponModels []*model.CouponModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&couponModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(couponModels))
	for _, couponM := range couponModels {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons, nil
}

// FindCouponByCode retrieves a coupon by its normalised code.
func (repo *couponRepository) FindCouponByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", entity.NormalizeCouponCode(code)).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// CreateCoupon persists a new coupon.
func (repo *couponRepository) CreateCoupon(ctx context.Context, coupon *entity.Coupon) error {
	couponM := &model.CouponModel{
		ID:           coupon.ID,
		Code:         entity.NormalizeCouponCode(coupon.Code),
		DiscountType: string(coupon.DiscountType),
		Value:        coupon.Value,
		Status:       string(coupon.Status),
		MaxUses:      coupon.MaxUses,
		UsedCount:    coupon.UsedCount,
		ExpiresAt:    coupon.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCoupon
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID
	coupon.Code = couponM.Code
	coupon.CreatedAt = couponM.CreatedAt

	return nil
}

// UpdateCouponStatus toggles a coupon.
func (repo *couponRepository) UpdateCouponStatus(ctx context.Context, id uuid.UUID, status entity.CouponStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update coupon status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// DeleteCoupon removes a coupon.
func (repo *couponRepository) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CouponModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete coupon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	return &entity.Coupon{
		ID:           data.ID,
		Code:         data.Code,
		DiscountType: entity.DiscountType(data.DiscountType),
		Value:        data.Value,
		Status:       entity.CouponStatus(data.Status),
		MaxUses:      data.MaxUses,
		UsedCount:    data.UsedCount,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
	}
}
