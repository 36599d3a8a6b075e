package postgres

import (
	"context"
	"strings"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// ListSubscriptions returns one page of subscriptions and the exact total.
func (repo *subscriptionRepository) ListSubscriptions(ctx context.Context, filter repository.SubscriptionFilter) ([]*entity.Subscription, int64, error) {
	base := replica(repo.db.WithContext(ctx)).Model(&model.SubscriptionModel{})
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if strings.TrimSpace(filter.Search) != "" {
		pattern := likePattern(filter.Search)
		base = base.Where("username ILIKE ? OR plan_name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count subscriptions")
	}

	var subscriptionModels []*model.SubscriptionModel
	if err := paginate(base.Session(&gorm.Session{}), filter.Page).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list subscriptions")
	}

	return toSubscriptionDomains(subscriptionModels), total, nil
}

// FindSubscriptionByID retrieves a subscription by its unique ID.
func (repo *subscriptionRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindSubscriptionByOrderID retrieves the subscription provisioned for an order.
func (repo *subscriptionRepository) FindSubscriptionByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by order")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindSubscriptionsByUserID retrieves every subscription of a customer.
func (repo *subscriptionRepository) FindSubscriptionsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("current_period_end DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by user")
	}

	return toSubscriptionDomains(subscriptionModels), nil
}

// CountActiveSubscriptions counts active lines whose period ends after now.
func (repo *subscriptionRepository) CountActiveSubscriptions(ctx context.Context, now time.Time) (int64, error) {
	var total int64

	if err := replica(repo.db.WithContext(ctx)).
		Model(&model.SubscriptionModel{}).
		Where("status = ? AND current_period_end > ?", entity.SubscriptionActive, now).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active subscriptions")
	}

	return total, nil
}

// CreateSubscription persists a new subscription.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subscription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	// Update the entity with generated values
	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// UpdateSubscription overwrites the mutable fields of a subscription.
func (repo *subscriptionRepository) UpdateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", subscription.ID).
		Select("plan_name", "username", "password", "portal_url", "playlist_url", "activation_code",
			"alternative_urls", "status", "max_connections", "current_period_end", "updated_at").
		Updates(subscriptionM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subscription")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// UnlinkSubscriptionsFromUser clears user_id on every subscription of userID.
func (repo *subscriptionRepository) UnlinkSubscriptionsFromUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("user_id = ?", userID).
		Update("user_id", nil)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to unlink subscriptions from user")
	}

	return result.RowsAffected, nil
}

func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	alternativeURLs := []string(data.AlternativeURLs)
	if alternativeURLs == nil {
		alternativeURLs = []string{}
	}

	return &entity.Subscription{
		ID:               data.ID,
		OrderID:          data.OrderID,
		UserID:           data.UserID,
		PlanName:         data.PlanName,
		Username:         data.Username,
		Password:         data.Password,
		PortalURL:        data.PortalURL,
		PlaylistURL:      data.PlaylistURL,
		ActivationCode:   data.ActivationCode,
		AlternativeURLs:  alternativeURLs,
		Status:           entity.SubscriptionStatus(data.Status),
		MaxConnections:   data.MaxConnections,
		CurrentPeriodEnd: data.CurrentPeriodEnd,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toSubscriptionDomains(models []*model.SubscriptionModel) []*entity.Subscription {
	subscriptions := make([]*entity.Subscription, 0, len(models))
	for _, subscriptionM := range models {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions
}

func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	alternativeURLs := data.AlternativeURLs
	if alternativeURLs == nil {
		alternativeURLs = []string{}
	}

	return &model.SubscriptionModel{
		ID:               data.ID,
		OrderID:          data.OrderID,
		UserID:           data.UserID,
		PlanName:         data.PlanName,
		Username:         data.Username,
		Password:         data.Password,
		PortalURL:        data.PortalURL,
		PlaylistURL:      data.PlaylistURL,
		ActivationCode:   data.ActivationCode,
		AlternativeURLs:  datatypes.JSONSlice[string](alternativeURLs),
		Status:           string(data.Status),
		MaxConnections:   data.MaxConnections,
		CurrentPeriodEnd: data.CurrentPeriodEnd,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
