package repository

import (
	"context"
	"time"

	"portal/internal/domain/entity"
	"portal/internal/errors"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a subscription is not found.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionFilter narrows a subscription listing.
type SubscriptionFilter struct {
	Status entity.SubscriptionStatus
	// Search matches the IPTV username or plan name.
	Search string
	Page
}

// SubscriptionRepository defines the interface for subscription-related database operations.
type SubscriptionRepository interface {
	// ListSubscriptions returns one page of subscriptions and the exact total.
	ListSubscriptions(ctx context.Context, filter SubscriptionFilter) ([]*entity.Subscription, int64, error)

	// FindSubscriptionByID retrieves a subscription by its ID.
	FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindSubscriptionByOrderID retrieves the subscription provisioned for an order.
	FindSubscriptionByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Subscription, error)

	// FindSubscriptionsByUserID retrieves every subscription of a customer.
	FindSubscriptionsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)

	// CountActiveSubscriptions counts active lines whose period ends after now.
	CountActiveSubscriptions(ctx context.Context, now time.Time) (int64, error)

	// CreateSubscription persists a new subscription.
	CreateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// UpdateSubscription overwrites the mutable fields of a subscription.
	UpdateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// UnlinkSubscriptionsFromUser clears user_id on every subscription of userID.
	UnlinkSubscriptionsFromUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
