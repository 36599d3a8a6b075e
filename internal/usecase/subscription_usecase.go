package usecase

import (
	"context"
	"time"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionUsecase defines the back-office operations on IPTV lines.
type SubscriptionUsecase interface {
	ListSubscriptions(ctx context.Context, input SubscriptionListInput) (*SubscriptionPage, error)
	// GetSubscriptionByOrder returns nil without error when the order has no line.
	GetSubscriptionByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Subscription, error)
	CreateSubscription(ctx context.Context, input CreateSubscriptionInput) (*entity.Subscription, error)
	UpdateSubscription(ctx context.Context, id uuid.UUID, input SubscriptionUpdateInput) (*entity.Subscription, error)
	ExtendSubscription(ctx context.Context, id uuid.UUID, input ExtendSubscriptionInput) (*entity.Subscription, error)
	SendCredentials(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// SubscriptionListInput filters the subscription list.
type SubscriptionListInput struct {
	PageInput
	Status entity.SubscriptionStatus `query:"status"`
	Search string                    `query:"search" validate:"max=100"`
}

// SubscriptionCredentials are the IPTV line access details.
type SubscriptionCredentials struct {
	Username        string   `json:"username" validate:"max=150"`
	Password        string   `json:"password" validate:"max=150"`
	PortalURL       string   `json:"portal_url" validate:"omitempty,url"`
	PlaylistURL     string   `json:"playlist_url" validate:"omitempty,url"`
	ActivationCode  string   `json:"activation_code" validate:"max=100"`
	AlternativeURLs []string `json:"alternative_urls" validate:"omitempty,dive,url"`
}

// CreateSubscriptionInput provisions a line for an order.
type CreateSubscriptionInput struct {
	OrderID        uuid.UUID `json:"order_id" validate:"required"`
	PlanName       string    `json:"plan_name" validate:"required,max=150"`
	DurationMonths int       `json:"duration_months" validate:"required,min=1,max=60"`
	MaxConnections int       `json:"max_connections" validate:"omitempty,min=1,max=10"`
	SubscriptionCredentials
}

// SubscriptionUpdateInput changes the non-nil fields of a line.
type SubscriptionUpdateInput struct {
	Credentials      *SubscriptionCredentials   `json:"credentials,omitempty"`
	Status           *entity.SubscriptionStatus `json:"status,omitempty"`
	MaxConnections   *int                       `json:"max_connections,omitempty" validate:"omitempty,min=1,max=10"`
	CurrentPeriodEnd *time.Time                 `json:"current_period_end,omitempty"`
}

// ExtendSubscriptionInput prolongs a line.
type ExtendSubscriptionInput struct {
	Months int `json:"months" validate:"required,min=1,max=60"`
}

// --- Output DTOs ---

// SubscriptionView is a line with its owner.
type SubscriptionView struct {
	*entity.Subscription
	Customer CustomerRef `json:"customer"`
}

// SubscriptionPage is one page of lines.
type SubscriptionPage struct {
	Subscriptions []SubscriptionView `json:"subscriptions"`
	PageMeta
}
