package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus is the provisioning state of an IPTV line.
type SubscriptionStatus string

const (
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionSuspended SubscriptionStatus = "suspended"
)

// IsValid checks if the SubscriptionStatus is a known value.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionPending, SubscriptionActive, SubscriptionExpired, SubscriptionSuspended:
		return true
	default:
		return false
	}
}

// Subscription holds the IPTV credentials provisioned for an order.
type Subscription struct {
	ID               uuid.UUID          `json:"id"`
	OrderID          *uuid.UUID         `json:"order_id,omitempty"`
	UserID           *uuid.UUID         `json:"user_id,omitempty"`
	PlanName         string             `json:"plan_name"`
	Username         string             `json:"username"`
	Password         string             `json:"password"`
	PortalURL        string             `json:"portal_url"`
	PlaylistURL      string             `json:"playlist_url"`
	ActivationCode   string             `json:"activation_code"`
	AlternativeURLs  []string           `json:"alternative_urls"`
	Status           SubscriptionStatus `json:"status"`
	MaxConnections   int                `json:"max_connections"`
	CurrentPeriodEnd time.Time          `json:"current_period_end"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// IsActiveAt reports whether the line is usable at t.
func (s *Subscription) IsActiveAt(t time.Time) bool {
	return s.Status == SubscriptionActive && s.CurrentPeriodEnd.After(t)
}
