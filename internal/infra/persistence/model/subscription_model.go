package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SubscriptionModel mirrors the 'subscriptions' table holding IPTV credentials.
type SubscriptionModel struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID          *uuid.UUID                  `gorm:"type:uuid;index"`
	UserID           *uuid.UUID                  `gorm:"type:uuid;index"`
	PlanName         string                      `gorm:"type:varchar(150);not null"`
	Username         string                      `gorm:"type:varchar(150)"`
	Password         string                      `gorm:"type:varchar(150)"`
	PortalURL        string                      `gorm:"type:text"`
	PlaylistURL      string                      `gorm:"type:text"`
	ActivationCode   string                      `gorm:"type:varchar(100)"`
	AlternativeURLs  datatypes.JSONSlice[string] `gorm:"column:alternative_urls;type:jsonb;not null;default:'[]'"`
	Status           string                      `gorm:"type:varchar(20);not null;default:pending;index"`
	MaxConnections   int                         `gorm:"not null;default:1"`
	CurrentPeriodEnd time.Time                   `gorm:"index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
