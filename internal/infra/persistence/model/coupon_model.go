package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponModel mirrors the 'coupons' table. Code is stored upper-cased.
type CouponModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code         string          `gorm:"type:varchar(50);uniqueIndex;not null"`
	DiscountType string          `gorm:"type:varchar(10);not null"`
	Value        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status       string          `gorm:"type:varchar(10);not null;default:active"`
	MaxUses      *int
	UsedCount    int `gorm:"not null;default:0"`
	ExpiresAt    *time.Time
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
