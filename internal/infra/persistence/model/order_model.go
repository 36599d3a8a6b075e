package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. UserID is a weak reference and is
// cleared, never cascaded, when the profile goes away.
type OrderModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber       int64           `gorm:"autoIncrement;uniqueIndex;not null"`
	UserID            *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerEmail     string          `gorm:"type:varchar(255);not null;index"`
	CustomerName      string          `gorm:"type:varchar(150)"`
	FinalAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentStatus     string          `gorm:"type:varchar(20);not null;default:unpaid;index"`
	FulfillmentStatus string          `gorm:"type:varchar(20);not null;default:pending;index"`
	CouponCode        string          `gorm:"type:varchar(50)"`
	CreatedAt         time.Time       `gorm:"index"`
	UpdatedAt         time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Notes []OrderNoteModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(200);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null;default:1"`
	LineTotal decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderNoteModel mirrors the append-only 'order_notes' table.
type OrderNoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderNoteModel) TableName() string {
	return "order_notes"
}
