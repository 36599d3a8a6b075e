package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentRefunded PaymentStatus = "refunded"
)

// IsValid checks if the PaymentStatus is a known value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPaid, PaymentUnpaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

// FulfillmentStatus is the delivery state of an order.
type FulfillmentStatus string

const (
	FulfillmentPending   FulfillmentStatus = "pending"
	FulfillmentActive    FulfillmentStatus = "active"
	FulfillmentShipped   FulfillmentStatus = "shipped"
	FulfillmentCancelled FulfillmentStatus = "cancelled"
)

// IsValid checks if the FulfillmentStatus is a known value.
func (s FulfillmentStatus) IsValid() bool {
	switch s {
	case FulfillmentPending, FulfillmentActive, FulfillmentShipped, FulfillmentCancelled:
		return true
	default:
		return false
	}
}

// Order is a transactional record. UserID is nil for guest checkouts and for
// orders whose profile has been deleted.
type Order struct {
	ID                uuid.UUID         `json:"id"`
	OrderNumber       int64             `json:"order_number"`
	UserID            *uuid.UUID        `json:"user_id,omitempty"`
	CustomerEmail     string            `json:"customer_email"`
	CustomerName      string            `json:"customer_name"`
	FinalAmount       decimal.Decimal   `json:"final_amount"`
	PaymentStatus     PaymentStatus     `json:"payment_status"`
	FulfillmentStatus FulfillmentStatus `json:"fulfillment_status"`
	CouponCode        string            `json:"coupon_code,omitempty"`
	Items             []OrderItem       `json:"items,omitempty"`
	Notes             []OrderNote       `json:"notes,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// IsPaid reports whether the order counts towards revenue.
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentPaid
}

// OrderItem is a line of an order.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderNote is an append-only staff note on an order.
type OrderNote struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
