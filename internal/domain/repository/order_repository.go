package repository

import (
	"context"
	"time"

	"portal/internal/domain/entity"
	"portal/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows an order listing.
type OrderFilter struct {
	PaymentStatus     entity.PaymentStatus
	FulfillmentStatus entity.FulfillmentStatus
	// Search matches the customer email or name, or the order number when numeric.
	Search string
	Page
}

// OrderStatusUpdate carries the statuses to change. Nil fields are left untouched.
type OrderStatusUpdate struct {
	PaymentStatus     *entity.PaymentStatus
	FulfillmentStatus *entity.FulfillmentStatus
}

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// ListOrders returns one page of orders, newest first, and the exact total.
	ListOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)

	// FindOrderByID retrieves an order with its items and notes.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByUserIDs retrieves the orders of many customers.
	FindOrdersByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Order, error)

	// ListOrdersCreatedSince retrieves orders created at or after since.
	ListOrdersCreatedSince(ctx context.Context, since time.Time) ([]*entity.Order, error)

	// UpdateOrderStatus changes payment and/or fulfillment status.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, update OrderStatusUpdate) error

	// AddOrderNote appends a note to an order.
	AddOrderNote(ctx context.Context, note *entity.OrderNote) error

	// DeleteOrder removes an order with its items and notes.
	DeleteOrder(ctx context.Context, id uuid.UUID) error

	// UnlinkOrdersFromUser clears user_id on every order of userID and returns the number of rows touched.
	UnlinkOrdersFromUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
