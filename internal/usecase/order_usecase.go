package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the back-office order operations.
type OrderUsecase interface {
	ListOrders(ctx context.Context, input OrderListInput) (*OrderPage, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderDetail, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, input OrderStatusInput) (*entity.Order, error)
	AddOrderNote(ctx context.Context, id uuid.UUID, input OrderNoteInput) (*entity.OrderNote, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// OrderListInput filters the order list.
type OrderListInput struct {
	PageInput
	PaymentStatus     entity.PaymentStatus     `query:"payment_status"`
	FulfillmentStatus entity.FulfillmentStatus `query:"fulfillment_status"`
	Search            string                   `query:"search" validate:"max=100"`
}

// OrderStatusInput changes either status. At least one must be set.
type OrderStatusInput struct {
	PaymentStatus     *entity.PaymentStatus     `json:"payment_status,omitempty"`
	FulfillmentStatus *entity.FulfillmentStatus `json:"fulfillment_status,omitempty"`
}

// OrderNoteInput is a staff note.
type OrderNoteInput struct {
	Body string `json:"body" validate:"required,max=2000"`
}

// --- Output DTOs ---

// CustomerRef is how an order or ticket owner is displayed. Records whose
// owner is gone show the placeholder values.
type CustomerRef struct {
	UserID *uuid.UUID `json:"user_id,omitempty"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
}

// OrderView is an order row with its customer.
type OrderView struct {
	*entity.Order
	Customer CustomerRef `json:"customer"`
}

// OrderPage is one page of orders with the exact total.
type OrderPage struct {
	Orders []OrderView `json:"orders"`
	PageMeta
}

// OrderDetail is an order with its customer and linked subscription.
type OrderDetail struct {
	Order        *entity.Order        `json:"order"`
	Customer     CustomerRef          `json:"customer"`
	Subscription *entity.Subscription `json:"subscription,omitempty"`
}
