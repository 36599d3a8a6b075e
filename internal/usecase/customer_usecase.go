package usecase

import (
	"context"

	"portal/internal/analytics"
	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerUsecase defines the back-office operations on customer profiles.
type CustomerUsecase interface {
	ListCustomers(ctx context.Context, input CustomerListInput) (*CustomerPage, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerDetail, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*entity.Profile, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) (*DeleteCustomerResult, error)
}

// CustomerRoles are the roles listed as customers.
var CustomerRoles = entity.Roles{entity.RoleUser, entity.RoleMember}

// CustomerListInput filters the customer list.
type CustomerListInput struct {
	PageInput
	Search string `query:"search" validate:"max=100"`
}

// UpdateProfileInput changes a display name. Nil or blank clears it.
type UpdateProfileInput struct {
	FullName *string `json:"full_name" validate:"omitempty,max=150"`
}

// CustomerSummary is a customer row with purchase totals.
type CustomerSummary struct {
	*entity.Profile
	analytics.CustomerTotal
}

// CustomerPage is one page of customers.
type CustomerPage struct {
	Customers []CustomerSummary `json:"customers"`
	PageMeta
}

// CustomerDetail is a customer with everything linked to them.
type CustomerDetail struct {
	Profile       *entity.Profile         `json:"profile"`
	Totals        analytics.CustomerTotal `json:"totals"`
	Orders        []*entity.Order         `json:"orders"`
	Subscriptions []*entity.Subscription  `json:"subscriptions"`
	Tickets       []*entity.Ticket        `json:"tickets"`
}

// DeleteCustomerResult reports how many records lost their owner.
type DeleteCustomerResult struct {
	OrdersUnlinked        int64 `json:"orders_unlinked"`
	SubscriptionsUnlinked int64 `json:"subscriptions_unlinked"`
	TicketsUnlinked       int64 `json:"tickets_unlinked"`
	ReviewsUnlinked       int64 `json:"reviews_unlinked"`
}
