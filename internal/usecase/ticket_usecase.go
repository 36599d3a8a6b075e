package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// TicketUsecase defines the support desk and the customer side of tickets.
type TicketUsecase interface {
	// Support desk
	ListTickets(ctx context.Context, input TicketListInput) (*TicketPage, error)
	GetTicket(ctx context.Context, id uuid.UUID) (*TicketDetail, error)
	ReplyTicket(ctx context.Context, id uuid.UUID, input TicketReplyInput) (*entity.TicketMessage, error)
	UpdateTicket(ctx context.Context, id uuid.UUID, input TicketUpdateInput) (*entity.Ticket, error)

	// Customer area, scoped to the caller by row-level security
	OpenTicket(ctx context.Context, input OpenTicketInput) (*entity.Ticket, error)
	ListMyTickets(ctx context.Context, input PageInput) (*TicketPage, error)
	GetMyTicket(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	ReplyMyTicket(ctx context.Context, id uuid.UUID, input TicketReplyInput) (*entity.TicketMessage, error)
}

// --- Input DTOs ---

// TicketListInput filters the support queue.
type TicketListInput struct {
	PageInput
	Status   entity.TicketStatus   `query:"status"`
	Priority entity.TicketPriority `query:"priority"`
}

// TicketReplyInput is a message on a thread. Internal is ignored on the customer side.
type TicketReplyInput struct {
	Body     string `json:"body" validate:"required,max=5000"`
	Internal bool   `json:"internal"`
}

// TicketUpdateInput changes status and/or priority.
type TicketUpdateInput struct {
	Status   *entity.TicketStatus   `json:"status,omitempty"`
	Priority *entity.TicketPriority `json:"priority,omitempty"`
}

// OpenTicketInput opens a case with its first message.
type OpenTicketInput struct {
	Subject  string                `json:"subject" validate:"required,max=200"`
	Body     string                `json:"body" validate:"required,max=5000"`
	Priority entity.TicketPriority `json:"priority"`
}

// --- Output DTOs ---

// TicketView is a ticket row with its customer.
type TicketView struct {
	*entity.Ticket
	Customer CustomerRef `json:"customer"`
}

// TicketPage is one page of tickets.
type TicketPage struct {
	Tickets []TicketView `json:"tickets"`
	PageMeta
}

// TicketDetail is the staff view of a ticket, internal notes included.
type TicketDetail struct {
	Ticket   *entity.Ticket `json:"ticket"`
	Customer CustomerRef    `json:"customer"`
}
