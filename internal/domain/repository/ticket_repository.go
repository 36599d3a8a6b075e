package repository

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/errors"

	"github.com/google/uuid"
)

// ErrTicketNotFound is returned when a ticket is not found.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketFilter narrows a ticket listing.
type TicketFilter struct {
	Status   entity.TicketStatus
	Priority entity.TicketPriority
	UserID   *uuid.UUID
	Page
}

// TicketStateUpdate carries the fields to change. Nil fields are left untouched.
type TicketStateUpdate struct {
	Status   *entity.TicketStatus
	Priority *entity.TicketPriority
}

// TicketCounts summarises the support queue.
type TicketCounts struct {
	Open   int64 `json:"open"`
	Urgent int64 `json:"urgent"`
}

// TicketRepository defines the interface for ticket-related database operations.
type TicketRepository interface {
	// ListTickets returns one page of tickets, most recently updated first, and the exact total.
	ListTickets(ctx context.Context, filter TicketFilter) ([]*entity.Ticket, int64, error)

	// FindTicketByID retrieves a ticket with its full thread, internal messages included.
	FindTicketByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)

	// CreateTicket persists a ticket and its opening messages.
	CreateTicket(ctx context.Context, ticket *entity.Ticket) error

	// AddTicketMessage appends a message and touches the ticket's updated_at.
	AddTicketMessage(ctx context.Context, message *entity.TicketMessage) error

	// UpdateTicketState changes status and/or priority.
	UpdateTicketState(ctx context.Context, id uuid.UUID, update TicketStateUpdate) error

	// CountOpenTickets counts open tickets and, among them, urgent ones.
	CountOpenTickets(ctx context.Context) (TicketCounts, error)

	// UnlinkTicketsFromUser clears user_id on every ticket of userID.
	UnlinkTicketsFromUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
