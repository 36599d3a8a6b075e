package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus is the lifecycle state of a support case.
type TicketStatus string

const (
	TicketOpen   TicketStatus = "open"
	TicketClosed TicketStatus = "closed"
)

// IsValid checks if the TicketStatus is a known value.
func (s TicketStatus) IsValid() bool {
	return s == TicketOpen || s == TicketClosed
}

// TicketPriority is the urgency of a support case.
type TicketPriority string

const (
	PriorityNormal TicketPriority = "normal"
	PriorityUrgent TicketPriority = "urgent"
)

// IsValid checks if the TicketPriority is a known value.
func (p TicketPriority) IsValid() bool {
	return p == PriorityNormal || p == PriorityUrgent
}

// Ticket is a support case raised by a customer.
type Ticket struct {
	ID        uuid.UUID       `json:"id"`
	UserID    *uuid.UUID      `json:"user_id,omitempty"`
	Subject   string          `json:"subject"`
	Status    TicketStatus    `json:"status"`
	Priority  TicketPriority  `json:"priority"`
	Messages  []TicketMessage `json:"messages,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TicketMessage is one entry of a ticket thread. Internal messages are staff-only.
type TicketMessage struct {
	ID         uuid.UUID  `json:"id"`
	TicketID   uuid.UUID  `json:"ticket_id"`
	AuthorID   *uuid.UUID `json:"author_id,omitempty"`
	Body       string     `json:"body"`
	IsInternal bool       `json:"is_internal"`
	CreatedAt  time.Time  `json:"created_at"`
}

// PublicMessages returns the thread without internal staff notes.
func (t *Ticket) PublicMessages() []TicketMessage {
	out := make([]TicketMessage, 0, len(t.Messages))
	for _, msg := range t.Messages {
		if !msg.IsInternal {
			out = append(out, msg)
		}
	}

	return out
}
