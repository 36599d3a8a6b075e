package model

import (
	"time"

	"github.com/google/uuid"
)

// TicketModel mirrors the 'tickets' table.
type TicketModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Subject   string     `gorm:"type:varchar(255);not null"`
	Status    string     `gorm:"type:varchar(20);not null;default:open;index"`
	Priority  string     `gorm:"type:varchar(20);not null;default:normal"`
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index"`

	Messages []TicketMessageModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TicketModel) TableName() string {
	return "tickets"
}

// TicketMessageModel mirrors the 'ticket_messages' table.
type TicketMessageModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TicketID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	AuthorID   *uuid.UUID `gorm:"type:uuid"`
	Body       string     `gorm:"type:text;not null"`
	IsInternal bool       `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (TicketMessageModel) TableName() string {
	return "ticket_messages"
}
