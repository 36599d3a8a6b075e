package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdminLogModel mirrors the write-once 'admin_logs' table.
type AdminLogModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AdminID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	Action      string            `gorm:"type:varchar(50);not null"`
	TargetEmail string            `gorm:"type:varchar(255)"`
	Details     datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AdminLogModel) TableName() string {
	return "admin_logs"
}

// TeamInviteModel mirrors the 'team_invites' table.
type TeamInviteModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email      string    `gorm:"type:varchar(255);not null;index"`
	Role       string    `gorm:"type:varchar(20);not null"`
	TokenHash  string    `gorm:"type:varchar(255);not null"`
	InvitedBy  uuid.UUID `gorm:"type:uuid;not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	AcceptedAt *time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (TeamInviteModel) TableName() string {
	return "team_invites"
}

// All lists every model for migrations and code generation.
func All() []any {
	return []any{
		&ProfileModel{},
		&OrderModel{},
		&OrderItemModel{},
		&OrderNoteModel{},
		&SubscriptionModel{},
		&TicketModel{},
		&TicketMessageModel{},
		&CouponModel{},
		&ReviewModel{},
		&EmailTemplateModel{},
		&CampaignModel{},
		&AdminLogModel{},
		&TeamInviteModel{},
	}
}
