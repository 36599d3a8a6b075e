package entity

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions written by the team and customer management flows.
const (
	AuditInviteMember   = "invite_member"
	AuditAcceptInvite   = "accept_invite"
	AuditUpdateRole     = "update_role"
	AuditRemoveMember   = "remove_member"
	AuditDeleteCustomer = "delete_customer"
	AuditDeleteOrder    = "delete_order"
)

// AdminLog is a write-once audit entry.
type AdminLog struct {
	ID          uuid.UUID      `json:"id"`
	AdminID     uuid.UUID      `json:"admin_id"`
	Action      string         `json:"action"`
	TargetEmail string         `json:"target_email,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// TeamInvite is a pending invitation to the back-office team.
type TeamInvite struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	TokenHash  string     `json:"-"`
	InvitedBy  uuid.UUID  `json:"invited_by"`
	ExpiresAt  time.Time  `json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
