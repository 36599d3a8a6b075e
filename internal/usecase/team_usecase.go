package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// TeamUsecase defines back-office team management. Every operation except
// AcceptInvite is super_admin only.
type TeamUsecase interface {
	ListTeam(ctx context.Context) (*TeamOverview, error)
	InviteMember(ctx context.Context, input InviteMemberInput) (*InviteResult, error)
	UpdateMemberRole(ctx context.Context, id uuid.UUID, input UpdateRoleInput) (*entity.Profile, error)
	RemoveMember(ctx context.Context, id uuid.UUID) error
	ListAdminLogs(ctx context.Context, input PageInput) (*AdminLogPage, error)
	AcceptInvite(ctx context.Context, input AcceptInviteInput) (*entity.Profile, error)
}

// InviteMemberInput invites an address to a staff role.
type InviteMemberInput struct {
	Email string      `json:"email" validate:"required,email"`
	Role  entity.Role `json:"role" validate:"required"`
}

// AcceptInviteInput is the token from an invitation link.
type AcceptInviteInput struct {
	Token string `json:"token" validate:"required"`
}

// UpdateRoleInput is a new role for a member.
type UpdateRoleInput struct {
	Role entity.Role `json:"role" validate:"required"`
}

// TeamOverview is the staff roster and outstanding invitations.
type TeamOverview struct {
	Members        []*entity.Profile    `json:"members"`
	PendingInvites []*entity.TeamInvite `json:"pending_invites"`
}

// InviteResult reports the stored invitation and whether an existing profile was promoted.
type InviteResult struct {
	Invite   *entity.TeamInvite `json:"invite"`
	Promoted bool               `json:"promoted"`
}

// AdminLogPage is one page of the audit trail.
type AdminLogPage struct {
	Logs []*entity.AdminLog `json:"logs"`
	PageMeta
}
