package repository

import (
	"context"
	"time"

	"portal/internal/domain/entity"
	"portal/internal/errors"

	"github.com/google/uuid"
)

// ErrTeamInviteNotFound is returned when no open invitation exists for an address.
var ErrTeamInviteNotFound = errors.New("team invite not found")

// AdminLogRepository defines the interface for the append-only audit trail.
type AdminLogRepository interface {
	// CreateAdminLog appends an audit entry.
	CreateAdminLog(ctx context.Context, log *entity.AdminLog) error

	// ListAdminLogs returns one page of entries, newest first, and the exact total.
	ListAdminLogs(ctx context.Context, page Page) ([]*entity.AdminLog, int64, error)
}

// TeamInviteRepository defines the interface for team invitation persistence.
type TeamInviteRepository interface {
	// CreateInvite persists an invitation.
	CreateInvite(ctx context.Context, invite *entity.TeamInvite) error

	// ListPendingInvites returns invitations neither accepted nor expired at now.
	ListPendingInvites(ctx context.Context, now time.Time) ([]*entity.TeamInvite, error)

	// FindOpenInviteByEmail returns the newest unaccepted invitation for email, expired or not.
	FindOpenInviteByEmail(ctx context.Context, email string) (*entity.TeamInvite, error)

	// MarkInviteAccepted stamps accepted_at on an unaccepted invitation.
	MarkInviteAccepted(ctx context.Context, id uuid.UUID, at time.Time) error
}
