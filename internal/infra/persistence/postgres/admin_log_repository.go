package postgres

import (
	"context"
	"strings"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// adminLogRepository implements the repository.AdminLogRepository interface.
type adminLogRepository struct {
	db *gorm.DB
}

// NewAdminLogRepository is the constructor for adminLogRepository.
func NewAdminLogRepository(db *gorm.DB) repository.AdminLogRepository {
	return &adminLogRepository{
		db: db,
	}
}

// CreateAdminLog appends an audit entry.
func (repo *adminLogRepository) CreateAdminLog(ctx context.Context, log *entity.AdminLog) error {
	logM := &model.AdminLogModel{
		ID:          log.ID,
		AdminID:     log.AdminID,
		Action:      log.Action,
		TargetEmail: log.TargetEmail,
		Details:     datatypes.JSONMap(log.Details),
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// ListAdminLogs returns one page of entries, newest first, and the exact total.
func (repo *adminLogRepository) ListAdminLogs(ctx context.Context, page repository.Page) ([]*entity.AdminLog, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.AdminLogModel{})

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count admin logs")
	}

	var logModels []*model.AdminLogModel
	if err := paginate(base.Session(&gorm.Session{}), page).
		Order("created_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list admin logs")
	}

	logs := make([]*entity.AdminLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, &entity.AdminLog{
			ID:          logM.ID,
			AdminID:     logM.AdminID,
			Action:      logM.Action,
			TargetEmail: logM.TargetEmail,
			Details:     map[string]any(logM.Details),
			CreatedAt:   logM.CreatedAt,
		})
	}

	return logs, total, nil
}

// teamInviteRepository implements the repository.TeamInviteRepository interface.
type teamInviteRepository struct {
	db *gorm.DB
}

// NewTeamInviteRepository is the constructor for teamInviteRepository.
func NewTeamInviteRepository(db *gorm.DB) repository.TeamInviteRepository {
	return &teamInviteRepository{
		db: db,
	}
}

// CreateInvite persists an invitation.
func (repo *teamInviteRepository) CreateInvite(ctx context.Context, invite *entity.TeamInvite) error {
	inviteM := &model.TeamInviteModel{
		ID:        invite.ID,
		Email:     invite.Email,
		Role:      invite.Role.String(),
		TokenHash: invite.TokenHash,
		InvitedBy: invite.InvitedBy,
		ExpiresAt: invite.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(inviteM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create team invite")
	}

	invite.ID = inviteM.ID
	invite.CreatedAt = inviteM.CreatedAt

	return nil
}

// ListPendingInvites returns invitations neither accepted nor expired at now.
func (repo *teamInviteRepository) ListPendingInvites(ctx context.Context, now time.Time) ([]*entity.TeamInvite, error) {
	var inviteModels []*model.TeamInviteModel

	if err := repo.db.WithContext(ctx).
		Where("accepted_at IS NULL AND expires_at > ?", now).
		Order("created_at DESC").
		Find(&inviteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending invites")
	}

	invites := make([]*entity.TeamInvite, 0, len(inviteModels))
	for _, inviteM := range inviteModels {
		invites = append(invites, toTeamInvite(inviteM))
	}

	return invites, nil
}

// FindOpenInviteByEmail returns the newest unaccepted invitation for email, expired or not.
func (repo *teamInviteRepository) FindOpenInviteByEmail(ctx context.Context, email string) (*entity.TeamInvite, error) {
	var inviteM model.TeamInviteModel

	if err := repo.db.WithContext(ctx).
		Where("lower(email) = ? AND accepted_at IS NULL", strings.ToLower(strings.TrimSpace(email))).
		Order("created_at DESC").
		First(&inviteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeamInviteNotFound
		}

		return nil, errors.Wrap(err, "failed to find team invite")
	}

	return toTeamInvite(&inviteM), nil
}

// MarkInviteAccepted stamps accepted_at on an unaccepted invitation.
func (repo *teamInviteRepository) MarkInviteAccepted(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TeamInviteModel{}).
		Where("id = ? AND accepted_at IS NULL", id).
		Update("accepted_at", at)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to accept team invite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTeamInviteNotFound
	}

	return nil
}

func toTeamInvite(inviteM *model.TeamInviteModel) *entity.TeamInvite {
	return &entity.TeamInvite{
		ID:         inviteM.ID,
		Email:      inviteM.Email,
		Role:       entity.Role(inviteM.Role),
		TokenHash:  inviteM.TokenHash,
		InvitedBy:  inviteM.InvitedBy,
		ExpiresAt:  inviteM.ExpiresAt,
		AcceptedAt: inviteM.AcceptedAt,
		CreatedAt:  inviteM.CreatedAt,
	}
}
