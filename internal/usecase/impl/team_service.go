package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"html"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"
	"portal/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const inviteTokenBytes = 32

// TeamServiceParams holds dependencies for teamService, injected by Fx.
type TeamServiceParams struct {
	fx.In

	Config    *config.Config
	Gate      usecase.RoleGate
	TxManager repository.TransactionManager
	Profiles  repository.ProfileRepository
	Invites   repository.TeamInviteRepository
	AdminLogs repository.AdminLogRepository
	Hasher    service.TokenHasher
	Mailer    service.Mailer
	Routes    service.RouteCache
	Audit     *AuditRecorder
	Logger    *slog.Logger
}

// teamService implements the TeamUsecase interface.
type teamService struct {
	gate          usecase.RoleGate
	txManager     repository.TransactionManager
	profiles      repository.ProfileRepository
	invites       repository.TeamInviteRepository
	adminLogs     repository.AdminLogRepository
	hasher        service.TokenHasher
	mailer        service.Mailer
	routes        service.RouteCache
	audit         *AuditRecorder
	logger        *slog.Logger
	inviteTTL     time.Duration
	inviteBaseURL string
	now           func() time.Time
	newToken      func() (string, error)
}

// NewTeamService is the constructor for teamService.
func NewTeamService(params TeamServiceParams) usecase.TeamUsecase {
	srv := &teamService{
		gate:      params.Gate,
		txManager: params.TxManager,
		profiles:  params.Profiles,
		invites:   params.Invites,
		adminLogs: params.AdminLogs,
		hasher:    params.Hasher,
		mailer:    params.Mailer,
		routes:    params.Routes,
		audit:     params.Audit,
		logger:    params.Logger,
		now:       time.Now,
		newToken:  newInviteToken,
	}
	if params.Config.Team != nil {
		srv.inviteTTL = params.Config.Team.InviteTTL
		srv.inviteBaseURL = params.Config.Team.InviteBaseURL
	}

	return srv
}

func (srv *teamService) ListTeam(ctx context.Context) (*usecase.TeamOverview, error) {
	if _, err := srv.gate.AssertSuperAdmin(ctx); err != nil {
		return nil, err
	}

	members, _, err := srv.profiles.ListProfiles(ctx, repository.ProfileFilter{Roles: entity.StaffRoles})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list team members")
	}
	invites, err := srv.invites.ListPendingInvites(ctx, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending invites")
	}

	return &usecase.TeamOverview{Members: members, PendingInvites: invites}, nil
}

// InviteMember stores a hashed invitation and emails the link. An address
// that already has a profile is promoted right away; others take the role
// when they accept.
func (srv *teamService) InviteMember(ctx context.Context, input usecase.InviteMemberInput) (*usecase.InviteResult, error) {
	principal, err := srv.gate.AssertSuperAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if !input.Role.IsStaff() {
		return nil, domainerrors.ErrInvalidRole
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !strings.Contains(email, "@") {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid email")
	}

	token, err := srv.newToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite token")
	}
	tokenHash, err := srv.hasher.Hash(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash invite token")
	}

	result := &usecase.InviteResult{
		Invite: &entity.TeamInvite{
			Email:     email,
			Role:      input.Role,
			TokenHash: tokenHash,
			InvitedBy: principal.UserID,
			ExpiresAt: srv.now().Add(srv.inviteTTL),
		},
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		existing, err := profileRepo.FindProfileByEmail(ctx, email)
		if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to look up invitee")
		}
		if existing != nil {
			if existing.ID == principal.UserID {
				return domainerrors.ErrSelfDemotion
			}
			if err := profileRepo.UpdateProfileRole(ctx, existing.ID, input.Role); err != nil {
				return errors.Wrap(err, "failed to promote invitee")
			}
			result.Promoted = true
		}

		return repoFactory.NewTeamInviteRepository().CreateInvite(ctx, result.Invite)
	})
	if err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Team member invited", slog.String("role", input.Role.String()), slog.Bool("promoted", result.Promoted))

	srv.audit.Record(ctx, entity.AuditInviteMember, email, map[string]any{
		"role":       input.Role.String(),
		"promoted":   result.Promoted,
		"expires_at": result.Invite.ExpiresAt.Format(time.RFC3339),
	})
	invalidateRoutes(ctx, srv.routes, logger, pathAdminTeam)

	msg := service.MailMessage{
		To:      email,
		Subject: "You have been invited to the team",
		HTML:    srv.renderInvite(email, input.Role, token),
	}
	if err := srv.mailer.Send(ctx, msg); err != nil {
		return nil, mailFailure(err, "failed to send invitation")
	}

	return result, nil
}

// UpdateMemberRole changes a role. A super admin cannot change their own.
func (srv *teamService) UpdateMemberRole(ctx context.Context, id uuid.UUID, input usecase.UpdateRoleInput) (*entity.Profile, error) {
	principal, err := srv.gate.AssertSuperAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}
	if id == principal.UserID {
		return nil, domainerrors.ErrSelfDemotion
	}

	profile, err := srv.profiles.FindProfileByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrProfileNotFound, "member")
	}
	previous := profile.Role

	if err := srv.profiles.UpdateProfileRole(ctx, id, input.Role); err != nil {
		return nil, notFound(err, repository.ErrProfileNotFound, "member")
	}
	profile.Role = input.Role

	srv.audit.Record(ctx, entity.AuditUpdateRole, profile.Email, map[string]any{
		"from": previous.String(),
		"to":   input.Role.String(),
	})
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	invalidateRoutes(ctx, srv.routes, logger, pathAdminTeam)

	return profile, nil
}

// RemoveMember resets a member to a plain user.
func (srv *teamService) RemoveMember(ctx context.Context, id uuid.UUID) error {
	principal, err := srv.gate.AssertSuperAdmin(ctx)
	if err != nil {
		return err
	}
	if id == principal.UserID {
		return domainerrors.ErrSelfDemotion
	}

	profile, err := srv.profiles.FindProfileByID(ctx, id)
	if err != nil {
		return notFound(err, repository.ErrProfileNotFound, "member")
	}
	if err := srv.profiles.UpdateProfileRole(ctx, id, entity.RoleUser); err != nil {
		return notFound(err, repository.ErrProfileNotFound, "member")
	}

	srv.audit.Record(ctx, entity.AuditRemoveMember, profile.Email, map[string]any{
		"from": profile.Role.String(),
	})
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	invalidateRoutes(ctx, srv.routes, logger, pathAdminTeam)

	return nil
}

func (srv *teamService) ListAdminLogs(ctx context.Context, input usecase.PageInput) (*usecase.AdminLogPage, error) {
	if _, err := srv.gate.AssertSuperAdmin(ctx); err != nil {
		return nil, err
	}

	logs, total, err := srv.adminLogs.ListAdminLogs(ctx, input.ToRepository())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admin logs")
	}

	return &usecase.AdminLogPage{Logs: logs, PageMeta: usecase.NewPageMeta(input, total)}, nil
}

// AcceptInvite grants the caller the role of the newest open invitation
// addressed to their own email. A caller already ranked higher keeps their role.
func (srv *teamService) AcceptInvite(ctx context.Context, input usecase.AcceptInviteInput) (*entity.Profile, error) {
	principal, err := srv.gate.AssertAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	token := strings.TrimSpace(input.Token)
	if token == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("token is required")
	}

	invite, err := srv.invites.FindOpenInviteByEmail(ctx, principal.Email)
	if err != nil {
		if errors.Is(err, repository.ErrTeamInviteNotFound) {
			return nil, domainerrors.ErrInviteInvalid
		}

		return nil, errors.Wrap(err, "failed to look up invitation")
	}
	now := srv.now()
	if !now.Before(invite.ExpiresAt) {
		return nil, domainerrors.ErrInviteExpired
	}
	if !srv.hasher.Check(token, invite.TokenHash) {
		return nil, domainerrors.ErrInviteInvalid
	}

	role := invite.Role
	if principal.Role.Rank() > role.Rank() {
		role = principal.Role
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProfileRepository().UpdateProfileRole(ctx, principal.UserID, role); err != nil {
			return errors.Wrap(err, "failed to grant invited role")
		}
		if err := repoFactory.NewTeamInviteRepository().MarkInviteAccepted(ctx, invite.ID, now); err != nil {
			if errors.Is(err, repository.ErrTeamInviteNotFound) {
				return domainerrors.ErrInviteInvalid
			}

			return errors.Wrap(err, "failed to accept invitation")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Team invitation accepted", slog.String("role", role.String()))

	srv.audit.Record(ctx, entity.AuditAcceptInvite, principal.Email, map[string]any{
		"role":       role.String(),
		"invited_by": invite.InvitedBy.String(),
	})
	invalidateRoutes(ctx, srv.routes, logger, pathAdminTeam)

	return &entity.Profile{ID: principal.UserID, Email: principal.Email, Role: role}, nil
}

func (srv *teamService) renderInvite(email string, role entity.Role, token string) string {
	link := srv.inviteBaseURL + "?" + url.Values{"token": {token}, "email": {email}}.Encode()

	return fmt.Sprintf(
		"<p>You have been invited to join the team as <strong>%s</strong>.</p>"+
			`<p><a href="%s">Accept the invitation</a></p>`+
			"<p>The link expires in %s.</p>",
		html.EscapeString(role.String()),
		html.EscapeString(link),
		util.FormatDuration(srv.inviteTTL),
	)
}

func newInviteToken() (string, error) {
	buf := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
