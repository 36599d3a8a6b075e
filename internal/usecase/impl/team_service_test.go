package impl

import (
	"context"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type teamFixture struct {
	profiles  *mockRepo.MockProfileRepository
	txManager *mockRepo.MockTransactionManager
	invites   *mockRepo.MockTeamInviteRepository
	logs      *mockRepo.MockAdminLogRepository
	hasher    *mockService.MockTokenHasher
	mailer    *mockService.MockMailer
	routes    *mockService.MockRouteCache
	audit     *AuditRecorder
	service   *teamService
	now       time.Time
}

func newTeamFixture(t *testing.T) *teamFixture {
	f := &teamFixture{
		profiles:  mockRepo.NewMockProfileRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		invites:   mockRepo.NewMockTeamInviteRepository(t),
		logs:      mockRepo.NewMockAdminLogRepository(t),
		hasher:    mockService.NewMockTokenHasher(t),
		mailer:    mockService.NewMockMailer(t),
		routes:    mockService.NewMockRouteCache(t),
		now:       time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC),
	}
	f.audit = NewAuditRecorder(f.logs, mockService.NewMockMetricsRecorder(t), newDiscardLogger())
	f.service = NewTeamService(TeamServiceParams{
		Config:    newTestConfig(),
		Gate:      newTestGate(f.profiles),
		TxManager: f.txManager,
		Profiles:  f.profiles,
		Invites:   f.invites,
		AdminLogs: f.logs,
		Hasher:    f.hasher,
		Mailer:    f.mailer,
		Routes:    f.routes,
		Audit:     f.audit,
		Logger:    newDiscardLogger(),
	}).(*teamService)
	f.service.now = func() time.Time { return f.now }
	f.service.newToken = func() (string, error) { return "tok-123", nil }

	return f
}

func TestTeamService_InviteMember_PromotesExistingProfile(t *testing.T) {
	f := newTeamFixture(t)
	ctx, adminID := signedIn(f.profiles, entity.RoleSuperAdmin)
	existingID := uuid.New()

	txProfiles := mockRepo.NewMockProfileRepository(t)
	txInvites := mockRepo.NewMockTeamInviteRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(txProfiles)
	factory.EXPECT().NewTeamInviteRepository().Return(txInvites)
	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(runInTx(factory))

	f.hasher.EXPECT().Hash("tok-123").Return("hashed", nil)
	txProfiles.EXPECT().FindProfileByEmail(mock.Anything, "new.agent@shop.test").
		Return(&entity.Profile{ID: existingID, Email: "new.agent@shop.test", Role: entity.RoleMember}, nil)
	txProfiles.EXPECT().UpdateProfileRole(mock.Anything, existingID, entity.RoleSupport).Return(nil)
	txInvites.EXPECT().
		CreateInvite(mock.Anything, mock.MatchedBy(func(invite *entity.TeamInvite) bool {
			return invite.TokenHash == "hashed" &&
				invite.InvitedBy == adminID &&
				invite.ExpiresAt.Equal(f.now.Add(72*time.Hour))
		})).
		Return(nil)
	f.logs.EXPECT().CreateAdminLog(mock.Anything, mock.Anything).Return(nil)
	allowInvalidate(f.routes, 1)
	f.mailer.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(msg service.MailMessage) bool {
			return msg.To == "new.agent@shop.test" &&
				assert.Contains(t, msg.HTML, "token=tok-123") &&
				assert.Contains(t, msg.HTML, "72h0m")
		})).
		Return(nil)

	result, err := f.service.InviteMember(ctx, usecase.InviteMemberInput{Email: " New.Agent@Shop.test ", Role: entity.RoleSupport})
	f.audit.Wait()

	require.NoError(t, err)
	assert.True(t, result.Promoted)
	assert.Equal(t, "new.agent@shop.test", result.Invite.Email)
}

func TestTeamService_InviteMember_UnknownEmailOnlyStoresInvite(t *testing.T) {
	f := newTeamFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleSuperAdmin)

	txProfiles := mockRepo.NewMockProfileRepository(t)
	txInvites := mockRepo.NewMockTeamInviteRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(txProfiles)
	factory.EXPECT().NewTeamInviteRepository().Return(txInvites)
	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(runInTx(factory))

	f.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	txProfiles.EXPECT().FindProfileByEmail(mock.Anything, "fresh@shop.test").Return(nil, repository.ErrProfileNotFound)
	txInvites.EXPECT().CreateInvite(mock.Anything, mock.Anything).Return(nil)
	f.logs.EXPECT().CreateAdminLog(mock.Anything, mock.Anything).Return(nil)
	allowInvalidate(f.routes, 1)
	f.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("smtp: 421"))

	_, err := f.service.InviteMember(ctx, usecase.InviteMemberInput{Email: "fresh@shop.test", Role: entity.RoleAdmin})
	f.audit.Wait()

	assert.ErrorIs(t, err, domainerrors.ErrMailDeliveryFailed)
}

func TestTeamService_InviteMember_RejectsNonStaffRole(t *testing.T) {
	f := newTeamFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleSuperAdmin)

	_, err := f.service.InviteMember(ctx, usecase.InviteMemberInput{Email: "x@shop.test", Role: entity.RoleMember})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestTeamService_SelfDemotion(t *testing.T) {
	f := newTeamFixture(t)
	ctx, selfID := signedIn(f.profiles, entity.RoleSuperAdmin)

	_, err := f.service.UpdateMemberRole(ctx, selfID, usecase.UpdateRoleInput{Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domainerrors.ErrSelfDemotion)

	err = f.service.RemoveMember(ctx, selfID)
	assert.ErrorIs(t, err, domainerrors.ErrSelfDemotion)
}

func TestTeamService_UpdateMemberRole(t *testing.T) {
	f := newTeamFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleSuperAdmin)
	memberID := uuid.New()

	f.profiles.EXPECT().FindProfileByID(mock.Anything, memberID).
		Return(&entity.Profile{ID: memberID, Email: "agent@shop.test", Role: entity.RoleSupport}, nil)
	f.profiles.EXPECT().UpdateProfileRole(mock.Anything, memberID, entity.RoleAdmin).Return(nil)
	f.logs.EXPECT().
		CreateAdminLog(mock.Anything, mock.MatchedBy(func(entry *entity.AdminLog) bool {
			return entry.Action == entity.AuditUpdateRole &&
				entry.Details["from"] == "support" &&
				entry.Details["to"] == "admin"
		})).
		Return(nil)
	allowInvalidate(f.routes, 1)

	profile, err := f.service.UpdateMemberRole(ctx, memberID, usecase.UpdateRoleInput{Role: entity.RoleAdmin})
	f.audit.Wait()

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, profile.Role)
}

func TestTeamService_RequiresSuperAdmin(t *testing.T) {
	f := newTeamFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)

	_, err := f.service.ListTeam(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestTeamService_AcceptInvite(t *testing.T) {
	f := newTeamFixture(t)
	ctx, userID := signedIn(f.profiles, entity.RoleUser)
	inviteID := uuid.New()
	inviterID := uuid.New()

	f.invites.EXPECT().FindOpenInviteByEmail(mock.Anything, "user@shop.test").
		Return(&entity.TeamInvite{
			ID:        inviteID,
			Email:     "user@shop.test",
			Role:      entity.RoleSupport,
			TokenHash: "hashed",
			InvitedBy: inviterID,
			ExpiresAt: f.now.Add(time.Hour),
		}, nil)
	f.hasher.EXPECT().Check("tok-123", "hashed").Return(true)

	txProfiles := mockRepo.NewMockProfileRepository(t)
	txInvites := mockRepo.NewMockTeamInviteRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(txProfiles)
	factory.EXPECT().NewTeamInviteRepository().Return(txInvites)
	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(runInTx(factory))
	txProfiles.EXPECT().UpdateProfileRole(mock.Anything, userID, entity.RoleSupport).Return(nil)
	txInvites.EXPECT().MarkInviteAccepted(mock.Anything, inviteID, f.now).Return(nil)

	f.logs.EXPECT().
		CreateAdminLog(mock.Anything, mock.MatchedBy(func(entry *entity.AdminLog) bool {
			return entry.Action == entity.AuditAcceptInvite &&
				entry.AdminID == userID &&
				entry.TargetEmail == "user@shop.test" &&
				entry.Details["role"] == "support"
		})).
		Return(nil)
	allowInvalidate(f.routes, 1)

	profile, err := f.service.AcceptInvite(ctx, usecase.AcceptInviteInput{Token: "tok-123"})
	f.audit.Wait()

	require.NoError(t, err)
	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, entity.RoleSupport, profile.Role)
}

func TestTeamService_AcceptInvite_WrongToken(t *testing.T) {
	f := newTeamFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleUser)

	f.invites.EXPECT().FindOpenInviteByEmail(mock.Anything, "user@shop.test").
		Return(&entity.TeamInvite{
			ID:        uuid.New(),
			Role:      entity.RoleAdmin,
			TokenHash: "hashed",
			ExpiresAt: f.now.Add(time.Hour),
		}, nil)
	f.hasher.EXPECT().Check("guessed", "hashed").Return(false)

	_, err := f.service.AcceptInvite(ctx, usecase.AcceptInviteInput{Token: "guessed"})

	assert.ErrorIs(t, err, domainerrors.ErrInviteInvalid)
}

func TestTeamService_AcceptInvite_Expired(t *testing.T) {
	f := newTeamFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleUser)

	f.invites.EXPECT().FindOpenInviteByEmail(mock.Anything, "user@shop.test").
		Return(&entity.TeamInvite{
			ID:        uuid.New(),
			Role:      entity.RoleSupport,
			TokenHash: "hashed",
			ExpiresAt: f.now,
		}, nil)

	_, err := f.service.AcceptInvite(ctx, usecase.AcceptInviteInput{Token: "tok-123"})

	assert.ErrorIs(t, err, domainerrors.ErrInviteExpired)
}

func TestTeamService_AcceptInvite_NoInviteForCaller(t *testing.T) {
	f := newTeamFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleUser)

	f.invites.EXPECT().FindOpenInviteByEmail(mock.Anything, "user@shop.test").
		Return(nil, repository.ErrTeamInviteNotFound)

	_, err := f.service.AcceptInvite(ctx, usecase.AcceptInviteInput{Token: "tok-123"})

	assert.ErrorIs(t, err, domainerrors.ErrInviteInvalid)
}

func TestTeamService_AcceptInvite_RequiresSession(t *testing.T) {
	f := newTeamFixture(t)

	_, err := f.service.AcceptInvite(context.Background(), usecase.AcceptInviteInput{Token: "tok-123"})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
