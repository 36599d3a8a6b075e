package impl

import (
	"context"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoleGate_AssertAdmin(t *testing.T) {
	tests := []struct {
		role    entity.Role
		allowed bool
	}{
		{entity.RoleUser, false},
		{entity.RoleMember, false},
		{entity.RoleSupport, false},
		{entity.RoleAdmin, true},
		{entity.RoleSuperAdmin, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			profiles := mockRepo.NewMockProfileRepository(t)
			ctx, userID := signedIn(profiles, tt.role)

			principal, err := newTestGate(profiles).AssertAdmin(ctx)
			if !tt.allowed {
				require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
				assert.Nil(t, principal)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, principal.UserID)
			assert.Equal(t, tt.role, principal.Role)
		})
	}
}

func TestRoleGate_AssertSuperAdmin(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleUser, entity.RoleSupport, entity.RoleAdmin} {
		profiles := mockRepo.NewMockProfileRepository(t)
		ctx, _ := signedIn(profiles, role)

		_, err := newTestGate(profiles).AssertSuperAdmin(ctx)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized, role)
	}

	profiles := mockRepo.NewMockProfileRepository(t)
	ctx, _ := signedIn(profiles, entity.RoleSuperAdmin)
	_, err := newTestGate(profiles).AssertSuperAdmin(ctx)
	assert.NoError(t, err)
}

func TestRoleGate_AssertSupportDesk(t *testing.T) {
	tests := []struct {
		role    entity.Role
		allowed bool
	}{
		{entity.RoleMember, false},
		{entity.RoleSupport, true},
		{entity.RoleAdmin, true},
		{entity.RoleSuperAdmin, true},
	}

	for _, tt := range tests {
		profiles := mockRepo.NewMockProfileRepository(t)
		ctx, _ := signedIn(profiles, tt.role)

		_, err := newTestGate(profiles).AssertSupportDesk(ctx)
		if tt.allowed {
			assert.NoError(t, err, tt.role)
		} else {
			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized, tt.role)
		}
	}
}

func TestRoleGate_NoSessionDoesNoIO(t *testing.T) {
	profiles := mockRepo.NewMockProfileRepository(t)
	recorder := mockService.NewMockMetricsRecorder(t)
	recorder.EXPECT().GateDenied(GateAuthenticated).Once()
	recorder.EXPECT().GateDenied(GateAdmin).Once()
	gate := NewRoleGate(profiles, recorder, newDiscardLogger())

	_, err := gate.AssertAuthenticated(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = gate.AssertAdmin(usecase.WithSubject(context.Background(), uuid.Nil))
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestRoleGate_UnknownProfile(t *testing.T) {
	profiles := mockRepo.NewMockProfileRepository(t)
	userID := uuid.New()
	profiles.EXPECT().
		FindProfileByID(mock.Anything, userID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := newTestGate(profiles).AssertAuthenticated(usecase.WithSubject(context.Background(), userID))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestRoleGate_FailsClosedOnLookupError(t *testing.T) {
	profiles := mockRepo.NewMockProfileRepository(t)
	userID := uuid.New()
	profiles.EXPECT().
		FindProfileByID(mock.Anything, userID).
		Return(nil, errors.New("connection reset"))

	_, err := newTestGate(profiles).AssertAdmin(usecase.WithSubject(context.Background(), userID))
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.NotContains(t, err.Error(), "connection reset")
}
