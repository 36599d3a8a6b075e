package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/infra/metrics"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Mail:      &config.MailConfig{BatchSize: 50},
		Redis:     &config.RedisConfig{DashboardTTL: time.Minute, ContentTTL: time.Minute},
		Analytics: &config.AnalyticsConfig{TrendWindowDays: 30},
		Team:      &config.TeamConfig{InviteTTL: 72 * time.Hour, InviteBaseURL: "https://shop.test/invite"},
		Assets:    &config.AssetsConfig{MaxUploadSize: "1KB"},
	}
}

func newTestGate(profiles repository.ProfileRepository) usecase.RoleGate {
	return NewRoleGate(profiles, metrics.New(), newDiscardLogger())
}

// signedIn returns a context whose subject resolves to a profile with role.
func signedIn(profiles *mockRepo.MockProfileRepository, role entity.Role) (context.Context, uuid.UUID) {
	userID := uuid.New()
	profiles.EXPECT().
		FindProfileByID(mock.Anything, userID).
		Return(&entity.Profile{ID: userID, Email: string(role) + "@shop.test", Role: role}, nil)

	return usecase.WithSubject(context.Background(), userID), userID
}

// runInTx makes a mocked TransactionManager call fn with factory.
func runInTx(factory repository.RepositoryFactory) func(context.Context, func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	}
}

// runAsInTx is runInTx for ExecuteAs.
func runAsInTx(factory repository.RepositoryFactory) func(context.Context, uuid.UUID, func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, _ uuid.UUID, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	}
}

// allowInvalidate accepts one Invalidate call with n paths.
func allowInvalidate(routes *mockService.MockRouteCache, n int) {
	paths := make([]any, n)
	for i := range paths {
		paths[i] = mock.Anything
	}
	routes.EXPECT().Invalidate(mock.Anything, paths...).Return(nil)
}
