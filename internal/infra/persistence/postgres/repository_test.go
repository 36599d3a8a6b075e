package postgres

import (
	"context"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestProfileRepository_FindProfileByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}))

	profile, err := repo.FindProfileByID(context.Background(), uuid.New())

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_UnlinkOrdersFromUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	userID := uuid.New()

	mock.ExpectExec(`UPDATE "orders" SET "user_id"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	unlinked, err := repo.UnlinkOrdersFromUser(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), unlinked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminLogRepository_CreateAdminLog(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminLogRepository(db)
	logID := uuid.New()

	mock.ExpectQuery(`INSERT INTO "admin_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(logID.String()))

	log := &entity.AdminLog{
		AdminID:     uuid.New(),
		Action:      entity.AuditDeleteCustomer,
		TargetEmail: "customer@example.com",
		Details:     map[string]any{"orders_unlinked": 2},
	}
	err := repo.CreateAdminLog(context.Background(), log)

	require.NoError(t, err)
	assert.Equal(t, logID, log.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminLogRepository_CreateAdminLog_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminLogRepository(db)

	mock.ExpectQuery(`INSERT INTO "admin_logs"`).
		WillReturnError(errors.New("connection reset"))

	err := repo.CreateAdminLog(context.Background(), &entity.AdminLog{AdminID: uuid.New(), Action: entity.AuditUpdateRole})

	require.Error(t, err)
	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
}

func TestTeamInviteRepository_FindOpenInviteByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeamInviteRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "team_invites" WHERE lower\(email\) = \$1 AND accepted_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	invite, err := repo.FindOpenInviteByEmail(context.Background(), " Agent@Shop.test ")

	assert.Nil(t, invite)
	assert.ErrorIs(t, err, repository.ErrTeamInviteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamInviteRepository_MarkInviteAccepted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeamInviteRepository(db)
	at := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE "team_invites" SET "accepted_at"=\$1 WHERE id = \$2 AND accepted_at IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "team_invites" SET "accepted_at"=\$1 WHERE id = \$2 AND accepted_at IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.MarkInviteAccepted(context.Background(), uuid.New(), at))

	err := repo.MarkInviteAccepted(context.Background(), uuid.New(), at)
	assert.ErrorIs(t, err, repository.ErrTeamInviteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_ExecuteAs(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT set_config\('request.jwt.claim.sub', \$1, true\)`).
		WithArgs(userID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`SET LOCAL ROLE authenticated`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	called := false
	err := tm.ExecuteAs(context.Background(), userID, func(factory repository.RepositoryFactory) error {
		called = true
		assert.NotNil(t, factory.NewSubscriptionRepository())

		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Execute_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_FindAudienceRecipients_UnknownAudience(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignRepository(db)

	recipients, err := repo.FindAudienceRecipients(context.Background(), entity.Audience("vip"), time.Now())

	assert.Nil(t, recipients)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDedupeRecipients(t *testing.T) {
	got := dedupeRecipients([]entity.Recipient{
		{Email: "a@example.com", Name: "A"},
		{Email: " A@Example.com ", Name: "Dup"},
		{Email: "", Name: "Blank"},
		{Email: "b@example.com"},
	})

	assert.Equal(t, []entity.Recipient{
		{Email: "a@example.com", Name: "A"},
		{Email: "b@example.com"},
	}, got)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, `%50\% off\_now%`, likePattern(" 50% off_now "))
}
