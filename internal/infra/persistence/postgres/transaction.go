// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"portal/internal/domain/repository"
	"portal/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// rlsRole is the database role whose row-level security policies read the JWT subject.
const rlsRole = "authenticated"

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory creates repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

func (f *gormRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) NewSubscriptionRepository() repository.SubscriptionRepository {
	return NewSubscriptionRepository(f.tx)
}

func (f *gormRepositoryFactory) NewTicketRepository() repository.TicketRepository {
	return NewTicketRepository(f.tx)
}

func (f *gormRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

func (f *gormRepositoryFactory) NewAdminLogRepository() repository.AdminLogRepository {
	return NewAdminLogRepository(f.tx)
}

func (f *gormRepositoryFactory) NewTeamInviteRepository() repository.TeamInviteRepository {
	return NewTeamInviteRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.run(ctx, nil, fn)
}

// ExecuteAs runs fn within a transaction whose row-level security context is
// scoped to userID. Both settings are transaction-local and vanish on commit.
func (tm *gormTransactionManager) ExecuteAs(ctx context.Context, userID uuid.UUID, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.run(ctx, func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT set_config('request.jwt.claim.sub', ?, true)", userID.String()).Error; err != nil {
			return errors.Wrap(err, "failed to set row-level security subject")
		}
		if err := tx.Exec("SET LOCAL ROLE " + rlsRole).Error; err != nil {
			return errors.Wrap(err, "failed to assume row-level security role")
		}

		return nil
	}, fn)
}

func (tm *gormTransactionManager) run(ctx context.Context, prepare func(tx *gorm.DB) error, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if prepare != nil {
		if err := prepare(tx); err != nil {
			tx.Rollback()

			return err
		}
	}

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
