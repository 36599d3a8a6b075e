package repository

import (
	"context"

	"github.com/google/uuid"
)

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction on the elevated connection.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error

	// ExecuteAs runs fn inside a transaction scoped to userID. Row-level security
	// policies see userID as the authenticated subject for every statement.
	ExecuteAs(ctx context.Context, userID uuid.UUID, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	NewProfileRepository() ProfileRepository
	NewOrderRepository() OrderRepository
	NewSubscriptionRepository() SubscriptionRepository
	NewTicketRepository() TicketRepository
	NewReviewRepository() ReviewRepository
	NewAdminLogRepository() AdminLogRepository
	NewTeamInviteRepository() TeamInviteRepository
}

// Page bounds a listing query. Limit <= 0 means no limit.
type Page struct {
	Offset int
	Limit  int
}
