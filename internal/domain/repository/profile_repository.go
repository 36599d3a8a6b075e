// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"portal/internal/domain/entity"
	"portal/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateEmail is returned when a profile with the same email already exists.
	ErrDuplicateEmail = errors.New("profile email already exists")
)

// ProfileFilter narrows a profile listing.
type ProfileFilter struct {
	Roles  entity.Roles
	Search string
	Page
}

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// FindProfileByID retrieves a profile by its ID.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindProfileByEmail retrieves a profile by its email, case-insensitively.
	FindProfileByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// FindProfilesByIDs performs a bulk lookup. Unknown IDs are skipped.
	FindProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Profile, error)

	// ListProfiles returns one page of profiles and the exact total.
	ListProfiles(ctx context.Context, filter ProfileFilter) ([]*entity.Profile, int64, error)

	// ListProfilesCreatedSince returns profiles with the given roles created at or after since.
	ListProfilesCreatedSince(ctx context.Context, roles entity.Roles, since time.Time) ([]*entity.Profile, error)

	// CountProfiles counts profiles with the given roles.
	CountProfiles(ctx context.Context, roles entity.Roles) (int64, error)

	// CreateProfile persists a new profile.
	CreateProfile(ctx context.Context, profile *entity.Profile) error

	// UpdateProfileName sets the display name.
	UpdateProfileName(ctx context.Context, id uuid.UUID, fullName *string) error

	// UpdateProfileRole sets the role.
	UpdateProfileRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// DeleteProfile removes a profile. Callers unlink weak references first.
	DeleteProfile(ctx context.Context, id uuid.UUID) error
}
