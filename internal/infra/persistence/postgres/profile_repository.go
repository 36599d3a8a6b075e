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
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindProfileByID retrieves a profile by its ID.
func (repo *profileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindProfileByEmail retrieves a profile by its email, case-insensitively.
func (repo *profileRepository) FindProfileByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	return toProfileDomain(&profileM), nil
}

// FindProfilesByIDs performs a bulk lookup. Unknown IDs are skipped.
func (repo *profileRepository) FindProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Profile, error) {
	if len(ids) == 0 {
		return []*entity.Profile{}, nil
	}

	var profileModels []*model.ProfileModel
	if err := replica(repo.db.WithContext(ctx)).
		Where("id IN ?", ids).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by IDs")
	}

	return toProfileDomains(profileModels), nil
}

// ListProfiles returns one page of profiles and the exact total.
func (repo *profileRepository) ListProfiles(ctx context.Context, filter repository.ProfileFilter) ([]*entity.Profile, int64, error) {
	base := replica(repo.db.WithContext(ctx)).Model(&model.ProfileModel{})
	if len(filter.Roles) > 0 {
		base = base.Where("role IN ?", filter.Roles.ToStrings())
	}
	if strings.TrimSpace(filter.Search) != "" {
		pattern := likePattern(filter.Search)
		base = base.Where("email ILIKE ? OR full_name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count profiles")
	}

	var profileModels []*model.ProfileModel
	if err := paginate(base.Session(&gorm.Session{}), filter.Page).
		Order("created_at DESC").
		Find(&profileModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list profiles")
	}

	return toProfileDomains(profileModels), total, nil
}

// ListProfilesCreatedSince returns profiles with the given roles created at or after since.
func (repo *profileRepository) ListProfilesCreatedSince(ctx context.Context, roles entity.Roles, since time.Time) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := replica(repo.db.WithContext(ctx)).
		Where("role IN ? AND created_at >= ?", roles.ToStrings(), since).
		Order("created_at ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent profiles")
	}

	return toProfileDomains(profileModels), nil
}

// CountProfiles counts profiles with the given roles.
func (repo *profileRepository) CountProfiles(ctx context.Context, roles entity.Roles) (int64, error) {
	var total int64

	if err := replica(repo.db.WithContext(ctx)).
		Model(&model.ProfileModel{}).
		Where("role IN ?", roles.ToStrings()).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count profiles")
	}

	return total, nil
}

// CreateProfile persists a new profile.
func (repo *profileRepository) CreateProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateProfileName sets the display name.
func (repo *profileRepository) UpdateProfileName(ctx context.Context, id uuid.UUID, fullName *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("full_name", fullName)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile name")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpdateProfileRole sets the role.
func (repo *profileRepository) UpdateProfileRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("role", role.String())

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRole
		}

		return errors.Wrap(result.Error, "failed to update profile role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// DeleteProfile removes a profile. Callers unlink weak references first.
func (repo *profileRepository) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProfileModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("profile is still referenced")
		}

		return errors.Wrap(result.Error, "failed to delete profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:        data.ID,
		Email:     data.Email,
		Role:      entity.Role(data.Role),
		FullName:  data.FullName,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toProfileDomains(models []*model.ProfileModel) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(models))
	for _, profileM := range models {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:        data.ID,
		Email:     strings.ToLower(strings.TrimSpace(data.Email)),
		Role:      data.Role.String(),
		FullName:  data.FullName,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
