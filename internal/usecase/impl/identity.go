package impl

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/usecase"

	"github.com/pkg/errors"
)

var errNoSubject = errors.New("no session subject in context")

// resolvePrincipal turns the verified session subject into a principal with
// the role currently stored on the profile.
func resolvePrincipal(ctx context.Context, profiles repository.ProfileRepository) (*entity.Principal, error) {
	userID, ok := usecase.SubjectFromContext(ctx)
	if !ok {
		return nil, errNoSubject
	}

	profile, err := profiles.FindProfileByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	return &entity.Principal{
		UserID: profile.ID,
		Email:  profile.Email,
		Role:   profile.Role,
	}, nil
}
