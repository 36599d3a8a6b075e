package impl

import (
	"context"
	"log/slog"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// invalidateRoutes asks the presentation layer to rebuild paths. Failure never fails the mutation.
func invalidateRoutes(ctx context.Context, routes service.RouteCache, logger *slog.Logger, paths ...string) {
	if err := routes.Invalidate(ctx, paths...); err != nil {
		logger.Warn("Failed to invalidate routes", slog.Any("paths", paths), slog.Any("error", err))
	}
}

// notFound maps a repository sentinel to ErrNotFound and keeps other errors as malfunctions.
func notFound(err, sentinel error, what string) error {
	if errors.Is(err, sentinel) {
		return errors.Wrap(domainerrors.ErrNotFound, what+" not found")
	}

	return errors.Wrapf(err, "failed to find %s", what)
}

// profilesByID bulk loads the owners of a page of records.
func profilesByID(ctx context.Context, profiles repository.ProfileRepository, ids []uuid.UUID) (map[uuid.UUID]*entity.Profile, error) {
	out := make(map[uuid.UUID]*entity.Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	found, err := profiles.FindProfilesByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profiles")
	}
	for _, p := range found {
		out[p.ID] = p
	}

	return out, nil
}

// ownerIDs collects the distinct non-nil owners.
func ownerIDs(owners ...*uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(owners))
	ids := make([]uuid.UUID, 0, len(owners))
	for _, id := range owners {
		if id == nil {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		ids = append(ids, *id)
	}

	return ids
}

// customerRef renders an owner, falling back to the snapshot stored on the record
// and then to the placeholders.
func customerRef(owner *uuid.UUID, profile *entity.Profile, fallbackName, fallbackEmail string) usecase.CustomerRef {
	ref := usecase.CustomerRef{
		UserID: owner,
		Name:   fallbackName,
		Email:  fallbackEmail,
	}
	if profile != nil {
		ref.Name = profile.DisplayName()
		ref.Email = profile.Email
	}
	if ref.Name == "" {
		ref.Name = entity.GuestName
	}
	if ref.Email == "" {
		ref.Email = entity.GuestEmail
	}

	return ref
}

// lookupProfile returns nil for records without an owner.
func lookupProfile(byID map[uuid.UUID]*entity.Profile, owner *uuid.UUID) *entity.Profile {
	if owner == nil {
		return nil
	}

	return byID[*owner]
}

// mailFailure reports a delivery error as ErrMailDeliveryFailed unless the mailer already classified it.
func mailFailure(err error, what string) error {
	if _, ok := domainerrors.Resolve(err); ok {
		return errors.Wrap(err, what)
	}

	return errors.Wrapf(domainerrors.ErrMailDeliveryFailed, "%s: %v", what, err)
}
