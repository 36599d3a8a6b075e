// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

type subjectKey struct{}

// WithSubject stores the verified session subject in ctx.
func WithSubject(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, subjectKey{}, userID)
}

// SubjectFromContext returns the verified session subject, if any.
func SubjectFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(subjectKey{}).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

// RoleGate authorizes the caller of a usecase. Every gate re-reads the stored
// role and fails with ErrUnauthorized without saying why.
type RoleGate interface {
	// AssertAuthenticated passes for any caller with a profile
	AssertAuthenticated(ctx context.Context) (*entity.Principal, error)
	// AssertSupportDesk passes for support, admin and super_admin
	AssertSupportDesk(ctx context.Context) (*entity.Principal, error)
	// AssertAdmin passes for admin and super_admin
	AssertAdmin(ctx context.Context) (*entity.Principal, error)
	// AssertSuperAdmin passes for super_admin only
	AssertSuperAdmin(ctx context.Context) (*entity.Principal, error)
}
