// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
)

// Gate names, used as the metric label.
const (
	GateAuthenticated = "authenticated"
	GateSupportDesk   = "support_desk"
	GateAdmin         = "admin"
	GateSuperAdmin    = "super_admin"
)

// roleGate implements the RoleGate interface.
type roleGate struct {
	profiles repository.ProfileRepository
	metrics  service.MetricsRecorder
	logger   *slog.Logger
}

// NewRoleGate is the constructor for roleGate.
func NewRoleGate(
	profiles repository.ProfileRepository,
	metrics service.MetricsRecorder,
	logger *slog.Logger,
) usecase.RoleGate {
	return &roleGate{
		profiles: profiles,
		metrics:  metrics,
		logger:   logger,
	}
}

func (g *roleGate) AssertAuthenticated(ctx context.Context) (*entity.Principal, error) {
	return g.assert(ctx, GateAuthenticated, entity.Role.IsValid)
}

func (g *roleGate) AssertSupportDesk(ctx context.Context) (*entity.Principal, error) {
	return g.assert(ctx, GateSupportDesk, func(role entity.Role) bool {
		return role == entity.RoleSupport || role.AtLeast(entity.RoleAdmin)
	})
}

func (g *roleGate) AssertAdmin(ctx context.Context) (*entity.Principal, error) {
	return g.assert(ctx, GateAdmin, func(role entity.Role) bool {
		return role.AtLeast(entity.RoleAdmin)
	})
}

func (g *roleGate) AssertSuperAdmin(ctx context.Context) (*entity.Principal, error) {
	return g.assert(ctx, GateSuperAdmin, func(role entity.Role) bool {
		return role == entity.RoleSuperAdmin
	})
}

// assert resolves the caller from the stored profile. Token claims never carry the role.
func (g *roleGate) assert(ctx context.Context, gate string, allow func(entity.Role) bool) (*entity.Principal, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, g.logger)

	principal, err := resolvePrincipal(ctx, g.profiles)
	if err != nil {
		if !errors.Is(err, errNoSubject) && !errors.Is(err, repository.ErrProfileNotFound) {
			// fail closed, but a broken lookup is worth an alert
			logger.Error("Role lookup failed", slog.String("gate", gate), slog.Any("error", err))
		}

		return g.deny(logger, gate, "unresolved principal")
	}
	if !allow(principal.Role) {
		return g.deny(logger, gate, "insufficient role")
	}

	return principal, nil
}

func (g *roleGate) deny(logger *slog.Logger, gate, reason string) (*entity.Principal, error) {
	g.metrics.GateDenied(gate)
	logger.Debug("Gate denied", slog.String("gate", gate), slog.String("reason", reason))

	return nil, domainerrors.ErrUnauthorized
}
