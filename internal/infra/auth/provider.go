package auth

import (
	"context"

	"portal/config"
	"portal/internal/domain/constants"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
)

// NewSessionVerifier selects the verifier configured by session.provider.
func NewSessionVerifier(ctx context.Context, cfg *config.Config) (service.SessionVerifier, error) {
	if cfg.Session == nil {
		return nil, errors.New("session config is required")
	}

	switch cfg.Session.Provider {
	case constants.SessionProviderJWT, "":
		return NewJWTSessionVerifier(cfg.Session)
	case constants.SessionProviderFirebase:
		return NewFirebaseSessionVerifier(ctx, cfg.Session)
	default:
		return nil, errors.Errorf("unknown session provider: %s", cfg.Session.Provider)
	}
}
