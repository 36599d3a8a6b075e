package service

import (
	"context"

	"github.com/google/uuid"
)

// SessionClaims are the facts taken from a verified session token. Role is
// deliberately absent: it is always read from the profile.
type SessionClaims struct {
	Subject uuid.UUID
	Email   string
}

// SessionVerifier checks bearer tokens issued by the authentication provider.
type SessionVerifier interface {
	// VerifySessionToken validates the token and returns its subject
	VerifySessionToken(ctx context.Context, token string) (*SessionClaims, error)
}
