// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"strings"

	"portal/config"
	"portal/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionClaims is the payload of an HS256 session token. Only sub and email
// are read; any role claim present is ignored.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// jwtSessionVerifier verifies HS256 tokens signed with the auth provider's shared secret.
type jwtSessionVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTSessionVerifier is the constructor for jwtSessionVerifier.
func NewJWTSessionVerifier(cfg *config.SessionConfig) (service.SessionVerifier, error) {
	if cfg == nil || cfg.JWTSecret == "" {
		return nil, errors.New("session jwt secret must be provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &jwtSessionVerifier{
		secret: []byte(cfg.JWTSecret),
		parser: jwt.NewParser(opts...),
	}, nil
}

// VerifySessionToken validates signature, expiry, issuer and audience, then returns the subject.
func (v *jwtSessionVerifier) VerifySessionToken(_ context.Context, tokenString string) (*service.SessionClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, errors.New("empty session token")
	}

	claims := &sessionClaims{}
	if _, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to verify session token")
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "session token subject is not a user id")
	}

	return &service.SessionClaims{
		Subject: subject,
		Email:   claims.Email,
	}, nil
}
