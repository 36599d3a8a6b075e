package auth

import (
	"context"

	"portal/config"
	"portal/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// firebaseSessionVerifier verifies Firebase ID tokens. The Firebase UID must be the profile id.
type firebaseSessionVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseSessionVerifier creates a verifier backed by the Firebase Admin SDK.
func NewFirebaseSessionVerifier(ctx context.Context, cfg *config.SessionConfig) (service.SessionVerifier, error) {
	var opts []option.ClientOption
	if cfg.FirebaseCredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.FirebaseProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseSessionVerifier{client: client}, nil
}

// VerifySessionToken checks the ID token against Firebase's public keys.
func (v *firebaseSessionVerifier) VerifySessionToken(ctx context.Context, token string) (*service.SessionClaims, error) {
	verified, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify Firebase ID token")
	}

	subject, err := uuid.Parse(verified.UID)
	if err != nil {
		return nil, errors.Wrap(err, "firebase uid is not a user id")
	}

	email, _ := verified.Claims["email"].(string)

	return &service.SessionClaims{
		Subject: subject,
		Email:   email,
	}, nil
}
