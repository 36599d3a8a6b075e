package auth

import (
	"context"
	"testing"
	"time"

	"portal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_session_secret_key_very_long_for_testing"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func newTestVerifier(t *testing.T) *jwtSessionVerifier {
	t.Helper()

	verifier, err := NewJWTSessionVerifier(&config.SessionConfig{
		JWTSecret: testSecret,
		Issuer:    "https://auth.example.com",
		Audience:  "authenticated",
	})
	require.NoError(t, err)

	return verifier.(*jwtSessionVerifier)
}

func validClaims(subject string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   subject,
		"email": "viewer@example.com",
		"role":  "super_admin",
		"iss":   "https://auth.example.com",
		"aud":   "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func TestJWTSessionVerifier_Valid(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New()
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(userID.String()))

	claims, err := verifier.VerifySessionToken(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "viewer@example.com", claims.Email)
}

func TestJWTSessionVerifier_Rejects(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New().String()

	expired := validClaims(userID)
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	wrongIssuer := validClaims(userID)
	wrongIssuer["iss"] = "https://evil.example.com"

	noExpiry := validClaims(userID)
	delete(noExpiry, "exp")

	testCases := []struct {
		name  string
		token string
	}{
		{name: "empty", token: "  "},
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), validClaims(userID))},
		{name: "wrong algorithm", token: signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(userID))},
		{name: "expired", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{name: "wrong issuer", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), wrongIssuer)},
		{name: "missing expiry", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{name: "subject not a uuid", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("user-42"))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := verifier.VerifySessionToken(context.Background(), tc.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTSessionVerifier_RequiresSecret(t *testing.T) {
	verifier, err := NewJWTSessionVerifier(&config.SessionConfig{})

	assert.Error(t, err)
	assert.Nil(t, verifier)
}

func TestNewSessionVerifier_UnknownProvider(t *testing.T) {
	verifier, err := NewSessionVerifier(context.Background(), &config.Config{
		Session: &config.SessionConfig{Provider: "saml"},
	})

	assert.Error(t, err)
	assert.Nil(t, verifier)
}
