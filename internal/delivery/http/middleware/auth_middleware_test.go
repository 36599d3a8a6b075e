package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, verifier service.SessionVerifier, header string) (uuid.UUID, bool, error) {
	t.Helper()
	m := NewAuthMiddleware(verifier, slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/account/profile", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())

	var (
		subject uuid.UUID
		found   bool
	)
	err := m.Authenticate(func(c echo.Context) error {
		subject, found = usecase.SubjectFromContext(c.Request().Context())

		return nil
	})(c)

	return subject, found, err
}

func TestAuthenticate_SetsSubject(t *testing.T) {
	userID := uuid.New()
	verifier := mockService.NewMockSessionVerifier(t)
	verifier.EXPECT().VerifySessionToken(mock.Anything, "tok").
		Return(&service.SessionClaims{Subject: userID, Email: "a@shop.test"}, nil).Once()

	subject, found, err := runAuthenticate(t, verifier, "Bearer tok")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, userID, subject)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	for _, header := range []string{"", "Basic abc", "Bearer   "} {
		_, found, err := runAuthenticate(t, mockService.NewMockSessionVerifier(t), header)

		require.ErrorIs(t, err, domainerrors.ErrSessionInvalid, header)
		assert.False(t, found)
	}
}

func TestAuthenticate_RejectedToken(t *testing.T) {
	verifier := mockService.NewMockSessionVerifier(t)
	verifier.EXPECT().VerifySessionToken(mock.Anything, "expired").
		Return(nil, errors.New("token is expired")).Once()

	_, found, err := runAuthenticate(t, verifier, "Bearer expired")

	require.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
	assert.False(t, found)
}
