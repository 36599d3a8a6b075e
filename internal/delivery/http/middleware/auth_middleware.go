package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "portal/internal/delivery/context"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies the session token and records its subject on the request context.
// It never decides roles; the usecase gates read them from the profile.
type AuthMiddleware struct {
	verifier service.SessionVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.SessionVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrSessionInvalid)
		}

		ctx := c.Request().Context()
		claims, err := m.verifier.VerifySessionToken(ctx, token)
		if err != nil {
			logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)
			logger.Debug("Session token rejected", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrSessionInvalid)
		}

		ctx = usecase.WithSubject(ctx, claims.Subject)
		ctx = deliverycontext.WithLoggerAttrs(ctx, slog.String("user_id", claims.Subject.String()))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	return token, token != ""
}
