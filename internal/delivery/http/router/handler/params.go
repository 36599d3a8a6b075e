// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"portal/internal/delivery/http/response"
	domainerrors "portal/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// idParam parses a uuid path parameter.
func idParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return id, nil
}

// bindInput binds the request into input and runs the registered validator.
func bindInput(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	return nil
}

func ok(c echo.Context, data any) error {
	return response.OK(c, data)
}

func created(c echo.Context, data any) error {
	return response.Created(c, data)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
