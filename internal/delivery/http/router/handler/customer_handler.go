package handler

import (
	"log/slog"

	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler serves customer administration.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, logger: logger}
}

func (h *CustomerHandler) List(c echo.Context) error {
	var input usecase.CustomerListInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	page, err := h.uc.ListCustomers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, page)
}

func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.uc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, detail)
}

func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var input usecase.UpdateProfileInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	profile, err := h.uc.UpdateCustomer(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, profile)
}

// Delete removes the profile and reports how many records were orphaned.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.uc.DeleteCustomer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, result)
}
