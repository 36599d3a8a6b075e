package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler serves coupon administration and the public checkout quote.
type CouponHandler struct {
	uc     usecase.CouponUsecase
	logger *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(uc usecase.CouponUsecase, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{uc: uc, logger: logger}
}

// Validate quotes a coupon against a cart amount.
func (h *CouponHandler) Validate(c echo.Context) error {
	var input usecase.ValidateCouponInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	quote, err := h.uc.ValidateCoupon(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, quote)
}

func (h *CouponHandler) List(c echo.Context) error {
	coupons, err := h.uc.ListCoupons(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, coupons)
}

func (h *CouponHandler) Create(c echo.Context) error {
	var input usecase.CreateCouponInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	coupon, err := h.uc.CreateCoupon(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, coupon)
}

func (h *CouponHandler) UpdateStatus(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var input usecase.CouponStatusInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	if err := h.uc.UpdateCouponStatus(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CouponHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCoupon(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
