package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const pngContentType = "image/png"

// AccountHandler serves the signed-in customer's own records.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, logger: logger}
}

func (h *AccountHandler) GetProfile(c echo.Context) error {
	profile, err := h.uc.GetMyProfile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, profile)
}

func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var input usecase.UpdateProfileInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	profile, err := h.uc.UpdateMyProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, profile)
}

func (h *AccountHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListMyOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, orders)
}

func (h *AccountHandler) ListSubscriptions(c echo.Context) error {
	subs, err := h.uc.ListMySubscriptions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, subs)
}

// PlaylistQR returns the playlist URL of one of the caller's lines as a PNG.
func (h *AccountHandler) PlaylistQR(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.GetPlaylistQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, pngContentType, png)
}
