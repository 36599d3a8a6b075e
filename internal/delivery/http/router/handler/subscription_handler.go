package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubscriptionHandler serves IPTV line administration.
type SubscriptionHandler struct {
	uc     usecase.SubscriptionUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc, logger: logger}
}

func (h *SubscriptionHandler) List(c echo.Context) error {
	var input usecase.SubscriptionListInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	page, err := h.uc.ListSubscriptions(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, page)
}

// GetByOrder answers with a null payload when the order has no line yet.
func (h *SubscriptionHandler) GetByOrder(c echo.Context) error {
	orderID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	sub, err := h.uc.GetSubscriptionByOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, sub)
}

func (h *SubscriptionHandler) Create(c echo.Context) error {
	var input usecase.CreateSubscriptionInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	sub, err := h.uc.CreateSubscription(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, sub)
}

func (h *SubscriptionHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var input usecase.SubscriptionUpdateInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	sub, err := h.uc.UpdateSubscription(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, sub)
}

func (h *SubscriptionHandler) Extend(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var input usecase.ExtendSubscriptionInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	sub, err := h.uc.ExtendSubscription(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, sub)
}

func (h *SubscriptionHandler) SendCredentials(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.SendCredentials(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
