package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler serves order administration.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

func (h *OrderHandler) List(c echo.Context) error {
	var input usecase.OrderListInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	page, err := h.uc.ListOrders(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, page)
}

func (h *OrderHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, detail)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var input usecase.OrderStatusInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, order)
}

func (h *OrderHandler) AddNote(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var input usecase.OrderNoteInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	note, err := h.uc.AddOrderNote(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, note)
}

func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
