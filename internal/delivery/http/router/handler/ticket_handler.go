package handler

import (
	"log/slog"

	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TicketHandler serves the support desk and the customer's own tickets.
type TicketHandler struct {
	uc     usecase.TicketUsecase
	logger *slog.Logger
}

// NewTicketHandler is the constructor for TicketHandler, injected by Fx.
func NewTicketHandler(uc usecase.TicketUsecase, logger *slog.Logger) *TicketHandler {
	return &TicketHandler{uc: uc, logger: logger}
}

func (h *TicketHandler) List(c echo.Context) error {
	var input usecase.TicketListInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	page, err := h.uc.ListTickets(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, page)
}

func (h *TicketHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.uc.GetTicket(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, detail)
}

func (h *TicketHandler) Reply(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var input usecase.TicketReplyInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	msg, err := h.uc.ReplyTicket(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, msg)
}

func (h *TicketHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var input usecase.TicketUpdateInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	ticket, err := h.uc.UpdateTicket(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ticket)
}

func (h *TicketHandler) Open(c echo.Context) error {
	var input usecase.OpenTicketInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	ticket, err := h.uc.OpenTicket(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, ticket)
}

func (h *TicketHandler) ListMine(c echo.Context) error {
	var input usecase.PageInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	page, err := h.uc.ListMyTickets(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, page)
}

func (h *TicketHandler) GetMine(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	ticket, err := h.uc.GetMyTicket(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ticket)
}

func (h *TicketHandler) ReplyMine(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var input usecase.TicketReplyInput
	if err := bindInput(c, &input); err != nil {
		return err
	}
	// customers never write internal notes
	input.Internal = false

	msg, err := h.uc.ReplyMyTicket(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, msg)
}
