package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TeamHandler serves staff management and the audit trail.
type TeamHandler struct {
	uc     usecase.TeamUsecase
	logger *slog.Logger
}

// NewTeamHandler is the constructor for TeamHandler, injected by Fx.
func NewTeamHandler(uc usecase.TeamUsecase, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{uc: uc, logger: logger}
}

func (h *TeamHandler) List(c echo.Context) error {
	overview, err := h.uc.ListTeam(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, overview)
}

func (h *TeamHandler) Invite(c echo.Context) error {
	var input usecase.InviteMemberInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	result, err := h.uc.InviteMember(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, result)
}

func (h *TeamHandler) UpdateRole(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var input usecase.UpdateRoleInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	profile, err := h.uc.UpdateMemberRole(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, profile)
}

func (h *TeamHandler) Remove(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveMember(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AcceptInvite lets the signed-in invitee redeem their invitation token.
func (h *TeamHandler) AcceptInvite(c echo.Context) error {
	var input usecase.AcceptInviteInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	profile, err := h.uc.AcceptInvite(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, profile)
}

func (h *TeamHandler) Logs(c echo.Context) error {
	var input usecase.PageInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	page, err := h.uc.ListAdminLogs(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, page)
}
