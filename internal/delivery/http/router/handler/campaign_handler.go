package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CampaignHandler serves email templates and marketing campaigns.
type CampaignHandler struct {
	uc     usecase.CampaignUsecase
	logger *slog.Logger
}

// NewCampaignHandler is the constructor for CampaignHandler, injected by Fx.
func NewCampaignHandler(uc usecase.CampaignUsecase, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{uc: uc, logger: logger}
}

func (h *CampaignHandler) ListTemplates(c echo.Context) error {
	templates, err := h.uc.ListTemplates(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, templates)
}

func (h *CampaignHandler) CreateTemplate(c echo.Context) error {
	var input usecase.SaveTemplateInput
	if err := bindInput(c, &input); err != nil {
		return err
	}
	input.ID = nil

	tpl, err := h.uc.SaveTemplate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, tpl)
}

func (h *CampaignHandler) UpdateTemplate(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var input usecase.SaveTemplateInput
	if err := bindInput(c, &input); err != nil {
		return err
	}
	input.ID = &id

	tpl, err := h.uc.SaveTemplate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, tpl)
}

func (h *CampaignHandler) DeleteTemplate(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTemplate(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CampaignHandler) List(c echo.Context) error {
	campaigns, err := h.uc.ListCampaigns(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, campaigns)
}

func (h *CampaignHandler) Create(c echo.Context) error {
	var input usecase.CreateCampaignInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	campaign, err := h.uc.CreateCampaign(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, campaign)
}

func (h *CampaignHandler) Send(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	campaign, err := h.uc.SendCampaign(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, campaign)
}

func (h *CampaignHandler) Resume(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	campaign, err := h.uc.ResumeCampaign(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, campaign)
}

func (h *CampaignHandler) SendTest(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var input usecase.TestEmailInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	if err := h.uc.SendTestEmail(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
