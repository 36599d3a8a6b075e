package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// CampaignUsecase defines email templates and marketing broadcasts.
type CampaignUsecase interface {
	ListTemplates(ctx context.Context) ([]*entity.EmailTemplate, error)
	SaveTemplate(ctx context.Context, input SaveTemplateInput) (*entity.EmailTemplate, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error

	ListCampaigns(ctx context.Context) ([]*entity.Campaign, error)
	CreateCampaign(ctx context.Context, input CreateCampaignInput) (*entity.Campaign, error)
	// SendCampaign renders the campaign per recipient and publishes it in batches.
	SendCampaign(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)
	// ResumeCampaign continues a send that stopped on a publish failure.
	ResumeCampaign(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)
	// SendTestEmail delivers one rendered copy synchronously.
	SendTestEmail(ctx context.Context, id uuid.UUID, input TestEmailInput) error
}

// SaveTemplateInput creates a template, or updates it when ID is set.
type SaveTemplateInput struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	Name     string     `json:"name" validate:"required,max=150"`
	Subject  string     `json:"subject" validate:"required,max=200"`
	HTMLBody string     `json:"html_body" validate:"required"`
}

// CreateCampaignInput is a draft broadcast.
type CreateCampaignInput struct {
	Name     string          `json:"name" validate:"required,max=150"`
	Subject  string          `json:"subject" validate:"required,max=200"`
	HTMLBody string          `json:"html_body" validate:"required"`
	Audience entity.Audience `json:"audience" validate:"required"`
}

// TestEmailInput is the address a test copy goes to.
type TestEmailInput struct {
	To string `json:"to" validate:"required,email"`
}
