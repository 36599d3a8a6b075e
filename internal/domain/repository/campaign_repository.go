package repository

import (
	"context"
	"time"

	"portal/internal/domain/entity"
	"portal/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for marketing persistence.
var (
	// ErrTemplateNotFound is returned when an email template is not found.
	ErrTemplateNotFound = errors.New("email template not found")
	// ErrCampaignNotFound is returned when a campaign is not found.
	ErrCampaignNotFound = errors.New("campaign not found")
)

// CampaignRepository defines the interface for template and campaign database operations.
type CampaignRepository interface {
	// ListTemplates returns every email template by name.
	ListTemplates(ctx context.Context) ([]*entity.EmailTemplate, error)

	// SaveTemplate inserts or updates a template.
	SaveTemplate(ctx context.Context, template *entity.EmailTemplate) error

	// DeleteTemplate removes a template.
	DeleteTemplate(ctx context.Context, id uuid.UUID) error

	// ListCampaigns returns every campaign, newest first.
	ListCampaigns(ctx context.Context) ([]*entity.Campaign, error)

	// FindCampaignByID retrieves a campaign.
	FindCampaignByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// CreateCampaign persists a new campaign.
	CreateCampaign(ctx context.Context, campaign *entity.Campaign) error

	// UpdateCampaignStatus records delivery progress.
	UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status entity.CampaignStatus, recipientCount int, sentAt *time.Time) error

	// FindAudienceRecipients resolves the distinct recipients of an audience at now.
	FindAudienceRecipients(ctx context.Context, audience entity.Audience, now time.Time) ([]entity.Recipient, error)
}
