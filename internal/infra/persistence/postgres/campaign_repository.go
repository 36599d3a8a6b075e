package postgres

import (
	"context"
	"strings"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// campaignRepository implements the repository.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// ListTemplates returns every email template by name.
func (repo *campaignRepository) ListTemplates(ctx context.Context) ([]*entity.EmailTemplate, error) {
	var templateModels []*model.EmailTemplateModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&templateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list email templates")
	}

	templates := make([]*entity.EmailTemplate, 0, len(templateModels))
	for _, templateM := range templateModels {
		templates = append(templates, &entity.EmailTemplate{
			ID:        templateM.ID,
			Name:      templateM.Name,
			Subject:   templateM.Subject,
			HTMLBody:  templateM.HTMLBody,
			CreatedAt: templateM.CreatedAt,
			UpdatedAt: templateM.UpdatedAt,
		})
	}

	return templates, nil
}

// SaveTemplate inserts or updates a template.
func (repo *campaignRepository) SaveTemplate(ctx context.Context, template *entity.EmailTemplate) error {
	templateM := &model.EmailTemplateModel{
		ID:       template.ID,
		Name:     template.Name,
		Subject:  template.Subject,
		HTMLBody: template.HTMLBody,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "subject", "html_body", "updated_at"}),
		}).
		Create(templateM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save email template")
	}

	template.ID = templateM.ID
	template.CreatedAt = templateM.CreatedAt
	template.UpdatedAt = templateM.UpdatedAt

	return nil
}

// DeleteTemplate removes a template.
func (repo *campaignRepository) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EmailTemplateModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete email template")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTemplateNotFound
	}

	return nil
}

// ListCampaigns returns every campaign, newest first.
func (repo *campaignRepository) ListCampaigns(ctx context.Context) ([]*entity.Campaign, error) {
	var campaignModels []*model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	campaigns := make([]*entity.Campaign, 0, len(campaignModels))
	for _, campaignM := range campaignModels {
		campaigns = append(campaigns, toCampaignDomain(campaignM))
	}

	return campaigns, nil
}

// FindCampaignByID retrieves a campaign.
func (repo *campaignRepository) FindCampaignByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var campaignM model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&campaignM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}

	return toCampaignDomain(&campaignM), nil
}

// CreateCampaign persists a new campaign.
func (repo *campaignRepository) CreateCampaign(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := &model.CampaignModel{
		ID:             campaign.ID,
		Name:           campaign.Name,
		Subject:        campaign.Subject,
		HTMLBody:       campaign.HTMLBody,
		Audience:       string(campaign.Audience),
		Status:         string(campaign.Status),
		RecipientCount: campaign.RecipientCount,
		SentAt:         campaign.SentAt,
		CreatedBy:      campaign.CreatedBy,
	}

	if err := repo.db.WithContext(ctx).Create(campaignM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign")
	}

	campaign.ID = campaignM.ID
	campaign.CreatedAt = campaignM.CreatedAt

	return nil
}

// UpdateCampaignStatus records delivery progress.
func (repo *campaignRepository) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status entity.CampaignStatus, recipientCount int, sentAt *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          string(status),
			"recipient_count": recipientCount,
			"sent_at":         sentAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update campaign status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// FindAudienceRecipients resolves the distinct recipients of an audience at now.
func (repo *campaignRepository) FindAudienceRecipients(ctx context.Context, audience entity.Audience, now time.Time) ([]entity.Recipient, error) {
	db := replica(repo.db.WithContext(ctx))
	activeOwners := repo.db.Model(&model.SubscriptionModel{}).
		Select("user_id").
		Where("user_id IS NOT NULL AND status = ? AND current_period_end > ?", entity.SubscriptionActive, now)

	var query *gorm.DB
	switch audience {
	case entity.AudienceAll:
		query = db.Model(&model.ProfileModel{}).
			Select("email, COALESCE(full_name, '') AS name")
	case entity.AudienceActiveSubscribers:
		query = db.Model(&model.ProfileModel{}).
			Select("email, COALESCE(full_name, '') AS name").
			Where("id IN (?)", activeOwners)
	case entity.AudienceExpiredSubscribers:
		lapsedOwners := repo.db.Model(&model.SubscriptionModel{}).
			Select("user_id").
			Where("user_id IS NOT NULL AND (status = ? OR current_period_end <= ?)", entity.SubscriptionExpired, now)
		query = db.Model(&model.ProfileModel{}).
			Select("email, COALESCE(full_name, '') AS name").
			Where("id IN (?) AND id NOT IN (?)", lapsedOwners, activeOwners)
	case entity.AudienceCustomers:
		query = db.Model(&model.OrderModel{}).
			Select("customer_email AS email, MAX(customer_name) AS name").
			Where("payment_status = ?", entity.PaymentPaid).
			Group("customer_email")
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown audience")
	}

	// stable order lets an interrupted send resume by position
	var rows []entity.Recipient
	if err := query.Order("email").Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to resolve audience %s", audience)
	}

	return dedupeRecipients(rows), nil
}

// dedupeRecipients drops blank and case-insensitive duplicate addresses, keeping the first seen.
func dedupeRecipients(rows []entity.Recipient) []entity.Recipient {
	seen := make(map[string]struct{}, len(rows))
	recipients := make([]entity.Recipient, 0, len(rows))
	for _, row := range rows {
		key := strings.ToLower(strings.TrimSpace(row.Email))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		recipients = append(recipients, entity.Recipient{Email: strings.TrimSpace(row.Email), Name: row.Name})
	}

	return recipients
}

func toCampaignDomain(data *model.CampaignModel) *entity.Campaign {
	return &entity.Campaign{
		ID:             data.ID,
		Name:           data.Name,
		Subject:        data.Subject,
		HTMLBody:       data.HTMLBody,
		Audience:       entity.Audience(data.Audience),
		Status:         entity.CampaignStatus(data.Status),
		RecipientCount: data.RecipientCount,
		SentAt:         data.SentAt,
		CreatedBy:      data.CreatedBy,
		CreatedAt:      data.CreatedAt,
	}
}
