package impl

import (
	"context"
	"html"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	testSubjectPrefix = "[TEST] "
	fallbackGreeting  = "Customer"
	testRecipientName = "Test Recipient"
	placeholderName   = "name"
	placeholderEmail  = "email"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*(name|email)\s*\}\}`)

// CampaignServiceParams holds dependencies for campaignService, injected by Fx.
type CampaignServiceParams struct {
	fx.In

	Config    *config.Config
	Gate      usecase.RoleGate
	Campaigns repository.CampaignRepository
	Publisher service.EventPublisher
	Mailer    service.Mailer
	Metrics   service.MetricsRecorder
	Routes    service.RouteCache
	Logger    *slog.Logger
}

// campaignService implements the CampaignUsecase interface.
type campaignService struct {
	gate      usecase.RoleGate
	campaigns repository.CampaignRepository
	publisher service.EventPublisher
	mailer    service.Mailer
	metrics   service.MetricsRecorder
	routes    service.RouteCache
	logger    *slog.Logger
	batchSize int
	now       func() time.Time
}

// NewCampaignService is the constructor for campaignService.
func NewCampaignService(params CampaignServiceParams) usecase.CampaignUsecase {
	batchSize := service.MaxBatchSize
	if params.Config.Mail != nil && params.Config.Mail.BatchSize > 0 && params.Config.Mail.BatchSize < batchSize {
		batchSize = params.Config.Mail.BatchSize
	}

	return &campaignService{
		gate:      params.Gate,
		campaigns: params.Campaigns,
		publisher: params.Publisher,
		mailer:    params.Mailer,
		metrics:   params.Metrics,
		routes:    params.Routes,
		logger:    params.Logger,
		batchSize: batchSize,
		now:       time.Now,
	}
}

func (srv *campaignService) ListTemplates(ctx context.Context) ([]*entity.EmailTemplate, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}

	templates, err := srv.campaigns.ListTemplates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list templates")
	}

	return templates, nil
}

func (srv *campaignService) SaveTemplate(ctx context.Context, input usecase.SaveTemplateInput) (*entity.EmailTemplate, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.HTMLBody) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name, subject and body are required")
	}

	template := &entity.EmailTemplate{
		Name:     strings.TrimSpace(input.Name),
		Subject:  input.Subject,
		HTMLBody: input.HTMLBody,
	}
	if input.ID != nil {
		template.ID = *input.ID
	}
	if err := srv.campaigns.SaveTemplate(ctx, template); err != nil {
		return nil, errors.Wrap(err, "failed to save template")
	}

	srv.afterChange(ctx)

	return template, nil
}

func (srv *campaignService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return err
	}

	if err := srv.campaigns.DeleteTemplate(ctx, id); err != nil {
		return notFound(err, repository.ErrTemplateNotFound, "template")
	}

	srv.afterChange(ctx)

	return nil
}

func (srv *campaignService) ListCampaigns(ctx context.Context) ([]*entity.Campaign, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}

	campaigns, err := srv.campaigns.ListCampaigns(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	return campaigns, nil
}

// CreateCampaign stores a draft. Nothing is sent until SendCampaign.
func (srv *campaignService) CreateCampaign(ctx context.Context, input usecase.CreateCampaignInput) (*entity.Campaign, error) {
	principal, err := srv.gate.AssertAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if !input.Audience.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown audience")
	}
	if strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.HTMLBody) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("subject and body are required")
	}

	campaign := &entity.Campaign{
		Name:      strings.TrimSpace(input.Name),
		Subject:   input.Subject,
		HTMLBody:  input.HTMLBody,
		Audience:  input.Audience,
		Status:    entity.CampaignDraft,
		CreatedBy: principal.UserID,
	}
	if err := srv.campaigns.CreateCampaign(ctx, campaign); err != nil {
		return nil, errors.Wrap(err, "failed to create campaign")
	}

	srv.afterChange(ctx)

	return campaign, nil
}

// SendCampaign renders one message per recipient and publishes them in
// batches. A publish failure stops the run and leaves the campaign in
// sending with the number of messages already handed over, so it cannot be
// sent twice. ResumeCampaign picks it up from there.
func (srv *campaignService) SendCampaign(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}

	campaign, err := srv.campaigns.FindCampaignByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrCampaignNotFound, "campaign")
	}
	if campaign.Status != entity.CampaignDraft {
		return nil, domainerrors.ErrCampaignAlreadySent
	}

	recipients, err := srv.campaigns.FindAudienceRecipients(ctx, campaign.Audience, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve audience")
	}
	if len(recipients) == 0 {
		return nil, domainerrors.ErrNoRecipients
	}

	if err := srv.campaigns.UpdateCampaignStatus(ctx, id, entity.CampaignSending, 0, nil); err != nil {
		return nil, notFound(err, repository.ErrCampaignNotFound, "campaign")
	}

	return srv.publishFrom(ctx, campaign, recipients, 0)
}

// ResumeCampaign continues a campaign stuck in sending. Recipients come back
// ordered by email, so the first RecipientCount of them were already
// published and are skipped.
func (srv *campaignService) ResumeCampaign(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}

	campaign, err := srv.campaigns.FindCampaignByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrCampaignNotFound, "campaign")
	}
	if campaign.Status != entity.CampaignSending {
		return nil, domainerrors.ErrConflict.WrapMessage("only a campaign stuck in sending can be resumed")
	}

	recipients, err := srv.campaigns.FindAudienceRecipients(ctx, campaign.Audience, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve audience")
	}

	return srv.publishFrom(ctx, campaign, recipients, min(campaign.RecipientCount, len(recipients)))
}

// publishFrom publishes recipients[start:] and marks the campaign sent.
func (srv *campaignService) publishFrom(ctx context.Context, campaign *entity.Campaign, recipients []entity.Recipient, start int) (*entity.Campaign, error) {
	id := campaign.ID
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("campaign_id", id.String()))
	logger.Info("Sending campaign",
		slog.Int("recipients", len(recipients)),
		slog.Int("already_published", start),
		slog.String("audience", string(campaign.Audience)),
	)

	messages := make([]service.MailMessage, 0, len(recipients)-start)
	for _, r := range recipients[start:] {
		messages = append(messages, renderMessage(campaign.Subject, campaign.HTMLBody, r))
	}

	batches := chunkMessages(messages, srv.batchSize)
	published := start
	for i, batch := range batches {
		event := &service.BroadcastEvent{
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			CampaignID: id.String(),
			BatchIndex: i,
			BatchCount: len(batches),
			Messages:   batch,
		}
		if err := srv.publisher.PublishBroadcastEvent(ctx, event); err != nil {
			srv.metrics.BroadcastBatch(service.BatchPublishFailed)
			logger.Error("Failed to publish campaign batch", slog.Int("batch_index", i), slog.Any("error", err))
			if updateErr := srv.campaigns.UpdateCampaignStatus(ctx, id, entity.CampaignSending, published, nil); updateErr != nil {
				logger.Error("Failed to record campaign progress", slog.Any("error", updateErr))
			}

			return nil, errors.Wrapf(err, "failed to publish batch %d of %d", i+1, len(batches))
		}
		srv.metrics.BroadcastBatch(service.BatchPublished)
		published += len(batch)
	}

	sentAt := srv.now()
	if err := srv.campaigns.UpdateCampaignStatus(ctx, id, entity.CampaignSent, published, &sentAt); err != nil {
		return nil, errors.Wrap(err, "failed to mark campaign sent")
	}

	campaign.Status = entity.CampaignSent
	campaign.RecipientCount = published
	campaign.SentAt = &sentAt

	logger.Info("Campaign published", slog.Int("batches", len(batches)), slog.Int("messages", published))
	srv.afterChange(ctx)

	return campaign, nil
}

// SendTestEmail delivers one copy of the campaign directly through the mailer.
func (srv *campaignService) SendTestEmail(ctx context.Context, id uuid.UUID, input usecase.TestEmailInput) error {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return err
	}
	to := strings.TrimSpace(input.To)
	if to == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("recipient is required")
	}

	campaign, err := srv.campaigns.FindCampaignByID(ctx, id)
	if err != nil {
		return notFound(err, repository.ErrCampaignNotFound, "campaign")
	}

	msg := renderMessage(campaign.Subject, campaign.HTMLBody, entity.Recipient{Email: to, Name: testRecipientName})
	msg.Subject = testSubjectPrefix + msg.Subject
	if err := srv.mailer.Send(ctx, msg); err != nil {
		return mailFailure(err, "failed to send test email")
	}

	return nil
}

func (srv *campaignService) afterChange(ctx context.Context) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	invalidateRoutes(ctx, srv.routes, logger, pathAdminMarketing)
}

// renderMessage substitutes {{name}} and {{email}}. Values are escaped in the
// HTML body and inserted verbatim in the subject.
func renderMessage(subject, body string, r entity.Recipient) service.MailMessage {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = fallbackGreeting
	}
	values := map[string]string{placeholderName: name, placeholderEmail: r.Email}

	return service.MailMessage{
		To:      r.Email,
		ToName:  r.Name,
		Subject: substitute(subject, values, false),
		HTML:    substitute(body, values, true),
	}
}

func substitute(tmpl string, values map[string]string, escape bool) string {
	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		key := placeholderPattern.FindStringSubmatch(match)[1]
		if escape {
			return html.EscapeString(values[key])
		}

		return values[key]
	})
}

func chunkMessages(messages []service.MailMessage, size int) [][]service.MailMessage {
	if size <= 0 {
		size = service.MaxBatchSize
	}

	batches := make([][]service.MailMessage, 0, (len(messages)+size-1)/size)
	for start := 0; start < len(messages); start += size {
		end := min(start+size, len(messages))
		batches = append(batches, messages[start:end])
	}

	return batches
}
