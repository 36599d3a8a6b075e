package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type campaignFixture struct {
	profiles  *mockRepo.MockProfileRepository
	campaigns *mockRepo.MockCampaignRepository
	publisher *mockService.MockEventPublisher
	mailer    *mockService.MockMailer
	metrics   *mockService.MockMetricsRecorder
	routes    *mockService.MockRouteCache
	service   *campaignService
	now       time.Time
}

func newCampaignFixture(t *testing.T) *campaignFixture {
	f := &campaignFixture{
		profiles:  mockRepo.NewMockProfileRepository(t),
		campaigns: mockRepo.NewMockCampaignRepository(t),
		publisher: mockService.NewMockEventPublisher(t),
		mailer:    mockService.NewMockMailer(t),
		metrics:   mockService.NewMockMetricsRecorder(t),
		routes:    mockService.NewMockRouteCache(t),
		now:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.service = NewCampaignService(CampaignServiceParams{
		Config:    newTestConfig(),
		Gate:      newTestGate(f.profiles),
		Campaigns: f.campaigns,
		Publisher: f.publisher,
		Mailer:    f.mailer,
		Metrics:   f.metrics,
		Routes:    f.routes,
		Logger:    newDiscardLogger(),
	}).(*campaignService)
	f.service.now = func() time.Time { return f.now }

	return f
}

func recipients(n int) []entity.Recipient {
	out := make([]entity.Recipient, n)
	for i := range out {
		out[i] = entity.Recipient{Email: fmt.Sprintf("r%d@shop.test", i), Name: fmt.Sprintf("R%d", i)}
	}

	return out
}

func draftCampaign(id uuid.UUID) *entity.Campaign {
	return &entity.Campaign{
		ID:       id,
		Subject:  "Hi {{name}}",
		HTMLBody: "<p>Hello {{ name }}, your login is {{email}}</p>",
		Audience: entity.AudienceActiveSubscribers,
		Status:   entity.CampaignDraft,
	}
}

func TestCampaignService_SendCampaign_Batches(t *testing.T) {
	f := newCampaignFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
	id := uuid.New()

	f.campaigns.EXPECT().FindCampaignByID(mock.Anything, id).Return(draftCampaign(id), nil)
	f.campaigns.EXPECT().FindAudienceRecipients(mock.Anything, entity.AudienceActiveSubscribers, f.now).Return(recipients(120), nil)
	f.campaigns.EXPECT().UpdateCampaignStatus(mock.Anything, id, entity.CampaignSending, 0, (*time.Time)(nil)).Return(nil).Once()

	var sizes []int
	f.publisher.EXPECT().
		PublishBroadcastEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.BroadcastEvent) {
			assert.Equal(t, id.String(), event.CampaignID)
			assert.Equal(t, 3, event.BatchCount)
			assert.Equal(t, len(sizes), event.BatchIndex)
			sizes = append(sizes, len(event.Messages))
		}).
		Return(nil).
		Times(3)
	f.metrics.EXPECT().BroadcastBatch(service.BatchPublished).Times(3)
	f.campaigns.EXPECT().
		UpdateCampaignStatus(mock.Anything, id, entity.CampaignSent, 120, mock.AnythingOfType("*time.Time")).
		Return(nil).
		Once()
	allowInvalidate(f.routes, 1)

	campaign, err := f.service.SendCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []int{50, 50, 20}, sizes)
	assert.Equal(t, entity.CampaignSent, campaign.Status)
	assert.Equal(t, 120, campaign.RecipientCount)
	assert.Equal(t, f.now, *campaign.SentAt)
}

func TestCampaignService_SendCampaign_AlreadySent(t *testing.T) {
	for _, status := range []entity.CampaignStatus{entity.CampaignSending, entity.CampaignSent} {
		f := newCampaignFixture(t)
		ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
		id := uuid.New()
		c := draftCampaign(id)
		c.Status = status
		f.campaigns.EXPECT().FindCampaignByID(mock.Anything, id).Return(c, nil)

		_, err := f.service.SendCampaign(ctx, id)
		assert.ErrorIs(t, err, domainerrors.ErrCampaignAlreadySent, status)
	}
}

func TestCampaignService_SendCampaign_NoRecipients(t *testing.T) {
	f := newCampaignFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
	id := uuid.New()
	f.campaigns.EXPECT().FindCampaignByID(mock.Anything, id).Return(draftCampaign(id), nil)
	f.campaigns.EXPECT().FindAudienceRecipients(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	_, err := f.service.SendCampaign(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrNoRecipients)
}

func TestCampaignService_SendCampaign_PublishFailureRecordsProgress(t *testing.T) {
	f := newCampaignFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
	id := uuid.New()

	f.campaigns.EXPECT().FindCampaignByID(mock.Anything, id).Return(draftCampaign(id), nil)
	f.campaigns.EXPECT().FindAudienceRecipients(mock.Anything, mock.Anything, mock.Anything).Return(recipients(75), nil)
	f.campaigns.EXPECT().UpdateCampaignStatus(mock.Anything, id, entity.CampaignSending, 0, (*time.Time)(nil)).Return(nil).Once()
	f.publisher.EXPECT().PublishBroadcastEvent(mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishBroadcastEvent(mock.Anything, mock.Anything).Return(errors.New("topic unavailable")).Once()
	f.metrics.EXPECT().BroadcastBatch(service.BatchPublished).Once()
	f.metrics.EXPECT().BroadcastBatch(service.BatchPublishFailed).Once()
	f.campaigns.EXPECT().UpdateCampaignStatus(mock.Anything, id, entity.CampaignSending, 50, (*time.Time)(nil)).Return(nil).Once()

	_, err := f.service.SendCampaign(ctx, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch 2 of 2")
}

func TestCampaignService_ResumeCampaign_SkipsPublishedRecipients(t *testing.T) {
	f := newCampaignFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
	id := uuid.New()
	stalled := draftCampaign(id)
	stalled.Status = entity.CampaignSending
	stalled.RecipientCount = 50

	f.campaigns.EXPECT().FindCampaignByID(mock.Anything, id).Return(stalled, nil)
	f.campaigns.EXPECT().FindAudienceRecipients(mock.Anything, entity.AudienceActiveSubscribers, f.now).Return(recipients(75), nil)
	f.publisher.EXPECT().
		PublishBroadcastEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.BroadcastEvent) {
			require.Len(t, event.Messages, 25)
			assert.Equal(t, "r50@shop.test", event.Messages[0].To)
			assert.Equal(t, 1, event.BatchCount)
		}).
		Return(nil).
		Once()
	f.metrics.EXPECT().BroadcastBatch(service.BatchPublished).Once()
	f.campaigns.EXPECT().
		UpdateCampaignStatus(mock.Anything, id, entity.CampaignSent, 75, mock.AnythingOfType("*time.Time")).
		Return(nil).
		Once()
	allowInvalidate(f.routes, 1)

	campaign, err := f.service.ResumeCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignSent, campaign.Status)
	assert.Equal(t, 75, campaign.RecipientCount)
}

func TestCampaignService_ResumeCampaign_OnlyWhenSending(t *testing.T) {
	for _, status := range []entity.CampaignStatus{entity.CampaignDraft, entity.CampaignSent} {
		f := newCampaignFixture(t)
		ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
		id := uuid.New()
		c := draftCampaign(id)
		c.Status = status
		f.campaigns.EXPECT().FindCampaignByID(mock.Anything, id).Return(c, nil)

		_, err := f.service.ResumeCampaign(ctx, id)
		assert.ErrorIs(t, err, domainerrors.ErrConflict, status)
	}
}

func TestCampaignService_SendTestEmail(t *testing.T) {
	f := newCampaignFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
	id := uuid.New()
	f.campaigns.EXPECT().FindCampaignByID(mock.Anything, id).Return(draftCampaign(id), nil)
	f.mailer.EXPECT().
		Send(mock.Anything, service.MailMessage{
			To:      "me@shop.test",
			ToName:  testRecipientName,
			Subject: "[TEST] Hi Test Recipient",
			HTML:    "<p>Hello Test Recipient, your login is me@shop.test</p>",
		}).
		Return(nil)

	err := f.service.SendTestEmail(ctx, id, usecase.TestEmailInput{To: " me@shop.test "})
	assert.NoError(t, err)
}

func TestCampaignService_SendTestEmail_MailerFailure(t *testing.T) {
	f := newCampaignFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
	id := uuid.New()
	f.campaigns.EXPECT().FindCampaignByID(mock.Anything, id).Return(draftCampaign(id), nil)
	f.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("502 from provider"))

	err := f.service.SendTestEmail(ctx, id, usecase.TestEmailInput{To: "me@shop.test"})
	assert.ErrorIs(t, err, domainerrors.ErrMailDeliveryFailed)
}

func TestRenderMessage(t *testing.T) {
	msg := renderMessage(
		"Welcome {{name}}",
		"<p>{{name}} / {{ email }} / {{unknown}}</p>",
		entity.Recipient{Email: "x@shop.test", Name: `<b>"Eve"</b>`},
	)

	assert.Equal(t, `Welcome <b>"Eve"</b>`, msg.Subject)
	assert.Equal(t, "<p>&lt;b&gt;&#34;Eve&#34;&lt;/b&gt; / x@shop.test / {{unknown}}</p>", msg.HTML)

	anon := renderMessage("Hi {{name}}", "{{name}}", entity.Recipient{Email: "y@shop.test"})
	assert.Equal(t, "Hi Customer", anon.Subject)
	assert.Equal(t, "Customer", anon.HTML)
}

func TestChunkMessages(t *testing.T) {
	msgs := make([]service.MailMessage, 101)
	batches := chunkMessages(msgs, 50)
	require.Len(t, batches, 3)
	assert.Len(t, batches[2], 1)
	assert.Empty(t, chunkMessages(nil, 50))
}
