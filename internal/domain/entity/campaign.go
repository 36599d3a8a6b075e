package entity

import (
	"time"

	"github.com/google/uuid"
)

// Audience selects the recipients of a campaign.
type Audience string

const (
	AudienceAll                Audience = "all"
	AudienceCustomers          Audience = "customers"
	AudienceActiveSubscribers  Audience = "active_subscribers"
	AudienceExpiredSubscribers Audience = "expired_subscribers"
)

// IsValid checks if the Audience is a known value.
func (a Audience) IsValid() bool {
	switch a {
	case AudienceAll, AudienceCustomers, AudienceActiveSubscribers, AudienceExpiredSubscribers:
		return true
	default:
		return false
	}
}

// CampaignStatus is the delivery state of a campaign.
type CampaignStatus string

const (
	CampaignDraft   CampaignStatus = "draft"
	CampaignSending CampaignStatus = "sending"
	CampaignSent    CampaignStatus = "sent"
)

// EmailTemplate is a reusable marketing body.
type EmailTemplate struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	HTMLBody  string    `json:"html_body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Campaign is a marketing broadcast.
type Campaign struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Subject        string         `json:"subject"`
	HTMLBody       string         `json:"html_body"`
	Audience       Audience       `json:"audience"`
	Status         CampaignStatus `json:"status"`
	RecipientCount int            `json:"recipient_count"`
	SentAt         *time.Time     `json:"sent_at,omitempty"`
	CreatedBy      uuid.UUID      `json:"created_by"`
	CreatedAt      time.Time      `json:"created_at"`
}

// Recipient is one addressee of a broadcast.
type Recipient struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
