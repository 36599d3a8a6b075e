package model

import (
	"time"

	"github.com/google/uuid"
)

// EmailTemplateModel mirrors the 'email_templates' table.
type EmailTemplateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	HTMLBody  string    `gorm:"column:html_body;type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmailTemplateModel) TableName() string {
	return "email_templates"
}

// CampaignModel mirrors the 'campaigns' table.
type CampaignModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(150);not null"`
	Subject        string    `gorm:"type:varchar(255);not null"`
	HTMLBody       string    `gorm:"column:html_body;type:text;not null"`
	Audience       string    `gorm:"type:varchar(30);not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:draft"`
	RecipientCount int       `gorm:"not null;default:0"`
	SentAt         *time.Time
	CreatedBy      uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}
