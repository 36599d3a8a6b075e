package service

import (
	"context"

	"portal/internal/errors"
)

// MaxBatchSize is the largest batch the transactional email provider accepts.
const MaxBatchSize = 50

// MailMessage is a rendered email.
type MailMessage struct {
	To      string `json:"to"`
	ToName  string `json:"to_name,omitempty"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Mailer defines the interface for the transactional email provider
type Mailer interface {
	// Send delivers a single message
	Send(ctx context.Context, msg MailMessage) error

	// SendBatch delivers up to MaxBatchSize messages in one provider call
	SendBatch(ctx context.Context, msgs []MailMessage) error
}

// ErrPermanentDelivery marks a message the provider rejected outright. Retrying
// it will not help; every other Mailer error is treated as transient.
var ErrPermanentDelivery = errors.New("mail rejected by provider")
