// Package mail implements the transactional email providers.
package mail

import (
	"context"
	"log/slog"

	"portal/config"
	"portal/internal/domain/constants"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
)

// NewMailer selects the provider configured by mail.provider.
func NewMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	mailCfg := cfg.Mail
	if mailCfg == nil || mailCfg.Provider == constants.MailProviderNoop {
		logger.Info("Mail provider not configured, using no-op mailer")

		return &noopMailer{logger: logger}, nil
	}

	if mailCfg.From == "" {
		return nil, errors.New("mail.from is required")
	}

	switch mailCfg.Provider {
	case constants.MailProviderAPI:
		if mailCfg.APIBaseURL == "" || mailCfg.APIKey == "" {
			return nil, errors.New("mail.apiBaseUrl and mail.apiKey are required for the api provider")
		}

		return NewAPIMailer(mailCfg, logger), nil
	case constants.MailProviderSMTP:
		if mailCfg.SMTP.Host == "" {
			return nil, errors.New("mail.smtp.host is required for the smtp provider")
		}

		return NewSMTPMailer(mailCfg, logger), nil
	default:
		return nil, errors.Errorf("unknown mail provider: %s", mailCfg.Provider)
	}
}

// noopMailer logs messages instead of sending them.
type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) Send(ctx context.Context, msg service.MailMessage) error {
	m.logger.InfoContext(ctx, "[NoopMail] Message not sent",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)

	return nil
}

func (m *noopMailer) SendBatch(ctx context.Context, msgs []service.MailMessage) error {
	if len(msgs) > service.MaxBatchSize {
		return errors.Errorf("batch of %d exceeds the provider limit of %d", len(msgs), service.MaxBatchSize)
	}

	m.logger.InfoContext(ctx, "[NoopMail] Batch not sent", slog.Int("message_count", len(msgs)))

	return nil
}
