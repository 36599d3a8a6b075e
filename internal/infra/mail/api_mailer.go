package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"portal/config"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
)

const maxErrorBody = 4 << 10

// apiMailer talks to a JSON transactional email API (POST /emails, POST /emails/batch).
type apiMailer struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

type apiEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// NewAPIMailer is the constructor for apiMailer.
func NewAPIMailer(cfg *config.MailConfig, logger *slog.Logger) service.Mailer {
	return &apiMailer{
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		apiKey:     cfg.APIKey,
		from:       cfg.From,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

func (m *apiMailer) Send(ctx context.Context, msg service.MailMessage) error {
	return m.post(ctx, "/emails", m.toAPIEmail(msg))
}

func (m *apiMailer) SendBatch(ctx context.Context, msgs []service.MailMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) > service.MaxBatchSize {
		return errors.Wrapf(service.ErrPermanentDelivery, "batch of %d exceeds the provider limit of %d", len(msgs), service.MaxBatchSize)
	}

	emails := make([]apiEmail, 0, len(msgs))
	for _, msg := range msgs {
		emails = append(emails, m.toAPIEmail(msg))
	}

	return m.post(ctx, "/emails/batch", emails)
}

func (m *apiMailer) toAPIEmail(msg service.MailMessage) apiEmail {
	to := msg.To
	if msg.ToName != "" {
		to = msg.ToName + " <" + msg.To + ">"
	}

	return apiEmail{
		From:    m.from,
		To:      []string{to},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}
}

// post sends payload and classifies the outcome: 4xx other than 429 is
// permanent, anything else that is not 2xx is transient.
func (m *apiMailer) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(domainerrors.ErrMailDeliveryFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	m.logger.WarnContext(ctx, "Mail API rejected request",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(detail)),
	)

	if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return errors.Wrapf(service.ErrPermanentDelivery, "mail api status %d", resp.StatusCode)
	}

	return errors.Wrapf(domainerrors.ErrMailDeliveryFailed, "mail api status %d", resp.StatusCode)
}
