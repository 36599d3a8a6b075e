package mail

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"portal/config"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// smtpMailer relays HTML messages through an SMTP server, one transaction per message.
type smtpMailer struct {
	addr     string
	auth     smtp.Auth
	from     string
	sendMail sendMailFunc
	logger   *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.MailConfig, logger *slog.Logger) service.Mailer {
	port := cfg.SMTP.Port
	if port == 0 {
		port = 587
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" && cfg.SMTP.Password != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &smtpMailer{
		addr:     net.JoinHostPort(cfg.SMTP.Host, strconv.Itoa(port)),
		auth:     auth,
		from:     cfg.From,
		sendMail: smtp.SendMail,
		logger:   logger,
	}
}

func (m *smtpMailer) Send(ctx context.Context, msg service.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	envelopeFrom := addressOnly(m.from)
	if err := m.sendMail(m.addr, m.auth, envelopeFrom, []string{msg.To}, buildMessage(m.from, msg)); err != nil {
		return errors.Wrap(domainerrors.ErrMailDeliveryFailed, err.Error())
	}

	m.logger.DebugContext(ctx, "Email sent via SMTP", slog.String("to", msg.To), slog.String("addr", m.addr))

	return nil
}

// SendBatch sends sequentially and stops at the first failure.
func (m *smtpMailer) SendBatch(ctx context.Context, msgs []service.MailMessage) error {
	if len(msgs) > service.MaxBatchSize {
		return errors.Wrapf(service.ErrPermanentDelivery, "batch of %d exceeds the provider limit of %d", len(msgs), service.MaxBatchSize)
	}

	for i, msg := range msgs {
		if err := m.Send(ctx, msg); err != nil {
			return errors.Wrapf(err, "message %d of %d", i+1, len(msgs))
		}
	}

	return nil
}

// buildMessage renders RFC 5322 headers and an HTML body. Header values are
// stripped of line breaks and non-ASCII subjects are Q-encoded.
func buildMessage(from string, msg service.MailMessage) []byte {
	to := msg.To
	if msg.ToName != "" {
		to = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", headerValue(msg.ToName)), msg.To)
	}

	var b strings.Builder
	b.WriteString("From: " + headerValue(from) + "\r\n")
	b.WriteString("To: " + headerValue(to) + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", headerValue(msg.Subject)) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.HTML)

	return []byte(b.String())
}

func headerValue(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}

// addressOnly extracts the bare address from "Name <addr>".
func addressOnly(from string) string {
	if start := strings.LastIndex(from, "<"); start >= 0 {
		if end := strings.LastIndex(from, ">"); end > start {
			return from[start+1 : end]
		}
	}

	return strings.TrimSpace(from)
}
