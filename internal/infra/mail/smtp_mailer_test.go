package mail

import (
	"context"
	"net/smtp"
	"strings"
	"testing"

	"portal/config"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestSMTPMailer(t *testing.T, fail error) (*smtpMailer, *[]sentMail) {
	t.Helper()

	mailer, ok := NewSMTPMailer(&config.MailConfig{
		From: "Portal <hello@example.com>",
		SMTP: config.SMTPConfig{Host: "smtp.example.com", Port: 2525},
	}, discardLogger()).(*smtpMailer)
	require.True(t, ok)

	var sent []sentMail
	mailer.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		if fail != nil {
			return fail
		}
		sent = append(sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})

		return nil
	}

	return mailer, &sent
}

func TestSMTPMailer_Send(t *testing.T) {
	mailer, sent := newTestSMTPMailer(t, nil)

	err := mailer.Send(context.Background(), service.MailMessage{
		To: "viewer@example.com", Subject: "Welcome\r\nBcc: victim@example.com", HTML: "<p>hi</p>",
	})

	require.NoError(t, err)
	require.Len(t, *sent, 1)
	got := (*sent)[0]
	assert.Equal(t, "smtp.example.com:2525", got.addr)
	assert.Equal(t, "hello@example.com", got.from)
	assert.Equal(t, []string{"viewer@example.com"}, got.to)
	assert.Contains(t, got.msg, "Subject: WelcomeBcc: victim@example.com\r\n")
	assert.NotContains(t, got.msg, "\r\nBcc:")
	assert.True(t, strings.HasSuffix(got.msg, "\r\n\r\n<p>hi</p>"))
}

func TestSMTPMailer_SendBatchStopsOnFailure(t *testing.T) {
	mailer, _ := newTestSMTPMailer(t, errors.New("421 service not available"))

	err := mailer.SendBatch(context.Background(), []service.MailMessage{{To: "a@example.com"}, {To: "b@example.com"}})

	assert.ErrorIs(t, err, domainerrors.ErrMailDeliveryFailed)
	assert.ErrorContains(t, err, "message 1 of 2")
}

func TestSMTPMailer_CanceledContext(t *testing.T) {
	mailer, sent := newTestSMTPMailer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mailer.Send(ctx, service.MailMessage{To: "a@example.com"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, *sent)
}

func TestBuildMessage_EncodesNonASCII(t *testing.T) {
	msg := string(buildMessage("hello@example.com", service.MailMessage{
		To: "a@example.com", ToName: "Zoë", Subject: "Grüße", HTML: "x",
	}))

	assert.Contains(t, msg, "Subject: =?utf-8?q?Gr=C3=BC=C3=9Fe?=\r\n")
	assert.Contains(t, msg, "To: =?utf-8?q?Zo=C3=AB?= <a@example.com>\r\n")
}

func TestAddressOnly(t *testing.T) {
	assert.Equal(t, "hello@example.com", addressOnly("Portal <hello@example.com>"))
	assert.Equal(t, "hello@example.com", addressOnly(" hello@example.com "))
}
