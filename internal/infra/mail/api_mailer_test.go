package mail

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portal/config"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAPIMailer(url string) service.Mailer {
	return NewAPIMailer(&config.MailConfig{
		APIBaseURL: url + "/",
		APIKey:     "re_test",
		From:       "Portal <hello@example.com>",
		Timeout:    time.Second,
	}, discardLogger())
}

func TestAPIMailer_Send(t *testing.T) {
	var got apiEmail
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestAPIMailer(server.URL).Send(context.Background(), service.MailMessage{
		To: "viewer@example.com", ToName: "Viewer", Subject: "Your credentials", HTML: "<p>hi</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, apiEmail{
		From:    "Portal <hello@example.com>",
		To:      []string{"Viewer <viewer@example.com>"},
		Subject: "Your credentials",
		HTML:    "<p>hi</p>",
	}, got)
}

func TestAPIMailer_SendBatch(t *testing.T) {
	var got []apiEmail
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails/batch", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	msgs := []service.MailMessage{
		{To: "a@example.com", Subject: "s", HTML: "a"},
		{To: "b@example.com", Subject: "s", HTML: "b"},
	}
	require.NoError(t, newTestAPIMailer(server.URL).SendBatch(context.Background(), msgs))
	assert.Len(t, got, 2)
	assert.Equal(t, []string{"b@example.com"}, got[1].To)
}

func TestAPIMailer_SendBatchTooLarge(t *testing.T) {
	msgs := make([]service.MailMessage, service.MaxBatchSize+1)

	err := newTestAPIMailer("http://unused.invalid").SendBatch(context.Background(), msgs)

	assert.ErrorIs(t, err, service.ErrPermanentDelivery)
}

func TestAPIMailer_StatusClassification(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		permanent bool
	}{
		{name: "bad request", status: http.StatusBadRequest, permanent: true},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, permanent: true},
		{name: "rate limited", status: http.StatusTooManyRequests, permanent: false},
		{name: "server error", status: http.StatusBadGateway, permanent: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			}))
			defer server.Close()

			err := newTestAPIMailer(server.URL).Send(context.Background(), service.MailMessage{To: "a@example.com"})

			require.Error(t, err)
			assert.Equal(t, tc.permanent, errors.Is(err, service.ErrPermanentDelivery))
			if !tc.permanent {
				assert.ErrorIs(t, err, domainerrors.ErrMailDeliveryFailed)
			}
		})
	}
}

func TestNewMailer(t *testing.T) {
	mailer, err := NewMailer(&config.Config{Mail: &config.MailConfig{}}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, mailer)

	_, err = NewMailer(&config.Config{Mail: &config.MailConfig{Provider: "api", From: "a@example.com"}}, discardLogger())
	assert.Error(t, err)

	_, err = NewMailer(&config.Config{Mail: &config.MailConfig{Provider: "pigeon", From: "a@example.com"}}, discardLogger())
	assert.Error(t, err)

	mailer, err = NewMailer(&config.Config{Mail: &config.MailConfig{
		Provider: "smtp", From: "a@example.com", SMTP: config.SMTPConfig{Host: "localhost"},
	}}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &smtpMailer{}, mailer)
}
