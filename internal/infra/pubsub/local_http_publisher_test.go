package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishBroadcastEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.BroadcastEvent{
		RequestID:  "req-1",
		CampaignID: "campaign-1",
		BatchIndex: 1,
		BatchCount: 2,
		Messages:   []service.MailMessage{{To: "a@example.com", Subject: "Hi", HTML: "<p>Hi</p>"}},
	}

	require.NoError(t, publisher.PublishBroadcastEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "campaign-1-1", received.Message.MessageID)
	assert.Equal(t, "2", received.Message.Attributes["batch_count"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.BroadcastEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishBroadcastEvent(context.Background(), &service.BroadcastEvent{CampaignID: "c"})

	assert.ErrorContains(t, err, "503")
}
