package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/internal/domain/service"
	mockService "portal/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushHandler(t *testing.T) (*PushHandler, *mockService.MockMailer, *mockService.MockMetricsRecorder) {
	t.Helper()
	mailer := mockService.NewMockMailer(t)
	metrics := mockService.NewMockMetricsRecorder(t)

	return &PushHandler{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		mailer:  mailer,
		metrics: metrics,
	}, mailer, metrics
}

func pushBody(t *testing.T, event service.BroadcastEvent) []byte {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func servePush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

var sampleBatch = service.BroadcastEvent{
	CampaignID: "c-1",
	BatchIndex: 1,
	BatchCount: 2,
	Messages: []service.MailMessage{
		{To: "a@shop.test", Subject: "Hi", HTML: "<p>a</p>"},
		{To: "b@shop.test", Subject: "Hi", HTML: "<p>b</p>"},
	},
}

func TestHandlePush_DeliversBatch(t *testing.T) {
	h, mailer, metrics := newPushHandler(t)
	mailer.EXPECT().SendBatch(mock.Anything, sampleBatch.Messages).Return(nil).Once()
	metrics.EXPECT().BroadcastBatch(service.BatchSent).Return().Once()

	rec := servePush(h, pushBody(t, sampleBatch), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_TransientFailureIsRetried(t *testing.T) {
	h, mailer, metrics := newPushHandler(t)
	mailer.EXPECT().SendBatch(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()
	metrics.EXPECT().BroadcastBatch(service.BatchSendFailed).Return().Once()

	rec := servePush(h, pushBody(t, sampleBatch), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_PermanentFailureIsAcknowledged(t *testing.T) {
	h, mailer, metrics := newPushHandler(t)
	mailer.EXPECT().SendBatch(mock.Anything, mock.Anything).
		Return(errors.Wrap(service.ErrPermanentDelivery, "mail api status 422")).Once()
	metrics.EXPECT().BroadcastBatch(service.BatchSendFailed).Return().Once()

	rec := servePush(h, pushBody(t, sampleBatch), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_EmptyBatchSkipsMailer(t *testing.T) {
	h, _, _ := newPushHandler(t)

	rec := servePush(h, pushBody(t, service.BroadcastEvent{CampaignID: "c-1"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MalformedPayload(t *testing.T) {
	h, _, _ := newPushHandler(t)

	var msg PubSubMessage
	msg.Message.Data = "%%% not base64"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, servePush(h, body, nil).Code)
	assert.Equal(t, http.StatusBadRequest, servePush(h, []byte("{"), nil).Code)
}

func TestHandlePush_VerifiesToken(t *testing.T) {
	h, mailer, metrics := newPushHandler(t)
	h.verifyPushAuth = true
	var gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
	}

	rec := servePush(h, pushBody(t, sampleBatch), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, pushBody(t, sampleBatch), http.Header{echo.HeaderAuthorization: {"Bearer bad"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "http://example.com/push", gotAudience)

	mailer.EXPECT().SendBatch(mock.Anything, mock.Anything).Return(nil).Once()
	metrics.EXPECT().BroadcastBatch(service.BatchSent).Return().Once()
	rec = servePush(h, pushBody(t, sampleBatch), http.Header{echo.HeaderAuthorization: {"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RejectsForeignIssuer(t *testing.T) {
	h, _, _ := newPushHandler(t)
	h.verifyPushAuth = true
	h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Issuer: "https://evil.example"}, nil
	}

	rec := servePush(h, pushBody(t, sampleBatch), http.Header{echo.HeaderAuthorization: {"Bearer good"}})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
