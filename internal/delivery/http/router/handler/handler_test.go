package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portal/config"
	"portal/internal/analytics"
	"portal/internal/delivery/http/middleware"
	"portal/internal/delivery/http/response"
	"portal/internal/delivery/http/validator"
	domainerrors "portal/internal/domain/errors"
	mockUsecase "portal/internal/mocks/usecase"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestEcho wires the validator and error envelope the server uses.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger, &config.Config{}).HandleHTTPError

	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestCouponHandler_Validate(t *testing.T) {
	uc := mockUsecase.NewMockCouponUsecase(t)
	h := NewCouponHandler(uc, discardLogger)
	e := newTestEcho()
	e.POST("/coupons/validate", h.Validate)

	uc.EXPECT().ValidateCoupon(mock.Anything, mock.MatchedBy(func(in usecase.ValidateCouponInput) bool {
		return in.Code == "SPRING10" && in.Amount.Equal(decimal.RequireFromString("49.99"))
	})).Return(&usecase.CouponQuote{
		Code:        "SPRING10",
		Discount:    decimal.RequireFromString("5"),
		FinalAmount: decimal.RequireFromString("44.99"),
	}, nil).Once()

	rec := serve(e, http.MethodPost, "/coupons/validate", `{"code":"SPRING10","amount":"49.99"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)
	assert.Contains(t, rec.Body.String(), `"final_amount":"44.99"`)
}

func TestCouponHandler_ValidateRejectsMissingCode(t *testing.T) {
	h := NewCouponHandler(mockUsecase.NewMockCouponUsecase(t), discardLogger)
	e := newTestEcho()
	e.POST("/coupons/validate", h.Validate)

	rec := serve(e, http.MethodPost, "/coupons/validate", `{"amount":"10"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Error.Details, "code (required)")
}

func TestCouponHandler_MalformedBody(t *testing.T) {
	h := NewCouponHandler(mockUsecase.NewMockCouponUsecase(t), discardLogger)
	e := newTestEcho()
	e.POST("/coupons/validate", h.Validate)

	rec := serve(e, http.MethodPost, "/coupons/validate", `{"code":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "malformed request body", decodeEnvelope(t, rec).Error.Details)
}

func TestOrderHandler_GetRejectsBadID(t *testing.T) {
	h := NewOrderHandler(mockUsecase.NewMockOrderUsecase(t), discardLogger)
	e := newTestEcho()
	e.GET("/orders/:id", h.Get)

	rec := serve(e, http.MethodGet, "/orders/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_ListBindsQuery(t *testing.T) {
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, discardLogger)
	e := newTestEcho()
	e.GET("/orders", h.List)

	uc.EXPECT().ListOrders(mock.Anything, mock.MatchedBy(func(in usecase.OrderListInput) bool {
		return in.Page == 2 && in.PageSize == 10 && in.PaymentStatus == "paid" && in.Search == "1042"
	})).Return(&usecase.OrderPage{PageMeta: usecase.PageMeta{Page: 2, PageSize: 10}}, nil).Once()

	rec := serve(e, http.MethodGet, "/orders?page=2&page_size=10&payment_status=paid&search=1042", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_ListRejectsOversizedPage(t *testing.T) {
	h := NewOrderHandler(mockUsecase.NewMockOrderUsecase(t), discardLogger)
	e := newTestEcho()
	e.GET("/orders", h.List)

	rec := serve(e, http.MethodGet, "/orders?page_size=1000", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_DeleteSurfacesGate(t *testing.T) {
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, discardLogger)
	e := newTestEcho()
	e.DELETE("/orders/:id", h.Delete)

	id := uuid.New()
	uc.EXPECT().DeleteOrder(mock.Anything, id).Return(domainerrors.ErrUnauthorized).Once()

	rec := serve(e, http.MethodDelete, "/orders/"+id.String(), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeEnvelope(t, rec).Error.Code)
}

func TestAccountHandler_PlaylistQR(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, discardLogger)
	e := newTestEcho()
	e.GET("/subscriptions/:id/qr", h.PlaylistQR)

	id := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\n")
	uc.EXPECT().GetPlaylistQR(mock.Anything, id).Return(png, nil).Once()

	rec := serve(e, http.MethodGet, "/subscriptions/"+id.String()+"/qr", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestTicketHandler_ReplyMineDropsInternalFlag(t *testing.T) {
	uc := mockUsecase.NewMockTicketUsecase(t)
	h := NewTicketHandler(uc, discardLogger)
	e := newTestEcho()
	e.POST("/tickets/:id/messages", h.ReplyMine)

	id := uuid.New()
	uc.EXPECT().ReplyMyTicket(mock.Anything, id, usecase.TicketReplyInput{Body: "still buffering"}).
		Return(nil, nil).Once()

	rec := serve(e, http.MethodPost, "/tickets/"+id.String()+"/messages", `{"body":"still buffering","internal":true}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCampaignHandler_UpdateTemplateUsesPathID(t *testing.T) {
	uc := mockUsecase.NewMockCampaignUsecase(t)
	h := NewCampaignHandler(uc, discardLogger)
	e := newTestEcho()
	e.PUT("/email-templates/:id", h.UpdateTemplate)

	id := uuid.New()
	uc.EXPECT().SaveTemplate(mock.Anything, mock.MatchedBy(func(in usecase.SaveTemplateInput) bool {
		return in.ID != nil && *in.ID == id && in.Name == "Welcome"
	})).Return(nil, nil).Once()

	rec := serve(e, http.MethodPut, "/email-templates/"+id.String(),
		`{"id":"`+uuid.NewString()+`","name":"Welcome","subject":"Hi","html_body":"<p>Hi</p>"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboardHandler_PassesGranularity(t *testing.T) {
	uc := mockUsecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(uc, discardLogger)
	e := newTestEcho()
	e.GET("/dashboard", h.Get)

	uc.EXPECT().GetDashboard(mock.Anything, "monthly").
		Return(&analytics.DashboardStats{Degraded: true, FailedSources: []string{"tickets"}}, nil).Once()

	rec := serve(e, http.MethodGet, "/dashboard?granularity=monthly", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"degraded":true`)
}

func TestTeamHandler_InviteValidatesEmail(t *testing.T) {
	h := NewTeamHandler(mockUsecase.NewMockTeamUsecase(t), discardLogger)
	e := newTestEcho()
	e.POST("/team/invites", h.Invite)

	rec := serve(e, http.MethodPost, "/team/invites", `{"email":"nope","role":"admin"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "email (email)")
}

func TestTeamHandler_AcceptInvite(t *testing.T) {
	uc := mockUsecase.NewMockTeamUsecase(t)
	uc.EXPECT().AcceptInvite(mock.Anything, usecase.AcceptInviteInput{Token: "tok-123"}).
		Return(nil, domainerrors.ErrInviteExpired)
	h := NewTeamHandler(uc, discardLogger)
	e := newTestEcho()
	e.POST("/team-invites/accept", h.AcceptInvite)

	rec := serve(e, http.MethodPost, "/team-invites/accept", `{"token":"tok-123"}`)
	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, "INVITE_EXPIRED", decodeEnvelope(t, rec).Error.Code)

	rec = serve(e, http.MethodPost, "/team-invites/accept", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
