package cms

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
	"portal/internal/domain/entity"
	"portal/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) service.ContentClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.Config{CMS: &config.CMSConfig{
		BaseURL:    server.URL,
		Dataset:    "production",
		ReadToken:  "read-token",
		WriteToken: "write-token",
		Timeout:    time.Second,
	}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestClient_FetchPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2021-10-21/data/query/production", r.URL.Path)
		assert.Equal(t, "Bearer read-token", r.Header.Get("Authorization"))
		assert.Equal(t, `"install-firestick"`, r.URL.Query().Get("$slug"))
		assert.Contains(t, r.URL.Query().Get("query"), "slug.current == $slug")

		_, _ = w.Write([]byte(`{"result":{"_id":"p1","_type":"guide","slug":"install-firestick","title":"Firestick","body":"Step 1"}}`))
	})

	page, err := client.FetchPage(context.Background(), "install-firestick")

	require.NoError(t, err)
	assert.Equal(t, &entity.Page{ID: "p1", Slug: "install-firestick", Title: "Firestick", Body: "Step 1", Type: entity.PageTypeGuide}, page)
}

func TestClient_FetchPage_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result":null}`))
	})

	page, err := client.FetchPage(context.Background(), "missing")

	assert.Nil(t, page)
	assert.ErrorIs(t, err, service.ErrContentNotFound)
}

func TestClient_ListProducts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("query"), "active == true")

		_, _ = w.Write([]byte(`{"result":[{"_id":"a","slug":"monthly","title":"Monthly","price":9.99,"durationMonths":1,"maxConnections":1,"active":true}]}`))
	})

	products, err := client.ListProducts(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "monthly", products[0].Slug)
	assert.True(t, decimal.RequireFromString("9.99").Equal(products[0].Price))
}

func TestClient_PatchProduct(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2021-10-21/data/mutate/production", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("returnDocuments"))
		assert.Equal(t, "Bearer write-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		_, _ = w.Write([]byte(`{"results":[{"id":"a","document":{"_id":"a","_type":"product","slug":{"_type":"slug","current":"yearly"},"title":"Yearly","price":79,"durationMonths":12,"maxConnections":2,"active":false}}]}`))
	})

	price := decimal.NewFromInt(79)
	active := false
	product, err := client.PatchProduct(context.Background(), "a", service.ProductPatch{Price: &price, Active: &active})

	require.NoError(t, err)
	assert.Equal(t, "yearly", product.Slug)
	assert.False(t, product.Active)

	mutations := body["mutations"].([]any)
	patch := mutations[0].(map[string]any)["patch"].(map[string]any)
	assert.Equal(t, "a", patch["id"])
	assert.Equal(t, map[string]any{"price": float64(79), "active": false}, patch["set"])
}

func TestClient_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ListPages(context.Background(), entity.PageTypeGuide)

	assert.ErrorIs(t, err, domainerrors.ErrContentUnavailable)
}

func TestNewClient_RequiresConfig(t *testing.T) {
	_, err := NewClient(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Error(t, err)
}
