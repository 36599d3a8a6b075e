// Package cms implements the headless CMS client over its HTTP query and mutation API.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"portal/config"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	apiVersion   = "v2021-10-21"
	maxErrorBody = 4 << 10
)

const (
	pageProjection    = `{_id, _type, "slug": slug.current, title, body}`
	productProjection = `{_id, "slug": slug.current, title, description, price, durationMonths, maxConnections, imageUrl, active}`
)

// client queries with the public read token and mutates with the write token.
type client struct {
	baseURL    string
	dataset    string
	readToken  string
	writeToken string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for the CMS client.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.ContentClient, error) {
	if cfg.CMS == nil || cfg.CMS.BaseURL == "" || cfg.CMS.Dataset == "" {
		return nil, errors.New("cms.baseUrl and cms.dataset are required")
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.CMS.BaseURL, "/"),
		dataset:    cfg.CMS.Dataset,
		readToken:  cfg.CMS.ReadToken,
		writeToken: cfg.CMS.WriteToken,
		httpClient: &http.Client{Timeout: cfg.CMS.Timeout},
		logger:     logger,
	}, nil
}

type pageDocument struct {
	ID    string    `json:"_id"`
	Type  string    `json:"_type"`
	Slug  slugField `json:"slug"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
}

type productDocument struct {
	ID             string          `json:"_id"`
	Type           string          `json:"_type,omitempty"`
	Slug           slugField       `json:"slug,omitempty"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	DurationMonths int             `json:"durationMonths"`
	MaxConnections int             `json:"maxConnections"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	Active         bool            `json:"active"`
}

// FetchPage retrieves a page or guide by slug.
func (c *client) FetchPage(ctx context.Context, slug string) (*entity.Page, error) {
	var doc *pageDocument
	query := `*[_type in ["page", "guide"] && slug.current == $slug][0]` + pageProjection
	if err := c.query(ctx, query, map[string]string{"slug": slug}, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, service.ErrContentNotFound
	}

	return doc.toDomain(), nil
}

// ListPages retrieves every document of a page type ordered by title.
func (c *client) ListPages(ctx context.Context, pageType entity.PageType) ([]*entity.Page, error) {
	var docs []pageDocument
	query := `*[_type == $type] | order(title asc)` + pageProjection
	if err := c.query(ctx, query, map[string]string{"type": string(pageType)}, &docs); err != nil {
		return nil, err
	}

	pages := make([]*entity.Page, 0, len(docs))
	for i := range docs {
		pages = append(pages, docs[i].toDomain())
	}

	return pages, nil
}

// ListProducts retrieves products ordered by price.
func (c *client) ListProducts(ctx context.Context, activeOnly bool) ([]*entity.Product, error) {
	filter := `_type == "product"`
	if activeOnly {
		filter += ` && active == true`
	}

	var docs []productDocument
	if err := c.query(ctx, `*[`+filter+`] | order(price asc)`+productProjection, nil, &docs); err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		products = append(products, docs[i].toDomain())
	}

	return products, nil
}

// CreateProduct creates a product document with a fresh id.
func (c *client) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	doc := map[string]any{
		"_id":            uuid.NewString(),
		"_type":          "product",
		"slug":           map[string]string{"_type": "slug", "current": product.Slug},
		"title":          product.Title,
		"description":    product.Description,
		"price":          json.Number(product.Price.String()),
		"durationMonths": product.DurationMonths,
		"maxConnections": product.MaxConnections,
		"active":         product.Active,
	}
	if product.ImageURL != "" {
		doc["imageUrl"] = product.ImageURL
	}

	return c.mutateProduct(ctx, map[string]any{"create": doc})
}

// PatchProduct sets only the non-nil fields of patch.
func (c *client) PatchProduct(ctx context.Context, id string, patch service.ProductPatch) (*entity.Product, error) {
	set := map[string]any{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = json.Number(patch.Price.String())
	}
	if patch.DurationMonths != nil {
		set["durationMonths"] = *patch.DurationMonths
	}
	if patch.MaxConnections != nil {
		set["maxConnections"] = *patch.MaxConnections
	}
	if patch.ImageURL != nil {
		set["imageUrl"] = *patch.ImageURL
	}
	if patch.Active != nil {
		set["active"] = *patch.Active
	}

	return c.mutateProduct(ctx, map[string]any{"patch": map[string]any{"id": id, "set": set}})
}

func (c *client) mutateProduct(ctx context.Context, mutation map[string]any) (*entity.Product, error) {
	var resp struct {
		Results []struct {
			ID       string           `json:"id"`
			Document *productDocument `json:"document"`
		} `json:"results"`
	}
	if err := c.mutate(ctx, mutation, &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 || resp.Results[0].Document == nil {
		return nil, service.ErrContentNotFound
	}

	return resp.Results[0].Document.toDomain(), nil
}

func (c *client) query(ctx context.Context, groq string, params map[string]string, dest any) error {
	values := url.Values{}
	values.Set("query", groq)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return errors.WithStack(err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/%s/data/query/%s?%s", c.baseURL, apiVersion, url.PathEscape(c.dataset), values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := c.do(req, c.readToken, &envelope); err != nil {
		return err
	}

	if err := json.Unmarshal(envelope.Result, dest); err != nil {
		return errors.Wrap(err, "failed to decode cms query result")
	}

	return nil
}

func (c *client) mutate(ctx context.Context, mutation map[string]any, dest any) error {
	body, err := json.Marshal(map[string]any{"mutations": []any{mutation}})
	if err != nil {
		return errors.WithStack(err)
	}

	endpoint := fmt.Sprintf("%s/%s/data/mutate/%s?returnDocuments=true", c.baseURL, apiVersion, url.PathEscape(c.dataset))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, c.writeToken, dest)
}

// do sends req and decodes a 2xx JSON body into dest. Transport failures and
// 5xx answers become ErrContentUnavailable; a 404 is ErrContentNotFound.
func (c *client) do(req *http.Request, token string, dest any) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(domainerrors.ErrContentUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return service.ErrContentNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.WarnContext(req.Context(), "CMS request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(detail)),
		)
		if resp.StatusCode >= 500 {
			return errors.Wrapf(domainerrors.ErrContentUnavailable, "cms status %d", resp.StatusCode)
		}

		return errors.Errorf("cms rejected request with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return errors.Wrap(err, "failed to decode cms response")
	}

	return nil
}

// slugField accepts both the projected string form and the stored {"current": ...} object.
type slugField string

func (s *slugField) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*s = slugField(plain)

		return nil
	}

	var object struct {
		Current string `json:"current"`
	}
	if err := json.Unmarshal(data, &object); err != nil {
		return errors.WithStack(err)
	}
	*s = slugField(object.Current)

	return nil
}

func (d *pageDocument) toDomain() *entity.Page {
	return &entity.Page{
		ID:    d.ID,
		Slug:  string(d.Slug),
		Title: d.Title,
		Body:  d.Body,
		Type:  entity.PageType(d.Type),
	}
}

func (d *productDocument) toDomain() *entity.Product {
	return &entity.Product{
		ID:             d.ID,
		Slug:           string(d.Slug),
		Title:          d.Title,
		Description:    d.Description,
		Price:          d.Price,
		DurationMonths: d.DurationMonths,
		MaxConnections: d.MaxConnections,
		ImageURL:       d.ImageURL,
		Active:         d.Active,
	}
}
