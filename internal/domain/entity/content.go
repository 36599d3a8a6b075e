package entity

import "github.com/shopspring/decimal"

// PageType distinguishes static pages from installation guides.
type PageType string

const (
	PageTypePage  PageType = "page"
	PageTypeGuide PageType = "guide"
)

// Page is a CMS document rendered on the public site.
type Page struct {
	ID    string   `json:"id"`
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Type  PageType `json:"type"`
}

// Product is a purchasable plan managed in the CMS.
type Product struct {
	ID             string          `json:"id"`
	Slug           string          `json:"slug"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	DurationMonths int             `json:"duration_months"`
	MaxConnections int             `json:"max_connections"`
	ImageURL       string          `json:"image_url,omitempty"`
	Active         bool            `json:"active"`
}
