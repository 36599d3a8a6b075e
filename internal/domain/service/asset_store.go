package service

import (
	"context"
)

// AssetStore defines the interface for storing uploaded binaries.
type AssetStore interface {
	// Upload stores body under key and returns its public URL
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
}
