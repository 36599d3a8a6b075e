// Package assets stores uploaded product images in object storage.
package assets

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"portal/config"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const cacheControl = "public, max-age=31536000, immutable"

// bucketStore writes assets to a gocloud bucket and serves them from publicBaseURL.
type bucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by assets.bucketUrl (file://, gs:// or mem://).
func New(params Params) (service.AssetStore, error) {
	cfg := params.Config.Assets
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("assets.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Asset bucket opened", slog.String("bucket", cfg.BucketURL))
	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStore(bucket, cfg.PublicBaseURL), nil
}

// NewBucketStore wraps an open bucket.
func NewBucketStore(bucket *blob.Bucket, publicBaseURL string) service.AssetStore {
	return &bucketStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload writes body under key and returns the public URL of the object.
func (s *bucketStore) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", errors.New("asset key is required")
	}

	if err := s.bucket.WriteAll(ctx, key, body, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: cacheControl,
	}); err != nil {
		return "", errors.Wrapf(err, "failed to write asset %s", key)
	}

	return s.publicBaseURL + "/" + escapeKey(key), nil
}

// escapeKey escapes each path segment of key.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}
