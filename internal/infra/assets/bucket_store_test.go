package assets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func TestBucketStore_Upload(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	store := NewBucketStore(bucket, "https://cdn.example.com/assets/")
	ctx := context.Background()

	publicURL, err := store.Upload(ctx, "/products/abc/hero image.png", "image/png", []byte("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/assets/products/abc/hero%20image.png", publicURL)

	stored, err := bucket.ReadAll(ctx, "products/abc/hero image.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)

	attrs, err := bucket.Attributes(ctx, "products/abc/hero image.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
	assert.Equal(t, cacheControl, attrs.CacheControl)
}

func TestBucketStore_UploadRequiresKey(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	_, err := NewBucketStore(bucket, "https://cdn.example.com").Upload(context.Background(), "/", "image/png", nil)

	assert.Error(t, err)
}

func TestOpenBucketByURL(t *testing.T) {
	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	defer bucket.Close()

	_, err = NewBucketStore(bucket, "https://cdn.example.com").Upload(context.Background(), "a.png", "image/png", []byte{1})
	assert.NoError(t, err)
}
