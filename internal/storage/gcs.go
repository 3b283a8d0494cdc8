package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	gcs "cloud.google.com/go/storage"

	"github.com/joshwakefield/jd-brief/internal/types"
)

// GCSStore implements Store on a Google Cloud Storage bucket.
type GCSStore struct {
	client *gcs.Client
	bucket string
	ttl    time.Duration
}

// NewGCSStore creates a store bound to a bucket. Credentials come from
// the ambient environment (service account or application default).
func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStore{
		client: client,
		bucket: bucket,
		ttl:    DefaultSignedURLTTL,
	}, nil
}

// Upload persists document bytes under key with the PDF content type.
func (s *GCSStore) Upload(ctx context.Context, key string, data []byte) (*types.ArtifactRecord, error) {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = "application/pdf"
	w.CacheControl = "no-store"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, &Error{Op: "upload", Key: key, Cause: err}
	}
	if err := w.Close(); err != nil {
		return nil, &Error{Op: "upload", Key: key, Cause: err}
	}

	now := time.Now().UTC()
	log.Printf("[storage] uploaded gs://%s/%s (%d bytes)", s.bucket, key, len(data))

	return &types.ArtifactRecord{
		StorageKey: key,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl),
	}, nil
}

// SignedURL issues a V4 read link for a stored object.
func (s *GCSStore) SignedURL(key string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.ttl
	}

	url, err := s.client.Bucket(s.bucket).SignedURL(key, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", &Error{Op: "sign", Key: key, Cause: err}
	}
	return url, nil
}

// Stream opens a stored object for reading.
func (s *GCSStore) Stream(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, &Error{Op: "read", Key: key, Cause: err}
	}
	return r, nil
}

// Delete removes a stored object.
func (s *GCSStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Bucket(s.bucket).Object(key).Delete(ctx); err != nil {
		return &Error{Op: "delete", Key: key, Cause: err}
	}
	return nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
