package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/kurin/blazer/b2"

	"docuvault/internal/domain"
)

// B2Store is a BlobStore backed by a Backblaze B2 bucket.
type B2Store struct {
	bucket *b2.Bucket
}

// NewB2Store connects to B2 and binds the named bucket.
func NewB2Store(ctx context.Context, keyID, applicationKey, bucketName string) (*B2Store, error) {
	client, err := b2.NewClient(ctx, keyID, applicationKey)
	if err != nil {
		return nil, fmt.Errorf("create b2 client: %w", err)
	}

	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("bind b2 bucket %s: %w", bucketName, err)
	}

	return &B2Store{bucket: bucket}, nil
}

// Save streams r into the bucket under keyHint
func (s *B2Store) Save(ctx context.Context, r io.Reader, keyHint string) (string, error) {
	w := s.bucket.Object(keyHint).NewWriter(ctx)

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("upload blob %s: %w", keyHint, err)
	}

	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finish blob %s: %w", keyHint, err)
	}

	return keyHint, nil
}

// Open returns a reader over the stored bytes
func (s *B2Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if ok, err := s.Exists(ctx, key); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("blob %s: %w", key, domain.ErrNotFound)
	}

	return s.bucket.Object(key).NewReader(ctx), nil
}

// Exists reports whether a blob is stored under key
func (s *B2Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.bucket.Object(key).Attrs(ctx)
	if err != nil {
		if b2.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat blob %s: %w", key, err)
	}
	return true, nil
}

// Size returns the stored size in bytes
func (s *B2Store) Size(ctx context.Context, key string) (int64, error) {
	attrs, err := s.bucket.Object(key).Attrs(ctx)
	if err != nil {
		if b2.IsNotExist(err) {
			return 0, fmt.Errorf("blob %s: %w", key, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("stat blob %s: %w", key, err)
	}
	return attrs.Size, nil
}
