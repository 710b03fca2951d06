package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"docuvault/internal/domain"
)

// DiskStore is a BlobStore backed by a local directory, one file per key.
type DiskStore struct {
	root string
}

// NewDiskStore creates the storage directory if needed and returns a
// store rooted there.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &DiskStore{root: root}, nil
}

// Save writes r to a file named by keyHint. The key must be fresh;
// overwriting an existing blob is refused.
func (s *DiskStore) Save(ctx context.Context, r io.Reader, keyHint string) (string, error) {
	path, err := s.path(keyHint)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create blob %s: %w", keyHint, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write blob %s: %w", keyHint, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close blob %s: %w", keyHint, err)
	}

	return keyHint, nil
}

// Open returns a reader over the stored bytes
func (s *DiskStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("blob %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("open blob %s: %w", key, err)
	}

	return f, nil
}

// Exists reports whether a blob is stored under key
func (s *DiskStore) Exists(ctx context.Context, key string) (bool, error) {
	path, err := s.path(key)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat blob %s: %w", key, err)
	}

	return true, nil
}

// Size returns the stored size in bytes
func (s *DiskStore) Size(ctx context.Context, key string) (int64, error) {
	path, err := s.path(key)
	if err != nil {
		return 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("blob %s: %w", key, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("stat blob %s: %w", key, err)
	}

	return info.Size(), nil
}

// path rejects keys that would escape the storage root
func (s *DiskStore) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) {
		return "", &domain.ValidationError{
			Message: fmt.Sprintf("invalid blob key %q", key),
		}
	}
	return filepath.Join(s.root, key), nil
}
