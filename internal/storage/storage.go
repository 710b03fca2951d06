package storage

import (
	"context"
	"io"
)

// BlobStore persists uploaded bytes under caller-supplied keys. Keys are
// random unique tokens generated by the caller, never derived from the
// uploaded filename; the original filename is kept in the database for
// display and download headers.
type BlobStore interface {
	// Save writes r under keyHint and returns the key the bytes were
	// stored under
	Save(ctx context.Context, r io.Reader, keyHint string) (string, error)

	// Open returns a reader over the stored bytes. The caller must close it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether a blob is stored under key
	Exists(ctx context.Context, key string) (bool, error)

	// Size returns the stored size in bytes
	Size(ctx context.Context, key string) (int64, error)
}
