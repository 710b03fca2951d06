package storage

import (
	"context"
	"fmt"

	"docuvault/internal/config"
)

// FromConfig builds the blob store the configuration selects.
func FromConfig(ctx context.Context, cfg *config.Config) (BlobStore, error) {
	switch cfg.StorageBackend {
	case "disk":
		return NewDiskStore(cfg.UploadDir)
	case "b2":
		return NewB2Store(ctx, cfg.B2KeyID, cfg.B2AppKey, cfg.B2Bucket)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
