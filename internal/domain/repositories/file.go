package repositories

import (
	"context"
	"time"

	"docuvault/internal/domain/models"
)

// FileFilter narrows file listings. Zero values mean "no constraint".
type FileFilter struct {
	DepartmentID string
	Status       models.Status
	Category     string
}

// FileRepository handles document persistence, including the
// revision-chain queries
type FileRepository interface {
	// Create inserts a new file row; the generated id is written back
	Create(ctx context.Context, file *models.File) error

	// GetByID retrieves a file by id
	GetByID(ctx context.Context, id string) (*models.File, error)

	// GetByStoredKey retrieves a file by its blob-store key
	GetByStoredKey(ctx context.Context, key string) (*models.File, error)

	// ListChain returns the root identified by rootID plus every revision
	// pointing at it, ordered by version number descending
	ListChain(ctx context.Context, rootID string) ([]*models.File, error)

	// ClearCurrentFlags marks every member of the chain rooted at rootID
	// as not current
	ClearCurrentFlags(ctx context.Context, rootID string) error

	// UpdateReview sets the review outcome of a file
	UpdateReview(ctx context.Context, id string, status models.Status, reviewedBy string, reviewedAt time.Time) error

	// ListByUploader returns files uploaded by a user, newest first
	ListByUploader(ctx context.Context, userID string) ([]*models.File, error)

	// List returns files matching the filter, newest first
	List(ctx context.Context, filter FileFilter) ([]*models.File, error)
}
