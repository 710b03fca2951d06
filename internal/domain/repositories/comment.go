package repositories

import (
	"context"

	"docuvault/internal/domain/models"
)

// CommentRepository handles the append-only comment ledger
type CommentRepository interface {
	// Create appends a comment; the generated id is written back
	Create(ctx context.Context, comment *models.Comment) error

	// ListByFile returns a file's comments in creation order
	ListByFile(ctx context.Context, fileID string) ([]*models.Comment, error)

	// CountByFile returns the number of comments on a file
	CountByFile(ctx context.Context, fileID string) (int, error)
}
