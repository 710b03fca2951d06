package services

import (
	"context"

	"docuvault/internal/domain/models"
)

// CommentService handles the append-only comment ledger
type CommentService interface {
	// AddComment appends a comment to a file the actor can access.
	// Blank content is a validation failure; no row is written.
	AddComment(ctx context.Context, actorID, fileID, content string) (*models.Comment, error)

	// ListComments returns a file's comments in creation order
	ListComments(ctx context.Context, actorID, fileID string) ([]*models.Comment, error)

	// CommentCount returns the number of comments on a file
	CommentCount(ctx context.Context, actorID, fileID string) (int, error)
}
