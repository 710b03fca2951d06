package services

import (
	"context"

	"docuvault/internal/domain/models"
)

// ReviewService drives the document review state machine.
// Both actions require the admin role.
type ReviewService interface {
	// Approve marks a document approved and records the reviewer
	Approve(ctx context.Context, actorID, fileID string) (*models.File, error)

	// Reject marks a document rejected and records the reviewer
	Reject(ctx context.Context, actorID, fileID string) (*models.File, error)
}
