package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models"
	"docuvault/internal/domain/repositories"
	"docuvault/internal/domain/services"
	"docuvault/internal/service/auth"
)

// reviewService implements the ReviewService interface
type reviewService struct {
	fileRepo   repositories.FileRepository
	authorizer *auth.Authorizer
	logger     *slog.Logger
}

// NewReviewService creates a new review service
func NewReviewService(
	fileRepo repositories.FileRepository,
	authorizer *auth.Authorizer,
	logger *slog.Logger,
) services.ReviewService {
	return &reviewService{
		fileRepo:   fileRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

// Approve marks a document approved and records the reviewer
func (s *reviewService) Approve(ctx context.Context, actorID, fileID string) (*models.File, error) {
	return s.review(ctx, actorID, fileID, models.StatusApproved)
}

// Reject marks a document rejected and records the reviewer
func (s *reviewService) Reject(ctx context.Context, actorID, fileID string) (*models.File, error) {
	return s.review(ctx, actorID, fileID, models.StatusRejected)
}

// review runs one state-machine transition. Re-approving or
// re-rejecting is an explicit admin action and overwrites the review
// metadata; nothing ever moves back to pending. Superseded versions
// stay reviewable.
func (s *reviewService) review(ctx context.Context, actorID, fileID string, target models.Status) (*models.File, error) {
	reviewer, err := s.authorizer.RequireReviewer(ctx, actorID)
	if err != nil {
		return nil, err
	}

	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if !file.Status.CanTransitionTo(target) {
		return nil, &domain.InvalidTransitionError{
			Message: fmt.Sprintf("cannot move file %s from %s to %s", file.ID, file.Status, target),
		}
	}

	now := time.Now().UTC()
	if err := s.fileRepo.UpdateReview(ctx, file.ID, target, reviewer.ID, now); err != nil {
		return nil, err
	}

	file.Status = target
	file.ReviewedBy = &reviewer.ID
	file.ReviewedAt = &now

	s.logger.Info("file reviewed",
		"file_id", file.ID,
		"status", target,
		"reviewed_by", reviewer.ID,
	)

	return file, nil
}
