package service

import (
	"context"
	"log/slog"
	"strings"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models"
	"docuvault/internal/domain/repositories"
	"docuvault/internal/domain/services"
	"docuvault/internal/service/auth"
)

// commentService implements the CommentService interface
type commentService struct {
	commentRepo repositories.CommentRepository
	fileRepo    repositories.FileRepository
	authorizer  *auth.Authorizer
	logger      *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(
	commentRepo repositories.CommentRepository,
	fileRepo repositories.FileRepository,
	authorizer *auth.Authorizer,
	logger *slog.Logger,
) services.CommentService {
	return &commentService{
		commentRepo: commentRepo,
		fileRepo:    fileRepo,
		authorizer:  authorizer,
		logger:      logger,
	}
}

// AddComment appends a comment to a file the actor can access
func (s *commentService) AddComment(ctx context.Context, actorID, fileID, content string) (*models.Comment, error) {
	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	user, err := s.authorizer.RequireAccess(ctx, actorID, file)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		return nil, &domain.ValidationError{Message: "comment content is empty"}
	}

	comment := &models.Comment{
		Content: content,
		FileID:  file.ID,
		UserID:  user.ID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListComments returns a file's comments in creation order. Visibility
// follows the file itself; there is no per-comment authorization.
func (s *commentService) ListComments(ctx context.Context, actorID, fileID string) ([]*models.Comment, error) {
	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if _, err := s.authorizer.RequireAccess(ctx, actorID, file); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByFile(ctx, file.ID)
}

// CommentCount returns how many comments a file has accumulated
func (s *commentService) CommentCount(ctx context.Context, actorID, fileID string) (int, error) {
	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return 0, err
	}

	if _, err := s.authorizer.RequireAccess(ctx, actorID, file); err != nil {
		return 0, err
	}

	return s.commentRepo.CountByFile(ctx, file.ID)
}
