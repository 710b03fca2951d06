package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models"
	"docuvault/internal/domain/repositories"
)

// PostgresCommentRepository implements the CommentRepository interface
type PostgresCommentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(config *RepositoryConfig) repositories.CommentRepository {
	return &PostgresCommentRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create appends a comment
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (content, file_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, r.tables.Comments)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		comment.Content,
		comment.FileID,
		comment.UserID,
	).Scan(&comment.ID, &comment.CreatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("comment references missing record: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

// ListByFile returns a file's comments in creation order
func (r *PostgresCommentRepository) ListByFile(ctx context.Context, fileID string) ([]*models.Comment, error) {
	query := fmt.Sprintf(`
		SELECT id, content, file_id, user_id, created_at
		FROM %s
		WHERE file_id = $1
		ORDER BY created_at
	`, r.tables.Comments)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, fileID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.Content,
			&comment.FileID,
			&comment.UserID,
			&comment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}

	return comments, nil
}

// CountByFile returns the number of comments on a file
func (r *PostgresCommentRepository) CountByFile(ctx context.Context, fileID string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE file_id = $1`, r.tables.Comments)

	var count int
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, fileID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}

	return count, nil
}
