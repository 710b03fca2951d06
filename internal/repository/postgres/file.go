package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models"
	"docuvault/internal/domain/repositories"
)

const fileColumns = `id, title, description, stored_key, original_name, media_type,
		size_bytes, category, uploaded_by, department_id, status, reviewed_by,
		reviewed_at, parent_id, version_number, is_current_version, revision_notes,
		uploaded_at`

// PostgresFileRepository implements the FileRepository interface
type PostgresFileRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewFileRepository creates a new file repository
func NewFileRepository(config *RepositoryConfig) repositories.FileRepository {
	return &PostgresFileRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new file row
func (r *PostgresFileRepository) Create(ctx context.Context, file *models.File) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, description, stored_key, original_name, media_type,
			size_bytes, category, uploaded_by, department_id, status, parent_id,
			version_number, is_current_version, revision_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, uploaded_at
	`, r.tables.Files)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		file.Title,
		file.Description,
		file.StoredKey,
		file.OriginalName,
		file.MediaType,
		file.SizeBytes,
		file.Category,
		file.UploadedBy,
		file.DepartmentID,
		file.Status,
		file.ParentID,
		file.VersionNumber,
		file.IsCurrentVersion,
		file.RevisionNotes,
	).Scan(&file.ID, &file.UploadedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("file references missing record: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("create file: %w", err)
	}

	return nil
}

// GetByID retrieves a file by id
func (r *PostgresFileRepository) GetByID(ctx context.Context, id string) (*models.File, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1
	`, fileColumns, r.tables.Files)

	executor := GetExecutor(ctx, r.pool)
	file, err := scanFile(executor.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get file: %w", err)
	}

	return file, nil
}

// GetByStoredKey retrieves a file by its blob-store key
func (r *PostgresFileRepository) GetByStoredKey(ctx context.Context, key string) (*models.File, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE stored_key = $1
	`, fileColumns, r.tables.Files)

	executor := GetExecutor(ctx, r.pool)
	file, err := scanFile(executor.QueryRow(ctx, query, key))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("file with key %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get file by stored key: %w", err)
	}

	return file, nil
}

// ListChain returns the chain root and every revision pointing at it,
// newest version first
func (r *PostgresFileRepository) ListChain(ctx context.Context, rootID string) ([]*models.File, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 OR parent_id = $1
		ORDER BY version_number DESC
	`, fileColumns, r.tables.Files)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, rootID)
	if err != nil {
		return nil, fmt.Errorf("list chain: %w", err)
	}
	defer rows.Close()

	return collectFiles(rows)
}

// ClearCurrentFlags marks every member of a chain as not current
func (r *PostgresFileRepository) ClearCurrentFlags(ctx context.Context, rootID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_current_version = FALSE
		WHERE id = $1 OR parent_id = $1
	`, r.tables.Files)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, rootID); err != nil {
		return fmt.Errorf("clear current flags: %w", err)
	}

	return nil
}

// UpdateReview sets the review outcome of a file
func (r *PostgresFileRepository) UpdateReview(ctx context.Context, id string, status models.Status, reviewedBy string, reviewedAt time.Time) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, reviewed_by = $2, reviewed_at = $3
		WHERE id = $4
	`, r.tables.Files)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, status, reviewedBy, reviewedAt, id)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByUploader returns files uploaded by a user, newest first
func (r *PostgresFileRepository) ListByUploader(ctx context.Context, userID string) ([]*models.File, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE uploaded_by = $1
		ORDER BY uploaded_at DESC
	`, fileColumns, r.tables.Files)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list files by uploader: %w", err)
	}
	defer rows.Close()

	return collectFiles(rows)
}

// List returns files matching the filter, newest first
func (r *PostgresFileRepository) List(ctx context.Context, filter repositories.FileFilter) ([]*models.File, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE 1=1
	`, fileColumns, r.tables.Files)

	var args []interface{}
	if filter.DepartmentID != "" {
		args = append(args, filter.DepartmentID)
		query += fmt.Sprintf(" AND department_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY uploaded_at DESC"

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	return collectFiles(rows)
}

func scanFile(row pgx.Row) (*models.File, error) {
	var file models.File
	err := row.Scan(
		&file.ID,
		&file.Title,
		&file.Description,
		&file.StoredKey,
		&file.OriginalName,
		&file.MediaType,
		&file.SizeBytes,
		&file.Category,
		&file.UploadedBy,
		&file.DepartmentID,
		&file.Status,
		&file.ReviewedBy,
		&file.ReviewedAt,
		&file.ParentID,
		&file.VersionNumber,
		&file.IsCurrentVersion,
		&file.RevisionNotes,
		&file.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func collectFiles(rows pgx.Rows) ([]*models.File, error) {
	var files []*models.File
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read files: %w", err)
	}

	return files, nil
}
