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

// PostgresDepartmentRepository implements the DepartmentRepository interface
type PostgresDepartmentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(config *RepositoryConfig) repositories.DepartmentRepository {
	return &PostgresDepartmentRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new department
func (r *PostgresDepartmentRepository) Create(ctx context.Context, dept *models.Department) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, r.tables.Departments)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, dept.Name, dept.Description).
		Scan(&dept.ID, &dept.CreatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ValidationError{
				Message: fmt.Sprintf("department '%s' already exists", dept.Name),
			}
		}
		return fmt.Errorf("create department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by id
func (r *PostgresDepartmentRepository) GetByID(ctx context.Context, id string) (*models.Department, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Departments)

	return r.scanDepartment(ctx, query, id)
}

// GetByName retrieves a department by name
func (r *PostgresDepartmentRepository) GetByName(ctx context.Context, name string) (*models.Department, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, created_at
		FROM %s
		WHERE name = $1
	`, r.tables.Departments)

	return r.scanDepartment(ctx, query, name)
}

// List returns all departments ordered by name
func (r *PostgresDepartmentRepository) List(ctx context.Context) ([]*models.Department, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, created_at
		FROM %s
		ORDER BY name
	`, r.tables.Departments)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var depts []*models.Department
	for rows.Next() {
		var dept models.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Description, &dept.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		depts = append(depts, &dept)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}

	return depts, nil
}

func (r *PostgresDepartmentRepository) scanDepartment(ctx context.Context, query string, arg interface{}) (*models.Department, error) {
	var dept models.Department
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, arg).Scan(
		&dept.ID,
		&dept.Name,
		&dept.Description,
		&dept.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("department %v: %w", arg, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get department: %w", err)
	}

	return &dept, nil
}
