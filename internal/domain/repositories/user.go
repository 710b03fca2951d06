package repositories

import (
	"context"

	"docuvault/internal/domain/models"
)

// UserRepository handles user persistence
type UserRepository interface {
	// Create inserts a new user; the generated id is written back
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByUsername retrieves a user by unique username
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// DepartmentRepository handles department persistence
type DepartmentRepository interface {
	// Create inserts a new department; the generated id is written back
	Create(ctx context.Context, dept *models.Department) error

	// GetByID retrieves a department by id
	GetByID(ctx context.Context, id string) (*models.Department, error)

	// GetByName retrieves a department by name
	GetByName(ctx context.Context, name string) (*models.Department, error)

	// List returns all departments
	List(ctx context.Context) ([]*models.Department, error)
}
