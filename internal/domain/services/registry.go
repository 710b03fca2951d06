package services

import (
	"context"

	"docuvault/internal/domain/models"
)

// RegistryService provisions and looks up users and departments.
// Records are never deleted; a user belongs to exactly one department.
type RegistryService interface {
	// CreateDepartment provisions a new department
	CreateDepartment(ctx context.Context, req *CreateDepartmentRequest) (*models.Department, error)

	// CreateUser provisions a new user in an existing department
	CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error)

	// GetUser retrieves a user by id
	GetUser(ctx context.Context, id string) (*models.User, error)

	// GetUserByUsername retrieves a user by unique username
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetDepartment retrieves a department by id
	GetDepartment(ctx context.Context, id string) (*models.Department, error)

	// GetDepartmentByName retrieves a department by name
	GetDepartmentByName(ctx context.Context, name string) (*models.Department, error)

	// ListDepartments returns all departments
	ListDepartments(ctx context.Context) ([]*models.Department, error)
}

// CreateDepartmentRequest carries the inputs for a new department
type CreateDepartmentRequest struct {
	Name        string
	Description string
}

// CreateUserRequest carries the inputs for a new user.
// PasswordCredential is opaque to the core; hashing happens upstream.
type CreateUserRequest struct {
	Username           string
	Email              string
	PasswordCredential string
	Role               models.Role
	DepartmentID       string
}
