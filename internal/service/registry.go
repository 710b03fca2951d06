package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models"
	"docuvault/internal/domain/repositories"
	"docuvault/internal/domain/services"
)

// registryService implements the RegistryService interface
type registryService struct {
	userRepo repositories.UserRepository
	deptRepo repositories.DepartmentRepository
	logger   *slog.Logger
}

// NewRegistryService creates a new registry service
func NewRegistryService(
	userRepo repositories.UserRepository,
	deptRepo repositories.DepartmentRepository,
	logger *slog.Logger,
) services.RegistryService {
	return &registryService{
		userRepo: userRepo,
		deptRepo: deptRepo,
		logger:   logger,
	}
}

// CreateDepartment provisions a new department
func (s *registryService) CreateDepartment(ctx context.Context, req *services.CreateDepartmentRequest) (*models.Department, error) {
	err := validation.Errors{
		"name": validation.Validate(req.Name, validation.Required, validation.Length(1, 100)),
	}.Filter()
	if err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	dept := &models.Department{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	s.logger.Info("department created", "department_id", dept.ID, "name", dept.Name)

	return dept, nil
}

// CreateUser provisions a new user in an existing department
func (s *registryService) CreateUser(ctx context.Context, req *services.CreateUserRequest) (*models.User, error) {
	err := validation.Errors{
		"username": validation.Validate(req.Username, validation.Required, validation.Length(1, 80)),
		"email":    validation.Validate(req.Email, validation.Required, is.Email),
	}.Filter()
	if err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}
	if !req.Role.Valid() {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("unknown role %q", req.Role),
		}
	}

	// Every user belongs to exactly one existing department
	if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	user := &models.User{
		Username:           req.Username,
		Email:              req.Email,
		PasswordCredential: req.PasswordCredential,
		Role:               req.Role,
		DepartmentID:       req.DepartmentID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		"user_id", user.ID,
		"username", user.Username,
		"role", user.Role,
		"department_id", user.DepartmentID,
	)

	return user, nil
}

// GetUser retrieves a user by id
func (s *registryService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserByUsername retrieves a user by unique username
func (s *registryService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

// GetDepartment retrieves a department by id
func (s *registryService) GetDepartment(ctx context.Context, id string) (*models.Department, error) {
	return s.deptRepo.GetByID(ctx, id)
}

// GetDepartmentByName retrieves a department by name
func (s *registryService) GetDepartmentByName(ctx context.Context, name string) (*models.Department, error) {
	return s.deptRepo.GetByName(ctx, name)
}

// ListDepartments returns all departments
func (s *registryService) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.deptRepo.List(ctx)
}
