package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models"
	"docuvault/internal/domain/services"
)

// Manifest describes the departments and users to provision.
type Manifest struct {
	Departments []DepartmentSpec `yaml:"departments"`
	Users       []UserSpec       `yaml:"users"`
}

// DepartmentSpec is one department entry in the manifest
type DepartmentSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// UserSpec is one user entry in the manifest. Credential is opaque
// (hashed upstream); Department references a manifest department by name.
type UserSpec struct {
	Username   string `yaml:"username"`
	Email      string `yaml:"email"`
	Credential string `yaml:"credential"`
	Role       string `yaml:"role"`
	Department string `yaml:"department"`
}

// LoadManifest reads a YAML manifest from disk
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	return &m, nil
}

// DefaultManifest is the bootstrap fallback: a single department with
// the global admin account. Seeding it twice is a no-op.
func DefaultManifest() *Manifest {
	return &Manifest{
		Departments: []DepartmentSpec{
			{Name: "General", Description: "Default department"},
		},
		Users: []UserSpec{
			{
				Username:   "admin",
				Email:      "admin@example.com",
				Role:       string(models.RoleAdmin),
				Department: "General",
			},
		},
	}
}

// Seeder provisions manifest records idempotently: departments and
// users that already exist are left untouched.
type Seeder struct {
	registry services.RegistryService
	logger   *slog.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(registry services.RegistryService, logger *slog.Logger) *Seeder {
	return &Seeder{registry: registry, logger: logger}
}

// Run applies the manifest
func (s *Seeder) Run(ctx context.Context, m *Manifest) error {
	deptIDs := make(map[string]string, len(m.Departments))

	for _, spec := range m.Departments {
		dept, err := s.registry.GetDepartmentByName(ctx, spec.Name)
		if err == nil {
			s.logger.Info("department exists, skipping", "name", spec.Name)
			deptIDs[spec.Name] = dept.ID
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		dept, err = s.registry.CreateDepartment(ctx, &services.CreateDepartmentRequest{
			Name:        spec.Name,
			Description: spec.Description,
		})
		if err != nil {
			return fmt.Errorf("seed department %s: %w", spec.Name, err)
		}
		deptIDs[spec.Name] = dept.ID
	}

	for _, spec := range m.Users {
		if _, err := s.registry.GetUserByUsername(ctx, spec.Username); err == nil {
			s.logger.Info("user exists, skipping", "username", spec.Username)
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		deptID, ok := deptIDs[spec.Department]
		if !ok {
			dept, err := s.registry.GetDepartmentByName(ctx, spec.Department)
			if err != nil {
				return fmt.Errorf("seed user %s: department %q: %w", spec.Username, spec.Department, err)
			}
			deptID = dept.ID
		}

		_, err := s.registry.CreateUser(ctx, &services.CreateUserRequest{
			Username:           spec.Username,
			Email:              spec.Email,
			PasswordCredential: spec.Credential,
			Role:               models.Role(spec.Role),
			DepartmentID:       deptID,
		})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", spec.Username, err)
		}
	}

	return nil
}
