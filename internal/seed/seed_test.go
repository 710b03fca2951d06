package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models"
	"docuvault/internal/domain/services"
)

type fakeRegistry struct {
	departments map[string]*models.Department
	users       map[string]*models.User
	created     int
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		departments: make(map[string]*models.Department),
		users:       make(map[string]*models.User),
	}
}

func (f *fakeRegistry) CreateDepartment(ctx context.Context, req *services.CreateDepartmentRequest) (*models.Department, error) {
	if _, ok := f.departments[req.Name]; ok {
		return nil, fmt.Errorf("department %s: duplicate", req.Name)
	}
	dept := &models.Department{
		ID:          fmt.Sprintf("dept-%d", len(f.departments)+1),
		Name:        req.Name,
		Description: req.Description,
	}
	f.departments[req.Name] = dept
	f.created++
	return dept, nil
}

func (f *fakeRegistry) CreateUser(ctx context.Context, req *services.CreateUserRequest) (*models.User, error) {
	if _, ok := f.users[req.Username]; ok {
		return nil, fmt.Errorf("user %s: duplicate", req.Username)
	}
	user := &models.User{
		ID:           fmt.Sprintf("user-%d", len(f.users)+1),
		Username:     req.Username,
		Email:        req.Email,
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
	}
	f.users[req.Username] = user
	f.created++
	return user, nil
}

func (f *fakeRegistry) GetUser(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

func (f *fakeRegistry) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
}

func (f *fakeRegistry) GetDepartment(ctx context.Context, id string) (*models.Department, error) {
	for _, d := range f.departments {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("department %s: %w", id, domain.ErrNotFound)
}

func (f *fakeRegistry) GetDepartmentByName(ctx context.Context, name string) (*models.Department, error) {
	if d, ok := f.departments[name]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("department %s: %w", name, domain.ErrNotFound)
}

func (f *fakeRegistry) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(f.departments))
	for _, d := range f.departments {
		out = append(out, d)
	}
	return out, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSeederIdempotent(t *testing.T) {
	registry := newFakeRegistry()
	seeder := NewSeeder(registry, testLogger())
	ctx := context.Background()

	manifest := DefaultManifest()
	if err := seeder.Run(ctx, manifest); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if registry.created != 2 {
		t.Fatalf("created = %d, want department + admin", registry.created)
	}

	if err := seeder.Run(ctx, manifest); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if registry.created != 2 {
		t.Errorf("second run created records, want no-op")
	}

	admin, err := registry.GetUserByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("admin lookup: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Errorf("admin role = %q", admin.Role)
	}
	general, err := registry.GetDepartmentByName(ctx, "General")
	if err != nil {
		t.Fatalf("General lookup: %v", err)
	}
	if admin.DepartmentID != general.ID {
		t.Errorf("admin department = %q, want %q", admin.DepartmentID, general.ID)
	}
}

func TestSeederResolvesExistingDepartment(t *testing.T) {
	registry := newFakeRegistry()
	ctx := context.Background()

	existing, err := registry.CreateDepartment(ctx, &services.CreateDepartmentRequest{Name: "Finance"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	manifest := &Manifest{
		Users: []UserSpec{
			{Username: "carol", Email: "carol@example.com", Role: string(models.RoleMember), Department: "Finance"},
		},
	}

	seeder := NewSeeder(registry, testLogger())
	if err := seeder.Run(ctx, manifest); err != nil {
		t.Fatalf("run: %v", err)
	}

	carol, err := registry.GetUserByUsername(ctx, "carol")
	if err != nil {
		t.Fatalf("carol lookup: %v", err)
	}
	if carol.DepartmentID != existing.ID {
		t.Errorf("department = %q, want %q", carol.DepartmentID, existing.ID)
	}
}

func TestSeederUnknownDepartmentFails(t *testing.T) {
	registry := newFakeRegistry()
	seeder := NewSeeder(registry, testLogger())

	manifest := &Manifest{
		Users: []UserSpec{
			{Username: "dave", Email: "dave@example.com", Role: string(models.RoleMember), Department: "Nowhere"},
		},
	}

	if err := seeder.Run(context.Background(), manifest); err == nil {
		t.Error("expected failure for unknown department")
	}
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `departments:
  - name: Legal
    description: Legal team
users:
  - username: erin
    email: erin@example.com
    role: member
    department: Legal
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(m.Departments) != 1 || m.Departments[0].Name != "Legal" {
		t.Errorf("departments = %+v", m.Departments)
	}
	if len(m.Users) != 1 || m.Users[0].Department != "Legal" {
		t.Errorf("users = %+v", m.Users)
	}
}
