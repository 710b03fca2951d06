package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return user, nil
}

func (r *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
}

var (
	admin = &models.User{ID: "admin", Role: models.RoleAdmin, DepartmentID: "d1"}
	owner = &models.User{ID: "owner", Role: models.RoleMember, DepartmentID: "d1"}
	other = &models.User{ID: "other", Role: models.RoleMember, DepartmentID: "d2"}

	file = &models.File{ID: "f1", UploadedBy: "owner", DepartmentID: "d1"}
)

func newTestAuthorizer() *Authorizer {
	return NewAuthorizer(&stubUserRepo{users: map[string]*models.User{
		"admin": admin,
		"owner": owner,
		"other": other,
	}})
}

func TestCanAccess(t *testing.T) {
	a := newTestAuthorizer()

	tests := []struct {
		name string
		user *models.User
		want bool
	}{
		{"owner", owner, true},
		{"other member", other, false},
		{"admin", admin, true},
		{"nil user", nil, false},
	}

	for _, tt := range tests {
		if got := a.CanAccess(tt.user, file); got != tt.want {
			t.Errorf("CanAccess(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCanReview(t *testing.T) {
	a := newTestAuthorizer()

	if !a.CanReview(admin) {
		t.Error("admin should review")
	}
	if a.CanReview(owner) {
		t.Error("member should not review")
	}
	if a.CanReview(nil) {
		t.Error("nil user should not review")
	}
}

func TestCanUpload(t *testing.T) {
	a := newTestAuthorizer()

	if !a.CanUpload(owner) {
		t.Error("member should upload")
	}
	if a.CanUpload(admin) {
		t.Error("admin should not upload")
	}
}

func TestRequireAccess(t *testing.T) {
	a := newTestAuthorizer()
	ctx := context.Background()

	if _, err := a.RequireAccess(ctx, "owner", file); err != nil {
		t.Errorf("owner: %v", err)
	}
	if _, err := a.RequireAccess(ctx, "other", file); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("other member: err = %v, want unauthorized", err)
	}

	// Unknown actors fail the same way as denied ones.
	if _, err := a.RequireAccess(ctx, "ghost", file); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("unknown actor: err = %v, want unauthorized", err)
	}
}

func TestRequireReviewer(t *testing.T) {
	a := newTestAuthorizer()
	ctx := context.Background()

	if _, err := a.RequireReviewer(ctx, "admin"); err != nil {
		t.Errorf("admin: %v", err)
	}
	if _, err := a.RequireReviewer(ctx, "owner"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("member: err = %v, want unauthorized", err)
	}
}
