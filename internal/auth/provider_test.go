package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models"
)

type fakeVerifier struct {
	claims map[string]*models.SessionClaims
}

func (f *fakeVerifier) VerifyToken(token string) (*models.SessionClaims, error) {
	if c, ok := f.claims[token]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("token rejected: %w", domain.ErrUnauthorized)
}

func (f *fakeVerifier) Close() error { return nil }

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
}

func newTestProvider() *Provider {
	verifier := &fakeVerifier{
		claims: map[string]*models.SessionClaims{
			"good-token": {
				RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
				Email:            "alice@example.com",
				Username:         "alice",
			},
			"orphan-token": {
				RegisteredClaims: jwt.RegisteredClaims{Subject: "user-gone"},
			},
		},
	}
	repo := &fakeUserRepo{
		users: map[string]*models.User{
			"user-1": {ID: "user-1", Username: "alice", Role: models.RoleMember},
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProvider(verifier, repo, logger)
}

func TestCurrentUser(t *testing.T) {
	p := newTestProvider()
	ctx := context.Background()

	user, err := p.CurrentUser(ctx, "good-token")
	if err != nil {
		t.Fatalf("valid token: %v", err)
	}
	if user == nil || user.ID != "user-1" {
		t.Errorf("user = %+v, want user-1", user)
	}

	user, err = p.CurrentUser(ctx, "")
	if err != nil || user != nil {
		t.Errorf("empty token: user = %+v, err = %v, want nil/nil", user, err)
	}

	if _, err := p.CurrentUser(ctx, "garbage"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("invalid token: err = %v, want unauthorized", err)
	}

	if _, err := p.CurrentUser(ctx, "orphan-token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("unknown subject: err = %v, want unauthorized", err)
	}
}

func TestRequireLogin(t *testing.T) {
	p := newTestProvider()
	ctx := context.Background()

	user, err := p.RequireLogin(ctx, "good-token")
	if err != nil || user == nil {
		t.Fatalf("valid token: user = %+v, err = %v", user, err)
	}

	if _, err := p.RequireLogin(ctx, ""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("anonymous: err = %v, want unauthorized", err)
	}
}
