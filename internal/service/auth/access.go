package auth

import (
	"context"
	"fmt"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models"
	"docuvault/internal/domain/repositories"
)

// Authorizer is the single authorization gate consulted before every
// file operation. The rules are role-and-ownership based:
//
//   - admins can access any file; members only their own uploads
//   - only admins review (approve/reject)
//   - only members upload (admin is purely an oversight role)
//
// A failed predicate is always a typed Unauthorized outcome, never a
// partial result.
type Authorizer struct {
	userRepo repositories.UserRepository
}

// NewAuthorizer creates a new authorization gate
func NewAuthorizer(userRepo repositories.UserRepository) *Authorizer {
	return &Authorizer{userRepo: userRepo}
}

// CanAccess reports whether user may view, download, list versions of,
// comment on, or revise file.
func (a *Authorizer) CanAccess(user *models.User, file *models.File) bool {
	if user == nil || file == nil {
		return false
	}
	return user.Role == models.RoleAdmin || file.UploadedBy == user.ID
}

// CanReview reports whether user may approve or reject documents.
func (a *Authorizer) CanReview(user *models.User) bool {
	return user != nil && user.Role == models.RoleAdmin
}

// CanUpload reports whether user may upload new original documents.
func (a *Authorizer) CanUpload(user *models.User) bool {
	return user != nil && user.Role == models.RoleMember
}

// RequireActor resolves the acting user. An unknown actor id is an
// authorization failure, not a not-found: callers never learn whether
// the account exists.
func (a *Authorizer) RequireActor(ctx context.Context, actorID string) (*models.User, error) {
	user, err := a.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, &domain.UnauthorizedError{
			Message: "unknown acting user",
		}
	}
	return user, nil
}

// RequireAccess resolves the actor and checks the access predicate
// against file.
func (a *Authorizer) RequireAccess(ctx context.Context, actorID string, file *models.File) (*models.User, error) {
	user, err := a.RequireActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !a.CanAccess(user, file) {
		return nil, &domain.UnauthorizedError{
			Message: fmt.Sprintf("user %s may not access file %s", user.ID, file.ID),
		}
	}
	return user, nil
}

// RequireReviewer resolves the actor and checks the review predicate.
func (a *Authorizer) RequireReviewer(ctx context.Context, actorID string) (*models.User, error) {
	user, err := a.RequireActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !a.CanReview(user) {
		return nil, &domain.UnauthorizedError{
			Message: fmt.Sprintf("user %s may not review documents", user.ID),
		}
	}
	return user, nil
}

// RequireUploader resolves the actor and checks the upload predicate.
func (a *Authorizer) RequireUploader(ctx context.Context, actorID string) (*models.User, error) {
	user, err := a.RequireActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !a.CanUpload(user) {
		return nil, &domain.UnauthorizedError{
			Message: fmt.Sprintf("user %s may not upload documents", user.ID),
		}
	}
	return user, nil
}
