package auth

import (
	"context"
	"log/slog"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models"
	"docuvault/internal/domain/repositories"
)

// Provider resolves bearer tokens to registry users. It is the
// auth-provider collaborator consumed by the (external) web layer:
// CurrentUser is the current-identity lookup, RequireLogin the
// short-circuit for unauthenticated callers.
type Provider struct {
	verifier TokenVerifier
	userRepo repositories.UserRepository
	logger   *slog.Logger
}

// NewProvider creates a new auth provider
func NewProvider(verifier TokenVerifier, userRepo repositories.UserRepository, logger *slog.Logger) *Provider {
	return &Provider{
		verifier: verifier,
		userRepo: userRepo,
		logger:   logger,
	}
}

// CurrentUser returns the user a token belongs to, or nil without error
// when no token is presented. Invalid tokens and tokens for unknown
// users return ErrUnauthorized.
func (p *Provider) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	claims, err := p.verifier.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	user, err := p.userRepo.GetByID(ctx, claims.GetUserID())
	if err != nil {
		p.logger.Debug("token subject has no user record", "subject", claims.GetUserID())
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

// RequireLogin is CurrentUser with the anonymous case rejected.
func (p *Provider) RequireLogin(ctx context.Context, token string) (*models.User, error) {
	user, err := p.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.UnauthorizedError{Message: "login required"}
	}
	return user, nil
}
