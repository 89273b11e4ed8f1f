package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/sureshift/backend/internal/domain/errors"
	"github.com/sureshift/backend/internal/domain/model"
	"github.com/sureshift/backend/internal/domain/repository"
	pkgAuth "github.com/sureshift/backend/internal/pkg/auth"
)

// AuthUseCase handles admin account lifecycle and session token management.
type AuthUseCase struct {
	admins repository.AdminRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(admins repository.AdminRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{admins: admins, hasher: hasher, tokens: strategy}
}

// Register creates a new admin with username/password.
func (u *AuthUseCase) Register(ctx context.Context, username, password string) (*model.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.ErrValidation
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	admin, err := u.admins.Create(ctx, username, hash)
	if err != nil {
		return nil, err
	}

	return admin, nil
}

// Authenticate validates credentials and returns a session token. Unknown
// username and wrong password map to the same error so callers cannot tell
// them apart.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.Admin, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	admin, err := u.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(admin.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(admin.ID)
	if err != nil {
		return nil, "", err
	}

	return admin, token, nil
}

// ParseToken extracts the admin id from a session token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches admin by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	return u.admins.GetByID(ctx, id)
}
