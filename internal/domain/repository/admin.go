package repository

import (
	"context"

	"github.com/sureshift/backend/internal/domain/model"
)

// AdminRepository describes persistence operations for admin accounts.
type AdminRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*model.Admin, error)
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	GetByID(ctx context.Context, id int64) (*model.Admin, error)
}
