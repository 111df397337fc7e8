package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.User, int64, error)
}

// UserRoleRepository defines the interface for role assignment operations
type UserRoleRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserRole, error)
	// Upsert updates the user's existing role row or inserts one,
	// keeping at most one row per user.
	Upsert(ctx context.Context, userID uuid.UUID, role enum.Role) (*entity.UserRole, error)
}
