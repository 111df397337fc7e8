package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key storage
type IdempotencyRepository interface {
	// Get returns the cached entry for (key, user), or nil when absent
	// or expired.
	Get(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	Save(ctx context.Context, entry *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) (int64, error)
}
