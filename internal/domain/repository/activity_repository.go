package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
)

// ActivityLogRepository defines the interface for the append-only
// audit trail.
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	List(ctx context.Context, params *ActivityFilterParams) ([]entity.ActivityLog, int64, error)
	ListNewest(ctx context.Context, limit int) ([]entity.ActivityLog, error)
}

// ActivityFilterParams contains filtering parameters for audit queries
type ActivityFilterParams struct {
	Pagination *pagination.PaginationParams
	UserID     *uuid.UUID
	Action     *enum.ActivityAction
	EntityType string
	From       *time.Time
	To         *time.Time
}
