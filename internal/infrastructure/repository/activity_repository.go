package repository

import (
	"context"

	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	domainRepo "github.com/hoanggia/woodshop-api/internal/domain/repository"
	"gorm.io/gorm"
)

type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *gorm.DB) domainRepo.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *activityLogRepository) List(ctx context.Context, params *domainRepo.ActivityFilterParams) ([]entity.ActivityLog, int64, error) {
	var logs []entity.ActivityLog
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ActivityLog{})

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}

	if params.Action != nil {
		query = query.Where("action = ?", *params.Action)
	}

	if params.EntityType != "" {
		query = query.Where("entity_type = ?", params.EntityType)
	}

	if params.From != nil {
		query = query.Where("created_at >= ?", *params.From)
	}

	if params.To != nil {
		query = query.Where("created_at < ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&logs).Error

	return logs, total, err
}

func (r *activityLogRepository) ListNewest(ctx context.Context, limit int) ([]entity.ActivityLog, error) {
	var logs []entity.ActivityLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
