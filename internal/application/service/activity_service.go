package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"github.com/hoanggia/woodshop-api/internal/domain/repository"
	"github.com/hoanggia/woodshop-api/pkg/excel"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
)

// Actor identifies the authenticated user performing an operation
type Actor struct {
	UserID uuid.UUID
	Email  string
	Role   enum.Role
}

// ActivityService records and queries the append-only audit trail
type ActivityService struct {
	activityRepo repository.ActivityLogRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo repository.ActivityLogRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// Log appends an audit row. A failed write is logged and swallowed so
// it never fails the business operation that produced it.
func (s *ActivityService) Log(ctx context.Context, actor Actor, action enum.ActivityAction, entityType string, entityID *uuid.UUID, details string) {
	row := &entity.ActivityLog{
		UserID:     actor.UserID,
		UserEmail:  actor.Email,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if details != "" {
		row.Details = &details
	}

	if err := s.activityRepo.Create(ctx, row); err != nil {
		log.Printf("failed to write activity log (%s %s): %v", action, entityType, err)
	}
}

// ListInput filters the audit trail
type ListActivityInput struct {
	Pagination *pagination.PaginationParams
	UserID     *uuid.UUID
	Action     *enum.ActivityAction
	EntityType string
}

// exportCap bounds the number of audit rows a single export carries
const exportCap = 500

// Export renders the newest audit rows as a spreadsheet
func (s *ActivityService) Export(ctx context.Context) ([]byte, error) {
	logs, err := s.activityRepo.ListNewest(ctx, exportCap)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(logs))
	for _, row := range logs {
		entityID := ""
		if row.EntityID != nil {
			entityID = row.EntityID.String()
		}
		details := ""
		if row.Details != nil {
			details = *row.Details
		}
		rows = append(rows, []interface{}{
			row.CreatedAt.Format("2006-01-02 15:04:05"),
			row.UserEmail,
			string(row.Action),
			row.EntityType,
			entityID,
			details,
		})
	}

	return excel.Build(excel.Sheet{
		Name:    "Activity Log",
		Headers: []string{"Time", "User", "Action", "Entity", "Entity ID", "Details"},
		Widths:  []float64{20, 28, 12, 14, 38, 50},
		Rows:    rows,
	})
}

// List returns audit rows, newest first
func (s *ActivityService) List(ctx context.Context, input *ListActivityInput) ([]entity.ActivityLog, *pagination.Pagination, error) {
	params := &repository.ActivityFilterParams{
		Pagination: input.Pagination,
		UserID:     input.UserID,
		Action:     input.Action,
		EntityType: input.EntityType,
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	logs, total, err := s.activityRepo.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	return logs, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total), nil
}
