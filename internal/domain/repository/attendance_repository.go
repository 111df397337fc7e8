package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
)

// AttendanceRepository defines the interface for attendance data
// operations. Dates are yyyy-MM-dd strings, one record per employee
// per day.
type AttendanceRepository interface {
	Create(ctx context.Context, record *entity.AttendanceRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AttendanceRecord, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date string) (*entity.AttendanceRecord, error)
	Update(ctx context.Context, record *entity.AttendanceRecord) error
	ListByDate(ctx context.Context, date string) ([]entity.AttendanceRecord, error)
	// ListBetween returns records with date in [from, to], employee
	// preloaded, optionally limited to one employee.
	ListBetween(ctx context.Context, from, to string, employeeID *uuid.UUID) ([]entity.AttendanceRecord, error)
	List(ctx context.Context, params *pagination.PaginationParams, employeeID *uuid.UUID) ([]entity.AttendanceRecord, int64, error)
}
