package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	domainRepo "github.com/hoanggia/woodshop-api/internal/domain/repository"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
	"gorm.io/gorm"
)

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) domainRepo.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, record *entity.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AttendanceRecord, error) {
	var record entity.AttendanceRecord
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date string) (*entity.AttendanceRecord, error) {
	var record entity.AttendanceRecord
	err := r.db.WithContext(ctx).
		First(&record, "employee_id = ? AND date = ?", employeeID, date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *attendanceRepository) Update(ctx context.Context, record *entity.AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]entity.AttendanceRecord, error) {
	var records []entity.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Preload("Employee").
		Order("time_in ASC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepository) ListBetween(ctx context.Context, from, to string, employeeID *uuid.UUID) ([]entity.AttendanceRecord, error) {
	var records []entity.AttendanceRecord

	query := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to)

	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}

	err := query.
		Preload("Employee").
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepository) List(ctx context.Context, params *pagination.PaginationParams, employeeID *uuid.UUID) ([]entity.AttendanceRecord, int64, error) {
	var records []entity.AttendanceRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.AttendanceRecord{})

	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Employee").
		Order("date DESC, time_in DESC").
		Find(&records).Error

	return records, total, err
}
