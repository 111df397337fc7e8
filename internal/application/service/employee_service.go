package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"github.com/hoanggia/woodshop-api/internal/domain/repository"
	"github.com/hoanggia/woodshop-api/pkg/apperror"
	"github.com/hoanggia/woodshop-api/pkg/excel"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
	"github.com/hoanggia/woodshop-api/pkg/utils"
)

// EmployeeService handles employee records
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
	activity     *ActivityService
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepository, activity *ActivityService) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		activity:     activity,
	}
}

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	FullName       string
	Position       string
	Phone          *string
	BaseSalary     int64
	StartDate      *time.Time
	BirthYear      *int
	IDNumber       *string
	Hometown       *string
	CurrentAddress *string
	UserID         *uuid.UUID
}

// Create adds an employee with a server-issued code
func (s *EmployeeService) Create(ctx context.Context, actor Actor, input *CreateEmployeeInput) (*entity.Employee, error) {
	if input.BaseSalary < 0 {
		return nil, apperror.NewBadRequestError("Base salary cannot be negative")
	}

	code := utils.GenerateCode(utils.PrefixEmployee)
	existing, err := s.employeeRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Employee code already exists")
	}

	employee := &entity.Employee{
		Code:           code,
		FullName:       input.FullName,
		Position:       input.Position,
		Phone:          input.Phone,
		BaseSalary:     input.BaseSalary,
		StartDate:      input.StartDate,
		BirthYear:      input.BirthYear,
		IDNumber:       input.IDNumber,
		Hometown:       input.Hometown,
		CurrentAddress: input.CurrentAddress,
		UserID:         input.UserID,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionCreate, "employee", &employee.ID,
		fmt.Sprintf("created employee %s (%s)", employee.FullName, employee.Code))

	return employee, nil
}

// UpdateEmployeeInput represents the update employee input
type UpdateEmployeeInput struct {
	FullName       *string
	Position       *string
	Phone          *string
	BaseSalary     *int64
	StartDate      *time.Time
	BirthYear      *int
	IDNumber       *string
	Hometown       *string
	CurrentAddress *string
	UserID         *uuid.UUID
}

// Update modifies an employee
func (s *EmployeeService) Update(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateEmployeeInput) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	if input.FullName != nil {
		employee.FullName = *input.FullName
	}
	if input.Position != nil {
		employee.Position = *input.Position
	}
	if input.Phone != nil {
		employee.Phone = input.Phone
	}
	if input.BaseSalary != nil {
		if *input.BaseSalary < 0 {
			return nil, apperror.NewBadRequestError("Base salary cannot be negative")
		}
		employee.BaseSalary = *input.BaseSalary
	}
	if input.StartDate != nil {
		employee.StartDate = input.StartDate
	}
	if input.BirthYear != nil {
		employee.BirthYear = input.BirthYear
	}
	if input.IDNumber != nil {
		employee.IDNumber = input.IDNumber
	}
	if input.Hometown != nil {
		employee.Hometown = input.Hometown
	}
	if input.CurrentAddress != nil {
		employee.CurrentAddress = input.CurrentAddress
	}
	if input.UserID != nil {
		employee.UserID = input.UserID
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionUpdate, "employee", &employee.ID,
		fmt.Sprintf("updated employee %s", employee.Code))

	return employee, nil
}

// Get returns one employee
func (s *EmployeeService) Get(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// GetByUser resolves the employee record linked to a user account
func (s *EmployeeService) GetByUser(ctx context.Context, userID uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// List returns employees matching the search
func (s *EmployeeService) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Employee, *pagination.Pagination, error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}

	employees, total, err := s.employeeRepo.List(ctx, params, search)
	if err != nil {
		return nil, nil, err
	}

	return employees, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// Export renders all employee records as a spreadsheet
func (s *EmployeeService) Export(ctx context.Context) ([]byte, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(employees))
	for _, employee := range employees {
		phone := ""
		if employee.Phone != nil {
			phone = *employee.Phone
		}
		startDate := ""
		if employee.StartDate != nil {
			startDate = employee.StartDate.Format("2006-01-02")
		}
		hometown := ""
		if employee.Hometown != nil {
			hometown = *employee.Hometown
		}
		rows = append(rows, []interface{}{
			employee.Code,
			employee.FullName,
			employee.Position,
			phone,
			employee.BaseSalary,
			startDate,
			hometown,
		})
	}

	return excel.Build(excel.Sheet{
		Name:    "Employees",
		Headers: []string{"Code", "Full Name", "Position", "Phone", "Base Salary", "Start Date", "Hometown"},
		Widths:  []float64{14, 28, 20, 16, 16, 14, 24},
		Rows:    rows,
	})
}

// Delete removes an employee
func (s *EmployeeService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Log(ctx, actor, enum.ActivityActionDelete, "employee", &id,
		fmt.Sprintf("deleted employee %s (%s)", employee.FullName, employee.Code))

	return nil
}
