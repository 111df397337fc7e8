package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/repository"
	"github.com/hoanggia/woodshop-api/pkg/apperror"
	"github.com/hoanggia/woodshop-api/pkg/excel"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// AttendanceService handles check-in, check-out and payroll summaries
type AttendanceService struct {
	attendanceRepo      repository.AttendanceRepository
	employeeRepo        repository.EmployeeRepository
	workingDaysPerMonth int
	now                 func() time.Time
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	employeeRepo repository.EmployeeRepository,
	workingDaysPerMonth int,
) *AttendanceService {
	if workingDaysPerMonth <= 0 {
		workingDaysPerMonth = 26
	}
	return &AttendanceService{
		attendanceRepo:      attendanceRepo,
		employeeRepo:        employeeRepo,
		workingDaysPerMonth: workingDaysPerMonth,
		now:                 time.Now,
	}
}

// CheckIn opens today's attendance record for the employee. At most
// one record per employee per day.
func (s *AttendanceService) CheckIn(ctx context.Context, employeeID uuid.UUID, notes *string) (*entity.AttendanceRecord, error) {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	now := s.now()
	date := now.Format(dateLayout)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Already checked in today")
	}

	record := &entity.AttendanceRecord{
		EmployeeID: employeeID,
		Date:       date,
		TimeIn:     now.Format(timeLayout),
		Notes:      notes,
	}

	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// CheckOut closes today's record and computes hours worked. A shift
// that runs past midnight yields a positive duration.
func (s *AttendanceService) CheckOut(ctx context.Context, employeeID uuid.UUID) (*entity.AttendanceRecord, error) {
	now := s.now()
	date := now.Format(dateLayout)

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	if record == nil {
		// Overnight shift: the open record is on yesterday's date
		yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
		record, err = s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, yesterday)
		if err != nil {
			return nil, err
		}
		if record == nil || record.IsCheckedOut() {
			return nil, apperror.NewBadRequestError("No open check-in found")
		}
	}
	if record.IsCheckedOut() {
		return nil, apperror.NewConflictError("Already checked out")
	}

	timeOut := now.Format(timeLayout)
	hours, err := HoursBetween(record.TimeIn, timeOut)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid check-in time on record")
	}

	record.TimeOut = &timeOut
	record.TotalHours = &hours

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// HoursBetween computes the hours from timeIn to timeOut, both
// HH:mm:ss wall-clock strings. A negative span means the shift crossed
// midnight and gets a day added.
func HoursBetween(timeIn, timeOut string) (float64, error) {
	in, err := time.Parse(timeLayout, timeIn)
	if err != nil {
		return 0, err
	}
	out, err := time.Parse(timeLayout, timeOut)
	if err != nil {
		return 0, err
	}

	minutes := (out.Hour()*60 + out.Minute()) - (in.Hour()*60 + in.Minute())
	if minutes < 0 {
		minutes += 24 * 60
	}
	return float64(minutes) / 60, nil
}

// Today returns all attendance records for the current date
func (s *AttendanceService) Today(ctx context.Context) ([]entity.AttendanceRecord, error) {
	return s.attendanceRepo.ListByDate(ctx, s.now().Format(dateLayout))
}

// List returns attendance records, newest first
func (s *AttendanceService) List(ctx context.Context, params *pagination.PaginationParams, employeeID *uuid.UUID) ([]entity.AttendanceRecord, *pagination.Pagination, error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}

	records, total, err := s.attendanceRepo.List(ctx, params, employeeID)
	if err != nil {
		return nil, nil, err
	}

	return records, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// EmployeeSummary aggregates one employee's attendance over a period
type EmployeeSummary struct {
	Employee   entity.Employee `json:"employee"`
	DaysWorked int             `json:"days_worked"`
	TotalHours float64         `json:"total_hours"`
	Salary     int64           `json:"salary"`
}

// MonthlySummary computes days worked, hours and payroll for every
// employee in a month. Salary is the monthly base divided by the
// configured working days, times days attended, rounded down to whole
// VND.
func (s *AttendanceService) MonthlySummary(ctx context.Context, year int, month time.Month) ([]EmployeeSummary, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListBetween(ctx, from.Format(dateLayout), to.Format(dateLayout), nil)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	type agg struct {
		days  int
		hours float64
	}
	byEmployee := make(map[uuid.UUID]*agg)
	for _, record := range records {
		a := byEmployee[record.EmployeeID]
		if a == nil {
			a = &agg{}
			byEmployee[record.EmployeeID] = a
		}
		a.days++
		if record.TotalHours != nil {
			a.hours += *record.TotalHours
		}
	}

	summaries := make([]EmployeeSummary, 0, len(employees))
	for _, employee := range employees {
		summary := EmployeeSummary{Employee: employee}
		if a := byEmployee[employee.ID]; a != nil {
			summary.DaysWorked = a.days
			summary.TotalHours = a.hours
			summary.Salary = s.Payroll(employee.BaseSalary, a.days)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Payroll computes the salary owed for daysWorked attended days
func (s *AttendanceService) Payroll(baseSalary int64, daysWorked int) int64 {
	return int64(float64(baseSalary) / float64(s.workingDaysPerMonth) * float64(daysWorked))
}

// ExportMonth renders the monthly summary as a spreadsheet
func (s *AttendanceService) ExportMonth(ctx context.Context, year int, month time.Month) ([]byte, error) {
	summaries, err := s.MonthlySummary(ctx, year, month)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, []interface{}{
			summary.Employee.Code,
			summary.Employee.FullName,
			summary.Employee.Position,
			summary.DaysWorked,
			summary.TotalHours,
			summary.Employee.BaseSalary,
			summary.Salary,
		})
	}

	return excel.Build(excel.Sheet{
		Name:    fmt.Sprintf("%02d-%d", int(month), year),
		Headers: []string{"Code", "Full Name", "Position", "Days Worked", "Total Hours", "Base Salary", "Salary"},
		Widths:  []float64{14, 28, 20, 14, 14, 16, 16},
		Rows:    rows,
	})
}
