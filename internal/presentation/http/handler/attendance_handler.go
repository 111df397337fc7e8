package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoanggia/woodshop-api/internal/application/service"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/dto/request"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/dto/response"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
)

// AttendanceHandler handles attendance and payroll HTTP requests
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// CheckIn handles POST /attendance/check-in
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req request.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employeeID := parseOptionalUUID(&req.EmployeeID)
	if employeeID == nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	record, err := h.attendanceService.CheckIn(c.Request.Context(), *employeeID, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Checked in", record)
}

// CheckOut handles POST /attendance/check-out
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	var req request.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employeeID := parseOptionalUUID(&req.EmployeeID)
	if employeeID == nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	record, err := h.attendanceService.CheckOut(c.Request.Context(), *employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checked out", record)
}

// Today handles GET /attendance/today
func (h *AttendanceHandler) Today(c *gin.Context) {
	records, err := h.attendanceService.Today(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Today's attendance retrieved", records)
}

// List handles GET /attendance
func (h *AttendanceHandler) List(c *gin.Context) {
	var filter request.AttendanceFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	records, p, err := h.attendanceService.List(c.Request.Context(), &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, parseOptionalUUID(&filter.EmployeeID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Attendance records retrieved", records, p)
}

// MonthlySummary handles GET /attendance/summary
func (h *AttendanceHandler) MonthlySummary(c *gin.Context) {
	var query request.MonthQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	summaries, err := h.attendanceService.MonthlySummary(c.Request.Context(), query.Year, time.Month(query.Month))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly summary retrieved", summaries)
}

// Export handles GET /attendance/export
func (h *AttendanceHandler) Export(c *gin.Context) {
	var query request.MonthQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	data, err := h.attendanceService.ExportMonth(c.Request.Context(), query.Year, time.Month(query.Month))
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("attendance-%04d-%02d.xlsx", query.Year, query.Month)
	response.Spreadsheet(c, filename, data)
}
