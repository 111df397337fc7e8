package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hoanggia/woodshop-api/internal/application/service"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/dto/request"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/dto/response"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
)

// EmployeeHandler handles employee HTTP requests
type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List handles GET /employees
func (h *EmployeeHandler) List(c *gin.Context) {
	var filter request.ListFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	employees, p, err := h.employeeService.List(c.Request.Context(), &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Employees retrieved", employees, p)
}

// Get handles GET /employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee retrieved", employee)
}

// Create handles POST /employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), actor, &service.CreateEmployeeInput{
		FullName:       req.FullName,
		Position:       req.Position,
		Phone:          req.Phone,
		BaseSalary:     req.BaseSalary,
		StartDate:      parseDate(req.StartDate),
		BirthYear:      req.BirthYear,
		IDNumber:       req.IDNumber,
		Hometown:       req.Hometown,
		CurrentAddress: req.CurrentAddress,
		UserID:         parseOptionalUUID(req.UserID),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created", employee)
}

// Update handles PUT /employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req request.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), actor, id, &service.UpdateEmployeeInput{
		FullName:       req.FullName,
		Position:       req.Position,
		Phone:          req.Phone,
		BaseSalary:     req.BaseSalary,
		StartDate:      parseDate(req.StartDate),
		BirthYear:      req.BirthYear,
		IDNumber:       req.IDNumber,
		Hometown:       req.Hometown,
		CurrentAddress: req.CurrentAddress,
		UserID:         parseOptionalUUID(req.UserID),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee updated", employee)
}

// Delete handles DELETE /employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Export handles GET /employees/export
func (h *EmployeeHandler) Export(c *gin.Context) {
	data, err := h.employeeService.Export(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Spreadsheet(c, "employees.xlsx", data)
}
