package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hoanggia/woodshop-api/internal/application/service"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/dto/request"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/dto/response"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
)

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	var filter request.ListFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	customers, p, err := h.customerService.List(c.Request.Context(), &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Customers retrieved", customers, p)
}

// Get handles GET /customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved", customer)
}

// Create handles POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), actor, &service.CreateCustomerInput{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		CustomerType: enum.CustomerType(req.CustomerType),
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created", customer)
}

// Update handles PUT /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateCustomerInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Notes:    req.Notes,
	}
	if req.CustomerType != nil {
		customerType := enum.CustomerType(*req.CustomerType)
		input.CustomerType = &customerType
	}

	customer, err := h.customerService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated", customer)
}

// Delete handles DELETE /customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
