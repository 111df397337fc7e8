package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hoanggia/woodshop-api/internal/application/service"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"github.com/hoanggia/woodshop-api/internal/domain/repository"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/dto/request"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/dto/response"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
)

// InventoryHandler handles stock movement HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) bindMovement(c *gin.Context) (*service.StockMovementInput, bool) {
	var req request.StockMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return nil, false
	}

	productID := parseOptionalUUID(&req.ProductID)
	if productID == nil {
		response.BadRequest(c, "Invalid product ID")
		return nil, false
	}

	return &service.StockMovementInput{
		ProductID: *productID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Reason:    req.Reason,
	}, true
}

// StockIn handles POST /inventory/in
func (h *InventoryHandler) StockIn(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	input, ok := h.bindMovement(c)
	if !ok {
		return
	}

	txn, err := h.inventoryService.StockIn(c.Request.Context(), actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock received", txn)
}

// StockOut handles POST /inventory/out
func (h *InventoryHandler) StockOut(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	input, ok := h.bindMovement(c)
	if !ok {
		return
	}

	txn, err := h.inventoryService.StockOut(c.Request.Context(), actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock removed", txn)
}

// List handles GET /inventory
func (h *InventoryHandler) List(c *gin.Context) {
	var filter request.InventoryFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.InventoryFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		ProductID: parseOptionalUUID(&filter.ProductID),
	}

	if filter.Type != "" {
		txnType := enum.TransactionType(filter.Type)
		params.Type = &txnType
	}
	if from := parseDate(&filter.From); from != nil {
		params.From = from
	}
	if to := parseDate(&filter.To); to != nil {
		end := to.AddDate(0, 0, 1)
		params.To = &end
	}

	txns, p, err := h.inventoryService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Inventory transactions retrieved", txns, p)
}

// History handles GET /inventory/products/:id
func (h *InventoryHandler) History(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	txns, err := h.inventoryService.History(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product movement history retrieved", txns)
}
