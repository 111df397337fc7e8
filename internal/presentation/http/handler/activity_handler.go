package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hoanggia/woodshop-api/internal/application/service"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/dto/response"
	"github.com/hoanggia/woodshop-api/pkg/pagination"
)

// ActivityHandler handles audit trail HTTP requests
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List handles GET /activity-logs
func (h *ActivityHandler) List(c *gin.Context) {
	var query struct {
		UserID     string `form:"user_id" binding:"omitempty,uuid"`
		Action     string `form:"action" binding:"omitempty,oneof=create update delete"`
		EntityType string `form:"entity_type"`
		Page       int    `form:"page"`
		PerPage    int    `form:"per_page"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	input := &service.ListActivityInput{
		Pagination: &pagination.PaginationParams{
			Page:    query.Page,
			PerPage: query.PerPage,
		},
		UserID:     parseOptionalUUID(&query.UserID),
		EntityType: query.EntityType,
	}
	if query.Action != "" {
		action := enum.ActivityAction(query.Action)
		input.Action = &action
	}

	logs, p, err := h.activityService.List(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Activity logs retrieved", logs, p)
}

// Export handles GET /activity-logs/export
func (h *ActivityHandler) Export(c *gin.Context) {
	data, err := h.activityService.Export(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Spreadsheet(c, "activity-logs.xlsx", data)
}
