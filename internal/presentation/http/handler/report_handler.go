package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoanggia/woodshop-api/internal/application/service"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/dto/request"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/dto/response"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) bindPeriod(c *gin.Context) (time.Time, time.Time, service.ReportGranularity, bool) {
	var query request.ReportQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return time.Time{}, time.Time{}, "", false
	}

	from, _ := time.Parse("2006-01-02", query.From)
	to, _ := time.Parse("2006-01-02", query.To)
	// The to date is inclusive
	to = to.AddDate(0, 0, 1)

	granularity := service.GranularityDaily
	if query.Granularity == string(service.GranularityMonthly) {
		granularity = service.GranularityMonthly
	}

	return from, to, granularity, true
}

// Revenue handles GET /reports/revenue
func (h *ReportHandler) Revenue(c *gin.Context) {
	from, to, granularity, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	report, err := h.reportService.Revenue(c.Request.Context(), from, to, granularity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Revenue report generated", report)
}

// Export handles GET /reports/export
func (h *ReportHandler) Export(c *gin.Context) {
	from, to, granularity, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	data, err := h.reportService.Export(c.Request.Context(), from, to, granularity)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("revenue-%s-%s.xlsx",
		from.Format("20060102"), to.AddDate(0, 0, -1).Format("20060102"))
	response.Spreadsheet(c, filename, data)
}

// Dashboard handles GET /reports/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.reportService.GetDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard retrieved", dashboard)
}
