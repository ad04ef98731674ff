package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/trackmint/finance_tracker_app/internal/core/ports/services"
	"github.com/trackmint/finance_tracker_app/internal/dto"
	"github.com/trackmint/finance_tracker_app/internal/middleware"
)

// dashboardHandler handles HTTP requests for the dashboard aggregate.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newDashboardHandler(reportingService portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		reportingService: reportingService,
	}
}

// RegisterDashboardRoutes mounts the dashboard endpoints on the router group.
func RegisterDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.getDashboardSummary)
	}
}

// getDashboardSummary godoc
// @Summary Dashboard summary
// @Description Returns net worth, account count and transaction aggregates over an optional date range
// @Tags dashboard
// @Produce  json
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.DashboardSummaryResponse "The dashboard summary"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute dashboard summary"
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getDashboardSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getDashboardSummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.reportingService.GetDashboardSummary(c.Request.Context(), userID, params.StartDate, params.EndDate)
	if err != nil {
		logger.Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}
