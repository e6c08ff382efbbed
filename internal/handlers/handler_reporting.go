package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/parishkeep/church_treasury_app/internal/core/ports/services"
	"github.com/parishkeep/church_treasury_app/internal/dto"
	"github.com/parishkeep/church_treasury_app/internal/middleware"
)

// reportingHandler handles HTTP requests for derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly-trend", h.getMonthlyTrend)
		reports.GET("/category-breakdown", h.getCategoryBreakdown)
	}
}

func (h *reportingHandler) getMonthlyTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.MonthlyTrendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	months, err := h.reportingService.MonthlyTrend(c.Request.Context(), params.Year)
	if err != nil {
		logger.Error("Failed to compute monthly trend", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly trend"})
		return
	}

	c.JSON(http.StatusOK, dto.MonthlyTrendResponse{Year: params.Year, Months: months})
}

func (h *reportingHandler) getCategoryBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.CategoryBreakdownParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	categories, err := h.reportingService.CategoryBreakdown(c.Request.Context(), params.Year, params.Type, params.Limit)
	if err != nil {
		logger.Error("Failed to compute category breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute category breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.CategoryBreakdownResponse{
		Year:       params.Year,
		Type:       params.Type,
		Categories: categories,
	})
}
