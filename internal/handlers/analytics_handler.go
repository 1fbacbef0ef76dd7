package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/services"
)

// AnalyticsHandler exposes the analytics engine over HTTP.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetReport runs the analytics engine over the stored transactions
// @Summary     Get analytics report
// @Description Run the full analytics pipeline over all stored transactions
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} analysis.Report "Analytics report"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/report [get]
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	report, err := h.analyticsService.AnalyzeStored()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// AnalyzeCSV analyzes an uploaded CSV without storing it
// @Summary     Analyze a CSV batch
// @Description Run the analytics pipeline over an uploaded CSV file without persisting it
// @Tags        analytics
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "CSV file (date,type,amount,category,description)"
// @Success     200 {object} services.BatchAnalysis "Batch analysis"
// @Failure     400 {object} ErrorResponse "Invalid or empty upload"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/csv [post]
func (h *AnalyticsHandler) AnalyzeCSV(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "file upload is required"))
		return
	}
	defer file.Close()

	batch, err := h.analyticsService.AnalyzeBatch(file)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, batch)
}

// GetMonths returns the stored monthly rollups, or a yearly breakdown
// @Summary     Get monthly summaries
// @Description List the stored monthly rollups; pass a year for a per-month share breakdown
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year query int false "Calendar year for a share breakdown"
// @Success     200 {object} map[string]interface{} "Monthly summaries or yearly breakdown"
// @Failure     400 {object} ErrorResponse "Invalid year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/months [get]
func (h *AnalyticsHandler) GetMonths(c *gin.Context) {
	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil || year < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid year"))
			return
		}

		breakdown, err := h.analyticsService.GetYearlyBreakdown(year)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"yearly": breakdown})
		return
	}

	summaries, err := h.analyticsService.GetMonthlySummaries()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"months": summaries})
}

// GetDashboard returns the current-month aggregates
// @Summary     Get dashboard
// @Description Get the current-month income, expenses, savings rate, recent activity, and goal progress
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Dashboard "Dashboard"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.analyticsService.GetDashboard()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
