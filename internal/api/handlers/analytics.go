package handlers

import (
	"net/http"

	apperrors "application-catalog-bff/internal/errors"
	"application-catalog-bff/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles HTTP requests for access events and the usage summary
type AnalyticsHandler struct {
	analyticsService service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// RecordAccess handles POST /tool_access
// @Summary Record an access event
// @Description Append an immutable view/open event with a server-assigned timestamp
// @Tags analytics
// @Accept json
// @Produce json
// @Param event body service.ToolAccessRequest true "Access event payload"
// @Success 200 {object} service.ToolAccessResponse "Recorded event"
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Router /tool_access [post]
func (h *AnalyticsHandler) RecordAccess(c *gin.Context) {
	var req service.ToolAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	event, err := h.analyticsService.RecordAccess(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, event)
}

// GetSummary handles GET /analytics
// @Summary Get the usage summary
// @Description Aggregate counters, top-10 tool ranking and 20 most recent events
// @Tags analytics
// @Accept json
// @Produce json
// @Success 200 {object} service.AnalyticsSummary "Usage summary"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /analytics [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.analyticsService.Summary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
