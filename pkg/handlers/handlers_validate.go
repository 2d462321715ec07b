package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jcabalquinto/ward-roster-api/pkg/models"
	"github.com/jcabalquinto/ward-roster-api/pkg/scheduler"
)

// ValidateInput dry-runs the checks a generation request must pass,
// without generating or storing anything
func (h *Handler) ValidateInput(c *gin.Context) {
	var req models.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if err := h.Validate.Struct(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	if req.EndDate < req.StartDate {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": "end_date must not be before start_date"})
		return
	}

	if _, msg := h.loadRoster(req.EmployeeIDs); msg != "" {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": msg})
		return
	}

	dates := scheduler.ExpandDateRange(req.StartDate, req.EndDate)
	shiftNames := req.ShiftType.ShiftNames()

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"employee_count": len(req.EmployeeIDs),
			"date_count":     len(dates),
			"slot_count":     len(dates) * len(shiftNames),
		},
	})
}
