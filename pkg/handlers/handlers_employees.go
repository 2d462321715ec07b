package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jcabalquinto/ward-roster-api/pkg/database"
	"github.com/jcabalquinto/ward-roster-api/pkg/models"
)

type employeeRequest struct {
	FirstName        string   `json:"first_name" binding:"required"`
	LastName         string   `json:"last_name" binding:"required"`
	MobileNumber     string   `json:"mobile_number"`
	Position         string   `json:"position" binding:"required"`
	RequestedDaysOff []string `json:"requested_days_off"`
}

// checkEmployeeRequest validates the fields gin binding cannot express
func (h *Handler) checkEmployeeRequest(req *employeeRequest) string {
	if !models.Position(req.Position).Valid() {
		return "unknown position: " + req.Position
	}
	for _, day := range req.RequestedDaysOff {
		if err := h.Validate.Var(day, "datetime=2006-01-02"); err != nil {
			return "requested day off must be YYYY-MM-DD: " + day
		}
	}
	return ""
}

// ListEmployees returns the full roster
func (h *Handler) ListEmployees(c *gin.Context) {
	var records []database.EmployeeRecord
	if err := h.DB.Order("last_name, first_name").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch employees"})
		return
	}

	employees := make([]models.Employee, 0, len(records))
	for i := range records {
		employees = append(employees, records[i].Model())
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// CreateEmployee adds a roster member with a freshly generated ID
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := h.checkEmployeeRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	record := database.EmployeeRecord{
		ID:               uuid.NewString(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		MobileNumber:     req.MobileNumber,
		Position:         req.Position,
		RequestedDaysOff: req.RequestedDaysOff,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create employee"})
		return
	}

	h.Log.WithField("employee_id", record.ID).Info("employee created")
	c.JSON(http.StatusCreated, record.Model())
}

// GetEmployee returns one roster member by ID
func (h *Handler) GetEmployee(c *gin.Context) {
	var record database.EmployeeRecord
	if err := h.DB.First(&record, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch employee"})
		return
	}
	c.JSON(http.StatusOK, record.Model())
}

// UpdateEmployee replaces a roster member's attributes
func (h *Handler) UpdateEmployee(c *gin.Context) {
	var record database.EmployeeRecord
	if err := h.DB.First(&record, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch employee"})
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := h.checkEmployeeRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	record.FirstName = req.FirstName
	record.LastName = req.LastName
	record.MobileNumber = req.MobileNumber
	record.Position = req.Position
	record.RequestedDaysOff = req.RequestedDaysOff

	if err := h.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update employee"})
		return
	}
	c.JSON(http.StatusOK, record.Model())
}

// DeleteEmployee removes a roster member
func (h *Handler) DeleteEmployee(c *gin.Context) {
	result := h.DB.Delete(&database.EmployeeRecord{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete employee"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
