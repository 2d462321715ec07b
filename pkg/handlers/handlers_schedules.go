package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jcabalquinto/ward-roster-api/pkg/database"
	"github.com/jcabalquinto/ward-roster-api/pkg/models"
	"github.com/jcabalquinto/ward-roster-api/pkg/scheduler"
)

// loadRoster resolves the requested employee IDs to domain employees,
// preserving request order so generation stays deterministic per request.
func (h *Handler) loadRoster(ids []string) ([]models.Employee, string) {
	var records []database.EmployeeRecord
	if err := h.DB.Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, "could not fetch employees"
	}

	byID := make(map[string]*database.EmployeeRecord, len(records))
	for i := range records {
		byID[records[i].ID] = &records[i]
	}

	roster := make([]models.Employee, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, "duplicate employee id: " + id
		}
		seen[id] = true
		record, ok := byID[id]
		if !ok {
			return nil, "unknown employee id: " + id
		}
		roster = append(roster, record.Model())
	}
	return roster, ""
}

// GenerateSchedule runs the assignment engine over the selected roster and
// persists the resulting schedule. Understaffing is reported alongside the
// schedule, never as an error.
func (h *Handler) GenerateSchedule(c *gin.Context) {
	var req models.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EndDate < req.StartDate {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return
	}

	roster, msg := h.loadRoster(req.EmployeeIDs)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	policy, err := scheduler.ForName(req.Policy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := policy.Assign(scheduler.Request{
		Roster:    roster,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Pattern:   req.ShiftType,
		DaysOff:   req.DayOffRequests,
	})

	record := database.ScheduleRecord{
		ID:             uuid.NewString(),
		Name:           req.Name,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		ShiftType:      string(req.ShiftType),
		Shifts:         result.Assignments,
		DayOffRequests: req.DayOffRequests,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store schedule"})
		return
	}

	h.RecordUsage(c, 1, len(roster))

	log := h.Log.WithFields(map[string]interface{}{
		"schedule_id": record.ID,
		"policy":      policy.Name(),
		"assignments": len(result.Assignments),
	})
	if len(result.Understaffed) > 0 {
		log.WithField("understaffed", len(result.Understaffed)).Warn("schedule generated with understaffing")
	} else {
		log.Info("schedule generated")
	}

	c.JSON(http.StatusCreated, models.GenerateScheduleResponse{
		Schedule:     record.Model(),
		Understaffed: result.Understaffed,
	})
}

// ListSchedules returns all stored schedules without their shift bodies
func (h *Handler) ListSchedules(c *gin.Context) {
	var records []database.ScheduleRecord
	if err := h.DB.Order("created_at desc").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedules"})
		return
	}

	summaries := make([]gin.H, 0, len(records))
	for i := range records {
		summaries = append(summaries, gin.H{
			"id":         records[i].ID,
			"name":       records[i].Name,
			"start_date": records[i].StartDate,
			"end_date":   records[i].EndDate,
			"shift_type": records[i].ShiftType,
			"shifts":     len(records[i].Shifts),
			"created_at": records[i].CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"schedules": summaries})
}

// GetSchedule returns one schedule with derived per-employee hour totals
func (h *Handler) GetSchedule(c *gin.Context) {
	record, ok := h.fetchSchedule(c)
	if !ok {
		return
	}

	schedule := record.Model()
	hours := make(map[string]int)
	for _, shift := range schedule.Shifts {
		if _, done := hours[shift.EmployeeID]; !done {
			hours[shift.EmployeeID] = schedule.EmployeeHours(shift.EmployeeID)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"schedule":       schedule,
		"employee_hours": hours,
	})
}

// DeleteSchedule removes a stored schedule
func (h *Handler) DeleteSchedule(c *gin.Context) {
	result := h.DB.Delete(&database.ScheduleRecord{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete schedule"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}

// ExportScheduleCSV streams a schedule as CSV, one row per assignment
func (h *Handler) ExportScheduleCSV(c *gin.Context) {
	record, ok := h.fetchSchedule(c)
	if !ok {
		return
	}
	schedule := record.Model()

	// Employee names for the export rows
	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, shift := range schedule.Shifts {
		if !seen[shift.EmployeeID] {
			seen[shift.EmployeeID] = true
			ids = append(ids, shift.EmployeeID)
		}
	}
	var employees []database.EmployeeRecord
	if len(ids) > 0 {
		h.DB.Where("id IN ?", ids).Find(&employees)
	}
	names := make(map[string]database.EmployeeRecord, len(employees))
	for i := range employees {
		names[employees[i].ID] = employees[i]
	}

	var out strings.Builder
	writer := csv.NewWriter(&out)
	writer.Write([]string{"date", "shift_name", "start", "end", "employee_id", "employee_name", "position", "point_person", "hours"})

	for _, shift := range schedule.Shifts {
		clock := schedule.ShiftType.ShiftTime(shift.ShiftName)
		name := shift.EmployeeID
		position := ""
		if emp, found := names[shift.EmployeeID]; found {
			name = emp.FirstName + " " + emp.LastName
			position = emp.Position
		}
		point := ""
		if shift.IsPointPerson {
			point = "yes"
		}
		writer.Write([]string{
			shift.Date,
			shift.ShiftName,
			clock.Start,
			clock.End,
			shift.EmployeeID,
			name,
			position,
			point,
			fmt.Sprintf("%d", schedule.ShiftType.HoursPerShift()),
		})
	}
	writer.Flush()

	c.Header("Content-Disposition", `attachment; filename="`+schedule.Name+`.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(out.String()))
}

func (h *Handler) fetchSchedule(c *gin.Context) (*database.ScheduleRecord, bool) {
	var record database.ScheduleRecord
	if err := h.DB.First(&record, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedule"})
		return nil, false
	}
	return &record, true
}
