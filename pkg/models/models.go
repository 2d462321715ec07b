package models

// Employee represents a roster member available for shift assignment
type Employee struct {
	ID               string   `json:"id"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	MobileNumber     string   `json:"mobile_number,omitempty"`
	Position         Position `json:"position"`
	RequestedDaysOff []string `json:"requested_days_off,omitempty"`
}

// ShiftAssignment assigns one employee to one (date, shift-name) slot
type ShiftAssignment struct {
	Date          string       `json:"date"`
	ShiftType     ShiftPattern `json:"shift_type"`
	ShiftName     string       `json:"shift_name"`
	EmployeeID    string       `json:"employee_id"`
	IsPointPerson bool         `json:"is_point_person"`
}

// UnderstaffedEmployee reports an employee that fell short of the hour target
type UnderstaffedEmployee struct {
	EmployeeID    string `json:"employee_id"`
	HoursAssigned int    `json:"hours_assigned"`
}

// Schedule is the persisted result of one generation run
type Schedule struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	ShiftType      ShiftPattern        `json:"shift_type"`
	Shifts         []ShiftAssignment   `json:"shifts"`
	DayOffRequests map[string][]string `json:"day_off_requests,omitempty"`
	CreatedAt      string              `json:"created_at"`
}

// EmployeeHours derives an employee's total hours from the assignment count.
// Hours come from the pattern's fixed per-shift value, never from clock times.
func (s *Schedule) EmployeeHours(employeeID string) int {
	count := 0
	for _, shift := range s.Shifts {
		if shift.EmployeeID == employeeID {
			count++
		}
	}
	return count * s.ShiftType.HoursPerShift()
}

// GenerateScheduleRequest is the input for the schedule generation endpoint
type GenerateScheduleRequest struct {
	Name           string              `json:"name" validate:"required"`
	StartDate      string              `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string              `json:"end_date" validate:"required,datetime=2006-01-02"`
	ShiftType      ShiftPattern        `json:"shift_type" validate:"required,oneof=8hour 12hour"`
	EmployeeIDs    []string            `json:"employee_ids" validate:"required,min=1"`
	DayOffRequests map[string][]string `json:"day_off_requests,omitempty" validate:"omitempty,dive,dive,datetime=2006-01-02"`
	Policy         string              `json:"policy,omitempty" validate:"omitempty,oneof=horizon weekly"`
}

// GenerateScheduleResponse pairs the stored schedule with the shortfall report
type GenerateScheduleResponse struct {
	Schedule     Schedule               `json:"schedule"`
	Understaffed []UnderstaffedEmployee `json:"understaffed_employees"`
}
