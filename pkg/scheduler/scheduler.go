// Package scheduler implements the shift-assignment engine: a greedy,
// constraint-driven allocation of roster employees to (date, shift-name)
// slots with fairness balancing and consecutive-shift limits.
//
// The engine is a pure computation over an in-memory snapshot of the
// roster. It never performs I/O and never errors for business shortfalls;
// partial coverage is reported, not thrown.
package scheduler

import (
	"fmt"

	"github.com/jcabalquinto/ward-roster-api/pkg/models"
)

const (
	// TargetHours is the horizon hour target every employee is driven toward
	TargetHours = 80

	// MaxWeeklyHours caps an employee's hours per ISO week in the weekly policy
	MaxWeeklyHours = 40

	// MaxConsecutiveShiftDays is the longest unbroken daily run an employee may work
	MaxConsecutiveShiftDays = 3

	// DefaultWeeklySlotSize staffs weekly-policy slots with one employee per
	// coverage role (senior nurse, midwife, nursing attendant)
	DefaultWeeklySlotSize = 3
)

// Request carries one generation run's inputs. DaysOff holds the
// schedule-specific requests; each employee's standing requested-days-off
// list is unioned in, so both sources count as unavailability.
type Request struct {
	Roster    []models.Employee
	StartDate string
	EndDate   string
	Pattern   models.ShiftPattern
	DaysOff   map[string][]string
}

// Result is a complete (possibly partial-coverage) assignment outcome
type Result struct {
	Assignments  []models.ShiftAssignment
	Understaffed []models.UnderstaffedEmployee
}

// Policy is a selectable assignment strategy over the same slot model
type Policy interface {
	Name() string
	Assign(req Request) Result
}

// ForName resolves a policy by its wire name. An empty name selects the
// primary 80-hour-horizon policy.
func ForName(name string) (Policy, error) {
	switch name {
	case "", "horizon":
		return HorizonPolicy{}, nil
	case "weekly":
		return WeeklyPolicy{SlotSize: DefaultWeeklySlotSize}, nil
	}
	return nil, fmt.Errorf("unknown assignment policy %q", name)
}

// slot is one (date, shift-name) unit of coverage to be staffed
type slot struct {
	date     string
	name     string
	index    int // position in generation order, the final sort tie-break
	assigned []string
}

func (s *slot) has(employeeID string) bool {
	for _, id := range s.assigned {
		if id == employeeID {
			return true
		}
	}
	return false
}

// state is the per-run bookkeeping both policies thread through assignment.
// It is local to one Assign call, so concurrent runs never interfere.
type state struct {
	pattern       models.ShiftPattern
	hoursPerShift int
	roster        []models.Employee
	roles         map[string]models.Role
	dates         []string
	slots         []*slot
	daysOff       map[string]map[string]bool
	hours         map[string]int
	weekHours     map[string]map[string]int
	worked        map[string]map[string]bool
	dayCount      map[string]int
	assignments   []models.ShiftAssignment
}

// newState expands the horizon and initializes bookkeeping. It returns nil
// for degenerate inputs (empty roster, inverted or malformed date range);
// callers translate that into an empty result.
func newState(req Request) *state {
	if len(req.Roster) == 0 {
		return nil
	}
	dates := ExpandDateRange(req.StartDate, req.EndDate)
	if len(dates) == 0 {
		return nil
	}

	st := &state{
		pattern:       req.Pattern,
		hoursPerShift: req.Pattern.HoursPerShift(),
		roster:        req.Roster,
		roles:         make(map[string]models.Role, len(req.Roster)),
		dates:         dates,
		daysOff:       make(map[string]map[string]bool, len(req.Roster)),
		hours:         make(map[string]int, len(req.Roster)),
		weekHours:     make(map[string]map[string]int, len(req.Roster)),
		worked:        make(map[string]map[string]bool, len(req.Roster)),
		dayCount:      make(map[string]int, len(dates)),
	}

	for _, date := range dates {
		for _, name := range req.Pattern.ShiftNames() {
			st.slots = append(st.slots, &slot{date: date, name: name, index: len(st.slots)})
		}
	}

	for _, emp := range req.Roster {
		role, _ := emp.Position.Role() // invalid positions fall back to the zero role
		st.roles[emp.ID] = role

		off := make(map[string]bool, len(emp.RequestedDaysOff)+len(req.DaysOff[emp.ID]))
		for _, d := range emp.RequestedDaysOff {
			off[d] = true
		}
		for _, d := range req.DaysOff[emp.ID] {
			off[d] = true
		}
		st.daysOff[emp.ID] = off
	}

	return st
}

// assign books one employee into a slot and updates every running total.
// The first employee into a previously-empty slot becomes its point person.
func (st *state) assign(sl *slot, employeeID string) {
	point := len(sl.assigned) == 0
	sl.assigned = append(sl.assigned, employeeID)
	st.dayCount[sl.date]++
	st.hours[employeeID] += st.hoursPerShift

	week := weekOf(sl.date)
	if st.weekHours[employeeID] == nil {
		st.weekHours[employeeID] = make(map[string]int)
	}
	st.weekHours[employeeID][week] += st.hoursPerShift

	if st.worked[employeeID] == nil {
		st.worked[employeeID] = make(map[string]bool)
	}
	st.worked[employeeID][sl.date] = true

	st.assignments = append(st.assignments, models.ShiftAssignment{
		Date:          sl.date,
		ShiftType:     st.pattern,
		ShiftName:     sl.name,
		EmployeeID:    employeeID,
		IsPointPerson: point,
	})
}

func (st *state) unavailable(employeeID, date string) bool {
	return st.daysOff[employeeID][date]
}

// runWith reports the length of the unbroken daily run that would contain
// date if the employee worked it. Extending both directions catches
// assignments that would bridge two shorter runs into an over-long one.
func (st *state) runWith(employeeID, date string) int {
	worked := st.worked[employeeID]
	run := 1
	for d := prevDay(date); worked[d]; d = prevDay(d) {
		run++
	}
	for d := nextDay(date); worked[d]; d = nextDay(d) {
		run++
	}
	return run
}

// consecutiveBefore counts the unbroken run of worked days ending the day
// before the candidate date. Used as a fairness sort key, not a constraint.
func (st *state) consecutiveBefore(employeeID, date string) int {
	worked := st.worked[employeeID]
	run := 0
	for d := prevDay(date); worked[d]; d = prevDay(d) {
		run++
	}
	return run
}

// shortfallBelow reports every employee whose hours ended under target,
// in roster order for reproducible output.
func (st *state) shortfallBelow(target int) []models.UnderstaffedEmployee {
	report := []models.UnderstaffedEmployee{}
	for _, emp := range st.roster {
		if st.hours[emp.ID] < target {
			report = append(report, models.UnderstaffedEmployee{
				EmployeeID:    emp.ID,
				HoursAssigned: st.hours[emp.ID],
			})
		}
	}
	return report
}

func (st *state) result(understaffed []models.UnderstaffedEmployee) Result {
	assignments := st.assignments
	if assignments == nil {
		assignments = []models.ShiftAssignment{}
	}
	return Result{Assignments: assignments, Understaffed: understaffed}
}

func emptyResult() Result {
	return Result{
		Assignments:  []models.ShiftAssignment{},
		Understaffed: []models.UnderstaffedEmployee{},
	}
}
