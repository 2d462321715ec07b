package models

import "fmt"

// ShiftPattern selects the shift-name vocabulary and per-shift hours for a schedule
type ShiftPattern string

const (
	// Pattern8Hour is a 3-shift rotation: morning, afternoon, night (8h each)
	Pattern8Hour ShiftPattern = "8hour"
	// Pattern12Hour is a 2-shift rotation: day, night (12h each)
	Pattern12Hour ShiftPattern = "12hour"
)

// ShiftTime holds the clock boundaries of a named shift, for display and export
type ShiftTime struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

var shiftNames = map[ShiftPattern][]string{
	Pattern8Hour:  {"morning", "afternoon", "night"},
	Pattern12Hour: {"day", "night"},
}

var shiftTimes = map[ShiftPattern]map[string]ShiftTime{
	Pattern8Hour: {
		"morning":   {Start: "07:00", End: "15:00"},
		"afternoon": {Start: "15:00", End: "23:00"},
		"night":     {Start: "23:00", End: "07:00"},
	},
	Pattern12Hour: {
		"day":   {Start: "07:00", End: "19:00"},
		"night": {Start: "19:00", End: "07:00"},
	},
}

// Valid reports whether the pattern is one of the two supported rotations
func (p ShiftPattern) Valid() bool {
	_, ok := shiftNames[p]
	return ok
}

// ShiftNames returns the pattern's shift names in their fixed daily order
func (p ShiftPattern) ShiftNames() []string {
	names, ok := shiftNames[p]
	if !ok {
		panic(fmt.Sprintf("unknown shift pattern %q", p))
	}
	return names
}

// HoursPerShift returns the fixed duration of every shift in the pattern
func (p ShiftPattern) HoursPerShift() int {
	switch p {
	case Pattern8Hour:
		return 8
	case Pattern12Hour:
		return 12
	}
	panic(fmt.Sprintf("unknown shift pattern %q", p))
}

// ShiftTime returns the clock boundaries of a shift name. The vocabulary is
// closed, so an unknown name is a programmer error and panics.
func (p ShiftPattern) ShiftTime(name string) ShiftTime {
	st, ok := shiftTimes[p][name]
	if !ok {
		panic(fmt.Sprintf("shift %q is not part of pattern %q", name, p))
	}
	return st
}
