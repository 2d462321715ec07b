package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcabalquinto/ward-roster-api/pkg/models"
)

func TestWeeklyRoleCoverageOrdering(t *testing.T) {
	// A junior nurse is listed first, but the slot prefers candidates that
	// bring a missing role class: senior nurse, then midwife, then attendant.
	roster := []models.Employee{
		emp("junior", models.PositionNurse1),
		emp("senior", models.PositionNurse3),
		emp("midwife", models.PositionMidwife1),
		emp("attendant", models.PositionNA1),
	}

	res := WeeklyPolicy{SlotSize: 3}.Assign(Request{
		Roster:    roster,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
		Pattern:   models.Pattern8Hour,
	})

	bySlot := map[string][]models.ShiftAssignment{}
	for _, a := range res.Assignments {
		bySlot[slotKey(a)] = append(bySlot[slotKey(a)], a)
	}

	first := bySlot["2026-03-02|morning"]
	require.Len(t, first, 3)
	assert.Equal(t, "senior", first[0].EmployeeID)
	assert.Equal(t, "midwife", first[1].EmployeeID)
	assert.Equal(t, "attendant", first[2].EmployeeID)
	assert.True(t, first[0].IsPointPerson)
	assert.False(t, first[1].IsPointPerson)
	assert.False(t, first[2].IsPointPerson)
}

func TestWeeklyHourCapWithinISOWeek(t *testing.T) {
	// One Monday-to-Sunday week, one candidate per slot. Slots are walked
	// in generation order and nothing forbids stacking shift names on the
	// same date, so the lone employee takes every slot until the 40h cap
	// closes the week after five 8h shifts.
	res := WeeklyPolicy{SlotSize: 1}.Assign(Request{
		Roster:    []models.Employee{emp("solo", models.PositionNurse2)},
		StartDate: "2026-01-05",
		EndDate:   "2026-01-11",
		Pattern:   models.Pattern8Hour,
	})

	require.Len(t, res.Assignments, 5)
	want := []struct{ date, name string }{
		{"2026-01-05", "morning"},
		{"2026-01-05", "afternoon"},
		{"2026-01-05", "night"},
		{"2026-01-06", "morning"},
		{"2026-01-06", "afternoon"},
	}
	for i, a := range res.Assignments {
		assert.Equal(t, want[i].date, a.Date)
		assert.Equal(t, want[i].name, a.ShiftName)
	}

	// 40 hours assigned, so nobody is reported understaffed
	assert.Empty(t, res.Understaffed)
}

func TestWeeklyCapResetsAcrossWeeks(t *testing.T) {
	// Two ISO weeks: the cap applies per week, so the second week opens
	// fresh headroom.
	res := WeeklyPolicy{SlotSize: 1}.Assign(Request{
		Roster:    []models.Employee{emp("solo", models.PositionNurse2)},
		StartDate: "2026-01-05",
		EndDate:   "2026-01-18",
		Pattern:   models.Pattern8Hour,
	})

	weekHours := map[string]int{}
	for _, a := range res.Assignments {
		weekHours[weekOf(a.Date)] += 8
	}
	require.Len(t, weekHours, 2)
	for week, hours := range weekHours {
		assert.LessOrEqual(t, hours, MaxWeeklyHours, "week %s", week)
		assert.Greater(t, hours, 0, "week %s", week)
	}
}

func TestWeeklyUnderstaffedListsOnlyUnassigned(t *testing.T) {
	roster := []models.Employee{
		emp("works", models.PositionNurse1),
		emp("off", models.PositionNurse2, "2026-03-02"),
	}

	res := WeeklyPolicy{SlotSize: 1}.Assign(Request{
		Roster:    roster,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
		Pattern:   models.Pattern8Hour,
	})

	require.NotEmpty(t, res.Assignments)
	for _, a := range res.Assignments {
		assert.Equal(t, "works", a.EmployeeID)
	}

	require.Len(t, res.Understaffed, 1)
	assert.Equal(t, "off", res.Understaffed[0].EmployeeID)
	assert.Equal(t, 0, res.Understaffed[0].HoursAssigned)
}

func TestWeeklyDeterminism(t *testing.T) {
	req := propertyFixture()

	first := WeeklyPolicy{SlotSize: DefaultWeeklySlotSize}.Assign(req)
	second := WeeklyPolicy{SlotSize: DefaultWeeklySlotSize}.Assign(req)

	require.Equal(t, first.Assignments, second.Assignments)
	require.Equal(t, first.Understaffed, second.Understaffed)
}

func TestWeeklyDefaultSlotSize(t *testing.T) {
	// Zero value falls back to the default slot size
	res := WeeklyPolicy{}.Assign(Request{
		Roster: []models.Employee{
			emp("e1", models.PositionNurse1),
			emp("e2", models.PositionNurse2),
			emp("e3", models.PositionMidwife1),
			emp("e4", models.PositionNA1),
		},
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
		Pattern:   models.Pattern12Hour,
	})

	perSlot := map[string]int{}
	for _, a := range res.Assignments {
		perSlot[slotKey(a)]++
	}
	for key, count := range perSlot {
		assert.Equal(t, DefaultWeeklySlotSize, count, "slot %s", key)
	}
}
