package scheduler

import (
	"sort"

	"github.com/jcabalquinto/ward-roster-api/pkg/models"
)

// candidate is one roster member considered for a slot. order is the
// employee's roster position and acts as the final deterministic tie-break.
type candidate struct {
	emp   models.Employee
	order int
}

// Comparator orders two candidates for a slot. Negative means a goes first.
// Policies stack comparators so that secondary concerns (role coverage)
// can be slotted ahead of the fairness chain without touching it.
type Comparator func(st *state, sl *slot, a, b candidate) int

// byHours puts the least-loaded employee first
func byHours(st *state, _ *slot, a, b candidate) int {
	return st.hours[a.emp.ID] - st.hours[b.emp.ID]
}

// byConsecutive puts the employee with the shortest run of worked days
// ending just before the slot date first
func byConsecutive(st *state, sl *slot, a, b candidate) int {
	return st.consecutiveBefore(a.emp.ID, sl.date) - st.consecutiveBefore(b.emp.ID, sl.date)
}

// byRoleCoverage prefers candidates whose coverage role (senior nurse,
// midwife, nursing attendant) is not yet represented in the slot
func byRoleCoverage(st *state, sl *slot, a, b candidate) int {
	return coverageRank(st, sl, a.emp) - coverageRank(st, sl, b.emp)
}

// coverageRank is 0 when the employee would fill a coverage role the slot
// still lacks, 1 otherwise
func coverageRank(st *state, sl *slot, emp models.Employee) int {
	role := st.roles[emp.ID]

	var hasSenior, hasMidwife, hasAttendant bool
	for _, id := range sl.assigned {
		assigned := st.roles[id]
		switch {
		case assigned.SeniorNurse():
			hasSenior = true
		case assigned.Category == models.CategoryMidwife:
			hasMidwife = true
		case assigned.Category == models.CategoryNursingAttendant:
			hasAttendant = true
		}
	}

	switch {
	case role.SeniorNurse() && !hasSenior:
		return 0
	case role.Category == models.CategoryMidwife && !hasMidwife:
		return 0
	case role.Category == models.CategoryNursingAttendant && !hasAttendant:
		return 0
	}
	return 1
}

// sortCandidates orders the pool by the comparator chain, falling back to
// roster order so identical inputs always produce identical output.
func sortCandidates(st *state, sl *slot, pool []candidate, chain []Comparator) {
	sort.SliceStable(pool, func(i, j int) bool {
		for _, compare := range chain {
			if d := compare(st, sl, pool[i], pool[j]); d != 0 {
				return d < 0
			}
		}
		return pool[i].order < pool[j].order
	})
}
