package scheduler

// WeeklyPolicy is the alternate single-pass strategy: no horizon target,
// a MaxWeeklyHours cap per ISO week instead, and role coverage as the
// leading tie-break so each slot gets a senior nurse, a midwife, and a
// nursing attendant first when candidates compete.
type WeeklyPolicy struct {
	// SlotSize is the headcount each slot is filled toward
	SlotSize int
}

func (WeeklyPolicy) Name() string { return "weekly" }

// Assign walks the slots once in generation order, filling each toward
// SlotSize. The understaffed report lists only employees who received no
// assignments at all; this mode has no per-employee hour target.
func (p WeeklyPolicy) Assign(req Request) Result {
	st := newState(req)
	if st == nil {
		return emptyResult()
	}

	size := p.SlotSize
	if size <= 0 {
		size = DefaultWeeklySlotSize
	}

	chain := []Comparator{byRoleCoverage, byHours, byConsecutive}

	for _, sl := range st.slots {
		for len(sl.assigned) < size {
			pool := st.weeklyPool(sl)
			if len(pool) == 0 {
				break
			}
			// Re-rank after every assignment: coverage ranks shift as the
			// slot gains members.
			sortCandidates(st, sl, pool, chain)
			st.assign(sl, pool[0].emp.ID)
		}
	}

	return st.result(st.shortfallBelow(1))
}

// weeklyPool builds candidates for one slot: present that day, under the
// weekly hour cap, not already in the slot, and under the consecutive cap
func (st *state) weeklyPool(sl *slot) []candidate {
	week := weekOf(sl.date)
	var pool []candidate
	for i, emp := range st.roster {
		if sl.has(emp.ID) || st.unavailable(emp.ID, sl.date) {
			continue
		}
		if st.weekHours[emp.ID][week]+st.hoursPerShift > MaxWeeklyHours {
			continue
		}
		if st.runWith(emp.ID, sl.date) > MaxConsecutiveShiftDays {
			continue
		}
		pool = append(pool, candidate{emp: emp, order: i})
	}
	return pool
}
