package scheduler

import "sort"

// HorizonPolicy is the primary assignment strategy: drive every employee
// toward a flat TargetHours total over the whole horizon, in two passes.
// Pass 1 spreads assignments evenly across dates and shift names under
// soft per-day and per-slot caps; pass 2 backfills employees still short
// of the target wherever a slot can legally take them.
type HorizonPolicy struct{}

func (HorizonPolicy) Name() string { return "horizon" }

// Assign runs both passes and reports employees that ended under target
func (HorizonPolicy) Assign(req Request) Result {
	st := newState(req)
	if st == nil {
		return emptyResult()
	}

	// Soft caps spreading totalRequired shift instances across the horizon
	totalRequired := len(st.roster) * ceilDiv(TargetHours, st.hoursPerShift)
	perDay := ceilDiv(totalRequired, len(st.dates))
	perSlot := ceilDiv(perDay, len(st.pattern.ShiftNames()))

	chain := []Comparator{byHours, byConsecutive}

	st.distribute(perSlot, perDay, chain)
	st.backfill(perSlot, perDay)

	return st.result(st.shortfallBelow(TargetHours))
}

// distribute is pass 1: fill the most-needy slot, re-rank, repeat. Slots
// are ordered by current assigned count with generation order as the
// tie-break, so desirability tracks earlier assignments deterministically.
func (st *state) distribute(perSlot, perDay int, chain []Comparator) {
	order := make([]*slot, len(st.slots))
	copy(order, st.slots)

	for {
		sort.SliceStable(order, func(i, j int) bool {
			if len(order[i].assigned) != len(order[j].assigned) {
				return len(order[i].assigned) < len(order[j].assigned)
			}
			return order[i].index < order[j].index
		})

		filled := false
		for _, sl := range order {
			if len(sl.assigned) >= perSlot || st.dayCount[sl.date] >= perDay {
				continue
			}

			pool := st.horizonPool(sl)
			if len(pool) == 0 {
				continue
			}
			sortCandidates(st, sl, pool, chain)

			room := perSlot - len(sl.assigned)
			if dayRoom := perDay - st.dayCount[sl.date]; dayRoom < room {
				room = dayRoom
			}
			if room > len(pool) {
				room = len(pool)
			}
			for _, cand := range pool[:room] {
				st.assign(sl, cand.emp.ID)
			}

			filled = true
			break // counts changed; re-rank before touching the next slot
		}
		if !filled {
			return
		}
	}
}

// horizonPool builds pass-1 candidates: present that day, under the hour
// target, not already in the slot, and not over the consecutive-day cap
func (st *state) horizonPool(sl *slot) []candidate {
	var pool []candidate
	for i, emp := range st.roster {
		if sl.has(emp.ID) || st.unavailable(emp.ID, sl.date) {
			continue
		}
		if st.hours[emp.ID]+st.hoursPerShift > TargetHours {
			continue
		}
		if st.runWith(emp.ID, sl.date) > MaxConsecutiveShiftDays {
			continue
		}
		pool = append(pool, candidate{emp: emp, order: i})
	}
	return pool
}

// backfill is pass 2: walk the roster in order and keep booking each
// under-target employee into the first legal slot until the target is met
// or no slot remains. Slots stay under the pass-1 soft caps.
func (st *state) backfill(perSlot, perDay int) {
	for _, emp := range st.roster {
		for st.hours[emp.ID]+st.hoursPerShift <= TargetHours {
			sl := st.firstOpenSlot(emp.ID, perSlot, perDay)
			if sl == nil {
				break
			}
			st.assign(sl, emp.ID)
		}
	}
}

func (st *state) firstOpenSlot(employeeID string, perSlot, perDay int) *slot {
	for _, sl := range st.slots {
		if sl.has(employeeID) || st.unavailable(employeeID, sl.date) {
			continue
		}
		if len(sl.assigned) >= perSlot || st.dayCount[sl.date] >= perDay {
			continue
		}
		if st.runWith(employeeID, sl.date) > MaxConsecutiveShiftDays {
			continue
		}
		return sl
	}
	return nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
