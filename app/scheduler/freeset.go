package scheduler

import (
	"sort"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// PeriodContext is the occupancy picture for one (cycle day, period).
type PeriodContext struct {
	// TeachingStaff is the set of staff with a timetable slot in the period.
	TeachingStaff map[string]bool
	// OccupiedVenues maps venue ID to the staff member teaching there.
	OccupiedVenues map[string]string
	// AssignedHere is the set of staff already substituting in this period
	// today, across all absences.
	AssignedHere map[string]bool
}

// FreeSetFilter carries the date-level inputs of the free-teacher rule.
type FreeSetFilter struct {
	// Candidates are active staff with can_substitute, in first-name order.
	Candidates []models.Staff
	// Absent is the set of staff absent on the date.
	Absent map[string]bool
	// HomeVenues maps staff ID to home venue ID ("floaters" are missing).
	HomeVenues map[string]string
	// DailyLoad counts substitutions already assigned today per staff.
	DailyLoad map[string]int
	// Exclude removes specific staff (the absent teacher, a decliner).
	Exclude map[string]bool
}

// FreeTeachers computes the free-teacher set for one period: substitute-
// eligible staff minus those teaching the period, absent, excluded, already
// substituting this period, or whose home room is occupied by another
// teacher. Order follows Candidates (first-name ascending). Daily-load
// filtering is the caller's concern so it can fall back to loaded
// candidates when no fresh ones remain.
func FreeTeachers(ctx PeriodContext, f FreeSetFilter) []models.Staff {
	var free []models.Staff
	for _, c := range f.Candidates {
		if f.Exclude[c.ID] || f.Absent[c.ID] {
			continue
		}
		if ctx.TeachingStaff[c.ID] || ctx.AssignedHere[c.ID] {
			continue
		}
		// Room blocking: a teacher whose home room is in use by someone
		// else is expected to be in another room already.
		if home, ok := f.HomeVenues[c.ID]; ok {
			if occupier, used := ctx.OccupiedVenues[home]; used && occupier != c.ID {
				continue
			}
		}
		free = append(free, c)
	}
	return free
}

// SplitByLoad partitions the free set into zero-load candidates and the
// rest. The engine prefers teachers who have not substituted yet today.
func SplitByLoad(free []models.Staff, load map[string]int) (fresh, loaded []models.Staff) {
	for _, s := range free {
		if load[s.ID] == 0 {
			fresh = append(fresh, s)
		} else {
			loaded = append(loaded, s)
		}
	}
	return fresh, loaded
}

// PickByPointer selects, from first-name-ordered candidates, the first whose
// first-name initial is >= the pointer letter, wrapping to the alphabetical
// start when none qualifies.
func PickByPointer(candidates []models.Staff, pointer byte) (models.Staff, bool) {
	if len(candidates) == 0 {
		return models.Staff{}, false
	}
	for _, c := range candidates {
		if c.Initial() >= pointer {
			return c, true
		}
	}
	return candidates[0], true
}

// NextPointer returns the letter after the given initial, wrapping Z to A.
func NextPointer(initial byte) byte {
	if initial >= 'Z' || initial < 'A' {
		return 'A'
	}
	return initial + 1
}

// SortByFirstName orders staff by first name then last name, the rotation
// ordering used everywhere in the scheduler.
func SortByFirstName(staff []models.Staff) {
	sort.SliceStable(staff, func(i, j int) bool {
		if staff[i].FirstName != staff[j].FirstName {
			return staff[i].FirstName < staff[j].FirstName
		}
		return staff[i].LastName < staff[j].LastName
	})
}
