package scheduler

import (
	"time"

	"github.com/JohanBenade/schools-pwa-sub000/app/database"
	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// Bell schedule variants. The calendar seed names one per school day;
// the fallback derives one from the weekday.
const (
	BellTypeA = "type_a" // Mon, Wed
	BellTypeB = "type_b" // Tue, Thu
	BellTypeC = "type_c" // Fri
)

// ResolvedDay is the calendar service's answer for one date.
type ResolvedDay struct {
	Date        time.Time      `json:"date"`
	CycleDay    *int           `json:"cycle_day,omitempty"`
	DayType     models.DayType `json:"day_type"`
	BellVariant string         `json:"bell_variant"`
	IsSchoolDay bool           `json:"is_school_day"`
	TermID      *string        `json:"term_id,omitempty"`
	DayName     string         `json:"day_name"`
}

// ResolveDay maps a date to its cycle day, day type and bell variant. A
// seeded calendar row is authoritative; dates outside the seed fall back to
// a weekday computation (weekends resolve to weekend/none).
func ResolveDay(db database.Queryer, date time.Time, settings *models.SchedulerSettings) (*ResolvedDay, error) {
	if row, err := database.GetCalendarDay(db, date); err != nil {
		return nil, err
	} else if row != nil {
		return &ResolvedDay{
			Date:        row.Date,
			CycleDay:    row.CycleDay,
			DayType:     row.DayType,
			BellVariant: row.BellVariant,
			IsSchoolDay: row.IsSchoolDay,
			TermID:      row.TermID,
			DayName:     row.DayName,
		}, nil
	}

	if IsWeekend(date) {
		return &ResolvedDay{
			Date:        date,
			DayType:     models.DayWeekend,
			BellVariant: models.BellVariantNone,
			IsSchoolDay: false,
			DayName:     date.Weekday().String(),
		}, nil
	}

	cycleDay := FallbackCycleDay(date, settings.CycleStartDate, settings.CycleLength)
	return &ResolvedDay{
		Date:        date,
		CycleDay:    &cycleDay,
		DayType:     models.DayAcademic,
		BellVariant: FallbackBellVariant(date.Weekday()),
		IsSchoolDay: true,
		DayName:     date.Weekday().String(),
	}, nil
}

// IsWeekend reports whether the date is a Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// FallbackBellVariant derives the bell schedule variant from the weekday for
// dates outside the calendar seed.
func FallbackBellVariant(wd time.Weekday) string {
	switch wd {
	case time.Monday, time.Wednesday:
		return BellTypeA
	case time.Tuesday, time.Thursday:
		return BellTypeB
	case time.Friday:
		return BellTypeC
	default:
		return models.BellVariantNone
	}
}

// FallbackCycleDay computes the cycle day for a weekday outside the seed.
// The cycle advances only on weekdays: the count of weekdays since the
// configured cycle start, mod the cycle length, plus one.
func FallbackCycleDay(date, cycleStart time.Time, cycleLength int) int {
	if cycleLength <= 0 {
		cycleLength = 7
	}
	count := 0
	for d := cycleStart; d.Before(date); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			count++
		}
	}
	return count%cycleLength + 1
}

// SchoolWeekdays returns the Mon-Fri dates in [start, end]. Holiday
// filtering is the caller's choice via per-date resolution.
func SchoolWeekdays(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			dates = append(dates, d)
		}
	}
	return dates
}

// WeekBounds returns the Monday and Friday of the week containing the date.
func WeekBounds(date time.Time) (time.Time, time.Time) {
	d := dateOnly(date)
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	monday := d.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 4)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
