package scheduler

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/JohanBenade/schools-pwa-sub000/app/database"
	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// OverviewFilter selects the date window of an overview query.
type OverviewFilter string

const (
	OverviewToday    OverviewFilter = "today"
	OverviewTomorrow OverviewFilter = "tomorrow"
	OverviewWeek     OverviewFilter = "week"
	OverviewNextWeek OverviewFilter = "nextweek"
	OverviewRange    OverviewFilter = "range"
)

// OverviewDay is one date of the coverage overview: who is out, what cover
// stands, and who holds the duties.
type OverviewDay struct {
	Date        time.Time                  `json:"date"`
	DayName     string                     `json:"day_name"`
	CycleDay    *int                       `json:"cycle_day,omitempty"`
	DayType     models.DayType             `json:"day_type"`
	BellVariant string                     `json:"bell_variant"`
	IsSchoolDay bool                       `json:"is_school_day"`
	Absences    []models.Absence           `json:"absences"`
	Requests    []models.SubstituteRequest `json:"requests"`
	Duties      []models.DutyRosterEntry   `json:"duties"`
	SportEvents []models.SportDuty         `json:"sport_events,omitempty"`
}

// Overview is the operational coverage picture over a date window.
type Overview struct {
	Start time.Time     `json:"start"`
	End   time.Time     `json:"end"`
	Days  []OverviewDay `json:"days"`
}

// QueryOverview assembles the coverage overview for a filter window. The
// range filter takes explicit start and end dates; the named filters derive
// their window from now.
func QueryOverview(db *sql.DB, filter OverviewFilter, start, end, now time.Time) (*Overview, error) {
	switch filter {
	case OverviewToday:
		start, end = dateOnly(now), dateOnly(now)
	case OverviewTomorrow:
		start = dateOnly(now).AddDate(0, 0, 1)
		end = start
	case OverviewWeek:
		start, end = WeekBounds(now)
	case OverviewNextWeek:
		start, end = WeekBounds(now.AddDate(0, 0, 7))
	case OverviewRange:
		start, end = dateOnly(start), dateOnly(end)
		if end.Before(start) {
			return nil, fmt.Errorf("%w: overview range end before start", ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("%w: unknown overview filter %q", ErrInvalidInput, filter)
	}

	settings, err := database.GetSettings(db)
	if err != nil {
		return nil, err
	}
	absences, err := database.GetAbsencesInRange(db, start, end)
	if err != nil {
		return nil, err
	}
	duties, err := database.GetDutyEntriesInRange(db, start, end)
	if err != nil {
		return nil, err
	}

	ov := &Overview{Start: start, End: end}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day, err := ResolveDay(db, d, settings)
		if err != nil {
			return nil, err
		}
		od := OverviewDay{
			Date:        day.Date,
			DayName:     day.DayName,
			CycleDay:    day.CycleDay,
			DayType:     day.DayType,
			BellVariant: day.BellVariant,
			IsSchoolDay: day.IsSchoolDay,
		}
		for _, a := range absences {
			if a.Status != models.AbsenceCancelled && a.CoversDate(d) {
				od.Absences = append(od.Absences, a)
			}
		}
		if day.IsSchoolDay {
			if od.Requests, err = database.GetRequestsByDate(db, d); err != nil {
				return nil, err
			}
			if od.SportEvents, err = database.GetSportVenueClashes(db, d); err != nil {
				return nil, err
			}
		}
		for _, e := range duties {
			if sameDate(e.DutyDate, d) {
				od.Duties = append(od.Duties, e)
			}
		}
		ov.Days = append(ov.Days, od)
	}
	return ov, nil
}

// AbsenceEvents returns an absence's audit trail, oldest first.
func AbsenceEvents(db *sql.DB, absenceID string) ([]models.EventLogEntry, error) {
	if _, err := database.GetAbsenceByID(db, absenceID); err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: absence %s", ErrNotFound, absenceID)
	} else if err != nil {
		return nil, err
	}
	return database.GetEventsByAbsence(db, absenceID)
}
