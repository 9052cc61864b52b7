package database

import (
	"database/sql"
	"time"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// GetCalendarDay returns the seeded calendar row for a date, or nil when the
// date is outside the seed.
func GetCalendarDay(db Queryer, date time.Time) (*models.CalendarDay, error) {
	d := &models.CalendarDay{}
	query := `SELECT date, cycle_day, day_type, bell_variant, is_school_day, term_id, day_name
			  FROM school_calendar WHERE date = $1`
	err := db.QueryRow(query, date.Format("2006-01-02")).Scan(
		&d.Date, &d.CycleDay, &d.DayType, &d.BellVariant, &d.IsSchoolDay, &d.TermID, &d.DayName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// GetBellSlots returns the ordered slots of a bell schedule variant.
func GetBellSlots(db Queryer, variant string) ([]models.BellSlot, error) {
	query := `SELECT id, variant, slot_type, period_number, start_time, end_time, is_teaching, is_break, sort_order
			  FROM bell_slots WHERE variant = $1 ORDER BY sort_order`
	rows, err := db.Query(query, variant)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []models.BellSlot
	for rows.Next() {
		var s models.BellSlot
		if err := rows.Scan(
			&s.ID, &s.Variant, &s.SlotType, &s.PeriodNumber,
			&s.StartTime, &s.EndTime, &s.IsTeaching, &s.IsBreak, &s.SortOrder,
		); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// GetPeriodStartTime resolves when a period starts on a given date: the
// date's bell variant wins, the periods table is the fallback.
func GetPeriodStartTime(db Queryer, date time.Time, periodNumber int) (string, error) {
	day, err := GetCalendarDay(db, date)
	if err != nil {
		return "", err
	}
	if day != nil && day.BellVariant != models.BellVariantNone {
		var start string
		err := db.QueryRow(
			`SELECT start_time FROM bell_slots WHERE variant = $1 AND slot_type = 'period' AND period_number = $2`,
			day.BellVariant, periodNumber,
		).Scan(&start)
		if err == nil {
			return start, nil
		}
		if err != sql.ErrNoRows {
			return "", err
		}
	}

	var start string
	err = db.QueryRow(`SELECT start_time FROM periods WHERE number = $1`, periodNumber).Scan(&start)
	if err != nil {
		return "", err
	}
	return start, nil
}

// GetTermForDate returns the term containing the date, or nil.
func GetTermForDate(db Queryer, date time.Time) (*models.Term, error) {
	t := &models.Term{}
	query := `SELECT id, name, start_date, end_date FROM terms
			  WHERE start_date <= $1 AND end_date >= $1 ORDER BY start_date LIMIT 1`
	err := db.QueryRow(query, date.Format("2006-01-02")).Scan(&t.ID, &t.Name, &t.StartDate, &t.EndDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetPeriods returns all teaching/non-teaching periods in sort order.
func GetPeriods(db Queryer) ([]models.Period, error) {
	rows, err := db.Query(`SELECT id, number, is_teaching, start_time, end_time, sort_order
		FROM periods ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []models.Period
	for rows.Next() {
		var p models.Period
		if err := rows.Scan(&p.ID, &p.Number, &p.IsTeaching, &p.StartTime, &p.EndTime, &p.SortOrder); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}
