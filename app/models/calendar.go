package models

import "time"

// Term is one academic term of the school year.
type Term struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`
}

// CalendarDay is the seeded mapping from a calendar date to its cycle day,
// day type and bell schedule variant. Seeded rows are authoritative; the
// fallback computation applies only to dates outside the seed.
type CalendarDay struct {
	Date        time.Time `json:"date" db:"date"`
	CycleDay    *int      `json:"cycle_day,omitempty" db:"cycle_day"`
	DayType     DayType   `json:"day_type" db:"day_type"`
	BellVariant string    `json:"bell_variant" db:"bell_variant"`
	IsSchoolDay bool      `json:"is_school_day" db:"is_school_day"`
	TermID      *string   `json:"term_id,omitempty" db:"term_id"`
	DayName     string    `json:"day_name" db:"day_name"`
}

// BellVariantNone marks dates with no bell schedule (weekends, holidays).
const BellVariantNone = "none"

// BellSlot is one slot of a bell schedule variant.
type BellSlot struct {
	ID           string   `json:"id" db:"id"`
	Variant      string   `json:"variant" db:"variant"`
	SlotType     SlotType `json:"slot_type" db:"slot_type"`
	PeriodNumber *int     `json:"period_number,omitempty" db:"period_number"`
	StartTime    string   `json:"start_time" db:"start_time"`
	EndTime      string   `json:"end_time" db:"end_time"`
	IsTeaching   bool     `json:"is_teaching" db:"is_teaching"`
	IsBreak      bool     `json:"is_break" db:"is_break"`
	SortOrder    int      `json:"sort_order" db:"sort_order"`
}

// Period is one of the teaching periods of the cycle timetable.
type Period struct {
	ID         string `json:"id" db:"id"`
	Number     int    `json:"number" db:"number"`
	IsTeaching bool   `json:"is_teaching" db:"is_teaching"`
	StartTime  string `json:"start_time" db:"start_time"`
	EndTime    string `json:"end_time" db:"end_time"`
	SortOrder  int    `json:"sort_order" db:"sort_order"`
}
