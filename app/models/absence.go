package models

import "time"

// Absence is a reported staff absence over one or more school days.
// Exactly one of EndDate or IsOpenEnded constrains the range.
type Absence struct {
	ID            string        `json:"id" db:"id"`
	StaffID       string        `json:"staff_id" db:"staff_id"`
	StartDate     time.Time     `json:"start_date" db:"start_date"`
	EndDate       *time.Time    `json:"end_date,omitempty" db:"end_date"`
	IsOpenEnded   bool          `json:"is_open_ended" db:"is_open_ended"`
	Type          string        `json:"type" db:"type"`
	Reason        string        `json:"reason" db:"reason"`
	Status        AbsenceStatus `json:"status" db:"status"`
	ReturnedEarly bool          `json:"returned_early" db:"returned_early"`
	ReturnedAt    *time.Time    `json:"returned_at,omitempty" db:"returned_at"`
	ReportedBy    string        `json:"reported_by" db:"reported_by"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`

	Staff *Staff `json:"staff,omitempty"`
}

// CoversDate reports whether date falls inside the absence's effective range.
func (a Absence) CoversDate(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	if d.Before(a.StartDate.Truncate(24 * time.Hour)) {
		return false
	}
	if a.IsOpenEnded || a.EndDate == nil {
		return true
	}
	return !d.After(a.EndDate.Truncate(24 * time.Hour))
}

// SubstituteRequest is a unit of coverage demand for one
// (absence, date, period-or-mentor-duty). The class, subject and venue are
// snapshots taken at allocation time so later timetable edits do not rewrite
// history.
type SubstituteRequest struct {
	ID            string         `json:"id" db:"id"`
	AbsenceID     string         `json:"absence_id" db:"absence_id"`
	RequestDate   time.Time      `json:"request_date" db:"request_date"`
	PeriodNumber  *int           `json:"period_number,omitempty" db:"period_number"`
	IsMentorDuty  bool           `json:"is_mentor_duty" db:"is_mentor_duty"`
	SubstituteID  *string        `json:"substitute_id,omitempty" db:"substitute_id"`
	FallbackLevel *FallbackLevel `json:"fallback_level,omitempty" db:"fallback_level"`
	ClassName     string         `json:"class_name" db:"class_name"`
	Subject       string         `json:"subject" db:"subject"`
	VenueCode     string         `json:"venue_code" db:"venue_code"`
	Status        RequestStatus  `json:"status" db:"status"`
	DeclinedBy    *string        `json:"declined_by,omitempty" db:"declined_by"`
	DeclineReason *string        `json:"decline_reason,omitempty" db:"decline_reason"`
	DeclinedAt    *time.Time     `json:"declined_at,omitempty" db:"declined_at"`
	CancelReason  *string        `json:"cancel_reason,omitempty" db:"cancel_reason"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`

	Substitute *Staff `json:"substitute,omitempty"`
}
