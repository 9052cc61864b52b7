package models

import "time"

// TimetableSlot places a staff member in a (cycle day, period) with a class,
// subject and venue. Within one (cycle day, period) each staff member and
// each venue appears at most once.
type TimetableSlot struct {
	ID           string    `json:"id" db:"id"`
	StaffID      string    `json:"staff_id" db:"staff_id"`
	CycleDay     int       `json:"cycle_day" db:"cycle_day"`
	PeriodNumber int       `json:"period_number" db:"period_number"`
	ClassName    string    `json:"class_name" db:"class_name"`
	Subject      string    `json:"subject" db:"subject"`
	VenueID      *string   `json:"venue_id,omitempty" db:"venue_id"`
	VenueCode    string    `json:"venue_code"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// MentorGroup is a homeroom. A group has exactly one mentor; a staff member
// mentors at most one group.
type MentorGroup struct {
	ID       string  `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Grade    int     `json:"grade" db:"grade"`
	MentorID string  `json:"mentor_id" db:"mentor_id"`
	VenueID  *string `json:"venue_id,omitempty" db:"venue_id"`
}

// GradeBackup configures who covers a mentor register when the mentor is out:
// first the backup, then the grade head.
type GradeBackup struct {
	Grade            int    `json:"grade" db:"grade"`
	BackupStaffID    string `json:"backup_staff_id" db:"backup_staff_id"`
	GradeHeadStaffID string `json:"grade_head_staff_id" db:"grade_head_staff_id"`
}
