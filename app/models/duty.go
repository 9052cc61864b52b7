package models

import "time"

// TerrainArea is an outdoor supervision zone covered during breaks.
type TerrainArea struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	SortOrder int    `json:"sort_order" db:"sort_order"`
	IsActive  bool   `json:"is_active" db:"is_active"`
}

// DutyRosterEntry assigns a staff member to a duty on a date. TerrainAreaID
// is set iff DutyType is terrain. ReplacementID is set while the original
// assignee is covered by someone else; clearing it reinstates the original.
type DutyRosterEntry struct {
	ID            string    `json:"id" db:"id"`
	DutyDate      time.Time `json:"duty_date" db:"duty_date"`
	DutyType      DutyType  `json:"duty_type" db:"duty_type"`
	TerrainAreaID *string   `json:"terrain_area_id,omitempty" db:"terrain_area_id"`
	StaffID       string    `json:"staff_id" db:"staff_id"`
	ReplacementID *string   `json:"replacement_id,omitempty" db:"replacement_id"`
	ReplacedForID *string   `json:"replaced_for_id,omitempty" db:"replaced_for_id"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`

	Staff       *Staff       `json:"staff,omitempty"`
	Replacement *Staff       `json:"replacement,omitempty"`
	TerrainArea *TerrainArea `json:"terrain_area,omitempty"`
}

// DutyDecline is an audit row for a declined or vacated duty.
type DutyDecline struct {
	ID              string    `json:"id" db:"id"`
	DutyType        string    `json:"duty_type" db:"duty_type"`
	StaffID         string    `json:"staff_id" db:"staff_id"`
	DutyDescription string    `json:"duty_description" db:"duty_description"`
	DutyDate        time.Time `json:"duty_date" db:"duty_date"`
	Reason          string    `json:"reason" db:"reason"`
	DeclinedAt      time.Time `json:"declined_at" db:"declined_at"`
}

// SportDuty is a coordinator-managed duty at a sports fixture. The scheduler
// never reassigns these; it only flags the gap to the coordinator.
type SportDuty struct {
	ID            string    `json:"id" db:"id"`
	EventName     string    `json:"event_name" db:"event_name"`
	DutyDate      time.Time `json:"duty_date" db:"duty_date"`
	StaffID       string    `json:"staff_id" db:"staff_id"`
	CoordinatorID string    `json:"coordinator_id" db:"coordinator_id"`
	VenueID       *string   `json:"venue_id,omitempty" db:"venue_id"`
	StartTime     string    `json:"start_time" db:"start_time"`
	EndTime       string    `json:"end_time" db:"end_time"`
}
