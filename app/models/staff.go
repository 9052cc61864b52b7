package models

import "time"

// Staff represents a staff member. Deactivation is a soft flag; staff rows are
// never deleted because historical requests and duties reference them.
type Staff struct {
	ID            string    `json:"id" db:"id"`
	FirstName     string    `json:"first_name" db:"first_name"`
	LastName      string    `json:"last_name" db:"last_name"`
	DisplayName   string    `json:"display_name" db:"display_name"`
	Role          StaffRole `json:"role" db:"role"`
	CanSubstitute bool      `json:"can_substitute" db:"can_substitute"`
	CanDoDuty     bool      `json:"can_do_duty" db:"can_do_duty"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	HomeVenueID   *string   `json:"home_venue_id,omitempty" db:"home_venue_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`

	HomeVenue *Venue `json:"home_venue,omitempty"`
}

// Initial returns the upper-cased first letter of the first name, used by the
// A-Z fairness rotation.
func (s Staff) Initial() byte {
	if s.FirstName == "" {
		return 'A'
	}
	c := s.FirstName[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

// Venue is a room or area. Floating teachers have no home venue.
type Venue struct {
	ID       string    `json:"id" db:"id"`
	Code     string    `json:"code" db:"code"`
	Name     string    `json:"name" db:"name"`
	Block    string    `json:"block" db:"block"`
	Type     VenueType `json:"type" db:"type"`
	IsActive bool      `json:"is_active" db:"is_active"`
}
