package database

import (
	"database/sql"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// GetStaffByID fetches a single staff member, active or not.
func GetStaffByID(db Queryer, staffID string) (*models.Staff, error) {
	staff := &models.Staff{}
	query := `SELECT id, first_name, last_name, display_name, role, can_substitute, can_do_duty,
			  is_active, home_venue_id, created_at, updated_at
			  FROM staff WHERE id = $1`

	err := db.QueryRow(query, staffID).Scan(
		&staff.ID, &staff.FirstName, &staff.LastName, &staff.DisplayName, &staff.Role,
		&staff.CanSubstitute, &staff.CanDoDuty, &staff.IsActive, &staff.HomeVenueID,
		&staff.CreatedAt, &staff.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return staff, nil
}

// GetSubstituteCandidates returns active staff eligible for substitution,
// ordered by first name (the rotation ordering).
func GetSubstituteCandidates(db Queryer) ([]models.Staff, error) {
	query := `SELECT id, first_name, last_name, display_name, role, can_substitute, can_do_duty,
			  is_active, home_venue_id, created_at, updated_at
			  FROM staff
			  WHERE is_active = true AND can_substitute = true
			  ORDER BY first_name, last_name`
	return queryStaff(db, query)
}

// GetDutyCandidates returns active staff eligible for terrain/homework duty,
// ordered by first name.
func GetDutyCandidates(db Queryer) ([]models.Staff, error) {
	query := `SELECT id, first_name, last_name, display_name, role, can_substitute, can_do_duty,
			  is_active, home_venue_id, created_at, updated_at
			  FROM staff
			  WHERE is_active = true AND can_do_duty = true
			  ORDER BY first_name, last_name`
	return queryStaff(db, query)
}

func queryStaff(db Queryer, query string, args ...interface{}) ([]models.Staff, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []models.Staff
	for rows.Next() {
		var s models.Staff
		if err := rows.Scan(
			&s.ID, &s.FirstName, &s.LastName, &s.DisplayName, &s.Role,
			&s.CanSubstitute, &s.CanDoDuty, &s.IsActive, &s.HomeVenueID,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

// GetHomeVenueMap returns staff_id -> home venue_id for staff that have one.
func GetHomeVenueMap(db Queryer) (map[string]string, error) {
	rows, err := db.Query(`SELECT id, home_venue_id FROM staff WHERE home_venue_id IS NOT NULL AND is_active = true`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	homes := make(map[string]string)
	for rows.Next() {
		var staffID, venueID string
		if err := rows.Scan(&staffID, &venueID); err != nil {
			return nil, err
		}
		homes[staffID] = venueID
	}
	return homes, rows.Err()
}

// GetManagementStaffIDs returns the IDs of active principal/deputy staff.
func GetManagementStaffIDs(db Queryer) ([]string, error) {
	rows, err := db.Query(`SELECT id FROM staff WHERE is_active = true AND role IN ('principal', 'deputy')`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetVenueByID fetches a venue.
func GetVenueByID(db Queryer, venueID string) (*models.Venue, error) {
	v := &models.Venue{}
	query := `SELECT id, code, name, block, type, is_active FROM venues WHERE id = $1`
	err := db.QueryRow(query, venueID).Scan(&v.ID, &v.Code, &v.Name, &v.Block, &v.Type, &v.IsActive)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// GetVenuesByBlock returns active venues grouped under a block tag.
func GetVenuesByBlock(db Queryer, block string) ([]models.Venue, error) {
	rows, err := db.Query(`SELECT id, code, name, block, type, is_active FROM venues
		WHERE block = $1 AND is_active = true ORDER BY code`, block)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []models.Venue
	for rows.Next() {
		var v models.Venue
		if err := rows.Scan(&v.ID, &v.Code, &v.Name, &v.Block, &v.Type, &v.IsActive); err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

// GetMentorGroupByMentor returns the homeroom mentored by the given staff
// member, or nil if they mentor none.
func GetMentorGroupByMentor(db Queryer, staffID string) (*models.MentorGroup, error) {
	g := &models.MentorGroup{}
	query := `SELECT id, name, grade, mentor_id, venue_id FROM mentor_groups WHERE mentor_id = $1`
	err := db.QueryRow(query, staffID).Scan(&g.ID, &g.Name, &g.Grade, &g.MentorID, &g.VenueID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// GetGradeBackup returns the backup configuration for a grade, or nil when
// the grade has none configured.
func GetGradeBackup(db Queryer, grade int) (*models.GradeBackup, error) {
	b := &models.GradeBackup{}
	query := `SELECT grade, backup_staff_id, grade_head_staff_id FROM grade_backups WHERE grade = $1`
	err := db.QueryRow(query, grade).Scan(&b.Grade, &b.BackupStaffID, &b.GradeHeadStaffID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
