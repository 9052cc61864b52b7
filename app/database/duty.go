package database

import (
	"time"

	"github.com/lib/pq"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// GetTerrainAreas returns the active terrain areas in sort order.
func GetTerrainAreas(db Queryer) ([]models.TerrainArea, error) {
	rows, err := db.Query(`SELECT id, name, sort_order, is_active FROM terrain_areas
		WHERE is_active = true ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []models.TerrainArea
	for rows.Next() {
		var a models.TerrainArea
		if err := rows.Scan(&a.ID, &a.Name, &a.SortOrder, &a.IsActive); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

const dutyColumns = `id, duty_date, duty_type, terrain_area_id, staff_id, replacement_id,
	replaced_for_id, status, created_at, updated_at`

// CreateDutyEntry inserts a duty roster entry. The (date, type, staff)
// unique key rejects double-booking.
func CreateDutyEntry(db Queryer, e *models.DutyRosterEntry) error {
	query := `INSERT INTO duty_roster (duty_date, duty_type, terrain_area_id, staff_id, status)
			  VALUES ($1, $2, $3, $4, 'scheduled')
			  RETURNING id, status, created_at, updated_at`
	return db.QueryRow(query,
		e.DutyDate.Format("2006-01-02"), e.DutyType, e.TerrainAreaID, e.StaffID,
	).Scan(&e.ID, &e.Status, &e.CreatedAt, &e.UpdatedAt)
}

// GetDutyEntriesByStaffOnDates returns entries where the staff member is the
// effective assignee (no replacement yet) on any of the dates.
func GetDutyEntriesByStaffOnDates(db Queryer, staffID string, dates []time.Time) ([]models.DutyRosterEntry, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	strs := make([]string, len(dates))
	for i, d := range dates {
		strs[i] = d.Format("2006-01-02")
	}
	query := `SELECT ` + dutyColumns + ` FROM duty_roster
			  WHERE staff_id = $1 AND replacement_id IS NULL AND duty_date = ANY($2::date[])
			  ORDER BY duty_date, duty_type`
	return queryDuties(db, query, staffID, pq.Array(strs))
}

// GetDutyEntriesInRange returns entries with staff, replacement and area
// names joined in for rota views.
func GetDutyEntriesInRange(db Queryer, start, end time.Time) ([]models.DutyRosterEntry, error) {
	query := `SELECT d.id, d.duty_date, d.duty_type, d.terrain_area_id, d.staff_id, d.replacement_id,
			  d.replaced_for_id, d.status, d.created_at, d.updated_at,
			  s.first_name, s.last_name, s.display_name,
			  r.display_name, a.name
			  FROM duty_roster d
			  JOIN staff s ON d.staff_id = s.id
			  LEFT JOIN staff r ON d.replacement_id = r.id
			  LEFT JOIN terrain_areas a ON d.terrain_area_id = a.id
			  WHERE d.duty_date >= $1 AND d.duty_date <= $2
			  ORDER BY d.duty_date, d.duty_type, a.sort_order`
	rows, err := db.Query(query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DutyRosterEntry
	for rows.Next() {
		e := models.DutyRosterEntry{Staff: &models.Staff{}}
		var replacementName, areaName *string
		if err := rows.Scan(
			&e.ID, &e.DutyDate, &e.DutyType, &e.TerrainAreaID, &e.StaffID, &e.ReplacementID,
			&e.ReplacedForID, &e.Status, &e.CreatedAt, &e.UpdatedAt,
			&e.Staff.FirstName, &e.Staff.LastName, &e.Staff.DisplayName,
			&replacementName, &areaName,
		); err != nil {
			return nil, err
		}
		e.Staff.ID = e.StaffID
		if e.ReplacementID != nil && replacementName != nil {
			e.Replacement = &models.Staff{ID: *e.ReplacementID, DisplayName: *replacementName}
		}
		if e.TerrainAreaID != nil && areaName != nil {
			e.TerrainArea = &models.TerrainArea{ID: *e.TerrainAreaID, Name: *areaName}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountDutyEntriesInRange reports how many duty entries already exist in a
// date range. The rota generator refuses to commit over existing entries.
func CountDutyEntriesInRange(db Queryer, start, end time.Time) (int, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM duty_roster WHERE duty_date >= $1 AND duty_date <= $2`,
		start.Format("2006-01-02"), end.Format("2006-01-02"),
	).Scan(&count)
	return count, err
}

// SetDutyReplacement records a replacement (or clears it when nil) and the
// absence that caused it.
func SetDutyReplacement(db Queryer, entryID string, replacementID *string, absenceID *string) error {
	_, err := db.Exec(
		`UPDATE duty_roster SET replacement_id = $1, replaced_for_id = $2, updated_at = NOW() WHERE id = $3`,
		replacementID, absenceID, entryID,
	)
	return err
}

// RestoredDuty identifies a duty handed back to its original assignee, with
// the replacement it displaced.
type RestoredDuty struct {
	EntryID       string
	DutyDate      time.Time
	DutyType      string
	ReplacementID string
}

// ClearDutyReplacements reinstates a staff member's own duties on or after a
// date, limited to replacements caused by the given absence, and reports the
// replacements that were stood down.
func ClearDutyReplacements(db Queryer, staffID string, from time.Time, absenceID string) ([]RestoredDuty, error) {
	// RETURNING sees the post-update row; the displaced replacement comes
	// from the pre-update image through the self-join.
	query := `UPDATE duty_roster d SET replacement_id = NULL, replaced_for_id = NULL, updated_at = NOW()
			  FROM duty_roster old
			  WHERE d.id = old.id AND d.staff_id = $1 AND d.duty_date >= $2 AND d.replaced_for_id = $3
			    AND old.replacement_id IS NOT NULL
			  RETURNING d.id, d.duty_date, d.duty_type, old.replacement_id`
	rows, err := db.Query(query, staffID, from.Format("2006-01-02"), absenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restored []RestoredDuty
	for rows.Next() {
		var r RestoredDuty
		if err := rows.Scan(&r.EntryID, &r.DutyDate, &r.DutyType, &r.ReplacementID); err != nil {
			return nil, err
		}
		restored = append(restored, r)
	}
	return restored, rows.Err()
}

// GetDutyTypeAssignees returns the set of staff already carrying a duty type
// on a date, counting replacements as the effective assignee.
func GetDutyTypeAssignees(db Queryer, date time.Time, dutyType models.DutyType) (map[string]bool, error) {
	query := `SELECT COALESCE(replacement_id, staff_id) FROM duty_roster
			  WHERE duty_date = $1 AND duty_type = $2`
	rows, err := db.Query(query, date.Format("2006-01-02"), dutyType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assigned := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		assigned[id] = true
	}
	return assigned, rows.Err()
}

// GetWeekTerrainAssignees returns staff effectively assigned terrain duty
// inside a Mon-Fri window, for cross-day terrain fairness.
func GetWeekTerrainAssignees(db Queryer, weekStart, weekEnd time.Time) (map[string]bool, error) {
	query := `SELECT COALESCE(replacement_id, staff_id) FROM duty_roster
			  WHERE duty_type = 'terrain' AND duty_date >= $1 AND duty_date <= $2`
	rows, err := db.Query(query, weekStart.Format("2006-01-02"), weekEnd.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assigned := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		assigned[id] = true
	}
	return assigned, rows.Err()
}

// CreateDutyDecline appends a duty decline audit row.
func CreateDutyDecline(db Queryer, d *models.DutyDecline) error {
	query := `INSERT INTO duty_declines (duty_type, staff_id, duty_description, duty_date, reason, declined_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	return db.QueryRow(query,
		d.DutyType, d.StaffID, d.DutyDescription, d.DutyDate.Format("2006-01-02"), d.Reason, d.DeclinedAt,
	).Scan(&d.ID)
}

// HasDutyDecline reports whether a decline is already on record for the
// staff member's duty of this type on the date, for the same reason.
func HasDutyDecline(db Queryer, staffID string, dutyDate time.Time, dutyType, reason string) (bool, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM duty_declines
		 WHERE staff_id = $1 AND duty_date = $2 AND duty_type = $3 AND reason = $4`,
		staffID, dutyDate.Format("2006-01-02"), dutyType, reason,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetSportDutiesByStaffOnDates returns a staff member's sport duties on any
// of the dates.
func GetSportDutiesByStaffOnDates(db Queryer, staffID string, dates []time.Time) ([]models.SportDuty, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	strs := make([]string, len(dates))
	for i, d := range dates {
		strs[i] = d.Format("2006-01-02")
	}
	query := `SELECT id, event_name, duty_date, staff_id, coordinator_id, venue_id, start_time, end_time
			  FROM sport_duties WHERE staff_id = $1 AND duty_date = ANY($2::date[])
			  ORDER BY duty_date`
	rows, err := db.Query(query, staffID, pq.Array(strs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var duties []models.SportDuty
	for rows.Next() {
		var s models.SportDuty
		if err := rows.Scan(
			&s.ID, &s.EventName, &s.DutyDate, &s.StaffID, &s.CoordinatorID,
			&s.VenueID, &s.StartTime, &s.EndTime,
		); err != nil {
			return nil, err
		}
		duties = append(duties, s)
	}
	return duties, rows.Err()
}

// GetSportVenueClashes returns sport duties on a date that occupy a teaching
// venue, so the overview can flag displaced lessons.
func GetSportVenueClashes(db Queryer, date time.Time) ([]models.SportDuty, error) {
	query := `SELECT sd.id, sd.event_name, sd.duty_date, sd.staff_id, sd.coordinator_id, sd.venue_id,
			  sd.start_time, sd.end_time
			  FROM sport_duties sd
			  JOIN venues v ON sd.venue_id = v.id
			  WHERE sd.duty_date = $1 AND v.type = 'classroom'
			  ORDER BY sd.event_name`
	rows, err := db.Query(query, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var duties []models.SportDuty
	for rows.Next() {
		var s models.SportDuty
		if err := rows.Scan(
			&s.ID, &s.EventName, &s.DutyDate, &s.StaffID, &s.CoordinatorID,
			&s.VenueID, &s.StartTime, &s.EndTime,
		); err != nil {
			return nil, err
		}
		duties = append(duties, s)
	}
	return duties, rows.Err()
}

func queryDuties(db Queryer, query string, args ...interface{}) ([]models.DutyRosterEntry, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DutyRosterEntry
	for rows.Next() {
		var e models.DutyRosterEntry
		if err := rows.Scan(
			&e.ID, &e.DutyDate, &e.DutyType, &e.TerrainAreaID, &e.StaffID, &e.ReplacementID,
			&e.ReplacedForID, &e.Status, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
