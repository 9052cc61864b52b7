package database

import (
	"database/sql"
	"time"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// Queryer is the subset of *sql.DB and *sql.Tx the store functions need, so
// the same function can run standalone or inside an engine transaction.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

const absenceColumns = `id, staff_id, start_date, end_date, is_open_ended, type, reason, status,
	returned_early, returned_at, reported_by, created_at, updated_at`

// CreateAbsence inserts a new absence in Reported state.
func CreateAbsence(db Queryer, a *models.Absence) error {
	query := `INSERT INTO absences (staff_id, start_date, end_date, is_open_ended, type, reason, status, reported_by)
			  VALUES ($1, $2, $3, $4, $5, $6, 'reported', $7)
			  RETURNING id, status, created_at, updated_at`
	var end interface{}
	if a.EndDate != nil {
		end = a.EndDate.Format("2006-01-02")
	}
	return db.QueryRow(query,
		a.StaffID, a.StartDate.Format("2006-01-02"), end, a.IsOpenEnded, a.Type, a.Reason, a.ReportedBy,
	).Scan(&a.ID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
}

// GetAbsenceByID fetches an absence with its staff member joined in.
func GetAbsenceByID(db Queryer, absenceID string) (*models.Absence, error) {
	a := &models.Absence{Staff: &models.Staff{}}
	query := `SELECT a.id, a.staff_id, a.start_date, a.end_date, a.is_open_ended, a.type, a.reason, a.status,
			  a.returned_early, a.returned_at, a.reported_by, a.created_at, a.updated_at,
			  s.id, s.first_name, s.last_name, s.display_name, s.role, s.can_substitute, s.can_do_duty,
			  s.is_active, s.home_venue_id, s.created_at, s.updated_at
			  FROM absences a
			  JOIN staff s ON a.staff_id = s.id
			  WHERE a.id = $1`
	err := db.QueryRow(query, absenceID).Scan(
		&a.ID, &a.StaffID, &a.StartDate, &a.EndDate, &a.IsOpenEnded, &a.Type, &a.Reason, &a.Status,
		&a.ReturnedEarly, &a.ReturnedAt, &a.ReportedBy, &a.CreatedAt, &a.UpdatedAt,
		&a.Staff.ID, &a.Staff.FirstName, &a.Staff.LastName, &a.Staff.DisplayName, &a.Staff.Role,
		&a.Staff.CanSubstitute, &a.Staff.CanDoDuty, &a.Staff.IsActive, &a.Staff.HomeVenueID,
		&a.Staff.CreatedAt, &a.Staff.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateAbsenceStatus moves an absence to a new status.
func UpdateAbsenceStatus(db Queryer, absenceID string, status models.AbsenceStatus) error {
	_, err := db.Exec(`UPDATE absences SET status = $1, updated_at = NOW() WHERE id = $2`, status, absenceID)
	return err
}

// SetAbsenceReturn records an early return: the clamped end date, the
// Resolved status and the return timestamp.
func SetAbsenceReturn(db Queryer, absenceID string, endDate time.Time, returnedAt time.Time) error {
	_, err := db.Exec(
		`UPDATE absences SET end_date = $1, is_open_ended = false, status = 'resolved',
		 returned_early = true, returned_at = $2, updated_at = NOW() WHERE id = $3`,
		endDate.Format("2006-01-02"), returnedAt, absenceID,
	)
	return err
}

// GetAbsentStaffIDs returns the set of staff absent on a date. Cancelled
// absences do not count; Resolved ones still cover dates before the return.
func GetAbsentStaffIDs(db Queryer, date time.Time) (map[string]bool, error) {
	query := `SELECT staff_id FROM absences
			  WHERE status <> 'cancelled'
			  AND start_date <= $1
			  AND (is_open_ended = true OR end_date >= $1)`
	rows, err := db.Query(query, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	absent := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		absent[id] = true
	}
	return absent, rows.Err()
}

// GetAbsencesInRange returns non-cancelled absences overlapping [start, end],
// staff joined, newest first.
func GetAbsencesInRange(db Queryer, start, end time.Time) ([]models.Absence, error) {
	query := `SELECT a.id, a.staff_id, a.start_date, a.end_date, a.is_open_ended, a.type, a.reason, a.status,
			  a.returned_early, a.returned_at, a.reported_by, a.created_at, a.updated_at,
			  s.first_name, s.last_name, s.display_name
			  FROM absences a
			  JOIN staff s ON a.staff_id = s.id
			  WHERE a.status <> 'cancelled'
			  AND a.start_date <= $2
			  AND (a.is_open_ended = true OR a.end_date >= $1)
			  ORDER BY a.start_date DESC, a.created_at DESC`
	rows, err := db.Query(query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var absences []models.Absence
	for rows.Next() {
		a := models.Absence{Staff: &models.Staff{}}
		if err := rows.Scan(
			&a.ID, &a.StaffID, &a.StartDate, &a.EndDate, &a.IsOpenEnded, &a.Type, &a.Reason, &a.Status,
			&a.ReturnedEarly, &a.ReturnedAt, &a.ReportedBy, &a.CreatedAt, &a.UpdatedAt,
			&a.Staff.FirstName, &a.Staff.LastName, &a.Staff.DisplayName,
		); err != nil {
			return nil, err
		}
		a.Staff.ID = a.StaffID
		absences = append(absences, a)
	}
	return absences, rows.Err()
}

// GetOpenEndedAbsences returns open-ended absences still in play.
func GetOpenEndedAbsences(db Queryer) ([]models.Absence, error) {
	query := `SELECT ` + absenceColumns + ` FROM absences
			  WHERE is_open_ended = true AND status IN ('reported', 'covered', 'partial', 'escalated')
			  ORDER BY start_date`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var absences []models.Absence
	for rows.Next() {
		var a models.Absence
		if err := rows.Scan(
			&a.ID, &a.StaffID, &a.StartDate, &a.EndDate, &a.IsOpenEnded, &a.Type, &a.Reason, &a.Status,
			&a.ReturnedEarly, &a.ReturnedAt, &a.ReportedBy, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		absences = append(absences, a)
	}
	return absences, rows.Err()
}
