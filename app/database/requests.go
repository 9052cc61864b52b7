package database

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

const requestColumns = `id, absence_id, request_date, period_number, is_mentor_duty, substitute_id,
	fallback_level, class_name, subject, venue_code, status, declined_by, decline_reason, declined_at,
	cancel_reason, created_at, updated_at`

// InsertSubstituteRequest writes a request for one (absence, date,
// period-or-mentor-duty). Re-runs hit the unique index and keep the existing
// row, which makes open-ended reprocessing idempotent. Returns false when
// the row already existed.
func InsertSubstituteRequest(db Queryer, r *models.SubstituteRequest) (bool, error) {
	query := `INSERT INTO substitute_requests
			  (absence_id, request_date, period_number, is_mentor_duty, substitute_id, fallback_level,
			   class_name, subject, venue_code, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  ON CONFLICT (absence_id, request_date, COALESCE(period_number, 0), is_mentor_duty) DO NOTHING
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		r.AbsenceID, r.RequestDate.Format("2006-01-02"), r.PeriodNumber, r.IsMentorDuty,
		r.SubstituteID, r.FallbackLevel, r.ClassName, r.Subject, r.VenueCode, r.Status,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetRequestByID fetches a request with its substitute joined in when set.
func GetRequestByID(db Queryer, requestID string) (*models.SubstituteRequest, error) {
	r := &models.SubstituteRequest{}
	query := `SELECT r.id, r.absence_id, r.request_date, r.period_number, r.is_mentor_duty, r.substitute_id,
			  r.fallback_level, r.class_name, r.subject, r.venue_code, r.status, r.declined_by,
			  r.decline_reason, r.declined_at, r.cancel_reason, r.created_at, r.updated_at,
			  s.first_name, s.last_name, s.display_name
			  FROM substitute_requests r
			  LEFT JOIN staff s ON r.substitute_id = s.id
			  WHERE r.id = $1`
	var firstName, lastName, displayName *string
	err := db.QueryRow(query, requestID).Scan(
		&r.ID, &r.AbsenceID, &r.RequestDate, &r.PeriodNumber, &r.IsMentorDuty, &r.SubstituteID,
		&r.FallbackLevel, &r.ClassName, &r.Subject, &r.VenueCode, &r.Status, &r.DeclinedBy,
		&r.DeclineReason, &r.DeclinedAt, &r.CancelReason, &r.CreatedAt, &r.UpdatedAt,
		&firstName, &lastName, &displayName,
	)
	if err != nil {
		return nil, err
	}
	if r.SubstituteID != nil && firstName != nil {
		r.Substitute = &models.Staff{
			ID:          *r.SubstituteID,
			FirstName:   *firstName,
			LastName:    *lastName,
			DisplayName: *displayName,
		}
	}
	return r, nil
}

// GetRequestsByAbsence returns all requests of an absence in date and period
// order, mentor duty first within a date.
func GetRequestsByAbsence(db Queryer, absenceID string) ([]models.SubstituteRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM substitute_requests
			  WHERE absence_id = $1
			  ORDER BY request_date, is_mentor_duty DESC, period_number`
	return queryRequests(db, query, absenceID)
}

// GetAssignedRequestsBySubstitute returns Assigned requests a staff member
// holds on any of the given dates.
func GetAssignedRequestsBySubstitute(db Queryer, staffID string, dates []time.Time) ([]models.SubstituteRequest, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	strs := make([]string, len(dates))
	for i, d := range dates {
		strs[i] = d.Format("2006-01-02")
	}
	query := `SELECT ` + requestColumns + ` FROM substitute_requests
			  WHERE substitute_id = $1 AND status = 'assigned' AND request_date = ANY($2::date[])
			  ORDER BY request_date, period_number`
	return queryRequests(db, query, staffID, pq.Array(strs))
}

// MarkRequestDeclined records a decline on an Assigned request: Declined
// with no substitute, awaiting reassignment. The state is transient; every
// decline path ends the same transaction in Assigned or Escalated.
func MarkRequestDeclined(db Queryer, requestID, declinedBy, reason string, declinedAt time.Time) error {
	_, err := db.Exec(
		`UPDATE substitute_requests
		 SET status = $1, substitute_id = NULL, declined_by = $2, decline_reason = $3,
		 declined_at = $4, updated_at = NOW()
		 WHERE id = $5`,
		models.RequestDeclined, declinedBy, reason, declinedAt, requestID,
	)
	return err
}

// AssignRequest sets the substitute on a request and marks it Assigned.
func AssignRequest(db Queryer, requestID, substituteID string) error {
	_, err := db.Exec(
		`UPDATE substitute_requests
		 SET status = 'assigned', substitute_id = $1, updated_at = NOW() WHERE id = $2`,
		substituteID, requestID,
	)
	return err
}

// EscalateRequest marks a request Escalated (no replacement found).
func EscalateRequest(db Queryer, requestID string) error {
	_, err := db.Exec(
		`UPDATE substitute_requests SET status = 'escalated', updated_at = NOW() WHERE id = $1`,
		requestID,
	)
	return err
}

// CancelledRequest identifies a request cancelled by an early return, with
// the substitute it displaced.
type CancelledRequest struct {
	ID           string
	RequestDate  time.Time
	SubstituteID *string
}

// CancelRequestsFromDate cancels Pending/Assigned requests of an absence on
// or after the given date and reports who was displaced.
func CancelRequestsFromDate(db Queryer, absenceID string, from time.Time, reason string) ([]CancelledRequest, error) {
	query := `UPDATE substitute_requests
			  SET status = 'cancelled', cancel_reason = $1, updated_at = NOW()
			  WHERE absence_id = $2 AND request_date >= $3 AND status IN ('pending', 'assigned', 'escalated')
			  RETURNING id, request_date, substitute_id`
	rows, err := db.Query(query, reason, absenceID, from.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cancelled []CancelledRequest
	for rows.Next() {
		var c CancelledRequest
		if err := rows.Scan(&c.ID, &c.RequestDate, &c.SubstituteID); err != nil {
			return nil, err
		}
		cancelled = append(cancelled, c)
	}
	return cancelled, rows.Err()
}

// SubstituteLoad is one assigned slot a substitute already holds on a date.
type SubstituteLoad struct {
	StaffID      string
	PeriodNumber *int
}

// GetSubstituteLoadByDate returns every assigned substitution on a date
// across all absences, so the engine never double-books a period and can
// prefer zero-load candidates.
func GetSubstituteLoadByDate(db Queryer, date time.Time) ([]SubstituteLoad, error) {
	query := `SELECT substitute_id, period_number FROM substitute_requests
			  WHERE request_date = $1 AND status = 'assigned' AND substitute_id IS NOT NULL`
	rows, err := db.Query(query, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loads []SubstituteLoad
	for rows.Next() {
		var l SubstituteLoad
		if err := rows.Scan(&l.StaffID, &l.PeriodNumber); err != nil {
			return nil, err
		}
		loads = append(loads, l)
	}
	return loads, rows.Err()
}

// GetRequestsByDate returns all requests scheduled for a date, with the
// absent teacher and substitute names for the overview.
func GetRequestsByDate(db Queryer, date time.Time) ([]models.SubstituteRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM substitute_requests
			  WHERE request_date = $1 AND status <> 'cancelled'
			  ORDER BY is_mentor_duty DESC, period_number`
	return queryRequests(db, query, date.Format("2006-01-02"))
}

func queryRequests(db Queryer, query string, args ...interface{}) ([]models.SubstituteRequest, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.SubstituteRequest
	for rows.Next() {
		var r models.SubstituteRequest
		if err := rows.Scan(
			&r.ID, &r.AbsenceID, &r.RequestDate, &r.PeriodNumber, &r.IsMentorDuty, &r.SubstituteID,
			&r.FallbackLevel, &r.ClassName, &r.Subject, &r.VenueCode, &r.Status, &r.DeclinedBy,
			&r.DeclineReason, &r.DeclinedAt, &r.CancelReason, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}
