package database

import (
	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// AppendEvent adds an entry to the append-only event log.
func AppendEvent(db Queryer, e *models.EventLogEntry) error {
	query := `INSERT INTO event_log (absence_id, request_id, event_type, actor, details)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`
	return db.QueryRow(query, e.AbsenceID, e.RequestID, e.EventType, e.Actor, e.Details).
		Scan(&e.ID, &e.CreatedAt)
}

// GetEventsByAbsence returns an absence's events oldest first.
func GetEventsByAbsence(db Queryer, absenceID string) ([]models.EventLogEntry, error) {
	query := `SELECT id, absence_id, request_id, event_type, actor, details, created_at
			  FROM event_log WHERE absence_id = $1 ORDER BY created_at, id`
	rows, err := db.Query(query, absenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.EventLogEntry
	for rows.Next() {
		var e models.EventLogEntry
		if err := rows.Scan(&e.ID, &e.AbsenceID, &e.RequestID, &e.EventType, &e.Actor, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
