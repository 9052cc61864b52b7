package database

import (
	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// GetSlotsByStaffAndCycleDay returns a teacher's slots for a cycle day in
// period order, with the venue code joined in for snapshotting.
func GetSlotsByStaffAndCycleDay(db Queryer, staffID string, cycleDay int) ([]models.TimetableSlot, error) {
	query := `SELECT t.id, t.staff_id, t.cycle_day, t.period_number, t.class_name, t.subject,
			  t.venue_id, COALESCE(v.code, ''), t.created_at
			  FROM timetable_slots t
			  LEFT JOIN venues v ON t.venue_id = v.id
			  WHERE t.staff_id = $1 AND t.cycle_day = $2
			  ORDER BY t.period_number`
	return querySlots(db, query, staffID, cycleDay)
}

// GetSlotsByCycleDay returns every slot of a cycle day. The engine builds
// per-period occupancy (who teaches, which venues are in use) from this.
func GetSlotsByCycleDay(db Queryer, cycleDay int) ([]models.TimetableSlot, error) {
	query := `SELECT t.id, t.staff_id, t.cycle_day, t.period_number, t.class_name, t.subject,
			  t.venue_id, COALESCE(v.code, ''), t.created_at
			  FROM timetable_slots t
			  LEFT JOIN venues v ON t.venue_id = v.id
			  WHERE t.cycle_day = $1
			  ORDER BY t.period_number`
	return querySlots(db, query, cycleDay)
}

func querySlots(db Queryer, query string, args ...interface{}) ([]models.TimetableSlot, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []models.TimetableSlot
	for rows.Next() {
		var s models.TimetableSlot
		if err := rows.Scan(
			&s.ID, &s.StaffID, &s.CycleDay, &s.PeriodNumber, &s.ClassName, &s.Subject,
			&s.VenueID, &s.VenueCode, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}
