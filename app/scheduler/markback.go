package scheduler

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/JohanBenade/schools-pwa-sub000/app/database"
	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// MarkBackResult summarises an early-return mark-back.
type MarkBackResult struct {
	AbsenceID         string                      `json:"absence_id"`
	ReturnDate        time.Time                   `json:"return_date"`
	NewEndDate        time.Time                   `json:"new_end_date"`
	CancelledRequests int                         `json:"cancelled_requests"`
	RestoredDuties    int                         `json:"restored_duties"`
	Notifications     []models.NotificationIntent `json:"notifications"`
}

// markBackCheck validates a return date against the absence as it stands.
// noop means the same mark-back already landed and nothing must change.
func markBackCheck(absence *models.Absence, returnDate time.Time) (newEnd time.Time, noop bool, err error) {
	if absence.Status == models.AbsenceCancelled {
		return time.Time{}, false, fmt.Errorf("%w: absence %s is cancelled", ErrStateConflict, absence.ID)
	}
	if !returnDate.After(dateOnly(absence.StartDate)) {
		return time.Time{}, false, fmt.Errorf("%w: return date %s is not after the absence start", ErrStateConflict, returnDate.Format("2006-01-02"))
	}
	newEnd = returnDate.AddDate(0, 0, -1)
	if absence.Status == models.AbsenceResolved {
		if absence.EndDate != nil && sameDate(*absence.EndDate, newEnd) {
			return newEnd, true, nil
		}
		return time.Time{}, false, fmt.Errorf("%w: absence %s already resolved with a different end date", ErrStateConflict, absence.ID)
	}
	return newEnd, false, nil
}

// MarkBack records that an absent teacher returns on returnDate: the absence
// ends the day before, cover from the return date on is cancelled, and duty
// entries that were reassigned because of this absence revert to their
// original assignees. Running it twice with the same date is a no-op the
// second time.
func MarkBack(db *sql.DB, absenceID string, returnDate time.Time, actor string) (*MarkBackResult, error) {
	returnDate = dateOnly(returnDate)

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	absence, err := database.GetAbsenceByID(tx, absenceID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: absence %s", ErrNotFound, absenceID)
	}
	if err != nil {
		return nil, err
	}
	newEnd, noop, err := markBackCheck(absence, returnDate)
	if err != nil {
		return nil, err
	}
	result := &MarkBackResult{
		AbsenceID:  absenceID,
		ReturnDate: returnDate,
		NewEndDate: newEnd,
	}
	if noop {
		// Repeat invocation with the same date.
		return result, tx.Commit()
	}

	if err := database.SetAbsenceReturn(tx, absenceID, newEnd, time.Now()); err != nil {
		return nil, err
	}

	cancelled, err := database.CancelRequestsFromDate(tx, absenceID, returnDate, "early_return")
	if err != nil {
		return nil, err
	}
	result.CancelledRequests = len(cancelled)

	restored, err := database.ClearDutyReplacements(tx, absence.StaffID, returnDate, absenceID)
	if err != nil {
		return nil, err
	}
	result.RestoredDuties = len(restored)

	event := &models.EventLogEntry{
		AbsenceID: absenceID,
		EventType: models.EventEarlyReturn,
		Actor:     actor,
		Details: fmt.Sprintf("early return on %s; %d requests cancelled, %d duties restored",
			returnDate.Format("2006-01-02"), result.CancelledRequests, len(restored)),
	}
	if err := database.AppendEvent(tx, event); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	buf := &IntentBuffer{}
	for _, c := range cancelled {
		if c.SubstituteID != nil {
			buf.Emit(subCancelledIntent(absenceID, c.ID, *c.SubstituteID, c.RequestDate))
		}
	}
	for _, r := range restored {
		buf.Emit(dutyCancelledIntent(absenceID, r.ReplacementID, r.DutyDate, r.DutyType))
	}
	buf.Emit(allClearIntent(absenceID, returnDate))
	result.Notifications = buf.Intents()
	return result, nil
}

// CancelAbsenceResult summarises a cancellation.
type CancelAbsenceResult struct {
	AbsenceID         string                      `json:"absence_id"`
	CancelledRequests int                         `json:"cancelled_requests"`
	RestoredDuties    int                         `json:"restored_duties"`
	Notifications     []models.NotificationIntent `json:"notifications"`
}

// CancelAbsence voids an absence reported in error: all of its requests are
// cancelled, duties reassigned on its account revert to their original
// assignees, and the absence drops out of operational views. Cancelling an
// already cancelled absence is a no-op.
func CancelAbsence(db *sql.DB, absenceID, actor, reason string) (*CancelAbsenceResult, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	absence, err := database.GetAbsenceByID(tx, absenceID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: absence %s", ErrNotFound, absenceID)
	}
	if err != nil {
		return nil, err
	}
	result := &CancelAbsenceResult{AbsenceID: absenceID}
	if absence.Status == models.AbsenceCancelled {
		return result, tx.Commit()
	}

	if err := database.UpdateAbsenceStatus(tx, absenceID, models.AbsenceCancelled); err != nil {
		return nil, err
	}
	start := dateOnly(absence.StartDate)
	cancelled, err := database.CancelRequestsFromDate(tx, absenceID, start, "absence_cancelled")
	if err != nil {
		return nil, err
	}
	result.CancelledRequests = len(cancelled)

	restored, err := database.ClearDutyReplacements(tx, absence.StaffID, start, absenceID)
	if err != nil {
		return nil, err
	}
	result.RestoredDuties = len(restored)

	event := &models.EventLogEntry{
		AbsenceID: absenceID,
		EventType: models.EventCancelled,
		Actor:     actor,
		Details: fmt.Sprintf("absence cancelled (%s); %d requests cancelled, %d duties restored",
			reason, len(cancelled), len(restored)),
	}
	if err := database.AppendEvent(tx, event); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	buf := &IntentBuffer{}
	for _, c := range cancelled {
		if c.SubstituteID != nil {
			buf.Emit(subCancelledIntent(absenceID, c.ID, *c.SubstituteID, c.RequestDate))
		}
	}
	for _, r := range restored {
		buf.Emit(dutyCancelledIntent(absenceID, r.ReplacementID, r.DutyDate, r.DutyType))
	}
	result.Notifications = buf.Intents()
	return result, nil
}
