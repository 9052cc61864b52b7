package scheduler

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/JohanBenade/schools-pwa-sub000/app/database"
	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// DeclineOutcome names what happened to a declined request.
type DeclineOutcome string

const (
	DeclineReassigned DeclineOutcome = "reassigned"
	DeclineEscalated  DeclineOutcome = "escalated"
	DeclineTooLate    DeclineOutcome = "too_late"
)

// DeclineResult reports the outcome of a decline.
type DeclineResult struct {
	RequestID     string                      `json:"request_id"`
	Outcome       DeclineOutcome              `json:"outcome"`
	Reassigned    *models.Staff               `json:"reassigned,omitempty"`
	AbsenceStatus models.AbsenceStatus        `json:"absence_status,omitempty"`
	Notifications []models.NotificationIntent `json:"notifications,omitempty"`
}

// DeclineAllowed is the cutoff predicate: a decline on the day of the period
// must leave strictly more than cutoffMinutes before the period starts.
// Declines for future dates are always allowed.
func DeclineAllowed(periodStart, now time.Time, cutoffMinutes int) bool {
	if !sameDate(periodStart, now) {
		return true
	}
	return periodStart.Sub(now) > time.Duration(cutoffMinutes)*time.Minute
}

// DeclineRequest lets the assigned substitute refuse a request. Past the
// cutoff the decline is rejected without mutation. Otherwise the request is
// marked declined, audited, and rerun through the free-teacher rule with the
// decliner excluded; the A-Z pointer is read but never advanced here, so the
// decliner's earlier rotation turn stands.
func DeclineRequest(db *sql.DB, requestID, actor, reason string, now time.Time) (*DeclineResult, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	settings, err := database.GetSettingsForUpdate(tx)
	if err != nil {
		return nil, err
	}

	req, err := database.GetRequestByID(tx, requestID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: request %s", ErrNotFound, requestID)
	}
	if err != nil {
		return nil, err
	}
	if req.Status != models.RequestAssigned || req.SubstituteID == nil {
		return nil, fmt.Errorf("%w: request %s is %s, only assigned requests can be declined", ErrStateConflict, requestID, req.Status)
	}
	decliner := *req.SubstituteID

	if req.PeriodNumber != nil {
		start, err := periodStartOn(tx, req.RequestDate, *req.PeriodNumber, now.Location())
		if err != nil {
			return nil, err
		}
		if !DeclineAllowed(start, now, settings.DeclineCutoffMinutes) {
			return &DeclineResult{RequestID: requestID, Outcome: DeclineTooLate},
				fmt.Errorf("%w: period %d starts within the %d minute cutoff", ErrStateConflict, *req.PeriodNumber, settings.DeclineCutoffMinutes)
		}
	}

	absence, err := database.GetAbsenceByID(tx, req.AbsenceID)
	if err != nil {
		return nil, err
	}

	if err := database.MarkRequestDeclined(tx, requestID, decliner, reason, now); err != nil {
		return nil, err
	}
	decline := &models.DutyDecline{
		DutyType:        "substitution",
		StaffID:         decliner,
		DutyDescription: declineDescription(req),
		DutyDate:        req.RequestDate,
		Reason:          reason,
		DeclinedAt:      now,
	}
	if err := database.CreateDutyDecline(tx, decline); err != nil {
		return nil, err
	}
	event := &models.EventLogEntry{
		AbsenceID: req.AbsenceID,
		RequestID: &req.ID,
		EventType: models.EventDeclined,
		Actor:     actor,
		Details:   fmt.Sprintf("declined by substitute: %s", reason),
	}
	if err := database.AppendEvent(tx, event); err != nil {
		return nil, err
	}

	buf := &IntentBuffer{}
	result := &DeclineResult{RequestID: requestID}

	replacement, err := reassignDeclined(tx, req, absence, decliner, settings, actor, buf)
	if err != nil {
		return nil, err
	}
	if replacement != nil {
		result.Outcome = DeclineReassigned
		result.Reassigned = replacement
	} else {
		result.Outcome = DeclineEscalated
	}

	status, err := recomputeAbsenceStatus(tx, req.AbsenceID)
	if err != nil {
		return nil, err
	}
	result.AbsenceStatus = status

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	result.Notifications = buf.Intents()
	return result, nil
}

// reassignDeclined reruns allocation for a single declined slot. Mentor-duty
// requests retry the grade backup chain; teaching periods rerun the
// free-teacher rule with the decliner excluded.
func reassignDeclined(tx *sql.Tx, req *models.SubstituteRequest, absence *models.Absence, decliner string, settings *models.SchedulerSettings, actor string, buf *IntentBuffer) (*models.Staff, error) {
	exclude := map[string]bool{decliner: true, absence.StaffID: true}

	var chosen *models.Staff
	if req.IsMentorDuty {
		id, _, err := mentorFallback(tx, absence.StaffID, req.RequestDate, exclude)
		if err != nil {
			return nil, err
		}
		if id != "" {
			s, err := database.GetStaffByID(tx, id)
			if err != nil {
				return nil, err
			}
			if err := database.AssignRequest(tx, req.ID, id); err != nil {
				return nil, err
			}
			chosen = s
		}
	} else if req.PeriodNumber != nil {
		day, err := ResolveDay(tx, req.RequestDate, settings)
		if err != nil {
			return nil, err
		}
		ctx, err := loadDayContext(tx, day)
		if err != nil {
			return nil, err
		}
		ctx.dropAssignment(decliner, *req.PeriodNumber)
		pointer := pointerByte(settings.PointerSurname)
		if s, ok := ctx.pickSubstitute(*req.PeriodNumber, pointer, exclude); ok {
			if err := database.AssignRequest(tx, req.ID, s.ID); err != nil {
				return nil, err
			}
			chosen = &s
		}
	}

	if chosen == nil {
		if err := database.EscalateRequest(tx, req.ID); err != nil {
			return nil, err
		}
		event := &models.EventLogEntry{
			AbsenceID: req.AbsenceID,
			RequestID: &req.ID,
			EventType: models.EventNoCover,
			Actor:     actor,
			Details:   "no replacement after decline",
		}
		return nil, database.AppendEvent(tx, event)
	}

	event := &models.EventLogEntry{
		AbsenceID: req.AbsenceID,
		RequestID: &req.ID,
		EventType: models.EventReassigned,
		Actor:     actor,
		Details:   fmt.Sprintf("reassigned to %s after decline", chosen.DisplayName),
	}
	if err := database.AppendEvent(tx, event); err != nil {
		return nil, err
	}
	buf.Emit(substituteAssignedIntent(req.AbsenceID, req.ID, chosen.ID, req.RequestDate,
		fmt.Sprintf("You cover %s (%s) on %s.", req.ClassName, req.Subject, req.RequestDate.Format("Mon 02 Jan"))))
	return chosen, nil
}

// mentorFallback walks the grade backup chain for the absent mentor's group,
// skipping excluded and absent staff.
func mentorFallback(tx database.Queryer, mentorID string, date time.Time, exclude map[string]bool) (string, models.FallbackLevel, error) {
	group, err := database.GetMentorGroupByMentor(tx, mentorID)
	if err != nil || group == nil {
		return "", "", err
	}
	backup, err := database.GetGradeBackup(tx, group.Grade)
	if err != nil || backup == nil {
		return "", "", err
	}
	absent, err := database.GetAbsentStaffIDs(tx, date)
	if err != nil {
		return "", "", err
	}
	id, level := MentorCoverPick(backup, absent, exclude)
	return id, level, nil
}

// MentorCoverPick resolves a register vacancy against a grade's backup chain:
// the configured backup first, the grade head second. A candidate is passed
// over when absent or excluded; ("", "") means the chain is exhausted.
func MentorCoverPick(backup *models.GradeBackup, absent, exclude map[string]bool) (string, models.FallbackLevel) {
	if backup == nil {
		return "", ""
	}
	if id := backup.BackupStaffID; id != "" && !exclude[id] && !absent[id] {
		return id, models.FallbackBackup
	}
	if id := backup.GradeHeadStaffID; id != "" && !exclude[id] && !absent[id] {
		return id, models.FallbackGradeHead
	}
	return "", ""
}

// periodStartOn combines the request date with the period's bell start time,
// in the same location as the clock the cutoff is checked against.
func periodStartOn(tx database.Queryer, date time.Time, periodNumber int, loc *time.Location) (time.Time, error) {
	raw, err := database.GetPeriodStartTime(tx, date, periodNumber)
	if err != nil {
		return time.Time{}, err
	}
	return composePeriodStart(date, raw, loc)
}

func composePeriodStart(date time.Time, raw string, loc *time.Location) (time.Time, error) {
	layouts := []string{"15:04:05", "15:04"}
	for _, l := range layouts {
		if t, err := time.Parse(l, raw); err == nil {
			return time.Date(date.Year(), date.Month(), date.Day(),
				t.Hour(), t.Minute(), 0, 0, loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable period start %q", ErrInvalidInput, raw)
}

func declineDescription(req *models.SubstituteRequest) string {
	if req.IsMentorDuty {
		return fmt.Sprintf("register for %s", req.ClassName)
	}
	if req.PeriodNumber != nil {
		return fmt.Sprintf("period %d, %s (%s)", *req.PeriodNumber, req.ClassName, req.Subject)
	}
	return req.ClassName
}
