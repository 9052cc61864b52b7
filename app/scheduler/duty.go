package scheduler

import (
	"fmt"
	"time"

	"github.com/JohanBenade/schools-pwa-sub000/app/database"
	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// ReassignDuty vacates a duty roster entry whose assignee cannot serve and
// picks a replacement. The pool is duty-eligible staff in first-name order;
// a candidate is skipped when absent on the date, already holding a duty of
// the same type that day, or (for terrain) already holding terrain anywhere
// in the same week. Returns the replacement, or nil when nobody qualified.
func ReassignDuty(tx database.Queryer, entry models.DutyRosterEntry, absenceID, reason, actor string, buf *IntentBuffer) (*models.Staff, error) {
	desc, err := dutyDescription(tx, entry)
	if err != nil {
		return nil, err
	}

	// The vacancy itself is recorded whether or not a replacement is found,
	// but only once; reruns for the same open slot must not pile up audit
	// rows or repeat the no-replacement event.
	recorded, err := database.HasDutyDecline(tx, entry.StaffID, entry.DutyDate, string(entry.DutyType), reason)
	if err != nil {
		return nil, err
	}
	if !recorded {
		decline := &models.DutyDecline{
			DutyType:        string(entry.DutyType),
			StaffID:         entry.StaffID,
			DutyDescription: desc,
			DutyDate:        entry.DutyDate,
			Reason:          reason,
			DeclinedAt:      time.Now(),
		}
		if err := database.CreateDutyDecline(tx, decline); err != nil {
			return nil, err
		}
	}

	pool, err := database.GetDutyCandidates(tx)
	if err != nil {
		return nil, err
	}
	absent, err := database.GetAbsentStaffIDs(tx, entry.DutyDate)
	if err != nil {
		return nil, err
	}
	sameType, err := database.GetDutyTypeAssignees(tx, entry.DutyDate, entry.DutyType)
	if err != nil {
		return nil, err
	}
	weekTerrain := map[string]bool{}
	if entry.DutyType == models.DutyTerrain {
		monday, friday := WeekBounds(entry.DutyDate)
		weekTerrain, err = database.GetWeekTerrainAssignees(tx, monday, friday)
		if err != nil {
			return nil, err
		}
	}

	var replacement *models.Staff
	for i := range pool {
		c := pool[i]
		if c.ID == entry.StaffID || absent[c.ID] || sameType[c.ID] || weekTerrain[c.ID] {
			continue
		}
		replacement = &c
		break
	}

	if replacement == nil {
		if recorded {
			return nil, nil
		}
		event := &models.EventLogEntry{
			AbsenceID: absenceID,
			EventType: models.EventNoReplacement,
			Actor:     actor,
			Details:   fmt.Sprintf("no replacement for %s on %s", desc, entry.DutyDate.Format("2006-01-02")),
		}
		return nil, database.AppendEvent(tx, event)
	}

	if err := database.SetDutyReplacement(tx, entry.ID, &replacement.ID, &absenceID); err != nil {
		return nil, err
	}
	event := &models.EventLogEntry{
		AbsenceID: absenceID,
		EventType: models.EventDutyReassigned,
		Actor:     actor,
		Details: fmt.Sprintf("%s on %s reassigned from %s to %s",
			desc, entry.DutyDate.Format("2006-01-02"), entry.StaffID, replacement.DisplayName),
	}
	if err := database.AppendEvent(tx, event); err != nil {
		return nil, err
	}
	buf.Emit(terrainReassignedIntent(absenceID, replacement.ID, entry.DutyDate, desc))
	return replacement, nil
}

// openDutyEntries filters out entries that already carry a replacement, so
// repeated runs over the same absence leave settled repairs alone.
func openDutyEntries(entries []models.DutyRosterEntry) []models.DutyRosterEntry {
	var open []models.DutyRosterEntry
	for _, e := range entries {
		if e.ReplacementID == nil {
			open = append(open, e)
		}
	}
	return open
}

func dutyDescription(tx database.Queryer, entry models.DutyRosterEntry) (string, error) {
	if entry.DutyType == models.DutyHomework {
		return "homework class duty", nil
	}
	if entry.TerrainAreaID == nil {
		return "terrain duty", nil
	}
	areas, err := database.GetTerrainAreas(tx)
	if err != nil {
		return "", err
	}
	for _, a := range areas {
		if a.ID == *entry.TerrainAreaID {
			return fmt.Sprintf("terrain duty (%s)", a.Name), nil
		}
	}
	return "terrain duty", nil
}
