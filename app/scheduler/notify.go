package scheduler

import (
	"fmt"
	"time"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// IntentBuffer collects notification intents produced while the scheduler
// runs. Delivery is external; emitting never fails and never blocks.
type IntentBuffer struct {
	intents []models.NotificationIntent
}

// Emit appends an intent to the buffer.
func (b *IntentBuffer) Emit(i models.NotificationIntent) {
	b.intents = append(b.intents, i)
}

// Intents returns everything emitted so far.
func (b *IntentBuffer) Intents() []models.NotificationIntent {
	return b.intents
}

func substituteAssignedIntent(absenceID, requestID, substituteID string, date time.Time, detail string) models.NotificationIntent {
	rid := requestID
	d := date
	sid := substituteID
	return models.NotificationIntent{
		Type:        models.NotifySubstituteAssigned,
		Recipient:   models.RecipientNewSubstitute,
		RecipientID: &sid,
		AbsenceID:   absenceID,
		RequestID:   &rid,
		Date:        &d,
		Message:     detail,
	}
}

func absenceStatusIntent(absenceID string, status models.AbsenceStatus, staffID string) models.NotificationIntent {
	sid := staffID
	intent := models.NotificationIntent{
		Recipient:   models.RecipientAbsentTeacher,
		RecipientID: &sid,
		AbsenceID:   absenceID,
	}
	switch status {
	case models.AbsenceCovered:
		intent.Type = models.NotifyAbsenceCovered
		intent.Message = "All lessons for your absence are covered."
	case models.AbsencePartial:
		intent.Type = models.NotifyAbsencePartial
		intent.Message = "Some lessons for your absence still need cover."
	default:
		intent.Type = models.NotifyAbsenceReported
		intent.Recipient = models.RecipientManagement
		intent.RecipientID = nil
		intent.Message = "An absence could not be covered and needs attention."
	}
	return intent
}

func subCancelledIntent(absenceID, requestID string, substituteID string, date time.Time) models.NotificationIntent {
	rid := requestID
	d := date
	sid := substituteID
	return models.NotificationIntent{
		Type:        models.NotifySubCancelled,
		Recipient:   models.RecipientOldSubstitute,
		RecipientID: &sid,
		AbsenceID:   absenceID,
		RequestID:   &rid,
		Date:        &d,
		Message:     fmt.Sprintf("Your substitution on %s was cancelled.", d.Format("Mon 02 Jan")),
	}
}

func dutyCancelledIntent(absenceID, replacementID string, date time.Time, dutyType string) models.NotificationIntent {
	sid := replacementID
	d := date
	return models.NotificationIntent{
		Type:        models.NotifyDutyCancelled,
		Recipient:   models.RecipientDutyTeacher,
		RecipientID: &sid,
		AbsenceID:   absenceID,
		Date:        &d,
		Message:     fmt.Sprintf("Your stand-in %s duty on %s is no longer needed.", dutyType, d.Format("Mon 02 Jan")),
	}
}

func terrainReassignedIntent(absenceID, replacementID string, date time.Time, description string) models.NotificationIntent {
	sid := replacementID
	d := date
	return models.NotificationIntent{
		Type:        models.NotifyTerrainReassigned,
		Recipient:   models.RecipientDutyTeacher,
		RecipientID: &sid,
		AbsenceID:   absenceID,
		Date:        &d,
		Message:     fmt.Sprintf("You have been assigned %s on %s.", description, d.Format("Mon 02 Jan")),
	}
}

func sportDutyOrphanedIntent(absenceID, coordinatorID string, date time.Time, eventName string) models.NotificationIntent {
	sid := coordinatorID
	d := date
	return models.NotificationIntent{
		Type:        models.NotifySportDutyOrphaned,
		Recipient:   models.RecipientEventCoordinator,
		RecipientID: &sid,
		AbsenceID:   absenceID,
		Date:        &d,
		Message:     fmt.Sprintf("A duty at %s on %s has no teacher; the assignee is absent.", eventName, d.Format("Mon 02 Jan")),
	}
}

func allClearIntent(absenceID string, returnDate time.Time) models.NotificationIntent {
	d := returnDate
	return models.NotificationIntent{
		Type:      models.NotifyAllClear,
		Recipient: models.RecipientManagement,
		AbsenceID: absenceID,
		Date:      &d,
		Message:   fmt.Sprintf("Teacher returns on %s; outstanding cover was released.", d.Format("Mon 02 Jan")),
	}
}
