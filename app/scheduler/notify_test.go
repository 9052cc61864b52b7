package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

func TestIntentBufferCollectsInOrder(t *testing.T) {
	buf := &IntentBuffer{}
	assert.Empty(t, buf.Intents())

	d := date(2026, time.March, 4)
	buf.Emit(substituteAssignedIntent("abs-1", "req-1", "staff-1", d, "detail"))
	buf.Emit(allClearIntent("abs-1", d))

	intents := buf.Intents()
	require.Len(t, intents, 2)
	assert.Equal(t, models.NotifySubstituteAssigned, intents[0].Type)
	assert.Equal(t, models.NotifyAllClear, intents[1].Type)
}

func TestAbsenceStatusIntentRecipients(t *testing.T) {
	covered := absenceStatusIntent("abs-1", models.AbsenceCovered, "staff-1")
	assert.Equal(t, models.NotifyAbsenceCovered, covered.Type)
	assert.Equal(t, models.RecipientAbsentTeacher, covered.Recipient)
	require.NotNil(t, covered.RecipientID)
	assert.Equal(t, "staff-1", *covered.RecipientID)

	partial := absenceStatusIntent("abs-1", models.AbsencePartial, "staff-1")
	assert.Equal(t, models.NotifyAbsencePartial, partial.Type)
	assert.Equal(t, models.RecipientAbsentTeacher, partial.Recipient)

	// An escalated absence goes to management, not the absent teacher,
	// and identifies no single recipient.
	escalated := absenceStatusIntent("abs-1", models.AbsenceEscalated, "staff-1")
	assert.Equal(t, models.NotifyAbsenceReported, escalated.Type)
	assert.Equal(t, models.RecipientManagement, escalated.Recipient)
	assert.Nil(t, escalated.RecipientID)
}

func TestSubCancelledIntent(t *testing.T) {
	d := date(2026, time.March, 5)
	intent := subCancelledIntent("abs-1", "req-9", "staff-2", d)
	assert.Equal(t, models.NotifySubCancelled, intent.Type)
	assert.Equal(t, models.RecipientOldSubstitute, intent.Recipient)
	require.NotNil(t, intent.RequestID)
	assert.Equal(t, "req-9", *intent.RequestID)
	assert.Contains(t, intent.Message, "cancelled")
}

func TestSportDutyOrphanedIntent(t *testing.T) {
	d := date(2026, time.March, 5)
	intent := sportDutyOrphanedIntent("abs-1", "coord-1", d, "U15 rugby")
	assert.Equal(t, models.NotifySportDutyOrphaned, intent.Type)
	assert.Equal(t, models.RecipientEventCoordinator, intent.Recipient)
	assert.Contains(t, intent.Message, "U15 rugby")
}
