package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

func TestMarkBackCheck(t *testing.T) {
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	wed := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	thu := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)

	active := func(status models.AbsenceStatus, end *time.Time) *models.Absence {
		return &models.Absence{ID: "a1", StaffID: "s1", StartDate: start, EndDate: end, Status: status}
	}

	t.Run("cancelled absence conflicts", func(t *testing.T) {
		_, _, err := markBackCheck(active(models.AbsenceCancelled, nil), thu)
		assert.ErrorIs(t, err, ErrStateConflict)
	})

	t.Run("return on the start date conflicts", func(t *testing.T) {
		_, _, err := markBackCheck(active(models.AbsenceReported, nil), start)
		assert.ErrorIs(t, err, ErrStateConflict)
	})

	t.Run("return before the start date conflicts", func(t *testing.T) {
		_, _, err := markBackCheck(active(models.AbsenceReported, nil), start.AddDate(0, 0, -1))
		assert.ErrorIs(t, err, ErrStateConflict)
	})

	t.Run("active absence ends the day before the return", func(t *testing.T) {
		newEnd, noop, err := markBackCheck(active(models.AbsenceCovered, nil), thu)
		assert.NoError(t, err)
		assert.False(t, noop)
		assert.Equal(t, wed, newEnd)
	})

	t.Run("repeat with the same date is a no-op", func(t *testing.T) {
		newEnd, noop, err := markBackCheck(active(models.AbsenceResolved, &wed), thu)
		assert.NoError(t, err)
		assert.True(t, noop)
		assert.Equal(t, wed, newEnd)
	})

	t.Run("resolved with a different end date conflicts", func(t *testing.T) {
		_, _, err := markBackCheck(active(models.AbsenceResolved, &wed), thu.AddDate(0, 0, 1))
		assert.ErrorIs(t, err, ErrStateConflict)
	})
}
