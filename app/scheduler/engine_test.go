package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

func TestRequestKeyDistinguishesSlots(t *testing.T) {
	d := date(2026, time.March, 4)
	p1, p2 := 1, 2

	assert.NotEqual(t, requestKey(d, &p1, false), requestKey(d, &p2, false))
	assert.NotEqual(t, requestKey(d, &p1, false), requestKey(d.AddDate(0, 0, 1), &p1, false))
	// A mentor-duty slot never collides with period slots.
	assert.NotEqual(t, requestKey(d, nil, true), requestKey(d, nil, false))
	assert.Equal(t, requestKey(d, &p1, false), requestKey(d, &p1, false))
}

func TestResultFromRequest(t *testing.T) {
	p := 4
	sub := "staff-2"
	req := models.SubstituteRequest{
		ID:           "req-1",
		PeriodNumber: &p,
		ClassName:    "10A",
		Subject:      "Maths",
		VenueCode:    "B12",
		SubstituteID: &sub,
		Status:       models.RequestAssigned,
		Substitute:   &models.Staff{ID: sub, DisplayName: "Ben Botha"},
	}

	res := resultFromRequest(req)
	assert.Equal(t, "req-1", res.RequestID)
	assert.Equal(t, &p, res.PeriodNumber)
	assert.Equal(t, "Ben Botha", res.SubstituteName)
	assert.Equal(t, models.RequestAssigned, res.Status)
}

func TestSameDate(t *testing.T) {
	morning := time.Date(2026, time.March, 4, 7, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.March, 4, 22, 0, 0, 0, time.UTC)
	assert.True(t, sameDate(morning, evening))
	assert.False(t, sameDate(morning, morning.AddDate(0, 0, 1)))
}

func TestAbsenceCoversDate(t *testing.T) {
	end := date(2026, time.March, 6)
	a := models.Absence{StartDate: date(2026, time.March, 4), EndDate: &end}

	assert.False(t, a.CoversDate(date(2026, time.March, 3)))
	assert.True(t, a.CoversDate(date(2026, time.March, 4)))
	assert.True(t, a.CoversDate(date(2026, time.March, 6)))
	assert.False(t, a.CoversDate(date(2026, time.March, 7)))

	open := models.Absence{StartDate: date(2026, time.March, 4), IsOpenEnded: true}
	assert.True(t, open.CoversDate(date(2026, time.June, 1)))
}
