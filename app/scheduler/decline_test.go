package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

func TestDeclineAllowedCutoffBoundary(t *testing.T) {
	periodStart := time.Date(2026, time.March, 4, 10, 10, 0, 0, time.UTC)
	cutoff := 30

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"well before cutoff", periodStart.Add(-90 * time.Minute), true},
		{"one minute outside cutoff", periodStart.Add(-31 * time.Minute), true},
		{"exactly at cutoff", periodStart.Add(-30 * time.Minute), false},
		{"inside cutoff", periodStart.Add(-10 * time.Minute), false},
		{"after period start", periodStart.Add(5 * time.Minute), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeclineAllowed(periodStart, tt.now, cutoff))
		})
	}
}

func TestDeclineAllowedFutureDate(t *testing.T) {
	periodStart := time.Date(2026, time.March, 5, 7, 30, 0, 0, time.UTC)
	// The evening before, minutes-until is under the cutoff, but the cutoff
	// only binds on the day itself.
	now := time.Date(2026, time.March, 4, 23, 50, 0, 0, time.UTC)
	assert.True(t, DeclineAllowed(periodStart, now, 30))
}

func TestDeclineDescription(t *testing.T) {
	p := 3
	req := &models.SubstituteRequest{PeriodNumber: &p, ClassName: "10A", Subject: "Maths"}
	assert.Equal(t, "period 3, 10A (Maths)", declineDescription(req))

	mentor := &models.SubstituteRequest{IsMentorDuty: true, ClassName: "10A"}
	assert.Equal(t, "register for 10A", declineDescription(mentor))
}

func TestMentorCoverPick(t *testing.T) {
	backup := &models.GradeBackup{
		Grade:            10,
		BackupStaffID:    "s-backup",
		GradeHeadStaffID: "s-head",
	}

	tests := []struct {
		name      string
		backup    *models.GradeBackup
		absent    map[string]bool
		exclude   map[string]bool
		wantID    string
		wantLevel models.FallbackLevel
	}{
		{"backup available", backup, nil, nil, "s-backup", models.FallbackBackup},
		{"backup absent, grade head steps in", backup, map[string]bool{"s-backup": true}, nil, "s-head", models.FallbackGradeHead},
		{"backup excluded, grade head steps in", backup, nil, map[string]bool{"s-backup": true}, "s-head", models.FallbackGradeHead},
		{"chain exhausted", backup, map[string]bool{"s-backup": true, "s-head": true}, nil, "", ""},
		{"no config", nil, nil, nil, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, level := MentorCoverPick(tt.backup, tt.absent, tt.exclude)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantLevel, level)
		})
	}
}

func TestComposePeriodStartUsesClockLocation(t *testing.T) {
	loc := time.FixedZone("SAST", 2*60*60)
	day := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	start, err := composePeriodStart(day, "10:10:00", loc)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 4, 10, 10, 0, 0, loc), start)

	// The cutoff clock and the bell time live in the same zone, so a
	// quarter past ten local is past a 30 minute cutoff on a 10:10 bell.
	now := time.Date(2026, time.March, 4, 10, 15, 0, 0, loc)
	assert.False(t, DeclineAllowed(start, now, 30))
}

func TestComposePeriodStartLayouts(t *testing.T) {
	day := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	short, err := composePeriodStart(day, "08:20", time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, 8, short.Hour())
	assert.Equal(t, 20, short.Minute())

	_, err = composePeriodStart(day, "half past eight", time.UTC)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
