package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

func TestOpenDutyEntriesSkipsSettledRepairs(t *testing.T) {
	d := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	replacement := "s-replacement"

	entries := []models.DutyRosterEntry{
		{ID: "d1", DutyDate: d, DutyType: models.DutyTerrain, StaffID: "s-absent"},
		{ID: "d2", DutyDate: d, DutyType: models.DutyHomework, StaffID: "s-absent", ReplacementID: &replacement},
		{ID: "d3", DutyDate: d, DutyType: models.DutyTerrain, StaffID: "s-absent"},
	}

	open := openDutyEntries(entries)
	assert.Len(t, open, 2)
	assert.Equal(t, "d1", open[0].ID)
	assert.Equal(t, "d3", open[1].ID)
}

func TestOpenDutyEntriesEmpty(t *testing.T) {
	assert.Empty(t, openDutyEntries(nil))
}
