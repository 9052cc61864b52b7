package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

func schoolDay(d time.Time) ResolvedDay {
	cd := 1
	return ResolvedDay{
		Date:        d,
		CycleDay:    &cd,
		DayType:     models.DayAcademic,
		BellVariant: FallbackBellVariant(d.Weekday()),
		IsSchoolDay: true,
	}
}

func weekDays(monday time.Time, n int) []ResolvedDay {
	days := make([]ResolvedDay, n)
	for i := 0; i < n; i++ {
		days[i] = schoolDay(monday.AddDate(0, 0, i))
	}
	return days
}

func terrainAreas(names ...string) []models.TerrainArea {
	out := make([]models.TerrainArea, len(names))
	for i, n := range names {
		out[i] = models.TerrainArea{ID: "area-" + n, Name: n, SortOrder: i, IsActive: true}
	}
	return out
}

func TestBuildRotaHomeworkMonToThuOnly(t *testing.T) {
	monday := date(2026, time.March, 2)
	in := RotaInputs{
		Days:         weekDays(monday, 5),
		Staff:        staffList("Anna", "Ben", "Carla", "Dina", "Evan", "Fred"),
		Areas:        terrainAreas("Quad"),
		AbsentByDate: map[string]map[string]bool{},
	}

	plan := BuildRota(in)

	require.Len(t, plan.Homework, 4, "homework runs Mon-Thu")
	for _, a := range plan.Homework {
		assert.NotEqual(t, time.Friday, a.Date.Weekday())
	}
	assert.Len(t, plan.Terrain, 5, "terrain runs all five days")
	assert.Empty(t, plan.Warnings)
}

func TestBuildRotaWeekDisjointness(t *testing.T) {
	monday := date(2026, time.March, 2)
	in := RotaInputs{
		Days:         weekDays(monday, 5),
		Staff:        staffList("Anna", "Ben", "Carla", "Dina", "Evan", "Fred", "Gina", "Hugo"),
		Areas:        terrainAreas("Quad", "Field"),
		AbsentByDate: map[string]map[string]bool{},
	}

	plan := BuildRota(in)

	homework := map[string]bool{}
	for _, a := range plan.Homework {
		homework[a.StaffID] = true
	}
	for _, a := range plan.Terrain {
		assert.False(t, homework[a.StaffID],
			"%s holds both terrain and homework in the same week", a.StaffID)
	}
}

func TestBuildRotaDisjointnessResetsAcrossWeeks(t *testing.T) {
	week1 := weekDays(date(2026, time.March, 2), 5)
	week2 := weekDays(date(2026, time.March, 9), 5)
	in := RotaInputs{
		Days:         append(week1, week2...),
		Staff:        staffList("Anna", "Ben", "Carla"),
		Areas:        terrainAreas("Quad"),
		AbsentByDate: map[string]map[string]bool{},
	}

	plan := BuildRota(in)

	// Three staff cannot keep terrain and homework disjoint forever unless
	// the week sets reset; with the reset every slot fills.
	assert.Len(t, plan.Homework, 8)
	assert.Len(t, plan.Terrain, 10)
}

func TestBuildRotaSkipsAbsentAndHomeworkAssignee(t *testing.T) {
	monday := date(2026, time.March, 2)
	in := RotaInputs{
		Days:  weekDays(monday, 1),
		Staff: staffList("Anna", "Ben", "Carla"),
		Areas: terrainAreas("Quad"),
		AbsentByDate: map[string]map[string]bool{
			"2026-03-02": {"Carla": true},
		},
	}

	plan := BuildRota(in)

	require.Len(t, plan.Homework, 1)
	require.Len(t, plan.Terrain, 1)
	// Homework picks from descending order: Carla is absent, Ben gets it.
	assert.Equal(t, "Ben", plan.Homework[0].StaffID)
	// Terrain ascending: Anna is free and not the homework assignee.
	assert.Equal(t, "Anna", plan.Terrain[0].StaffID)
}

func TestBuildRotaNeverDoubleBooksADate(t *testing.T) {
	monday := date(2026, time.March, 2)
	in := RotaInputs{
		Days:         weekDays(monday, 1),
		Staff:        staffList("Anna", "Ben", "Carla", "Dina"),
		Areas:        terrainAreas("Quad", "Field", "Gate"),
		AbsentByDate: map[string]map[string]bool{},
	}

	plan := BuildRota(in)

	seen := map[string]bool{}
	for _, a := range append(plan.Homework, plan.Terrain...) {
		assert.False(t, seen[a.StaffID], "%s booked twice on one date", a.StaffID)
		seen[a.StaffID] = true
	}
}

func TestBuildRotaWarnsOnShortPool(t *testing.T) {
	monday := date(2026, time.March, 2)
	in := RotaInputs{
		Days:         weekDays(monday, 1),
		Staff:        staffList("Anna", "Ben"),
		Areas:        terrainAreas("Quad", "Field", "Gate"),
		AbsentByDate: map[string]map[string]bool{},
	}

	plan := BuildRota(in)

	// Anna and Ben split homework and one area; two areas go uncovered.
	assert.Len(t, plan.Homework, 1)
	assert.Len(t, plan.Terrain, 1)
	assert.Len(t, plan.Warnings, 2)
}

func TestBuildRotaPointersAdvance(t *testing.T) {
	monday := date(2026, time.March, 2)
	in := RotaInputs{
		Days:         weekDays(monday, 1),
		Staff:        staffList("Anna", "Ben", "Carla", "Dina"),
		Areas:        terrainAreas("Quad"),
		AbsentByDate: map[string]map[string]bool{},
	}

	plan := BuildRota(in)

	require.Len(t, plan.Homework, 1)
	// Descending order is Dina, Carla, Ben, Anna; pointer 0 picks Dina and
	// moves to 1.
	assert.Equal(t, "Dina", plan.Homework[0].StaffID)
	assert.Equal(t, 1, plan.HomeworkPointer)
	// Ascending order picks Anna for the single area.
	require.Len(t, plan.Terrain, 1)
	assert.Equal(t, "Anna", plan.Terrain[0].StaffID)
	assert.Equal(t, 1, plan.TerrainPointer)
}

func TestBuildRotaEmptyStaff(t *testing.T) {
	in := RotaInputs{
		Days:  weekDays(date(2026, time.March, 2), 2),
		Areas: terrainAreas("Quad"),
	}
	plan := BuildRota(in)
	assert.Empty(t, plan.Terrain)
	assert.Empty(t, plan.Homework)
	assert.Len(t, plan.Warnings, 2)
}
