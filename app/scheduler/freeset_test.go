package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

func staffList(names ...string) []models.Staff {
	out := make([]models.Staff, len(names))
	for i, n := range names {
		out[i] = models.Staff{ID: n, FirstName: n, DisplayName: n}
	}
	return out
}

func TestFreeTeachersFilters(t *testing.T) {
	candidates := staffList("Anna", "Ben", "Carla", "Dina", "Evan")
	venue := func(s string) string { return "room-" + s }

	ctx := PeriodContext{
		TeachingStaff:  map[string]bool{"Ben": true},
		OccupiedVenues: map[string]string{venue("Dina"): "Ben"},
		AssignedHere:   map[string]bool{"Evan": true},
	}
	f := FreeSetFilter{
		Candidates: candidates,
		Absent:     map[string]bool{"Carla": true},
		HomeVenues: map[string]string{"Anna": venue("Anna"), "Dina": venue("Dina")},
		Exclude:    map[string]bool{},
	}

	free := FreeTeachers(ctx, f)

	// Ben teaches, Carla is absent, Dina's room is in use by Ben, Evan
	// already substitutes this period. Only Anna survives.
	assert.Len(t, free, 1)
	assert.Equal(t, "Anna", free[0].ID)
}

func TestFreeTeachersOwnRoomDoesNotBlock(t *testing.T) {
	candidates := staffList("Anna")
	ctx := PeriodContext{
		TeachingStaff:  map[string]bool{},
		OccupiedVenues: map[string]string{"room-1": "Anna"},
		AssignedHere:   map[string]bool{},
	}
	f := FreeSetFilter{
		Candidates: candidates,
		Absent:     map[string]bool{},
		HomeVenues: map[string]string{"Anna": "room-1"},
	}

	free := FreeTeachers(ctx, f)
	assert.Len(t, free, 1, "a teacher in their own home room is free")
}

func TestFreeTeachersExclude(t *testing.T) {
	candidates := staffList("Anna", "Ben")
	ctx := PeriodContext{
		TeachingStaff:  map[string]bool{},
		OccupiedVenues: map[string]string{},
		AssignedHere:   map[string]bool{},
	}
	f := FreeSetFilter{
		Candidates: candidates,
		Absent:     map[string]bool{},
		Exclude:    map[string]bool{"Anna": true},
	}

	free := FreeTeachers(ctx, f)
	assert.Len(t, free, 1)
	assert.Equal(t, "Ben", free[0].ID)
}

func TestSplitByLoad(t *testing.T) {
	free := staffList("Anna", "Ben", "Carla")
	load := map[string]int{"Ben": 1}

	fresh, loaded := SplitByLoad(free, load)

	assert.Equal(t, []string{"Anna", "Carla"}, ids(fresh))
	assert.Equal(t, []string{"Ben"}, ids(loaded))
}

func TestPickByPointer(t *testing.T) {
	tests := []struct {
		name       string
		candidates []models.Staff
		pointer    byte
		want       string
		found      bool
	}{
		{"empty set", nil, 'A', "", false},
		{"first at pointer", staffList("Anna", "Ben"), 'A', "Anna", true},
		{"skips below pointer", staffList("Anna", "Ben", "Dina"), 'C', "Dina", true},
		{"wraps when none qualify", staffList("Anna", "Ben"), 'X', "Anna", true},
		{"exact initial qualifies", staffList("Ben", "Dina"), 'D', "Dina", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := PickByPointer(tt.candidates, tt.pointer)
			assert.Equal(t, tt.found, found)
			if found {
				assert.Equal(t, tt.want, got.ID)
			}
		})
	}
}

func TestNextPointer(t *testing.T) {
	assert.Equal(t, byte('B'), NextPointer('A'))
	assert.Equal(t, byte('A'), NextPointer('Z'))
	assert.Equal(t, byte('A'), NextPointer('~'), "out of range resets to A")
}

func TestSortByFirstName(t *testing.T) {
	staff := []models.Staff{
		{ID: "1", FirstName: "Carla"},
		{ID: "2", FirstName: "Anna", LastName: "Zulu"},
		{ID: "3", FirstName: "Anna", LastName: "Abrams"},
	}
	SortByFirstName(staff)
	assert.Equal(t, []string{"3", "2", "1"}, ids(staff))
}

func TestPickSubstitutePrefersZeroLoad(t *testing.T) {
	ctx := &dayContext{
		candidates: staffList("Anna", "Ben"),
		absent:     map[string]bool{},
		homes:      map[string]string{},
		load:       map[string]int{"Anna": 1},
		periods:    map[int]*PeriodContext{},
	}

	chosen, ok := ctx.pickSubstitute(3, 'A', map[string]bool{})
	assert.True(t, ok)
	assert.Equal(t, "Ben", chosen.ID, "loaded Anna yields to fresh Ben despite pointer order")

	// With Ben also loaded, Anna comes back as the fallback.
	ctx.recordAssignment("Ben", 3)
	chosen, ok = ctx.pickSubstitute(4, 'A', map[string]bool{})
	assert.True(t, ok)
	assert.Equal(t, "Anna", chosen.ID)
}

func TestDropAssignmentFreesPeriod(t *testing.T) {
	ctx := &dayContext{
		candidates: staffList("Anna"),
		absent:     map[string]bool{},
		homes:      map[string]string{},
		load:       map[string]int{},
		periods:    map[int]*PeriodContext{},
	}
	ctx.recordAssignment("Anna", 2)

	_, ok := ctx.pickSubstitute(2, 'A', map[string]bool{})
	assert.False(t, ok, "Anna holds period 2")

	ctx.dropAssignment("Anna", 2)
	chosen, ok := ctx.pickSubstitute(2, 'A', map[string]bool{})
	assert.True(t, ok)
	assert.Equal(t, "Anna", chosen.ID)
}

func TestPointerByte(t *testing.T) {
	assert.Equal(t, byte('M'), pointerByte("M"))
	assert.Equal(t, byte('M'), pointerByte("m"))
	assert.Equal(t, byte('A'), pointerByte(""))
	assert.Equal(t, byte('A'), pointerByte("3"))
}

func ids(staff []models.Staff) []string {
	out := make([]string, len(staff))
	for i, s := range staff {
		out[i] = s.ID
	}
	return out
}
