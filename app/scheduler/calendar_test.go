package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFallbackBellVariant(t *testing.T) {
	assert.Equal(t, BellTypeA, FallbackBellVariant(time.Monday))
	assert.Equal(t, BellTypeB, FallbackBellVariant(time.Tuesday))
	assert.Equal(t, BellTypeA, FallbackBellVariant(time.Wednesday))
	assert.Equal(t, BellTypeB, FallbackBellVariant(time.Thursday))
	assert.Equal(t, BellTypeC, FallbackBellVariant(time.Friday))
	assert.Equal(t, "none", FallbackBellVariant(time.Saturday))
}

func TestFallbackCycleDay(t *testing.T) {
	// Cycle starts Wednesday 2026-01-14 with a 7 day cycle.
	start := date(2026, time.January, 14)

	tests := []struct {
		date time.Time
		want int
	}{
		{date(2026, time.January, 14), 1},
		{date(2026, time.January, 15), 2},
		{date(2026, time.January, 16), 3},
		// Weekend does not advance the cycle.
		{date(2026, time.January, 19), 4},
		{date(2026, time.January, 22), 7},
		// Day 8 wraps to 1.
		{date(2026, time.January, 23), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FallbackCycleDay(tt.date, start, 7), "date %s", tt.date.Format("2006-01-02"))
	}
}

func TestFallbackCycleDayBadLength(t *testing.T) {
	start := date(2026, time.January, 14)
	// A zero length falls back to 7 instead of dividing by zero.
	assert.Equal(t, 1, FallbackCycleDay(start, start, 0))
}

func TestSchoolWeekdays(t *testing.T) {
	// Friday through Monday: the weekend drops out.
	days := SchoolWeekdays(date(2026, time.March, 6), date(2026, time.March, 9))
	require.Len(t, days, 2)
	assert.Equal(t, time.Friday, days[0].Weekday())
	assert.Equal(t, time.Monday, days[1].Weekday())
}

func TestSchoolWeekdaysSingleDay(t *testing.T) {
	d := date(2026, time.March, 4)
	days := SchoolWeekdays(d, d)
	require.Len(t, days, 1)
	assert.True(t, days[0].Equal(d))

	assert.Empty(t, SchoolWeekdays(date(2026, time.March, 7), date(2026, time.March, 8)), "a pure weekend range is empty")
}

func TestWeekBounds(t *testing.T) {
	// Wednesday 2026-03-04 sits in the week Mon 2nd .. Fri 6th.
	monday, friday := WeekBounds(date(2026, time.March, 4))
	assert.True(t, monday.Equal(date(2026, time.March, 2)))
	assert.True(t, friday.Equal(date(2026, time.March, 6)))

	// Sunday belongs to the week that started the previous Monday.
	monday, friday = WeekBounds(date(2026, time.March, 8))
	assert.True(t, monday.Equal(date(2026, time.March, 2)))
	assert.True(t, friday.Equal(date(2026, time.March, 6)))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(date(2026, time.March, 7)))
	assert.True(t, IsWeekend(date(2026, time.March, 8)))
	assert.False(t, IsWeekend(date(2026, time.March, 9)))
}
