package slots

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcomingSkipsWeekends(t *testing.T) {
	t.Parallel()

	// Monday, so the next 7 days contain one full weekend.
	now := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)

	got := Upcoming(now)

	require.Len(t, got, 5)

	assert.Equal(t, "Tue, Jan 7", got[0].Date)
	assert.Equal(t, "Wed, Jan 8", got[1].Date)
	assert.Equal(t, "Thu, Jan 9", got[2].Date)
	assert.Equal(t, "Fri, Jan 10", got[3].Date)
	assert.Equal(t, "Mon, Jan 13", got[4].Date)
}

func TestUpcomingNeverContainsWeekend(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for day := 0; day < 14; day++ {
		now := start.AddDate(0, 0, day)

		got := Upcoming(now)

		assert.LessOrEqual(t, len(got), 7)
		assert.NotEmpty(t, got)

		for i, slot := range got {
			assert.False(t, strings.HasPrefix(slot.Date, "Sat"), "day offset %d slot %d: %s", day, i, slot.Date)
			assert.False(t, strings.HasPrefix(slot.Date, "Sun"), "day offset %d slot %d: %s", day, i, slot.Date)
		}
	}
}

func TestUpcomingStartsTomorrow(t *testing.T) {
	t.Parallel()

	// Tuesday; tomorrow is Wednesday.
	now := time.Date(2025, 1, 7, 23, 59, 0, 0, time.UTC)

	got := Upcoming(now)

	require.NotEmpty(t, got)
	assert.Equal(t, "Wed, Jan 8", got[0].Date)
}

func TestUpcomingTimeWindows(t *testing.T) {
	t.Parallel()

	got := Upcoming(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

	require.NotEmpty(t, got)

	for _, slot := range got {
		assert.Equal(t, []string{
			"10:00 AM - 11:00 AM",
			"1:00 PM - 2:00 PM",
			"3:00 PM - 4:00 PM",
		}, slot.Times)
	}
}

func TestUpcomingIsDeterministic(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	assert.Equal(t, Upcoming(now), Upcoming(now))
}

func TestUpcomingDoesNotShareWindowsSlice(t *testing.T) {
	t.Parallel()

	got := Upcoming(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

	require.NotEmpty(t, got)

	got[0].Times[0] = "mutated"

	assert.Equal(t, "10:00 AM - 11:00 AM", Windows[0])
}
