package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableDates_NeverContainsClosedDays(t *testing.T) {
	from := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)

	for _, d := range AvailableDates(from) {
		assert.NotEqual(t, time.Sunday, d.Weekday())
		assert.NotEqual(t, time.Monday, d.Weekday())
	}
}

func TestAvailableDates_TenDatesFromAnyStartWeekday(t *testing.T) {
	// 14 consecutive days span exactly two Sundays and two Mondays, so the
	// list has ten dates no matter where the window starts.
	sunday := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	for i := 0; i < 7; i++ {
		from := sunday.AddDate(0, 0, i)
		assert.Len(t, AvailableDates(from), 10, "window starting %s", from.Weekday())
	}
}

func TestAvailableDates_StartsToday(t *testing.T) {
	// A Wednesday start includes the start day itself.
	wednesday := time.Date(2026, time.September, 2, 12, 0, 0, 0, time.UTC)
	require.Equal(t, time.Wednesday, wednesday.Weekday())

	dates := AvailableDates(wednesday)
	assert.Equal(t, wednesday, dates[0])
}
