//go:build unit

package booking_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newYorkCalendar(t *testing.T) booking.Calendar {
	t.Helper()
	cal, err := booking.LoadCalendar("America/New_York")
	require.NoError(t, err)
	return cal
}

func TestCalendar(t *testing.T) {
	cal := newYorkCalendar(t)

	t.Run("day bounds are local midnight to next midnight", func(t *testing.T) {
		from, to := cal.DayBounds(builder.At(2025, time.June, 11, 15))
		assert.True(t, from.Equal(builder.At(2025, time.June, 11, 0)))
		assert.True(t, to.Equal(builder.At(2025, time.June, 12, 0)))
	})

	t.Run("week runs Sunday to Sunday", func(t *testing.T) {
		from, to := cal.WeekRange(builder.At(2025, time.June, 11, 15))
		assert.Equal(t, time.Sunday, from.Weekday())
		assert.True(t, from.Equal(builder.At(2025, time.June, 8, 0)))
		assert.True(t, to.Equal(builder.At(2025, time.June, 15, 0)))
	})

	t.Run("Sunday belongs to the week it starts", func(t *testing.T) {
		from, _ := cal.WeekRange(builder.At(2025, time.June, 15, 6))
		assert.True(t, from.Equal(builder.At(2025, time.June, 15, 0)))
	})

	t.Run("Saturday late evening stays in the same week", func(t *testing.T) {
		late := time.Date(2025, time.June, 14, 23, 59, 59, 0, builder.NewYork)
		from, _ := cal.WeekRange(late)
		assert.True(t, from.Equal(builder.At(2025, time.June, 8, 0)))
	})

	t.Run("week bounds end one millisecond before next Sunday", func(t *testing.T) {
		_, end := cal.WeekBounds(builder.At(2025, time.June, 11, 15))
		want := time.Date(2025, time.June, 14, 23, 59, 59, int(999*time.Millisecond), builder.NewYork)
		assert.True(t, end.Equal(want), "got %s", end)
	})

	t.Run("week spanning DST start is 167 hours long", func(t *testing.T) {
		from, to := cal.WeekRange(builder.At(2025, time.March, 12, 10))
		assert.True(t, from.Equal(builder.At(2025, time.March, 9, 0)))
		assert.True(t, to.Equal(builder.At(2025, time.March, 16, 0)))
		assert.Equal(t, 167*time.Hour, to.Sub(from))
	})

	t.Run("days between counts civil dates across DST", func(t *testing.T) {
		assert.Equal(t, 7, cal.DaysBetween(builder.At(2025, time.March, 5, 10), builder.At(2025, time.March, 12, 10)))
		assert.Equal(t, 7, cal.DaysBetween(builder.At(2025, time.March, 5, 23), builder.At(2025, time.March, 12, 6)))
		assert.Equal(t, 1, cal.DaysBetween(time.Date(2025, time.June, 4, 23, 59, 0, 0, builder.NewYork), builder.At(2025, time.June, 5, 0)))
		assert.Equal(t, -1, cal.DaysBetween(builder.At(2025, time.June, 5, 0), builder.At(2025, time.June, 4, 12)))
	})

	t.Run("days between uses the club zone not UTC", func(t *testing.T) {
		// 2025-06-05 02:00 UTC is still June 4 in New York
		utc := time.Date(2025, time.June, 5, 2, 0, 0, 0, time.UTC)
		assert.Equal(t, 7, cal.DaysBetween(utc, builder.At(2025, time.June, 11, 10)))
	})

	t.Run("add days keeps the wall clock across DST", func(t *testing.T) {
		got := cal.AddDays(builder.At(2025, time.March, 5, 10), 7)
		assert.True(t, got.Equal(builder.At(2025, time.March, 12, 10)))
	})

	t.Run("parse date", func(t *testing.T) {
		d, err := cal.ParseDate("2025-06-11")
		require.NoError(t, err)
		assert.True(t, d.Equal(builder.At(2025, time.June, 11, 0)))

		_, err = cal.ParseDate("06/11/2025")
		assert.ErrorIs(t, err, booking.ErrInvalidDate)
	})

	t.Run("unknown zone fails to load", func(t *testing.T) {
		_, err := booking.LoadCalendar("Mars/Olympus_Mons")
		assert.Error(t, err)
	})
}

func TestWindow(t *testing.T) {
	cal := newYorkCalendar(t)
	w := booking.Window{OpenHour: 18, Enabled: true}

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "before opening", now: time.Date(2025, time.June, 4, 17, 59, 59, 0, builder.NewYork), want: false},
		{name: "at opening", now: builder.At(2025, time.June, 4, 18), want: true},
		{name: "just before midnight", now: time.Date(2025, time.June, 4, 23, 59, 59, 0, builder.NewYork), want: true},
		{name: "just after midnight", now: time.Date(2025, time.June, 5, 0, 0, 1, 0, builder.NewYork), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, w.Contains(cal, tc.now))
			assert.Equal(t, tc.want, w.Admits(cal, tc.now))
		})
	}

	t.Run("disabled window admits any time", func(t *testing.T) {
		off := booking.Window{OpenHour: 18}
		assert.True(t, off.Admits(cal, builder.At(2025, time.June, 4, 9)))
	})

	t.Run("bounds", func(t *testing.T) {
		opens, closes := w.Bounds(cal, builder.At(2025, time.June, 4, 9))
		assert.True(t, opens.Equal(builder.At(2025, time.June, 4, 18)))
		assert.True(t, closes.Equal(time.Date(2025, time.June, 4, 23, 59, 59, int(999*time.Millisecond), builder.NewYork)))
	})

	t.Run("out of range open hour falls back to default", func(t *testing.T) {
		assert.Equal(t, "6:00 PM", booking.Window{OpenHour: 42}.OpensAtLabel())
	})
}
