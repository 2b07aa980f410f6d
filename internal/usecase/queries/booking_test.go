//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra/memory"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   *memory.Store
	clock   *clock.MockClock
	rules   *booking.Rules
	member  *user.User
	queries queries.BookingQueries
	users   queries.UserQueries
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cal, err := booking.LoadCalendar("America/New_York")
	require.NoError(t, err)

	f := &fixture{
		store:  memory.NewStore(),
		clock:  clock.NewMockClock(builder.At(2025, time.June, 4, 10)),
		rules:  booking.NewRules(cal, booking.PolicyExactNextWeek, booking.Window{OpenHour: 18}),
		member: builder.NewUserBuilder().WithQuota(4).MustBuildDomain(),
	}
	f.store.AddUser(f.member)

	userReads := memory.NewUserReadStore(f.store)
	f.queries = queries.NewBookingQueries(memory.NewBookingReadStore(f.store), userReads, f.rules, f.clock)
	f.users = queries.NewUserQueries(userReads)
	return f
}

func (f *fixture) book(userID uuid.UUID, start time.Time, hours int) {
	f.store.AddBooking(builder.NewBookingBuilder().WithUserID(userID).WithStart(start).WithHours(hours).BuildDomain())
}

func TestListAvailableSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("open day", func(t *testing.T) {
		f := newFixture(t)
		slots, err := f.queries.ListAvailableSlots(ctx, "2025-06-11", 1, nil)
		require.NoError(t, err)
		require.Len(t, slots, 15)
		assert.Equal(t, builder.Slot(builder.At(2025, time.June, 11, 6), 1).ID(), slots[0].ID)
		assert.Equal(t, 1.0, slots[0].DurationHours)
	})

	t.Run("booked and selected slots are excluded", func(t *testing.T) {
		f := newFixture(t)
		f.book(uuid.New(), builder.At(2025, time.June, 11, 10), 2)
		// same hour a day earlier must not interfere
		f.book(uuid.New(), builder.At(2025, time.June, 10, 14), 1)

		selected := []booking.TimeSlot{builder.Slot(builder.At(2025, time.June, 11, 14), 1)}
		slots, err := f.queries.ListAvailableSlots(ctx, "2025-06-11", 1, selected)
		require.NoError(t, err)
		assert.Len(t, slots, 12)
		for _, s := range slots {
			h := s.StartTime.In(builder.NewYork).Hour()
			assert.NotContains(t, []int{10, 11, 14}, h)
		}
	})

	t.Run("repeated calls on the same store agree", func(t *testing.T) {
		f := newFixture(t)
		// two fixtures sharing a start time leave their relative order to the store
		f.book(uuid.New(), builder.At(2025, time.June, 11, 9), 1)
		f.book(uuid.New(), builder.At(2025, time.June, 11, 9), 2)
		f.book(uuid.New(), builder.At(2025, time.June, 11, 18), 1)
		selected := []booking.TimeSlot{builder.Slot(builder.At(2025, time.June, 11, 15), 1)}

		ids := func() []string {
			slots, err := f.queries.ListAvailableSlots(ctx, "2025-06-11", 1, selected)
			require.NoError(t, err)
			out := make([]string, len(slots))
			for i, s := range slots {
				out[i] = s.ID
			}
			return out
		}

		first := ids()
		require.Len(t, first, 11)
		if diff := cmp.Diff(first, ids()); diff != "" {
			t.Errorf("availability changed between calls (-first +second):\n%s", diff)
		}
	})

	t.Run("date the policy does not allow", func(t *testing.T) {
		f := newFixture(t)
		slots, err := f.queries.ListAvailableSlots(ctx, "2025-06-12", 2, nil)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("invalid input", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.queries.ListAvailableSlots(ctx, "2025-06-11", 3, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidDuration)

		_, err = f.queries.ListAvailableSlots(ctx, "June 11", 1, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidDate)
	})
}

func TestComputeWeeklyUsage(t *testing.T) {
	ctx := context.Background()

	t.Run("current and next week", func(t *testing.T) {
		f := newFixture(t)
		f.book(f.member.ID(), builder.At(2025, time.June, 2, 10), 1)
		f.book(f.member.ID(), builder.At(2025, time.June, 7, 20), 2)
		f.book(f.member.ID(), builder.At(2025, time.June, 11, 10), 1)
		f.book(uuid.New(), builder.At(2025, time.June, 3, 10), 2)

		usage, err := f.queries.ComputeWeeklyUsage(ctx, f.member.ID(), "")
		require.NoError(t, err)

		assert.Equal(t, 4, usage.Quota)
		assert.True(t, usage.CurrentWeek.WeekStart.Equal(builder.At(2025, time.June, 1, 0)))
		assert.True(t, usage.CurrentWeek.WeekEnd.Equal(builder.At(2025, time.June, 8, 0).Add(-time.Millisecond)))
		assert.Equal(t, 3.0, usage.CurrentWeek.Hours)
		assert.Equal(t, 1.0, usage.CurrentWeek.RemainingHours)

		assert.True(t, usage.NextWeek.WeekStart.Equal(builder.At(2025, time.June, 8, 0)))
		assert.Equal(t, 1.0, usage.NextWeek.Hours)
		assert.Equal(t, 3.0, usage.NextWeek.RemainingHours)
	})

	t.Run("explicit anchor", func(t *testing.T) {
		f := newFixture(t)
		usage, err := f.queries.ComputeWeeklyUsage(ctx, f.member.ID(), "2025-06-20")
		require.NoError(t, err)
		assert.True(t, usage.CurrentWeek.WeekStart.Equal(builder.At(2025, time.June, 15, 0)))
		assert.True(t, usage.NextWeek.WeekStart.Equal(builder.At(2025, time.June, 22, 0)))
	})

	t.Run("remaining hours never go negative", func(t *testing.T) {
		f := newFixture(t)
		f.book(f.member.ID(), builder.At(2025, time.June, 2, 10), 2)
		f.book(f.member.ID(), builder.At(2025, time.June, 3, 10), 2)
		f.book(f.member.ID(), builder.At(2025, time.June, 4, 10), 2)

		usage, err := f.queries.ComputeWeeklyUsage(ctx, f.member.ID(), "")
		require.NoError(t, err)
		assert.Equal(t, 6.0, usage.CurrentWeek.Hours)
		assert.Equal(t, 0.0, usage.CurrentWeek.RemainingHours)
	})

	t.Run("bad anchor", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.queries.ComputeWeeklyUsage(ctx, f.member.ID(), "20/06/2025")
		assert.ErrorIs(t, err, booking.ErrInvalidDate)
	})

	t.Run("unknown member", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.queries.ComputeWeeklyUsage(ctx, uuid.New(), "")
		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.book(f.member.ID(), builder.At(2025, time.June, 11, 14), 1)
	f.book(uuid.New(), builder.At(2025, time.June, 11, 9), 1)
	f.book(uuid.New(), builder.At(2025, time.June, 12, 9), 1)

	t.Run("ordered by start", func(t *testing.T) {
		views, err := f.queries.ListBookings(ctx, builder.At(2025, time.June, 11, 0), builder.At(2025, time.June, 12, 0))
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.True(t, views[0].StartTime.Before(views[1].StartTime))
	})

	t.Run("invalid ranges", func(t *testing.T) {
		from := builder.At(2025, time.June, 11, 0)
		for name, to := range map[string]time.Time{
			"empty":     from,
			"reversed":  from.Add(-time.Hour),
			"too large": from.Add(90 * 24 * time.Hour),
		} {
			_, err := f.queries.ListBookings(ctx, from, to)
			assert.ErrorIs(t, err, booking.ErrInvalidRange, name)
		}
	})
}

func TestListUpcomingForUser(t *testing.T) {
	f := newFixture(t)
	f.book(f.member.ID(), builder.At(2025, time.June, 3, 10), 1)
	f.book(f.member.ID(), builder.At(2025, time.June, 11, 10), 1)
	f.book(f.member.ID(), builder.At(2025, time.June, 4, 9), 2) // in progress
	f.book(uuid.New(), builder.At(2025, time.June, 11, 12), 1)

	views, err := f.queries.ListUpcomingForUser(context.Background(), f.member.ID())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].StartTime.Equal(builder.At(2025, time.June, 4, 9)))
	assert.True(t, views[1].StartTime.Equal(builder.At(2025, time.June, 11, 10)))
}

func TestBookingWindow(t *testing.T) {
	f := newFixture(t)

	t.Run("not enforced", func(t *testing.T) {
		view := f.queries.BookingWindow(context.Background())
		assert.True(t, view.Open)
		assert.False(t, view.Enforced)
		assert.Equal(t, "America/New_York", view.TimeZone)
		assert.Equal(t, "exact_next_week", view.Policy)
		assert.Equal(t, []string{"2025-06-11"}, view.BookableDates)
		assert.True(t, view.OpensAt.Equal(builder.At(2025, time.June, 4, 18)))
	})

	t.Run("enforced and closed", func(t *testing.T) {
		f.rules.Window.Enabled = true
		view := f.queries.BookingWindow(context.Background())
		assert.False(t, view.Open)
		assert.True(t, view.Enforced)
	})
}

func TestGetQuota(t *testing.T) {
	f := newFixture(t)

	view, err := f.users.GetQuota(context.Background(), f.member.ID())
	require.NoError(t, err)
	assert.Equal(t, &queries.UserQuotaView{ID: f.member.ID(), BookingQuota: 4}, view)

	_, err = f.users.GetQuota(context.Background(), uuid.New())
	assert.ErrorIs(t, err, queries.ErrUserNotFound)
}
