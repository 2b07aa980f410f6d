//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra/memory"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/usecase/commands"
	"court-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	store  *memory.Store
	clock  *clock.MockClock
	rules  *booking.Rules
	cmds   commands.BookingCommands
	member *user.User
}

func (s *BookingCommandsTestSuite) SetupTest() {
	cal, err := booking.LoadCalendar("America/New_York")
	s.Require().NoError(err)

	s.store = memory.NewStore()
	// Wednesday 2025-06-04 10:00, so exact-next-week targets 2025-06-11
	s.clock = clock.NewMockClock(builder.At(2025, time.June, 4, 10))
	s.rules = booking.NewRules(cal, booking.PolicyExactNextWeek, booking.Window{OpenHour: 18})
	s.member = builder.NewUserBuilder().MustBuildDomain()
	s.store.AddUser(s.member)

	s.cmds = commands.NewBookingCommands(s.store, s.rules, s.clock, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) create(userID uuid.UUID, slots ...booking.TimeSlot) (*commands.CreateBookingsResult, error) {
	return s.cmds.CreateBookings(context.Background(), userID, slots)
}

func (s *BookingCommandsTestSuite) TestCreateBookings_Success() {
	first := builder.Slot(builder.At(2025, time.June, 11, 10), 1)
	second := builder.Slot(builder.At(2025, time.June, 11, 14), 2)

	res, err := s.create(s.member.ID(), first, second)
	s.Require().NoError(err)
	s.Require().Len(res.Bookings, 2)

	s.Equal(s.member.ID(), res.Bookings[0].UserID)
	s.Equal(first.ID(), res.Bookings[0].SlotID)
	s.Equal(2.0, res.Bookings[1].DurationHours)
	s.True(res.Bookings[0].CreatedAt.Equal(s.clock.Now()))
	s.Len(s.store.Bookings(), 2)
}

func (s *BookingCommandsTestSuite) TestCreateBookings_Rejections() {
	target := builder.At(2025, time.June, 11, 10)

	cases := []struct {
		name  string
		slots []booking.TimeSlot
		errIs error
	}{
		{name: "empty request", slots: nil, errIs: booking.ErrMissingSlots},
		{name: "wrong date", slots: []booking.TimeSlot{builder.Slot(builder.At(2025, time.June, 10, 10), 1)}, errIs: booking.ErrNotExactNextWeek},
		{name: "before opening", slots: []booking.TimeSlot{builder.Slot(builder.At(2025, time.June, 11, 5), 1)}, errIs: booking.ErrOutsideOperatingHours},
		{name: "not on the hour", slots: []booking.TimeSlot{builder.Slot(target.Add(15*time.Minute), 1)}, errIs: booking.ErrNotHourAligned},
		{name: "three hours", slots: []booking.TimeSlot{builder.Slot(target, 3)}, errIs: booking.ErrUnsupportedDuration},
		{name: "over weekly quota", slots: []booking.TimeSlot{builder.Slot(target, 2), builder.Slot(target.Add(4*time.Hour), 2)}, errIs: booking.ErrQuotaExceeded},
		{name: "overlap within request", slots: []booking.TimeSlot{builder.Slot(target, 2), builder.Slot(target.Add(time.Hour), 1)}, errIs: booking.ErrOverlapsInRequest},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			res, err := s.create(s.member.ID(), tc.slots...)
			s.Nil(res)
			s.ErrorIs(err, tc.errIs)
			s.Empty(s.store.Bookings(), "nothing is written on rejection")
		})
	}
}

// Requests here fail more than one stage; the earliest stage decides the rejection.
func (s *BookingCommandsTestSuite) TestCreateBookings_StageOrder() {
	other := builder.NewUserBuilder().WithEmail("other@example.com").MustBuildDomain()
	s.store.AddUser(other)
	s.store.AddBooking(builder.NewBookingBuilder().
		WithUserID(other.ID()).
		WithStart(builder.At(2025, time.June, 11, 10)).
		WithHours(2).
		BuildDomain())

	cases := []struct {
		name  string
		slots []booking.TimeSlot
		errIs error
	}{
		{
			name: "quota before any overlap",
			slots: []booking.TimeSlot{
				builder.Slot(builder.At(2025, time.June, 11, 10), 2),
				builder.Slot(builder.At(2025, time.June, 11, 11), 2),
			},
			errIs: booking.ErrQuotaExceeded,
		},
		{
			name: "slot rules before quota",
			slots: []booking.TimeSlot{
				builder.Slot(builder.At(2025, time.June, 11, 5), 2),
				builder.Slot(builder.At(2025, time.June, 11, 14), 2),
			},
			errIs: booking.ErrOutsideOperatingHours,
		},
		{
			name: "date policy before hours",
			slots: []booking.TimeSlot{
				builder.Slot(builder.At(2025, time.June, 12, 5), 1),
			},
			errIs: booking.ErrNotExactNextWeek,
		},
		{
			name: "existing bookings before the rest of the request",
			slots: []booking.TimeSlot{
				builder.Slot(builder.At(2025, time.June, 11, 11), 1),
				builder.Slot(builder.At(2025, time.June, 11, 10), 2),
			},
			errIs: booking.ErrOverlapsExisting,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			res, err := s.create(s.member.ID(), tc.slots...)
			s.Nil(res)
			s.Require().Error(err)
			s.ErrorIs(err, tc.errIs)

			var ruleErr *booking.RuleError
			s.Require().ErrorAs(err, &ruleErr)
			s.Equal(tc.errIs.(*booking.RuleError).Code, ruleErr.Code)
			s.Len(s.store.Bookings(), 1, "only the fixture booking remains")
		})
	}
}

func (s *BookingCommandsTestSuite) TestCreateBookings_WindowClosed() {
	s.rules.Window.Enabled = true
	slot := builder.Slot(builder.At(2025, time.June, 11, 10), 1)

	s.Run("before opening hour", func() {
		_, err := s.create(s.member.ID(), slot)
		s.ErrorIs(err, booking.ErrWindowClosed)
		s.Contains(err.Error(), "6:00 PM")
	})

	s.Run("window is checked before the request is inspected", func() {
		_, err := s.create(s.member.ID())
		s.ErrorIs(err, booking.ErrWindowClosed)
	})

	s.Run("inside the window", func() {
		s.clock.Set(builder.At(2025, time.June, 4, 19))
		_, err := s.create(s.member.ID(), slot)
		s.NoError(err)
	})
}

func (s *BookingCommandsTestSuite) TestCreateBookings_UnknownUser() {
	_, err := s.create(uuid.New(), builder.Slot(builder.At(2025, time.June, 11, 10), 1))
	s.ErrorIs(err, commands.ErrUserNotFound)
}

func (s *BookingCommandsTestSuite) TestCreateBookings_OverlapsExisting() {
	other := builder.NewUserBuilder().WithEmail("other@example.com").MustBuildDomain()
	s.store.AddUser(other)
	s.store.AddBooking(builder.NewBookingBuilder().
		WithUserID(other.ID()).
		WithStart(builder.At(2025, time.June, 11, 10)).
		WithHours(2).
		BuildDomain())

	s.Run("partial overlap", func() {
		_, err := s.create(s.member.ID(), builder.Slot(builder.At(2025, time.June, 11, 11), 1))
		s.ErrorIs(err, booking.ErrOverlapsExisting)
	})

	s.Run("free slot alongside a taken one commits nothing", func() {
		_, err := s.create(s.member.ID(),
			builder.Slot(builder.At(2025, time.June, 11, 15), 1),
			builder.Slot(builder.At(2025, time.June, 11, 9), 2),
		)
		s.ErrorIs(err, booking.ErrOverlapsExisting)
		s.Len(s.store.Bookings(), 1)
	})

	s.Run("back to back is fine", func() {
		_, err := s.create(s.member.ID(), builder.Slot(builder.At(2025, time.June, 11, 12), 1))
		s.NoError(err)
	})
}

func (s *BookingCommandsTestSuite) TestCreateBookings_QuotaCountsExistingHours() {
	s.store.AddBooking(builder.NewBookingBuilder().
		WithUserID(s.member.ID()).
		WithStart(builder.At(2025, time.June, 9, 10)).
		WithHours(2).
		BuildDomain())

	_, err := s.create(s.member.ID(), builder.Slot(builder.At(2025, time.June, 11, 10), 2))
	s.Require().ErrorIs(err, booking.ErrQuotaExceeded)
	s.Equal("Booking exceeds your weekly quota of 3 hours for the week of 2025-06-08", err.Error())

	_, err = s.create(s.member.ID(), builder.Slot(builder.At(2025, time.June, 11, 10), 1))
	s.NoError(err)
}

func (s *BookingCommandsTestSuite) TestCreateBookings_QuotaPerWeek() {
	s.rules.Policy = booking.PolicyRangeWindow
	// Friday: the range covers Saturday 2025-06-07 through Friday 2025-06-13
	s.clock.Set(builder.At(2025, time.June, 6, 10))

	s.Run("hours in different weeks are counted separately", func() {
		_, err := s.create(s.member.ID(),
			builder.Slot(builder.At(2025, time.June, 7, 10), 2),
			builder.Slot(builder.At(2025, time.June, 8, 10), 2),
			builder.Slot(builder.At(2025, time.June, 9, 10), 1),
		)
		s.NoError(err)
	})

	s.Run("the following week is now full", func() {
		_, err := s.create(s.member.ID(), builder.Slot(builder.At(2025, time.June, 10, 10), 1))
		s.ErrorIs(err, booking.ErrQuotaExceeded)
	})
}

func (s *BookingCommandsTestSuite) TestCreateBookings_ConcurrentSameSlot() {
	const members = 8
	ids := make([]uuid.UUID, members)
	for i := range ids {
		u := builder.NewUserBuilder().MustBuildDomain()
		s.store.AddUser(u)
		ids[i] = u.ID()
	}
	slot := builder.Slot(builder.At(2025, time.June, 11, 10), 1)

	var wg sync.WaitGroup
	errCh := make(chan error, members)
	for _, id := range ids {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := s.create(id, slot)
			errCh <- err
		}(id)
	}
	wg.Wait()
	close(errCh)

	succeeded := 0
	for err := range errCh {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, booking.ErrOverlapsExisting)
	}
	s.Equal(1, succeeded)
	s.Len(s.store.Bookings(), 1)
}

func (s *BookingCommandsTestSuite) TestCreateBookings_ContextCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.cmds.CreateBookings(ctx, s.member.ID(), []booking.TimeSlot{builder.Slot(builder.At(2025, time.June, 11, 10), 1)})
	s.ErrorIs(err, context.Canceled)
	s.Empty(s.store.Bookings())
}
