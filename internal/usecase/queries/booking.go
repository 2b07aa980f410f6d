package queries

import (
	"context"
	"math"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	maxListRange  = 62 * 24 * time.Hour
	upcomingLimit = 50
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

type BookingQueries interface {
	ListAvailableSlots(ctx context.Context, date string, durationHours int, selected []booking.TimeSlot) ([]*SlotView, error)
	// ComputeWeeklyUsage reports the week containing anchor (YYYY-MM-DD, today when empty) and the week after.
	ComputeWeeklyUsage(ctx context.Context, userID uuid.UUID, anchor string) (*WeeklyUsageView, error)
	ListBookings(ctx context.Context, from, to time.Time) ([]*BookingView, error)
	ListUpcomingForUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	BookingWindow(ctx context.Context) *BookingWindowView
}

type BookingReadStore interface {
	// FindBetween returns bookings of all members starting in [from, to), ordered by start time.
	FindBetween(ctx context.Context, from, to time.Time) ([]*BookingView, error)
	FindByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*BookingView, error)
	FindUpcomingByUser(ctx context.Context, userID uuid.UUID, from time.Time, limit int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	rules    *booking.Rules
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, rules *booking.Rules, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		users:    users,
		rules:    rules,
		clock:    clk,
	}
}

func (q *bookingQueriesImpl) ListAvailableSlots(ctx context.Context, date string, durationHours int, selected []booking.TimeSlot) ([]*SlotView, error) {
	duration, err := booking.DurationFromHours(durationHours)
	if err != nil {
		return nil, err
	}
	day, err := q.rules.Calendar.ParseDate(date)
	if err != nil {
		return nil, err
	}

	from, to := q.rules.Calendar.DayBounds(day)
	existing, err := q.bookings.FindBetween(ctx, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load bookings for availability")
	}

	slots := q.rules.AvailableSlots(q.clock.Now(), day, duration, slotsOf(existing), selected)
	views := make([]*SlotView, len(slots))
	for i, s := range slots {
		views[i] = NewSlotView(s)
	}
	return views, nil
}

func (q *bookingQueriesImpl) ComputeWeeklyUsage(ctx context.Context, userID uuid.UUID, anchor string) (*WeeklyUsageView, error) {
	cal := q.rules.Calendar
	day := cal.StartOfDay(q.clock.Now())
	if anchor != "" {
		parsed, err := cal.ParseDate(anchor)
		if err != nil {
			return nil, err
		}
		day = parsed
	}

	u, err := findUser(ctx, q.users, userID)
	if err != nil {
		return nil, err
	}

	curStart, curEnd := cal.WeekRange(day)
	nextStart, nextEnd := cal.WeekRange(curEnd)

	views, err := q.bookings.FindByUserBetween(ctx, userID, curStart, nextEnd)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load bookings for usage")
	}
	slots := slotsOf(views)

	return &WeeklyUsageView{
		UserID:      userID,
		Quota:       u.BookingQuota,
		CurrentWeek: weekUsage(slots, curStart, curEnd, u.BookingQuota),
		NextWeek:    weekUsage(slots, nextStart, nextEnd, u.BookingQuota),
	}, nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, from, to time.Time) ([]*BookingView, error) {
	if !from.Before(to) || to.Sub(from) > maxListRange {
		return nil, booking.ErrInvalidRange
	}
	views, err := q.bookings.FindBetween(ctx, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListUpcomingForUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	views, err := q.bookings.FindUpcomingByUser(ctx, userID, q.clock.Now(), upcomingLimit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list upcoming bookings")
	}
	return views, nil
}

func (q *bookingQueriesImpl) BookingWindow(_ context.Context) *BookingWindowView {
	cal := q.rules.Calendar
	now := clock.NowIn(q.clock, cal.Location())
	opens, closes := q.rules.Window.Bounds(cal, now)

	days := q.rules.Policy.BookableDays(cal, now)
	dates := make([]string, len(days))
	for i, d := range days {
		dates[i] = cal.DayKey(d)
	}

	return &BookingWindowView{
		Open:          q.rules.Window.Admits(cal, now),
		Enforced:      q.rules.Window.Enabled,
		TimeZone:      cal.Location().String(),
		Policy:        q.rules.Policy.String(),
		OpensAt:       opens,
		ClosesAt:      closes,
		Now:           now,
		BookableDates: dates,
	}
}

func weekUsage(slots []booking.TimeSlot, from, to time.Time, quota int) WeekUsage {
	used := booking.UsedHours(slots, from, to)
	return WeekUsage{
		WeekStart:      from,
		WeekEnd:        to.Add(-time.Millisecond),
		Hours:          used,
		RemainingHours: math.Max(0, float64(quota)-used),
	}
}

func slotsOf(views []*BookingView) []booking.TimeSlot {
	slots := make([]booking.TimeSlot, len(views))
	for i, v := range views {
		slots[i] = v.Slot()
	}
	return slots
}
