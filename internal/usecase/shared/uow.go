package shared

import (
	"context"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations. Serialization failures are retried.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Locks() Locker
	Reads() CommandReads
}

// Locker takes locks that are released when the surrounding transaction ends.
type Locker interface {
	Acquire(ctx context.Context, keys ...string) error
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	// BookingsBetween returns every member's bookings starting in [from, to).
	BookingsBetween(ctx context.Context, from, to time.Time) ([]*booking.Booking, error)
	BookingsByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*booking.Booking, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
}

func DayLockKey(day time.Time) string {
	return "booking-day:" + day.Format(time.DateOnly)
}

func UserLockKey(userID uuid.UUID) string {
	return "booking-user:" + userID.String()
}
