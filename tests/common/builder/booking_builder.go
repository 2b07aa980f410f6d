//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/booking"
	reqdto "court-booking/internal/handler/dto/request"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// NewYork is the club zone used across tests.
var NewYork = mustLoad("America/New_York")

func mustLoad(zone string) *time.Location {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		panic(err)
	}
	return loc
}

// At builds a New York wall-clock time.
func At(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, NewYork)
}

// Slot builds a slot starting at start and lasting hours.
func Slot(start time.Time, hours int) booking.TimeSlot {
	return booking.NewTimeSlot(start, start.Add(time.Duration(hours)*time.Hour))
}

type BookingBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Start     time.Time
	Hours     int
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Start:     At(2025, time.June, 11, 10),
		Hours:     1,
		CreatedAt: At(2025, time.June, 4, 9),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithStart(start time.Time) *BookingBuilder {
	b.Start = start
	return b
}

func (b *BookingBuilder) WithHours(hours int) *BookingBuilder {
	b.Hours = hours
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(b.ID, b.UserID, Slot(b.Start, b.Hours), b.CreatedAt)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.NewBookingView(b.BuildDomain())
}

type BookingRequestBuilder struct {
	slots []reqdto.BookingSlotRequest
}

func NewBookingRequestBuilder() *BookingRequestBuilder {
	return &BookingRequestBuilder{}
}

func (b *BookingRequestBuilder) WithSlot(start time.Time, hours int) *BookingRequestBuilder {
	b.slots = append(b.slots, reqdto.BookingSlotRequest{
		StartTime: start,
		EndTime:   start.Add(time.Duration(hours) * time.Hour),
	})
	return b
}

func (b *BookingRequestBuilder) BuildDTO() reqdto.CreateBookingsRequest {
	slots := make([]reqdto.BookingSlotRequest, len(b.slots))
	copy(slots, b.slots)
	return reqdto.CreateBookingsRequest{BookingSlots: slots}
}
