package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a committed reservation of the shared courts. It is never mutated after creation.
type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	slot      TimeSlot
	createdAt time.Time
}

func NewBooking(userID uuid.UUID, slot TimeSlot, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		userID:    userID,
		slot:      slot,
		createdAt: now,
	}
}

func ReconstructBooking(id, userID uuid.UUID, slot TimeSlot, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		slot:      slot,
		createdAt: createdAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Slot() TimeSlot       { return b.slot }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

func SlotsOf(bookings []*Booking) []TimeSlot {
	slots := make([]TimeSlot, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, b.slot)
	}
	return slots
}
