package request

import (
	"time"

	"court-booking/internal/domain/booking"
)

type BookingSlotRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// CreateBookingsRequest may legitimately carry an empty list; that case is rejected by the rules, not the binder.
type CreateBookingsRequest struct {
	BookingSlots []BookingSlotRequest `json:"bookingSlots" binding:"required,dive"`
}

func (r *CreateBookingsRequest) ToDomain() []booking.TimeSlot {
	slots := make([]booking.TimeSlot, len(r.BookingSlots))
	for i, s := range r.BookingSlots {
		slots[i] = booking.NewTimeSlot(s.StartTime, s.EndTime)
	}
	return slots
}

type AvailabilityQuery struct {
	Date     string   `form:"date" binding:"required"`
	Duration int      `form:"duration" binding:"required"`
	Selected []string `form:"selected"`
}

// SelectedSlots parses every "start/end" pair; the first malformed entry fails the whole query.
func (q *AvailabilityQuery) SelectedSlots() ([]booking.TimeSlot, error) {
	slots := make([]booking.TimeSlot, 0, len(q.Selected))
	for _, raw := range q.Selected {
		s, err := booking.ParseTimeSlot(raw)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}

type ListBookingsQuery struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type UsageQuery struct {
	Anchor string `form:"anchor"`
}
