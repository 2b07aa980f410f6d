package queries

import (
	"time"

	"court-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	SlotID        string    `json:"slot_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	slot := b.Slot()
	return &BookingView{
		ID:            b.ID(),
		UserID:        b.UserID(),
		SlotID:        slot.ID(),
		StartTime:     slot.Start(),
		EndTime:       slot.End(),
		DurationHours: slot.Hours(),
		CreatedAt:     b.CreatedAt(),
	}
}

func (v *BookingView) Slot() booking.TimeSlot {
	return booking.NewTimeSlot(v.StartTime, v.EndTime)
}

// SlotView is a candidate slot offered by the availability generator
type SlotView struct {
	ID            string    `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
}

func NewSlotView(s booking.TimeSlot) *SlotView {
	return &SlotView{
		ID:            s.ID(),
		StartTime:     s.Start(),
		EndTime:       s.End(),
		DurationHours: s.Hours(),
	}
}

type WeekUsage struct {
	WeekStart      time.Time `json:"week_start"`
	WeekEnd        time.Time `json:"week_end"`
	Hours          float64   `json:"hours"`
	RemainingHours float64   `json:"remaining_hours"`
}

// WeeklyUsageView reports booked hours for the week of the anchor date and the week after
type WeeklyUsageView struct {
	UserID      uuid.UUID `json:"user_id"`
	Quota       int       `json:"quota"`
	CurrentWeek WeekUsage `json:"current_week"`
	NextWeek    WeekUsage `json:"next_week"`
}

type UserView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	BookingQuota int       `json:"booking_quota"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserQuotaView is the public part of a member record
type UserQuotaView struct {
	ID           uuid.UUID `json:"id"`
	BookingQuota int       `json:"booking_quota"`
}

type BookingWindowView struct {
	Open          bool      `json:"open"`
	Enforced      bool      `json:"enforced"`
	TimeZone      string    `json:"time_zone"`
	Policy        string    `json:"policy"`
	OpensAt       time.Time `json:"opens_at"`
	ClosesAt      time.Time `json:"closes_at"`
	Now           time.Time `json:"now"`
	BookableDates []string  `json:"bookable_dates"`
}
