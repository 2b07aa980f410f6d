package booking

import (
	"time"
)

// AvailableSlots lists the bookable slots of the given duration on day, skipping anything that
// overlaps booked or selected slots. Every returned slot passes ValidateSlot at now.
func (r *Rules) AvailableSlots(now, day time.Time, duration time.Duration, booked, selected []TimeSlot) []TimeSlot {
	slots := []TimeSlot{}
	if !IsAllowedDuration(duration) {
		return slots
	}

	dayStart := r.Calendar.StartOfDay(day)
	if err := r.Policy.checkDate(r.Calendar, now, dayStart); err != nil {
		return slots
	}

	hours := int(duration / time.Hour)
	y, m, d := dayStart.Date()
	for h := OpeningHour; h <= ClosingHour-hours; h++ {
		start := time.Date(y, m, d, h, 0, 0, 0, r.Calendar.Location())
		slot := NewTimeSlot(start, start.Add(duration))
		if r.ValidateSlot(now, slot) != nil {
			continue
		}
		if overlapsAny(slot, booked) || overlapsAny(slot, selected) {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}
