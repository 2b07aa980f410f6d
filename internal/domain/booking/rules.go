package booking

import (
	"time"
)

const (
	OpeningHour = 6
	// ClosingHour bounds the start hour only: a 2h booking may start at 20:00 and end at 22:00.
	ClosingHour = 21
)

// Rules is the single source of slot rules shared by the allocator and the availability generator.
type Rules struct {
	Calendar Calendar
	Policy   Policy
	Window   Window
}

func NewRules(cal Calendar, policy Policy, window Window) *Rules {
	if policy == "" {
		policy = PolicyExactNextWeek
	}
	return &Rules{
		Calendar: cal,
		Policy:   policy,
		Window:   window,
	}
}

func IsAllowedDuration(d time.Duration) bool {
	return d == time.Hour || d == 2*time.Hour
}

func DurationFromHours(hours int) (time.Duration, error) {
	d := time.Duration(hours) * time.Hour
	if !IsAllowedDuration(d) {
		return 0, ErrInvalidDuration
	}
	return d, nil
}

// CheckWindow rejects submissions outside the daily booking window when the window is enabled.
func (r *Rules) CheckWindow(now time.Time) error {
	if r.Window.Admits(r.Calendar, now) {
		return nil
	}
	return newWindowClosed(r.Window, r.Calendar.Location().String())
}

// ValidateSlot applies the date policy, operating hours, hour alignment and duration checks in that order.
func (r *Rules) ValidateSlot(now time.Time, slot TimeSlot) error {
	if err := r.Policy.checkDate(r.Calendar, now, slot.Start()); err != nil {
		return err
	}

	local := slot.Start().In(r.Calendar.Location())
	if local.Hour() < OpeningHour || local.Hour() >= ClosingHour {
		return ErrOutsideOperatingHours
	}
	if local.Minute() != 0 || local.Second() != 0 || local.Nanosecond() != 0 {
		return ErrNotHourAligned
	}
	if !IsAllowedDuration(slot.Duration()) {
		return ErrUnsupportedDuration
	}
	return nil
}

func (r *Rules) ValidateRequest(now time.Time, slots []TimeSlot) error {
	if len(slots) == 0 {
		return ErrMissingSlots
	}
	for _, s := range slots {
		if err := r.ValidateSlot(now, s); err != nil {
			return err
		}
	}
	return nil
}
