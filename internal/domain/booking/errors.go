package booking

import (
	"fmt"
	"time"
)

type Kind string

const (
	KindInvalidInput    Kind = "invalid_input"
	KindPolicyViolation Kind = "policy_violation"
	KindQuotaExceeded   Kind = "quota_exceeded"
	KindSlotConflict    Kind = "slot_conflict"
)

// RuleError is a rejection the member can act on. Reason is safe to return to clients.
type RuleError struct {
	Kind   Kind
	Code   string
	Reason string
}

func (e *RuleError) Error() string {
	return e.Reason
}

// Is compares codes so parameterised reasons still match their sentinel.
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	return ok && t.Code == e.Code
}

var (
	ErrMissingSlots    = &RuleError{Kind: KindInvalidInput, Code: "missing_slots", Reason: "Missing required fields"}
	ErrInvalidDate     = &RuleError{Kind: KindInvalidInput, Code: "invalid_date", Reason: "Date must be formatted as YYYY-MM-DD"}
	ErrInvalidDuration = &RuleError{Kind: KindInvalidInput, Code: "invalid_duration", Reason: "Duration must be 1 or 2 hours"}
	ErrInvalidRange    = &RuleError{Kind: KindInvalidInput, Code: "invalid_range", Reason: "Invalid date range"}

	ErrNotExactNextWeek      = &RuleError{Kind: KindPolicyViolation, Code: "not_exact_next_week", Reason: "Bookings must be for exactly 7 days from today (same day next week)"}
	ErrOutsideBookingRange   = &RuleError{Kind: KindPolicyViolation, Code: "outside_booking_range", Reason: "Bookings must be between tomorrow and 7 days from today"}
	ErrOutsideOperatingHours = &RuleError{Kind: KindPolicyViolation, Code: "outside_operating_hours", Reason: "Bookings must be between 6am and 9pm"}
	ErrNotHourAligned        = &RuleError{Kind: KindPolicyViolation, Code: "not_hour_aligned", Reason: "Bookings must start on the hour"}
	ErrUnsupportedDuration   = &RuleError{Kind: KindPolicyViolation, Code: "unsupported_duration", Reason: "Bookings must be 1 or 2 hours long"}
	ErrWindowClosed          = &RuleError{Kind: KindPolicyViolation, Code: "booking_window_closed", Reason: "Booking is currently closed"}

	ErrQuotaExceeded = &RuleError{Kind: KindQuotaExceeded, Code: "quota_exceeded", Reason: "Booking exceeds your weekly quota"}

	ErrOverlapsExisting  = &RuleError{Kind: KindSlotConflict, Code: "overlaps_existing", Reason: "Selected time slot overlaps with an existing booking"}
	ErrOverlapsInRequest = &RuleError{Kind: KindSlotConflict, Code: "overlaps_in_request", Reason: "Selected time slots overlap with each other"}
)

func NewQuotaExceeded(quota int, weekStart time.Time) error {
	return &RuleError{
		Kind:   KindQuotaExceeded,
		Code:   ErrQuotaExceeded.Code,
		Reason: fmt.Sprintf("Booking exceeds your weekly quota of %d hours for the week of %s", quota, weekStart.Format(time.DateOnly)),
	}
}

func newWindowClosed(w Window, zone string) error {
	return &RuleError{
		Kind:   KindPolicyViolation,
		Code:   ErrWindowClosed.Code,
		Reason: fmt.Sprintf("Booking is only available between %s and 11:59 PM %s time", w.OpensAtLabel(), zone),
	}
}
