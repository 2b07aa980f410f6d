package booking

import (
	"fmt"
	"time"
)

// Policy decides which dates may be booked relative to today.
type Policy string

const (
	// PolicyExactNextWeek admits only the same weekday exactly seven days ahead.
	PolicyExactNextWeek Policy = "exact_next_week"
	// PolicyRangeWindow admits any date from tomorrow through today+7.
	PolicyRangeWindow Policy = "range_window"
)

const bookingHorizonDays = 7

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyExactNextWeek, PolicyRangeWindow:
		return p, nil
	default:
		return "", fmt.Errorf("unknown booking policy %q", s)
	}
}

func (p Policy) String() string {
	return string(p)
}

func (p Policy) checkDate(cal Calendar, now, start time.Time) error {
	days := cal.DaysBetween(now, start)
	switch p {
	case PolicyRangeWindow:
		if days < 1 || days > bookingHorizonDays {
			return ErrOutsideBookingRange
		}
	default:
		sameWeekday := now.In(cal.Location()).Weekday() == start.In(cal.Location()).Weekday()
		if days != bookingHorizonDays || !sameWeekday {
			return ErrNotExactNextWeek
		}
	}
	return nil
}

// BookableDays lists the local day starts the policy currently admits.
func (p Policy) BookableDays(cal Calendar, now time.Time) []time.Time {
	today := cal.StartOfDay(now)
	if p == PolicyRangeWindow {
		days := make([]time.Time, 0, bookingHorizonDays)
		for i := 1; i <= bookingHorizonDays; i++ {
			days = append(days, cal.AddDays(today, i))
		}
		return days
	}
	return []time.Time{cal.AddDays(today, bookingHorizonDays)}
}
