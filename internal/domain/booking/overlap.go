package booking

import (
	"sort"
	"time"
)

// CheckConflicts walks candidates in request order. Each candidate is compared first with
// existing bookings on its own day, then with every other candidate in the request.
func CheckConflicts(cal Calendar, candidates []TimeSlot, existing []TimeSlot) error {
	byDay := make(map[string][]TimeSlot)
	for _, e := range existing {
		key := cal.DayKey(e.Start())
		byDay[key] = append(byDay[key], e)
	}

	for i, c := range candidates {
		if overlapsAny(c, byDay[cal.DayKey(c.Start())]) {
			return ErrOverlapsExisting
		}
		for j, other := range candidates {
			if i == j {
				continue
			}
			if c.Overlaps(other) {
				return ErrOverlapsInRequest
			}
		}
	}
	return nil
}

// AffectedDays returns the distinct local day starts touched by slots, oldest first.
func AffectedDays(cal Calendar, slots []TimeSlot) []time.Time {
	seen := make(map[string]struct{}, len(slots))
	days := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		key := cal.DayKey(s.Start())
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, cal.StartOfDay(s.Start()))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
