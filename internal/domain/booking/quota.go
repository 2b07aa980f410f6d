package booking

import (
	"sort"
	"time"
)

const DefaultWeeklyQuota = 3

// WeekDemand is the part of a request that falls into one Sunday-Saturday week.
type WeekDemand struct {
	WeekStart time.Time
	WeekEnd   time.Time // exclusive
	Slots     []TimeSlot
}

func (w WeekDemand) Hours() float64 {
	return TotalHours(w.Slots)
}

func TotalHours(slots []TimeSlot) float64 {
	var h float64
	for _, s := range slots {
		h += s.Hours()
	}
	return h
}

// GroupByWeek splits slots by the week of their start time, ordered by week.
func GroupByWeek(cal Calendar, slots []TimeSlot) []WeekDemand {
	byWeek := make(map[int64]*WeekDemand)
	for _, s := range slots {
		start, end := cal.WeekRange(s.Start())
		key := start.Unix()
		w, ok := byWeek[key]
		if !ok {
			w = &WeekDemand{WeekStart: start, WeekEnd: end}
			byWeek[key] = w
		}
		w.Slots = append(w.Slots, s)
	}

	weeks := make([]WeekDemand, 0, len(byWeek))
	for _, w := range byWeek {
		weeks = append(weeks, *w)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekStart.Before(weeks[j].WeekStart)
	})
	return weeks
}

// UsedHours sums the hours of slots starting in [from, to).
func UsedHours(slots []TimeSlot, from, to time.Time) float64 {
	var h float64
	for _, s := range slots {
		if !s.Start().Before(from) && s.Start().Before(to) {
			h += s.Hours()
		}
	}
	return h
}

func CheckQuota(quota int, week WeekDemand, used float64) error {
	if used+week.Hours() > float64(quota) {
		return NewQuotaExceeded(quota, week.WeekStart)
	}
	return nil
}
