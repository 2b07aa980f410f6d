package booking

import (
	"errors"
	"strings"
	"time"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

var ErrMalformedSlot = errors.New("slot must be formatted as <start>/<end> in RFC3339")

// TimeSlot is a half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

// ParseTimeSlot reads the "<start>/<end>" form produced by String.
func ParseTimeSlot(s string) (TimeSlot, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return TimeSlot{}, ErrMalformedSlot
	}
	start, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeSlot{}, ErrMalformedSlot
	}
	end, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeSlot{}, ErrMalformedSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) Hours() float64 {
	return ts.Duration().Hours()
}

// ID is derived from the interval so identical slots share one identity.
func (ts TimeSlot) ID() string {
	return ts.start.UTC().Format(isoMillis) + "-" + ts.end.UTC().Format(isoMillis)
}

func (ts TimeSlot) String() string {
	return ts.start.Format(time.RFC3339) + "/" + ts.end.Format(time.RFC3339)
}

func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

func overlapsAny(slot TimeSlot, others []TimeSlot) bool {
	for _, o := range others {
		if slot.Overlaps(o) {
			return true
		}
	}
	return false
}
