package booking

import (
	"time"
)

// Calendar answers day and week questions in the club's time zone.
// All boundaries are computed on local civil dates so DST shifts never move a day.
type Calendar struct {
	loc *time.Location
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

func LoadCalendar(zone string) (Calendar, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Calendar{}, err
	}
	return NewCalendar(loc), nil
}

func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

func (c Calendar) StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(c.Location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.Location())
}

// AddDays moves t by whole calendar days, keeping the local wall clock.
func (c Calendar) AddDays(t time.Time, days int) time.Time {
	local := t.In(c.Location())
	y, m, d := local.Date()
	return time.Date(y, m, d+days, local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), c.Location())
}

// DayBounds returns [00:00, next 00:00) of the day containing t.
func (c Calendar) DayBounds(t time.Time) (time.Time, time.Time) {
	start := c.StartOfDay(t)
	return start, c.AddDays(start, 1)
}

func (c Calendar) WeekStart(t time.Time) time.Time {
	start := c.StartOfDay(t)
	return c.AddDays(start, -int(start.Weekday()))
}

// WeekRange returns [Sunday 00:00, next Sunday 00:00) of the week containing t.
func (c Calendar) WeekRange(t time.Time) (time.Time, time.Time) {
	start := c.WeekStart(t)
	return start, c.AddDays(start, 7)
}

// WeekBounds returns Sunday 00:00:00.000 and Saturday 23:59:59.999 of the week containing t.
func (c Calendar) WeekBounds(t time.Time) (time.Time, time.Time) {
	start, next := c.WeekRange(t)
	return start, next.Add(-time.Millisecond)
}

// DaysBetween counts calendar days from a to b using zone-local dates with the time stripped.
func (c Calendar) DaysBetween(a, b time.Time) int {
	ay, am, ad := a.In(c.Location()).Date()
	by, bm, bd := b.In(c.Location()).Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

func (c Calendar) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, c.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func (c Calendar) DayKey(t time.Time) string {
	return t.In(c.Location()).Format(time.DateOnly)
}

// Window is the daily period during which new bookings are accepted.
type Window struct {
	OpenHour int
	Enabled  bool
}

const DefaultWindowOpenHour = 18

func (w Window) openHour() int {
	if w.OpenHour <= 0 || w.OpenHour > 23 {
		return DefaultWindowOpenHour
	}
	return w.OpenHour
}

// Contains reports whether now falls in [open:00:00.000, 23:59:59.999] local time.
func (w Window) Contains(cal Calendar, now time.Time) bool {
	return now.In(cal.Location()).Hour() >= w.openHour()
}

// Admits is Contains gated by the Enabled flag.
func (w Window) Admits(cal Calendar, now time.Time) bool {
	if !w.Enabled {
		return true
	}
	return w.Contains(cal, now)
}

func (w Window) Bounds(cal Calendar, now time.Time) (time.Time, time.Time) {
	dayStart, next := cal.DayBounds(now)
	opens := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), w.openHour(), 0, 0, 0, cal.Location())
	return opens, next.Add(-time.Millisecond)
}

func (w Window) OpensAtLabel() string {
	return time.Date(2000, 1, 1, w.openHour(), 0, 0, 0, time.UTC).Format("3:04 PM")
}
