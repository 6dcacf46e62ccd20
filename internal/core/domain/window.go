package domain

import "time"

// TimeWindow restricts consumption records by timestamp.
type TimeWindow string

const (
	WindowAll        TimeWindow = "all"
	WindowToday      TimeWindow = "today"
	WindowLast7Days  TimeWindow = "last_7_days"
	WindowLast30Days TimeWindow = "last_30_days"
)

// ParseTimeWindow maps a user-supplied name to a TimeWindow, defaulting to
// WindowAll for empty or unknown values.
func ParseTimeWindow(s string) TimeWindow {
	switch TimeWindow(s) {
	case WindowToday, WindowLast7Days, WindowLast30Days:
		return TimeWindow(s)
	default:
		return WindowAll
	}
}

// Contains reports whether a record timestamped at ts falls inside the
// window relative to now. Today means the same calendar date in now's
// location; the day-based windows are rolling 24h multiples.
func (w TimeWindow) Contains(ts, now time.Time) bool {
	switch w {
	case WindowToday:
		y1, m1, d1 := ts.In(now.Location()).Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case WindowLast7Days:
		return !ts.Before(now.Add(-7 * 24 * time.Hour))
	case WindowLast30Days:
		return !ts.Before(now.Add(-30 * 24 * time.Hour))
	default:
		return true
	}
}
