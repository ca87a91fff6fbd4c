package domain

import (
	"time"
)

// Accepted period keywords.
const (
	PeriodToday  = "today"
	PeriodWeek   = "week"
	PeriodMonth  = "month"
	PeriodAll    = "all"
	PeriodCustom = "custom"
)

// PeriodWindow is an inclusive [Start, End] calendar-day range. Both bounds
// are day-truncated UTC times. Immutable.
type PeriodWindow struct {
	Start time.Time
	End   time.Time
}

// Days returns the window length in calendar days.
func (w PeriodWindow) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Contains reports whether the day-truncated time t falls inside the window.
func (w PeriodWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Previous returns the comparison window: the equal-length range that ends
// the day before Start. Contiguous, never overlapping.
func (w PeriodWindow) Previous() PeriodWindow {
	length := w.Days()
	prevEnd := w.Start.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(length - 1))
	return PeriodWindow{Start: prevStart, End: prevEnd}
}
