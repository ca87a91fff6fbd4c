package utils

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// dateLayouts are the accepted layouts for dates coming from marketplace
// exports, in resolution order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02.01.2006",
	"02.01.2006 15:04:05",
	"2006/01/02",
	"02/01/2006",
}

// ParseDate parses a calendar date trying each supported layout in order.
func ParseDate(dateStr string) (time.Time, error) {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, s); err == nil {
			return date, nil
		}
	}

	return time.Time{}, errors.Errorf("unsupported date format: %q", s)
}

// TruncateToDay drops the time-of-day component, keeping UTC day granularity.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
