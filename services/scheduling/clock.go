package scheduling

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire format for times of day.
	ClockLayout = "15:04"

	minutesPerDay = 24 * 60
	lastMinute    = minutesPerDay - 1 // 23:59
)

// ParseClock converts an "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, invalidf("malformed time %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// ParseDate converts a "YYYY-MM-DD" string to a time.Time at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, invalidf("malformed date %q", s)
	}
	return t, nil
}

// clampMinute keeps a minutes-from-midnight value inside [00:00, 23:59]
// instead of wrapping past midnight or going negative.
func clampMinute(min int) int {
	if min < 0 {
		return 0
	}
	if min > lastMinute {
		return lastMinute
	}
	return min
}
