package scheduling

import (
	"fmt"
	"time"

	"glowdesk/models"
)

// Calendar answers opening-hours questions for the salon's fixed weekly
// schedule. It is a pure lookup with no side effects; the schedule is
// injected at construction and never changes afterwards.
type Calendar struct {
	week models.WeeklySchedule
}

// NewCalendar validates the weekly schedule and wraps it for lookups.
func NewCalendar(week models.WeeklySchedule) (*Calendar, error) {
	for day, h := range week {
		if day < time.Sunday || day > time.Saturday {
			return nil, invalidf("weekday %d out of range", int(day))
		}
		if h.Open < 0 || h.Close > minutesPerDay || h.Open >= h.Close {
			return nil, invalidf("invalid hours for %s: open=%d close=%d", day, h.Open, h.Close)
		}
	}
	copied := make(models.WeeklySchedule, len(week))
	for day, h := range week {
		copied[day] = h
	}
	return &Calendar{week: copied}, nil
}

// IsOpen reports whether the salon works on the given weekday.
func (c *Calendar) IsOpen(day time.Weekday) bool {
	_, ok := c.HoursFor(day)
	return ok
}

// HoursFor returns the open interval for a weekday, or ok=false on a closed
// day. Passing a weekday outside Sunday..Saturday is a programming error and
// panics rather than returning a recoverable error.
func (c *Calendar) HoursFor(day time.Weekday) (models.DayHours, bool) {
	if day < time.Sunday || day > time.Saturday {
		panic(fmt.Sprintf("scheduling: weekday %d out of range", int(day)))
	}
	h, ok := c.week[day]
	return h, ok
}
