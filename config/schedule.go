package config

import (
	"fmt"
	"strings"
	"time"

	"glowdesk/models"
	"glowdesk/services/scheduling"
)

// WeeklyHours parses the per-weekday HOURS_* values into the engine's
// weekly schedule. "closed" (or empty) marks a day off.
func (c Config) WeeklyHours() (models.WeeklySchedule, error) {
	raw := map[time.Weekday]string{
		time.Monday:    c.HoursMonday,
		time.Tuesday:   c.HoursTuesday,
		time.Wednesday: c.HoursWednesday,
		time.Thursday:  c.HoursThursday,
		time.Friday:    c.HoursFriday,
		time.Saturday:  c.HoursSaturday,
		time.Sunday:    c.HoursSunday,
	}
	week := make(models.WeeklySchedule)
	for day, hours := range raw {
		hours = strings.TrimSpace(hours)
		if hours == "" || strings.EqualFold(hours, "closed") {
			continue
		}
		parts := strings.SplitN(hours, "-", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("hours for %s: %q is not \"HH:MM-HH:MM\"", day, hours)
		}
		open, err := scheduling.ParseClock(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("hours for %s: %w", day, err)
		}
		closeAt, err := scheduling.ParseClock(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("hours for %s: %w", day, err)
		}
		week[day] = models.DayHours{Open: open, Close: closeAt}
	}
	return week, nil
}

// FullDayStartMinutes parses FULL_DAY_START.
func (c Config) FullDayStartMinutes() (int, error) {
	return scheduling.ParseClock(c.FullDayStart)
}
