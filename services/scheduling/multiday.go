package scheduling

import (
	"fmt"

	"glowdesk/models"
)

// MultiDayResult is the structured outcome of a multi-day allocation. A
// failed allocation is an expected business outcome, not an error: Reason
// explains it and ConflictDate names the first blocked day when one exists.
type MultiDayResult struct {
	OK           bool
	Dates        []string // the N consecutive working dates, strictly increasing
	Reason       string
	ConflictDate string
}

// AllocateWorkingDays collects the days consecutive working dates starting
// at startDate, skipping closed days entirely (they are not counted toward
// the requested total). A request starting on a closed day fails
// immediately. Each collected day is checked against bookingsByDate: the
// first date already occupied by a blocking booking aborts the walk and is
// reported.
//
// The walk is deterministic and side-effect-free; the booking lists are
// supplied by the caller.
func (e *Engine) AllocateWorkingDays(startDate string, days int, bookingsByDate map[string][]models.Booking) (MultiDayResult, error) {
	if days < 1 {
		return MultiDayResult{}, invalidf("blocksDays %d must be >= 1", days)
	}
	start, err := ParseDate(startDate)
	if err != nil {
		return MultiDayResult{}, err
	}
	if !e.calendar.IsOpen(start.Weekday()) {
		return MultiDayResult{
			Reason: fmt.Sprintf("a %d-day appointment cannot start on a closed day (%s)", days, start.Weekday()),
		}, nil
	}

	dates := make([]string, 0, days)
	for day := start; len(dates) < days; day = day.AddDate(0, 0, 1) {
		if !e.calendar.IsOpen(day.Weekday()) {
			continue
		}
		dateStr := day.Format(DateLayout)
		if len(e.blockingOn(bookingsByDate[dateStr])) > 0 {
			return MultiDayResult{
				Reason:       fmt.Sprintf("%s is already booked", dateStr),
				ConflictDate: dateStr,
			}, nil
		}
		dates = append(dates, dateStr)
	}
	return MultiDayResult{OK: true, Dates: dates}, nil
}
