package scheduling

import (
	"fmt"

	"glowdesk/models"
)

// AvailabilityQuery describes one "what is free" question.
type AvailabilityQuery struct {
	ServiceID     string
	Date          string // "YYYY-MM-DD"
	Units         int    // unit count for per-unit services, 0 otherwise
	TravelMinutes int    // one-way travel, 0 for in-salon appointments
}

// SlotsForDay enumerates the bookable start times for a service on a date.
// bookingsByDate must cover the requested date and, for multi-day services,
// the forward range the allocator may walk into; the engine itself performs
// no I/O. The same inputs always yield the same sorted output.
func (e *Engine) SlotsForDay(q AvailabilityQuery, bookingsByDate map[string][]models.Booking) (models.DayAvailability, error) {
	day, err := ParseDate(q.Date)
	if err != nil {
		return models.DayAvailability{}, err
	}
	def, err := e.catalog.Get(q.ServiceID)
	if err != nil {
		return models.DayAvailability{}, err
	}
	if q.TravelMinutes < 0 {
		return models.DayAvailability{}, invalidf("negative travel time %d", q.TravelMinutes)
	}
	svc := def.Resolve(q.Units)

	out := models.DayAvailability{Date: q.Date, ServiceID: svc.ID}

	hours, open := e.calendar.HoursFor(day.Weekday())
	if !open {
		out.Reason = fmt.Sprintf("closed on %s", day.Weekday())
		return out, nil
	}

	existing := e.blockingOn(bookingsByDate[q.Date])

	if svc.BlocksFullDay {
		return e.fullDayAvailability(out, svc, existing, bookingsByDate)
	}

	margin := e.marginFor(q.TravelMinutes)
	for start := hours.Open; start < hours.Close; start += e.policy.SlotStepMinutes {
		block, err := ComputeBlock(start, svc.DurationMinutes, q.TravelMinutes, margin)
		if err != nil {
			return models.DayAvailability{}, err
		}
		// The whole block has to fit inside business hours, return trip and
		// safety margin included, not just the visible service end.
		if block.End > hours.Close {
			continue
		}
		if e.conflictsAny(block.Interval(), existing) {
			continue
		}
		out.Slots = append(out.Slots, models.AvailableSlot{
			Start:      start,
			StartClock: FormatClock(start),
			BlockStart: block.Start,
			BlockEnd:   block.End,
		})
	}

	if len(out.Slots) == 0 {
		out.Reason = "no free slots on this date"
		return out, nil
	}
	out.Available = true
	return out, nil
}

// fullDayAvailability handles services that consume the single daily slot,
// delegating to the multi-day allocator when several working days are
// required. The only candidate start time is the fixed full-day start.
func (e *Engine) fullDayAvailability(out models.DayAvailability, svc models.ResolvedService, existing []models.Booking, bookingsByDate map[string][]models.Booking) (models.DayAvailability, error) {
	if svc.BlocksDays > 1 {
		res, err := e.AllocateWorkingDays(out.Date, svc.BlocksDays, bookingsByDate)
		if err != nil {
			return models.DayAvailability{}, err
		}
		if !res.OK {
			out.Reason = res.Reason
			out.ConflictDate = res.ConflictDate
			return out, nil
		}
		out.Dates = res.Dates
	} else if len(existing) > 0 {
		out.Reason = "this date is already booked"
		return out, nil
	}

	out.Available = true
	out.Slots = []models.AvailableSlot{{
		Start:      e.policy.FullDayStartMin,
		StartClock: FormatClock(e.policy.FullDayStartMin),
		BlockStart: 0,
		BlockEnd:   minutesPerDay,
	}}
	return out, nil
}

// CheckSlot validates one concrete start time for a booking attempt:
// opening hours, block fit and conflicts against the supplied bookings.
func (e *Engine) CheckSlot(q AvailabilityQuery, start int, bookingsByDate map[string][]models.Booking) (models.DayAvailability, error) {
	avail, err := e.SlotsForDay(q, bookingsByDate)
	if err != nil {
		return models.DayAvailability{}, err
	}
	if !avail.Available {
		return avail, nil
	}
	for _, s := range avail.Slots {
		if s.Start == start {
			avail.Slots = []models.AvailableSlot{s}
			return avail, nil
		}
	}
	avail.Available = false
	avail.Slots = nil
	avail.Reason = fmt.Sprintf("%s is not a bookable start time on %s", FormatClock(start), avail.Date)
	return avail, nil
}

func (e *Engine) conflictsAny(candidate BlockInterval, existing []models.Booking) bool {
	for _, b := range existing {
		if Overlaps(candidate, e.bookingBlock(b)) {
			return true
		}
	}
	return false
}
