package scheduling

import (
	"glowdesk/models"
)

// Policy carries the fixed scheduling constants. Values come from
// configuration at startup; zero fields fall back to the built-in defaults.
type Policy struct {
	SlotStepMinutes    int      // candidate start-time step
	SafetyMarginMin    int      // buffer after the provider's return trip
	FullDayStartMin    int      // fixed start time for full-day services
	DepositPercent     int      // deposit share of the total, ceiling-rounded
	Currency           string   // ISO currency code for quotes
	BlockingStatuses   []string // booking statuses that occupy the calendar
}

func (p Policy) withDefaults() Policy {
	if p.SlotStepMinutes <= 0 {
		p.SlotStepMinutes = 30
	}
	if p.SafetyMarginMin <= 0 {
		p.SafetyMarginMin = DefaultSafetyMarginMinutes
	}
	if p.FullDayStartMin <= 0 {
		p.FullDayStartMin = 9 * 60
	}
	if p.DepositPercent <= 0 {
		p.DepositPercent = 30
	}
	if p.Currency == "" {
		p.Currency = "EUR"
	}
	if len(p.BlockingStatuses) == 0 {
		p.BlockingStatuses = []string{
			models.StatusPending,
			models.StatusAwaitingDeposit,
			models.StatusConfirmed,
		}
	}
	return p
}

// Engine is the availability and scheduling engine. It is pure and
// stateless: every method is a deterministic function of its explicit inputs
// and the injected configuration, performs no I/O, and is safe to call from
// any number of goroutines. Serializing "check availability" against
// "commit booking" for the same date is the storage layer's job.
type Engine struct {
	calendar *Calendar
	catalog  *Catalog
	travel   TravelFeeRule
	policy   Policy
	blocking map[string]struct{}
}

// NewEngine wires the calendar rules, service catalog, travel fee rule and
// policy constants together.
func NewEngine(calendar *Calendar, catalog *Catalog, travel TravelFeeRule, policy Policy) *Engine {
	policy = policy.withDefaults()
	blocking := make(map[string]struct{}, len(policy.BlockingStatuses))
	for _, s := range policy.BlockingStatuses {
		blocking[s] = struct{}{}
	}
	return &Engine{
		calendar: calendar,
		catalog:  catalog,
		travel:   travel,
		policy:   policy,
		blocking: blocking,
	}
}

// Calendar exposes the injected calendar rules.
func (e *Engine) Calendar() *Calendar { return e.calendar }

// Catalog exposes the injected service registry.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// Policy exposes the effective policy after defaulting.
func (e *Engine) Policy() Policy { return e.policy }

// IsBlocking reports whether a booking status occupies the calendar.
// Released statuses (cancelled, completed, no-show) never block.
func (e *Engine) IsBlocking(status string) bool {
	_, ok := e.blocking[status]
	return ok
}

// blockingOn filters a day's bookings down to those that occupy the calendar.
func (e *Engine) blockingOn(bookings []models.Booking) []models.Booking {
	var out []models.Booking
	for _, b := range bookings {
		if e.IsBlocking(b.Status) {
			out = append(out, b)
		}
	}
	return out
}

// marginFor returns the safety margin for an appointment. The margin
// separates consecutive provider trips, so in-salon appointments with no
// travel carry none.
func (e *Engine) marginFor(travelMin int) int {
	if travelMin > 0 {
		return e.policy.SafetyMarginMin
	}
	return 0
}

// bookingBlock recomputes the blocking interval of an existing booking.
// Full-day bookings occupy the whole day.
func (e *Engine) bookingBlock(b models.Booking) BlockInterval {
	if b.FullDay {
		return BlockInterval{Start: 0, End: minutesPerDay}
	}
	block, err := ComputeBlock(b.Start, b.DurationMinutes, b.TravelMinutes, e.marginFor(b.TravelMinutes))
	if err != nil {
		// Persisted bookings passed validation on the way in; a malformed one
		// must still block rather than silently free the slot.
		return BlockInterval{Start: 0, End: minutesPerDay}
	}
	return block.Interval()
}
