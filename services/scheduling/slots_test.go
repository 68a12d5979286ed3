package scheduling

import (
	"errors"
	"testing"

	"glowdesk/models"
)

func slotStarts(slots []models.AvailableSlot) map[int]bool {
	out := make(map[int]bool, len(slots))
	for _, s := range slots {
		out[s.Start] = true
	}
	return out
}

// Business hours Monday 09:00-18:00, a 120-minute service, no travel, no
// existing bookings: 09:00 and 16:00 are bookable, 17:00 would finish at
// 19:00 and is not.
func TestSlotsOpenDay(t *testing.T) {
	e := newTestEngine(t)
	avail, err := e.SlotsForDay(AvailabilityQuery{ServiceID: "balayage", Date: "2026-09-07"}, nil)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	if !avail.Available {
		t.Fatalf("expected availability, got reason %q", avail.Reason)
	}
	starts := slotStarts(avail.Slots)
	if !starts[9*60] {
		t.Fatalf("expected 09:00 bookable, slots: %v", avail.Slots)
	}
	if !starts[16*60] {
		t.Fatalf("expected 16:00 bookable, slots: %v", avail.Slots)
	}
	if starts[17*60] {
		t.Fatalf("17:00 would end past closing, slots: %v", avail.Slots)
	}
	if starts[16*60+30] {
		t.Fatalf("16:30 would end past closing, slots: %v", avail.Slots)
	}
	if avail.Slots[0].StartClock != "09:00" {
		t.Fatalf("clock rendering = %q, want 09:00", avail.Slots[0].StartClock)
	}
}

func TestSlotsSortedAndDeterministic(t *testing.T) {
	e := newTestEngine(t)
	q := AvailabilityQuery{ServiceID: "womens_cut", Date: "2026-09-07"}
	first, err := e.SlotsForDay(q, nil)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	second, err := e.SlotsForDay(q, nil)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	if len(first.Slots) != len(second.Slots) {
		t.Fatalf("same inputs yielded %d and %d slots", len(first.Slots), len(second.Slots))
	}
	for i := range first.Slots {
		if first.Slots[i] != second.Slots[i] {
			t.Fatalf("slot %d differs between runs", i)
		}
		if i > 0 && first.Slots[i].Start <= first.Slots[i-1].Start {
			t.Fatalf("slots not strictly increasing: %v", first.Slots)
		}
	}
}

// With a client address the whole block, return trip and safety margin
// included, has to fit inside business hours.
func TestSlotsTravelBlockFitsBeforeClose(t *testing.T) {
	e := newTestEngine(t)
	avail, err := e.SlotsForDay(AvailabilityQuery{ServiceID: "balayage", Date: "2026-09-07", TravelMinutes: 30}, nil)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	if !avail.Available {
		t.Fatalf("expected availability, got reason %q", avail.Reason)
	}
	closing := 18 * 60
	for _, s := range avail.Slots {
		if s.BlockEnd > closing {
			t.Fatalf("slot %s has block end %d past closing %d", s.StartClock, s.BlockEnd, closing)
		}
	}
	starts := slotStarts(avail.Slots)
	// 15:00 + 120 service + 30 return + 10 margin = 17:40; 15:30 ends 18:10.
	if !starts[15*60] {
		t.Fatalf("expected 15:00 bookable with travel, slots: %v", avail.Slots)
	}
	if starts[15*60+30] {
		t.Fatalf("15:30 block would end past closing, slots: %v", avail.Slots)
	}
}

func TestSlotsClosedDay(t *testing.T) {
	e := newTestEngine(t)
	avail, err := e.SlotsForDay(AvailabilityQuery{ServiceID: "womens_cut", Date: "2026-09-06"}, nil)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	if avail.Available || len(avail.Slots) != 0 {
		t.Fatalf("expected empty closed-day result, got %+v", avail)
	}
	if avail.Reason == "" {
		t.Fatalf("closed day needs an explanatory reason")
	}
}

func TestSlotsSkipConflicts(t *testing.T) {
	e := newTestEngine(t)
	bookings := map[string][]models.Booking{
		"2026-09-07": {{
			ID: "bk-1", ServiceID: "womens_cut", Date: "2026-09-07",
			Start: 11 * 60, DurationMinutes: 60, Status: models.StatusConfirmed,
		}},
	}
	avail, err := e.SlotsForDay(AvailabilityQuery{ServiceID: "balayage", Date: "2026-09-07"}, bookings)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	starts := slotStarts(avail.Slots)
	// Existing block is [11:00, 12:00). A 120-minute candidate at 09:00 ends
	// exactly at 11:00 and only touches it; 09:30 through 11:30 overlap.
	if !starts[9*60] {
		t.Fatalf("09:00 touches the existing booking and must stay bookable")
	}
	for _, banned := range []int{9*60 + 30, 10 * 60, 10*60 + 30, 11 * 60, 11*60 + 30} {
		if starts[banned] {
			t.Fatalf("%s overlaps the existing booking", FormatClock(banned))
		}
	}
	if !starts[12*60] {
		t.Fatalf("12:00 starts at the existing block end and must stay bookable")
	}
}

func TestSlotsReleasedBookingsDoNotBlock(t *testing.T) {
	e := newTestEngine(t)
	bookings := map[string][]models.Booking{
		"2026-09-07": {{
			ID: "bk-1", ServiceID: "womens_cut", Date: "2026-09-07",
			Start: 11 * 60, DurationMinutes: 60, Status: models.StatusCancelled,
		}},
	}
	avail, err := e.SlotsForDay(AvailabilityQuery{ServiceID: "balayage", Date: "2026-09-07"}, bookings)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	if !slotStarts(avail.Slots)[10*60] {
		t.Fatalf("cancelled booking must not block 10:00")
	}
}

func TestSlotsFullDayService(t *testing.T) {
	e := newTestEngine(t)

	avail, err := e.SlotsForDay(AvailabilityQuery{ServiceID: "bridal_day", Date: "2026-09-07"}, nil)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	if !avail.Available || len(avail.Slots) != 1 {
		t.Fatalf("expected exactly one full-day slot, got %+v", avail)
	}
	if avail.Slots[0].Start != e.Policy().FullDayStartMin {
		t.Fatalf("full-day slot must start at the fixed daily start time")
	}

	bookings := map[string][]models.Booking{
		"2026-09-07": {{
			ID: "bk-1", ServiceID: "womens_cut", Date: "2026-09-07",
			Start: 11 * 60, DurationMinutes: 60, Status: models.StatusPending,
		}},
	}
	avail, err = e.SlotsForDay(AvailabilityQuery{ServiceID: "bridal_day", Date: "2026-09-07"}, bookings)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	if avail.Available {
		t.Fatalf("full-day service must not share a booked date")
	}
}

func TestSlotsMultiDayService(t *testing.T) {
	e := newTestEngine(t)
	bookings := map[string][]models.Booking{
		"2026-09-07": {fullDayBooking("2026-09-07", models.StatusConfirmed)},
	}
	avail, err := e.SlotsForDay(AvailabilityQuery{ServiceID: "full_head_locs", Date: "2026-09-05"}, bookings)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	if avail.Available {
		t.Fatalf("expected multi-day conflict")
	}
	if avail.ConflictDate != "2026-09-07" {
		t.Fatalf("conflict date = %q, want 2026-09-07", avail.ConflictDate)
	}

	avail, err = e.SlotsForDay(AvailabilityQuery{ServiceID: "full_head_locs", Date: "2026-09-05"}, nil)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	if !avail.Available {
		t.Fatalf("expected availability, got reason %q", avail.Reason)
	}
	if len(avail.Dates) != 2 || avail.Dates[1] != "2026-09-07" {
		t.Fatalf("allocated dates = %v, want Saturday and Monday", avail.Dates)
	}
}

// A per-unit service's duration is only known once the unit count is; ten
// lock repairs take 150 minutes, not 15.
func TestSlotsPerUnitDuration(t *testing.T) {
	e := newTestEngine(t)
	avail, err := e.SlotsForDay(AvailabilityQuery{ServiceID: "lock_repair", Date: "2026-09-07", Units: 10}, nil)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	starts := slotStarts(avail.Slots)
	// 150 minutes: latest fit before 18:00 is 15:30.
	if !starts[15*60+30] {
		t.Fatalf("expected 15:30 bookable for 10 units, slots: %v", avail.Slots)
	}
	if starts[16*60] {
		t.Fatalf("16:00 cannot fit 10 units before closing")
	}
}

func TestSlotsUnknownService(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.SlotsForDay(AvailabilityQuery{ServiceID: "perm_mullet", Date: "2026-09-07"}, nil)
	if !errors.Is(err, ErrUnknownService) {
		t.Fatalf("expected ErrUnknownService, got %v", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown service is an invalid-input failure, got %v", err)
	}
}

func TestCheckSlot(t *testing.T) {
	e := newTestEngine(t)
	q := AvailabilityQuery{ServiceID: "womens_cut", Date: "2026-09-07"}

	res, err := e.CheckSlot(q, 10*60, nil)
	if err != nil {
		t.Fatalf("CheckSlot: %v", err)
	}
	if !res.Available || len(res.Slots) != 1 || res.Slots[0].Start != 10*60 {
		t.Fatalf("expected 10:00 confirmed, got %+v", res)
	}

	res, err = e.CheckSlot(q, 10*60+15, nil)
	if err != nil {
		t.Fatalf("CheckSlot: %v", err)
	}
	if res.Available {
		t.Fatalf("10:15 is off the slot grid and must be rejected")
	}
}
