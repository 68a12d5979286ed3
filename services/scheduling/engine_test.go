package scheduling

import (
	"testing"
	"time"

	"glowdesk/models"
)

// testWeek mirrors the salon's real hours: weekdays 9-18, Saturday morning
// only, Sunday closed.
func testWeek() models.WeeklySchedule {
	return models.WeeklySchedule{
		time.Monday:    {Open: 9 * 60, Close: 18 * 60},
		time.Tuesday:   {Open: 9 * 60, Close: 18 * 60},
		time.Wednesday: {Open: 9 * 60, Close: 18 * 60},
		time.Thursday:  {Open: 9 * 60, Close: 18 * 60},
		time.Friday:    {Open: 9 * 60, Close: 18 * 60},
		time.Saturday:  {Open: 9 * 60, Close: 13 * 60},
	}
}

func testServices() []models.ServiceDefinition {
	return []models.ServiceDefinition{
		{ID: "womens_cut", Name: "Women's cut", Category: "cut", PriceCents: 6500, Price: 65, DurationMinutes: 60, BlocksDays: 1},
		{ID: "balayage", Name: "Balayage", Category: "color", PriceCents: 14000, Price: 140, PriceIsMinimum: true, DurationMinutes: 120, BlocksDays: 1},
		{ID: "bridal_day", Name: "Bridal styling day", Category: "bridal", PriceCents: 38000, Price: 380, DurationMinutes: 480, BlocksFullDay: true, BlocksDays: 1},
		{ID: "full_head_locs", Name: "Full head locs", Category: "locks", PriceCents: 52000, Price: 520, DurationMinutes: 480, BlocksFullDay: true, BlocksDays: 2},
		{ID: "lock_repair", Name: "Lock repair", Category: "locks", PriceCents: 1200, Price: 12, DurationMinutes: 15, BlocksDays: 1, PerUnit: true, UnitType: "lock"},
	}
}

func testTravelRule() TravelFeeRule {
	return TravelFeeRule{ThresholdKm: 8, BaseFee: 10, PerKmRate: 1.10}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cal, err := NewCalendar(testWeek())
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}
	cat, err := NewCatalog(testServices())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return NewEngine(cal, cat, testTravelRule(), Policy{})
}

func TestPolicyDefaults(t *testing.T) {
	e := newTestEngine(t)
	p := e.Policy()
	if p.SlotStepMinutes != 30 {
		t.Fatalf("expected 30-minute step, got %d", p.SlotStepMinutes)
	}
	if p.SafetyMarginMin != 10 {
		t.Fatalf("expected 10-minute margin, got %d", p.SafetyMarginMin)
	}
	if p.DepositPercent != 30 {
		t.Fatalf("expected 30%% deposit, got %d", p.DepositPercent)
	}
}

func TestIsBlocking(t *testing.T) {
	e := newTestEngine(t)
	for _, status := range []string{models.StatusPending, models.StatusAwaitingDeposit, models.StatusConfirmed} {
		if !e.IsBlocking(status) {
			t.Fatalf("expected %q to block", status)
		}
	}
	for _, status := range []string{models.StatusCancelled, models.StatusCompleted, models.StatusNoShow} {
		if e.IsBlocking(status) {
			t.Fatalf("expected %q to be released", status)
		}
	}
}
