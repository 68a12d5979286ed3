package scheduling

import (
	"errors"
	"math"
	"testing"
)

func TestQuoteInSalon(t *testing.T) {
	e := newTestEngine(t)
	q, err := e.Quote("womens_cut", 0, 0)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.TravelFee != 0 || q.TravelFeeCents != 0 {
		t.Fatalf("in-salon quote must carry no travel fee, got %+v", q)
	}
	if q.Total != 65 || q.TotalCents != 6500 {
		t.Fatalf("total = %v/%d, want 65/6500", q.Total, q.TotalCents)
	}
	// 30% of 65.00 is 19.50, ceiling-rounded to the next whole unit.
	if q.Deposit != 20 || q.DepositCents != 2000 {
		t.Fatalf("deposit = %v/%d, want 20/2000", q.Deposit, q.DepositCents)
	}
	if q.Currency != "EUR" {
		t.Fatalf("currency = %q, want EUR", q.Currency)
	}
}

func TestQuoteWithTravel(t *testing.T) {
	e := newTestEngine(t)
	q, err := e.Quote("womens_cut", 10, 0)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.TravelFee != 12.20 || q.TravelFeeCents != 1220 {
		t.Fatalf("travel fee = %v/%d, want 12.20/1220", q.TravelFee, q.TravelFeeCents)
	}
	if q.Total != 77.20 || q.TotalCents != 7720 {
		t.Fatalf("total = %v/%d, want 77.20/7720", q.Total, q.TotalCents)
	}
}

// A total of 217.70 at 30% gives 65.31; the deposit rounds up to 66, never
// truncates.
func TestQuoteDepositCeiling(t *testing.T) {
	e := newTestEngine(t)
	// balayage 140.00 + fee for 78.636 km: 10 + 70.636*1.10 = 87.70.
	q, err := e.Quote("balayage", 78.636, 0)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.TotalCents != 21770 {
		t.Fatalf("total cents = %d, want 21770", q.TotalCents)
	}
	if q.Deposit != 66 || q.DepositCents != 6600 {
		t.Fatalf("deposit = %v/%d, want 66/6600", q.Deposit, q.DepositCents)
	}
}

func TestQuotePerUnit(t *testing.T) {
	e := newTestEngine(t)
	q, err := e.Quote("lock_repair", 0, 10)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.Units != 10 {
		t.Fatalf("units = %d, want 10", q.Units)
	}
	if q.ServicePriceCents != 12000 || q.ServicePrice != 120 {
		t.Fatalf("price = %v/%d, want 120/12000", q.ServicePrice, q.ServicePriceCents)
	}
	if q.DurationMinutes != 150 {
		t.Fatalf("duration = %d, want 150", q.DurationMinutes)
	}

	// Resolving must not mutate the shared definition.
	again, err := e.Quote("lock_repair", 0, 1)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if again.ServicePriceCents != 1200 || again.DurationMinutes != 15 {
		t.Fatalf("definition mutated by earlier resolve: %+v", again)
	}
}

func TestQuoteFloatCentsAgree(t *testing.T) {
	e := newTestEngine(t)
	for d := 0.0; d <= 45; d += 0.9 {
		q, err := e.Quote("balayage", d, 0)
		if err != nil {
			t.Fatalf("Quote(%v): %v", d, err)
		}
		if int64(math.Round(q.Total*100)) != q.TotalCents {
			t.Fatalf("total %v disagrees with cents %d at %v km", q.Total, q.TotalCents, d)
		}
		if int64(math.Round(q.TravelFee*100)) != q.TravelFeeCents {
			t.Fatalf("fee %v disagrees with cents %d at %v km", q.TravelFee, q.TravelFeeCents, d)
		}
	}
}

func TestQuoteMinimumPriceFlag(t *testing.T) {
	e := newTestEngine(t)
	q, err := e.Quote("balayage", 0, 0)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if !q.PriceIsMinimum {
		t.Fatalf("balayage price is a floor and must be flagged")
	}
}

func TestQuoteInvalidInput(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.Quote("perm_mullet", 0, 0); !errors.Is(err, ErrUnknownService) {
		t.Fatalf("expected ErrUnknownService, got %v", err)
	}
	if _, err := e.Quote("womens_cut", -3, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative distance, got %v", err)
	}
}
