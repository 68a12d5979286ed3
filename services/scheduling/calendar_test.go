package scheduling

import (
	"testing"
	"time"

	"glowdesk/models"
)

func TestCalendarHours(t *testing.T) {
	cal, err := NewCalendar(testWeek())
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}

	if cal.IsOpen(time.Sunday) {
		t.Fatalf("expected Sunday closed")
	}
	if !cal.IsOpen(time.Monday) {
		t.Fatalf("expected Monday open")
	}

	h, ok := cal.HoursFor(time.Saturday)
	if !ok {
		t.Fatalf("expected Saturday half day")
	}
	if h.Open != 9*60 || h.Close != 13*60 {
		t.Fatalf("Saturday hours = %+v, want 09:00-13:00", h)
	}

	if _, ok := cal.HoursFor(time.Sunday); ok {
		t.Fatalf("expected no hours on Sunday")
	}
}

func TestCalendarRejectsBadHours(t *testing.T) {
	bad := []models.WeeklySchedule{
		{time.Monday: {Open: 600, Close: 600}},
		{time.Monday: {Open: 700, Close: 600}},
		{time.Monday: {Open: -30, Close: 600}},
		{time.Monday: {Open: 600, Close: 25 * 60}},
	}
	for i, week := range bad {
		if _, err := NewCalendar(week); err == nil {
			t.Fatalf("case %d: expected error for %+v", i, week)
		}
	}
}

func TestCalendarOutOfRangeWeekdayPanics(t *testing.T) {
	cal, err := NewCalendar(testWeek())
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range weekday")
		}
	}()
	cal.HoursFor(time.Weekday(7))
}
