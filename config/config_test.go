package config

import (
	"reflect"
	"testing"
	"time"

	"glowdesk/models"
)

func TestBlockingStatusList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"default set", "pending,awaiting_deposit,confirmed", []string{"pending", "awaiting_deposit", "confirmed"}},
		{"spaces trimmed", " confirmed , pending ", []string{"confirmed", "pending"}},
		{"empty falls back", "", nil},
		{"stray commas dropped", ",confirmed,,", []string{"confirmed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{BlockingStatuses: tt.raw}
			if got := c.BlockingStatusList(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BlockingStatusList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestWeeklyHoursParsing(t *testing.T) {
	c := Config{
		HoursMonday:   "09:00-18:00",
		HoursSaturday: "09:00-13:00",
		HoursSunday:   "closed",
	}
	week, err := c.WeeklyHours()
	if err != nil {
		t.Fatalf("WeeklyHours failed: %v", err)
	}
	if got := week[time.Monday]; got != (models.DayHours{Open: 540, Close: 1080}) {
		t.Errorf("Monday = %+v", got)
	}
	if got := week[time.Saturday]; got != (models.DayHours{Open: 540, Close: 780}) {
		t.Errorf("Saturday = %+v", got)
	}
	if _, open := week[time.Sunday]; open {
		t.Errorf("Sunday should be closed")
	}
	if _, open := week[time.Tuesday]; open {
		t.Errorf("unset weekday should be closed")
	}
}

func TestWeeklyHoursMalformed(t *testing.T) {
	c := Config{HoursMonday: "nine to six"}
	if _, err := c.WeeklyHours(); err == nil {
		t.Fatal("expected error for malformed hours")
	}
}
