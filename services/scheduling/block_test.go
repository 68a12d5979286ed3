package scheduling

import (
	"errors"
	"testing"
)

func TestComputeBlock(t *testing.T) {
	tests := []struct {
		name                     string
		start, dur, travel, marg int
		wantStart, wantEnd       int
		wantTotal                int
	}{
		{"in salon no margin", 600, 60, 0, 0, 600, 660, 60},
		{"with travel and margin", 600, 120, 30, 10, 570, 760, 190},
		{"travel only", 540, 45, 20, 0, 520, 625, 85},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ComputeBlock(tc.start, tc.dur, tc.travel, tc.marg)
			if err != nil {
				t.Fatalf("ComputeBlock: %v", err)
			}
			if b.Start != tc.wantStart || b.End != tc.wantEnd {
				t.Fatalf("block [%d,%d), want [%d,%d)", b.Start, b.End, tc.wantStart, tc.wantEnd)
			}
			if b.TotalBlockedMin != tc.wantTotal {
				t.Fatalf("total blocked %d, want %d", b.TotalBlockedMin, tc.wantTotal)
			}
			if b.End-b.Start != b.TotalBlockedMin {
				t.Fatalf("unclamped width must equal total blocked minutes")
			}
		})
	}
}

func TestComputeBlockIdempotent(t *testing.T) {
	a, err := ComputeBlock(600, 90, 25, 10)
	if err != nil {
		t.Fatalf("ComputeBlock: %v", err)
	}
	b, err := ComputeBlock(600, 90, 25, 10)
	if err != nil {
		t.Fatalf("ComputeBlock: %v", err)
	}
	if a != b {
		t.Fatalf("same inputs produced %+v and %+v", a, b)
	}
}

// Boundaries clamp to the day instead of erroring. This is a documented
// permissive policy: an early-morning request whose travel buffer would start
// before midnight blocks from 00:00.
func TestComputeBlockClampsToDay(t *testing.T) {
	b, err := ComputeBlock(20, 60, 45, 10)
	if err != nil {
		t.Fatalf("ComputeBlock: %v", err)
	}
	if b.Start != 0 {
		t.Fatalf("expected start clamped to 00:00, got %d", b.Start)
	}

	b, err = ComputeBlock(1400, 120, 30, 10)
	if err != nil {
		t.Fatalf("ComputeBlock: %v", err)
	}
	if b.End != lastMinute {
		t.Fatalf("expected end clamped to 23:59, got %d", b.End)
	}
}

func TestComputeBlockRejectsNegatives(t *testing.T) {
	cases := []struct {
		name                     string
		start, dur, travel, marg int
	}{
		{"negative duration", 600, -30, 0, 10},
		{"negative travel", 600, 60, -5, 10},
		{"negative margin", 600, 60, 0, -1},
		{"start before midnight", -10, 60, 0, 10},
		{"start past day end", 1500, 60, 0, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ComputeBlock(tc.start, tc.dur, tc.travel, tc.marg); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
