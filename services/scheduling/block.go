package scheduling

// DefaultSafetyMarginMinutes separates consecutive provider trips.
const DefaultSafetyMarginMinutes = 10

// BlockInterval is a half-open [Start, End) time span on a single date, in
// minutes from midnight. It is derived on demand, never persisted.
type BlockInterval struct {
	Start int
	End   int
}

// Block is the full calendar-occupied span for one appointment: departure,
// service, return trip and the safety margin.
type Block struct {
	Start           int // provider departs, travel included
	End             int // provider is back, margin included
	TotalBlockedMin int // 2*travel + duration + margin, before clamping
}

// Interval returns the conflict-check view of the block.
func (b Block) Interval() BlockInterval {
	return BlockInterval{Start: b.Start, End: b.End}
}

// ComputeBlock derives the blocking interval for an appointment that starts
// at startMin (visible customer time) and runs durationMin, with a one-way
// travel time of travelMin and a fixed marginMin buffer after the return.
//
// Boundaries clamp to [00:00, 23:59] instead of wrapping: an appointment
// requested too early for its travel buffer blocks from 00:00 rather than
// erroring. Negative durations or travel times are invalid input, not
// clamped.
func ComputeBlock(startMin, durationMin, travelMin, marginMin int) (Block, error) {
	if startMin < 0 || startMin > lastMinute {
		return Block{}, invalidf("start %d out of day range", startMin)
	}
	if durationMin < 0 {
		return Block{}, invalidf("negative duration %d", durationMin)
	}
	if travelMin < 0 {
		return Block{}, invalidf("negative travel time %d", travelMin)
	}
	if marginMin < 0 {
		return Block{}, invalidf("negative safety margin %d", marginMin)
	}
	return Block{
		Start:           clampMinute(startMin - travelMin),
		End:             clampMinute(startMin + durationMin + travelMin + marginMin),
		TotalBlockedMin: 2*travelMin + durationMin + marginMin,
	}, nil
}
