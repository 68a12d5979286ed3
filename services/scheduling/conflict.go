package scheduling

// Overlaps reports whether two blocking intervals on the same date overlap.
// Intervals are half-open, so two blocks that merely touch at an endpoint do
// not conflict. Every higher-level availability check reduces to this
// primitive; it is total and symmetric.
func Overlaps(a, b BlockInterval) bool {
	return a.Start < b.End && a.End > b.Start
}
