package recon

import "opsrecon/internal/source"

// OverlapHours computes the overlapping duration of two time ranges in
// fractional hours. An unknown range never overlaps anything, so a nil input
// yields 0. The function is pure, total and symmetric.
func OverlapHours(a, b *source.TimeRange) float64 {
	if a == nil || b == nil {
		return 0
	}

	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}
	end := a.End
	if b.End.Before(end) {
		end = b.End
	}

	if !start.Before(end) {
		return 0
	}
	return end.Sub(start).Hours()
}
