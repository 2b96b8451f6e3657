package recon

import "math"

// Absorb reconciles technical demand against scheduled capacity, mutating
// both slices in place. For each technical event, in input order, the first
// scheduled event with the same technician, the same day, a known time range
// and a positive overlap absorbs it: the scheduled event's net capacity
// shrinks by the overlap (floored at 0) and the technical event's net need
// drops to 0. A technical event without a time range can never be judged
// overlapping and keeps its initial need.
//
// One scheduled slot may absorb any number of technical events down to zero
// remaining capacity; a technical event is absorbed at most once, by its
// first match. When competing technical events together exceed a slot's
// capacity, absorption stays greedy in encounter order with no
// redistribution — a known limitation, kept for determinism.
//
// Capacity is tracked in a separate accumulator and only projected back into
// the events at the end, so a panic mid-run never leaves the slice half
// updated.
func Absorb(scheduled, technical []Event) {
	remaining := make([]float64, len(scheduled))
	for i := range scheduled {
		remaining[i] = scheduled[i].NetCapacity
	}

	for ti := range technical {
		t := &technical[ti]
		if t.TimeRange == nil {
			continue
		}
		for si := range scheduled {
			s := &scheduled[si]
			if s.Technician != t.Technician || s.Day != t.Day || s.TimeRange == nil {
				continue
			}
			overlap := OverlapHours(s.TimeRange, t.TimeRange)
			if overlap <= 0 {
				continue
			}
			remaining[si] = math.Max(0, remaining[si]-overlap)
			t.NetNeed = 0
			t.IsAbsorbed = true
			t.AbsorbedBy = s.Category
			break
		}
	}

	for si := range scheduled {
		scheduled[si].NetCapacity = remaining[si]
	}
}
