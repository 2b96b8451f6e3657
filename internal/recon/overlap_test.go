package recon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"opsrecon/internal/source"
)

func rangeAt(day time.Time, startHour, hours float64) *source.TimeRange {
	start := day.Add(time.Duration(startHour * float64(time.Hour)))
	return &source.TimeRange{Start: start, End: start.Add(time.Duration(hours * float64(time.Hour)))}
}

func TestOverlapHours(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b *source.TimeRange
		want float64
	}{
		{name: "partial overlap", a: rangeAt(day, 9, 4), b: rangeAt(day, 11, 3), want: 2},
		{name: "contained", a: rangeAt(day, 9, 8), b: rangeAt(day, 10, 1), want: 1},
		{name: "identical", a: rangeAt(day, 9, 2), b: rangeAt(day, 9, 2), want: 2},
		{name: "disjoint", a: rangeAt(day, 9, 1), b: rangeAt(day, 14, 1), want: 0},
		{name: "touching edges", a: rangeAt(day, 9, 1), b: rangeAt(day, 10, 1), want: 0},
		{name: "fractional", a: rangeAt(day, 9, 1), b: rangeAt(day, 9.5, 2), want: 0.5},
		{name: "left nil", a: nil, b: rangeAt(day, 9, 1), want: 0},
		{name: "right nil", a: rangeAt(day, 9, 1), b: nil, want: 0},
		{name: "both nil", a: nil, b: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, OverlapHours(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, OverlapHours(tt.b, tt.a), 1e-9, "overlap must be symmetric")
		})
	}
}
