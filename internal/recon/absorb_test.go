package recon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledEvent(technician, day string, startHour, hours float64) Event {
	d, _ := time.Parse("2006-01-02", day)
	return Event{
		ID:          "s-" + technician + day,
		Date:        d,
		Day:         day,
		Month:       day[:7],
		Technician:  technician,
		Category:    "BackOffice production",
		IsScheduled: true,
		Duration:    hours,
		NetCapacity: hours,
		TimeRange:   rangeAt(d, startHour, hours),
	}
}

func technicalEvent(technician, day string, startHour, hours float64, withRange bool) Event {
	d, _ := time.Parse("2006-01-02", day)
	e := Event{
		ID:         "t-" + technician + day,
		Date:       d,
		Day:        day,
		Month:      day[:7],
		Technician: technician,
		Category:   "Migration AvocatMail",
		Duration:   hours,
		NetNeed:    hours,
	}
	if e.NetNeed < 1.0 {
		e.NetNeed = 1.0 // baseline for a single user
	}
	if withRange {
		e.TimeRange = rangeAt(d, startHour, hours)
	}
	return e
}

func TestAbsorbOverlappingEvent(t *testing.T) {
	// One scheduled slot 09:00+4h, one technical task 10:00+1h, same
	// technician and day: absorbed, capacity drops to 3.
	scheduled := []Event{scheduledEvent("Julien Mercier", "2025-03-01", 9, 4)}
	technical := []Event{technicalEvent("Julien Mercier", "2025-03-01", 10, 1, true)}

	Absorb(scheduled, technical)

	assert.InDelta(t, 3.0, scheduled[0].NetCapacity, 1e-9)
	assert.Zero(t, technical[0].NetNeed)
	assert.True(t, technical[0].IsAbsorbed)
	assert.Equal(t, "BackOffice production", technical[0].AbsorbedBy)
}

func TestAbsorbSkipsEventWithoutTimeRange(t *testing.T) {
	scheduled := []Event{scheduledEvent("Julien Mercier", "2025-03-01", 9, 4)}
	technical := []Event{technicalEvent("Julien Mercier", "2025-03-01", 10, 1, false)}

	Absorb(scheduled, technical)

	assert.InDelta(t, 4.0, scheduled[0].NetCapacity, 1e-9)
	assert.InDelta(t, 1.0, technical[0].NetNeed, 1e-9)
	assert.False(t, technical[0].IsAbsorbed)
}

func TestAbsorbRequiresSameTechnicianAndDay(t *testing.T) {
	scheduled := []Event{scheduledEvent("Julien Mercier", "2025-03-01", 9, 4)}
	technical := []Event{
		technicalEvent("Claire Fontaine", "2025-03-01", 10, 1, true),
		technicalEvent("Julien Mercier", "2025-03-02", 10, 1, true),
	}

	Absorb(scheduled, technical)

	assert.InDelta(t, 4.0, scheduled[0].NetCapacity, 1e-9)
	for _, e := range technical {
		assert.False(t, e.IsAbsorbed)
	}
}

func TestAbsorbMultipleTechnicalIntoOneSlot(t *testing.T) {
	scheduled := []Event{scheduledEvent("Julien Mercier", "2025-03-01", 9, 3)}
	technical := []Event{
		technicalEvent("Julien Mercier", "2025-03-01", 9, 2, true),
		technicalEvent("Julien Mercier", "2025-03-01", 11, 2, true),
	}

	Absorb(scheduled, technical)

	// 3h slot absorbs 2h then 1h of overlap; capacity floors at 0, both
	// technical events are zeroed even though combined overlap exceeds
	// capacity. Greedy in encounter order, no redistribution.
	assert.Zero(t, scheduled[0].NetCapacity)
	for _, e := range technical {
		assert.True(t, e.IsAbsorbed)
		assert.Zero(t, e.NetNeed)
	}
}

func TestAbsorbFirstMatchOnly(t *testing.T) {
	// Two scheduled slots both overlap the task; only the first in input
	// order absorbs it.
	scheduled := []Event{
		scheduledEvent("Julien Mercier", "2025-03-01", 9, 4),
		scheduledEvent("Julien Mercier", "2025-03-01", 10, 4),
	}
	technical := []Event{technicalEvent("Julien Mercier", "2025-03-01", 10, 1, true)}

	Absorb(scheduled, technical)

	assert.InDelta(t, 3.0, scheduled[0].NetCapacity, 1e-9)
	assert.InDelta(t, 4.0, scheduled[1].NetCapacity, 1e-9)
	assert.Equal(t, scheduled[0].Category, technical[0].AbsorbedBy)
}

func TestAbsorbCapacityMonotonic(t *testing.T) {
	scheduled := []Event{
		scheduledEvent("Julien Mercier", "2025-03-01", 9, 4),
		scheduledEvent("Claire Fontaine", "2025-03-01", 9, 2),
	}
	technical := []Event{
		technicalEvent("Julien Mercier", "2025-03-01", 9, 3, true),
		technicalEvent("Claire Fontaine", "2025-03-01", 8, 6, true),
		technicalEvent("Claire Fontaine", "2025-03-01", 10, 1, true),
	}

	Absorb(scheduled, technical)

	for _, s := range scheduled {
		assert.LessOrEqual(t, s.NetCapacity, s.Duration)
		assert.GreaterOrEqual(t, s.NetCapacity, 0.0)
	}
}

func TestAbsorbIdempotentRebuild(t *testing.T) {
	build := func() ([]Event, []Event) {
		return []Event{
				scheduledEvent("Julien Mercier", "2025-03-01", 9, 4),
			}, []Event{
				technicalEvent("Julien Mercier", "2025-03-01", 10, 1, true),
				technicalEvent("Julien Mercier", "2025-03-01", 12, 1, false),
			}
	}

	s1, t1 := build()
	Absorb(s1, t1)
	s2, t2 := build()
	Absorb(s2, t2)

	require.Equal(t, s1, s2)
	require.Equal(t, t1, t2)
}
