package recon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortFixture() []Event {
	return []Event{
		{ID: "a", Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), Technician: "julien mercier", Duration: 2},
		{ID: "b", Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Technician: "Claire Fontaine", Duration: 3},
		{ID: "c", Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), Technician: "Antoine Lefebvre", Duration: 1},
	}
}

func ids(events []Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestSortEventsByDate(t *testing.T) {
	events := sortFixture()
	SortEvents(events, SortByDate, false)
	assert.Equal(t, []string{"b", "a", "c"}, ids(events))

	SortEvents(events, SortByDate, true)
	assert.Equal(t, []string{"c", "a", "b"}, ids(events))
}

func TestSortEventsCaseInsensitive(t *testing.T) {
	events := sortFixture()
	SortEvents(events, SortByTechnician, false)
	// "Antoine Lefebvre" < "Claire Fontaine" < "julien mercier" when
	// compared case-insensitively.
	assert.Equal(t, []string{"c", "b", "a"}, ids(events))
}

func TestSortEventsNumeric(t *testing.T) {
	events := sortFixture()
	SortEvents(events, SortByDuration, true)
	assert.Equal(t, []string{"b", "a", "c"}, ids(events))
}

func TestSortEventsUnknownKeyKeepsOrder(t *testing.T) {
	events := sortFixture()
	SortEvents(events, "nonsense", false)
	assert.Equal(t, []string{"a", "b", "c"}, ids(events))
}

func TestSortEventsStableOnTies(t *testing.T) {
	events := []Event{
		{ID: "first", Month: "2025-03"},
		{ID: "second", Month: "2025-03"},
		{ID: "third", Month: "2025-02"},
	}
	SortEvents(events, SortByMonth, false)
	require.Equal(t, []string{"third", "first", "second"}, ids(events), "ties keep input order")
}
