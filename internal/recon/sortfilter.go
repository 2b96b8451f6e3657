package recon

import (
	"sort"
	"strings"
)

// Sort keys accepted by SortEvents. Unknown keys leave the slice untouched.
const (
	SortByDate        = "date"
	SortByMonth       = "month"
	SortByTechnician  = "technician"
	SortByCategory    = "category"
	SortByDossier     = "dossier"
	SortByUsers       = "users"
	SortByDuration    = "duration"
	SortByNetCapacity = "netCapacity"
	SortByNetNeed     = "netNeed"
	SortByStatus      = "status"
)

// SortEvents orders the event list by a single field, ascending or
// descending. String fields compare case-insensitively. The sort is stable,
// so ties keep their original input position, which is what makes repeated
// reconciliation runs produce identical listings.
func SortEvents(events []Event, key string, descending bool) {
	less := lessFunc(key)
	if less == nil {
		return
	}
	sort.SliceStable(events, func(i, j int) bool {
		if descending {
			return less(events[j], events[i])
		}
		return less(events[i], events[j])
	})
}

func lessFunc(key string) func(a, b Event) bool {
	switch key {
	case SortByDate:
		return func(a, b Event) bool { return a.Date.Before(b.Date) }
	case SortByMonth:
		return stringLess(func(e Event) string { return e.Month })
	case SortByTechnician:
		return stringLess(func(e Event) string { return e.Technician })
	case SortByCategory:
		return stringLess(func(e Event) string { return e.Category })
	case SortByDossier:
		return stringLess(func(e Event) string { return e.Dossier })
	case SortByStatus:
		return stringLess(Event.Status)
	case SortByUsers:
		return func(a, b Event) bool { return a.Users < b.Users }
	case SortByDuration:
		return func(a, b Event) bool { return a.Duration < b.Duration }
	case SortByNetCapacity:
		return func(a, b Event) bool { return a.NetCapacity < b.NetCapacity }
	case SortByNetNeed:
		return func(a, b Event) bool { return a.NetNeed < b.NetNeed }
	default:
		return nil
	}
}

func stringLess(field func(Event) string) func(a, b Event) bool {
	return func(a, b Event) bool {
		return strings.ToLower(field(a)) < strings.ToLower(field(b))
	}
}
