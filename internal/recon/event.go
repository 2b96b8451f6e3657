package recon

import (
	"time"

	"opsrecon/internal/source"
)

// Sentinel technician identities. Unknown means the responsible field was
// empty or unreadable; Other means it held a name that matched no roster
// entry. AllTechnicians is the filter value that disables filtering.
const (
	UnknownTechnician = "Unknown"
	OtherTechnician   = "Other"
	AllTechnicians    = "All"
)

// Event is one normalized activity on the reconciled timeline. Scheduled
// events come from the back-office dataset and carry production capacity;
// technical events come from the support/migration dataset and carry work
// demand. NetCapacity is only meaningful on scheduled events, NetNeed,
// IsAbsorbed and AbsorbedBy only on technical ones.
type Event struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"-"`
	Day         string            `json:"date"`  // YYYY-MM-DD
	Month       string            `json:"month"` // YYYY-MM
	Technician  string            `json:"technician"`
	Category    string            `json:"category"` // raw free-text label, verbatim
	Dossier     string            `json:"dossier"`
	Users       int               `json:"users"`
	IsScheduled bool              `json:"isScheduled"`
	Duration    float64           `json:"duration"` // reported hours, 0 if unparseable
	TimeRange   *source.TimeRange `json:"timeRange,omitempty"`
	NetCapacity float64           `json:"netCapacity"`
	NetNeed     float64           `json:"netNeed"`
	IsAbsorbed  bool              `json:"isAbsorbed"`
	AbsorbedBy  string            `json:"absorbedBy,omitempty"` // absorbing event's category label
}

// Status labels for the per-event display field.
const (
	StatusCapacityIntact  = "Capacity intact"
	StatusCapacityReduced = "Capacity reduced"
	StatusAbsorbed        = "Absorbed"
	StatusOutstanding     = "Outstanding need"
)

// Status derives the display status of an event after absorption.
func (e Event) Status() string {
	if e.IsScheduled {
		if e.NetCapacity < e.Duration {
			return StatusCapacityReduced
		}
		return StatusCapacityIntact
	}
	if e.IsAbsorbed {
		return StatusAbsorbed
	}
	return StatusOutstanding
}
