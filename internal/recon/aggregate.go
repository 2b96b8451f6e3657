package recon

import (
	"sort"
	"time"
)

// AggregateStats are the headline KPIs over a (possibly filtered) event list.
// CoverageRatio is capacity over need as a percentage, 0 whenever there is no
// outstanding need.
type AggregateStats struct {
	TotalNeed     float64 `json:"totalNeed"`
	TotalCapacity float64 `json:"totalCapacity"`
	CoverageRatio float64 `json:"coverageRatio"`
}

// MonthBucket is one point of the month-bucketed time series.
type MonthBucket struct {
	Month    string  `json:"month"` // YYYY-MM
	Label    string  `json:"label"` // display form, e.g. "Mar 2025"
	Need     float64 `json:"need"`
	Capacity float64 `json:"capacity"`
}

// FilterByTechnician returns the events belonging to the given technician.
// AllTechnicians (or the empty string) disables the filter and returns the
// input slice unchanged.
func FilterByTechnician(events []Event, technician string) []Event {
	if technician == "" || technician == AllTechnicians {
		return events
	}
	filtered := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Technician == technician {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Summarize sums net capacity over scheduled events and net need over
// technical events into the headline stats.
func Summarize(events []Event) AggregateStats {
	var stats AggregateStats
	for _, e := range events {
		if e.IsScheduled {
			stats.TotalCapacity += e.NetCapacity
		} else {
			stats.TotalNeed += e.NetNeed
		}
	}
	if stats.TotalNeed > 0 {
		stats.CoverageRatio = stats.TotalCapacity / stats.TotalNeed * 100
	}
	return stats
}

// MonthlySeries buckets events by month, summing net need and net capacity
// per bucket, ordered ascending by month.
func MonthlySeries(events []Event) []MonthBucket {
	byMonth := make(map[string]*MonthBucket)
	for _, e := range events {
		b, ok := byMonth[e.Month]
		if !ok {
			b = &MonthBucket{Month: e.Month, Label: monthLabel(e.Month)}
			byMonth[e.Month] = b
		}
		if e.IsScheduled {
			b.Capacity += e.NetCapacity
		} else {
			b.Need += e.NetNeed
		}
	}

	series := make([]MonthBucket, 0, len(byMonth))
	for _, b := range byMonth {
		series = append(series, *b)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Month < series[j].Month
	})
	return series
}

func monthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("Jan 2006")
}
