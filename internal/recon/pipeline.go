package recon

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"opsrecon/internal/metrics"
	"opsrecon/internal/source"
)

// Input is everything one reconciliation run consumes. The two record
// sequences come from the query layer; the roster and rule set come from
// configuration; Technician, SortKey and SortDescending reflect the caller's
// current view selection.
type Input struct {
	Scheduled []source.RawRecord
	Technical []source.RawRecord

	Roster []string
	Rules  []Rule

	Technician     string // roster name, or AllTechnicians
	SortKey        string // defaults to SortByDate
	SortDescending bool
}

// Result is the output of one reconciliation run. Diagnostics is an ordered
// human-readable trace for operator troubleshooting; its wording is not a
// contract.
type Result struct {
	Events      []Event        `json:"events"`
	Stats       AggregateStats `json:"stats"`
	Series      []MonthBucket  `json:"series"`
	Diagnostics []string       `json:"diagnostics"`
}

// Reconcile runs the full normalize, build, absorb, aggregate pipeline on
// in-memory inputs. It is a pure recomputation: every call builds a fresh
// event list, so concurrent calls never share state. Any unexpected panic is
// recovered here and degrades the run to an empty result with a diagnostic
// entry; no failure escapes to the caller.
func Reconcile(in Input) (res Result) {
	started := time.Now()
	defer func() {
		metrics.ReconcileDuration.Observe(time.Since(started).Seconds())
		if r := recover(); r != nil {
			metrics.PipelineFailures.Inc()
			log.Error().Interface("panic", r).Msg("Reconciliation failed, returning empty result")
			res = Result{Diagnostics: []string{fmt.Sprintf("reconciliation aborted: %v", r)}}
		}
	}()

	resolver := NewResolver(in.Roster)
	classifier := NewClassifier(in.Rules)

	fromBackoffice, schedDiag := buildDataset("backoffice", in.Scheduled, resolver, classifier)
	fromSupport, techDiag := buildDataset("support", in.Technical, resolver, classifier)

	res.Diagnostics = append(res.Diagnostics, schedDiag...)
	res.Diagnostics = append(res.Diagnostics, techDiag...)

	// Partition by classified keyword, not by source file: an export
	// occasionally carries rows belonging to the other log.
	var scheduled, technical []Event
	for _, e := range append(fromBackoffice, fromSupport...) {
		if e.IsScheduled {
			scheduled = append(scheduled, e)
		} else {
			technical = append(technical, e)
		}
	}

	Absorb(scheduled, technical)

	absorbed := 0
	for _, t := range technical {
		if t.IsAbsorbed {
			absorbed++
		}
	}
	metrics.EventsAbsorbed.Add(float64(absorbed))
	res.Diagnostics = append(res.Diagnostics,
		fmt.Sprintf("absorption: %d of %d technical events covered by scheduled capacity", absorbed, len(technical)))

	combined := make([]Event, 0, len(scheduled)+len(technical))
	combined = append(combined, scheduled...)
	combined = append(combined, technical...)

	filtered := FilterByTechnician(combined, in.Technician)
	if in.Technician != "" && in.Technician != AllTechnicians {
		res.Diagnostics = append(res.Diagnostics,
			fmt.Sprintf("filter: technician %q keeps %d of %d events", in.Technician, len(filtered), len(combined)))
	}

	res.Stats = Summarize(filtered)
	res.Series = MonthlySeries(filtered)

	sortKey := in.SortKey
	if sortKey == "" {
		sortKey = SortByDate
	}
	SortEvents(filtered, sortKey, in.SortDescending)
	res.Events = filtered

	log.Info().
		Int("events", len(res.Events)).
		Float64("totalNeed", res.Stats.TotalNeed).
		Float64("totalCapacity", res.Stats.TotalCapacity).
		Float64("coverageRatio", res.Stats.CoverageRatio).
		Msg("Reconciliation complete")

	return res
}

// buildDataset converts one raw dataset into events, emitting diagnostic
// entries and metrics along the way.
func buildDataset(name string, records []source.RawRecord, resolver *Resolver, classifier *Classifier) ([]Event, []string) {
	metrics.RecordsIngested.WithLabelValues(name).Add(float64(len(records)))

	builder := NewBuilder(name, resolver, classifier)
	events := make([]Event, 0, len(records))
	for _, rec := range records {
		e, ok := builder.Build(rec)
		if !ok {
			continue
		}
		events = append(events, e)
	}

	stats := builder.Stats()
	metrics.RecordsRejected.WithLabelValues("irrelevant").Add(float64(stats.RejectedIrrelevant))
	metrics.RecordsRejected.WithLabelValues("no_date").Add(float64(stats.RejectedNoDate))

	scheduledCount, technicalCount := 0, 0
	for _, e := range events {
		if e.IsScheduled {
			scheduledCount++
		} else {
			technicalCount++
		}
	}
	metrics.EventsBuilt.WithLabelValues("scheduled").Add(float64(scheduledCount))
	metrics.EventsBuilt.WithLabelValues("technical").Add(float64(technicalCount))

	diag := []string{
		fmt.Sprintf("dataset %s: %d records, %d events kept, %d irrelevant, %d without date",
			name, len(records), stats.Kept, stats.RejectedIrrelevant, stats.RejectedNoDate),
	}
	concerns := make([]string, 0, len(stats.DetectedFields))
	for concern := range stats.DetectedFields {
		concerns = append(concerns, concern)
	}
	sort.Strings(concerns)
	for _, concern := range concerns {
		diag = append(diag, fmt.Sprintf("dataset %s: %s field detected as %q", name, concern, stats.DetectedFields[concern]))
	}

	return events, diag
}
