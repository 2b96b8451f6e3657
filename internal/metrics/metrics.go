// Package metrics exposes Prometheus instrumentation for the reconciliation
// pipeline. All collectors live on a dedicated registry so embedding
// processes never collide with the default one.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the application's Prometheus registry.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// RecordsIngested counts raw records received per logical dataset.
var RecordsIngested = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "opsrecon",
	Name:      "records_ingested_total",
	Help:      "Raw records received from the query layer, by dataset",
}, []string{"dataset"})

// RecordsRejected counts dropped records by rejection reason.
var RecordsRejected = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "opsrecon",
	Name:      "records_rejected_total",
	Help:      "Raw records dropped during event building, by reason",
}, []string{"reason"})

// EventsBuilt counts events that survived normalization, by partition.
var EventsBuilt = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "opsrecon",
	Name:      "events_built_total",
	Help:      "Normalized events built from raw records, by partition",
}, []string{"partition"})

// EventsAbsorbed counts technical events credited against scheduled capacity.
var EventsAbsorbed = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "opsrecon",
	Name:      "events_absorbed_total",
	Help:      "Technical events absorbed by overlapping scheduled capacity",
})

// PipelineFailures counts reconciliation runs that degraded to an empty
// result after an unexpected panic.
var PipelineFailures = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "opsrecon",
	Name:      "pipeline_failures_total",
	Help:      "Reconciliation runs that returned an empty result after an internal failure",
})

// ReconcileDuration tracks wall time of full reconciliation runs.
var ReconcileDuration = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "opsrecon",
	Name:      "reconcile_duration_seconds",
	Help:      "Time taken by a full normalize-build-absorb-aggregate run",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
})
