// Package report renders reconciliation results for terminal consumption:
// a plain-text summary table and a Mermaid chart of the monthly series.
package report

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"opsrecon/internal/recon"
)

// Summary renders the headline stats and the event listing as a text table.
func Summary(res recon.Result, technician string) string {
	var sb strings.Builder

	if technician == "" {
		technician = recon.AllTechnicians
	}
	fmt.Fprintf(&sb, "Technician: %s\n", technician)
	fmt.Fprintf(&sb, "Net need: %.2f h | Net capacity: %.2f h | Coverage: %.1f%%\n\n",
		res.Stats.TotalNeed, res.Stats.TotalCapacity, res.Stats.CoverageRatio)

	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTECHNICIAN\tCATEGORY\tDOSSIER\tHOURS\tNEED\tCAPACITY\tSTATUS")
	for _, e := range res.Events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%s\n",
			e.Day, e.Technician, e.Category, e.Dossier,
			e.Duration, e.NetNeed, e.NetCapacity, e.Status())
	}
	w.Flush()

	return sb.String()
}

// MonthlyChart renders the month series as a Mermaid xychart with one bar
// series for capacity and one line series for need. Returns the empty string
// for an empty series.
func MonthlyChart(series []recon.MonthBucket) string {
	if len(series) == 0 {
		return ""
	}

	var labels, needs, capacities []string
	maxY := 0.0
	for _, b := range series {
		labels = append(labels, fmt.Sprintf("%q", b.Label))
		needs = append(needs, fmt.Sprintf("%.1f", b.Need))
		capacities = append(capacities, fmt.Sprintf("%.1f", b.Capacity))
		maxY = math.Max(maxY, math.Max(b.Need, b.Capacity))
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Net need vs net capacity per month\"\n")
	fmt.Fprintf(&sb, "    x-axis [%s]\n", strings.Join(labels, ", "))
	fmt.Fprintf(&sb, "    y-axis \"Hours\" 0 --> %d\n", int(math.Ceil(maxY*1.2))+1)
	fmt.Fprintf(&sb, "    bar [%s]\n", strings.Join(capacities, ", "))
	fmt.Fprintf(&sb, "    line [%s]\n", strings.Join(needs, ", "))
	sb.WriteString("```")
	return sb.String()
}

// Diagnostics renders the pipeline's diagnostic entries one per line.
func Diagnostics(res recon.Result) string {
	if len(res.Diagnostics) == 0 {
		return ""
	}
	return "-- diagnostics --\n" + strings.Join(res.Diagnostics, "\n")
}
