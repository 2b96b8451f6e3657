package commands

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"opsrecon/internal/config"
	"opsrecon/internal/logging"
	"opsrecon/internal/metrics"
	"opsrecon/internal/recon"
	"opsrecon/internal/report"
	"opsrecon/internal/source"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose     bool
	technician  string
	sortKey     string
	sortDesc    bool
	showChart   bool
	showDiag    bool
	metricsAddr string

	cfg *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "opsrecon",
	Short: "opsrecon reconciles back-office capacity against support workload",
	Long: `opsrecon merges two independently reported activity logs - scheduled
back-office production slots and ad-hoc technical support/migration
interventions - into one timeline, credits overlapping scheduled capacity
against logged technical work, and reports net need, net capacity and
coverage per technician and per month.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("opsrecon starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if metricsAddr != "" {
			go serveMetrics(metricsAddr)
		}

		ctx := cmd.Context()
		store := source.NewStore(cfg.DataPath)

		scheduled, err := store.Fetch(ctx, cfg.ScheduledDataset)
		if err != nil {
			return err
		}
		technical, err := store.Fetch(ctx, cfg.TechnicalDataset)
		if err != nil {
			return err
		}

		res := recon.Reconcile(recon.Input{
			Scheduled:      scheduled,
			Technical:      technical,
			Roster:         cfg.Roster,
			Rules:          cfg.Rules,
			Technician:     technician,
			SortKey:        sortKey,
			SortDescending: sortDesc,
		})

		out := cmd.OutOrStdout()
		fmt.Fprint(out, report.Summary(res, technician))
		if showChart {
			fmt.Fprintln(out)
			fmt.Fprintln(out, report.MonthlyChart(res.Series))
		}
		if showDiag {
			fmt.Fprintln(out)
			fmt.Fprintln(out, report.Diagnostics(res))
		}
		return nil
	},
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	log.Info().Str("addr", addr).Msg("Metrics endpoint listening")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Msg("Metrics endpoint stopped")
	}
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().StringVarP(&technician, "technician", "t", recon.AllTechnicians, "filter events by canonical technician name")
	rootCmd.Flags().StringVar(&sortKey, "sort", recon.SortByDate, "sort key for the event listing")
	rootCmd.Flags().BoolVar(&sortDesc, "desc", false, "sort descending")
	rootCmd.Flags().BoolVar(&showChart, "chart", false, "print a Mermaid chart of the monthly series")
	rootCmd.Flags().BoolVar(&showDiag, "diagnostics", false, "print the pipeline diagnostic log")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "expose Prometheus metrics on this address (e.g. :9090)")
}
