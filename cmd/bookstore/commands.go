package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bookstore/internal/catalog"
	"bookstore/internal/config"
	"bookstore/internal/seed"
)

// app carries state shared by every subcommand once the catalog is loaded.
type app struct {
	seedFile string
	asJSON   bool
	verbose  bool

	cfg     config.Config
	catalog *catalog.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "bookstore",
		Short:         "Query an in-memory book catalog loaded from a YAML seed file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.seedFile, "file", "f", "", "seed file (default $BOOKSTORE_SEED_FILE or books.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log catalog diagnostics to stderr")

	rootCmd.AddCommand(
		newStatsCmd(a),
		newSearchCmd(a),
		newExportCmd(a),
	)
	return rootCmd
}

func (a *app) load() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.seedFile == "" {
		a.seedFile = config.GetEnv("BOOKSTORE_SEED_FILE", "books.yaml")
	}

	opts := []catalog.Option{catalog.WithConfig(cfg)}
	if a.verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, catalog.WithLogger(logger))
	}
	a.catalog = catalog.New(opts...)

	report, err := seed.LoadFile(a.seedFile, a.catalog, cfg)
	if err != nil {
		return err
	}
	logRejections(a.seedFile, report)
	if a.verbose {
		log.Printf("loaded %d books from %s", report.Added, a.seedFile)
	}
	return nil
}

func logRejections(path string, report seed.Report) {
	for _, r := range report.Rejected {
		log.Printf("%s: skipped %s", path, r)
	}
}

func requireOneOf(flags map[string]bool) error {
	set := 0
	for _, on := range flags {
		if on {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("exactly one search criterion is required")
	}
	return nil
}
