package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/imelnikov/settlements/internal/logger"
	"github.com/imelnikov/settlements/internal/scraper"
	"github.com/imelnikov/settlements/internal/settlement"
	"github.com/imelnikov/settlements/internal/xlsx"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// DefaultOut is where the spreadsheet lands unless --out overrides it.
const DefaultOut = "data/settlements.xlsx"

var (
	flagOut     string
	flagHTMLDir string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settlements",
		Short: "Export the settlements of Krasnodar Krai and Adygea to a spreadsheet",
		Long: `Extracts the full settlement list (region, district, settlement) from the
Russian Wikipedia pages for Krasnodar Krai and the Republic of Adygea and
writes it to a single xlsx sheet. With --html-dir the pages are read from
pre-fetched files instead of the network.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := logger.LevelWarn
			if flagVerbose {
				level = logger.LevelDebug
			}
			logger.SetDefault(logger.New(level, os.Stderr))

			return run(cmd.OutOrStdout(), scraper.Sources, flagOut, flagHTMLDir)
		},
	}

	cmd.Flags().StringVar(&flagOut, "out", DefaultOut, "Output spreadsheet path")
	cmd.Flags().StringVar(&flagHTMLDir, "html-dir", "", "Directory of pre-fetched pages (offline mode)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// run harvests every source in order, merges the records and writes the
// spreadsheet. The output file is only created once at least one record
// survived normalization.
func run(out io.Writer, sources []scraper.Source, outPath, htmlDir string) error {
	s := scraper.New(htmlDir)

	var sets [][]settlement.Record
	for _, src := range sources {
		logger.Info("harvesting region", logger.Fields{
			"region": src.Region,
			"url":    src.URL,
		})

		records, err := s.HarvestRegion(src)
		if err != nil {
			return fmt.Errorf("harvesting %s: %w", src.Region, err)
		}

		logger.Info("region harvested", logger.Fields{
			"region":  src.Region,
			"records": len(records),
		})
		sets = append(sets, records)
	}

	merged := settlement.Merge(sets...)
	if len(merged) == 0 {
		return settlement.ErrNoRecords
	}

	if err := xlsx.Write(outPath, merged); err != nil {
		return fmt.Errorf("writing spreadsheet: %w", err)
	}

	fmt.Fprintf(out, "Done: %s (%d rows)\n", outPath, len(merged))
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
