// Command fars summarizes FARS accident data files and renders per-state
// accident location maps.
//
// Data files are yearly bzip2-compressed CSVs named accident_<year>.csv.bz2,
// resolved against DATA_DIR (or --data-dir).
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/fars-analysis/internal/config"
	"github.com/couchcryptid/fars-analysis/internal/fars"
	"github.com/couchcryptid/fars-analysis/internal/observability"
)

var (
	flagDataDir string
	flagPlotDir string

	appCfg     *config.Config
	appLogger  *slog.Logger
	appMetrics *observability.Metrics
	appLoader  *fars.Loader
)

var rootCmd = &cobra.Command{
	Use:   "fars",
	Short: "FARS accident data toolkit",
	Long: `fars loads yearly FARS accident files (accident_<year>.csv.bz2),
summarizes accident counts by month and year, and renders per-state
accident location maps.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}
		if flagPlotDir != "" {
			cfg.PlotDir = flagPlotDir
		}

		appCfg = cfg
		appLogger = observability.NewLogger(cfg)
		appMetrics = observability.NewMetrics()
		appLoader = fars.NewLoader(cfg.DataDir, appLogger, appMetrics)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory containing accident_<year>.csv.bz2 files (overrides DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&flagPlotDir, "plot-dir", "", "directory to write rendered maps into (overrides PLOT_DIR)")
	rootCmd.AddCommand(summarizeCmd, mapCmd, validateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseYearList accepts years as separate arguments or comma-separated
// lists, in any mix: "2013 2014" and "2013,2014" are equivalent.
func parseYearList(args []string) ([]int, error) {
	var years []int
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if part == "" {
				continue
			}
			y, err := fars.ParseYear(part)
			if err != nil {
				return nil, err
			}
			years = append(years, y)
		}
	}
	if len(years) == 0 {
		return nil, errors.New("at least one year is required")
	}
	return years, nil
}
