package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/fars-analysis/internal/config"
	"github.com/couchcryptid/fars-analysis/internal/fars"
	"github.com/couchcryptid/fars-analysis/internal/outline"
)

var (
	mapStateNum int
	mapYear     int
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Render a scatter map of one state's accidents for one year",
	Long: `Map loads one year's accident file, filters it to the given FIPS state
code, and writes a PNG scatter of accident locations into the plot
directory. Accidents with unrecorded coordinates are left out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := buildOutline(appCfg)
		if err != nil {
			return err
		}

		mapper := fars.NewStateMapper(
			appLoader, provider, appCfg.PlotDir,
			appCfg.PlotWidthIn, appCfg.PlotHeightIn,
			appLogger, appMetrics,
		)

		path, err := mapper.MapState(mapStateNum, mapYear)
		if err != nil {
			return err
		}
		if path == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "no accidents to plot")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	mapCmd.Flags().IntVar(&mapStateNum, "state", 0, "FIPS state code to map")
	mapCmd.Flags().IntVar(&mapYear, "year", 0, "year to map")
	_ = mapCmd.MarkFlagRequired("state")
	_ = mapCmd.MarkFlagRequired("year")
}

func buildOutline(cfg *config.Config) (outline.Provider, error) {
	if cfg.OutlineFile == "" {
		return outline.None{}, nil
	}
	return outline.FromGeoJSON(cfg.OutlineFile, cfg.OutlineRegion)
}
