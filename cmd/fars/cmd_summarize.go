package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <years...>",
	Short: "Print a month-by-year table of accident counts",
	Long: `Summarize loads each requested year, counts accidents per month, and
prints the pivoted table. Years whose files are missing or unreadable
are skipped with a warning; they contribute no column.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		years, err := parseYearList(args)
		if err != nil {
			return err
		}

		summary, err := appLoader.SummarizeYears(years)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), summary.String())
		return nil
	},
}
