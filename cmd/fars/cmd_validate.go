package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/fars-analysis/internal/fars"
)

// requiredColumns are the columns the summarize and map pipelines read.
var requiredColumns = []string{"MONTH", "STATE", "LONGITUD", "LATITUDE"}

// phase tracks pass/fail for one year's checks.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

var validateCmd = &cobra.Command{
	Use:   "validate <years...>",
	Short: "Check accident data files for required columns and sane values",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		years, err := parseYearList(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "=== Accident Data Validation ===")
		fmt.Fprintln(out)

		phases := make([]*phase, 0, len(years))
		for _, year := range years {
			phases = append(phases, validateYear(year))
		}

		allPassed := true
		for _, p := range phases {
			status := "\033[32mPASS\033[0m"
			if !p.passed() {
				status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
				allPassed = false
			}
			fmt.Fprintf(out, "  %-28s %s\n", p.name, status)
		}

		for _, p := range phases {
			if p.passed() {
				continue
			}
			fmt.Fprintf(out, "\n--- %s ---\n", p.name)
			for i, e := range p.errors {
				fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
			}
		}

		if !allPassed {
			return errors.New("validation failed")
		}
		fmt.Fprintln(out, "\nAll validations passed.")
		return nil
	},
}

func validateYear(year int) *phase {
	filename := fars.MakeFilename(year)
	p := &phase{name: filename}

	df, err := appLoader.Read(filename)
	if err != nil {
		p.errorf("%v", err)
		return p
	}

	names := map[string]bool{}
	for _, n := range df.Names() {
		names[n] = true
	}
	for _, col := range requiredColumns {
		if !names[col] {
			p.errorf("missing required column %q", col)
		}
	}
	if df.Nrow() == 0 {
		p.errorf("no data rows")
	}
	if !p.passed() {
		return p
	}

	months, err := df.Col("MONTH").Int()
	if err != nil {
		p.errorf("MONTH column is not numeric: %v", err)
		return p
	}
	outOfRange := 0
	for _, m := range months {
		if m < 1 || m > 12 {
			outOfRange++
		}
	}
	if outOfRange > 0 {
		p.errorf("%d rows with MONTH outside 1..12", outOfRange)
	}

	coords := fars.SanitizeCoords(df.Col("LONGITUD").Float(), df.Col("LATITUDE").Float())
	if len(coords) == 0 {
		p.errorf("no usable coordinates (all rows sentinel or non-numeric)")
	}

	return p
}
