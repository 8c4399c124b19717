package fars

import (
	"errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// YearResult is one slot of a batch load: either a two-column
// (MONTH, year) table or the error that prevented it, never both.
type YearResult struct {
	Year  int
	Table *dataframe.DataFrame
	Err   error
}

// Loaded reports whether this slot carries a table.
func (r YearResult) Loaded() bool { return r.Table != nil }

// ReadYears loads one (MONTH, year) table per requested year, preserving
// input order. A year that fails to load (missing file, malformed
// content) is logged as a warning and left as an absent slot; the rest
// of the batch is unaffected.
func (l *Loader) ReadYears(years []int) []YearResult {
	results := make([]YearResult, len(years))
	for i, year := range years {
		results[i] = YearResult{Year: year}

		table, err := l.readYear(year)
		if err != nil {
			l.logger.Warn("invalid year", "year", year, "error", err)
			l.metrics.LoadFailures.Inc()
			results[i].Err = err
			continue
		}
		results[i].Table = table
	}
	return results
}

func (l *Loader) readYear(year int) (*dataframe.DataFrame, error) {
	filename := MakeFilename(year)
	df, err := l.Read(filename)
	if err != nil {
		return nil, err
	}
	if !hasColumn(df, "MONTH") {
		return nil, &ParseError{Path: filename, Err: errors.New("missing MONTH column")}
	}

	yearCol := make([]int, df.Nrow())
	for i := range yearCol {
		yearCol[i] = year
	}

	out := df.
		Mutate(series.New(yearCol, series.Int, "year")).
		Select([]string{"MONTH", "year"})
	if out.Err != nil {
		return nil, &ParseError{Path: filename, Err: out.Err}
	}
	return &out, nil
}
