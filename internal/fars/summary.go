package fars

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Summary is a month-by-year pivot of accident counts. A (month, year)
// cell with no observed rows stays absent rather than zero; callers that
// need zeros can treat the missing cells themselves.
type Summary struct {
	Months      []int // ascending, only months observed in at least one year
	Years       []int // ascending, only years that loaded successfully
	GeneratedAt time.Time

	counts map[monthYear]int
}

type monthYear struct {
	month int
	year  int
}

// Count returns the accident count for (month, year) and whether that
// cell was observed at all.
func (s *Summary) Count(month, year int) (int, bool) {
	n, ok := s.counts[monthYear{month: month, year: year}]
	return n, ok
}

// Empty reports whether the summary holds no data at all, which happens
// when every year in the batch failed to load.
func (s *Summary) Empty() bool { return len(s.counts) == 0 }

// DataFrame renders the pivot as a gota table: a MONTH column plus one
// float column per year, with NaN marking absent cells.
func (s *Summary) DataFrame() dataframe.DataFrame {
	if s.Empty() {
		return dataframe.New(series.New([]int{}, series.Int, "MONTH"))
	}

	cols := make([]series.Series, 0, len(s.Years)+1)
	cols = append(cols, series.New(s.Months, series.Int, "MONTH"))
	for _, year := range s.Years {
		vals := make([]float64, len(s.Months))
		for i, month := range s.Months {
			if n, ok := s.Count(month, year); ok {
				vals[i] = float64(n)
			} else {
				vals[i] = math.NaN()
			}
		}
		cols = append(cols, series.New(vals, series.Float, fmt.Sprintf("%d", year)))
	}
	return dataframe.New(cols...)
}

// String renders the pivot as an aligned text table with "NA" for absent
// cells, suitable for terminal output.
func (s *Summary) String() string {
	if s.Empty() {
		return "(no data)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%5s", "MONTH")
	for _, year := range s.Years {
		fmt.Fprintf(&b, "  %6d", year)
	}
	b.WriteByte('\n')

	for _, month := range s.Months {
		fmt.Fprintf(&b, "%5d", month)
		for _, year := range s.Years {
			if n, ok := s.Count(month, year); ok {
				fmt.Fprintf(&b, "  %6d", n)
			} else {
				fmt.Fprintf(&b, "  %6s", "NA")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// SummarizeYears loads the given years, discards the ones that failed,
// and pivots accident counts into a month-by-year table. Duplicate years
// are collapsed to their first occurrence with a warning; feeding the
// same year twice would otherwise double-count every month. If every
// year fails to load the result is an empty summary and a nil error;
// the per-year warnings have already been emitted.
func (l *Loader) SummarizeYears(years []int) (*Summary, error) {
	years = l.dedupYears(years)
	results := l.ReadYears(years)

	summary := &Summary{
		GeneratedAt: clock.Now(),
		counts:      map[monthYear]int{},
	}

	var combined dataframe.DataFrame
	have := false
	for _, res := range results {
		if !res.Loaded() {
			continue
		}
		if !have {
			combined = res.Table.Copy()
			have = true
			continue
		}
		combined = combined.RBind(*res.Table)
	}
	if !have {
		return summary, nil
	}
	if combined.Err != nil {
		return nil, fmt.Errorf("combine yearly tables: %w", combined.Err)
	}

	grouped := combined.GroupBy("year", "MONTH")
	if grouped.Err != nil {
		return nil, fmt.Errorf("group by month and year: %w", grouped.Err)
	}
	agg := grouped.Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_COUNT},
		[]string{"MONTH"},
	)
	if agg.Err != nil {
		return nil, fmt.Errorf("count accident rows: %w", agg.Err)
	}

	months, err := agg.Col("MONTH").Int()
	if err != nil {
		return nil, fmt.Errorf("read MONTH groups: %w", err)
	}
	groupYears, err := agg.Col("year").Int()
	if err != nil {
		return nil, fmt.Errorf("read year groups: %w", err)
	}
	counts := agg.Col("MONTH_COUNT").Float()

	monthSet := map[int]bool{}
	yearSet := map[int]bool{}
	for i := range months {
		summary.counts[monthYear{month: months[i], year: groupYears[i]}] = int(counts[i])
		monthSet[months[i]] = true
		yearSet[groupYears[i]] = true
	}
	summary.Months = sortedKeys(monthSet)
	summary.Years = sortedKeys(yearSet)

	l.metrics.SummariesBuilt.Inc()
	return summary, nil
}

func (l *Loader) dedupYears(years []int) []int {
	seen := make(map[int]bool, len(years))
	out := make([]int, 0, len(years))
	for _, y := range years {
		if seen[y] {
			l.logger.Warn("duplicate year in batch, keeping first occurrence", "year", y)
			continue
		}
		seen[y] = true
		out = append(out, y)
	}
	return out
}

func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
