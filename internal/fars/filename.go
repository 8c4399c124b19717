package fars

import (
	"fmt"
	"strconv"
	"strings"
)

// MakeFilename returns the canonical data file name for a year:
// accident_<year>.csv.bz2. Deterministic; distinct years map to
// distinct names.
func MakeFilename(year int) string {
	return fmt.Sprintf("accident_%d.csv.bz2", year)
}

// ParseYear coerces a year given as text to an integer. Fractional input
// truncates toward zero ("2020.7" -> 2020); year lists pasted from
// spreadsheets sometimes carry decimal noise and the truncation is
// accepted silently.
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return int(f), nil
}
