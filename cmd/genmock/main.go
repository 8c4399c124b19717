// Command genmock generates synthetic accident_<year>.csv.bz2 fixtures
// for the fars summarize/map/validate commands. Output is deterministic
// for a given seed so downstream assertions stay stable.
//
// Usage:
//
//	go run ./cmd/genmock -out-dir data/mock -years 2013,2014,2015
package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"

	"github.com/couchcryptid/fars-analysis/internal/fars"
)

// Continental US bounding box used for generated coordinates.
const (
	minLon, maxLon = -124.7, -67.0
	minLat, maxLat = 25.1, 49.4
)

// Sentinel coordinates marking "location not recorded" rows.
const (
	sentinelLon = 999.9999
	sentinelLat = 99.9999
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out-dir", "", "directory to write accident_<year>.csv.bz2 files into")
	yearsFlag := flag.String("years", "2013,2014,2015", "comma-separated years to generate")
	statesFlag := flag.String("states", "1,6,48", "comma-separated FIPS state codes to spread rows across")
	rowsPerMonth := flag.Int("rows-per-month", 20, "base number of rows per month")
	sentinelEvery := flag.Int("sentinel-every", 10, "every Nth row gets sentinel coordinates (0 disables)")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *outDir == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out-dir")
	}

	years, err := parseInts(*yearsFlag)
	if err != nil {
		return fmt.Errorf("parsing -years: %w", err)
	}
	states, err := parseInts(*statesFlag)
	if err != nil {
		return fmt.Errorf("parsing -states: %w", err)
	}
	if len(years) == 0 || len(states) == 0 {
		return fmt.Errorf("-years and -states must be non-empty")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed))
	for _, year := range years {
		path := filepath.Join(*outDir, fars.MakeFilename(year))
		rows, err := writeYear(path, year, states, *rowsPerMonth, *sentinelEvery, rng)
		if err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		log.Printf("%s: %d rows", path, rows)
	}
	return nil
}

func writeYear(path string, year int, states []int, rowsPerMonth, sentinelEvery int, rng *rand.Rand) (int, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"STATE", "ST_CASE", "MONTH", "DAY", "HOUR", "LONGITUD", "LATITUDE"}); err != nil {
		return 0, err
	}

	rows := 0
	caseNum := year * 100000
	for month := 1; month <= 12; month++ {
		// Vary per-month counts a little so the pivot is not flat.
		n := rowsPerMonth + month%3
		for i := 0; i < n; i++ {
			rows++
			caseNum++

			state := states[rng.Intn(len(states))]
			lon := minLon + rng.Float64()*(maxLon-minLon)
			lat := minLat + rng.Float64()*(maxLat-minLat)
			if sentinelEvery > 0 && rows%sentinelEvery == 0 {
				lon, lat = sentinelLon, sentinelLat
			}

			rec := []string{
				strconv.Itoa(state),
				strconv.Itoa(caseNum),
				strconv.Itoa(month),
				strconv.Itoa(1 + rng.Intn(28)),
				strconv.Itoa(rng.Intn(24)),
				fmt.Sprintf("%.4f", lon),
				fmt.Sprintf("%.4f", lat),
			}
			if err := w.Write(rec); err != nil {
				return 0, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{Level: bzip2.DefaultCompression})
	if err != nil {
		return 0, err
	}
	if _, err := bz.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	if err := bz.Close(); err != nil {
		return 0, err
	}
	return rows, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
