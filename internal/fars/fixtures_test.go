package fars

import (
	"bytes"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fars-analysis/internal/observability"
)

var accidentHeader = []string{"STATE", "ST_CASE", "MONTH", "DAY", "HOUR", "LONGITUD", "LATITUDE"}

func newTestLoader(t *testing.T, dir string) *Loader {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLoader(dir, logger, observability.NewMetricsForTesting())
}

// newCapturingLoader returns a loader whose log output lands in the
// returned buffer, for asserting on warnings.
func newCapturingLoader(t *testing.T, dir string) (*Loader, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return NewLoader(dir, logger, observability.NewMetricsForTesting()), &buf
}

// accidentRow builds one data row in accidentHeader order.
func accidentRow(state, month int, lon, lat float64) []string {
	return []string{
		strconv.Itoa(state),
		strconv.Itoa(10000 + month),
		strconv.Itoa(month),
		"15",
		"12",
		strconv.FormatFloat(lon, 'f', 4, 64),
		strconv.FormatFloat(lat, 'f', 4, 64),
	}
}

func encodeCSV(t *testing.T, records [][]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, w.WriteAll(records))
	return buf.Bytes()
}

// writeAccidentFile writes accident_<year>.csv.bz2 into dir from the
// given data rows (header prepended) and returns its base name.
func writeAccidentFile(t *testing.T, dir string, year int, rows [][]string) string {
	t.Helper()
	name := MakeFilename(year)
	records := append([][]string{accidentHeader}, rows...)
	writeRawBzip2(t, dir, name, encodeCSV(t, records))
	return name
}

func writeRawBzip2(t *testing.T, dir, name string, raw []byte) {
	t.Helper()

	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{Level: bzip2.DefaultCompression})
	require.NoError(t, err)
	_, err = bz.Write(raw)
	require.NoError(t, err)
	require.NoError(t, bz.Close())
}
