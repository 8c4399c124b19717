package fars

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_MissingFile(t *testing.T) {
	loader := newTestLoader(t, t.TempDir())

	_, err := loader.Read("accident_9999.csv.bz2")
	require.Error(t, err)

	var nf *FileNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "accident_9999.csv.bz2", nf.Path)
	assert.Contains(t, err.Error(), "file 'accident_9999.csv.bz2' does not exist")
}

func TestRead_Bzip2(t *testing.T) {
	dir := t.TempDir()
	name := writeAccidentFile(t, dir, 2013, [][]string{
		accidentRow(1, 1, -86.5, 32.4),
		accidentRow(1, 2, -86.9, 33.1),
		accidentRow(6, 2, -118.2, 34.0),
	})
	loader := newTestLoader(t, dir)

	df, err := loader.Read(name)
	require.NoError(t, err)
	assert.Equal(t, 3, df.Nrow())
	assert.Equal(t, len(accidentHeader), df.Ncol())
	assert.Contains(t, df.Names(), "MONTH")
	assert.Contains(t, df.Names(), "LONGITUD")

	assert.Equal(t, float64(1), testutil.ToFloat64(loader.metrics.FilesLoaded))
	assert.Equal(t, float64(3), testutil.ToFloat64(loader.metrics.RowsLoaded))
}

func TestRead_PlainCSV(t *testing.T) {
	dir := t.TempDir()
	raw := encodeCSV(t, [][]string{accidentHeader, accidentRow(1, 3, -86.5, 32.4)})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "accident_2013.csv"), raw, 0o644))
	loader := newTestLoader(t, dir)

	df, err := loader.Read("accident_2013.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, df.Nrow())
}

func TestRead_Gzip(t *testing.T) {
	dir := t.TempDir()
	raw := encodeCSV(t, [][]string{accidentHeader, accidentRow(1, 7, -86.5, 32.4), accidentRow(1, 8, -87.0, 32.9)})

	f, err := os.Create(filepath.Join(dir, "accident_2013.csv.gz"))
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write(raw)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	loader := newTestLoader(t, dir)
	df, err := loader.Read("accident_2013.csv.gz")
	require.NoError(t, err)
	assert.Equal(t, 2, df.Nrow())
}

func TestRead_AbsolutePath(t *testing.T) {
	dir := t.TempDir()
	name := writeAccidentFile(t, dir, 2014, [][]string{accidentRow(1, 1, -86.5, 32.4)})

	// Loader rooted elsewhere still resolves absolute paths as given.
	loader := newTestLoader(t, t.TempDir())
	df, err := loader.Read(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, 1, df.Nrow())
}

func TestRead_MalformedCSV(t *testing.T) {
	dir := t.TempDir()
	bad := []byte("STATE,MONTH\n1,2,surplus,fields\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "accident_2013.csv"), bad, 0o644))
	loader := newTestLoader(t, dir)

	_, err := loader.Read("accident_2013.csv")
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "accident_2013.csv", pe.Path)
	assert.NotNil(t, errors.Unwrap(pe))
}
