package fars

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
)

// Read loads one accident data file into a DataFrame. Relative filenames
// resolve against the loader's directory. The file must exist; an absent
// file yields a *FileNotFoundError carrying the requested name. Compressed
// files (.bz2, .gz) are decompressed transparently. The returned table
// keeps every column and the file's row order.
func (l *Loader) Read(filename string) (dataframe.DataFrame, error) {
	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.dir, filename)
	}

	if _, err := os.Stat(path); err != nil {
		return dataframe.DataFrame{}, &FileNotFoundError{Path: filename}
	}

	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	start := time.Now()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".bz2"):
		r = bzip2.NewReader(f)
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return dataframe.DataFrame{}, &ParseError{Path: filename, Err: err}
		}
		defer gz.Close()
		r = gz
	}

	df := dataframe.ReadCSV(r, dataframe.HasHeader(true), dataframe.DetectTypes(true))
	if df.Err != nil {
		return dataframe.DataFrame{}, &ParseError{Path: filename, Err: df.Err}
	}

	l.metrics.FilesLoaded.Inc()
	l.metrics.RowsLoaded.Add(float64(df.Nrow()))
	l.metrics.LoadDuration.Observe(time.Since(start).Seconds())

	l.logger.Debug("loaded accident file", "file", filename, "rows", df.Nrow(), "cols", df.Ncol())
	return df, nil
}

// hasColumn reports whether the table carries a column with this name.
func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
