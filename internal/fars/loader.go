package fars

import (
	"log/slog"

	"github.com/couchcryptid/fars-analysis/internal/observability"
)

// Loader reads accident data files from a single directory.
type Loader struct {
	dir     string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLoader creates a Loader rooted at dir with the given observability.
func NewLoader(dir string, logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{
		dir:     dir,
		logger:  logger,
		metrics: metrics,
	}
}

// Dir returns the directory the loader resolves relative filenames against.
func (l *Loader) Dir() string { return l.dir }
