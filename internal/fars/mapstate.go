package fars

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/couchcryptid/fars-analysis/internal/observability"
	"github.com/couchcryptid/fars-analysis/internal/outline"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Sentinel thresholds above which a coordinate means "location not
// recorded". FARS encodes unknown positions as 777.7777/888.8888/999.9999
// for longitude and 77.7777/88.8888/99.9999 for latitude.
const (
	lonSentinel = 900
	latSentinel = 90
)

// Coord is a longitude/latitude pair that survived sentinel removal.
type Coord struct {
	Lon float64
	Lat float64
}

// Box is a closed lon/lat bounding box.
type Box struct {
	MinLon, MaxLon float64
	MinLat, MaxLat float64
}

func (b Box) contains(p outline.Point) bool {
	return p.Lon >= b.MinLon && p.Lon <= b.MaxLon &&
		p.Lat >= b.MinLat && p.Lat <= b.MaxLat
}

// StateMapper renders per-state accident scatter maps.
type StateMapper struct {
	loader  *Loader
	outline outline.Provider
	plotDir string
	width   vg.Length
	height  vg.Length
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewStateMapper creates a StateMapper writing PNGs of the given size (in
// inches) into plotDir. The outline provider supplies the base geography;
// pass outline.None{} to plot points over a bare grid.
func NewStateMapper(loader *Loader, provider outline.Provider, plotDir string, widthIn, heightIn float64, logger *slog.Logger, metrics *observability.Metrics) *StateMapper {
	return &StateMapper{
		loader:  loader,
		outline: provider,
		plotDir: plotDir,
		width:   vg.Length(widthIn) * vg.Inch,
		height:  vg.Length(heightIn) * vg.Inch,
		logger:  logger,
		metrics: metrics,
	}
}

// MapState renders a scatter map of one state's accidents for one year
// and returns the path of the written PNG. The year's file must exist; a
// missing file is a fatal error here, unlike in batch loading. A state
// number absent from the loaded data yields *InvalidStateError. When
// nothing remains to plot, because the state has no rows or every row
// carries sentinel coordinates, MapState logs a notice and returns an
// empty path with nil error.
func (m *StateMapper) MapState(stateNum, year int) (string, error) {
	filename := MakeFilename(year)
	df, err := m.loader.Read(filename)
	if err != nil {
		return "", err
	}

	if err := validateState(df, filename, stateNum); err != nil {
		return "", err
	}

	sub := df.Filter(dataframe.F{Colname: "STATE", Comparator: series.Eq, Comparando: stateNum})
	if sub.Err != nil {
		return "", fmt.Errorf("filter state %d: %w", stateNum, sub.Err)
	}
	if sub.Nrow() == 0 {
		m.logger.Info("no accidents to plot", "state", stateNum, "year", year)
		return "", nil
	}

	coords := SanitizeCoords(sub.Col("LONGITUD").Float(), sub.Col("LATITUDE").Float())
	if len(coords) == 0 {
		m.logger.Info("no accidents to plot", "state", stateNum, "year", year)
		return "", nil
	}

	path := filepath.Join(m.plotDir, fmt.Sprintf("accident_map_%d_%d.png", stateNum, year))
	if err := m.render(coords, stateNum, year, path); err != nil {
		return "", err
	}

	m.metrics.PlotsRendered.Inc()
	m.logger.Info("rendered state map", "state", stateNum, "year", year, "points", len(coords), "path", path)
	return path, nil
}

func validateState(df dataframe.DataFrame, filename string, stateNum int) error {
	if !hasColumn(df, "STATE") {
		return &ParseError{Path: filename, Err: errors.New("missing STATE column")}
	}
	states, err := df.Col("STATE").Int()
	if err != nil {
		return fmt.Errorf("read STATE column: %w", err)
	}
	for _, s := range states {
		if s == stateNum {
			return nil
		}
	}
	return &InvalidStateError{State: stateNum}
}

// SanitizeCoords pairs up longitude and latitude columns, dropping rows
// whose coordinates are sentinels or not numeric. The result feeds both
// the bounding box and the rendered glyphs, so sentinel points never
// stretch the axes.
func SanitizeCoords(lons, lats []float64) []Coord {
	n := len(lons)
	if len(lats) < n {
		n = len(lats)
	}

	coords := make([]Coord, 0, n)
	for i := 0; i < n; i++ {
		lon, lat := lons[i], lats[i]
		if math.IsNaN(lon) || math.IsNaN(lat) {
			continue
		}
		if lon > lonSentinel || lat > latSentinel {
			continue
		}
		coords = append(coords, Coord{Lon: lon, Lat: lat})
	}
	return coords
}

// BoundingBox returns the min/max extent of the coordinates. A degenerate
// axis (single point, or all points collinear) is padded so the plot
// retains a visible range.
func BoundingBox(coords []Coord) Box {
	if len(coords) == 0 {
		return Box{}
	}

	b := Box{
		MinLon: coords[0].Lon, MaxLon: coords[0].Lon,
		MinLat: coords[0].Lat, MaxLat: coords[0].Lat,
	}
	for _, c := range coords[1:] {
		b.MinLon = math.Min(b.MinLon, c.Lon)
		b.MaxLon = math.Max(b.MaxLon, c.Lon)
		b.MinLat = math.Min(b.MinLat, c.Lat)
		b.MaxLat = math.Max(b.MaxLat, c.Lat)
	}

	if b.MinLon == b.MaxLon {
		b.MinLon -= 0.5
		b.MaxLon += 0.5
	}
	if b.MinLat == b.MaxLat {
		b.MinLat -= 0.5
		b.MaxLat += 0.5
	}
	return b
}

func (m *StateMapper) render(coords []Coord, stateNum, year int, path string) error {
	box := BoundingBox(coords)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Accidents in state %d, %d", stateNum, year)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.X.Min, p.X.Max = box.MinLon, box.MaxLon
	p.Y.Min, p.Y.Max = box.MinLat, box.MaxLat
	p.Add(plotter.NewGrid())

	for _, seg := range m.outline.Segments() {
		for _, run := range clipToBox(seg, box) {
			xys := make(plotter.XYs, len(run))
			for i, pt := range run {
				xys[i].X = pt.Lon
				xys[i].Y = pt.Lat
			}
			line, err := plotter.NewLine(xys)
			if err != nil {
				return fmt.Errorf("outline segment: %w", err)
			}
			line.Color = color.Gray{Y: 128}
			p.Add(line)
		}
	}

	xys := make(plotter.XYs, len(coords))
	for i, c := range coords {
		xys[i].X = c.Lon
		xys[i].Y = c.Lat
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("accident scatter: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Color = color.RGBA{R: 31, G: 63, B: 128, A: 255}
	p.Add(scatter)

	if err := p.Save(m.width, m.height, path); err != nil {
		return fmt.Errorf("save map %s: %w", path, err)
	}
	return nil
}

// clipToBox splits a polyline into the maximal runs of consecutive
// vertices inside the box. Runs shorter than two points draw nothing and
// are dropped.
func clipToBox(seg []outline.Point, box Box) [][]outline.Point {
	var runs [][]outline.Point
	var run []outline.Point
	for _, pt := range seg {
		if box.contains(pt) {
			run = append(run, pt)
			continue
		}
		if len(run) >= 2 {
			runs = append(runs, run)
		}
		run = nil
	}
	if len(run) >= 2 {
		runs = append(runs, run)
	}
	return runs
}
