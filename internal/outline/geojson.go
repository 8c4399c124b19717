package outline

import (
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSON is a Provider backed by a GeoJSON FeatureCollection on disk.
type GeoJSON struct {
	region   string
	segments [][]Point
}

// FromGeoJSON loads outline segments for a region from a GeoJSON file.
// When region is non-empty, only features whose "name" (or "NAME" or
// "region") property matches it case-insensitively contribute geometry;
// an empty region takes every feature. Polygon rings and line strings
// both become polyline segments.
func FromGeoJSON(path, region string) (*GeoJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read outline file: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode outline file %s: %w", path, err)
	}

	var segments [][]Point
	for _, f := range fc.Features {
		if region != "" && !matchesRegion(f, region) {
			continue
		}
		segments = append(segments, geometrySegments(f.Geometry)...)
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("no outline geometry for region %q in %s", region, path)
	}

	return &GeoJSON{region: region, segments: segments}, nil
}

func (g *GeoJSON) Region() string      { return g.region }
func (g *GeoJSON) Segments() [][]Point { return g.segments }

func matchesRegion(f *geojson.Feature, region string) bool {
	for _, key := range []string{"name", "NAME", "region"} {
		if v, ok := f.Properties[key].(string); ok && strings.EqualFold(v, region) {
			return true
		}
	}
	return false
}

func geometrySegments(g orb.Geometry) [][]Point {
	switch geom := g.(type) {
	case orb.LineString:
		return [][]Point{toPoints(geom)}
	case orb.MultiLineString:
		segs := make([][]Point, 0, len(geom))
		for _, ls := range geom {
			segs = append(segs, toPoints(orb.LineString(ls)))
		}
		return segs
	case orb.Ring:
		return [][]Point{toPoints(orb.LineString(geom))}
	case orb.Polygon:
		segs := make([][]Point, 0, len(geom))
		for _, ring := range geom {
			segs = append(segs, toPoints(orb.LineString(ring)))
		}
		return segs
	case orb.MultiPolygon:
		var segs [][]Point
		for _, poly := range geom {
			segs = append(segs, geometrySegments(orb.Polygon(poly))...)
		}
		return segs
	case orb.Collection:
		var segs [][]Point
		for _, sub := range geom {
			segs = append(segs, geometrySegments(sub)...)
		}
		return segs
	}
	return nil
}

func toPoints(ls orb.LineString) []Point {
	pts := make([]Point, len(ls))
	for i, p := range ls {
		pts[i] = Point{Lon: p.Lon(), Lat: p.Lat()}
	}
	return pts
}
