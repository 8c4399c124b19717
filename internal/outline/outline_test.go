package outline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeatureCollection = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "Alabama"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[-88.5, 30.2], [-84.9, 30.2], [-84.9, 35.0], [-88.5, 35.0], [-88.5, 30.2]]]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Texas"},
      "geometry": {
        "type": "LineString",
        "coordinates": [[-106.6, 31.8], [-93.5, 33.0]]
      }
    }
  ]
}`

func writeOutlineFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "outline.geojson")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromGeoJSON(t *testing.T) {
	path := writeOutlineFile(t, testFeatureCollection)

	t.Run("region match is case-insensitive", func(t *testing.T) {
		g, err := FromGeoJSON(path, "alabama")
		require.NoError(t, err)
		assert.Equal(t, "alabama", g.Region())

		segs := g.Segments()
		require.Len(t, segs, 1)
		assert.Len(t, segs[0], 5)
		assert.Equal(t, Point{Lon: -88.5, Lat: 30.2}, segs[0][0])
	})

	t.Run("empty region takes every feature", func(t *testing.T) {
		g, err := FromGeoJSON(path, "")
		require.NoError(t, err)
		assert.Len(t, g.Segments(), 2)
	})

	t.Run("unknown region", func(t *testing.T) {
		_, err := FromGeoJSON(path, "atlantis")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "atlantis")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FromGeoJSON(filepath.Join(t.TempDir(), "absent.geojson"), "usa")
		require.Error(t, err)
	})

	t.Run("malformed content", func(t *testing.T) {
		bad := writeOutlineFile(t, "{not geojson")
		_, err := FromGeoJSON(bad, "usa")
		require.Error(t, err)
	})
}

func TestNone(t *testing.T) {
	var p Provider = None{}
	assert.Empty(t, p.Region())
	assert.Nil(t, p.Segments())
}
