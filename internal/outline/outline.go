// Package outline supplies geographic outlines used as the base layer of
// accident maps. An outline is a set of polyline segments in
// longitude/latitude degrees; the renderer clips them to the data's
// bounding box.
package outline

// Point is a longitude/latitude vertex.
type Point struct {
	Lon float64
	Lat float64
}

// Provider yields the polyline segments of a named region's outline.
type Provider interface {
	Region() string
	Segments() [][]Point
}

// None is a Provider with no geometry; maps render points over a bare grid.
type None struct{}

func (None) Region() string      { return "" }
func (None) Segments() [][]Point { return nil }
