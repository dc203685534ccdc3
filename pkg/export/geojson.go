package export

import (
	"fmt"
	"io"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/philipparndt/gosurvey/pkg/points"
)

// CircleVertices is the number of vertices of a circle written as a polygon
const CircleVertices = 72

func stationFeature(st points.Station) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{st.Point.E, st.Point.N})
	if st.ID != "" {
		f.Properties["id"] = st.ID
	}
	// JSON has no NaN, a missing height is left out
	if st.Point.HasHeight() {
		f.Properties["h"] = st.Point.H
	}
	return f
}

// StationsFeatureCollection converts stations to point features in the
// project grid. Coordinates are not reprojected.
func StationsFeatureCollection(stations []points.Station) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, st := range stations {
		fc.Append(stationFeature(st))
	}
	return fc
}

// CircleFeatureCollection converts a fitted circle to a polygon feature and
// a center point feature, followed by the measured stations.
func CircleFeatureCollection(c geometry.Circle2D, stations []points.Station) *geojson.FeatureCollection {
	fc := StationsFeatureCollection(stations)

	ring := make(orb.Ring, 0, CircleVertices+1)
	for i := 0; i < CircleVertices; i++ {
		a := 2 * math.Pi * float64(i) / CircleVertices
		ring = append(ring, orb.Point{c.CX + c.R*math.Cos(a), c.CY + c.R*math.Sin(a)})
	}
	ring = append(ring, ring[0])

	circle := geojson.NewFeature(orb.Polygon{ring})
	circle.Properties["radius"] = c.R
	fc.Append(circle)

	center := geojson.NewFeature(orb.Point{c.CX, c.CY})
	center.Properties["id"] = "center"
	center.Properties["radius"] = c.R
	fc.Append(center)

	return fc
}

// WriteGeoJSON encodes a feature collection to w
func WriteGeoJSON(w io.Writer, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode GeoJSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write GeoJSON: %w", err)
	}
	return nil
}
