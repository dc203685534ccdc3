// Package points reads survey point lists and merges observations of the
// same stations.
package points

import (
	"github.com/philipparndt/gosurvey/pkg/geometry"
)

// Station is a surveyed point. An empty ID marks an anonymous point.
type Station struct {
	ID    string
	Point geometry.Vector3
}

// PointSet is an ordered list of stations read from one source
type PointSet struct {
	Name     string
	Stations []Station
}

// NewPointSet creates an empty point set
func NewPointSet(name string) *PointSet {
	return &PointSet{
		Name:     name,
		Stations: make([]Station, 0),
	}
}

// Add appends a station
func (s *PointSet) Add(station Station) {
	s.Stations = append(s.Stations, station)
}

// Len returns the number of stations
func (s *PointSet) Len() int {
	return len(s.Stations)
}

// Points returns the coordinates in file order
func (s *PointSet) Points() []geometry.Vector3 {
	pts := make([]geometry.Vector3, len(s.Stations))
	for i, st := range s.Stations {
		pts[i] = st.Point
	}
	return pts
}

// PlanPoints returns the E/N coordinates in file order
func (s *PointSet) PlanPoints() []geometry.Point2D {
	return geometry.PlanPoints(s.Points())
}

// AllHaveHeights reports whether every station carries a height
func (s *PointSet) AllHaveHeights() bool {
	for _, st := range s.Stations {
		if !st.Point.HasHeight() {
			return false
		}
	}
	return true
}
