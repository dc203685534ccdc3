// Package analysis summarizes point sets and formats results for output.
package analysis

import (
	"math"
	"sort"

	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/philipparndt/gosurvey/pkg/points"
)

// Spacing is the plan distance between two stations of a set
type Spacing struct {
	From, To int // Station indices
	Distance float64
}

// Summary describes the extent and spacing of a point set
type Summary struct {
	Count      int
	WithHeight int
	Min, Max   geometry.Vector3 // H is NaN when no station has a height
	Centroid   geometry.Vector3
	MinSpacing Spacing
	MaxSpacing Spacing
}

// AnalyzeStations computes the extent, centroid and closest and farthest
// plan spacing of a set. Spacings are zero for fewer than two stations.
func AnalyzeStations(set *points.PointSet) Summary {
	summary := Summary{Count: set.Len()}
	if summary.Count == 0 {
		return summary
	}

	summary.Min = geometry.NewVector3(math.Inf(1), math.Inf(1), math.Inf(1))
	summary.Max = geometry.NewVector3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	var withHeight []geometry.Vector3
	for _, st := range set.Stations {
		p := st.Point
		summary.Min.E = math.Min(summary.Min.E, p.E)
		summary.Min.N = math.Min(summary.Min.N, p.N)
		summary.Max.E = math.Max(summary.Max.E, p.E)
		summary.Max.N = math.Max(summary.Max.N, p.N)
		if p.HasHeight() {
			summary.Min.H = math.Min(summary.Min.H, p.H)
			summary.Max.H = math.Max(summary.Max.H, p.H)
			withHeight = append(withHeight, p)
		}
	}
	summary.WithHeight = len(withHeight)
	if summary.WithHeight == 0 {
		summary.Min.H, summary.Max.H = math.NaN(), math.NaN()
	}

	plan := geometry.Centroid(set.Points())
	summary.Centroid = geometry.NewVector2(plan.E, plan.N)
	if len(withHeight) > 0 {
		summary.Centroid.H = geometry.Centroid(withHeight).H
	}

	spacings := AllSpacings(set)
	if len(spacings) > 0 {
		summary.MinSpacing = spacings[0]
		summary.MaxSpacing = spacings[len(spacings)-1]
	}
	return summary
}

// AllSpacings returns the plan distance of every station pair, shortest first
func AllSpacings(set *points.PointSet) []Spacing {
	var spacings []Spacing
	for i := 0; i < set.Len(); i++ {
		for j := i + 1; j < set.Len(); j++ {
			d := set.Stations[i].Point.Sub(set.Stations[j].Point).Horizontal()
			spacings = append(spacings, Spacing{From: i, To: j, Distance: d})
		}
	}

	sort.SliceStable(spacings, func(i, j int) bool {
		return spacings[i].Distance < spacings[j].Distance
	})
	return spacings
}

// FindNearestStation returns the index of the station nearest to point in
// plan and its distance. The index is -1 for an empty set.
func FindNearestStation(set *points.PointSet, point geometry.Vector3) (int, float64) {
	nearest := -1
	minDistance := math.MaxFloat64

	for i, st := range set.Stations {
		distance := st.Point.Sub(point).Horizontal()
		if distance < minDistance {
			minDistance = distance
			nearest = i
		}
	}

	return nearest, minDistance
}
