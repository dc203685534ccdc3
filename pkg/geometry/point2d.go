package geometry

import "math"

// Point2D is a plane point, used by the circle fits
type Point2D struct {
	X, Y float64
}

// Sub returns p - o
func (p Point2D) Sub(o Point2D) Point2D {
	return Point2D{X: p.X - o.X, Y: p.Y - o.Y}
}

// Distance returns the distance between two points
func (p Point2D) Distance(o Point2D) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// PlanPoints drops the heights of a point list
func PlanPoints(points []Vector3) []Point2D {
	out := make([]Point2D, len(points))
	for i, p := range points {
		out[i] = Point2D{X: p.E, Y: p.N}
	}
	return out
}
