package geometry

import (
	"fmt"
	"math"

	"github.com/philipparndt/gosurvey/pkg/linalg"
	"gonum.org/v1/gonum/stat"
)

// PlaneFrame is a best-fit plane with an in-plane orthonormal basis.
// Normal, U and V are mutually orthonormal and U × V = Normal.
type PlaneFrame struct {
	C      Vector3 // Centroid of the fitted points
	Normal Vector3 // Direction of least variance
	U, V   Vector3 // In-plane axes
}

// Project returns the in-plane coordinates of p
func (f PlaneFrame) Project(p Vector3) Point2D {
	d := p.Sub(f.C)
	return Point2D{X: d.Dot(f.U), Y: d.Dot(f.V)}
}

// Lift maps in-plane coordinates back to 3D
func (f PlaneFrame) Lift(q Point2D) Vector3 {
	return f.C.Add(f.U.Mul(q.X)).Add(f.V.Mul(q.Y))
}

// Distance returns the signed distance of p from the plane
func (f PlaneFrame) Distance(p Vector3) float64 {
	return p.Sub(f.C).Dot(f.Normal)
}

// EndFit is a circle fitted to the points around a pipe end
type EndFit struct {
	Center Vector3
	Radius float64
	RMS    float64
	Normal Vector3
}

// Slope describes the straight line between two fitted centers
type Slope struct {
	Delta      Vector3
	Horizontal float64
	Length3D   float64
	SlopeDeg   float64 // Positive is uphill
	Direction  Vector3 // Unit vector, zero when the centers coincide
}

// Centroid returns the mean point of a set
func Centroid(points []Vector3) Vector3 {
	es := make([]float64, len(points))
	ns := make([]float64, len(points))
	hs := make([]float64, len(points))
	for i, p := range points {
		es[i], ns[i], hs[i] = p.E, p.N, p.H
	}
	return Vector3{E: stat.Mean(es, nil), N: stat.Mean(ns, nil), H: stat.Mean(hs, nil)}
}

// FitPlanePCA fits a plane through at least three points. The normal is the
// eigenvector of the smallest covariance eigenvalue.
func FitPlanePCA(points []Vector3) (PlaneFrame, error) {
	if len(points) < 3 {
		return PlaneFrame{}, ErrTooFewPoints
	}
	for _, p := range points {
		if !p.HasHeight() {
			return PlaneFrame{}, ErrMissingHeight
		}
	}

	c := Centroid(points)
	var cov linalg.Mat3
	for _, p := range points {
		d := p.Sub(c).Array()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				cov[i][j] += d[i] * d[j]
			}
		}
	}
	n := float64(len(points))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cov[i][j] /= n
		}
	}

	eig := linalg.EigenSym3(cov)
	normal := FromArray(eig.Vector(eig.MinIndex())).Normalize()

	// Reference axis must not be near-parallel to the normal
	ref := NewVector3(0, 0, 1)
	if math.Abs(normal.H) >= 0.9 {
		ref = NewVector3(1, 0, 0)
	}
	u := ref.Cross(normal).Normalize()
	v := normal.Cross(u)

	return PlaneFrame{C: c, Normal: normal, U: u, V: v}, nil
}

// FitEnd fits a plane to the points, fits a circle to their in-plane
// projection and lifts the center back to 3D.
func FitEnd(points []Vector3) (EndFit, error) {
	return defaultFitter.FitEnd(points)
}

// FitEnd is FitEnd with the fitter's tolerances
func (f CircleFitter) FitEnd(points []Vector3) (EndFit, error) {
	frame, err := FitPlanePCA(points)
	if err != nil {
		return EndFit{}, err
	}

	flat := make([]Point2D, len(points))
	for i, p := range points {
		flat[i] = frame.Project(p)
	}

	circle, err := f.LeastSquares(flat)
	if err != nil {
		return EndFit{}, fmt.Errorf("end circle: %w", err)
	}
	if circle.R <= 0 {
		return EndFit{}, ErrNoRadius
	}

	return EndFit{
		Center: frame.Lift(circle.Center()),
		Radius: circle.R,
		RMS:    CircleStatistics(circle, flat).RMSE,
		Normal: frame.Normal,
	}, nil
}

// AxisAndSlope measures the straight axis between two fitted centers
func AxisAndSlope(from, to Vector3) Slope {
	d := to.Sub(from)
	horizontal := d.Horizontal()
	length := d.Length()

	s := Slope{
		Delta:      d,
		Horizontal: horizontal,
		Length3D:   length,
		SlopeDeg:   math.Atan2(d.H, horizontal) * 180 / math.Pi,
	}
	if length > 0 {
		s.Direction = d.Mul(1 / length)
	}
	return s
}
