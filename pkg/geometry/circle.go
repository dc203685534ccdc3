package geometry

import (
	"fmt"
	"math"

	"github.com/philipparndt/gosurvey/pkg/linalg"
	"gonum.org/v1/gonum/stat"
)

// DefaultCollinearEps is the determinant magnitude below which three points
// are treated as collinear
const DefaultCollinearEps = 1e-12

// Circle2D is a plane circle
type Circle2D struct {
	CX, CY float64
	R      float64
}

// Center returns the circle center as a point
func (c Circle2D) Center() Point2D {
	return Point2D{X: c.CX, Y: c.CY}
}

// FitStatistics summarizes the radial residuals of a fit
type FitStatistics struct {
	RMSE    float64
	MeanAbs float64
}

// CircleMethod names the estimator that produced a circle
type CircleMethod string

const (
	MethodTripletAverage CircleMethod = "three-point average"
	MethodLeastSquares   CircleMethod = "least squares"
)

// CircleChoice is the winning fit and its statistics
type CircleChoice struct {
	Method CircleMethod
	Circle Circle2D
	Stats  FitStatistics
}

// CircleFitter holds the numerical tolerances of the circle fits. The zero
// value uses the package defaults.
type CircleFitter struct {
	CollinearEps float64 // Circumcenter determinant threshold
	SingularEps  float64 // Pivot threshold of the least-squares normal matrix
}

func (f CircleFitter) collinearEps() float64 {
	if f.CollinearEps > 0 {
		return f.CollinearEps
	}
	return DefaultCollinearEps
}

func (f CircleFitter) singularEps() float64 {
	if f.SingularEps > 0 {
		return f.SingularEps
	}
	return linalg.DefaultEpsilon
}

// Circumcenter returns the circle through three points.
//
// The triple is shifted so p1 lies at the origin, which keeps the squared
// terms small at projected (UTM-size) coordinates. With b = p2-p1 and c = p3-p1:
//
//	D  = 2(bx·cy - by·cx)
//	ux = (cy(bx²+by²) - by(cx²+cy²)) / D
//	uy = (bx(cx²+cy²) - cx(bx²+by²)) / D
//
// D equals the unshifted determinant, so the collinearity threshold is unchanged.
func (f CircleFitter) Circumcenter(p1, p2, p3 Point2D) (Circle2D, error) {
	b := p2.Sub(p1)
	c := p3.Sub(p1)

	d := 2.0 * (b.X*c.Y - b.Y*c.X)
	if math.Abs(d) < f.collinearEps() {
		return Circle2D{}, ErrCollinear
	}

	sb := b.X*b.X + b.Y*b.Y
	sc := c.X*c.X + c.Y*c.Y

	ux := (c.Y*sb - b.Y*sc) / d
	uy := (b.X*sc - c.X*sb) / d

	return Circle2D{CX: p1.X + ux, CY: p1.Y + uy, R: math.Hypot(ux, uy)}, nil
}

// TripletAverage evaluates the circumcenter of every three-point combination
// and averages the centers and radii of the valid ones. The enumeration is
// exhaustive and costs O(n³).
func (f CircleFitter) TripletAverage(points []Point2D) (Circle2D, error) {
	if len(points) < 3 {
		return Circle2D{}, ErrTooFewPoints
	}

	var sumX, sumY, sumR float64
	valid := 0
	n := len(points)
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				c, err := f.Circumcenter(points[i], points[j], points[k])
				if err != nil {
					continue
				}
				sumX += c.CX
				sumY += c.CY
				sumR += c.R
				valid++
			}
		}
	}

	if valid == 0 {
		return Circle2D{}, ErrCollinear
	}
	cnt := float64(valid)
	return Circle2D{CX: sumX / cnt, CY: sumY / cnt, R: sumR / cnt}, nil
}

// LeastSquares is the algebraic (Kåsa) fit of x²+y²+Ax+By+C=0.
// The points are shifted to their centroid before the normal equations are
// built, which leaves the estimate unchanged and keeps the matrix well scaled.
func (f CircleFitter) LeastSquares(points []Point2D) (Circle2D, error) {
	if len(points) < 3 {
		return Circle2D{}, ErrTooFewPoints
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	mx, my := stat.Mean(xs, nil), stat.Mean(ys, nil)

	var sxx, sxy, syy, sx, sy, sz, sxz, syz float64
	for i := range points {
		x, y := xs[i]-mx, ys[i]-my
		z := x*x + y*y
		sxx += x * x
		sxy += x * y
		syy += y * y
		sx += x
		sy += y
		sz += z
		sxz += x * z
		syz += y * z
	}
	n := float64(len(points))

	normal := linalg.Mat3{
		{sxx, sxy, sx},
		{sxy, syy, sy},
		{sx, sy, n},
	}
	sol, err := linalg.Solve3Eps(normal, [3]float64{-sxz, -syz, -sz}, f.singularEps())
	if err != nil {
		return Circle2D{}, fmt.Errorf("%w: %w", ErrDegenerate, err)
	}

	a, b, c := sol[0], sol[1], sol[2]
	cx, cy := -a/2, -b/2
	r2 := cx*cx + cy*cy - c
	if r2 < 0 || math.IsNaN(r2) || math.IsInf(r2, 0) {
		return Circle2D{}, ErrNoRadius
	}
	return Circle2D{CX: cx + mx, CY: cy + my, R: math.Sqrt(r2)}, nil
}

// Fit runs both estimators and keeps the better one
func (f CircleFitter) Fit(points []Point2D) (CircleChoice, error) {
	var avg, ls *Circle2D
	if c, err := f.TripletAverage(points); err == nil {
		avg = &c
	}
	if c, err := f.LeastSquares(points); err == nil {
		ls = &c
	}
	return ChooseBestCircle(points, avg, ls)
}

// CircleStatistics returns the RMSE and mean absolute value of the signed
// radial residuals |p - center| - r.
func CircleStatistics(c Circle2D, points []Point2D) FitStatistics {
	if len(points) == 0 {
		return FitStatistics{}
	}
	sq := make([]float64, len(points))
	abs := make([]float64, len(points))
	center := c.Center()
	for i, p := range points {
		res := p.Distance(center) - c.R
		sq[i] = res * res
		abs[i] = math.Abs(res)
	}
	return FitStatistics{
		RMSE:    math.Sqrt(stat.Mean(sq, nil)),
		MeanAbs: stat.Mean(abs, nil),
	}
}

// ChooseBestCircle picks the fit with the lower RMSE against points. A nil
// candidate is a failed fit. Ties go to the three-point average.
func ChooseBestCircle(points []Point2D, avg, ls *Circle2D) (CircleChoice, error) {
	switch {
	case avg == nil && ls == nil:
		return CircleChoice{}, fmt.Errorf("%w: no circle fit succeeded", ErrDegenerate)
	case ls == nil:
		return CircleChoice{Method: MethodTripletAverage, Circle: *avg, Stats: CircleStatistics(*avg, points)}, nil
	case avg == nil:
		return CircleChoice{Method: MethodLeastSquares, Circle: *ls, Stats: CircleStatistics(*ls, points)}, nil
	}

	avgStats := CircleStatistics(*avg, points)
	lsStats := CircleStatistics(*ls, points)
	if avgStats.RMSE <= lsStats.RMSE {
		return CircleChoice{Method: MethodTripletAverage, Circle: *avg, Stats: avgStats}, nil
	}
	return CircleChoice{Method: MethodLeastSquares, Circle: *ls, Stats: lsStats}, nil
}

var defaultFitter CircleFitter

// Circumcenter returns the circle through three points using default tolerances
func Circumcenter(p1, p2, p3 Point2D) (Circle2D, error) {
	return defaultFitter.Circumcenter(p1, p2, p3)
}

// TripletAverage averages all three-point circles using default tolerances
func TripletAverage(points []Point2D) (Circle2D, error) {
	return defaultFitter.TripletAverage(points)
}

// LeastSquaresCircle is the Kåsa fit using default tolerances
func LeastSquaresCircle(points []Point2D) (Circle2D, error) {
	return defaultFitter.LeastSquares(points)
}

// FitCircle runs both estimators with default tolerances and keeps the better one
func FitCircle(points []Point2D) (CircleChoice, error) {
	return defaultFitter.Fit(points)
}
