// Package transform fits coordinate transformations between two sets of
// corresponding survey points.
package transform

import (
	"fmt"
	"math"

	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/philipparndt/gosurvey/pkg/linalg"
	"gonum.org/v1/gonum/mat"
)

// PowerIterations is the fixed number of power-iteration steps used to find
// the rotation quaternion. There is no convergence test.
const PowerIterations = 30

var (
	ErrTooFewPairs    = fmt.Errorf("%w: at least 3 point pairs required", geometry.ErrDegenerate)
	ErrLengthMismatch = fmt.Errorf("%w: point sets differ in length", geometry.ErrDegenerate)
	ErrNoSpread       = fmt.Errorf("%w: source points coincide", geometry.ErrDegenerate)
)

// Rigid maps a source point q onto the target frame as S·R·q + T
type Rigid struct {
	R   linalg.Mat3
	S   float64
	T   geometry.Vector3
	RMS float64
}

// Apply maps a source point into the target frame
func (r Rigid) Apply(q geometry.Vector3) geometry.Vector3 {
	return geometry.FromArray(r.R.MulVec(q.Array())).Mul(r.S).Add(r.T)
}

// ApplyAll maps every point of a set
func (r Rigid) ApplyAll(points []geometry.Vector3) []geometry.Vector3 {
	out := make([]geometry.Vector3, len(points))
	for i, p := range points {
		out[i] = r.Apply(p)
	}
	return out
}

// Homogeneous returns the 4×4 matrix [S·R T; 0 1]
func (r Rigid) Homogeneous() *mat.Dense {
	return homogeneous(r.R, r.S, r.T)
}

// BestFitRigid finds the rotation, translation and optionally a uniform scale
// that carry q onto p in the least-squares sense, using Horn's quaternion
// method. p and q are paired by index. Without allowScale the scale is 1.
//
// Collinear or symmetric point sets leave the rotation about the symmetry
// axis undetermined; that is not reported as an error.
func BestFitRigid(p, q []geometry.Vector3, allowScale bool) (*Rigid, error) {
	if len(p) != len(q) {
		return nil, fmt.Errorf("%w: %d target and %d source points", ErrLengthMismatch, len(p), len(q))
	}
	if len(p) < 3 {
		return nil, ErrTooFewPairs
	}
	for i := range p {
		if !p[i].HasHeight() || !q[i].HasHeight() {
			return nil, fmt.Errorf("%w: pair %d", geometry.ErrMissingHeight, i)
		}
	}

	pc := geometry.Centroid(p)
	qc := geometry.Centroid(q)

	// S[a][b] = Σ y_a·x_b with y the centered source and x the centered target
	var s linalg.Mat3
	for i := range p {
		x := p[i].Sub(pc).Array()
		y := q[i].Sub(qc).Array()
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				s[a][b] += y[a] * x[b]
			}
		}
	}

	rot := quaternionToMatrix(dominantQuaternion(hornMatrix(s)))

	scale := 1.0
	if allowScale {
		var num, den float64
		for i := range p {
			x := p[i].Sub(pc)
			y := q[i].Sub(qc)
			num += geometry.FromArray(rot.MulVec(y.Array())).Dot(x)
			den += y.Dot(y)
		}
		if den == 0 {
			return nil, ErrNoSpread
		}
		scale = num / den
	}

	t := pc.Sub(geometry.FromArray(rot.MulVec(qc.Array())).Mul(scale))
	fit := &Rigid{R: rot, S: scale, T: t}

	var sum float64
	for i := range p {
		d := fit.Apply(q[i]).Sub(p[i])
		sum += d.Dot(d)
	}
	fit.RMS = math.Sqrt(sum / float64(len(p)))

	return fit, nil
}

// hornMatrix builds the symmetric 4×4 key matrix from the cross-covariance
func hornMatrix(s linalg.Mat3) [4][4]float64 {
	sxx, sxy, sxz := s[0][0], s[0][1], s[0][2]
	syx, syy, syz := s[1][0], s[1][1], s[1][2]
	szx, szy, szz := s[2][0], s[2][1], s[2][2]

	return [4][4]float64{
		{sxx + syy + szz, syz - szy, szx - sxz, sxy - syx},
		{syz - szy, sxx - syy - szz, sxy + syx, szx + sxz},
		{szx - sxz, sxy + syx, -sxx + syy - szz, syz + szy},
		{sxy - syx, szx + sxz, syz + szy, -sxx - syy + szz},
	}
}

// dominantQuaternion returns the unit eigenvector of the most positive
// eigenvalue of n. The diagonal is lifted by a Gershgorin lower bound so every
// eigenvalue is non-negative and power iteration settles on the largest one
// rather than the one of largest magnitude. The iteration starts from the top
// eigenvector gonum reports, because flat or elongated networks put the top
// two eigenvalues close together and a cold start would not converge within
// the step budget.
func dominantQuaternion(n [4][4]float64) [4]float64 {
	var frob float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			frob += n[i][j] * n[i][j]
		}
	}
	if frob == 0 {
		return [4]float64{1, 0, 0, 0}
	}

	if lower := gershgorinLower(n); lower < 0 {
		for i := 0; i < 4; i++ {
			n[i][i] -= lower
		}
	}

	v := startQuaternion(n)
	for iter := 0; iter < PowerIterations; iter++ {
		var w [4]float64
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				w[i] += n[i][j] * v[j]
			}
		}
		v = normalize4(w)
	}
	return v
}

// gershgorinLower bounds the smallest eigenvalue of n from below
func gershgorinLower(n [4][4]float64) float64 {
	lower := math.Inf(1)
	for i := 0; i < 4; i++ {
		disc := n[i][i]
		for j := 0; j < 4; j++ {
			if j != i {
				disc -= math.Abs(n[i][j])
			}
		}
		lower = math.Min(lower, disc)
	}
	return lower
}

// startQuaternion is the eigenvector of the largest eigenvalue of the
// symmetric matrix n, or its largest column if the decomposition fails
func startQuaternion(n [4][4]float64) [4]float64 {
	data := make([]float64, 0, 16)
	for i := 0; i < 4; i++ {
		data = append(data, n[i][:]...)
	}

	var eig mat.EigenSym
	if eig.Factorize(mat.NewSymDense(4, data), true) {
		var vecs mat.Dense
		eig.VectorsTo(&vecs)
		// Values are ascending, the last column belongs to the largest
		return normalize4([4]float64{vecs.At(0, 3), vecs.At(1, 3), vecs.At(2, 3), vecs.At(3, 3)})
	}

	var v [4]float64
	best := -1.0
	for j := 0; j < 4; j++ {
		var norm float64
		for i := 0; i < 4; i++ {
			norm += n[i][j] * n[i][j]
		}
		if norm > best {
			best = norm
			for i := 0; i < 4; i++ {
				v[i] = n[i][j]
			}
		}
	}
	return normalize4(v)
}

func normalize4(v [4]float64) [4]float64 {
	l := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
	if l == 0 {
		return [4]float64{1, 0, 0, 0}
	}
	return [4]float64{v[0] / l, v[1] / l, v[2] / l, v[3] / l}
}

// quaternionToMatrix converts a unit quaternion (w, x, y, z) to a rotation matrix
func quaternionToMatrix(q [4]float64) linalg.Mat3 {
	w, x, y, z := q[0], q[1], q[2], q[3]
	return linalg.Mat3{
		{w*w + x*x - y*y - z*z, 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), w*w - x*x + y*y - z*z, 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), w*w - x*x - y*y + z*z},
	}
}

func homogeneous(a linalg.Mat3, s float64, t geometry.Vector3) *mat.Dense {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, s*a[i][j])
		}
	}
	m.Set(0, 3, t.E)
	m.Set(1, 3, t.N)
	m.Set(2, 3, t.H)
	m.Set(3, 3, 1)
	return m
}
