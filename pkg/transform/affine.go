package transform

import (
	"fmt"

	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/philipparndt/gosurvey/pkg/linalg"
	"gonum.org/v1/gonum/mat"
)

// AffinePairs is the exact number of correspondences ExactAffineFit4 takes
const AffinePairs = 4

var ErrAffinePairs = fmt.Errorf("%w: exactly %d point pairs required", geometry.ErrDegenerate, AffinePairs)

// Affine maps a source point p onto the target frame as A·p + T
type Affine struct {
	A linalg.Mat3
	T geometry.Vector3
}

// Apply maps a source point into the target frame
func (a Affine) Apply(p geometry.Vector3) geometry.Vector3 {
	return geometry.FromArray(a.A.MulVec(p.Array())).Add(a.T)
}

// ApplyAll maps every point of a set
func (a Affine) ApplyAll(points []geometry.Vector3) []geometry.Vector3 {
	out := make([]geometry.Vector3, len(points))
	for i, p := range points {
		out[i] = a.Apply(p)
	}
	return out
}

// Homogeneous returns the 4×4 matrix [A T; 0 1]
func (a Affine) Homogeneous() *mat.Dense {
	return homogeneous(a.A, 1, a.T)
}

// ExactAffineFit4 solves for the affine map that sends each of the four source
// points exactly onto its target. There is no least-squares averaging: four
// inconsistent pairs still produce an exact but arbitrary map. Coplanar
// sources make the system singular.
func ExactAffineFit4(src, tgt []geometry.Vector3) (*Affine, error) {
	if len(src) != AffinePairs || len(tgt) != AffinePairs {
		return nil, fmt.Errorf("%w: got %d source and %d target points", ErrAffinePairs, len(src), len(tgt))
	}

	// Unknowns ordered a00 a01 a02 t0 a10 a11 a12 t1 a20 a21 a22 t2
	const n = 3 * AffinePairs
	rows := make([][]float64, 0, n)
	rhs := make([]float64, 0, n)
	for i := 0; i < AffinePairs; i++ {
		if !src[i].HasHeight() || !tgt[i].HasHeight() {
			return nil, fmt.Errorf("%w: pair %d", geometry.ErrMissingHeight, i)
		}
		s := src[i]
		t := tgt[i].Array()
		for r := 0; r < 3; r++ {
			row := make([]float64, n)
			row[4*r] = s.E
			row[4*r+1] = s.N
			row[4*r+2] = s.H
			row[4*r+3] = 1
			rows = append(rows, row)
			rhs = append(rhs, t[r])
		}
	}

	x, err := linalg.Solve(rows, rhs, linalg.DefaultEpsilon)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", geometry.ErrDegenerate, err)
	}

	var fit Affine
	for r := 0; r < 3; r++ {
		fit.A[r] = [3]float64{x[4*r], x[4*r+1], x[4*r+2]}
	}
	fit.T = geometry.NewVector3(x[3], x[7], x[11])
	return &fit, nil
}
