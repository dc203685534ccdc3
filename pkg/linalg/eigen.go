package linalg

import "math"

const (
	maxJacobiIterations = 30
	jacobiTolerance     = 1e-12
)

// Eigen3 holds the eigen-decomposition of a symmetric 3×3 matrix.
// Vectors stores the eigenvectors as columns, matching Values by index.
type Eigen3 struct {
	Values  [3]float64
	Vectors Mat3
}

// Vector returns the eigenvector for Values[i]
func (e Eigen3) Vector(i int) [3]float64 {
	return e.Vectors.Col(i)
}

// MinIndex returns the index of the smallest eigenvalue. Ties keep the
// first one encountered.
func (e Eigen3) MinIndex() int {
	idx := 0
	for i := 1; i < 3; i++ {
		if e.Values[i] < e.Values[idx] {
			idx = i
		}
	}
	return idx
}

// EigenSym3 decomposes a symmetric 3×3 matrix with cyclic Jacobi rotations,
// always zeroing the largest off-diagonal element. It stops after
// maxJacobiIterations rotations or once the off-diagonal Frobenius norm drops
// below jacobiTolerance and returns whatever approximation it reached.
func EigenSym3(m Mat3) Eigen3 {
	a := m
	v := Identity3()

	for iter := 0; iter < maxJacobiIterations; iter++ {
		off := math.Sqrt(2 * (a[0][1]*a[0][1] + a[0][2]*a[0][2] + a[1][2]*a[1][2]))
		if off < jacobiTolerance {
			break
		}

		p, q := 0, 1
		if math.Abs(a[0][2]) > math.Abs(a[p][q]) {
			p, q = 0, 2
		}
		if math.Abs(a[1][2]) > math.Abs(a[p][q]) {
			p, q = 1, 2
		}

		apq := a[p][q]
		theta := (a[q][q] - a[p][p]) / (2 * apq)
		t := 1.0
		if theta != 0 {
			t = math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
		}
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		// A ← Jᵀ·A·J, columns first then rows
		for k := 0; k < 3; k++ {
			akp, akq := a[k][p], a[k][q]
			a[k][p] = c*akp - s*akq
			a[k][q] = s*akp + c*akq
		}
		for k := 0; k < 3; k++ {
			apk, aqk := a[p][k], a[q][k]
			a[p][k] = c*apk - s*aqk
			a[q][k] = s*apk + c*aqk
		}
		for k := 0; k < 3; k++ {
			vkp, vkq := v[k][p], v[k][q]
			v[k][p] = c*vkp - s*vkq
			v[k][q] = s*vkp + c*vkq
		}
	}

	return Eigen3{
		Values:  [3]float64{a[0][0], a[1][1], a[2][2]},
		Vectors: v,
	}
}
