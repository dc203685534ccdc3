package linalg

import (
	"errors"
	"fmt"
	"math"
)

// DefaultEpsilon is the pivot magnitude below which a system is treated as singular
const DefaultEpsilon = 1e-12

// ErrSingular is returned when elimination meets a pivot smaller than the epsilon.
var ErrSingular = errors.New("linalg: matrix is singular")

// Solve solves a·x = b for a square matrix using Gaussian elimination with
// partial pivoting. The inputs are copied and never modified.
// A non-positive eps selects DefaultEpsilon.
func Solve(a [][]float64, b []float64, eps float64) ([]float64, error) {
	n := len(a)
	if n == 0 {
		return nil, fmt.Errorf("linalg: empty system")
	}
	if len(b) != n {
		return nil, fmt.Errorf("linalg: right-hand side has %d rows, want %d", len(b), n)
	}
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	// Augmented copy [a | b]
	m := make([][]float64, n)
	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("linalg: row %d has %d columns, want %d", i, len(row), n)
		}
		m[i] = make([]float64, n+1)
		copy(m[i], row)
		m[i][n] = b[i]
	}

	for col := 0; col < n; col++ {
		// Pick the row with the largest magnitude in this column
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][col]) < eps {
			return nil, ErrSingular
		}
		m[col], m[pivot] = m[pivot], m[col]

		for r := col + 1; r < n; r++ {
			factor := m[r][col] / m[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c <= n; c++ {
				m[r][c] -= factor * m[col][c]
			}
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := m[i][n]
		for c := i + 1; c < n; c++ {
			sum -= m[i][c] * x[c]
		}
		x[i] = sum / m[i][i]
	}
	return x, nil
}

// Solve3 solves a 3×3 system with the default epsilon.
func Solve3(a Mat3, b [3]float64) ([3]float64, error) {
	return Solve3Eps(a, b, DefaultEpsilon)
}

// Solve3Eps solves a 3×3 system, treating pivots below eps as singular.
func Solve3Eps(a Mat3, b [3]float64, eps float64) ([3]float64, error) {
	rows := [][]float64{a[0][:], a[1][:], a[2][:]}
	x, err := Solve(rows, b[:], eps)
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64{x[0], x[1], x[2]}, nil
}
