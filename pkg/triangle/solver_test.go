package triangle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertTies(t *testing.T, s State) {
	t.Helper()
	assert.InDelta(t, s.B, s.BL+s.BR, 1e-6, "b = bL + bR")
	assert.InDelta(t, s.ApexDeg, s.ApexL+s.ApexR, 1e-6, "apex = apexL + apexR")
}

func TestSolveSAS(t *testing.T) {
	in := Unknown()
	in.A, in.C, in.ApexDeg = 3, 4, 90

	s := Solve(in)

	assert.True(t, s.Resolved())
	assert.InDelta(t, 5, s.B, 1e-9)
	assert.InDelta(t, 2.4, s.H, 1e-9)
	assert.InDelta(t, 1.8, s.BL, 1e-9)
	assert.InDelta(t, 3.2, s.BR, 1e-9)
	assert.InDelta(t, 90, s.BaseL+s.BaseR, 1e-9)
	assertTies(t, s)
}

func TestSolveSSS(t *testing.T) {
	in := Unknown()
	in.A, in.B, in.C = 3, 4, 5

	s := Solve(in)

	assert.True(t, s.Resolved())
	// Heron: area 6, h = 2·6/4
	assert.InDelta(t, 3, s.H, 1e-9)
	assert.InDelta(t, 6, s.Area(), 1e-9)
	// The right angle sits at the left base corner, so the altitude is side a
	assert.InDelta(t, 90, s.BaseL, 1e-9)
	assert.InDelta(t, 0, s.BL, 1e-9)
	assert.InDelta(t, math.Acos(0.6)*180/math.Pi, s.ApexDeg, 1e-9)
	assert.InDelta(t, 180, s.ApexDeg+s.BaseL+s.BaseR, 1e-9)
	assertTies(t, s)
}

func TestSolveAltitudeAndHalves(t *testing.T) {
	in := Unknown()
	in.H, in.BL, in.BR = 4, 3, 5

	s := Solve(in)

	assert.True(t, s.Resolved())
	assert.InDelta(t, 8, s.B, 1e-12)
	assert.InDelta(t, 5, s.A, 1e-12)
	assert.InDelta(t, math.Sqrt(41), s.C, 1e-12)
	assert.InDelta(t, 90-s.ApexL, s.BaseL, 1e-9)
	assertTies(t, s)
}

func TestSolveFallbackBaseHeightSide(t *testing.T) {
	in := Unknown()
	in.B, in.H, in.A = 10, 4, 5

	s := Solve(in)

	assert.True(t, s.Resolved())
	assert.InDelta(t, 3, s.BL, 1e-12)
	assert.InDelta(t, 7, s.BR, 1e-12)
	assert.InDelta(t, math.Sqrt(65), s.C, 1e-12)
	assertTies(t, s)
}

func TestSolveTiesAnyOrder(t *testing.T) {
	in := Unknown()
	in.ApexL, in.ApexR = 30, 40
	in.B, in.BR = 10, 4

	s := Solve(in)

	assert.InDelta(t, 70, s.ApexDeg, 1e-12)
	assert.InDelta(t, 6, s.BL, 1e-12)
}

func TestSolveTriangleInequalityViolated(t *testing.T) {
	in := Unknown()
	in.A, in.B, in.C = 1, 1, 3

	s := Solve(in)

	assert.False(t, s.Resolved())
	assert.True(t, math.IsNaN(s.H))
	assert.True(t, math.IsNaN(s.ApexDeg))
	assert.True(t, math.IsNaN(s.BL))
}

func TestSolveImaginaryHeightStaysUnknown(t *testing.T) {
	in := Unknown()
	in.A, in.BL = 3, 5

	s := Solve(in)

	assert.True(t, math.IsNaN(s.H))
	assert.False(t, s.Resolved())
}

func TestSolveInsufficientInput(t *testing.T) {
	in := Unknown()
	in.A = 7

	s := Solve(in)

	assert.Equal(t, 7.0, s.A)
	assert.True(t, math.IsNaN(s.B))
	assert.True(t, math.IsNaN(s.Area()))
}

func TestSolveKeepsEnteredValues(t *testing.T) {
	in := Unknown()
	in.A, in.B, in.C = 5, 6, 5
	in.H = 4

	s := Solve(in)

	assert.Equal(t, 4.0, s.H)
	assert.InDelta(t, 3, s.BL, 1e-12)
	assert.InDelta(t, s.ApexL, s.ApexR, 1e-9)
}

func TestSolveIsIdempotent(t *testing.T) {
	in := Unknown()
	in.A, in.C, in.ApexDeg = 7.25, 4.5, 63

	first := Solve(in)
	second := Solve(in)
	assert.Equal(t, first, second)

	// Solving a solved state changes nothing
	assert.Equal(t, first, Solve(first))
}
