package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ringPoints samples a circle of radius r around center in the plane spanned by u and v
func ringPoints(center, u, v Vector3, r float64, n int) []Vector3 {
	pts := make([]Vector3, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = center.Add(u.Mul(r * math.Cos(a))).Add(v.Mul(r * math.Sin(a)))
	}
	return pts
}

func assertOrthonormal(t *testing.T, f PlaneFrame) {
	t.Helper()
	assert.InDelta(t, 1, f.Normal.Length(), 1e-9)
	assert.InDelta(t, 1, f.U.Length(), 1e-9)
	assert.InDelta(t, 1, f.V.Length(), 1e-9)
	assert.InDelta(t, 0, f.Normal.Dot(f.U), 1e-9)
	assert.InDelta(t, 0, f.Normal.Dot(f.V), 1e-9)
	assert.InDelta(t, 0, f.U.Dot(f.V), 1e-9)
}

func TestFitPlanePCAHorizontal(t *testing.T) {
	pts := []Vector3{
		NewVector3(0, 0, 5),
		NewVector3(4, 0, 5),
		NewVector3(4, 3, 5),
		NewVector3(0, 3, 5),
	}
	f, err := FitPlanePCA(pts)
	require.NoError(t, err)

	assertOrthonormal(t, f)
	assert.InDelta(t, 1, math.Abs(f.Normal.H), 1e-9)
	assert.InDelta(t, 5, f.C.H, 1e-12)
	for _, p := range pts {
		assert.InDelta(t, 0, f.Distance(p), 1e-9)
	}
}

func TestFitPlanePCATilted(t *testing.T) {
	u := NewVector3(1, 1, 0).Normalize()
	v := NewVector3(-1, 1, 2).Normalize()
	pts := ringPoints(NewVector3(10, 20, 30), u, v, 2, 12)

	f, err := FitPlanePCA(pts)
	require.NoError(t, err)
	assertOrthonormal(t, f)

	expectedNormal := u.Cross(v).Normalize()
	assert.InDelta(t, 1, math.Abs(f.Normal.Dot(expectedNormal)), 1e-9)

	// Project then lift is the identity for in-plane points
	for _, p := range pts {
		back := f.Lift(f.Project(p))
		assert.InDelta(t, 0, back.Distance(p), 1e-9)
	}
}

func TestFitPlanePCAErrors(t *testing.T) {
	_, err := FitPlanePCA([]Vector3{NewVector3(0, 0, 0), NewVector3(1, 0, 0)})
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = FitPlanePCA([]Vector3{NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector2(0, 1)})
	assert.ErrorIs(t, err, ErrMissingHeight)
}

func TestFitEndRecoversPipeEnd(t *testing.T) {
	center := NewVector3(512.3, 1048.7, 12.4)
	// Pipe running roughly north-east with a slight fall
	axis := NewVector3(1, 1, -0.1).Normalize()
	u := axis.Cross(NewVector3(0, 0, 1)).Normalize()
	v := axis.Cross(u)
	pts := ringPoints(center, u, v, 0.325, 8)

	fit, err := FitEnd(pts)
	require.NoError(t, err)

	assert.InDelta(t, 0, fit.Center.Distance(center), 1e-6)
	assert.InDelta(t, 0.325, fit.Radius, 1e-6)
	assert.InDelta(t, 0, fit.RMS, 1e-6)
	assert.InDelta(t, 1, math.Abs(fit.Normal.Dot(axis)), 1e-6)
}

func TestFitEndCollinearFails(t *testing.T) {
	pts := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(2, 0, 0),
		NewVector3(3, 0, 0),
	}
	_, err := FitEnd(pts)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestAxisAndSlope(t *testing.T) {
	s := AxisAndSlope(NewVector3(0, 0, 10), NewVector3(30, 40, 9))

	assert.InDelta(t, 50, s.Horizontal, 1e-12)
	assert.InDelta(t, math.Sqrt(2501), s.Length3D, 1e-12)
	assert.InDelta(t, math.Atan2(-1, 50)*180/math.Pi, s.SlopeDeg, 1e-12)
	assert.Less(t, s.SlopeDeg, 0.0)
	assert.InDelta(t, 1, s.Direction.Length(), 1e-12)
}

func TestAxisAndSlopeDegenerate(t *testing.T) {
	p := NewVector3(1, 2, 3)
	s := AxisAndSlope(p, p)
	assert.Equal(t, 0.0, s.Length3D)
	assert.Equal(t, 0.0, s.SlopeDeg)
	assert.Equal(t, Vector3{}, s.Direction)

	vertical := AxisAndSlope(p, NewVector3(1, 2, 5))
	assert.InDelta(t, 90, vertical.SlopeDeg, 1e-12)
}
