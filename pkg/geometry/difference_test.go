package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifferenceAzimuthQuadrants(t *testing.T) {
	origin := NewVector3(1000, 2000, 50)
	cases := []struct {
		de, dn  float64
		azimuth float64
	}{
		{0, 10, 0},
		{10, 10, 45},
		{10, 0, 90},
		{0, -10, 180},
		{-10, 0, 270},
		{-10, 10, 315},
	}

	for _, tc := range cases {
		d := Difference(origin, origin.Add(NewVector3(tc.de, tc.dn, 0)))
		if math.Abs(d.AzimuthDeg-tc.azimuth) > 1e-9 {
			t.Errorf("ΔE=%v ΔN=%v: expected azimuth %v, got %v", tc.de, tc.dn, tc.azimuth, d.AzimuthDeg)
		}
	}
}

func TestDifferenceDistances(t *testing.T) {
	d := Difference(NewVector3(0, 0, 0), NewVector3(3, 4, 12))

	assert.Equal(t, 3.0, d.DE)
	assert.Equal(t, 4.0, d.DN)
	assert.Equal(t, 12.0, d.DH)
	assert.InDelta(t, 5, d.Horizontal, 1e-12)
	assert.InDelta(t, 13, d.Slope3D, 1e-12)
	assert.InDelta(t, math.Atan2(12, 5)*180/math.Pi, d.SlopeDeg, 1e-12)
}

func TestDifferenceWithoutHeights(t *testing.T) {
	d := Difference(NewVector2(0, 0), NewVector3(3, 4, 12))

	assert.InDelta(t, 5, d.Horizontal, 1e-12)
	assert.True(t, math.IsNaN(d.DH))
	assert.True(t, math.IsNaN(d.Slope3D))
	assert.True(t, math.IsNaN(d.SlopeDeg))
	assert.False(t, math.IsNaN(d.AzimuthDeg))
}

func TestDifferenceCoincidentPlan(t *testing.T) {
	d := Difference(NewVector3(1, 1, 0), NewVector3(1, 1, 5))
	assert.True(t, math.IsNaN(d.AzimuthDeg))
	assert.InDelta(t, 90, d.SlopeDeg, 1e-12)
}

func TestSolveArc(t *testing.T) {
	// Chord equal to the radius cuts a 60° arc
	arc, err := SolveArc(10, 10)
	require.NoError(t, err)
	assert.InDelta(t, 60, arc.CentralDeg, 1e-9)
	assert.InDelta(t, 10*math.Pi/3, arc.ArcLength, 1e-9)
	assert.InDelta(t, 10-math.Sqrt(75), arc.Sagitta, 1e-9)

	// Diameter chord is a half circle
	half, err := SolveArc(5, 10)
	require.NoError(t, err)
	assert.InDelta(t, 180, half.CentralDeg, 1e-9)
	assert.InDelta(t, 5, half.Sagitta, 1e-9)
}

func TestSolveArcValidation(t *testing.T) {
	_, err := SolveArc(5, 10.0001)
	assert.ErrorIs(t, err, ErrChordTooLong)

	_, err = SolveArc(0, 1)
	assert.ErrorIs(t, err, ErrNonPositive)

	_, err = SolveArc(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrNonPositive)
}

func TestSolveArcFromSagitta(t *testing.T) {
	arc, err := SolveArcFromSagitta(10, 10-math.Sqrt(75))
	require.NoError(t, err)
	assert.InDelta(t, 10, arc.Radius, 1e-9)
	assert.InDelta(t, 60, arc.CentralDeg, 1e-9)

	// Rise larger than the half chord gives the major segment
	major, err := SolveArcFromSagitta(8, 8)
	require.NoError(t, err)
	assert.InDelta(t, 5, major.Radius, 1e-12)
	assert.Greater(t, major.CentralDeg, 180.0)

	_, err = SolveArcFromSagitta(8, 0)
	assert.ErrorIs(t, err, ErrNonPositive)
}
