package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisFrameDefiningPoints(t *testing.T) {
	cases := []struct {
		name string
		a, b Vector3
	}{
		{"horizontal", NewVector3(0, 0, 0), NewVector3(10, 0, 0)},
		{"sloped", NewVector3(100, 200, 5), NewVector3(130, 240, 7.5)},
		{"vertical", NewVector3(3, 4, 0), NewVector3(3, 4, 12)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := BuildAxisFrame(tc.a, tc.b)
			assert.False(t, f.Degenerate())

			pa := f.Project(tc.a)
			assert.InDelta(t, 0, pa.T, 1e-9)
			assert.InDelta(t, 0, pa.R, 1e-9)

			pb := f.Project(tc.b)
			assert.InDelta(t, tc.b.Distance(tc.a), pb.T, 1e-9)
			assert.InDelta(t, 0, pb.R, 1e-9)

			// Orthonormal basis
			assert.InDelta(t, 1, f.V.Length(), 1e-12)
			assert.InDelta(t, 1, f.W.Length(), 1e-12)
			assert.InDelta(t, 0, f.U.Dot(f.V), 1e-12)
			assert.InDelta(t, 0, f.U.Dot(f.W), 1e-12)
			assert.InDelta(t, 0, f.V.Dot(f.W), 1e-12)
		})
	}
}

func TestAxisFrameRadialAndAngle(t *testing.T) {
	f := BuildAxisFrame(NewVector3(0, 0, 0), NewVector3(10, 0, 0))

	// u = east, ref = up, v = u×up = south, w = u×v = down
	p := f.Project(f.Origin.Add(f.U.Mul(4)).Add(f.V.Mul(2)))
	assert.InDelta(t, 4, p.T, 1e-12)
	assert.InDelta(t, 2, p.R, 1e-12)
	assert.InDelta(t, 0, p.Theta, 1e-9)

	p = f.Project(f.Origin.Add(f.W.Mul(3)))
	assert.InDelta(t, 90, p.Theta, 1e-9)

	p = f.Project(f.Origin.Sub(f.W.Mul(3)))
	assert.InDelta(t, 270, p.Theta, 1e-9)

	for _, proj := range f.ProjectAll([]Vector3{NewVector3(1, 5, -3), NewVector3(-2, -1, 1)}) {
		assert.GreaterOrEqual(t, proj.Theta, 0.0)
		assert.Less(t, proj.Theta, 360.0)
	}
}

func TestAxisFrameDegenerate(t *testing.T) {
	p := NewVector3(5, 5, 5)
	f := BuildAxisFrame(p, p)
	assert.True(t, f.Degenerate())
}

func TestChainageOffsetSides(t *testing.T) {
	a := NewVector2(0, 0)
	b := NewVector2(10, 0)

	left := ChainageOffset(a, b, NewVector2(5, 1))
	assert.InDelta(t, 5, left.T, 1e-12)
	assert.InDelta(t, 1, left.Offset, 1e-12)
	assert.Equal(t, SideLeft, left.Side)

	right := ChainageOffset(a, b, NewVector2(5, -1))
	assert.InDelta(t, 5, right.T, 1e-12)
	assert.InDelta(t, -1, right.Offset, 1e-12)
	assert.Equal(t, SideRight, right.Side)

	on := ChainageOffset(a, b, NewVector2(5, 0))
	assert.Equal(t, SideOnLine, on.Side)
	assert.Equal(t, 0.0, on.Offset)

	// No heights anywhere
	assert.True(t, math.IsNaN(left.HLine))
	assert.True(t, math.IsNaN(left.DH))
}

func TestChainageOffsetHeights(t *testing.T) {
	a := NewVector3(0, 0, 100)
	b := NewVector3(0, 20, 104)

	c := ChainageOffset(a, b, NewVector3(-2, 5, 102))
	assert.InDelta(t, 5, c.T, 1e-12)
	assert.InDelta(t, 101, c.HLine, 1e-12)
	assert.InDelta(t, 1, c.DH, 1e-12)
	// West of a northbound line is left
	assert.Equal(t, SideLeft, c.Side)

	noPH := ChainageOffset(a, b, NewVector2(-2, 5))
	assert.InDelta(t, 101, noPH.HLine, 1e-12)
	assert.True(t, math.IsNaN(noPH.DH))

	noBH := ChainageOffset(a, NewVector2(0, 20), NewVector3(-2, 5, 102))
	assert.True(t, math.IsNaN(noBH.HLine))
	assert.True(t, math.IsNaN(noBH.DH))
}

func TestChainageOffsetDegenerateBaseline(t *testing.T) {
	a := NewVector3(1, 1, 1)
	c := ChainageOffset(a, a, NewVector3(5, 5, 5))

	assert.True(t, math.IsNaN(c.T))
	assert.True(t, math.IsNaN(c.Offset))
	assert.True(t, math.IsNaN(c.HLine))
	assert.True(t, math.IsNaN(c.DH))
	assert.Empty(t, c.Side)
}
