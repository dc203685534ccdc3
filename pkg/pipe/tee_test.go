package pipe

import (
	"math"
	"testing"

	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnrollTeeEqualDiameters(t *testing.T) {
	// Equal pipes at a right angle: the cut is R·|cos θ|
	tpl, err := UnrollTee(50, 50, 90, 8)
	require.NoError(t, err)
	require.Len(t, tpl.Points, 9)

	for i, p := range tpl.Points {
		theta := 2 * math.Pi * float64(i) / 8
		assert.InDelta(t, 50*theta, p.Arc, 1e-9)
		assert.InDelta(t, 50*math.Abs(math.Cos(theta)), p.Height, 1e-9)
	}
	assert.InDelta(t, 50, tpl.Depth(), 1e-9)
	assert.InDelta(t, tpl.Circumference(), tpl.Points[8].Arc, 1e-9)
}

func TestUnrollTeeSmallBranch(t *testing.T) {
	R, r := 100.0, 30.0
	tpl, err := UnrollTee(R, r, 90, 4)
	require.NoError(t, err)

	// Zero at the sides, deepest where the branch top line meets the main pipe
	assert.InDelta(t, R-math.Sqrt(R*R-r*r), tpl.Points[0].Height, 1e-9)
	assert.InDelta(t, 0, tpl.Points[1].Height, 1e-9)
	assert.InDelta(t, tpl.Points[0].Height, tpl.Points[2].Height, 1e-9)
}

func TestUnrollTeeLateral(t *testing.T) {
	tpl, err := UnrollTee(60, 40, 45, DefaultSegments)
	require.NoError(t, err)

	for _, p := range tpl.Points {
		assert.GreaterOrEqual(t, p.Height, 0.0)
	}
	// A lateral cut is deeper than the square one
	square, err := UnrollTee(60, 40, 90, DefaultSegments)
	require.NoError(t, err)
	assert.Greater(t, tpl.Depth(), square.Depth())

	// Default resolution
	def, err := UnrollTee(60, 40, 45, 0)
	require.NoError(t, err)
	assert.Len(t, def.Points, DefaultSegments+1)
}

func TestUnrollTeeValidation(t *testing.T) {
	_, err := UnrollTee(50, 60, 90, 8)
	assert.ErrorIs(t, err, ErrBranchTooLarge)

	_, err = UnrollTee(50, 0, 90, 8)
	assert.ErrorIs(t, err, geometry.ErrNonPositive)

	_, err = UnrollTee(50, 40, 0, 8)
	assert.ErrorIs(t, err, ErrAngle)
	_, err = UnrollTee(50, 40, 91, 8)
	assert.ErrorIs(t, err, ErrAngle)

	_, err = UnrollTee(50, 40, 60, 3)
	assert.ErrorIs(t, err, ErrSegments)
}
