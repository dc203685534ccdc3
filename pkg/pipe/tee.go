// Package pipe computes cutting templates for pipe fittings.
package pipe

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gosurvey/pkg/geometry"
)

// DefaultSegments is the template resolution used when none is given
const DefaultSegments = 72

var (
	ErrBranchTooLarge = errors.New("branch radius exceeds main radius")
	ErrAngle          = errors.New("branch angle must be in (0, 90] degrees")
	ErrSegments       = errors.New("template needs at least 4 segments")
)

// TemplatePoint is one point of an unrolled cut line. Arc runs around the
// branch circumference from its top line, Height is measured from the
// lowest point of the cut towards the branch end.
type TemplatePoint struct {
	Arc    float64
	Height float64
}

// Template is the unrolled cut of a branch pipe meeting a main pipe
type Template struct {
	MainRadius   float64
	BranchRadius float64
	AngleDeg     float64
	Points       []TemplatePoint
}

// Circumference returns the unrolled width of the template
func (t Template) Circumference() float64 {
	return 2 * math.Pi * t.BranchRadius
}

// Depth returns the largest height of the cut line
func (t Template) Depth() float64 {
	depth := 0.0
	for _, p := range t.Points {
		depth = math.Max(depth, p.Height)
	}
	return depth
}

// UnrollTee computes the cut line of a branch of radius branchRadius joining
// a main pipe of radius mainRadius with the axes crossing at angleDeg. The
// template has segments+1 points, the last one closing the circumference.
func UnrollTee(mainRadius, branchRadius, angleDeg float64, segments int) (Template, error) {
	if !(mainRadius > 0) || !(branchRadius > 0) {
		return Template{}, fmt.Errorf("%w: radii must be positive", geometry.ErrNonPositive)
	}
	if branchRadius > mainRadius {
		return Template{}, fmt.Errorf("%w: %g > %g", ErrBranchTooLarge, branchRadius, mainRadius)
	}
	if !(angleDeg > 0 && angleDeg <= 90) {
		return Template{}, fmt.Errorf("%w: got %g", ErrAngle, angleDeg)
	}
	if segments == 0 {
		segments = DefaultSegments
	}
	if segments < 4 {
		return Template{}, fmt.Errorf("%w: got %d", ErrSegments, segments)
	}

	alpha := angleDeg * math.Pi / 180
	sinA, cosA := math.Sin(alpha), math.Cos(alpha)
	R, r := mainRadius, branchRadius

	// Distance along the branch axis at which the branch surface line at
	// angle theta meets the main pipe
	reach := make([]float64, segments+1)
	lowest := math.Inf(1)
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		st := math.Sin(theta)
		reach[i] = (math.Sqrt(math.Max(0, R*R-r*r*st*st)) - r*math.Cos(theta)*cosA) / sinA
		lowest = math.Min(lowest, reach[i])
	}

	pts := make([]TemplatePoint, segments+1)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = TemplatePoint{Arc: r * theta, Height: reach[i] - lowest}
	}

	return Template{
		MainRadius:   R,
		BranchRadius: r,
		AngleDeg:     angleDeg,
		Points:       pts,
	}, nil
}
