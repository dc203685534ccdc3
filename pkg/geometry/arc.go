package geometry

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNonPositive  = errors.New("values must be positive")
	ErrChordTooLong = errors.New("arc: chord is longer than the diameter")
)

// Arc describes a circular segment
type Arc struct {
	Radius     float64
	Chord      float64
	Sagitta    float64
	CentralDeg float64
	ArcLength  float64
}

// SolveArc derives the segment of a circle with the given radius cut by a
// chord. The minor segment is returned.
func SolveArc(radius, chord float64) (Arc, error) {
	if !(radius > 0) || !(chord > 0) {
		return Arc{}, fmt.Errorf("%w: radius=%g chord=%g", ErrNonPositive, radius, chord)
	}
	if chord > 2*radius {
		return Arc{}, fmt.Errorf("%w: chord %g, diameter %g", ErrChordTooLong, chord, 2*radius)
	}

	half := chord / 2
	central := 2 * math.Asin(math.Min(1, half/radius))
	return Arc{
		Radius:     radius,
		Chord:      chord,
		Sagitta:    radius - math.Sqrt(math.Max(0, radius*radius-half*half)),
		CentralDeg: central * 180 / math.Pi,
		ArcLength:  radius * central,
	}, nil
}

// SolveArcFromSagitta recovers the radius from a chord and its rise
func SolveArcFromSagitta(chord, sagitta float64) (Arc, error) {
	if !(chord > 0) || !(sagitta > 0) {
		return Arc{}, fmt.Errorf("%w: chord=%g sagitta=%g", ErrNonPositive, chord, sagitta)
	}
	half := chord / 2
	if sagitta > half {
		// Major segment: radius is still defined, the arc spans more than 180°
		radius := (half*half + sagitta*sagitta) / (2 * sagitta)
		central := 2*math.Pi - 2*math.Asin(half/radius)
		return Arc{
			Radius:     radius,
			Chord:      chord,
			Sagitta:    sagitta,
			CentralDeg: central * 180 / math.Pi,
			ArcLength:  radius * central,
		}, nil
	}
	radius := (half*half + sagitta*sagitta) / (2 * sagitta)
	return SolveArc(radius, chord)
}
