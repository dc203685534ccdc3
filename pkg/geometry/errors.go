package geometry

import (
	"errors"
	"fmt"
)

// ErrDegenerate marks input whose geometry cannot produce a result. The
// fitting errors below wrap it.
var ErrDegenerate = errors.New("degenerate geometry")

var (
	ErrTooFewPoints  = fmt.Errorf("%w: not enough points", ErrDegenerate)
	ErrCollinear     = fmt.Errorf("%w: points are collinear", ErrDegenerate)
	ErrNoRadius      = fmt.Errorf("%w: fitted radius is not real", ErrDegenerate)
	ErrMissingHeight = fmt.Errorf("%w: point has no height", ErrDegenerate)
	ErrZeroBaseline  = fmt.Errorf("%w: baseline has zero length", ErrDegenerate)
)
