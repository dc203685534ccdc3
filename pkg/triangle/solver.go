// Package triangle fills in the parameters of a triangle split by its
// altitude from whatever subset the user knows.
//
// The triangle stands on base b with the apex above it. Side a runs from the
// left base corner to the apex, side c from the right corner. The altitude h
// divides the base into bL (under a) and bR (under c) and the apex angle into
// apexL and apexR. baseL and baseR are the interior angles at the left and
// right base corners. Angles are in degrees.
package triangle

import "math"

// State holds every triangle quantity. NaN means unknown.
type State struct {
	A, B, C      float64
	H            float64
	BL, BR       float64
	ApexDeg      float64
	ApexL, ApexR float64
	BaseL, BaseR float64
}

// Unknown returns a state with every field unknown
func Unknown() State {
	nan := math.NaN()
	return State{
		A: nan, B: nan, C: nan, H: nan,
		BL: nan, BR: nan,
		ApexDeg: nan, ApexL: nan, ApexR: nan,
		BaseL: nan, BaseR: nan,
	}
}

// Resolved reports whether every field is known
func (s State) Resolved() bool {
	for _, v := range s.fields() {
		if !known(*v) {
			return false
		}
	}
	return true
}

// Area returns b·h/2, NaN while either is unknown
func (s State) Area() float64 {
	return s.B * s.H / 2
}

func (s *State) fields() []*float64 {
	return []*float64{
		&s.A, &s.B, &s.C, &s.H, &s.BL, &s.BR,
		&s.ApexDeg, &s.ApexL, &s.ApexR, &s.BaseL, &s.BaseR,
	}
}

func known(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func setIfUnknown(dst *float64, v float64) {
	if !known(*dst) && known(v) {
		*dst = v
	}
}

func deg(rad float64) float64 { return rad * 180 / math.Pi }
func rad(deg float64) float64 { return deg * math.Pi / 180 }

// acosDeg clamps the argument to [-1, 1] so round-off never leaves the domain
func acosDeg(x float64) float64 {
	return deg(math.Acos(math.Max(-1, math.Min(1, x))))
}

// Solve derives every quantity it can from the known ones. The two ties
// b = bL + bR and apexDeg = apexL + apexR are enforced whichever fields were
// entered. Insufficient or contradictory input leaves fields unknown; Solve
// never fails.
func Solve(in State) State {
	s := in

	s.fillTies()
	s.fillHeightFromHalves()
	s.solveSSS()
	s.solveSAS()
	s.solveAltitudeHalf()
	s.fillTies()
	// One more SSS attempt after the partial fills. Not iterated.
	s.solveSSS()
	s.solveFallback()
	s.fillTies()

	return s
}

func (s *State) fillTies() {
	switch {
	case !known(s.B) && known(s.BL) && known(s.BR):
		s.B = s.BL + s.BR
	case known(s.B) && !known(s.BL) && known(s.BR):
		s.BL = s.B - s.BR
	case known(s.B) && known(s.BL) && !known(s.BR):
		s.BR = s.B - s.BL
	}

	switch {
	case !known(s.ApexDeg) && known(s.ApexL) && known(s.ApexR):
		s.ApexDeg = s.ApexL + s.ApexR
	case known(s.ApexDeg) && !known(s.ApexL) && known(s.ApexR):
		s.ApexL = s.ApexDeg - s.ApexR
	case known(s.ApexDeg) && known(s.ApexL) && !known(s.ApexR):
		s.ApexR = s.ApexDeg - s.ApexL
	}
}

// fillHeightFromHalves uses either right-angled half: h² = a² - bL² or c² - bR²
func (s *State) fillHeightFromHalves() {
	if known(s.H) {
		return
	}
	if known(s.A) && known(s.BL) {
		if r := s.A*s.A - s.BL*s.BL; r >= 0 {
			s.H = math.Sqrt(r)
			return
		}
	}
	if known(s.C) && known(s.BR) {
		if r := s.C*s.C - s.BR*s.BR; r >= 0 {
			s.H = math.Sqrt(r)
		}
	}
}

// solveSSS derives everything from three sides that satisfy the strict
// triangle inequality
func (s *State) solveSSS() {
	a, b, c := s.A, s.B, s.C
	if !known(a) || !known(b) || !known(c) {
		return
	}
	if !(a+b > c && a+c > b && b+c > a) {
		return
	}

	setIfUnknown(&s.ApexDeg, acosDeg((a*a+c*c-b*b)/(2*a*c)))
	setIfUnknown(&s.BaseL, acosDeg((a*a+b*b-c*c)/(2*a*b)))
	setIfUnknown(&s.BaseR, acosDeg((c*c+b*b-a*a)/(2*c*b)))

	// Heron
	p := (a + b + c) / 2
	area := math.Sqrt(math.Max(0, p*(p-a)*(p-b)*(p-c)))
	setIfUnknown(&s.H, 2*area/b)

	bl := (a*a - c*c + b*b) / (2 * b)
	setIfUnknown(&s.BL, bl)
	setIfUnknown(&s.BR, b-s.BL)

	if known(s.H) {
		setIfUnknown(&s.ApexL, deg(math.Atan2(s.BL, s.H)))
		setIfUnknown(&s.ApexR, s.ApexDeg-s.ApexL)
	}
}

// solveSAS finds the base from both sides and the included apex angle
func (s *State) solveSAS() {
	if known(s.B) || !known(s.A) || !known(s.C) || !known(s.ApexDeg) {
		return
	}
	a, c := s.A, s.C
	b2 := a*a + c*c - 2*a*c*math.Cos(rad(s.ApexDeg))
	if b2 <= 0 {
		return
	}
	s.B = math.Sqrt(b2)
	s.solveSSS()
}

// solveAltitudeHalf works on the right-angled half whose base half is known
func (s *State) solveAltitudeHalf() {
	if !known(s.H) {
		return
	}
	if known(s.BL) {
		setIfUnknown(&s.A, math.Hypot(s.H, s.BL))
		setIfUnknown(&s.ApexL, deg(math.Atan2(s.BL, s.H)))
		setIfUnknown(&s.BaseL, deg(math.Atan2(s.H, s.BL)))
	}
	if known(s.BR) {
		setIfUnknown(&s.C, math.Hypot(s.H, s.BR))
		setIfUnknown(&s.ApexR, deg(math.Atan2(s.BR, s.H)))
		setIfUnknown(&s.BaseR, deg(math.Atan2(s.H, s.BR)))
	}
}

// solveFallback handles base plus altitude plus one side
func (s *State) solveFallback() {
	if !known(s.B) || !known(s.H) || (!known(s.A) && !known(s.C)) {
		return
	}

	if known(s.A) && !known(s.BL) {
		if r := s.A*s.A - s.H*s.H; r >= 0 {
			s.BL = math.Sqrt(r)
		}
	}
	if known(s.C) && !known(s.BR) {
		if r := s.C*s.C - s.H*s.H; r >= 0 {
			s.BR = math.Sqrt(r)
		}
	}
	s.fillTies()
	s.solveAltitudeHalf()
	s.fillTies()
}
