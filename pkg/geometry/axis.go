package geometry

import "math"

// MinAxisLength is the shortest baseline accepted by the axis projections
const MinAxisLength = 1e-9

// onLineTolerance is the offset magnitude reported as on-line
const onLineTolerance = 1e-12

// Side of a baseline
const (
	SideLeft   = "L"
	SideRight  = "R"
	SideOnLine = "0"
)

// AxisFrame is an orthonormal frame whose U axis points from A to B.
// When Length is below MinAxisLength the frame is meaningless and callers
// must check Degenerate before projecting.
type AxisFrame struct {
	Origin  Vector3
	U, V, W Vector3
	Length  float64
}

// AxisProjection locates a point relative to an axis
type AxisProjection struct {
	T     float64 // Axial offset from the origin
	R     float64 // Radial distance from the axis
	Theta float64 // Angle around the axis in degrees, [0, 360)
}

// Chainage locates a point relative to a plan baseline. All fields are NaN
// when the baseline is degenerate; HLine and DH are NaN when heights are missing.
type Chainage struct {
	T      float64
	Offset float64 // Positive left of A→B
	Side   string
	HLine  float64
	DH     float64
}

// BuildAxisFrame builds the frame for the axis A→B
func BuildAxisFrame(a, b Vector3) AxisFrame {
	d := b.Sub(a)
	u := d.Normalize()

	ref := NewVector3(0, 0, 1)
	if math.Abs(u.H) >= 0.9 {
		ref = NewVector3(1, 0, 0)
	}
	v := u.Cross(ref).Normalize()
	w := u.Cross(v).Normalize()

	return AxisFrame{Origin: a, U: u, V: v, W: w, Length: d.Length()}
}

// Degenerate reports whether A and B coincide
func (f AxisFrame) Degenerate() bool {
	return f.Length < MinAxisLength
}

// Project returns the axial offset, radial distance and angular position of p
func (f AxisFrame) Project(p Vector3) AxisProjection {
	d := p.Sub(f.Origin)
	t := d.Dot(f.U)
	radial := d.Sub(f.U.Mul(t))

	theta := math.Atan2(radial.Dot(f.W), radial.Dot(f.V)) * 180 / math.Pi
	if theta < 0 {
		theta += 360
	}
	if theta >= 360 {
		theta -= 360
	}
	return AxisProjection{T: t, R: radial.Length(), Theta: theta}
}

// ProjectAll projects a list of points, e.g. flange bolt positions on a pipe axis
func (f AxisFrame) ProjectAll(points []Vector3) []AxisProjection {
	out := make([]AxisProjection, len(points))
	for i, p := range points {
		out[i] = f.Project(p)
	}
	return out
}

// ChainageOffset projects p onto the plan baseline A→B. The height on the
// line is interpolated when both A and B have heights.
func ChainageOffset(a, b, p Vector3) Chainage {
	de, dn := b.E-a.E, b.N-a.N
	length := math.Hypot(de, dn)
	if length < MinAxisLength {
		nan := math.NaN()
		return Chainage{T: nan, Offset: nan, HLine: nan, DH: nan}
	}

	ux, uy := de/length, dn/length
	pe, pn := p.E-a.E, p.N-a.N
	t := ux*pe + uy*pn
	offset := ux*pn - uy*pe

	side := SideOnLine
	switch {
	case offset > onLineTolerance:
		side = SideLeft
	case offset < -onLineTolerance:
		side = SideRight
	}

	hLine := math.NaN()
	if a.HasHeight() && b.HasHeight() {
		hLine = a.H + (t/length)*(b.H-a.H)
	}
	dh := math.NaN()
	if p.HasHeight() && !math.IsNaN(hLine) {
		dh = p.H - hLine
	}

	return Chainage{T: t, Offset: offset, Side: side, HLine: hLine, DH: dh}
}
