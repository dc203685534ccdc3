package geometry

import "math"

// Delta is the coordinate difference from one station to another
type Delta struct {
	DE, DN, DH float64
	Horizontal float64
	Slope3D    float64 // NaN without heights
	AzimuthDeg float64 // From North, clockwise, [0, 360); NaN for a vertical or zero line
	SlopeDeg   float64 // NaN without heights
}

// Difference computes the ENH difference from a to b
func Difference(a, b Vector3) Delta {
	d := b.Sub(a)
	horizontal := d.Horizontal()

	az := math.NaN()
	if horizontal > 0 {
		az = math.Atan2(d.E, d.N) * 180 / math.Pi
		if az < 0 {
			az += 360
		}
	}

	return Delta{
		DE:         d.E,
		DN:         d.N,
		DH:         d.H,
		Horizontal: horizontal,
		Slope3D:    math.Hypot(horizontal, d.H),
		AzimuthDeg: az,
		SlopeDeg:   math.Atan2(d.H, horizontal) * 180 / math.Pi,
	}
}
