package geometry

import "math"

// Vector3 is a survey point or vector in Easting, Northing, Height order.
// An unknown height is carried as NaN.
type Vector3 struct {
	E, N, H float64
}

// NewVector3 creates a new 3D vector
func NewVector3(e, n, h float64) Vector3 {
	return Vector3{E: e, N: n, H: h}
}

// NewVector2 creates a point with an unknown height
func NewVector2(e, n float64) Vector3 {
	return Vector3{E: e, N: n, H: math.NaN()}
}

// HasHeight reports whether H is known
func (v Vector3) HasHeight() bool {
	return !math.IsNaN(v.H)
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		E: v.E + other.E,
		N: v.N + other.N,
		H: v.H + other.H,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		E: v.E - other.E,
		N: v.N - other.N,
		H: v.H - other.H,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{
		E: v.E * scalar,
		N: v.N * scalar,
		H: v.H * scalar,
	}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.E*other.E + v.N*other.N + v.H*other.H
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		E: v.N*other.H - v.H*other.N,
		N: v.H*other.E - v.E*other.H,
		H: v.E*other.N - v.N*other.E,
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.E*v.E + v.N*v.N + v.H*v.H)
}

// Horizontal returns the length of the E/N component
func (v Vector3) Horizontal() float64 {
	return math.Hypot(v.E, v.N)
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{}
	}
	return v.Mul(1.0 / length)
}

// Array returns the components as an array, for matrix code
func (v Vector3) Array() [3]float64 {
	return [3]float64{v.E, v.N, v.H}
}

// FromArray builds a vector from an [E, N, H] array
func FromArray(a [3]float64) Vector3 {
	return Vector3{E: a[0], N: a[1], H: a[2]}
}
