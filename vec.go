package sprig

import (
	"fmt"
	"math"
)

// vecEpsilon is the per-coordinate tolerance used by Vec2.Equals.
const vecEpsilon = 1e-7

// Vec2 is a 2D vector used for positions, velocities and accelerations.
// Angles are in degrees, measured with atan2 so that +Y (screen down) is +90.
type Vec2 struct {
	X, Y float64
}

// NewVec2FromAngle returns a vector of the given length pointing at angle
// degrees.
func NewVec2FromAngle(length, degrees float64) Vec2 {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Vec2{X: length * cos, Y: length * sin}
}

// Length returns sqrt(x²+y²).
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Angle returns the direction of the vector in degrees, in (-180, 180].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// Set replaces both coordinates.
func (v *Vec2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

// Add adds (dx, dy) in place.
func (v *Vec2) Add(dx, dy float64) {
	v.X += dx
	v.Y += dy
}

// SetLength rescales the vector to length while keeping its current angle.
// The angle of the zero vector is 0, so a zero vector becomes (length, 0).
func (v *Vec2) SetLength(length float64) {
	*v = NewVec2FromAngle(length, v.Angle())
}

// SetAngle rotates the vector to point at degrees while keeping its length.
func (v *Vec2) SetAngle(degrees float64) {
	*v = NewVec2FromAngle(v.Length(), degrees)
}

// Equals reports whether both coordinates are within 1e-7 of other's.
func (v Vec2) Equals(other Vec2) bool {
	return math.Abs(v.X-other.X) < vecEpsilon && math.Abs(v.Y-other.Y) < vecEpsilon
}

// Compare orders vectors by length only and returns -1, 0 or +1.
//
// This is not a total order on vectors: two different vectors of equal
// length compare as 0 even though Equals reports false for them.
func (v Vec2) Compare(other Vec2) int {
	a, b := v.Length(), other.Length()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String formats the vector as "(x , y)" with each coordinate rounded to
// three decimal places.
func (v Vec2) String() string {
	rx := math.Round(1000*v.X) / 1000
	ry := math.Round(1000*v.Y) / 1000
	return fmt.Sprintf("(%v , %v)", rx, ry)
}
