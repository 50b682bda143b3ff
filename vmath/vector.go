package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// FromAngle returns a vector of length mag pointing along angle (radians, CCW from +X)
func FromAngle(angle, mag float64) r2.Vec {
	return r2.Vec{X: math.Cos(angle) * mag, Y: math.Sin(angle) * mag}
}

// Normalize returns the unit vector of v and its original length, zero-safe
func Normalize(v r2.Vec) (r2.Vec, float64) {
	mag := r2.Norm(v)
	if mag <= Epsilon || !Finite(mag) {
		return r2.Vec{}, 0
	}
	return r2.Scale(1/mag, v), mag
}

// ClampMagnitude limits v to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(v r2.Vec, maxMag float64) r2.Vec {
	mag := r2.Norm(v)
	if mag <= maxMag || mag == 0 {
		return v
	}
	return r2.Scale(maxMag/mag, v)
}

// WithLength rescales v to length mag, returning false when v is too short to carry a direction
func WithLength(v r2.Vec, mag, minLen float64) (r2.Vec, bool) {
	cur := r2.Norm(v)
	if cur <= minLen || !Finite(cur) {
		return v, false
	}
	return r2.Scale(mag/cur, v), true
}

// Perpendicular returns vector rotated 90° counter-clockwise
func Perpendicular(v r2.Vec) r2.Vec {
	return r2.Vec{X: -v.Y, Y: v.X}
}

// Distance returns Euclidean distance between a and b
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// FiniteVec reports whether both components are finite
func FiniteVec(v r2.Vec) bool {
	return Finite(v.X) && Finite(v.Y)
}
