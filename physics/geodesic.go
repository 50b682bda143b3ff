package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/vmath"
)

// Geometrized units: G = c = 1, so the Schwarzschild radius is 2M
// None of this solves the real geodesic equation; it bends rays in the right direction with tunable strength

// SchwarzschildRadius returns rs = 2M
func SchwarzschildRadius(mass float64) float64 {
	return 2 * mass
}

// GeodesicDeflection returns the heuristic acceleration on a ray head
// Inside rs/2 it saturates toward the center at MaxForce; elsewhere it combines
// a radial term -(rs/2r²)(1-rs/r) with a tangential term -(rs/r³)|L|·GeodesicScale
func GeodesicDeflection(position, velocity, blackHolePos r2.Vec, mass, angularMomentum float64, params Params) r2.Vec {
	rs := SchwarzschildRadius(mass)
	toCenter := r2.Sub(blackHolePos, position)
	inward, rawDist := vmath.Normalize(toCenter)
	r := params.clampedDistance(rawDist)

	if r < rs/2 {
		if rawDist == 0 {
			// Sitting on the center: keep pulling against the direction of travel
			back, _ := vmath.Normalize(velocity)
			inward = r2.Scale(-1, back)
		}
		return r2.Scale(params.capMagnitude(params.MaxForce), inward)
	}

	if rawDist == 0 {
		return r2.Vec{}
	}

	radial := r2.Scale(-1, inward) // outward
	tangential := vmath.Perpendicular(radial)

	aR := -(rs / (2 * r * r)) * (1 - rs/r)
	aT := -(rs / (r * r * r)) * math.Abs(angularMomentum) * params.GeodesicScale

	accel := r2.Add(r2.Scale(aR, radial), r2.Scale(aT, tangential))
	accel = r2.Scale(params.GravityMultiplier, accel)
	if !vmath.FiniteVec(accel) {
		return r2.Scale(params.capMagnitude(params.MaxForce), inward)
	}
	return vmath.ClampMagnitude(accel, params.capMagnitude(params.MaxForce))
}

// TimeDilationFactor returns 1/sqrt(1-rs/r) outside rs, bounded to [TimeDilationFloor, TimeDilationMax]
// At or inside rs it returns the floor, marking near-frozen proper time
func TimeDilationFactor(distance, mass float64) float64 {
	rs := SchwarzschildRadius(mass)
	if distance <= rs || distance <= 0 {
		return parameter.TimeDilationFloor
	}
	f := 1 / math.Sqrt(1-rs/distance)
	if f > parameter.TimeDilationMax || math.IsNaN(f) {
		return parameter.TimeDilationMax
	}
	return f
}

// ProperStep converts a frame step into the step a ray head experiences: dt / factor
// A non-positive factor yields no step
func ProperStep(dt, factor float64) float64 {
	if factor <= 0 {
		return 0
	}
	return dt / factor
}

// AngularMomentum returns the scalar (z) component of r × v relative to the center, unit mass
func AngularMomentum(position, velocity, blackHolePos r2.Vec) float64 {
	return r2.Cross(r2.Sub(position, blackHolePos), velocity)
}
