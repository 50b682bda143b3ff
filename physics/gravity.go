package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/vmath"
)

// BlackHole is the attracting body, owned by the controller and read-only to rays
// Preconditions: Mass > 0, Radius > 0
type BlackHole struct {
	Position r2.Vec
	Mass     float64
	Radius   float64 // event horizon
}

// PhotonSphere returns the photon ring radius drawn around the horizon
func (b BlackHole) PhotonSphere() float64 {
	return b.Radius * parameter.PhotonSphereRatio
}

// BoostZone multiplies pull inside |distance - Radius| <= Band
// Zero Band or Factor disables it
type BoostZone struct {
	Radius float64
	Band   float64
	Factor float64
}

// Active reports whether the zone has any effect
func (z BoostZone) Active() bool {
	return z.Band > 0 && z.Factor > 0
}

// Contains reports whether distance falls inside the band
func (z BoostZone) Contains(distance float64) bool {
	return z.Active() && math.Abs(distance-z.Radius) <= z.Band
}

// Params holds the runtime gravity tuning, passed by value into every step
// Preconditions: MaxForce > 0, ForceExponent > 0, MinDistance > 0, GravityMultiplier >= 0
type Params struct {
	GravityMultiplier float64
	MaxForce          float64
	ForceExponent     float64
	MinDistance       float64
	Boost             BoostZone
	GeodesicScale     float64
}

// DefaultParams returns the stock tuning with the boost zone enabled
func DefaultParams() Params {
	return Params{
		GravityMultiplier: parameter.GravityMultiplierDefault,
		MaxForce:          parameter.MaxForceDefault,
		ForceExponent:     parameter.ForceExponentDefault,
		MinDistance:       parameter.MinDistanceDefault,
		Boost: BoostZone{
			Radius: parameter.BoostRadiusDefault,
			Band:   parameter.BoostBandDefault,
			Factor: parameter.BoostFactorDefault,
		},
		GeodesicScale: parameter.GeodesicScaleDefault,
	}
}

// clampedDistance applies the minimum-distance clamp, tolerating a non-positive clamp value
func (p Params) clampedDistance(d float64) float64 {
	if d < p.MinDistance {
		d = p.MinDistance
	}
	if d <= 0 {
		d = vmath.Epsilon
	}
	return d
}

// capMagnitude clamps a scalar magnitude to [0, MaxForce], collapsing NaN to 0
func (p Params) capMagnitude(mag float64) float64 {
	if math.IsNaN(mag) || mag < 0 {
		return 0
	}
	if mag > p.MaxForce {
		return p.MaxForce
	}
	return mag
}

// ForceMagnitude returns the capped scalar pull at distance, before direction is applied
func ForceMagnitude(distance, mass float64, params Params) float64 {
	d := params.clampedDistance(distance)
	mag := mass * params.GravityMultiplier / math.Pow(d, params.ForceExponent)
	if params.Boost.Contains(d) {
		mag *= params.Boost.Factor
	}
	return params.capMagnitude(mag)
}

// Force returns the Newtonian-capped deflection acting on position, unit mass assumed
// F = M * multiplier / r^exponent along the line to the center, boost zone applied, then capped
func Force(position, blackHolePos r2.Vec, mass float64, params Params) r2.Vec {
	toCenter := r2.Sub(blackHolePos, position)
	dir, dist := vmath.Normalize(toCenter)
	if dist == 0 {
		// At the center there is no direction to pull along
		return r2.Vec{}
	}
	return r2.Scale(ForceMagnitude(dist, mass, params), dir)
}
