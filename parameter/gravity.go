package parameter

// Gravity Defaults
const (
	// GravityMultiplierDefault scales every deflection (1.0 = unmodified)
	GravityMultiplierDefault = 1.0

	// MaxForceDefault caps the deflection magnitude after all multipliers
	MaxForceDefault = 15.0

	// ForceExponentDefault is the distance falloff exponent (2 = inverse square)
	ForceExponentDefault = 2.0

	// MinDistanceDefault clamps the center distance before any division
	MinDistanceDefault = 0.001
)

// Orbital Boost Zone (Newtonian model only)
// A band around the tuned orbit radius gets extra pull so grazing rays settle instead of slingshotting
const (
	BoostRadiusDefault = 0.3
	BoostBandDefault   = 0.05
	BoostFactorDefault = 1.2
)

// Geodesic Approximation
const (
	// GeodesicScaleDefault tunes tangential deflection strength, visual units
	GeodesicScaleDefault = 0.1

	// TimeDilationMax bounds the dilation factor near the horizon
	TimeDilationMax = 10.0

	// TimeDilationFloor marks near-frozen proper time at or inside rs
	TimeDilationFloor = 0.01
)

// Black Hole Defaults
const (
	BlackHoleXDefault      = 0.5
	BlackHoleYDefault      = 0.0
	BlackHoleMassDefault   = 1.0
	BlackHoleRadiusDefault = 0.15

	// PhotonSphereRatio is the photon ring radius as a multiple of the horizon radius
	PhotonSphereRatio = 1.5
)
