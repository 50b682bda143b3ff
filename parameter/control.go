package parameter

// Runtime control ranges; every mutator clamps into these before the core sees a value
const (
	MassMin = 0.1
	MassMax = 5.0

	RadiusMin = 0.05
	RadiusMax = 0.3

	SpeedMin = 0.05
	SpeedMax = 1.0

	GravityMultiplierMin = 0.1
	GravityMultiplierMax = 3.0

	MaxForceMin = 1.0
	MaxForceMax = 50.0

	ForceExponentMin = 0.5
	ForceExponentMax = 4.0

	MinDistanceMin = 0.0001
	MinDistanceMax = 0.1

	// BlackHoleTravel bounds black hole position on both axes
	BlackHoleTravel = 2.0
)

// Per-keypress steps
const (
	StepMove              = 0.01
	StepMass              = 0.01
	StepRadius            = 0.002
	StepSpeed             = 0.005
	StepGravityMultiplier = 0.02
	StepMaxForce          = 0.5
	StepForceExponent     = 0.05
)
