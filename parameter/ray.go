package parameter

// Ray Motion
const (
	// RaySpeedDefault is the base speed of light in world units per second
	RaySpeedDefault = 0.3

	// RayMinSpeed guards velocity normalization against a zero vector
	RayMinSpeed = 0.001

	// RaySegmentsDefault is the segment budget handed to spawn strategies
	RaySegmentsDefault = 50

	// RayTrailPerSegment multiplies the segment budget into trail capacity
	RayTrailPerSegment = 10
)

// Trail Sampling
const (
	// TrailMinSpacing is the minimum head travel before a new trail sample is recorded
	TrailMinSpacing = 0.01

	// TrailInitialPoints is the length of the backward tail built on reset
	TrailInitialPoints = 50

	// TrailInitialSpacing is the spacing of the backward tail points
	TrailInitialSpacing = 0.02
)

// Reset Jitter
const (
	RayPositionJitter = 0.02
	RayAngleJitter    = 0.01
)

// Visibility & Escape
const (
	// SceneHalfExtent is the half side of the visible square centered on the scene origin
	SceneHalfExtent = 2.75

	// SceneEscapeRadius resets a ray whose head gets farther than this from the scene origin
	SceneEscapeRadius = 3.0

	// VisibleSamples is how many of the newest trail points are checked for visibility
	VisibleSamples = 20
)

// Orbit Diagnostic
const (
	OrbitSamples  = 10
	OrbitVariance = 0.01
	OrbitRadius   = 0.5
)

// Newtonian Model
const (
	// NewtonianAbsorbDamping scales velocity on horizon contact (visual settle)
	NewtonianAbsorbDamping = 0.1

	// NewtonianRespawnDelay is seconds an absorbed ray stays frozen before reset
	NewtonianRespawnDelay = 2.0
)

// Geodesic Model
const (
	// GeodesicAbsorbDamping keeps velocity on contact; the ray freezes through time dilation instead
	GeodesicAbsorbDamping = 1.0

	GeodesicRespawnDelay = 3.0

	// GeodesicMassScale converts the viewer's mass into geometrized units so rs stays inside the horizon
	// With mass 1 and horizon 0.15 this puts rs at 0.1
	GeodesicMassScale = 0.05
)
