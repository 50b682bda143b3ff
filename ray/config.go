package ray

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/physics"
)

// Config is one coherent constant block for a physics model
// Use NewtonianConfig or GeodesicConfig; fields are not meant to be mixed between them
type Config struct {
	Model physics.Model

	// MassScale multiplies the black hole mass before it reaches the geodesic formulas
	MassScale float64

	// Trail sampling
	MinSpacing     float64
	InitialTrail   int
	InitialSpacing float64

	// Absorption
	AbsorbDamping float64
	RespawnDelay  float64

	// Reset jitter
	PositionJitter float64
	AngleJitter    float64

	// Visibility
	SceneCenter    r2.Vec
	HalfExtent     float64
	EscapeRadius   float64
	VisibleSamples int

	// Orbit diagnostic
	OrbitSamples  int
	OrbitVariance float64
	OrbitRadius   float64
}

func baseConfig() Config {
	return Config{
		MinSpacing:     parameter.TrailMinSpacing,
		InitialTrail:   parameter.TrailInitialPoints,
		InitialSpacing: parameter.TrailInitialSpacing,
		PositionJitter: parameter.RayPositionJitter,
		AngleJitter:    parameter.RayAngleJitter,
		HalfExtent:     parameter.SceneHalfExtent,
		EscapeRadius:   parameter.SceneEscapeRadius,
		VisibleSamples: parameter.VisibleSamples,
		OrbitSamples:   parameter.OrbitSamples,
		OrbitVariance:  parameter.OrbitVariance,
		OrbitRadius:    parameter.OrbitRadius,
	}
}

// NewtonianConfig returns the capped-Newtonian profile: velocity damped on horizon contact
func NewtonianConfig() Config {
	c := baseConfig()
	c.Model = physics.ModelNewtonian
	c.MassScale = 1
	c.AbsorbDamping = parameter.NewtonianAbsorbDamping
	c.RespawnDelay = parameter.NewtonianRespawnDelay
	return c
}

// GeodesicConfig returns the geodesic-approximation profile
func GeodesicConfig() Config {
	c := baseConfig()
	c.Model = physics.ModelGeodesic
	c.MassScale = parameter.GeodesicMassScale
	c.AbsorbDamping = parameter.GeodesicAbsorbDamping
	c.RespawnDelay = parameter.GeodesicRespawnDelay
	return c
}

// ConfigFor returns the stock profile for model
func ConfigFor(model physics.Model) Config {
	if model == physics.ModelGeodesic {
		return GeodesicConfig()
	}
	return NewtonianConfig()
}
