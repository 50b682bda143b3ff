package engine

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/config"
	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/physics"
	"github.com/lixenwraith/lensing/population"
	"github.com/lixenwraith/lensing/spawn"
	"github.com/lixenwraith/lensing/vmath"
)

// Simulation owns the black hole, the gravity parameters and the ray population
// Every mutator clamps into the runtime control ranges, so the core only ever sees valid values
// Not safe for concurrent use: mutate between frames from the frame loop goroutine
type Simulation struct {
	hole   physics.BlackHole
	home   r2.Vec
	params physics.Params

	popCfg  population.Config
	pop     *population.Population
	rng     *vmath.FastRand
	pattern spawn.Pattern
	speed   float64

	stats     population.Stats
	onAbsorb  func(n int)
	totalTime float64
}

// Snapshot is a read-only copy of the current tunables and last frame statistics
type Snapshot struct {
	Position          r2.Vec
	Mass              float64
	Radius            float64
	PhotonSphere      float64
	GravityMultiplier float64
	MaxForce          float64
	ForceExponent     float64
	MinDistance       float64
	Speed             float64
	Pattern           spawn.Pattern
	Model             physics.Model
	Policy            population.Policy
	Rays              int
	Elapsed           float64
	Stats             population.Stats
}

// NewSimulation builds a simulation from cfg and fills the initial population
func NewSimulation(cfg config.Config) *Simulation {
	cfg.Clamp()
	s := &Simulation{
		hole:    cfg.Hole(),
		params:  cfg.Params(),
		popCfg:  cfg.PopulationConfig(),
		rng:     vmath.NewFastRand(cfg.Seed),
		pattern: cfg.Pattern(),
		speed:   cfg.Population.Speed,
	}
	s.home = s.hole.Position
	s.rebuild()
	return s
}

// rebuild replaces the population with a fresh one under the current pattern and speed
func (s *Simulation) rebuild() {
	if s.pop != nil {
		s.pop.Close()
	}
	cfg := s.popCfg
	cfg.Speed = s.speed
	s.pop = population.New(cfg, spawn.New(s.pattern, s.rng), s.rng)
	if cfg.Policy == population.PolicyRecycle {
		s.pop.Fill()
	} else {
		s.pop.SpawnBatch()
	}
	s.stats = population.Stats{}
}

// Step advances the simulation by dt seconds
func (s *Simulation) Step(dt float64) population.Stats {
	s.stats = s.pop.Update(dt, s.hole, s.params)
	s.totalTime += dt
	if s.onAbsorb != nil && s.stats.AbsorbedThisFrame > 0 {
		s.onAbsorb(s.stats.AbsorbedThisFrame)
	}
	return s.stats
}

// SetAbsorbHandler registers fn to be called after any frame that absorbed rays
func (s *Simulation) SetAbsorbHandler(fn func(n int)) {
	s.onAbsorb = fn
}

// Reset re-centers the black hole and rebuilds the population; tunables are kept
func (s *Simulation) Reset() {
	s.hole.Position = s.home
	s.totalTime = 0
	s.rebuild()
}

// Close releases the population worker pool
func (s *Simulation) Close() {
	s.pop.Close()
}

// --- Black hole ---

func (s *Simulation) MoveBlackHole(dx, dy float64) {
	t := parameter.BlackHoleTravel
	s.hole.Position.X = vmath.Clamp(s.hole.Position.X+dx, -t, t)
	s.hole.Position.Y = vmath.Clamp(s.hole.Position.Y+dy, -t, t)
}

func (s *Simulation) SetMass(m float64) {
	s.hole.Mass = vmath.Clamp(m, parameter.MassMin, parameter.MassMax)
}

func (s *Simulation) SetRadius(r float64) {
	s.hole.Radius = vmath.Clamp(r, parameter.RadiusMin, parameter.RadiusMax)
}

func (s *Simulation) Mass() float64 { return s.hole.Mass }

func (s *Simulation) Radius() float64 { return s.hole.Radius }

func (s *Simulation) Hole() physics.BlackHole { return s.hole }

// --- Gravity parameters ---

func (s *Simulation) SetGravityMultiplier(v float64) {
	s.params.GravityMultiplier = vmath.Clamp(v, parameter.GravityMultiplierMin, parameter.GravityMultiplierMax)
}

func (s *Simulation) SetMaxForce(v float64) {
	s.params.MaxForce = vmath.Clamp(v, parameter.MaxForceMin, parameter.MaxForceMax)
}

func (s *Simulation) SetForceExponent(v float64) {
	s.params.ForceExponent = vmath.Clamp(v, parameter.ForceExponentMin, parameter.ForceExponentMax)
}

func (s *Simulation) SetMinDistance(v float64) {
	s.params.MinDistance = vmath.Clamp(v, parameter.MinDistanceMin, parameter.MinDistanceMax)
}

func (s *Simulation) GravityMultiplier() float64 { return s.params.GravityMultiplier }

func (s *Simulation) MaxForce() float64 { return s.params.MaxForce }

func (s *Simulation) ForceExponent() float64 { return s.params.ForceExponent }

func (s *Simulation) MinDistance() float64 { return s.params.MinDistance }

func (s *Simulation) Params() physics.Params { return s.params }

// --- Rays ---

// SetSpeed changes the base speed of every ray, including those already in flight
func (s *Simulation) SetSpeed(v float64) {
	s.speed = vmath.Clamp(v, parameter.SpeedMin, parameter.SpeedMax)
	s.pop.SetSpeed(s.speed)
}

func (s *Simulation) Speed() float64 { return s.speed }

// SetSpawnPattern swaps the strategy for future batches
func (s *Simulation) SetSpawnPattern(p spawn.Pattern) {
	s.pattern = p
	s.pop.SetSpawnPattern(p)
}

// CyclePattern advances to the next stock pattern and returns it
func (s *Simulation) CyclePattern() spawn.Pattern {
	s.SetSpawnPattern(s.pattern.Next())
	return s.pattern
}

func (s *Simulation) Pattern() spawn.Pattern { return s.pattern }

func (s *Simulation) Population() *population.Population { return s.pop }

// Stats returns the statistics of the last Step
func (s *Simulation) Stats() population.Stats { return s.stats }

// Snapshot copies the current state for display
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Position:          s.hole.Position,
		Mass:              s.hole.Mass,
		Radius:            s.hole.Radius,
		PhotonSphere:      s.hole.PhotonSphere(),
		GravityMultiplier: s.params.GravityMultiplier,
		MaxForce:          s.params.MaxForce,
		ForceExponent:     s.params.ForceExponent,
		MinDistance:       s.params.MinDistance,
		Speed:             s.speed,
		Pattern:           s.pattern,
		Model:             s.popCfg.Ray.Model,
		Policy:            s.popCfg.Policy,
		Rays:              s.pop.Len(),
		Elapsed:           s.totalTime,
		Stats:             s.stats,
	}
}

// String renders the snapshot as the multi-line parameter dump
func (sn Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "black hole: pos=(%.3f, %.3f) mass=%.3f radius=%.3f photon ring=%.3f\n",
		sn.Position.X, sn.Position.Y, sn.Mass, sn.Radius, sn.PhotonSphere)
	fmt.Fprintf(&b, "gravity: multiplier=%.2f max force=%.1f exponent=%.2f min distance=%.4f\n",
		sn.GravityMultiplier, sn.MaxForce, sn.ForceExponent, sn.MinDistance)
	fmt.Fprintf(&b, "rays: %d speed=%.3f pattern=%s model=%s policy=%s\n",
		sn.Rays, sn.Speed, sn.Pattern, sn.Model, sn.Policy)
	fmt.Fprintf(&b, "frame %d: active=%d absorbed=%d orbiting=%d recycled=%d culled=%d spawned=%d",
		sn.Stats.Frame, sn.Stats.Active, sn.Stats.Absorbed, sn.Stats.Orbiting,
		sn.Stats.Recycled, sn.Stats.Culled, sn.Stats.Spawned)
	return b.String()
}
