package ray

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/physics"
	"github.com/lixenwraith/lensing/vmath"
)

// Ray is one light beam: an integrated head plus the trail of light it has already emitted
// Rays are values; a population stores them in a slot array and reinitializes slots in place
type Ray struct {
	cfg Config
	rng vmath.FastRand

	// Launch parameters, fixed for the ray's lifetime
	launchPos   r2.Vec
	launchAngle float64
	speed       float64

	head     r2.Vec
	velocity r2.Vec
	trail    Trail

	absorbed     bool
	absorbedTime float64

	// Geodesic model state
	properTime      float64
	angularMomentum float64
	momentumStale   bool
}

// New creates a ray placed exactly at pos heading along angle, without reset jitter
// capacity bounds the trail length; rng seeds the ray's private jitter source
func New(pos r2.Vec, angle, speed float64, capacity int, cfg Config, rng vmath.FastRand) Ray {
	r := Ray{
		cfg:         cfg,
		rng:         rng,
		launchPos:   pos,
		launchAngle: angle,
		speed:       speed,
		trail:       NewTrail(capacity),
	}
	r.place(pos, angle)
	return r
}

// Reset reinitializes the ray around its launch parameters with fresh jitter
func (r *Ray) Reset() {
	pos := r2.Vec{
		X: r.launchPos.X + r.rng.Jitter(r.cfg.PositionJitter),
		Y: r.launchPos.Y + r.rng.Jitter(r.cfg.PositionJitter),
	}
	angle := r.launchAngle + r.rng.Jitter(r.cfg.AngleJitter)
	r.place(pos, angle)
}

// place puts the head at pos and rebuilds a straight backward tail so the ray enters with a visible beam
func (r *Ray) place(pos r2.Vec, angle float64) {
	r.absorbed = false
	r.absorbedTime = 0
	r.properTime = 0
	r.angularMomentum = 0
	r.momentumStale = true

	r.head = pos
	r.velocity = vmath.FromAngle(angle, r.speed)

	dir := vmath.FromAngle(angle, 1)
	r.trail.Reset()
	for i := r.cfg.InitialTrail - 1; i > 0; i-- {
		r.trail.Push(r2.Sub(pos, r2.Scale(float64(i)*r.cfg.InitialSpacing, dir)))
	}
	r.trail.Push(pos)
}

// Step advances the ray by dt without applying any reset policy
// Returns true on the call that transitions the ray into the absorbed state
func (r *Ray) Step(dt float64, bh physics.BlackHole, params physics.Params) bool {
	if r.absorbed {
		r.absorbedTime += dt
		return false
	}

	prev := r.head
	switch r.cfg.Model {
	case physics.ModelGeodesic:
		r.stepGeodesic(dt, bh, params)
	default:
		r.stepNewtonian(dt, bh, params)
	}

	if vmath.Distance(r.head, bh.Position) < r.captureRadius(bh) {
		r.absorb(prev, bh)
		return true
	}

	r.record()
	return false
}

// Update steps the ray and resets it in place when it left the scene or stayed absorbed too long
func (r *Ray) Update(dt float64, bh physics.BlackHole, params physics.Params) {
	r.Step(dt, bh, params)
	if r.RespawnDue() || r.NeedsReset() {
		r.Reset()
	}
}

func (r *Ray) stepNewtonian(dt float64, bh physics.BlackHole, params physics.Params) {
	force := physics.Force(r.head, bh.Position, bh.Mass, params)
	prevVel := r.velocity
	r.velocity = r.renormalize(r2.Add(r.velocity, r2.Scale(dt, force)), prevVel)
	r.head = r2.Add(r.head, r2.Scale(dt, r.velocity))
}

func (r *Ray) stepGeodesic(dt float64, bh physics.BlackHole, params physics.Params) {
	if r.momentumStale {
		r.angularMomentum = physics.AngularMomentum(r.head, r.velocity, bh.Position)
		r.momentumStale = false
	}

	mass := bh.Mass * r.cfg.MassScale
	dist := vmath.Distance(r.head, bh.Position)
	h := physics.ProperStep(dt, physics.TimeDilationFactor(dist, mass))
	r.properTime += h

	accel := physics.GeodesicDeflection(r.head, r.velocity, bh.Position, mass, r.angularMomentum, params)
	prevVel := r.velocity
	r.velocity = r.renormalize(r2.Add(r.velocity, r2.Scale(h, accel)), prevVel)
	r.head = r2.Add(r.head, r2.Scale(h, r.velocity))
}

// captureRadius is the horizon radius, widened to rs in the geodesic model
// Inside rs the floored dilation factor lengthens the step, so the ray is taken there instead
func (r *Ray) captureRadius(bh physics.BlackHole) float64 {
	if r.cfg.Model != physics.ModelGeodesic {
		return bh.Radius
	}
	return max(bh.Radius, physics.SchwarzschildRadius(bh.Mass*r.cfg.MassScale))
}

// renormalize locks next to the base speed; a near-zero vector keeps the previous heading
func (r *Ray) renormalize(next, prev r2.Vec) r2.Vec {
	if v, ok := vmath.WithLength(next, r.speed, parameter.RayMinSpeed); ok {
		return v
	}
	if v, ok := vmath.WithLength(prev, r.speed, 0); ok {
		return v
	}
	return vmath.FromAngle(r.launchAngle, r.speed)
}

// absorb snaps the head onto the horizon along the center→head line and freezes the ray
func (r *Ray) absorb(prev r2.Vec, bh physics.BlackHole) {
	dir, d := vmath.Normalize(r2.Sub(r.head, bh.Position))
	if d == 0 {
		dir, d = vmath.Normalize(r2.Sub(prev, bh.Position))
	}
	if d == 0 {
		dir, d = vmath.Normalize(r2.Scale(-1, r.velocity))
	}
	if d == 0 {
		dir = r2.Vec{X: -1}
	}

	r.head = r2.Add(bh.Position, r2.Scale(bh.Radius, dir))
	r.velocity = r2.Scale(r.cfg.AbsorbDamping, r.velocity)
	r.absorbed = true
	r.absorbedTime = 0
	r.record()
}

// record prepends the head when it moved past the minimum spacing from the newest sample
func (r *Ray) record() {
	last, ok := r.trail.Newest()
	if !ok || vmath.Distance(r.head, last) > r.cfg.MinSpacing {
		r.trail.Push(r.head)
	}
}

// RespawnDue reports an absorbed ray that has waited past the respawn delay
func (r *Ray) RespawnDue() bool {
	return r.absorbed && r.absorbedTime > r.cfg.RespawnDelay
}

// NeedsReset reports a ray that escaped the scene or whose recent trail is entirely off view
func (r *Ray) NeedsReset() bool {
	if r.trail.Len() == 0 {
		return true
	}
	if vmath.Distance(r.head, r.cfg.SceneCenter) > r.cfg.EscapeRadius {
		return true
	}
	if r.inView(r.head) {
		return false
	}

	n := min(r.cfg.VisibleSamples, r.trail.Len())
	for i := 0; i < n; i++ {
		if r.inView(r.trail.At(i)) {
			return false
		}
	}
	return true
}

func (r *Ray) inView(p r2.Vec) bool {
	c := r.cfg.SceneCenter
	h := r.cfg.HalfExtent
	return math.Abs(p.X-c.X) <= h && math.Abs(p.Y-c.Y) <= h
}

// IsOrbiting reports a low-variance, close-in recent trail around center (diagnostic only)
func (r *Ray) IsOrbiting(center r2.Vec) bool {
	n := r.cfg.OrbitSamples
	if n <= 0 || r.trail.Len() < n {
		return false
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += vmath.Distance(r.trail.At(i), center)
	}
	mean := sum / float64(n)

	var variance float64
	for i := 0; i < n; i++ {
		d := vmath.Distance(r.trail.At(i), center) - mean
		variance += d * d
	}
	variance /= float64(n)

	return variance < r.cfg.OrbitVariance && mean < r.cfg.OrbitRadius
}

// SetSpeed changes the base speed; an active ray rescales its velocity immediately
func (r *Ray) SetSpeed(s float64) {
	if s <= 0 {
		return
	}
	r.speed = s
	if r.absorbed {
		return
	}
	if v, ok := vmath.WithLength(r.velocity, s, 0); ok {
		r.velocity = v
	} else {
		r.velocity = vmath.FromAngle(r.launchAngle, s)
	}
	r.momentumStale = true
}

func (r *Ray) Head() r2.Vec { return r.head }

func (r *Ray) Velocity() r2.Vec { return r.velocity }

func (r *Ray) Speed() float64 { return r.speed }

func (r *Ray) Absorbed() bool { return r.absorbed }

func (r *Ray) TimeSinceAbsorption() float64 { return r.absorbedTime }

func (r *Ray) ProperTime() float64 { return r.properTime }

func (r *Ray) AngularMomentum() float64 { return r.angularMomentum }

func (r *Ray) Model() physics.Model { return r.cfg.Model }

// Launch returns the fixed launch position and angle
func (r *Ray) Launch() (r2.Vec, float64) { return r.launchPos, r.launchAngle }

// Trail exposes the trail for read-only iteration
func (r *Ray) Trail() *Trail { return &r.trail }

// AppendTrail appends the trail newest-first to dst
func (r *Ray) AppendTrail(dst []r2.Vec) []r2.Vec {
	return r.trail.AppendTo(dst)
}
