package spawn

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/vmath"
)

// Radial launches rays from a ring around Center, each heading back toward it
type Radial struct {
	Center r2.Vec
	Radius float64
	jitter
}

func NewRadial(rng *vmath.FastRand) *Radial {
	return &Radial{
		Radius: parameter.SpawnRadialRadius,
		jitter: jitter{rng: rng, angle: parameter.SpawnRadialAngleNoise},
	}
}

func (s *Radial) Name() string { return PatternRadial.String() }

func (s *Radial) CreateBatch(count int, speed float64, segments int) []Descriptor {
	if count <= 0 {
		return nil
	}

	batch := make([]Descriptor, 0, count)
	for i := 0; i < count; i++ {
		theta := 2 * math.Pi * float64(i) / float64(count)
		r := s.Radius * s.rng.Range(parameter.SpawnRadiusNoiseMin, parameter.SpawnRadiusNoiseMax)
		batch = append(batch, Descriptor{
			Position: r2.Add(s.Center, vmath.FromAngle(theta, r)),
			Angle:    s.heading(theta + math.Pi),
			Speed:    s.speed(speed),
			Segments: segments,
		})
	}
	return batch
}

// Spiral places rays on a contracting arc whose phase carries over between batches
type Spiral struct {
	Center      r2.Vec
	StartRadius float64
	EndRadius   float64
	Increment   float64

	phase float64
	jitter
}

func NewSpiral(rng *vmath.FastRand) *Spiral {
	return &Spiral{
		StartRadius: parameter.SpawnSpiralStartRadius,
		EndRadius:   parameter.SpawnSpiralEndRadius,
		Increment:   parameter.SpawnSpiralIncrement,
		jitter:      jitter{rng: rng, angle: parameter.SpawnRadialAngleNoise},
	}
}

func (s *Spiral) Name() string { return PatternSpiral.String() }

// Phase returns the angle the next spawned ray will use
func (s *Spiral) Phase() float64 { return s.phase }

func (s *Spiral) CreateBatch(count int, speed float64, segments int) []Descriptor {
	if count <= 0 {
		return nil
	}

	batch := make([]Descriptor, 0, count)
	for i := 0; i < count; i++ {
		// The last ray stops one step short of EndRadius
		r := vmath.Lerp(s.StartRadius, s.EndRadius, float64(i)/float64(count))
		batch = append(batch, Descriptor{
			Position: r2.Add(s.Center, vmath.FromAngle(s.phase, r)),
			Angle:    s.heading(s.phase + math.Pi),
			Speed:    s.speed(speed),
			Segments: segments,
		})

		s.phase = vmath.WrapAngle(s.phase + s.Increment)
	}
	return batch
}
