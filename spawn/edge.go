package spawn

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/vmath"
)

// LeftEdge launches a parallel beam rightward from the left edge of the spawn square
type LeftEdge struct {
	HalfExtent float64
	jitter
}

func NewLeftEdge(rng *vmath.FastRand) *LeftEdge {
	return &LeftEdge{
		HalfExtent: parameter.SpawnHalfExtent,
		jitter:     jitter{rng: rng, position: parameter.SpawnPositionNoise, angle: parameter.SpawnEdgeAngleNoise},
	}
}

func (s *LeftEdge) Name() string { return PatternLeftEdge.String() }

func (s *LeftEdge) CreateBatch(count int, speed float64, segments int) []Descriptor {
	if count <= 0 {
		return nil
	}

	h := s.HalfExtent
	spacing := 2 * h / float64(count)
	batch := make([]Descriptor, 0, count)
	for i := 0; i < count; i++ {
		pos := r2.Vec{X: -h, Y: -h + spacing*float64(i) + spacing/2}
		batch = append(batch, Descriptor{
			Position: r2.Add(pos, s.offset()),
			Angle:    s.heading(parameter.HeadingRight),
			Speed:    s.speed(speed),
			Segments: segments,
		})
	}
	return batch
}

// edge is one side of the spawn square: rays sit along it and head inward
type edge struct {
	// fixed coordinate on the axis perpendicular to the edge
	fixed    float64
	vertical bool // true: rays vary along Y at x = fixed
	heading  float64
}

// FourEdge launches rays inward from all four sides of the spawn square
// Remainder rays go round robin: left, right, top, bottom
type FourEdge struct {
	HalfExtent float64
	jitter
}

func NewFourEdge(rng *vmath.FastRand) *FourEdge {
	return &FourEdge{
		HalfExtent: parameter.SpawnHalfExtent,
		jitter:     jitter{rng: rng, position: parameter.SpawnPositionNoise, angle: parameter.SpawnEdgeAngleNoise},
	}
}

func (s *FourEdge) Name() string { return PatternFourEdges.String() }

func (s *FourEdge) edges() [4]edge {
	h := s.HalfExtent
	return [4]edge{
		{fixed: -h, vertical: true, heading: parameter.HeadingRight},
		{fixed: h, vertical: true, heading: parameter.HeadingLeft},
		{fixed: h, vertical: false, heading: parameter.HeadingDown},
		{fixed: -h, vertical: false, heading: parameter.HeadingUp},
	}
}

// perEdge splits count across the four edges
func perEdge(count int) [4]int {
	var n [4]int
	base, rem := count/4, count%4
	for i := range n {
		n[i] = base
		if i < rem {
			n[i]++
		}
	}
	return n
}

func (s *FourEdge) CreateBatch(count int, speed float64, segments int) []Descriptor {
	if count <= 0 {
		return nil
	}

	h := s.HalfExtent
	counts := perEdge(count)
	batch := make([]Descriptor, 0, count)
	for e, side := range s.edges() {
		n := counts[e]
		spacing := 2 * h / float64(n+1)
		for i := 0; i < n; i++ {
			along := -h + spacing*float64(i+1)
			pos := r2.Vec{X: along, Y: side.fixed}
			if side.vertical {
				pos = r2.Vec{X: side.fixed, Y: along}
			}
			batch = append(batch, Descriptor{
				Position: r2.Add(pos, s.offset()),
				Angle:    s.heading(side.heading),
				Speed:    s.speed(speed),
				Segments: segments,
			})
		}
	}
	return batch
}
