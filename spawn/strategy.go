package spawn

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/vmath"
)

// Descriptor is one launch request: where a ray starts, its heading and speed
type Descriptor struct {
	Position r2.Vec
	Angle    float64
	Speed    float64
	Segments int
}

// Strategy produces batches of launch descriptors along a geometric pattern
// Strategies are not safe for concurrent use; the population calls them between frames
type Strategy interface {
	CreateBatch(count int, speed float64, segments int) []Descriptor
	Name() string
}

// Pattern tags the stock strategies for runtime swapping
type Pattern uint8

const (
	PatternLeftEdge Pattern = iota
	PatternFourEdges
	PatternRadial
	PatternSpiral

	patternCount
)

// ErrUnknownPattern is returned by ParsePattern for unrecognized names
var ErrUnknownPattern = errors.New("unknown spawn pattern")

var patternNames = [patternCount]string{
	PatternLeftEdge:  "left-edge",
	PatternFourEdges: "four-edges",
	PatternRadial:    "radial",
	PatternSpiral:    "spiral",
}

func (p Pattern) String() string {
	if p < patternCount {
		return patternNames[p]
	}
	return fmt.Sprintf("pattern(%d)", uint8(p))
}

// Next returns the pattern after p, wrapping around
func (p Pattern) Next() Pattern {
	return (p + 1) % patternCount
}

// Patterns lists every stock pattern in cycle order
func Patterns() []Pattern {
	return []Pattern{PatternLeftEdge, PatternFourEdges, PatternRadial, PatternSpiral}
}

// ParsePattern maps a config or flag value to a Pattern
func ParsePattern(s string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left-edge", "left", "edge", "":
		return PatternLeftEdge, nil
	case "four-edges", "four-edge", "four", "edges":
		return PatternFourEdges, nil
	case "radial", "circle":
		return PatternRadial, nil
	case "spiral":
		return PatternSpiral, nil
	}
	return PatternLeftEdge, fmt.Errorf("%w: %q", ErrUnknownPattern, s)
}

// New builds the stock strategy for pattern with default geometry, drawing jitter from rng
func New(pattern Pattern, rng *vmath.FastRand) Strategy {
	switch pattern {
	case PatternFourEdges:
		return NewFourEdge(rng)
	case PatternRadial:
		return NewRadial(rng)
	case PatternSpiral:
		return NewSpiral(rng)
	default:
		return NewLeftEdge(rng)
	}
}

// jitter holds the per-ray noise amplitudes shared by all strategies
type jitter struct {
	rng      *vmath.FastRand
	position float64
	angle    float64
}

func (j jitter) offset() r2.Vec {
	return r2.Vec{X: j.rng.Jitter(j.position), Y: j.rng.Jitter(j.position)}
}

func (j jitter) heading(base float64) float64 {
	return base + j.rng.Jitter(j.angle)
}

func (j jitter) speed(base float64) float64 {
	return base * j.rng.Range(parameter.SpawnSpeedNoiseMin, parameter.SpawnSpeedNoiseMax)
}
