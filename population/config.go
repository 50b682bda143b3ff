package population

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/ray"
)

// Policy decides what happens to rays that leave the scene
type Policy uint8

const (
	// PolicyRecycle keeps a fixed pool: escaped or freshly absorbed rays reset in their slot
	PolicyRecycle Policy = iota
	// PolicyCull drops escaped rays and refills through periodic spawn ticks
	PolicyCull
)

var ErrUnknownPolicy = errors.New("unknown population policy")

func (p Policy) String() string {
	switch p {
	case PolicyRecycle:
		return "recycle"
	case PolicyCull:
		return "cull"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// ParsePolicy maps a config or flag value to a Policy
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recycle", "pool", "fixed", "":
		return PolicyRecycle, nil
	case "cull", "spawn":
		return PolicyCull, nil
	}
	return PolicyRecycle, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Config sizes the population and selects its lifecycle policy
type Config struct {
	Capacity  int
	BatchSize int
	Segments  int
	Speed     float64
	Policy    Policy

	// SpawnInterval is seconds between spawn ticks (cull policy only)
	SpawnInterval float64

	// ClearOnSwitch discards all rays when the spawn strategy changes
	ClearOnSwitch bool

	// Workers > 1 steps rays on a persistent worker pool
	Workers int
	// ParallelMin is the ray count below which the pool is bypassed
	ParallelMin int

	Ray ray.Config
}

// DefaultConfig returns a fixed-pool Newtonian population
func DefaultConfig() Config {
	return Config{
		Capacity:      parameter.PopulationCapacity,
		BatchSize:     parameter.PopulationBatchSize,
		Segments:      parameter.RaySegmentsDefault,
		Speed:         parameter.RaySpeedDefault,
		Policy:        PolicyRecycle,
		SpawnInterval: parameter.PopulationSpawnInterval,
		Workers:       parameter.PopulationWorkersDefault,
		ParallelMin:   parameter.PopulationParallelMinRays,
		Ray:           ray.NewtonianConfig(),
	}
}

// normalize replaces unusable sizes with defaults
func (c Config) normalize() Config {
	if c.Capacity < 1 {
		c.Capacity = parameter.PopulationCapacity
	}
	if c.BatchSize < 1 {
		c.BatchSize = parameter.PopulationBatchSize
	}
	if c.Segments < 1 {
		c.Segments = parameter.RaySegmentsDefault
	}
	if c.Speed <= 0 {
		c.Speed = parameter.RaySpeedDefault
	}
	if c.SpawnInterval <= 0 {
		c.SpawnInterval = parameter.PopulationSpawnInterval
	}
	if c.ParallelMin < 0 {
		c.ParallelMin = 0
	}
	return c
}
