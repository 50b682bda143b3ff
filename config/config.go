package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/audio"
	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/physics"
	"github.com/lixenwraith/lensing/population"
	"github.com/lixenwraith/lensing/ray"
	"github.com/lixenwraith/lensing/spawn"
	"github.com/lixenwraith/lensing/vmath"
)

// Sentinel errors re-exported so callers can branch without importing the core packages
var (
	ErrUnknownPattern = spawn.ErrUnknownPattern
	ErrUnknownModel   = physics.ErrUnknownModel
	ErrUnknownPolicy  = population.ErrUnknownPolicy
)

// Config is the full runtime configuration: file, then environment, then flags layer on top of Default
type Config struct {
	Seed       uint64           `toml:"seed"`
	Physics    PhysicsConfig    `toml:"physics"`
	BlackHole  BlackHoleConfig  `toml:"black_hole"`
	Population PopulationConfig `toml:"population"`
	Audio      AudioConfig      `toml:"audio"`
}

type PhysicsConfig struct {
	Model             string  `toml:"model"`
	GravityMultiplier float64 `toml:"gravity_multiplier"`
	MaxForce          float64 `toml:"max_force"`
	ForceExponent     float64 `toml:"force_exponent"`
	MinDistance       float64 `toml:"min_distance"`
	Boost             bool    `toml:"boost"`
}

type BlackHoleConfig struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Mass   float64 `toml:"mass"`
	Radius float64 `toml:"radius"`
}

type PopulationConfig struct {
	Pattern       string  `toml:"pattern"`
	Policy        string  `toml:"policy"`
	Capacity      int     `toml:"capacity"`
	BatchSize     int     `toml:"batch_size"`
	Segments      int     `toml:"segments"`
	Speed         float64 `toml:"speed"`
	SpawnInterval float64 `toml:"spawn_interval"`
	ClearOnSwitch bool    `toml:"clear_on_switch"`
	Workers       int     `toml:"workers"`
	ParallelMin   int     `toml:"parallel_min"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the stock configuration built from parameter constants
func Default() Config {
	return Config{
		Seed: 1,
		Physics: PhysicsConfig{
			Model:             physics.ModelNewtonian.String(),
			GravityMultiplier: parameter.GravityMultiplierDefault,
			MaxForce:          parameter.MaxForceDefault,
			ForceExponent:     parameter.ForceExponentDefault,
			MinDistance:       parameter.MinDistanceDefault,
			Boost:             true,
		},
		BlackHole: BlackHoleConfig{
			X:      parameter.BlackHoleXDefault,
			Y:      parameter.BlackHoleYDefault,
			Mass:   parameter.BlackHoleMassDefault,
			Radius: parameter.BlackHoleRadiusDefault,
		},
		Population: PopulationConfig{
			Pattern:       spawn.PatternFourEdges.String(),
			Policy:        population.PolicyRecycle.String(),
			Capacity:      parameter.PopulationCapacity,
			BatchSize:     parameter.PopulationBatchSize,
			Segments:      parameter.RaySegmentsDefault,
			Speed:         parameter.RaySpeedDefault,
			SpawnInterval: parameter.PopulationSpawnInterval,
			Workers:       parameter.PopulationWorkersDefault,
			ParallelMin:   parameter.PopulationParallelMinRays,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  parameter.AudioVolumeDefault,
		},
	}
}

// Load builds a config from Default, the TOML file at path (skipped when empty) and LENSING_* variables
// The result is validated and clamped
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %q: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	cfg.Clamp()
	return cfg, nil
}

// Write encodes cfg as TOML
func Write(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from LENSING_* environment variables
func (c *Config) ApplyEnv() error {
	var errs []error

	str := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	float := func(key string, dst *float64) {
		if v := os.Getenv(key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = f
		}
	}
	integer := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	boolean := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	if v := os.Getenv("LENSING_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("LENSING_SEED: %w", err))
		} else {
			c.Seed = seed
		}
	}

	str("LENSING_MODEL", &c.Physics.Model)
	float("LENSING_GRAVITY_MULTIPLIER", &c.Physics.GravityMultiplier)
	float("LENSING_MAX_FORCE", &c.Physics.MaxForce)
	float("LENSING_FORCE_EXPONENT", &c.Physics.ForceExponent)
	float("LENSING_MIN_DISTANCE", &c.Physics.MinDistance)
	boolean("LENSING_BOOST", &c.Physics.Boost)

	float("LENSING_MASS", &c.BlackHole.Mass)
	float("LENSING_RADIUS", &c.BlackHole.Radius)

	str("LENSING_PATTERN", &c.Population.Pattern)
	str("LENSING_POLICY", &c.Population.Policy)
	integer("LENSING_CAPACITY", &c.Population.Capacity)
	integer("LENSING_WORKERS", &c.Population.Workers)
	integer("LENSING_PARALLEL_MIN", &c.Population.ParallelMin)
	float("LENSING_SPEED", &c.Population.Speed)

	boolean("LENSING_AUDIO_ENABLED", &c.Audio.Enabled)
	// Volume as 0-100
	if v := os.Getenv("LENSING_VOLUME"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("LENSING_VOLUME: %w", err))
		} else {
			c.Audio.Volume = float64(n) / 100.0
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("environment: %w", errors.Join(errs...))
	}
	return nil
}

// Validate checks the named enums
func (c *Config) Validate() error {
	if _, err := physics.ParseModel(c.Physics.Model); err != nil {
		return fmt.Errorf("physics.model: %w", err)
	}
	if _, err := spawn.ParsePattern(c.Population.Pattern); err != nil {
		return fmt.Errorf("population.pattern: %w", err)
	}
	if _, err := population.ParsePolicy(c.Population.Policy); err != nil {
		return fmt.Errorf("population.policy: %w", err)
	}
	return nil
}

// Clamp forces every tunable into its runtime control range
func (c *Config) Clamp() {
	p := &c.Physics
	p.GravityMultiplier = vmath.Clamp(p.GravityMultiplier, parameter.GravityMultiplierMin, parameter.GravityMultiplierMax)
	p.MaxForce = vmath.Clamp(p.MaxForce, parameter.MaxForceMin, parameter.MaxForceMax)
	p.ForceExponent = vmath.Clamp(p.ForceExponent, parameter.ForceExponentMin, parameter.ForceExponentMax)
	p.MinDistance = vmath.Clamp(p.MinDistance, parameter.MinDistanceMin, parameter.MinDistanceMax)

	b := &c.BlackHole
	b.X = vmath.Clamp(b.X, -parameter.BlackHoleTravel, parameter.BlackHoleTravel)
	b.Y = vmath.Clamp(b.Y, -parameter.BlackHoleTravel, parameter.BlackHoleTravel)
	b.Mass = vmath.Clamp(b.Mass, parameter.MassMin, parameter.MassMax)
	b.Radius = vmath.Clamp(b.Radius, parameter.RadiusMin, parameter.RadiusMax)

	pop := &c.Population
	pop.Speed = vmath.Clamp(pop.Speed, parameter.SpeedMin, parameter.SpeedMax)
	if pop.Capacity < 1 {
		pop.Capacity = parameter.PopulationCapacity
	}
	if pop.BatchSize < 1 {
		pop.BatchSize = parameter.PopulationBatchSize
	}
	if pop.Segments < 1 {
		pop.Segments = parameter.RaySegmentsDefault
	}
	if pop.SpawnInterval <= 0 {
		pop.SpawnInterval = parameter.PopulationSpawnInterval
	}
	if pop.Workers < 0 {
		pop.Workers = 0
	}
	if pop.ParallelMin < 0 {
		pop.ParallelMin = 0
	}

	c.Audio.Volume = vmath.Clamp(c.Audio.Volume, 0, 1)
}

// Model returns the parsed physics model, Newtonian when the name is invalid
func (c *Config) Model() physics.Model {
	m, _ := physics.ParseModel(c.Physics.Model)
	return m
}

// Pattern returns the parsed spawn pattern, left-edge when the name is invalid
func (c *Config) Pattern() spawn.Pattern {
	p, _ := spawn.ParsePattern(c.Population.Pattern)
	return p
}

// Params converts the physics section into core gravity parameters
func (c *Config) Params() physics.Params {
	p := physics.DefaultParams()
	p.GravityMultiplier = c.Physics.GravityMultiplier
	p.MaxForce = c.Physics.MaxForce
	p.ForceExponent = c.Physics.ForceExponent
	p.MinDistance = c.Physics.MinDistance
	if !c.Physics.Boost {
		p.Boost = physics.BoostZone{}
	}
	return p
}

// Hole converts the black hole section into core state
func (c *Config) Hole() physics.BlackHole {
	return physics.BlackHole{
		Position: r2.Vec{X: c.BlackHole.X, Y: c.BlackHole.Y},
		Mass:     c.BlackHole.Mass,
		Radius:   c.BlackHole.Radius,
	}
}

// PopulationConfig converts the population section, selecting the ray profile for the model
func (c *Config) PopulationConfig() population.Config {
	policy, _ := population.ParsePolicy(c.Population.Policy)
	return population.Config{
		Capacity:      c.Population.Capacity,
		BatchSize:     c.Population.BatchSize,
		Segments:      c.Population.Segments,
		Speed:         c.Population.Speed,
		Policy:        policy,
		SpawnInterval: c.Population.SpawnInterval,
		ClearOnSwitch: c.Population.ClearOnSwitch,
		Workers:       c.Population.Workers,
		ParallelMin:   c.Population.ParallelMin,
		Ray:           ray.ConfigFor(c.Model()),
	}
}

// SoundConfig converts the audio section into engine settings
func (c *Config) SoundConfig() audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.Audio.Enabled
	a.Volume = c.Audio.Volume
	return a
}
