package population

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/physics"
	"github.com/lixenwraith/lensing/ray"
	"github.com/lixenwraith/lensing/spawn"
	"github.com/lixenwraith/lensing/vmath"
)

// Stats summarizes one frame of population activity
type Stats struct {
	Active            int
	Absorbed          int
	Orbiting          int
	AbsorbedThisFrame int
	Recycled          int
	Culled            int
	Spawned           int
	Frame             uint64
}

// Population owns the ray slot array and applies spawn/reset/cull policy each frame
// Not safe for concurrent use; the optional worker pool is internal to Update
type Population struct {
	cfg      Config
	strategy spawn.Strategy
	rng      *vmath.FastRand

	rays        []ray.Ray
	absorbedNow []bool

	speed      float64
	spawnTimer float64
	stats      Stats

	pool *workerPool
}

// New creates an empty population; call Fill or SpawnBatch to add rays
// rng seeds every ray and is shared with strategies built by SetSpawnPattern
func New(cfg Config, strategy spawn.Strategy, rng *vmath.FastRand) *Population {
	cfg = cfg.normalize()
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	if strategy == nil {
		strategy = spawn.NewLeftEdge(rng)
	}

	p := &Population{
		cfg:      cfg,
		strategy: strategy,
		rng:      rng,
		rays:     make([]ray.Ray, 0, cfg.Capacity),
		speed:    cfg.Speed,
	}
	// A pool that capacity can never reach ParallelMin would only idle
	if cfg.Workers > 1 && cfg.Capacity >= cfg.ParallelMin {
		p.pool = newWorkerPool(cfg.Workers)
		p.pool.Start()
	}
	return p
}

// SpawnBatch appends up to BatchSize rays from the current strategy, never exceeding capacity
// Returns the number of rays added
func (p *Population) SpawnBatch() int {
	room := p.cfg.Capacity - len(p.rays)
	if room <= 0 {
		return 0
	}

	batch := p.strategy.CreateBatch(min(p.cfg.BatchSize, room), p.speed, p.cfg.Segments)
	for _, d := range batch {
		if len(p.rays) >= p.cfg.Capacity {
			break
		}
		segments := d.Segments
		if segments < 1 {
			segments = p.cfg.Segments
		}
		p.rays = append(p.rays, ray.New(
			d.Position, d.Angle, d.Speed,
			segments*parameter.RayTrailPerSegment,
			p.cfg.Ray, p.rng.Split(),
		))
	}
	return len(batch)
}

// Fill spawns batches until the population is at capacity
func (p *Population) Fill() int {
	total := 0
	for {
		n := p.SpawnBatch()
		if n == 0 {
			return total
		}
		total += n
	}
}

// Update steps every ray, then applies the lifecycle policy serially
func (p *Population) Update(dt float64, bh physics.BlackHole, params physics.Params) Stats {
	n := len(p.rays)
	if cap(p.absorbedNow) < n {
		p.absorbedNow = make([]bool, n)
	}
	p.absorbedNow = p.absorbedNow[:n]

	if p.pool != nil && n >= p.cfg.ParallelMin {
		p.pool.step(p.rays, p.absorbedNow, dt, bh, params)
	} else {
		for i := range p.rays {
			p.absorbedNow[i] = p.rays[i].Step(dt, bh, params)
		}
	}

	stats := Stats{Frame: p.stats.Frame + 1}
	for _, a := range p.absorbedNow {
		if a {
			stats.AbsorbedThisFrame++
		}
	}

	switch p.cfg.Policy {
	case PolicyCull:
		p.cull(&stats)
		p.spawnTimer += dt
		if p.spawnTimer >= p.cfg.SpawnInterval {
			p.spawnTimer = 0
			stats.Spawned = p.SpawnBatch()
		}
	default:
		p.recycle(&stats)
	}

	p.count(&stats, bh.Position)
	p.stats = stats
	return stats
}

// recycle resets rays in place so the slot count never changes
func (p *Population) recycle(stats *Stats) {
	for i := range p.rays {
		r := &p.rays[i]
		if r.RespawnDue() || r.NeedsReset() || p.absorbedNow[i] {
			r.Reset()
			stats.Recycled++
		}
	}
}

// cull drops escaped active rays with a stable compaction; absorbed rays wait out their timer
func (p *Population) cull(stats *Stats) {
	n := len(p.rays)
	kept := 0
	for i := 0; i < n; i++ {
		r := &p.rays[i]
		switch {
		case r.RespawnDue():
			r.Reset()
			stats.Recycled++
		case r.NeedsReset() && !r.Absorbed():
			stats.Culled++
			continue
		}
		if kept != i {
			p.rays[kept] = p.rays[i]
		}
		kept++
	}
	clear(p.rays[kept:n])
	p.rays = p.rays[:kept]
}

func (p *Population) count(stats *Stats, center r2.Vec) {
	for i := range p.rays {
		r := &p.rays[i]
		if r.Absorbed() {
			stats.Absorbed++
			continue
		}
		stats.Active++
		if r.IsOrbiting(center) {
			stats.Orbiting++
		}
	}
}

// SetSpawnPattern swaps in the stock strategy for pattern
func (p *Population) SetSpawnPattern(pattern spawn.Pattern) {
	p.SetSpawnStrategy(spawn.New(pattern, p.rng))
}

// SetSpawnStrategy swaps the strategy used by future batches
// With ClearOnSwitch all rays are discarded and a fresh batch spawned right away
func (p *Population) SetSpawnStrategy(s spawn.Strategy) {
	if s == nil {
		return
	}
	p.strategy = s
	if !p.cfg.ClearOnSwitch {
		return
	}

	p.Clear()
	if p.cfg.Policy == PolicyRecycle {
		p.Fill()
	} else {
		p.SpawnBatch()
	}
}

// SetSpeed applies a new base speed to every ray and to future batches
func (p *Population) SetSpeed(s float64) {
	if s <= 0 {
		return
	}
	p.speed = s
	for i := range p.rays {
		p.rays[i].SetSpeed(s)
	}
}

// Clear discards every ray and restarts the spawn timer
func (p *Population) Clear() {
	clear(p.rays)
	p.rays = p.rays[:0]
	p.spawnTimer = 0
}

// Close stops the worker pool; the population stays usable on the calling goroutine
func (p *Population) Close() {
	if p.pool != nil {
		p.pool.Stop()
		p.pool = nil
	}
}

func (p *Population) Len() int { return len(p.rays) }

func (p *Population) Capacity() int { return p.cfg.Capacity }

func (p *Population) Speed() float64 { return p.speed }

func (p *Population) Policy() Policy { return p.cfg.Policy }

// Parallel reports whether a worker pool is running
func (p *Population) Parallel() bool { return p.pool != nil }

// Ray returns the ray in slot i; the pointer is invalidated by the next Update under the cull policy
func (p *Population) Ray(i int) *ray.Ray { return &p.rays[i] }

// Each visits every ray in slot order
func (p *Population) Each(fn func(i int, r *ray.Ray)) {
	for i := range p.rays {
		fn(i, &p.rays[i])
	}
}

// Stats returns the statistics of the last Update
func (p *Population) Stats() Stats { return p.stats }

func (p *Population) StrategyName() string { return p.strategy.Name() }
