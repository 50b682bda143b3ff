package main

import (
	"time"

	"github.com/lixenwraith/lensing/config"
	"github.com/lixenwraith/lensing/engine"
)

// result is the outcome of one headless run
type result struct {
	Snapshot engine.Snapshot
	Frames   int
	DT       float64
	Wall     time.Duration

	// Per-frame series
	Active   []float64
	Absorbed []float64
	Orbiting []float64

	// Totals across the run
	Absorptions int
	Recycled    int
	Culled      int
	Spawned     int
	RaySteps    int
	PeakActive  int
}

// StepsPerSecond is ray steps divided by wall time
func (r result) StepsPerSecond() float64 {
	if r.Wall <= 0 {
		return 0
	}
	return float64(r.RaySteps) / r.Wall.Seconds()
}

// run steps a fresh simulation for frames fixed-dt ticks
func run(cfg config.Config, frames int, dt float64) result {
	sim := engine.NewSimulation(cfg)
	defer sim.Close()

	res := result{
		Frames:   frames,
		DT:       dt,
		Active:   make([]float64, 0, frames),
		Absorbed: make([]float64, 0, frames),
		Orbiting: make([]float64, 0, frames),
	}

	start := time.Now()
	for i := 0; i < frames; i++ {
		res.RaySteps += sim.Population().Len()
		st := sim.Step(dt)

		res.Active = append(res.Active, float64(st.Active))
		res.Absorbed = append(res.Absorbed, float64(st.Absorbed))
		res.Orbiting = append(res.Orbiting, float64(st.Orbiting))

		res.Absorptions += st.AbsorbedThisFrame
		res.Recycled += st.Recycled
		res.Culled += st.Culled
		res.Spawned += st.Spawned
		res.PeakActive = max(res.PeakActive, st.Active)
	}
	res.Wall = time.Since(start)
	res.Snapshot = sim.Snapshot()
	return res
}

// downsample averages series into at most width buckets
func downsample(series []float64, width int) []float64 {
	if width <= 0 || len(series) <= width {
		return series
	}
	out := make([]float64, width)
	for b := 0; b < width; b++ {
		lo := b * len(series) / width
		hi := (b + 1) * len(series) / width
		sum := 0.0
		for _, v := range series[lo:hi] {
			sum += v
		}
		out[b] = sum / float64(hi-lo)
	}
	return out
}
