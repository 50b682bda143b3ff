package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/lensing/parameter"
)

// FrameClock turns wall time into simulation deltas with pause support
// Tick is called from the frame loop; Pause/Resume may come from the input goroutine
type FrameClock struct {
	mu sync.Mutex

	provider TimeProvider
	last     time.Time
	maxDelta float64

	isPaused atomic.Bool

	// Simulated seconds, excluding pauses
	elapsed float64
	frames  uint64
}

// NewFrameClock creates a clock reading provider, NewMonotonicTimeProvider when nil
func NewFrameClock(provider TimeProvider) *FrameClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &FrameClock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: parameter.FrameMaxDelta,
	}
}

// SetMaxDelta caps a single tick; values <= 0 disable the cap
func (c *FrameClock) SetMaxDelta(d float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxDelta = d
}

// Tick returns seconds since the previous tick, 0 while paused
// Large gaps are capped so a stalled terminal does not teleport rays
func (c *FrameClock) Tick() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now

	if c.isPaused.Load() || dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.elapsed += dt
	c.frames++
	return dt
}

// Pause freezes simulation time
func (c *FrameClock) Pause() {
	c.isPaused.Store(true)
}

// Resume continues from now; the paused interval is never replayed
func (c *FrameClock) Resume() {
	if c.isPaused.CompareAndSwap(true, false) {
		c.mu.Lock()
		c.last = c.provider.Now()
		c.mu.Unlock()
	}
}

// Toggle flips the pause state and reports whether the clock is now paused
func (c *FrameClock) Toggle() bool {
	if c.IsPaused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

func (c *FrameClock) IsPaused() bool {
	return c.isPaused.Load()
}

// Elapsed returns total simulated seconds
func (c *FrameClock) Elapsed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Frames returns the number of non-paused ticks
func (c *FrameClock) Frames() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}
