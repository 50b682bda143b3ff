package vmath

import "math"

// Epsilon is the tolerance used by zero-safe vector operations
const Epsilon = 1e-12

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b, t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// WrapAngle folds an angle into [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Finite reports whether f is neither NaN nor ±Inf
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// --- Randomness ---

// FastRand is a xorshift64 generator, cheap enough to embed by value in every ray
type FastRand struct {
	state uint64
}

// NewFastRand returns a generator seeded with seed (0 is remapped, xorshift has no zero state)
func NewFastRand(seed uint64) *FastRand {
	r := &FastRand{}
	r.Seed(seed)
	return r
}

// Seed resets the generator state
func (r *FastRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	r.state = seed
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Jitter returns uniform noise in [-amp, amp)
func (r *FastRand) Jitter(amp float64) float64 {
	if amp == 0 {
		return 0
	}
	return r.Range(-amp, amp)
}

// Split derives an independent generator, used to hand per-entity state out of one seeded source
func (r *FastRand) Split() FastRand {
	// splitmix64 finalizer decorrelates consecutive child seeds
	z := r.Next() + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	var child FastRand
	child.Seed(z)
	return child
}
