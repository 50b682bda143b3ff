package physics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/vmath"
)

func paramGrid() []Params {
	var grid []Params
	for _, mult := range []float64{0, 0.1, 1, 3} {
		for _, maxF := range []float64{1, 15, 50} {
			for _, exp := range []float64{0.5, 1, 2, 4} {
				for _, minD := range []float64{0.0001, 0.001, 0.1} {
					p := DefaultParams()
					p.GravityMultiplier = mult
					p.MaxForce = maxF
					p.ForceExponent = exp
					p.MinDistance = minD
					grid = append(grid, p)
				}
			}
		}
	}
	return grid
}

// TestForceNeverExceedsCap verifies the cap is the final clamp, boost zone included
func TestForceNeverExceedsCap(t *testing.T) {
	center := r2.Vec{X: 0.5, Y: 0}
	rng := vmath.NewFastRand(42)

	for _, p := range paramGrid() {
		for i := 0; i < 200; i++ {
			pos := r2.Vec{X: rng.Range(-3, 3), Y: rng.Range(-3, 3)}
			mass := rng.Range(0.1, 5)
			f := Force(pos, center, mass, p)

			if !vmath.FiniteVec(f) {
				t.Fatalf("Non-finite force %v at %v with %+v", f, pos, p)
			}
			if mag := r2.Norm(f); mag > p.MaxForce+1e-9 {
				t.Errorf("Force magnitude %f exceeds cap %f (pos=%v, params=%+v)", mag, p.MaxForce, pos, p)
			}
		}
	}
}

// TestForceAtCenterIsFinite verifies a head exactly on the center yields a finite (zero) force
func TestForceAtCenterIsFinite(t *testing.T) {
	center := r2.Vec{X: 0.25, Y: -0.5}
	for _, p := range paramGrid() {
		f := Force(center, center, 1.0, p)
		if !vmath.FiniteVec(f) {
			t.Fatalf("Force at center is not finite: %v", f)
		}
		if f != (r2.Vec{}) {
			t.Errorf("Expected zero force at center, got %v", f)
		}
	}

	// Just off center, below the min distance clamp
	p := DefaultParams()
	f := Force(r2.Vec{X: 1e-9}, r2.Vec{}, 1.0, p)
	if !vmath.FiniteVec(f) {
		t.Fatalf("Force below clamp distance is not finite: %v", f)
	}
	if math.Abs(r2.Norm(f)-p.MaxForce) > 1e-9 {
		t.Errorf("Expected saturated force %f below clamp distance, got %f", p.MaxForce, r2.Norm(f))
	}
}

// TestForcePointsToCenter verifies direction and inverse-square magnitude outside the boost band
func TestForcePointsToCenter(t *testing.T) {
	p := DefaultParams()
	p.Boost = BoostZone{}

	f := Force(r2.Vec{X: -2, Y: 0}, r2.Vec{}, 1.0, p)
	if f.X <= 0 || math.Abs(f.Y) > 1e-12 {
		t.Errorf("Expected force along +X, got %v", f)
	}
	// 1 / 2² = 0.25
	if math.Abs(r2.Norm(f)-0.25) > 1e-12 {
		t.Errorf("Expected magnitude 0.25, got %f", r2.Norm(f))
	}

	p.ForceExponent = 1
	f = Force(r2.Vec{X: 0, Y: 2}, r2.Vec{}, 2.0, p)
	if f.Y >= 0 || math.Abs(f.X) > 1e-12 {
		t.Errorf("Expected force along -Y, got %v", f)
	}
	if math.Abs(r2.Norm(f)-1.0) > 1e-12 {
		t.Errorf("Expected magnitude 1.0 for exponent 1, got %f", r2.Norm(f))
	}
}

// TestBoostZone verifies the band multiplier applies only around the tuned radius
func TestBoostZone(t *testing.T) {
	p := DefaultParams()
	p.MaxForce = 1000
	plain := p
	plain.Boost = BoostZone{}

	inside := ForceMagnitude(p.Boost.Radius, 1.0, p)
	insidePlain := ForceMagnitude(p.Boost.Radius, 1.0, plain)
	if math.Abs(inside-insidePlain*p.Boost.Factor) > 1e-9 {
		t.Errorf("Expected boosted magnitude %f, got %f", insidePlain*p.Boost.Factor, inside)
	}

	outside := p.Boost.Radius + p.Boost.Band*2
	if ForceMagnitude(outside, 1.0, p) != ForceMagnitude(outside, 1.0, plain) {
		t.Error("Boost applied outside its band")
	}

	if (BoostZone{Radius: 0.3, Band: 0.05}).Active() {
		t.Error("Zone with zero factor should be inactive")
	}
}

// TestForceMagnitudeRespectsCapInsideBoost verifies boost cannot push past the cap
func TestForceMagnitudeRespectsCapInsideBoost(t *testing.T) {
	p := DefaultParams()
	p.MaxForce = 10
	p.GravityMultiplier = 3
	// 3 / 0.09 * 1.2 = 40 before capping
	if got := ForceMagnitude(p.Boost.Radius, 1.0, p); got != p.MaxForce {
		t.Errorf("Expected capped magnitude %f, got %f", p.MaxForce, got)
	}
}
