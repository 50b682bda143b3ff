package ray

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// TestTrailOrdering verifies newest-first access and oldest-first eviction
func TestTrailOrdering(t *testing.T) {
	tr := NewTrail(3)
	if _, ok := tr.Newest(); ok {
		t.Error("Empty trail reported a newest sample")
	}

	for i := 1; i <= 5; i++ {
		tr.Push(r2.Vec{X: float64(i)})
	}

	if tr.Len() != 3 || tr.Cap() != 3 {
		t.Fatalf("Expected len 3 cap 3, got %d/%d", tr.Len(), tr.Cap())
	}
	want := []float64{5, 4, 3}
	for i, x := range want {
		if got := tr.At(i).X; got != x {
			t.Errorf("At(%d): expected %v, got %v", i, x, got)
		}
	}
	if p, ok := tr.Newest(); !ok || p.X != 5 {
		t.Errorf("Expected newest 5, got %v", p)
	}

	got := tr.AppendTo([]r2.Vec{{X: -1}})
	if len(got) != 4 || got[0].X != -1 || got[1].X != 5 || got[3].X != 3 {
		t.Errorf("Unexpected AppendTo result %v", got)
	}
}

// TestTrailReset verifies reset empties without shrinking storage
func TestTrailReset(t *testing.T) {
	tr := NewTrail(0)
	if tr.Cap() != 1 {
		t.Errorf("Expected minimum capacity 1, got %d", tr.Cap())
	}

	tr = NewTrail(4)
	tr.Push(r2.Vec{X: 1})
	tr.Push(r2.Vec{X: 2})
	tr.Reset()
	if tr.Len() != 0 || tr.Cap() != 4 {
		t.Errorf("Expected empty trail with cap 4, got %d/%d", tr.Len(), tr.Cap())
	}

	tr.Push(r2.Vec{X: 7})
	if p, _ := tr.Newest(); p.X != 7 || tr.Len() != 1 {
		t.Errorf("Push after reset: got %v len %d", p, tr.Len())
	}
}
