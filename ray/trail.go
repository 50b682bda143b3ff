package ray

import "gonum.org/v1/gonum/spatial/r2"

// Trail is a fixed-capacity ring of past head positions, newest first
// Push overwrites the oldest sample when full; stored samples are never modified
type Trail struct {
	points []r2.Vec
	head   int // index of the newest sample
	count  int
}

// NewTrail allocates a trail holding up to capacity samples (minimum 1)
func NewTrail(capacity int) Trail {
	if capacity < 1 {
		capacity = 1
	}
	return Trail{points: make([]r2.Vec, capacity), head: -1}
}

func (t *Trail) Len() int { return t.count }

func (t *Trail) Cap() int { return len(t.points) }

// At returns the i-th newest sample, 0 being the most recent
func (t *Trail) At(i int) r2.Vec {
	n := len(t.points)
	return t.points[((t.head-i)%n+n)%n]
}

// Newest returns the most recent sample and false when the trail is empty
func (t *Trail) Newest() (r2.Vec, bool) {
	if t.count == 0 {
		return r2.Vec{}, false
	}
	return t.points[t.head], true
}

// Push records p as the newest sample, trimming the oldest when full
func (t *Trail) Push(p r2.Vec) {
	n := len(t.points)
	t.head = (t.head + 1) % n
	t.points[t.head] = p
	if t.count < n {
		t.count++
	}
}

// Reset empties the trail without releasing storage
func (t *Trail) Reset() {
	t.head = -1
	t.count = 0
}

// AppendTo appends samples newest-first to dst
func (t *Trail) AppendTo(dst []r2.Vec) []r2.Vec {
	for i := 0; i < t.count; i++ {
		dst = append(dst, t.At(i))
	}
	return dst
}
