package vmath

// LineTraverser is a zero-allocation Bresenham iterator over integer grid cells
// Both endpoints are visited; consecutive cells are 8-connected
type LineTraverser struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int
	dx, dy           int
	err              int

	started bool
	done    bool
}

// NewLineTraverser creates an iterator from (x0, y0) to (x1, y1)
func NewLineTraverser(x0, y0, x1, y1 int) LineTraverser {
	t := LineTraverser{
		currX: x0, currY: y0,
		targetX: x1, targetY: y1,
		stepX: 1, stepY: 1,
	}

	t.dx = x1 - x0
	if t.dx < 0 {
		t.dx = -t.dx
		t.stepX = -1
	}
	// dy is kept negative
	t.dy = y0 - y1
	if t.dy > 0 {
		t.dy = -t.dy
		t.stepY = -1
	}
	t.err = t.dx + t.dy
	return t
}

// Next advances to the next cell
// Returns true if a valid cell is available via Pos()
func (t *LineTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}
	if t.currX == t.targetX && t.currY == t.targetY {
		t.done = true
		return false
	}

	e2 := 2 * t.err
	if e2 >= t.dy {
		t.err += t.dy
		t.currX += t.stepX
	}
	if e2 <= t.dx {
		t.err += t.dx
		t.currY += t.stepY
	}
	return true
}

// Pos returns the current grid coordinates
func (t *LineTraverser) Pos() (int, int) {
	return t.currX, t.currY
}

// Line visits every cell from (x0, y0) to (x1, y1); the callback returns false to stop early
func Line(x0, y0, x1, y1 int, callback func(x, y int) bool) {
	t := NewLineTraverser(x0, y0, x1, y1)
	for t.Next() {
		if !callback(t.Pos()) {
			return
		}
	}
}
