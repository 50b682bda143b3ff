package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/vmath"
)

// FieldGrid is a decaying light-density accumulator over a square world region centered on the origin
// Rays deposit intensity along their newest segment each frame; Update fades the whole grid
type FieldGrid struct {
	size      int
	worldSize float64
	cells     []float64

	decay      float64
	brightness float64
	cutoff     float64
}

// NewFieldGrid creates the stock 100×100 grid over [-2, 2]²
func NewFieldGrid() *FieldGrid {
	return NewFieldGridSized(parameter.FieldGridSize, parameter.FieldWorldSize)
}

func NewFieldGridSized(size int, worldSize float64) *FieldGrid {
	if size < 1 {
		size = 1
	}
	return &FieldGrid{
		size:       size,
		worldSize:  worldSize,
		cells:      make([]float64, size*size),
		decay:      parameter.FieldDecayRate,
		brightness: parameter.FieldMaxBrightness,
		cutoff:     parameter.FieldCutoff,
	}
}

func (g *FieldGrid) Size() int { return g.size }

// cellOf converts a world point to unclamped grid coordinates, row 0 at the bottom
func (g *FieldGrid) cellOf(p r2.Vec) (int, int) {
	half := g.worldSize / 2
	scale := float64(g.size) / g.worldSize
	return int(math.Floor((p.X + half) * scale)), int(math.Floor((p.Y + half) * scale))
}

func (g *FieldGrid) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// Accumulate deposits intensity on every cell crossed by segment a→b, saturating at max brightness
func (g *FieldGrid) Accumulate(a, b r2.Vec, intensity float64) {
	if !vmath.FiniteVec(a) || !vmath.FiniteVec(b) {
		return
	}
	x0, y0 := g.cellOf(a)
	x1, y1 := g.cellOf(b)

	vmath.Line(x0, y0, x1, y1, func(x, y int) bool {
		if g.inside(x, y) {
			i := y*g.size + x
			g.cells[i] = min(g.cells[i]+intensity, g.brightness)
		}
		return true
	})
}

// Update decays every cell and snaps faint ones to zero
func (g *FieldGrid) Update() {
	for i, v := range g.cells {
		v *= g.decay
		if v < g.cutoff {
			v = 0
		}
		g.cells[i] = v
	}
}

// Intensity returns the raw value of grid cell (x, y), 0 outside the grid
func (g *FieldGrid) Intensity(x, y int) float64 {
	if !g.inside(x, y) {
		return 0
	}
	return g.cells[y*g.size+x]
}

// At samples the grid at a world point
func (g *FieldGrid) At(p r2.Vec) float64 {
	x, y := g.cellOf(p)
	return g.Intensity(x, y)
}

// Color maps a raw intensity onto the field palette
func (g *FieldGrid) Color(intensity float64) tcell.Color {
	return FieldColor(intensity / g.brightness)
}

func (g *FieldGrid) Clear() {
	clear(g.cells)
}
