package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/physics"
	"github.com/lixenwraith/lensing/population"
	"github.com/lixenwraith/lensing/ray"
	"github.com/lixenwraith/lensing/vmath"
)

const (
	trailRune   = '·'
	headRune    = '•'
	ringRune    = '∘'
	horizonRune = ' '
	rimRune     = '░'
)

// SceneSource is the read side of a running simulation
type SceneSource interface {
	Hole() physics.BlackHole
	Population() *population.Population
}

// Renderer owns the light-density field and draws frames onto a tcell screen
// Reads population state between frames only; never call concurrently with Update
type Renderer struct {
	field   *FieldGrid
	scratch []r2.Vec
}

func NewRenderer() *Renderer {
	return &Renderer{field: NewFieldGrid()}
}

// Field exposes the accumulator for inspection
func (r *Renderer) Field() *FieldGrid { return r.field }

// Advance deposits each active ray's newest segment into the field, then decays it
func (r *Renderer) Advance(src SceneSource) {
	src.Population().Each(func(_ int, rr *ray.Ray) {
		if rr.Absorbed() {
			return
		}
		t := rr.Trail()
		if t.Len() < 2 {
			return
		}
		r.field.Accumulate(t.At(1), t.At(0), parameter.FieldRayIntensity)
	})
	r.field.Update()
}

// DrawScene paints field, trails, photon ring and horizon, back to front
func (r *Renderer) DrawScene(screen tcell.Screen, vp Viewport, src SceneSource) {
	r.drawField(screen, vp)

	src.Population().Each(func(_ int, rr *ray.Ray) {
		r.drawTrail(screen, vp, rr)
	})

	hole := src.Hole()
	drawRing(screen, vp, hole.Position, hole.PhotonSphere(), ringRune, RgbPhotonRing)
	drawHorizon(screen, vp, hole)
}

func (r *Renderer) drawField(screen tcell.Screen, vp Viewport) {
	for y := 0; y < vp.Height; y++ {
		for x := 0; x < vp.Width; x++ {
			v := r.field.At(vp.ToWorld(x, y))
			style := tcell.StyleDefault.Background(r.field.Color(v))
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawTrail(screen tcell.Screen, vp Viewport, rr *ray.Ray) {
	r.scratch = rr.AppendTrail(r.scratch[:0])
	n := len(r.scratch)
	if n == 0 {
		return
	}

	absorbed := rr.Absorbed()
	// Oldest first so newer segments overwrite
	for i := n - 1; i > 0; i-- {
		fg := RgbAbsorbedRay
		if !absorbed {
			fg = TrailColor(float64(i) / float64(n))
		}
		x0, y0, _ := vp.ToCell(r.scratch[i])
		x1, y1, _ := vp.ToCell(r.scratch[i-1])
		plotLine(screen, vp, x0, y0, x1, y1, trailRune, fg)
	}

	if hx, hy, ok := vp.ToCell(r.scratch[0]); ok {
		fg := RgbTrailHead
		if absorbed {
			fg = RgbAbsorbedRay
		}
		setGlyph(screen, hx, hy, headRune, fg)
	}
}

// plotLine draws the cell line between two possibly off-screen endpoints
func plotLine(screen tcell.Screen, vp Viewport, x0, y0, x1, y1 int, ch rune, fg tcell.Color) {
	// Skip segments spanning a wrap or a discontinuity far off screen
	if abs(x1-x0) > 2*vp.Width || abs(y1-y0) > 2*vp.Height {
		return
	}
	vmath.Line(x0, y0, x1, y1, func(x, y int) bool {
		if vp.Contains(x, y) {
			setGlyph(screen, x, y, ch, fg)
		}
		return true
	})
}

// setGlyph writes a foreground glyph while keeping the cell's current background
func setGlyph(screen tcell.Screen, x, y int, ch rune, fg tcell.Color) {
	_, _, style, _ := screen.GetContent(x, y)
	screen.SetContent(x, y, ch, nil, style.Foreground(fg))
}

func drawRing(screen tcell.Screen, vp Viewport, center r2.Vec, radius float64, ch rune, fg tcell.Color) {
	segments := parameter.HorizonRingSegments
	for i := 0; i < segments; i++ {
		p := r2.Add(center, vmath.FromAngle(2*math.Pi*float64(i)/float64(segments), radius))
		if x, y, ok := vp.ToCell(p); ok {
			setGlyph(screen, x, y, ch, fg)
		}
	}
}

// drawHorizon blacks out every cell whose center lies inside the horizon
// A horizon smaller than one cell still marks the cell holding its center
func drawHorizon(screen tcell.Screen, vp Viewport, hole physics.BlackHole) {
	cx, cy, _ := vp.ToCell(hole.Position)
	rows := int(math.Ceil(hole.Radius*vp.rowsPerUnit())) + 1
	cols := int(math.Ceil(hole.Radius*vp.colsPerUnit())) + 1

	disc := tcell.StyleDefault.Background(RgbHorizon).Foreground(RgbHorizonEdge)
	for y := cy - rows; y <= cy+rows; y++ {
		for x := cx - cols; x <= cx+cols; x++ {
			if !vp.Contains(x, y) {
				continue
			}
			if vmath.Distance(vp.ToWorld(x, y), hole.Position) <= hole.Radius {
				screen.SetContent(x, y, horizonRune, nil, disc)
			}
		}
	}
	if vp.Contains(cx, cy) {
		screen.SetContent(cx, cy, horizonRune, nil, disc)
	}

	drawRing(screen, vp, hole.Position, hole.Radius, rimRune, RgbHorizonEdge)
}

// DrawText writes s starting at (x, y), clipped to the screen width
// Wide runes take two cells and zero-width runes are dropped; returns the column after the last rune
func DrawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, _ := screen.Size()
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw < 1 {
			continue
		}
		if x+cw > w {
			break
		}
		if x >= 0 {
			screen.SetContent(x, y, ch, nil, style)
		}
		x += cw
	}
	return x
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
