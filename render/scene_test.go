package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/physics"
	"github.com/lixenwraith/lensing/population"
	"github.com/lixenwraith/lensing/spawn"
	"github.com/lixenwraith/lensing/vmath"
)

// singleStrategy launches every ray from one descriptor
type singleStrategy struct {
	d spawn.Descriptor
}

func (s singleStrategy) Name() string { return "single" }

func (s singleStrategy) CreateBatch(count int, speed float64, segments int) []spawn.Descriptor {
	batch := make([]spawn.Descriptor, count)
	for i := range batch {
		batch[i] = s.d
		batch[i].Speed = speed
		batch[i].Segments = segments
	}
	return batch
}

type testSource struct {
	hole physics.BlackHole
	pop  *population.Population
}

func (s testSource) Hole() physics.BlackHole            { return s.hole }
func (s testSource) Population() *population.Population { return s.pop }

func newTestSource(t *testing.T) testSource {
	t.Helper()
	cfg := population.DefaultConfig()
	cfg.Capacity = 1
	cfg.BatchSize = 1
	strategy := singleStrategy{d: spawn.Descriptor{Position: r2.Vec{X: -1.5, Y: 1.0}, Angle: 0}}
	pop := population.New(cfg, strategy, vmath.NewFastRand(1))
	pop.Fill()
	t.Cleanup(pop.Close)

	return testSource{
		hole: physics.BlackHole{Mass: 1.0, Radius: 0.3},
		pop:  pop,
	}
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// TestDrawScene verifies trail, head, photon ring and horizon land on expected cells
func TestDrawScene(t *testing.T) {
	src := newTestSource(t)
	screen := newTestScreen(t, 80, 44)
	vp := NewViewport(80, 44)

	NewRenderer().DrawScene(screen, vp, src)

	// Head at (-1.5, 1.0): column 40-30, row 22-10
	ch, _, style, _ := screen.GetContent(10, 12)
	fg, _, _ := style.Decompose()
	if ch != headRune || fg != RgbTrailHead {
		t.Errorf("Expected head glyph at (10,12), got %q fg %v", ch, fg)
	}

	// Initial trail extends back along the row
	if ch, _, _, _ := screen.GetContent(4, 12); ch != trailRune {
		t.Errorf("Expected trail glyph at (4,12), got %q", ch)
	}

	// Photon ring at 1.5R = 0.45 to the right of the hole
	ch, _, style, _ = screen.GetContent(49, 22)
	fg, _, _ = style.Decompose()
	if ch != ringRune || fg != RgbPhotonRing {
		t.Errorf("Expected photon ring at (49,22), got %q fg %v", ch, fg)
	}

	// Horizon interior is blanked
	ch, _, style, _ = screen.GetContent(40, 22)
	fg, bg, _ := style.Decompose()
	if ch != horizonRune || bg != RgbHorizon || fg != RgbHorizonEdge {
		t.Errorf("Expected horizon at (40,22), got %q fg %v bg %v", ch, fg, bg)
	}
}

// TestAdvanceDepositsLight verifies active rays brighten the field along their newest segment
func TestAdvanceDepositsLight(t *testing.T) {
	src := newTestSource(t)
	r := NewRenderer()

	r.Advance(src)
	head := src.pop.Ray(0).Head()
	if v := r.Field().At(head); v <= 0 {
		t.Errorf("Expected light at ray head, got %f", v)
	}

	r.Field().Clear()
	src.pop.Clear()
	r.Advance(src)
	if v := r.Field().At(head); v != 0 {
		t.Errorf("Expected no deposit without rays, got %f", v)
	}
}

// TestDrawTextClips verifies text stops at the screen edge
func TestDrawTextClips(t *testing.T) {
	screen := newTestScreen(t, 10, 2)
	end := DrawText(screen, 6, 1, "abcdef", tcell.StyleDefault)
	if end != 10 {
		t.Errorf("Expected clipped end at 10, got %d", end)
	}
	if ch, _, _, _ := screen.GetContent(9, 1); ch != 'd' {
		t.Errorf("Expected 'd' at last column, got %q", ch)
	}
}

// TestDrawTextWideRunes verifies double-width runes advance two columns and clip whole
func TestDrawTextWideRunes(t *testing.T) {
	screen := newTestScreen(t, 4, 1)
	end := DrawText(screen, 0, 0, "世a世", tcell.StyleDefault)
	if end != 3 {
		t.Errorf("Expected end at 3, got %d", end)
	}
	if ch, _, _, _ := screen.GetContent(0, 0); ch != '世' {
		t.Errorf("Expected wide rune at column 0, got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(2, 0); ch != 'a' {
		t.Errorf("Expected 'a' at column 2, got %q", ch)
	}
}
