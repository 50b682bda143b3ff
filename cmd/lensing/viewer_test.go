package main

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lensing/config"
	"github.com/lixenwraith/lensing/engine"
	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/spawn"
)

func newTestViewer(t *testing.T) (*Viewer, tcell.SimulationScreen, *engine.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init simulation screen: %v", err)
	}
	screen.SetSize(120, 44)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Seed = 3
	cfg.Population.Capacity = 20
	sim := engine.NewSimulation(cfg)
	t.Cleanup(sim.Close)

	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	return NewViewer(screen, sim, engine.NewFrameClock(mock)), screen, mock
}

func key(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

// rowText reads one screen row back as a string
func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

// TestTuningKeys verifies each key pair steps its parameter in opposite directions
func TestTuningKeys(t *testing.T) {
	v, _, _ := newTestViewer(t)
	sim := v.sim

	cases := []struct {
		name     string
		down, up rune
		get      func() float64
		step     float64
	}{
		{"mass", 'q', 'e', sim.Mass, parameter.StepMass},
		{"radius", 'z', 'x', sim.Radius, parameter.StepRadius},
		{"speed", 'a', 's', sim.Speed, parameter.StepSpeed},
		{"multiplier", 'd', 'f', sim.GravityMultiplier, parameter.StepGravityMultiplier},
		{"max force", 'c', 'v', sim.MaxForce, parameter.StepMaxForce},
		{"exponent", 'g', 'h', sim.ForceExponent, parameter.StepForceExponent},
	}
	for _, c := range cases {
		before := c.get()
		v.handleInput(key(c.up))
		if got := c.get(); math.Abs(got-(before+c.step)) > 1e-9 {
			t.Errorf("%s up: expected %f, got %f", c.name, before+c.step, got)
		}
		// Uppercase maps to the same binding
		v.handleInput(key(unicodeUpper(c.down)))
		if got := c.get(); math.Abs(got-before) > 1e-9 {
			t.Errorf("%s down: expected %f, got %f", c.name, before, got)
		}
	}
}

func unicodeUpper(r rune) rune { return r - 'a' + 'A' }

// TestArrowKeysMoveHole verifies arrow keys displace the black hole
func TestArrowKeysMoveHole(t *testing.T) {
	v, _, _ := newTestViewer(t)
	start := v.sim.Hole().Position

	v.handleInput(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	v.handleInput(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	v.handleInput(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))

	pos := v.sim.Hole().Position
	if math.Abs(pos.X-(start.X-parameter.StepMove)) > 1e-9 || math.Abs(pos.Y-(start.Y+2*parameter.StepMove)) > 1e-9 {
		t.Errorf("Unexpected position after moves: %v from %v", pos, start)
	}

	v.handleInput(key('r'))
	if v.sim.Hole().Position != start {
		t.Errorf("Expected reset to restore %v, got %v", start, v.sim.Hole().Position)
	}
}

// TestPatternKeyCycles verifies T advances the spawn pattern
func TestPatternKeyCycles(t *testing.T) {
	v, _, _ := newTestViewer(t)
	before := v.sim.Pattern()
	v.handleInput(key('t'))
	if v.sim.Pattern() != before.Next() {
		t.Errorf("Expected %v, got %v", before.Next(), v.sim.Pattern())
	}
	if v.sim.Pattern() == spawn.PatternFourEdges {
		t.Error("Pattern did not change")
	}
}

// TestQuitAndPause verifies Escape exits and Enter toggles the clock
func TestQuitAndPause(t *testing.T) {
	v, _, _ := newTestViewer(t)

	if !v.handleInput(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Error("Enter should not quit")
	}
	if !v.clock.IsPaused() {
		t.Error("Expected paused after Enter")
	}
	if v.handleInput(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape should quit")
	}
}

// TestFrameStepsAndDraws verifies ticks advance the simulation and the HUD renders
func TestFrameStepsAndDraws(t *testing.T) {
	v, screen, mock := newTestViewer(t)

	for i := 0; i < 5; i++ {
		mock.AdvanceSeconds(parameter.BenchFrameDelta)
		v.frame()
	}
	if v.sim.Stats().Frame != 5 {
		t.Errorf("Expected 5 simulated frames, got %d", v.sim.Stats().Frame)
	}
	if !strings.Contains(rowText(screen, 0), "four-edges") {
		t.Errorf("Expected status line with pattern, got %q", rowText(screen, 0))
	}
	if !strings.Contains(rowText(screen, 43), "q/e mass") {
		t.Errorf("Expected help line, got %q", rowText(screen, 43))
	}

	// Paused frames draw but do not step
	v.handleInput(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	mock.AdvanceSeconds(parameter.BenchFrameDelta)
	v.frame()
	if v.sim.Stats().Frame != 5 {
		t.Errorf("Expected no step while paused, got frame %d", v.sim.Stats().Frame)
	}
	if !strings.Contains(rowText(screen, 0), "PAUSED") {
		t.Error("Expected pause marker in status line")
	}
}

// TestParamsOverlay verifies P shows the parameter dump until it expires
func TestParamsOverlay(t *testing.T) {
	v, screen, mock := newTestViewer(t)

	v.handleInput(key('p'))
	v.draw()
	if !strings.Contains(rowText(screen, 2), "black hole:") {
		t.Errorf("Expected parameter dump on row 2, got %q", rowText(screen, 2))
	}

	// Run past the overlay in capped ticks
	for v.clock.Elapsed() <= paramsOverlaySeconds {
		mock.AdvanceSeconds(parameter.FrameMaxDelta)
		v.frame()
	}
	if strings.Contains(rowText(screen, 2), "black hole:") {
		t.Error("Expected parameter dump to expire")
	}
}
