package main

import (
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lensing/engine"
	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/render"
)

// paramsOverlaySeconds is how long the P dump stays on screen
const paramsOverlaySeconds = 4.0

// Viewer drives the simulation from a tcell screen
type Viewer struct {
	screen   tcell.Screen
	sim      *engine.Simulation
	clock    *engine.FrameClock
	renderer *render.Renderer
	vp       render.Viewport

	// overlayUntil is the clock time when the parameter dump hides
	overlayUntil float64
}

func NewViewer(screen tcell.Screen, sim *engine.Simulation, clock *engine.FrameClock) *Viewer {
	w, h := screen.Size()
	return &Viewer{
		screen:   screen,
		sim:      sim,
		clock:    clock,
		renderer: render.NewRenderer(),
		vp:       render.NewViewport(w, h),
	}
}

// handleInput applies one event and returns false when the viewer should exit
func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			paused := v.clock.Toggle()
			log.Printf("viewer: paused=%v", paused)
			return true
		case tcell.KeyRune:
			v.handleRune(unicode.ToLower(ev.Rune()))
			return true
		}
		if d, ok := moveKeys[ev.Key()]; ok {
			v.sim.MoveBlackHole(d[0], d[1])
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		v.vp.Resize(w, h)
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) handleRune(ch rune) {
	if ch == 'p' {
		snap := v.sim.Snapshot()
		log.Printf("viewer: parameters\n%s", snap)
		v.overlayUntil = v.clock.Elapsed() + paramsOverlaySeconds
		return
	}
	if fn, ok := tuneKeys[ch]; ok {
		fn(v.sim)
		if ch == 't' {
			log.Printf("viewer: pattern=%s", v.sim.Pattern())
		}
	}
}

// frame advances one tick and redraws
func (v *Viewer) frame() {
	if dt := v.clock.Tick(); dt > 0 {
		v.sim.Step(dt)
		v.renderer.Advance(v.sim)
	}
	v.draw()
}

func (v *Viewer) draw() {
	v.renderer.DrawScene(v.screen, v.vp, v.sim)
	v.drawHUD()
	v.screen.Show()
}

func (v *Viewer) drawHUD() {
	text := tcell.StyleDefault.Foreground(render.RgbStatusText)

	st := v.sim.Stats()
	status := fmt.Sprintf(" %s | rays %d active %d absorbed %d orbiting %d | mass %.2f radius %.3f speed %.3f ",
		v.sim.Pattern(), v.sim.Population().Len(), st.Active, st.Absorbed, st.Orbiting,
		v.sim.Mass(), v.sim.Radius(), v.sim.Speed())
	end := render.DrawText(v.screen, 0, 0, status, text)
	if v.clock.IsPaused() {
		render.DrawText(v.screen, end, 0, " PAUSED ", tcell.StyleDefault.Foreground(render.RgbStatusPaused).Bold(true))
	}

	if v.clock.Elapsed() < v.overlayUntil {
		for i, line := range strings.Split(v.sim.Snapshot().String(), "\n") {
			render.DrawText(v.screen, 1, 2+i, line, text)
		}
	}

	if v.vp.Height > 1 {
		render.DrawText(v.screen, 0, v.vp.Height-1, helpLine, text.Dim(true))
	}
}

// run owns the frame loop until quit
func (v *Viewer) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(v.screen, r)
			}
		}()
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			v.frame()
		}
	}
}
