package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/lensing/parameter"
)

var ErrInvalidSampleRate = errors.New("invalid sample rate")

// Engine plays absorption chimes through the beep speaker
// A disabled or unstarted engine accepts every call and does nothing
type Engine struct {
	cfg Config

	mu      sync.Mutex
	mixer   *beep.Mixer
	play    func(beep.Streamer)
	started bool

	now     func() time.Time
	last    time.Time
	pending int
}

// NewEngine validates cfg and prepares an idle engine
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, cfg.SampleRate)
	}
	cfg.normalize()
	return &Engine{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}, nil
}

// Start initializes the speaker and attaches the mixer
// Disabled engines return nil without touching the audio device
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.cfg.Enabled || e.started {
		return nil
	}

	rate := beep.SampleRate(e.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(e.mixer)

	e.play = func(s beep.Streamer) {
		speaker.Lock()
		e.mixer.Add(s)
		speaker.Unlock()
	}
	e.started = true
	return nil
}

// PlayAbsorb queues a chime for n absorptions
// Calls within MinInterval of the last chime accumulate and sound with the next one
// Returns true when a chime was queued
func (e *Engine) PlayAbsorb(n int) bool {
	if n <= 0 {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return false
	}

	e.pending += n
	now := e.now()
	if !e.last.IsZero() && now.Sub(e.last) < e.cfg.MinInterval {
		return false
	}

	count := e.pending
	e.pending = 0
	e.last = now
	e.play(CreateAbsorbSound(e.cfg, count))
	return true
}

// Stop silences queued sounds and detaches from the speaker
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}

	// beep has no speaker shutdown that allows re-init, so only the mixer is cleared
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()

	e.started = false
	e.pending = 0
}

// Enabled reports whether the engine was configured to produce sound
func (e *Engine) Enabled() bool { return e.cfg.Enabled }

// Running reports whether the speaker is attached
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.started
}
