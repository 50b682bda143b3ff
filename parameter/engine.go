package parameter

import "time"

// Frame Loop
const (
	// FrameUpdateInterval is the viewer frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameMaxDelta caps a single frame step after stalls (resize, suspend)
	FrameMaxDelta = 0.1

	// BenchFrameDelta is the fixed step used by the headless benchmark
	BenchFrameDelta = 1.0 / 60.0
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "lensing.log"
	MaxLogSize  = 10 * 1024 * 1024
)
