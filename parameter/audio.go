package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Absorb Chime
const (
	AbsorbSoundDuration = 250 * time.Millisecond
	AbsorbSoundAttack   = 5 * time.Millisecond
	AbsorbSoundRelease  = 200 * time.Millisecond

	// AbsorbSoundBaseFreq drops with each extra ray swallowed in the same frame
	AbsorbSoundBaseFreq = 660.0
	AbsorbSoundMinFreq  = 220.0
	AbsorbSoundFreqStep = 40.0

	// AbsorbSoundMinGap rate-limits chimes so a burst of absorptions is one sound
	AbsorbSoundMinGap = 120 * time.Millisecond

	AudioVolumeDefault = 0.4
)
