package audio

import (
	"time"

	"github.com/lixenwraith/lensing/parameter"
	"github.com/lixenwraith/lensing/vmath"
)

// Config holds audio engine settings
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0 to 1.0
	SampleRate int
	// MinInterval is the shortest gap between two chimes; absorptions inside it are folded into the next
	MinInterval time.Duration
}

// DefaultConfig returns a disabled engine at the stock sample rate
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		Volume:      parameter.AudioVolumeDefault,
		SampleRate:  parameter.AudioSampleRate,
		MinInterval: parameter.AbsorbSoundMinGap,
	}
}

func (c *Config) normalize() {
	c.Volume = vmath.Clamp(c.Volume, 0, 1)
	if c.MinInterval < 0 {
		c.MinInterval = 0
	}
}
