package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/lensing/parameter"
)

// TestOscillatorSine verifies sine wave generation stays in range
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples ok, got %d ok=%v", n, ok)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d not mono: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorShapes verifies square, saw and noise bounds
func TestOscillatorShapes(t *testing.T) {
	rate := beep.SampleRate(44100)

	square := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)
	samples := make([][2]float64, 200)
	n, _ := square.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square sample %d should be ±1, got %f", i, v)
		}
	}

	saw := NewOscillator(110.0, 50*time.Millisecond, WaveSaw, rate)
	n, _ = saw.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v < -1.0 || v > 1.0 {
			t.Errorf("Saw sample %d out of range: %f", i, v)
		}
	}

	noise := NewOscillator(0, 50*time.Millisecond, WaveNoise, rate)
	n, _ = noise.Stream(samples)
	varied := false
	for i := 1; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Noise sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[0][0] {
			varied = true
		}
	}
	if !varied {
		t.Error("Expected noise samples to vary")
	}
}

// TestOscillatorDuration verifies the stream ends after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expected := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)

	samples := make([][2]float64, expected*2)
	n, ok := osc.Stream(samples)
	if n != expected || !ok {
		t.Errorf("Expected %d samples ok, got %d ok=%v", expected, n, ok)
	}

	n, ok = osc.Stream(samples)
	if ok || n != 0 {
		t.Errorf("Expected drained stream, got %d ok=%v", n, ok)
	}
}

// TestEnvelopeShape verifies silence at onset, full level in sustain and fade at the tail
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	// Square at 0 Hz is a constant +1 carrier
	carrier := NewOscillator(0, time.Second, WaveSquare, rate)
	env := NewEnvelope(carrier, time.Second, 100*time.Millisecond, 200*time.Millisecond, rate)

	samples := make([][2]float64, 1000)
	n, _ := env.Stream(samples)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected silent onset, got %f", samples[0][0])
	}
	if math.Abs(samples[50][0]-0.5) > 1e-9 {
		t.Errorf("Expected half level mid-attack, got %f", samples[50][0])
	}
	if samples[500][0] != 1.0 {
		t.Errorf("Expected full sustain, got %f", samples[500][0])
	}
	if math.Abs(samples[900][0]-0.5) > 1e-9 {
		t.Errorf("Expected half level mid-release, got %f", samples[900][0])
	}
	if samples[999][0] >= samples[900][0] {
		t.Errorf("Expected release to keep fading, got %f", samples[999][0])
	}
}

// TestAbsorbFrequency verifies bursts lower the pitch down to the floor
func TestAbsorbFrequency(t *testing.T) {
	if f := AbsorbFrequency(1); f != parameter.AbsorbSoundBaseFreq {
		t.Errorf("Expected base frequency, got %f", f)
	}
	if f := AbsorbFrequency(0); f != parameter.AbsorbSoundBaseFreq {
		t.Errorf("Expected zero count treated as one, got %f", f)
	}
	if f2, f1 := AbsorbFrequency(2), AbsorbFrequency(1); f2 >= f1 {
		t.Errorf("Expected larger burst to sound lower: %f >= %f", f2, f1)
	}
	if f := AbsorbFrequency(1000); f != parameter.AbsorbSoundMinFreq {
		t.Errorf("Expected floor frequency, got %f", f)
	}
}

// TestCreateAbsorbSound verifies the chime streams for its full duration
func TestCreateAbsorbSound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Volume = 1.0
	sound := CreateAbsorbSound(cfg, 3)
	if sound == nil {
		t.Fatal("Expected non-nil absorb sound")
	}

	total := 0
	peak := 0.0
	buf := make([][2]float64, 512)
	for {
		n, ok := sound.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}

	want := beep.SampleRate(cfg.SampleRate).N(parameter.AbsorbSoundDuration)
	if total < want {
		t.Errorf("Expected at least %d samples, got %d", want, total)
	}
	if peak == 0 || peak > 1.0+1e-9 {
		t.Errorf("Expected audible peak within [-1,1], got %f", peak)
	}
}

// TestZeroVolumeSilent verifies zero volume produces silence
func TestZeroVolumeSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Volume = 0
	sound := CreateAbsorbSound(cfg, 1)

	samples := make([][2]float64, 1000)
	n, ok := sound.Stream(samples)
	if !ok || n == 0 {
		t.Fatalf("Expected samples at zero volume, got %d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("Expected silence, sample %d = %f", i, samples[i][0])
		}
	}
}
