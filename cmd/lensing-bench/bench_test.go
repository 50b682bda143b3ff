package main

import (
	"strings"
	"testing"

	"github.com/lixenwraith/lensing/config"
	"github.com/lixenwraith/lensing/parameter"
)

// TestDownsample verifies bucket averaging and passthrough of short series
func TestDownsample(t *testing.T) {
	short := []float64{1, 2, 3}
	if got := downsample(short, 10); len(got) != 3 {
		t.Errorf("Expected passthrough, got %v", got)
	}

	series := []float64{1, 1, 3, 3, 5, 5, 7, 7}
	got := downsample(series, 4)
	want := []float64{1, 3, 5, 7}
	if len(got) != len(want) {
		t.Fatalf("Expected %d buckets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bucket %d: expected %f, got %f", i, want[i], got[i])
		}
	}

	// Uneven split still covers every sample once
	odd := downsample([]float64{2, 2, 2, 2, 2, 2, 2}, 3)
	for i, v := range odd {
		if v != 2 {
			t.Errorf("Bucket %d: expected 2, got %f", i, v)
		}
	}
}

// TestRunCollectsSeries verifies a short run records one sample per frame and consistent totals
func TestRunCollectsSeries(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11
	cfg.Population.Capacity = 30

	res := run(cfg, 120, parameter.BenchFrameDelta)
	if len(res.Active) != 120 || len(res.Absorbed) != 120 || len(res.Orbiting) != 120 {
		t.Fatalf("Expected 120 samples per series, got %d/%d/%d", len(res.Active), len(res.Absorbed), len(res.Orbiting))
	}
	if res.RaySteps != 120*30 {
		t.Errorf("Expected %d ray steps under recycle policy, got %d", 120*30, res.RaySteps)
	}
	if res.PeakActive == 0 || res.PeakActive > 30 {
		t.Errorf("Peak active out of range: %d", res.PeakActive)
	}
	if res.Snapshot.Stats.Frame != 120 {
		t.Errorf("Expected final frame 120, got %d", res.Snapshot.Stats.Frame)
	}
}

// TestRenderReport verifies the report carries setup, totals and the chart legend
func TestRenderReport(t *testing.T) {
	cfg := config.Default()
	cfg.Population.Capacity = 10
	res := run(cfg, 30, parameter.BenchFrameDelta)

	out := render(res, 40, 6)
	for _, want := range []string{"Setup", "Run", "four-edges", "recycle", "absorptions", "rays per frame", "active"} {
		if !strings.Contains(out, want) {
			t.Errorf("Report missing %q:\n%s", want, out)
		}
	}

	empty := render(run(cfg, 0, parameter.BenchFrameDelta), 40, 6)
	if strings.Contains(empty, "rays per frame") {
		t.Error("Expected no chart for an empty run")
	}
}
