package sweep

import (
	"testing"

	"github.com/san-kum/transitlab/internal/config"
)

func TestRunDurationSweep(t *testing.T) {
	base := config.GetPreset("118").Inputs()

	points, err := Run(base, ParamDuration, 0.05, 0.12, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 20 {
		t.Fatalf("expected 20 points, got %d", len(points))
	}

	series := Series(points, AlphaDegrees)
	if len(series) == 0 {
		t.Fatal("expected valid points in the sweep range")
	}

	// Longer transits cut deeper chords, so the offset shrinks.
	for i := 1; i < len(series); i++ {
		if series[i] >= series[i-1] {
			t.Errorf("expected alpha decreasing with duration, got %v", series)
			break
		}
	}
}

func TestRunDropsInvalidPoints(t *testing.T) {
	base := config.GetPreset("118").Inputs()

	// Push the range past the geometric limit; the tail must fail, not NaN.
	points, err := Run(base, ParamDuration, 0.05, 2.0, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	series := Series(points, AlphaDegrees)
	if len(series) == len(points) {
		t.Error("expected some points outside the valid domain")
	}
	if len(series) == 0 {
		t.Error("expected some valid points at the low end")
	}

	failed := 0
	for _, p := range points {
		if p.Err != nil {
			failed++
		}
	}
	if failed+len(series) != len(points) {
		t.Errorf("every point must be either valid or failed: %d + %d != %d", failed, len(series), len(points))
	}
}

func TestRunDepthSweep(t *testing.T) {
	base := config.GetPreset("162").Inputs()

	points, err := Run(base, ParamDepth, 0.005, 0.03, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	series := Series(points, PlanetRadiusKm)
	if len(series) != 10 {
		t.Fatalf("expected all depth points valid, got %d of 10", len(series))
	}
	for i := 1; i < len(series); i++ {
		if series[i] <= series[i-1] {
			t.Errorf("expected planet radius increasing with depth, got %v", series)
			break
		}
	}
}

func TestRunRejectsBadArguments(t *testing.T) {
	base := config.GetPreset("118").Inputs()

	if _, err := Run(base, ParamDuration, 0.1, 0.05, 10); err == nil {
		t.Error("expected error for inverted range")
	}
	if _, err := Run(base, ParamDuration, 0.05, 0.1, 1); err == nil {
		t.Error("expected error for too few points")
	}
	if _, err := Run(base, Param("bogus"), 0.05, 0.1, 10); err == nil {
		t.Error("expected error for unknown parameter")
	}
}
