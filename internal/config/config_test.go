package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Name != "230" {
		t.Errorf("expected object 230, got %s", cfg.Name)
	}
	if cfg.PeriodDays <= 0 {
		t.Error("period should be positive")
	}
	if cfg.Depth <= 0 || cfg.Depth > 1 {
		t.Errorf("depth should be a fraction, got %g", cfg.Depth)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("230")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.PeriodDays != 3243.57 {
		t.Errorf("expected period 3243.57, got %f", cfg.PeriodDays)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected built-in presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("expected sorted names, got %v", names)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "object.yaml")

	want := GetPreset("162")
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if *got != *want {
		t.Errorf("round trip mismatch: %+v vs %+v", got, want)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("name: partial\ndepth: 0.02\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Depth != 0.02 {
		t.Errorf("expected depth from file, got %g", got.Depth)
	}
	if got.PeriodDays != DefaultPeriodDays {
		t.Errorf("expected default period for omitted field, got %g", got.PeriodDays)
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")

	want := BuiltinCatalog()
	if err := SaveCatalog(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.Name != want.Name || len(got.Objects) != len(want.Objects) {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, want)
	}
	for i := range want.Objects {
		if got.Objects[i] != want.Objects[i] {
			t.Errorf("object %d mismatch: %+v vs %+v", i, got.Objects[i], want.Objects[i])
		}
	}
}

func TestInputsConversion(t *testing.T) {
	in := GetPreset("230").Inputs()

	if in.Name != "230" {
		t.Errorf("expected name carried over, got %s", in.Name)
	}
	if in.TransitDepthErr != 0.002 {
		t.Errorf("expected depth err 0.002, got %g", in.TransitDepthErr)
	}
	if err := in.Validate(); err != nil {
		t.Errorf("built-in preset should validate: %v", err)
	}
}
