package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLimitsMissingFile(t *testing.T) {
	l, err := LoadLimits(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadLimits: %v", err)
	}
	if l != DefaultLimits() {
		t.Errorf("missing file should yield defaults, got %+v", l)
	}
}

func TestLoadLimitsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.yaml")
	content := "floor_max: 50\nfloor_height_max: 20\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	l, err := LoadLimits(path)
	if err != nil {
		t.Fatalf("LoadLimits: %v", err)
	}
	if l.FloorMax != 50 {
		t.Errorf("FloorMax = %d, want 50", l.FloorMax)
	}
	if l.FloorHeightMax != 20 {
		t.Errorf("FloorHeightMax = %v, want 20", l.FloorHeightMax)
	}
	// Unspecified fields keep defaults.
	if l.LayerMax != DefaultLimits().LayerMax {
		t.Errorf("LayerMax = %d, want default", l.LayerMax)
	}
}

func TestLoadLimitsSanitizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.yaml")
	if err := os.WriteFile(path, []byte("floor_max: -3\nlayer_max: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	l, err := LoadLimits(path)
	if err != nil {
		t.Fatalf("LoadLimits: %v", err)
	}
	if l.FloorMax != DefaultLimits().FloorMax {
		t.Errorf("FloorMax = %d, want default", l.FloorMax)
	}
	if l.LayerMax != DefaultLimits().LayerMax {
		t.Errorf("LayerMax = %d, want default", l.LayerMax)
	}
}
