package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveFallsBackToDefaults(t *testing.T) {
	s := Builtin()

	if got := s.ResolveStyle("brick_red"); got != "brick_red" {
		t.Errorf("ResolveStyle(brick_red) = %q", got)
	}
	if got := s.ResolveStyle("no_such_style"); got != DefaultStyleID {
		t.Errorf("unknown style resolved to %q, want %q", got, DefaultStyleID)
	}
	if got := s.ResolveWindowType("ARCH_V1"); got != "ARCH_V1" {
		t.Errorf("ResolveWindowType(ARCH_V1) = %q", got)
	}
	if got := s.ResolveWindowType("GOTHIC_V9"); got != DefaultWindowTypeID {
		t.Errorf("unknown window type resolved to %q", got)
	}
	if got := s.ResolveRoofColor("chartreuse"); got != DefaultRoofColorID {
		t.Errorf("unknown roof color resolved to %q", got)
	}
	if got := s.ResolveBeltColor("granite"); got != "granite" {
		t.Errorf("ResolveBeltColor(granite) = %q", got)
	}
	if got := s.ResolveMaterial("unobtanium"); got != DefaultMaterialID {
		t.Errorf("unknown material resolved to %q", got)
	}
}

func TestDefaultIDsExist(t *testing.T) {
	s := Builtin()
	checks := []struct {
		opts []Option
		id   string
	}{
		{s.Styles, DefaultStyleID},
		{s.WindowTypes, DefaultWindowTypeID},
		{s.BeltColors, DefaultBeltColorID},
		{s.RoofColors, DefaultRoofColorID},
		{s.Materials, DefaultMaterialID},
	}
	for _, c := range checks {
		if Find(c.opts, c.id).ID != c.id {
			t.Errorf("default id %q missing from its catalog", c.id)
		}
	}
}

func TestFind(t *testing.T) {
	opts := []Option{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}}
	if got := Find(opts, "b"); got.Label != "B" {
		t.Errorf("Find(b) = %+v", got)
	}
	if got := Find(opts, "zzz"); got.ID != "a" {
		t.Errorf("unknown id should fall back to the first option, got %+v", got)
	}
	if got := Find(nil, "a"); got != (Option{}) {
		t.Errorf("empty catalog should yield zero Option, got %+v", got)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	styles := `[{"id":"custom","label":"Custom","previewUrl":"x.png"}]`
	if err := os.WriteFile(filepath.Join(dir, "styles.json"), []byte(styles), 0644); err != nil {
		t.Fatal(err)
	}
	// Malformed file: keep built-ins.
	if err := os.WriteFile(filepath.Join(dir, "roof_colors.json"), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	s := Load(dir)
	if len(s.Styles) != 1 || s.Styles[0].ID != "custom" {
		t.Errorf("styles override not applied: %+v", s.Styles)
	}
	if len(s.RoofColors) != len(Builtin().RoofColors) {
		t.Error("malformed roof_colors.json should keep built-ins")
	}
	if len(s.Materials) != len(Builtin().Materials) {
		t.Error("absent materials.json should keep built-ins")
	}
}
