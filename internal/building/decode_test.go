package building

import (
	"testing"

	"fab-hud/internal/matvar"
)

// fakeCatalogs resolves a fixed id set and falls back to defaults,
// mirroring what catalog.Set does without importing it (no cycle, and the
// decoder contract is the interface, not the implementation).
type fakeCatalogs struct{}

func (fakeCatalogs) ResolveStyle(id string) string {
	if id == "brick_red" || id == DefaultStyle {
		return id
	}
	return DefaultStyle
}

func (fakeCatalogs) ResolveWindowType(id string) string {
	switch WindowType(id) {
	case WindowArchV1, WindowModernV1:
		return id
	}
	if id == "BAKED_WAREHOUSE" {
		return id
	}
	return string(DefaultWindowType)
}

func (fakeCatalogs) ResolveBeltColor(id string) string {
	if id == "sandstone" {
		return id
	}
	return "sandstone"
}

func (fakeCatalogs) ResolveRoofColor(id string) string {
	if id == "terracotta" || id == DefaultRoofColor {
		return id
	}
	return DefaultRoofColor
}

func (fakeCatalogs) ResolveMaterial(id string) string { return id }

func TestDecodeBuildingClampsFloors(t *testing.T) {
	limits := testLimits() // FloorMax 30
	b, _ := DecodeBuilding(map[string]any{
		"id":     "b1",
		"floors": float64(40),
	}, limits, fakeCatalogs{})

	if b.ID != "b1" {
		t.Errorf("ID = %q", b.ID)
	}
	if b.Floors != 30 {
		t.Errorf("Floors = %d, want 30 (clamped)", b.Floors)
	}
}

func TestDecodeBuildingDefaultsAndReport(t *testing.T) {
	raw := map[string]any{
		"style":        "art_deco_neon", // not in catalog
		"floors":       "twelve",        // wrong type
		"roofColor":    "terracotta",
		"windowTypeId": "arch", // legacy style name
	}
	b, report := DecodeBuilding(raw, testLimits(), fakeCatalogs{})

	if b.Style != DefaultStyle {
		t.Errorf("Style = %q, want default", b.Style)
	}
	if b.Floors != 6 {
		t.Errorf("Floors = %d, want default 6", b.Floors)
	}
	if b.RoofColor != "terracotta" {
		t.Errorf("RoofColor = %q", b.RoofColor)
	}
	if b.Windows.Type != WindowArchV1 {
		t.Errorf("window type = %q, want legacy-normalized ARCH_V1", b.Windows.Type)
	}

	fields := make(map[string]bool)
	for _, rec := range report {
		fields[rec.Field] = true
	}
	if !fields["style"] {
		t.Errorf("unknown style not reported: %+v", report)
	}
	if !fields["floors"] {
		t.Errorf("mistyped floors not reported: %+v", report)
	}
	if fields["roofColor"] {
		t.Errorf("valid roofColor should not be reported: %+v", report)
	}
}

func TestDecodeBuildingLayers(t *testing.T) {
	raw := map[string]any{
		"layers": []any{
			map[string]any{
				"type":        "FLOOR",
				"id":          "layer-a",
				"floors":      float64(3),
				"floorHeight": float64(3.5),
				"material":    "color:slate",
				"materialVariation": map[string]any{
					"enabled":    true,
					"seedOffset": float64(17),
					"flipY":      true,
				},
			},
			map[string]any{"type": "ROOF", "roofColor": "terracotta"},
			"not-an-object",
		},
	}
	b, report := DecodeBuilding(raw, testLimits(), fakeCatalogs{})

	floors, roofs := countKinds(b.Layers)
	if floors != 1 || roofs != 1 {
		t.Fatalf("layers: %d floors, %d roofs", floors, roofs)
	}
	fl := b.Layers[0]
	if fl.ID != "layer-a" || fl.Floors != 3 || fl.FloorHeight != 3.5 {
		t.Errorf("floor layer = %+v", fl)
	}
	if fl.Material != (MaterialRef{MaterialColor, "slate"}) {
		t.Errorf("material = %+v", fl.Material)
	}
	mv := fl.MaterialVariation
	if !mv.Enabled || mv.SeedOffset != 17 || !mv.NormalMap.FlipY {
		t.Errorf("variation = enabled:%v seed:%d flips:%+v", mv.Enabled, mv.SeedOffset, mv.NormalMap)
	}
	// A host variation block only carries seed/flips; it must decode as
	// minimal so the enable toggle can still swap in the preset.
	if !matvar.IsMinimal(mv, matvar.RootWall) {
		t.Error("decoded variation should be minimal")
	}

	if b.Layers[1].Roof.Color != "terracotta" {
		t.Errorf("roof color = %q", b.Layers[1].Roof.Color)
	}

	found := false
	for _, rec := range report {
		if rec.Field == "layers[2]" {
			found = true
		}
	}
	if !found {
		t.Errorf("malformed layer entry not reported: %+v", report)
	}
}

func TestDecodeBuildingSeed(t *testing.T) {
	b, _ := DecodeBuilding(map[string]any{
		"materialVariationSeed": float64(99),
	}, testLimits(), fakeCatalogs{})
	if b.MaterialVariationSeed == nil || *b.MaterialVariationSeed != 99 {
		t.Fatalf("seed = %v", b.MaterialVariationSeed)
	}

	// Out of uint32 range clamps.
	b, _ = DecodeBuilding(map[string]any{
		"materialVariationSeed": float64(1 << 40),
	}, testLimits(), fakeCatalogs{})
	if b.MaterialVariationSeed == nil || *b.MaterialVariationSeed != SeedMax {
		t.Fatalf("seed = %v, want clamped to %d", b.MaterialVariationSeed, uint32(SeedMax))
	}

	// Absent means "no override", not zero.
	b, _ = DecodeBuilding(map[string]any{}, testLimits(), fakeCatalogs{})
	if b.MaterialVariationSeed != nil {
		t.Errorf("absent seed should stay nil, got %v", *b.MaterialVariationSeed)
	}
}

func TestDecodeBuildingStreet(t *testing.T) {
	b, _ := DecodeBuilding(map[string]any{
		"floors":            float64(10),
		"streetEnabled":     true,
		"streetFloors":      float64(2),
		"streetFloorHeight": float64(5),
	}, testLimits(), fakeCatalogs{})
	if b.Street.Floors != 2 || b.Street.FloorHeight != 5 {
		t.Errorf("street = %+v", b.Street)
	}

	// streetEnabled false zeroes the street floor count.
	b, _ = DecodeBuilding(map[string]any{
		"streetEnabled": false,
		"streetFloors":  float64(2),
	}, testLimits(), fakeCatalogs{})
	if b.Street.Floors != 0 {
		t.Errorf("street floors = %d, want 0", b.Street.Floors)
	}
}

func TestDecodeBuildingLegacyWindowStyle(t *testing.T) {
	b, report := DecodeBuilding(map[string]any{
		"id":          "b-plaza",
		"windowStyle": "arched",
	}, testLimits(), fakeCatalogs{})
	if b.Windows.Type != WindowArchV1 {
		t.Errorf("Windows.Type = %q, want %q", b.Windows.Type, WindowArchV1)
	}
	if len(report) != 0 {
		t.Errorf("report = %v, want empty", report)
	}

	b, _ = DecodeBuilding(map[string]any{
		"streetWindowStyle": "plain",
	}, testLimits(), fakeCatalogs{})
	if b.Street.Windows.Type != WindowModernV1 {
		t.Errorf("street Windows.Type = %q, want %q", b.Street.Windows.Type, WindowModernV1)
	}

	// An explicit typeId wins over a stale style key.
	b, _ = DecodeBuilding(map[string]any{
		"windowTypeId": "BAKED_WAREHOUSE",
		"windowStyle":  "arched",
	}, testLimits(), fakeCatalogs{})
	if b.Windows.Type != "BAKED_WAREHOUSE" {
		t.Errorf("Windows.Type = %q, want BAKED_WAREHOUSE", b.Windows.Type)
	}

	// Unknown style names fall back and land in the report.
	b, report = DecodeBuilding(map[string]any{
		"windowStyle": "gothic",
	}, testLimits(), fakeCatalogs{})
	if b.Windows.Type != DefaultWindowType {
		t.Errorf("Windows.Type = %q, want %q", b.Windows.Type, DefaultWindowType)
	}
	found := false
	for _, d := range report {
		if d.Field == "windowStyle" {
			found = true
		}
	}
	if !found {
		t.Errorf("no windowStyle entry in report: %v", report)
	}
}
