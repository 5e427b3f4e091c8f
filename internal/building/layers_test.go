package building

import (
	"testing"

	"fab-hud/internal/config"
)

func testLimits() config.Limits {
	return config.DefaultLimits()
}

func TestNormalizeLayersAppendsMissingKinds(t *testing.T) {
	floor := NewFloorLayer(FloorOverrides{Floors: 8, FloorHeight: 4.2})

	out := NormalizeLayers([]Layer{floor}, testLimits())
	if len(out) != 2 {
		t.Fatalf("got %d layers, want 2", len(out))
	}
	if out[0].Kind != LayerFloor || out[0].Floors != 8 || out[0].FloorHeight != 4.2 {
		t.Errorf("floor layer changed: %+v", out[0])
	}
	if out[1].Kind != LayerRoof {
		t.Errorf("expected a default roof layer appended, got kind %v", out[1].Kind)
	}

	out = NormalizeLayers(nil, testLimits())
	floors, roofs := countKinds(out)
	if floors != 1 || roofs != 1 {
		t.Errorf("empty stack should normalize to 1 floor + 1 roof, got %d/%d", floors, roofs)
	}
}

func TestNormalizeLayersIdempotent(t *testing.T) {
	layers := []Layer{
		NewFloorLayer(FloorOverrides{Floors: 99, FloorHeight: 50}),
		NewRoofLayer(RoofOverrides{}),
	}
	layers[0].PlanOffset = -100

	once := NormalizeLayers(layers, testLimits())
	twice := NormalizeLayers(once, testLimits())
	if len(once) != len(twice) {
		t.Fatalf("layer count changed: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("layer %d not stable:\nonce:  %+v\ntwice: %+v", i, once[i], twice[i])
		}
	}
	if once[0].Floors != testLimits().FloorMax {
		t.Errorf("Floors = %d, want clamped to %d", once[0].Floors, testLimits().FloorMax)
	}
	if once[0].PlanOffset != -testLimits().PlanOffsetMax {
		t.Errorf("PlanOffset = %v", once[0].PlanOffset)
	}
}

func TestCloneLayersIsolation(t *testing.T) {
	original := []Layer{NewFloorLayer(FloorOverrides{})}
	clone := CloneLayers(original)

	clone[0].Belt.Height = 0.77
	clone[0].Windows.SpaceColumns.Every = 9
	clone[0].MaterialVariation.Streaks.Enabled = true

	if original[0].Belt.Height == 0.77 {
		t.Error("belt mutation leaked into original")
	}
	if original[0].Windows.SpaceColumns.Every == 9 {
		t.Error("space-column mutation leaked into original")
	}
	if original[0].MaterialVariation.Streaks.Enabled {
		t.Error("variation mutation leaked into original")
	}
}

func TestRemoveLayerGuardsLastOfKind(t *testing.T) {
	limits := testLimits()
	layers := NormalizeLayers([]Layer{
		NewFloorLayer(FloorOverrides{}),
		NewRoofLayer(RoofOverrides{}),
	}, limits)

	// Sole floor layer: rejected.
	out, ok := RemoveLayer(layers, layers[0].ID, limits)
	if ok {
		t.Error("removing the only floor layer should be rejected")
	}
	if len(out) != len(layers) {
		t.Error("rejected removal should leave the stack unchanged")
	}

	// Sole roof layer: rejected.
	if _, ok := RemoveLayer(layers, layers[1].ID, limits); ok {
		t.Error("removing the only roof layer should be rejected")
	}

	// With two floor layers, removing one succeeds and keeps the roof.
	layers = AddLayer(layers, LayerFloor, limits)
	floors, roofs := countKinds(layers)
	if floors != 2 || roofs != 1 {
		t.Fatalf("setup: %d floors, %d roofs", floors, roofs)
	}
	out, ok = RemoveLayer(layers, layers[0].ID, limits)
	if !ok {
		t.Fatal("removal with a spare floor layer should succeed")
	}
	floors, roofs = countKinds(out)
	if floors != 1 || roofs != 1 {
		t.Errorf("after removal: %d floors, %d roofs", floors, roofs)
	}

	// Unknown id: no-op.
	if _, ok = RemoveLayer(out, "no-such-layer", limits); ok {
		t.Error("removing an unknown id should be rejected")
	}
}

func TestAddLayerSeedsFromLastOfKind(t *testing.T) {
	limits := testLimits()
	first := NewFloorLayer(FloorOverrides{Floors: 7, FloorHeight: 4.5, Style: "brick_red"})
	layers := NormalizeLayers([]Layer{first, NewRoofLayer(RoofOverrides{})}, limits)

	out := AddLayer(layers, LayerFloor, limits)
	if len(out) != 3 {
		t.Fatalf("got %d layers", len(out))
	}
	added, ok := lastOfKind(out, LayerFloor)
	if !ok {
		t.Fatal("no floor layer found")
	}
	if added.ID == first.ID {
		t.Error("added layer must get a fresh id")
	}
	if added.Floors != 7 || added.FloorHeight != 4.5 || added.Style != "brick_red" {
		t.Errorf("added layer not seeded from previous floor layer: %+v", added)
	}
}

func TestAddLayerRespectsCap(t *testing.T) {
	limits := testLimits()
	limits.LayerMax = 2
	layers := NormalizeLayers(nil, limits)
	out := AddLayer(layers, LayerFloor, limits)
	if len(out) != 2 {
		t.Errorf("cap ignored: %d layers", len(out))
	}
}

func TestMoveLayer(t *testing.T) {
	limits := testLimits()
	layers := NormalizeLayers(nil, limits)
	layers = AddLayer(layers, LayerFloor, limits)

	ids := func(ls []Layer) []string {
		out := make([]string, len(ls))
		for i, l := range ls {
			out[i] = l.ID
		}
		return out
	}

	before := ids(layers)
	moved := MoveLayer(layers, before[0], MoveDown, limits)
	after := ids(moved)
	if after[0] != before[1] || after[1] != before[0] {
		t.Errorf("move down did not swap: %v -> %v", before, after)
	}

	// Boundary: first layer cannot move up.
	same := MoveLayer(layers, before[0], MoveUp, limits)
	if ids(same)[0] != before[0] {
		t.Error("move up at the top should be a no-op")
	}

	// Unknown id: no-op.
	same = MoveLayer(layers, "no-such-layer", MoveDown, limits)
	if ids(same)[0] != before[0] {
		t.Error("moving an unknown id should be a no-op")
	}
}

func TestParseMaterialRef(t *testing.T) {
	cases := []struct {
		in   string
		want MaterialRef
	}{
		{"texture:brick_red", MaterialRef{MaterialTexture, "brick_red"}},
		{"color:slate", MaterialRef{MaterialColor, "slate"}},
		{"legacy_plain", MaterialRef{MaterialTexture, "legacy_plain"}},
	}
	for _, c := range cases {
		if got := ParseMaterialRef(c.in); got != c.want {
			t.Errorf("ParseMaterialRef(%q) = %+v, want %+v", c.in, got, c.want)
		}
		if got := c.want.String(); ParseMaterialRef(got) != c.want {
			t.Errorf("round trip failed for %+v", c.want)
		}
	}
}
