package editor

import (
	"testing"

	"fab-hud/internal/building"
	"fab-hud/internal/catalog"
	"fab-hud/internal/config"
	"fab-hud/internal/matvar"
)

func newTestSession(cb Callbacks) *Session {
	return New(config.DefaultLimits(), catalog.Builtin(), cb)
}

func selectBuilding(t *testing.T, s *Session, raw map[string]any) {
	t.Helper()
	if raw == nil {
		raw = map[string]any{"id": "b1"}
	}
	s.SetSelectedBuilding(raw)
	if !s.HasSelection() {
		t.Fatal("selection did not stick")
	}
}

func TestDualityRoutingTemplate(t *testing.T) {
	notifications := 0
	s := newTestSession(Callbacks{
		OnSelectedBuildingLayersChange: func([]building.Layer) { notifications++ },
	})

	layers := s.ActiveLayers()
	layers[0].FloorHeight = 5.5
	s.SetActiveLayers(layers)

	got := s.ActiveLayers()
	if got[0].FloorHeight != 5.5 {
		t.Errorf("template write lost: %v", got[0].FloorHeight)
	}
	if s.template.Layers[0].FloorHeight != 5.5 {
		t.Error("write did not land in the template scope")
	}
	if notifications != 0 {
		t.Errorf("template edits must not notify, got %d events", notifications)
	}
}

func TestDualityRoutingSelected(t *testing.T) {
	notifications := 0
	var lastLayers []building.Layer
	s := newTestSession(Callbacks{
		OnSelectedBuildingLayersChange: func(ls []building.Layer) {
			notifications++
			lastLayers = ls
		},
	})

	templateBefore := s.template.Clone()
	selectBuilding(t, s, nil)

	layers := s.ActiveLayers()
	layers[0].FloorHeight = 7.25
	s.SetActiveLayers(layers)

	if notifications != 1 {
		t.Fatalf("got %d notifications, want exactly 1", notifications)
	}
	if lastLayers[0].FloorHeight != 7.25 {
		t.Errorf("notified layers stale: %v", lastLayers[0].FloorHeight)
	}
	if s.selected.Layers[0].FloorHeight != 7.25 {
		t.Error("write did not land in the building scope")
	}
	if s.template.Layers[0].FloorHeight != templateBefore.Layers[0].FloorHeight {
		t.Error("building edit leaked into the template")
	}

	// The emitted slice is a clone; mutating it must not corrupt the model.
	lastLayers[0].FloorHeight = 1.0
	if s.selected.Layers[0].FloorHeight != 7.25 {
		t.Error("host mutation of the emitted slice corrupted the model")
	}
}

func TestClearSelectionReturnsToTemplate(t *testing.T) {
	s := newTestSession(Callbacks{})
	selectBuilding(t, s, map[string]any{"id": "b1", "floors": float64(12)})

	if got := s.ActiveConfig().Floors; got != 12 {
		t.Fatalf("selected floors = %d", got)
	}
	s.ClearSelection()
	if got := s.ActiveConfig().Floors; got != 6 {
		t.Errorf("after clearing, active floors = %d, want template's 6", got)
	}
}

func TestSeedDuality(t *testing.T) {
	events := 0
	var lastSeed *uint32
	s := newTestSession(Callbacks{
		OnSelectedBuildingMaterialVariationSeedChange: func(seed *uint32) {
			events++
			lastSeed = seed
		},
	})

	seed := uint32(1234)
	s.SetActiveMaterialVariationSeed(&seed)
	if events != 0 {
		t.Error("template seed edit must not notify")
	}
	if got := s.ActiveMaterialVariationSeed(); got == nil || *got != 1234 {
		t.Fatalf("template seed = %v", got)
	}

	selectBuilding(t, s, nil)
	if s.ActiveMaterialVariationSeed() != nil {
		t.Fatal("fresh building should have no seed override")
	}

	s.SetActiveMaterialVariationSeed(&seed)
	if events != 1 || lastSeed == nil || *lastSeed != 1234 {
		t.Fatalf("events=%d lastSeed=%v", events, lastSeed)
	}

	// Same value again: strict inequality, no event.
	s.SetActiveMaterialVariationSeed(&seed)
	if events != 1 {
		t.Errorf("duplicate write fired %d events", events)
	}

	s.SetActiveMaterialVariationSeed(nil)
	if events != 2 || lastSeed != nil {
		t.Errorf("clear: events=%d lastSeed=%v", events, lastSeed)
	}

	// Template seed survived the whole selected-building episode.
	s.ClearSelection()
	if got := s.ActiveMaterialVariationSeed(); got == nil || *got != 1234 {
		t.Errorf("template seed corrupted: %v", got)
	}
}

func TestScalarSettersClampAndGate(t *testing.T) {
	var floorEvents []int
	s := newTestSession(Callbacks{
		OnFloorsChange: func(v int) { floorEvents = append(floorEvents, v) },
	})

	// Template edit: clamped, stored, no event.
	s.SetFloors(40)
	if got := s.ActiveConfig().Floors; got != 30 {
		t.Errorf("Floors = %d, want clamped 30", got)
	}
	if len(floorEvents) != 0 {
		t.Errorf("template edit fired events: %v", floorEvents)
	}

	selectBuilding(t, s, nil)
	s.SetFloors(40)
	s.SetFloors(40) // duplicate: no second event
	if len(floorEvents) != 1 || floorEvents[0] != 30 {
		t.Errorf("floorEvents = %v, want [30]", floorEvents)
	}
}

func TestSetFloorsReclampsStreetFloors(t *testing.T) {
	var streetEvents []int
	s := newTestSession(Callbacks{
		OnStreetFloorsChange: func(v int) { streetEvents = append(streetEvents, v) },
	})
	selectBuilding(t, s, map[string]any{
		"id": "b1", "floors": float64(10),
		"streetEnabled": true, "streetFloors": float64(5),
	})

	s.SetFloors(3)
	cfg := s.ActiveConfig()
	if cfg.Floors != 3 || cfg.Street.Floors != 3 {
		t.Errorf("floors=%d street=%d, want both 3", cfg.Floors, cfg.Street.Floors)
	}
	if len(streetEvents) != 1 || streetEvents[0] != 3 {
		t.Errorf("streetEvents = %v", streetEvents)
	}
}

func TestWindowSetterScopes(t *testing.T) {
	s := newTestSession(Callbacks{})
	s.SetWindowWidth(MainWindows, 2.5)
	s.SetWindowWidth(StreetWindows, 3.5)

	cfg := s.ActiveConfig()
	if cfg.Windows.Width != 2.5 {
		t.Errorf("main window width = %v", cfg.Windows.Width)
	}
	if cfg.Street.Windows.Width != 3.5 {
		t.Errorf("street window width = %v", cfg.Street.Windows.Width)
	}

	// Unknown window type resolves to the catalog default.
	s.SetWindowType(MainWindows, "GOTHIC_V9")
	if got := s.ActiveConfig().Windows.Type; got != building.DefaultWindowType {
		t.Errorf("window type = %q", got)
	}
}

func TestBeltSetterScopes(t *testing.T) {
	s := newTestSession(Callbacks{})
	s.SetBeltEnabled(BeltCourseScope, true)
	s.SetBeltHeight(BeltCourseScope, 0.5)
	s.SetBeltColor(TopBeltScope, "granite")

	cfg := s.ActiveConfig()
	if !cfg.BeltCourse.Enabled || cfg.BeltCourse.Height != 0.5 {
		t.Errorf("belt course = %+v", cfg.BeltCourse)
	}
	if cfg.BeltCourse.Material.ID == "granite" {
		t.Error("belt scopes crossed")
	}
	if cfg.TopBelt.Material != (building.MaterialRef{Kind: building.MaterialColor, ID: "granite"}) {
		t.Errorf("top belt material = %+v", cfg.TopBelt.Material)
	}
}

func TestVariationEnableSwapsPresetWhenMinimal(t *testing.T) {
	s := newTestSession(Callbacks{})
	layers := s.ActiveLayers()
	floorID := layers[0].ID

	// Give the layer a minimal config with overrides worth preserving.
	s.UpdateLayerVariation(floorID, func(c *matvar.Config) {
		*c = matvar.NewDisabled(matvar.RootWall, 77, matvar.NormalMapFlips{FlipY: true})
	})

	s.SetLayerVariationEnabled(floorID, true)
	mv := s.ActiveLayers()[0].MaterialVariation
	if !mv.Enabled {
		t.Fatal("not enabled")
	}
	if !mv.Streaks.Enabled {
		t.Error("minimal config should have been replaced by the wall preset")
	}
	if mv.SeedOffset != 77 || !mv.NormalMap.FlipY {
		t.Errorf("preset swap lost overrides: seed=%d flips=%+v", mv.SeedOffset, mv.NormalMap)
	}
}

func TestVariationEnableKeepsCustomizedConfig(t *testing.T) {
	s := newTestSession(Callbacks{})
	floorID := s.ActiveLayers()[0].ID

	s.UpdateLayerVariation(floorID, func(c *matvar.Config) {
		c.Cracks.Enabled = true
		c.Cracks.Intensity = 1.5
		c.Streaks.Enabled = false
	})
	s.SetLayerVariationEnabled(floorID, false)
	s.SetLayerVariationEnabled(floorID, true)

	mv := s.ActiveLayers()[0].MaterialVariation
	if !mv.Cracks.Enabled || mv.Cracks.Intensity != 1.5 {
		t.Errorf("customized config was replaced: %+v", mv.Cracks)
	}
	if mv.Streaks.Enabled {
		t.Error("off-then-on must not resurrect the preset")
	}
}

func TestVariationRootPerLayerKind(t *testing.T) {
	s := newTestSession(Callbacks{})
	layers := s.ActiveLayers()
	var roofID string
	for _, l := range layers {
		if l.Kind == building.LayerRoof {
			roofID = l.ID
		}
	}
	if roofID == "" {
		t.Fatal("template has no roof layer")
	}

	s.SetLayerVariationEnabled(roofID, true)
	for _, l := range s.ActiveLayers() {
		if l.ID == roofID {
			mv := l.Roof.MaterialVariation
			if !mv.Enabled {
				t.Fatal("roof variation not enabled")
			}
			if !mv.Exposure.Enabled || mv.Streaks.Enabled {
				t.Error("roof layer should get the surface preset, not the wall preset")
			}
		}
	}
}

func TestResetLayerVariation(t *testing.T) {
	s := newTestSession(Callbacks{})
	floorID := s.ActiveLayers()[0].ID

	s.UpdateLayerVariation(floorID, func(c *matvar.Config) {
		c.SeedOffset = 55
		c.Cracks.Enabled = true
	})
	s.SetLayerVariationEnabled(floorID, true)
	s.ResetLayerVariation(floorID)

	mv := s.ActiveLayers()[0].MaterialVariation
	if !mv.Enabled {
		t.Error("reset must preserve the enable flag")
	}
	if mv.SeedOffset != 55 {
		t.Errorf("reset must preserve the seed offset, got %d", mv.SeedOffset)
	}
	if mv.Cracks.Enabled {
		t.Error("reset should disable all strategies")
	}
}

func TestRemoveLayerGuardEmitsNothing(t *testing.T) {
	notifications := 0
	s := newTestSession(Callbacks{
		OnSelectedBuildingLayersChange: func([]building.Layer) { notifications++ },
	})
	selectBuilding(t, s, nil)
	notifications = 0

	var roofID string
	for _, l := range s.ActiveLayers() {
		if l.Kind == building.LayerRoof {
			roofID = l.ID
		}
	}
	if s.RemoveLayer(roofID) {
		t.Error("removing the only roof layer should be rejected")
	}
	if notifications != 0 {
		t.Errorf("rejected removal emitted %d events", notifications)
	}
}

func TestDetailsOpenScopeKeys(t *testing.T) {
	s := newTestSession(Callbacks{})
	templateKey := s.ScopeKey("layer-1", "belt")
	s.SetDetailsOpen(templateKey, true)

	selectBuilding(t, s, nil)
	buildingKey := s.ScopeKey("layer-1", "belt")
	if templateKey == buildingKey {
		t.Error("scope keys must differ between template and building")
	}
	if s.DetailsOpen(buildingKey) {
		t.Error("building section inherited template open state")
	}
	if !s.DetailsOpen(templateKey) {
		t.Error("template open state lost")
	}
}

func TestListsAreCopies(t *testing.T) {
	s := newTestSession(Callbacks{})
	s.SetRoads([]Road{{ID: "r1", Label: "Main St", Length: 120}})
	roads := s.Roads()
	roads[0].Label = "mutated"
	if s.Roads()[0].Label != "Main St" {
		t.Error("Roads returned an aliased slice")
	}

	s.SetBuildings([]BuildingSummary{{ID: "b1", Label: "Tower", Floors: 10}}, "b1")
	bs := s.Buildings()
	bs[0].Floors = 99
	if s.Buildings()[0].Floors != 10 {
		t.Error("Buildings returned an aliased slice")
	}
}

func TestSelectedIDTracksHostList(t *testing.T) {
	s := newTestSession(Callbacks{})
	list := []BuildingSummary{
		{ID: "b1", Label: "Tower", Floors: 10},
		{ID: "b2", Label: "Annex", Floors: 4},
	}

	s.SetBuildings(list, "b2")
	if got := s.SelectedID(); got != "b2" {
		t.Errorf("SelectedID after SetBuildings = %q, want b2", got)
	}

	selectBuilding(t, s, map[string]any{"id": "b1"})
	if got := s.SelectedID(); got != "b1" {
		t.Errorf("SelectedID after selection = %q, want b1", got)
	}

	s.ClearSelection()
	if got := s.SelectedID(); got != "" {
		t.Errorf("SelectedID after clear = %q, want empty", got)
	}
}
