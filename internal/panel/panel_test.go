package panel

import (
	"testing"

	"fab-hud/internal/building"
	"fab-hud/internal/config"
)

func snapshot(selected bool, mutate func(*building.BuildingConfig)) Snapshot {
	lim := config.DefaultLimits()
	cfg := building.NewTemplate(lim)
	if mutate != nil {
		mutate(&cfg)
		cfg = cfg.Normalize(lim)
	}
	return Snapshot{UIEnabled: true, Selected: selected, Limits: lim, Config: cfg}
}

func TestNoSelectionBlanksEverything(t *testing.T) {
	st := Compute(snapshot(false, nil))

	for name, c := range map[string]Control{
		"floors":      st.Floors,
		"floorHeight": st.FloorHeight,
		"wallInset":   st.WallInset,
		"winWidth":    st.Windows.Width,
		"beltHeight":  st.BeltCourse.Height,
		"frameColor":  st.Windows.FrameColor,
		"glassTop":    st.Windows.GlassTop,
		"glassBottom": st.Windows.GlassBottom,
	} {
		if c.Enabled {
			t.Errorf("%s enabled without a selection", name)
		}
		if c.Text != "" {
			t.Errorf("%s text = %q, want empty", name, c.Text)
		}
		if c.Slider != 0 {
			t.Errorf("%s slider = %v, want 0", name, c.Slider)
		}
	}

	// The layer stack is template-editable, so AddLayer stays live.
	if !st.AddLayer.Enabled {
		t.Error("AddLayer disabled without a selection")
	}
}

func TestUIDisabledOverridesSelection(t *testing.T) {
	s := snapshot(true, nil)
	s.UIEnabled = false
	st := Compute(s)
	if st.Floors.Enabled || st.AddLayer.Enabled {
		t.Error("controls enabled while UI is disabled")
	}
	// Values still render; only input is locked out.
	if st.Floors.Text == "" {
		t.Error("floors text blanked by UI disable")
	}
}

func TestSelectedValuesRender(t *testing.T) {
	st := Compute(snapshot(true, func(c *building.BuildingConfig) {
		c.Floors = 12
		c.FloorHeight = 3.5
	}))
	if !st.Floors.Enabled {
		t.Error("floors disabled with a selection")
	}
	if st.Floors.Text != "12" {
		t.Errorf("floors text = %q, want \"12\"", st.Floors.Text)
	}
	if st.FloorHeight.Text != "3.50" {
		t.Errorf("floorHeight text = %q, want \"3.50\"", st.FloorHeight.Text)
	}
	if st.Floors.Slider <= 0 || st.Floors.Slider > 1 {
		t.Errorf("floors slider = %v, want in (0,1]", st.Floors.Slider)
	}
}

func TestStreetGates(t *testing.T) {
	st := Compute(snapshot(true, func(c *building.BuildingConfig) {
		c.Street.Floors = 0
	}))
	if st.StreetFloorHeight.Enabled || st.StreetStyle.Enabled {
		t.Error("street sub-controls enabled with zero street floors")
	}
	if st.StreetWindows.Enabled.Enabled {
		t.Error("street windows group enabled with zero street floors")
	}
	if !st.StreetFloors.Enabled {
		t.Error("street floor count itself should stay editable")
	}

	st = Compute(snapshot(true, func(c *building.BuildingConfig) {
		c.Street.Floors = 2
	}))
	if !st.StreetFloorHeight.Enabled || !st.StreetWindows.Enabled.Enabled {
		t.Error("street sub-controls disabled with street floors present")
	}
}

func TestBeltCourseNeedsUpperFloors(t *testing.T) {
	st := Compute(snapshot(true, func(c *building.BuildingConfig) {
		c.Floors = 4
		c.Street.Floors = 4
	}))
	if st.BeltCourse.Enabled.Enabled {
		t.Error("belt course enabled with no upper floors")
	}
	// The top belt caps the building regardless of the street split.
	if !st.TopBelt.Enabled.Enabled {
		t.Error("top belt disabled by street split")
	}
}

func TestBeltSubControlsFollowToggle(t *testing.T) {
	st := Compute(snapshot(true, func(c *building.BuildingConfig) {
		c.TopBelt.Enabled = false
	}))
	if st.TopBelt.Height.Enabled || st.TopBelt.Color.Enabled {
		t.Error("top belt sub-controls enabled while the band is off")
	}

	st = Compute(snapshot(true, func(c *building.BuildingConfig) {
		c.TopBelt.Enabled = true
	}))
	if !st.TopBelt.Height.Enabled || !st.TopBelt.Extrusion.Enabled {
		t.Error("top belt sub-controls disabled while the band is on")
	}
}

func TestParametricWindowControlsVisibility(t *testing.T) {
	st := Compute(snapshot(true, func(c *building.BuildingConfig) {
		c.Windows.Enabled = true
		c.Windows.Type = building.WindowModernV1
	}))
	if !st.Windows.FrameWidth.Visible || !st.Windows.GlassTop.Visible {
		t.Error("parametric controls hidden for a parametric type")
	}
	if !st.Windows.FrameWidth.Enabled {
		t.Error("frame width disabled for an enabled parametric window")
	}
	if st.Windows.GlassTop.Text == "" || st.Windows.GlassTop.Text[0] != '#' {
		t.Errorf("glass color text = %q, want #rrggbb", st.Windows.GlassTop.Text)
	}

	st = Compute(snapshot(true, func(c *building.BuildingConfig) {
		c.Windows.Enabled = true
		c.Windows.Type = "BAKED_BRICK"
	}))
	if st.Windows.FrameWidth.Visible || st.Windows.FrameColor.Visible {
		t.Error("parametric controls visible for a baked type")
	}
}

func TestFakeDepthSubControls(t *testing.T) {
	st := Compute(snapshot(true, func(c *building.BuildingConfig) {
		c.Windows.Enabled = true
		c.Windows.FakeDepth.Enabled = false
	}))
	if st.Windows.FakeDepthStrength.Enabled {
		t.Error("fake depth strength enabled while fake depth is off")
	}

	st = Compute(snapshot(true, func(c *building.BuildingConfig) {
		c.Windows.Enabled = true
		c.Windows.FakeDepth.Enabled = true
	}))
	if !st.Windows.FakeDepthStrength.Enabled || !st.Windows.FakeDepthInset.Enabled {
		t.Error("fake depth sub-controls disabled while fake depth is on")
	}
}

func TestSpaceColumnSubControls(t *testing.T) {
	st := Compute(snapshot(true, func(c *building.BuildingConfig) {
		c.Windows.Enabled = true
		c.Windows.SpaceColumns.Enabled = false
	}))
	if st.Windows.SpaceColumnEvery.Enabled || st.Windows.SpaceColumnMaterial.Enabled {
		t.Error("space-column sub-controls enabled while the spacer is off")
	}
	if !st.Windows.SpaceColumnsEnabled.Enabled {
		t.Error("spacer toggle itself should follow the window group")
	}

	st = Compute(snapshot(true, func(c *building.BuildingConfig) {
		c.Windows.Enabled = true
		c.Windows.SpaceColumns.Enabled = true
	}))
	if !st.Windows.SpaceColumnEvery.Enabled || !st.Windows.SpaceColumnWidth.Enabled {
		t.Error("space-column sub-controls disabled while the spacer is on")
	}
}

func TestSliderNormalization(t *testing.T) {
	st := Compute(snapshot(true, func(c *building.BuildingConfig) {
		c.WallInset = building.WallInsetMax
	}))
	if st.WallInset.Slider != 1 {
		t.Errorf("wall inset at max: slider = %v, want 1", st.WallInset.Slider)
	}
	st = Compute(snapshot(true, func(c *building.BuildingConfig) {
		c.WallInset = 0
	}))
	if st.WallInset.Slider != 0 {
		t.Errorf("wall inset at min: slider = %v, want 0", st.WallInset.Slider)
	}
}

func TestPackedRGBHex(t *testing.T) {
	if got := packedRGBHex(0x1a2b3c); got != "#1a2b3c" {
		t.Errorf("packedRGBHex = %q, want #1a2b3c", got)
	}
	if got := packedRGBHex(0); got != "#000000" {
		t.Errorf("packedRGBHex(0) = %q, want #000000", got)
	}
}
