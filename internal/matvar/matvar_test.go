package matvar

import (
	"math"
	"testing"
)

func TestIsMinimal(t *testing.T) {
	min := Config{Enabled: true, SeedOffset: 5}
	if !IsMinimal(min, RootWall) {
		t.Error("config with only Enabled/SeedOffset should be minimal")
	}

	min.NormalMap = NormalMapFlips{FlipY: true}
	if !IsMinimal(min, RootWall) {
		t.Error("normal-map flips should not break minimality")
	}

	custom := Config{Enabled: true}
	custom.Streaks.Enabled = true
	if IsMinimal(custom, RootWall) {
		t.Error("config with streaks enabled should not be minimal")
	}

	preset := DefaultPreset(RootWall)
	if IsMinimal(preset, RootWall) {
		t.Error("full preset should not be minimal")
	}

	// The disabled-preset shape produced by layer construction is minimal
	// too, as long as only seed/flips were touched.
	disabled := NewDisabled(RootSurface, 42, NormalMapFlips{FlipX: true})
	disabled.Enabled = true
	if !IsMinimal(disabled, RootSurface) {
		t.Error("NewDisabled shape should be minimal")
	}
	disabled.WearSide.Enabled = true
	if IsMinimal(disabled, RootSurface) {
		t.Error("customized NewDisabled shape should not be minimal")
	}
}

func TestDefaultPresetRoots(t *testing.T) {
	wall := DefaultPreset(RootWall)
	surface := DefaultPreset(RootSurface)

	if !wall.Streaks.Enabled {
		t.Error("wall preset should enable streaks")
	}
	if surface.Streaks.Enabled {
		t.Error("surface preset should not enable run-off streaks")
	}
	if !surface.Exposure.Enabled {
		t.Error("surface preset should enable exposure")
	}
	if wall.Brick.PerBrick.Layout.BricksPerTileY == surface.Brick.PerBrick.Layout.BricksPerTileY {
		t.Error("wall and surface presets should differ in brick density")
	}
}

func TestNewDisabledPreservesOverrides(t *testing.T) {
	flips := NormalMapFlips{FlipX: true, FlipZ: true}
	cfg := NewDisabled(RootSurface, 123, flips)

	if cfg.Enabled {
		t.Error("NewDisabled should be disabled")
	}
	if cfg.SeedOffset != 123 {
		t.Errorf("SeedOffset = %d, want 123", cfg.SeedOffset)
	}
	if cfg.NormalMap != flips {
		t.Errorf("NormalMap = %+v, want %+v", cfg.NormalMap, flips)
	}
	if cfg.Streaks.Enabled || cfg.Exposure.Enabled || cfg.Brick.PerBrick.Enabled {
		t.Error("all strategies should be off")
	}
	// Numeric fields still come from the preset, not zero.
	if cfg.Brick.PerBrick.Layout.BricksPerTileX != surfaceBrickLayout.BricksPerTileX {
		t.Errorf("brick layout not taken from surface preset: %+v", cfg.Brick.PerBrick.Layout)
	}
	if cfg.GlobalIntensity == 0 {
		t.Error("GlobalIntensity should keep the preset value")
	}
}

func TestNormalizeClampsRanges(t *testing.T) {
	cfg := Config{
		SeedOffset:      123456,
		GlobalIntensity: 99,
		AOAmount:        -2,
	}
	cfg.MacroLayers[0].Intensity = 5
	cfg.MacroLayers[0].HueDegrees = 400
	cfg.MacroLayers[0].Value = -7
	cfg.MacroLayers[0].Coverage = 0.5 // not the coverage slot
	cfg.MacroLayers[CoverageSlot].Coverage = 3
	cfg.StairShift.BlendWidth = 2
	cfg.Brick.PerBrick.Layout.BricksPerTileX = 9999

	out := Normalize(cfg, RootWall)

	if out.SeedOffset != SeedOffsetMax {
		t.Errorf("SeedOffset = %d, want %d", out.SeedOffset, SeedOffsetMax)
	}
	if out.GlobalIntensity != GlobalIntensityMax {
		t.Errorf("GlobalIntensity = %v", out.GlobalIntensity)
	}
	if out.AOAmount != 0 {
		t.Errorf("AOAmount = %v, want 0", out.AOAmount)
	}
	if out.MacroLayers[0].Intensity != GlobalIntensityMax {
		t.Errorf("macro intensity = %v", out.MacroLayers[0].Intensity)
	}
	if out.MacroLayers[0].HueDegrees != HueDegreesMax {
		t.Errorf("hue = %v", out.MacroLayers[0].HueDegrees)
	}
	if out.MacroLayers[0].Value != -1 {
		t.Errorf("value = %v", out.MacroLayers[0].Value)
	}
	if out.MacroLayers[0].Coverage != 0 {
		t.Error("coverage outside the coverage slot should be zeroed")
	}
	if out.MacroLayers[CoverageSlot].Coverage != 1 {
		t.Errorf("coverage = %v, want 1", out.MacroLayers[CoverageSlot].Coverage)
	}
	if out.StairShift.BlendWidth != BlendWidthMax {
		t.Errorf("blend width = %v", out.StairShift.BlendWidth)
	}
	if out.Brick.PerBrick.Layout.BricksPerTileX != BricksPerTileMax {
		t.Errorf("bricks per tile = %v", out.Brick.PerBrick.Layout.BricksPerTileX)
	}
}

func TestNormalizeFillsUnsetFromPreset(t *testing.T) {
	out := Normalize(Config{}, RootWall)
	preset := DefaultPreset(RootWall)

	if out.Space != preset.Space {
		t.Errorf("Space = %q", out.Space)
	}
	if out.WorldSpaceScale != preset.WorldSpaceScale {
		t.Errorf("WorldSpaceScale = %v", out.WorldSpaceScale)
	}
	if out.Streaks.Scale != preset.Streaks.Scale {
		t.Errorf("streaks scale = %v", out.Streaks.Scale)
	}
	if out.Exposure.Direction != preset.Exposure.Direction {
		t.Errorf("exposure direction = %v", out.Exposure.Direction)
	}
	if out.StairShift.Mode != preset.StairShift.Mode {
		t.Errorf("stair mode = %q", out.StairShift.Mode)
	}
	if out.Brick.Mortar.Layout.BricksPerTileY != preset.Brick.Mortar.Layout.BricksPerTileY {
		t.Errorf("mortar layout = %+v", out.Brick.Mortar.Layout)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	cfg := Config{Enabled: true, SeedOffset: -20000, GlobalIntensity: 1.4}
	cfg.MacroLayers[1].Enabled = true
	cfg.MacroLayers[1].Scale = 0.001
	cfg.Exposure.Direction = AzElToDirection(200, 30)
	cfg.Brick.PerBrick.Layout.OffsetX = -50

	once := Normalize(cfg, RootSurface)
	twice := Normalize(once, RootSurface)
	if once != twice {
		t.Errorf("Normalize not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}

	presetOnce := Normalize(DefaultPreset(RootWall), RootWall)
	presetTwice := Normalize(presetOnce, RootWall)
	if presetOnce != presetTwice {
		t.Error("Normalize not idempotent on the wall preset")
	}
}

func TestDirectionRoundTrip(t *testing.T) {
	cases := []struct{ az, el float64 }{
		{0, 0},
		{0, 45},
		{90, 10},
		{135, 45},
		{180, 89},
		{270, 30},
		{359.5, 1},
	}
	for _, c := range cases {
		dir := AzElToDirection(c.az, c.el)
		l := dir.Len()
		if math.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("AzElToDirection(%v, %v) not unit length: %v", c.az, c.el, l)
		}
		az, el := DirectionToAzEl(dir)
		if math.Abs(az-c.az) > 0.01 || math.Abs(el-c.el) > 0.01 {
			t.Errorf("round trip (%v, %v) -> (%v, %v)", c.az, c.el, az, el)
		}
	}
}

func TestDirectionEdgeCases(t *testing.T) {
	// Straight up: azimuth is degenerate, reported as 0.
	az, el := DirectionToAzEl(AzElToDirection(123, 90))
	if az != 0 || el != 90 {
		t.Errorf("straight up -> (%v, %v), want (0, 90)", az, el)
	}

	// Azimuth wraps at 360.
	a := AzElToDirection(360, 20)
	b := AzElToDirection(0, 20)
	if a != b {
		t.Errorf("azimuth 360 != 0: %v vs %v", a, b)
	}
	c := AzElToDirection(-90, 20)
	d := AzElToDirection(270, 20)
	if c != d {
		t.Errorf("azimuth -90 != 270: %v vs %v", c, d)
	}

	// Below-horizon elevation clamps to the horizon.
	_, el = DirectionToAzEl(AzElToDirection(45, -30))
	if el != 0 {
		t.Errorf("negative elevation -> %v, want 0", el)
	}
}
