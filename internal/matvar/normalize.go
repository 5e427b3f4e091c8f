package matvar

import (
	"fab-hud/internal/numutil"

	"github.com/go-gl/mathgl/mgl32"
)

// Normalize is the single entry point that turns an arbitrary Config value
// into a valid one. Every numeric field is clamped into its documented
// range; fields whose valid range excludes zero (scales, brick density) take
// the root preset's value when unset, so a partially-populated config decoded
// from a host record ends up with sane numbers instead of range minimums.
// Normalize is idempotent.
func Normalize(cfg Config, root Root) Config {
	preset := DefaultPreset(root)

	cfg.SeedOffset = numutil.ClampInt(float64(cfg.SeedOffset), SeedOffsetMin, SeedOffsetMax)
	if cfg.Space != SpaceWorld && cfg.Space != SpaceObject {
		cfg.Space = preset.Space
	}
	cfg.WorldSpaceScale = orPreset(cfg.WorldSpaceScale, preset.WorldSpaceScale, SpaceScaleMin, SpaceScaleMax)
	cfg.ObjectSpaceScale = orPreset(cfg.ObjectSpaceScale, preset.ObjectSpaceScale, SpaceScaleMin, SpaceScaleMax)
	cfg.GlobalIntensity = numutil.Clamp(cfg.GlobalIntensity, 0, GlobalIntensityMax)
	cfg.AOAmount = numutil.Clamp(cfg.AOAmount, 0, 1)

	for i := range cfg.MacroLayers {
		m := &cfg.MacroLayers[i]
		m.Intensity = numutil.Clamp(m.Intensity, 0, GlobalIntensityMax)
		m.Scale = orPreset(m.Scale, preset.MacroLayers[i].Scale, MacroScaleMin, MacroScaleMax)
		m.Contribution = normalizeContribution(m.Contribution)
		if i == CoverageSlot {
			m.Coverage = numutil.Clamp(m.Coverage, 0, 1)
		} else {
			m.Coverage = 0
		}
	}

	cfg.Streaks.Intensity = numutil.Clamp(cfg.Streaks.Intensity, 0, GlobalIntensityMax)
	cfg.Streaks.Scale = orPreset(cfg.Streaks.Scale, preset.Streaks.Scale, MacroScaleMin, MacroScaleMax)
	cfg.Streaks.Contribution = normalizeContribution(cfg.Streaks.Contribution)

	cfg.Exposure.Intensity = numutil.Clamp(cfg.Exposure.Intensity, 0, GlobalIntensityMax)
	cfg.Exposure.Contribution = normalizeContribution(cfg.Exposure.Contribution)
	cfg.Exposure.Direction = normalizeDirection(cfg.Exposure.Direction, preset.Exposure.Direction)

	cfg.WearTop = normalizeWear(cfg.WearTop, preset.WearTop)
	cfg.WearBottom = normalizeWear(cfg.WearBottom, preset.WearBottom)
	cfg.WearSide = normalizeWear(cfg.WearSide, preset.WearSide)

	cfg.Cracks.Intensity = numutil.Clamp(cfg.Cracks.Intensity, 0, GlobalIntensityMax)
	cfg.Cracks.Scale = orPreset(cfg.Cracks.Scale, preset.Cracks.Scale, MacroScaleMin, MacroScaleMax)
	cfg.Cracks.Contribution = normalizeContribution(cfg.Cracks.Contribution)

	cfg.AntiTiling.Strength = numutil.Clamp(cfg.AntiTiling.Strength, 0, 1)
	cfg.AntiTiling.Scale = orPreset(cfg.AntiTiling.Scale, preset.AntiTiling.Scale, MacroScaleMin, MacroScaleMax)

	switch cfg.StairShift.Mode {
	case StairModeStair, StairModeAlternate, StairModeRandom, StairModePattern3:
	default:
		cfg.StairShift.Mode = preset.StairShift.Mode
	}
	cfg.StairShift.PatternA = numutil.Clamp(cfg.StairShift.PatternA, 0, 1)
	cfg.StairShift.PatternB = numutil.Clamp(cfg.StairShift.PatternB, 0, 1)
	cfg.StairShift.BlendWidth = numutil.Clamp(cfg.StairShift.BlendWidth, 0, BlendWidthMax)
	if cfg.StairShift.Direction != ShiftHorizontal && cfg.StairShift.Direction != ShiftVertical {
		cfg.StairShift.Direction = preset.StairShift.Direction
	}

	cfg.Brick.PerBrick = normalizeBrick(cfg.Brick.PerBrick, preset.Brick.PerBrick)
	cfg.Brick.Mortar = normalizeBrick(cfg.Brick.Mortar, preset.Brick.Mortar)

	return cfg
}

func normalizeContribution(c Contribution) Contribution {
	c.HueDegrees = numutil.Clamp(c.HueDegrees, HueDegreesMin, HueDegreesMax)
	c.Value = numutil.Clamp(c.Value, -1, 1)
	c.Saturation = numutil.Clamp(c.Saturation, -1, 1)
	c.Roughness = numutil.Clamp(c.Roughness, -1, 1)
	c.Normal = numutil.Clamp(c.Normal, -1, 1)
	return c
}

func normalizeWear(w, preset WearBand) WearBand {
	w.Intensity = numutil.Clamp(w.Intensity, 0, GlobalIntensityMax)
	w.Width = numutil.Clamp(w.Width, 0, 1)
	w.Scale = orPreset(w.Scale, preset.Scale, MacroScaleMin, MacroScaleMax)
	w.Contribution = normalizeContribution(w.Contribution)
	return w
}

func normalizeBrick(b, preset BrickVariation) BrickVariation {
	b.Intensity = numutil.Clamp(b.Intensity, 0, GlobalIntensityMax)
	b.Contribution = normalizeContribution(b.Contribution)
	b.Layout.BricksPerTileX = orPreset(b.Layout.BricksPerTileX, preset.Layout.BricksPerTileX, BricksPerTileMin, BricksPerTileMax)
	b.Layout.BricksPerTileY = orPreset(b.Layout.BricksPerTileY, preset.Layout.BricksPerTileY, BricksPerTileMin, BricksPerTileMax)
	b.Layout.MortarWidth = numutil.Clamp(b.Layout.MortarWidth, 0, BlendWidthMax)
	b.Layout.OffsetX = numutil.Clamp(b.Layout.OffsetX, BrickOffsetMin, BrickOffsetMax)
	b.Layout.OffsetY = numutil.Clamp(b.Layout.OffsetY, BrickOffsetMin, BrickOffsetMax)
	return b
}

// orPreset substitutes the preset value for an unset (zero) field, otherwise
// clamps. Used for fields whose valid range excludes zero, where zero can
// only mean "never set".
func orPreset(v, preset, min, max float64) float64 {
	if v == 0 {
		return preset
	}
	return numutil.Clamp(v, min, max)
}

// normalizeDirection returns a unit-length exposure direction, substituting
// the preset direction for a zero vector and clamping below-horizon vectors
// to the horizon.
func normalizeDirection(dir, preset mgl32.Vec3) mgl32.Vec3 {
	if dir == (mgl32.Vec3{}) {
		return preset
	}
	// Already a unit vector above the horizon: keep it bit-identical so
	// normalization stays idempotent.
	l := dir.Len()
	if dir.Y() >= 0 && l > 0.999999 && l < 1.000001 {
		return dir
	}
	az, el := DirectionToAzEl(dir)
	return AzElToDirection(az, el)
}
