package matvar

// DefaultPreset returns the full starting configuration for a root. These are
// the values swapped in when a user enables variation on a layer they never
// customized, so they are tuned to look reasonable immediately: walls get
// streaking, edge wear and dense brick variation; roof surfaces get larger
// blotches, sun-exposure tinting and a coarse tile grid.
func DefaultPreset(root Root) Config {
	cfg := Config{
		Enabled:          true,
		SeedOffset:       0,
		Space:            SpaceWorld,
		WorldSpaceScale:  1.0,
		ObjectSpaceScale: 1.0,
		GlobalIntensity:  1.0,
		AOAmount:         0.35,
	}

	cfg.MacroLayers[0] = MacroLayer{
		Enabled:   true,
		Intensity: 0.6,
		Scale:     2.5,
		Contribution: Contribution{
			HueDegrees: 4,
			Value:      -0.08,
			Saturation: -0.05,
			Roughness:  0.1,
		},
	}
	cfg.MacroLayers[1] = MacroLayer{
		Enabled:   true,
		Intensity: 0.4,
		Scale:     0.6,
		Contribution: Contribution{
			Value:     -0.05,
			Roughness: 0.05,
		},
	}
	cfg.MacroLayers[2] = MacroLayer{
		Intensity: 0.3,
		Scale:     0.15,
		Contribution: Contribution{
			Value: -0.04,
		},
	}
	cfg.MacroLayers[3] = MacroLayer{
		Intensity: 0.5,
		Scale:     1.0,
		Contribution: Contribution{
			Value:      -0.12,
			Saturation: -0.1,
		},
		Coverage: 0.35,
	}

	cfg.Streaks = StreaksLayer{
		Enabled:   true,
		Intensity: 0.5,
		Scale:     1.2,
		Contribution: Contribution{
			Value:     -0.15,
			Roughness: 0.08,
		},
	}
	cfg.Exposure = ExposureLayer{
		Intensity: 0.6,
		Direction: AzElToDirection(135, 45),
		Contribution: Contribution{
			Value:      0.08,
			Saturation: -0.12,
			Roughness:  0.05,
		},
	}
	cfg.WearTop = WearBand{
		Enabled:   true,
		Intensity: 0.5,
		Width:     0.12,
		Scale:     1.5,
		Contribution: Contribution{
			Value:     -0.1,
			Roughness: 0.15,
		},
	}
	cfg.WearBottom = WearBand{
		Enabled:   true,
		Intensity: 0.6,
		Width:     0.18,
		Scale:     1.5,
		Contribution: Contribution{
			Value:      -0.18,
			Saturation: -0.08,
			Roughness:  0.2,
		},
	}
	cfg.WearSide = WearBand{
		Intensity: 0.4,
		Width:     0.1,
		Scale:     1.5,
		Contribution: Contribution{
			Value:     -0.1,
			Roughness: 0.1,
		},
	}
	cfg.Cracks = CracksLayer{
		Intensity: 0.5,
		Scale:     1.0,
		Contribution: Contribution{
			Value:     -0.25,
			Roughness: 0.2,
		},
	}
	cfg.AntiTiling = AntiTiling{
		Enabled:  true,
		Strength: 0.5,
		Scale:    1.0,
	}
	cfg.StairShift = StairShift{
		Mode:       StairModeStair,
		PatternA:   0.5,
		PatternB:   0.25,
		BlendWidth: 0.08,
		Direction:  ShiftHorizontal,
	}
	cfg.Brick = BrickConfig{
		PerBrick: BrickVariation{
			Enabled:   true,
			Intensity: 0.5,
			Contribution: Contribution{
				HueDegrees: 6,
				Value:      -0.1,
				Saturation: 0.05,
			},
			Layout: wallBrickLayout,
		},
		Mortar: BrickVariation{
			Intensity: 0.4,
			Contribution: Contribution{
				Value:     0.1,
				Roughness: 0.1,
			},
			Layout: wallBrickLayout,
		},
	}

	if root == RootSurface {
		applySurfacePreset(&cfg)
	}
	return cfg
}

var wallBrickLayout = BrickLayout{
	BricksPerTileX: 8,
	BricksPerTileY: 24,
	MortarWidth:    0.08,
}

var surfaceBrickLayout = BrickLayout{
	BricksPerTileX: 2,
	BricksPerTileY: 2,
	MortarWidth:    0.04,
}

// applySurfacePreset adjusts the wall preset for horizontal surfaces:
// no run-off streaks, sun exposure on, coarse tile grid, larger blotches.
func applySurfacePreset(cfg *Config) {
	cfg.AOAmount = 0.25
	cfg.MacroLayers[0].Scale = 4.0
	cfg.MacroLayers[1].Scale = 1.2
	cfg.Streaks.Enabled = false
	cfg.Exposure.Enabled = true
	cfg.WearTop.Enabled = false
	cfg.WearBottom.Enabled = false
	cfg.WearSide.Enabled = true
	cfg.Brick.PerBrick.Layout = surfaceBrickLayout
	cfg.Brick.Mortar.Layout = surfaceBrickLayout
}

// NewDisabled returns a config with every strategy switched off but all
// numeric fields populated from the root's preset, preserving the caller's
// seed offset and normal-map flips. This is the clean-slate state a layer
// starts from before the user enables individual strategies.
func NewDisabled(root Root, seedOffset int, normalMap NormalMapFlips) Config {
	cfg := DefaultPreset(root)
	cfg.Enabled = false
	cfg.SeedOffset = seedOffset
	cfg.NormalMap = normalMap
	for i := range cfg.MacroLayers {
		cfg.MacroLayers[i].Enabled = false
	}
	cfg.Streaks.Enabled = false
	cfg.Exposure.Enabled = false
	cfg.WearTop.Enabled = false
	cfg.WearBottom.Enabled = false
	cfg.WearSide.Enabled = false
	cfg.Cracks.Enabled = false
	cfg.AntiTiling.Enabled = false
	cfg.StairShift.Enabled = false
	cfg.Brick.PerBrick.Enabled = false
	cfg.Brick.Mortar.Enabled = false
	return Normalize(cfg, root)
}

// IsMinimal reports whether the user never customized anything beyond the
// enable toggle, the seed offset, and the normal-map flips. Enabling a
// minimal config swaps in the root's full preset instead of leaving the
// user with a configuration that does nothing visible. Both minimal forms
// count: a sparse config as it arrives from a host record, and the
// NewDisabled shape that decoding and layer construction produce.
func IsMinimal(cfg Config, root Root) bool {
	probe := cfg
	probe.Enabled = false
	probe.SeedOffset = 0
	probe.NormalMap = NormalMapFlips{}
	if probe == (Config{}) {
		return true
	}
	probe = cfg
	probe.Enabled = false
	return probe == NewDisabled(root, cfg.SeedOffset, cfg.NormalMap)
}
