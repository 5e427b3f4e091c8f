package hud

import (
	"fmt"

	"fab-hud/internal/building"
	"fab-hud/internal/matvar"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func variationOf(l building.Layer) matvar.Config {
	if l.Kind == building.LayerRoof {
		return l.Roof.MaterialVariation
	}
	return l.MaterialVariation
}

// strategyRow describes one weathering strategy in the variation form: how
// to reach its enabled flag and intensity inside the config, plus an
// optional extra editor drawn when the row is expanded.
type strategyRow struct {
	key          string
	label        string
	enabled      func(c *matvar.Config) *bool
	intensity    func(c *matvar.Config) *float64
	intensityMax float64 // 0 means the default [0, 2] strategy range
	extra        func(p *Panel, window *glfw.Window, id string, cfg matvar.Config, x, y float32) float32
}

func macroRow(slot int) strategyRow {
	r := strategyRow{
		key:       fmt.Sprintf("macro%d", slot),
		label:     fmt.Sprintf("Macro blotches %d", slot+1),
		enabled:   func(c *matvar.Config) *bool { return &c.MacroLayers[slot].Enabled },
		intensity: func(c *matvar.Config) *float64 { return &c.MacroLayers[slot].Intensity },
	}
	if slot == matvar.CoverageSlot {
		r.extra = func(p *Panel, window *glfw.Window, id string, cfg matvar.Config, x, y float32) float32 {
			p.label(fmt.Sprintf("Coverage: %.2f", cfg.MacroLayers[slot].Coverage), x, y, dimText)
			if v, changed := p.sliderValue(window, "var.coverage."+id, x+valueX, y, sliderW,
				cfg.MacroLayers[slot].Coverage, 0, 1, p.uiEnabled); changed {
				p.session.UpdateLayerVariation(id, func(c *matvar.Config) { c.MacroLayers[slot].Coverage = v })
			}
			return y + rowStride
		}
	}
	return r
}

var dimText = mgl32.Vec3{0.75, 0.75, 0.78}

func (p *Panel) strategyRows() []strategyRow {
	rows := []strategyRow{
		macroRow(0), macroRow(1), macroRow(2), macroRow(3),
		{
			key: "streaks", label: "Streaks",
			enabled:   func(c *matvar.Config) *bool { return &c.Streaks.Enabled },
			intensity: func(c *matvar.Config) *float64 { return &c.Streaks.Intensity },
		},
		{
			key: "exposure", label: "Directional exposure",
			enabled:   func(c *matvar.Config) *bool { return &c.Exposure.Enabled },
			intensity: func(c *matvar.Config) *float64 { return &c.Exposure.Intensity },
			extra:     (*Panel).exposureDirection,
		},
		{
			key: "wearTop", label: "Wear (top)",
			enabled:   func(c *matvar.Config) *bool { return &c.WearTop.Enabled },
			intensity: func(c *matvar.Config) *float64 { return &c.WearTop.Intensity },
		},
		{
			key: "wearBottom", label: "Wear (bottom)",
			enabled:   func(c *matvar.Config) *bool { return &c.WearBottom.Enabled },
			intensity: func(c *matvar.Config) *float64 { return &c.WearBottom.Intensity },
		},
		{
			key: "wearSide", label: "Wear (sides)",
			enabled:   func(c *matvar.Config) *bool { return &c.WearSide.Enabled },
			intensity: func(c *matvar.Config) *float64 { return &c.WearSide.Intensity },
		},
		{
			key: "cracks", label: "Cracks",
			enabled:   func(c *matvar.Config) *bool { return &c.Cracks.Enabled },
			intensity: func(c *matvar.Config) *float64 { return &c.Cracks.Intensity },
		},
		{
			key: "antiTiling", label: "Anti-tiling",
			enabled:      func(c *matvar.Config) *bool { return &c.AntiTiling.Enabled },
			intensity:    func(c *matvar.Config) *float64 { return &c.AntiTiling.Strength },
			intensityMax: 1,
		},
		{
			key: "stairShift", label: "Stair shift",
			enabled: func(c *matvar.Config) *bool { return &c.StairShift.Enabled },
			extra:   (*Panel).stairShiftPatterns,
		},
		{
			key: "perBrick", label: "Per-brick variation",
			enabled:   func(c *matvar.Config) *bool { return &c.Brick.PerBrick.Enabled },
			intensity: func(c *matvar.Config) *float64 { return &c.Brick.PerBrick.Intensity },
		},
		{
			key: "mortar", label: "Mortar variation",
			enabled:   func(c *matvar.Config) *bool { return &c.Brick.Mortar.Enabled },
			intensity: func(c *matvar.Config) *float64 { return &c.Brick.Mortar.Intensity },
		},
	}
	return rows
}

// exposureDirection edits the exposure direction as azimuth/elevation even
// though the model stores a unit vector.
func (p *Panel) exposureDirection(window *glfw.Window, id string, cfg matvar.Config, x, y float32) float32 {
	az, el := matvar.DirectionToAzEl(cfg.Exposure.Direction)

	p.label(fmt.Sprintf("Azimuth: %.0f", az), x, y, dimText)
	if v, changed := p.sliderValue(window, "var.azimuth."+id, x+valueX, y, sliderW, az, 0, 359, p.uiEnabled); changed {
		p.session.UpdateLayerVariation(id, func(c *matvar.Config) {
			c.Exposure.Direction = matvar.AzElToDirection(v, el)
		})
	}
	y += rowStride

	p.label(fmt.Sprintf("Elevation: %.0f", el), x, y, dimText)
	if v, changed := p.sliderValue(window, "var.elevation."+id, x+valueX, y, sliderW, el, 0, 90, p.uiEnabled); changed {
		p.session.UpdateLayerVariation(id, func(c *matvar.Config) {
			c.Exposure.Direction = matvar.AzElToDirection(az, v)
		})
	}
	return y + rowStride
}

func (p *Panel) stairShiftPatterns(window *glfw.Window, id string, cfg matvar.Config, x, y float32) float32 {
	p.label(fmt.Sprintf("Pattern A: %.2f", cfg.StairShift.PatternA), x, y, dimText)
	if v, changed := p.sliderValue(window, "var.patternA."+id, x+valueX, y, sliderW,
		cfg.StairShift.PatternA, 0, 1, p.uiEnabled); changed {
		p.session.UpdateLayerVariation(id, func(c *matvar.Config) { c.StairShift.PatternA = v })
	}
	y += rowStride

	p.label(fmt.Sprintf("Pattern B: %.2f", cfg.StairShift.PatternB), x, y, dimText)
	if v, changed := p.sliderValue(window, "var.patternB."+id, x+valueX, y, sliderW,
		cfg.StairShift.PatternB, 0, 1, p.uiEnabled); changed {
		p.session.UpdateLayerVariation(id, func(c *matvar.Config) { c.StairShift.PatternB = v })
	}
	return y + rowStride
}

// renderVariation draws the weathering form for the highlighted layer.
func (p *Panel) renderVariation(window *glfw.Window, x, y float32) float32 {
	l, ok := p.selectedLayer()
	if !ok {
		return y
	}
	s := p.session
	cfg := variationOf(l)
	id := l.ID
	enabled := p.uiEnabled

	p.title("MATERIAL VARIATION", x, y)
	y += rowStride

	p.label("Enabled", x, y, dimText)
	if p.toggleBox(window, x+valueX, y+4, cfg.Enabled, enabled) {
		s.SetLayerVariationEnabled(id, !cfg.Enabled)
	}
	if p.button(window, "Reset", x+valueX+60, y, 80, rowH-2, enabled) {
		s.ResetLayerVariation(id)
	}
	y += rowStride

	if !cfg.Enabled {
		return y
	}

	p.label(fmt.Sprintf("Seed offset: %d", cfg.SeedOffset), x, y, dimText)
	if v, changed := p.sliderValue(window, "var.seedOffset."+id, x+valueX, y, sliderW,
		float64(cfg.SeedOffset), matvar.SeedOffsetMin, matvar.SeedOffsetMax, enabled); changed {
		s.UpdateLayerVariation(id, func(c *matvar.Config) { c.SeedOffset = int(v) })
	}
	y += rowStride

	p.label(fmt.Sprintf("Intensity: %.2f", cfg.GlobalIntensity), x, y, dimText)
	if v, changed := p.sliderValue(window, "var.globalIntensity."+id, x+valueX, y, sliderW,
		cfg.GlobalIntensity, 0, matvar.GlobalIntensityMax, enabled); changed {
		s.UpdateLayerVariation(id, func(c *matvar.Config) { c.GlobalIntensity = v })
	}
	y += rowStride

	p.label(fmt.Sprintf("AO amount: %.2f", cfg.AOAmount), x, y, dimText)
	if v, changed := p.sliderValue(window, "var.ao."+id, x+valueX, y, sliderW,
		cfg.AOAmount, 0, 1, enabled); changed {
		s.UpdateLayerVariation(id, func(c *matvar.Config) { c.AOAmount = v })
	}
	y += rowStride

	spaceLabel := "Space: world"
	if cfg.Space == matvar.SpaceObject {
		spaceLabel = "Space: object"
	}
	if p.button(window, spaceLabel, x, y, 140, rowH-2, enabled) {
		s.UpdateLayerVariation(id, func(c *matvar.Config) {
			if c.Space == matvar.SpaceObject {
				c.Space = matvar.SpaceWorld
			} else {
				c.Space = matvar.SpaceObject
			}
		})
	}
	y += rowStride

	for _, row := range p.strategyRows() {
		cfg = variationOf(mustLayer(s.ActiveLayers(), id)) // re-read after edits above
		on := *row.enabled(&cfg)
		openKey := s.ScopeKey(id, row.key)
		open := s.DetailsOpen(openKey)

		if p.toggleBox(window, x, y+4, on, enabled) {
			s.UpdateLayerVariation(id, func(c *matvar.Config) { *row.enabled(c) = !on })
		}
		p.label(row.label, x+24, y, mgl32.Vec3{0.85, 0.85, 0.88})

		marker := "+"
		if open {
			marker = "-"
		}
		if p.button(window, marker, x+colWidth-60, y, 22, rowH-2, enabled) {
			s.SetDetailsOpen(openKey, !open)
		}
		y += rowStride

		if open {
			if row.intensity != nil {
				maxI := row.intensityMax
				if maxI == 0 {
					maxI = matvar.GlobalIntensityMax
				}
				v := *row.intensity(&cfg)
				p.label(fmt.Sprintf("Intensity: %.2f", v), x+24, y, dimText)
				if nv, changed := p.sliderValue(window, "var."+row.key+".intensity."+id, x+valueX, y, sliderW,
					v, 0, maxI, enabled); changed {
					s.UpdateLayerVariation(id, func(c *matvar.Config) { *row.intensity(c) = nv })
				}
				y += rowStride
			}
			if row.extra != nil {
				y = row.extra(p, window, id, cfg, x+24, y)
			}
		}
	}
	return y
}

func mustLayer(layers []building.Layer, id string) building.Layer {
	for _, l := range layers {
		if l.ID == id {
			return l
		}
	}
	return building.Layer{}
}
