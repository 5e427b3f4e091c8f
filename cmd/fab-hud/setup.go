package main

import (
	"log"

	"fab-hud/internal/building"
	"fab-hud/internal/editor"
	"fab-hud/internal/graphics/uidraw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(uidraw.WinWidth, uidraw.WinHeight, "fab-hud", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	glfw.SwapInterval(1)
	return window, nil
}

// hostCallbacks logs every change event the session emits. A generator
// process would consume these instead; logging keeps the demo inspectable.
func hostCallbacks() editor.Callbacks {
	window := func(group string) editor.WindowCallbacks {
		return editor.WindowCallbacks{
			OnEnabledChange:           func(v bool) { log.Printf("%s.enabled = %v", group, v) },
			OnTypeChange:              func(v building.WindowType) { log.Printf("%s.type = %s", group, v) },
			OnFrameWidthChange:        func(v float64) { log.Printf("%s.frameWidth = %.3f", group, v) },
			OnFrameColorChange:        func(v int) { log.Printf("%s.frameColor = #%06x", group, v) },
			OnGlassTopChange:          func(v int) { log.Printf("%s.glassTop = #%06x", group, v) },
			OnGlassBottomChange:       func(v int) { log.Printf("%s.glassBottom = #%06x", group, v) },
			OnWidthChange:             func(v float64) { log.Printf("%s.width = %.2f", group, v) },
			OnHeightChange:            func(v float64) { log.Printf("%s.height = %.2f", group, v) },
			OnSillHeightChange:        func(v float64) { log.Printf("%s.sillHeight = %.2f", group, v) },
			OnSpacingChange:           func(v float64) { log.Printf("%s.spacing = %.2f", group, v) },
			OnFakeDepthEnabledChange:  func(v bool) { log.Printf("%s.fakeDepth.enabled = %v", group, v) },
			OnFakeDepthStrengthChange: func(v float64) { log.Printf("%s.fakeDepth.strength = %.3f", group, v) },
			OnFakeDepthInsetChange:    func(v float64) { log.Printf("%s.fakeDepth.inset = %.2f", group, v) },
			OnSpaceColumnsChange: func(v building.SpaceColumnsConfig) {
				log.Printf("%s.spaceColumns = %+v", group, v)
			},
		}
	}
	belt := func(group string) editor.BeltCallbacks {
		return editor.BeltCallbacks{
			OnEnabledChange:   func(v bool) { log.Printf("%s.enabled = %v", group, v) },
			OnHeightChange:    func(v float64) { log.Printf("%s.height = %.2f", group, v) },
			OnExtrusionChange: func(v float64) { log.Printf("%s.extrusion = %.2f", group, v) },
			OnColorChange:     func(v string) { log.Printf("%s.color = %s", group, v) },
		}
	}

	return editor.Callbacks{
		OnSelectedBuildingLayersChange: func(layers []building.Layer) {
			log.Printf("layers changed: %d layers", len(layers))
		},
		OnSelectedBuildingMaterialVariationSeedChange: func(seed *uint32) {
			if seed == nil {
				log.Printf("variation seed cleared")
				return
			}
			log.Printf("variation seed = %d", *seed)
		},

		OnTypeChange:        func(v string) { log.Printf("type = %s", v) },
		OnStyleChange:       func(v string) { log.Printf("style = %s", v) },
		OnFloorsChange:      func(v int) { log.Printf("floors = %d", v) },
		OnFloorHeightChange: func(v float64) { log.Printf("floorHeight = %.2f", v) },
		OnWallInsetChange:   func(v float64) { log.Printf("wallInset = %.2f", v) },
		OnRoofTypeChange:    func(v building.RoofType) { log.Printf("roofType = %s", v) },
		OnRoofColorChange:   func(v string) { log.Printf("roofColor = %s", v) },

		OnStreetFloorsChange:      func(v int) { log.Printf("street.floors = %d", v) },
		OnStreetFloorHeightChange: func(v float64) { log.Printf("street.floorHeight = %.2f", v) },
		OnStreetStyleChange:       func(v string) { log.Printf("street.style = %s", v) },

		BeltCourse: belt("beltCourse"),
		TopBelt:    belt("topBelt"),

		Windows:       window("windows"),
		StreetWindows: window("street.windows"),
	}
}

// demoScene is a stand-in for the host application's scene data: raw
// building payloads the way an exporter would hand them over, including the
// legacy quirks the decoder has to absorb.
func demoScene() (map[string]map[string]any, []editor.BuildingSummary, []editor.Road) {
	raw := map[string]map[string]any{
		"b-plaza": {
			"id":          "b-plaza",
			"floors":      8,
			"floorHeight": 3.2,
			"style":       "brick_red",
			"windowStyle": "arched", // legacy alias, decodes to ARCH_V1
			"roofColor":   "terracotta",
		},
		"b-office": {
			"id":            "b-office",
			"floors":        14,
			"floorHeight":   2.9,
			"streetEnabled": true,
			"streetFloors":  2,
			"wallInset":     0.4,
		},
		"b-depot": {
			"id":     "b-depot",
			"floors": 3,
		},
	}

	buildings := []editor.BuildingSummary{
		{ID: "b-plaza", Label: "Plaza block", Floors: 8},
		{ID: "b-office", Label: "Office tower", Floors: 14},
		{ID: "b-depot", Label: "Depot", Floors: 3},
	}
	roads := []editor.Road{
		{ID: "r-main", Label: "Main street", Length: 420},
		{ID: "r-side", Label: "Side alley", Length: 85},
	}
	return raw, buildings, roads
}
