// Package panel derives complete widget display state from the current
// model. It holds no state of its own: Compute is a pure function re-run
// after every mutation, which is what keeps the screen and the model from
// drifting apart.
package panel

import (
	"fab-hud/internal/building"
	"fab-hud/internal/config"
	"fab-hud/internal/numutil"
)

// Control is the display state of one widget (or one tight widget group):
// whether it accepts input, whether it is shown at all, the text for a
// numeric field, and the normalized [0,1] position for a slider. With no
// building selected, Text is empty and Slider sits at the range minimum —
// a blank field says "no meaningful value" where a stale number would lie.
type Control struct {
	Enabled bool
	Visible bool
	Text    string
	Slider  float64
}

// WindowControls is the display state of one window property group.
// The frame/glass controls are visible only for parametric window types;
// baked-texture windows have no frame to parameterize.
type WindowControls struct {
	Enabled    Control
	TypePicker Control

	Width      Control
	Height     Control
	SillHeight Control
	Spacing    Control

	FrameWidth  Control
	FrameColor  Control
	GlassTop    Control
	GlassBottom Control

	FakeDepthEnabled  Control
	FakeDepthStrength Control
	FakeDepthInset    Control

	SpaceColumnsEnabled Control
	SpaceColumnEvery    Control
	SpaceColumnWidth    Control
	SpaceColumnMaterial Control
	SpaceColumnExtrude  Control
}

// BeltControls is the display state of one belt band group.
type BeltControls struct {
	Enabled   Control
	Height    Control
	Extrusion Control
	Color     Control
}

// State is the complete answer to "what should every control show and is it
// editable", computed in one pass.
type State struct {
	StylePicker Control
	Floors      Control
	FloorHeight Control
	WallInset   Control
	RoofType    Control
	RoofColor   Control
	Seed        Control

	StreetFloors      Control
	StreetFloorHeight Control
	StreetStyle       Control

	BeltCourse BeltControls
	TopBelt    BeltControls

	Windows       WindowControls
	StreetWindows WindowControls

	AddLayer Control
}

// Snapshot is everything Compute reads: the global enable flag, whether a
// building is selected, the model bounds, and the active configuration.
type Snapshot struct {
	UIEnabled bool
	Selected  bool
	Limits    config.Limits
	Config    building.BuildingConfig
}

// Compute derives the full widget state for a snapshot.
func Compute(s Snapshot) State {
	// Most per-building property controls only go live once a building
	// exists; editing the template exercises the layers panel instead.
	live := s.UIEnabled && s.Selected
	cfg := s.Config
	lim := s.Limits

	st := State{
		StylePicker: pick(live),
		Floors:      num(s, live, float64(cfg.Floors), 1, float64(lim.FloorMax), 0),
		FloorHeight: num(s, live, cfg.FloorHeight, lim.FloorHeightMin, lim.FloorHeightMax, 2),
		WallInset:   num(s, live, cfg.WallInset, 0, building.WallInsetMax, 2),
		RoofType:    pick(live),
		RoofColor:   pick(live),
		AddLayer:    pick(s.UIEnabled), // layer stack is editable in both scopes

		StreetFloors: num(s, live, float64(cfg.Street.Floors), 0, float64(cfg.Floors), 0),
	}

	if s.Selected {
		if seed := cfg.MaterialVariationSeed; seed != nil {
			st.Seed = Control{Enabled: live, Visible: true, Text: numutil.FormatFloat(float64(*seed), 0)}
		} else {
			st.Seed = Control{Enabled: live, Visible: true}
		}
	} else {
		st.Seed = Control{Visible: true}
	}

	// Street-floor sub-controls need at least one street floor.
	streetLive := live && cfg.Street.Floors > 0
	st.StreetFloorHeight = num(s, streetLive, cfg.Street.FloorHeight, lim.FloorHeightMin, lim.FloorHeightMax, 2)
	st.StreetStyle = pick(streetLive)

	// The belt course sits at the street/upper transition; with every floor
	// a street floor there is no transition to decorate.
	beltLive := live && cfg.Street.Floors < cfg.Floors
	st.BeltCourse = beltControls(s, beltLive, cfg.BeltCourse)
	st.TopBelt = beltControls(s, live, cfg.TopBelt)

	st.Windows = windowControls(s, live, cfg.Windows)
	st.StreetWindows = windowControls(s, streetLive, cfg.Street.Windows)
	return st
}

func beltControls(s Snapshot, groupLive bool, b building.BeltConfig) BeltControls {
	sub := groupLive && b.Enabled
	return BeltControls{
		Enabled:   pick(groupLive),
		Height:    num(s, sub, b.Height, building.BeltHeightMin, building.BeltHeightMax, 2),
		Extrusion: num(s, sub, b.Extrusion, 0, building.BeltExtrusionMax, 2),
		Color:     pick(sub),
	}
}

func windowControls(s Snapshot, groupLive bool, w building.WindowsConfig) WindowControls {
	sub := groupLive && w.Enabled
	parametric := building.IsParametricWindowType(w.Type)
	fake := sub && w.FakeDepth.Enabled

	wc := WindowControls{
		Enabled:    pick(groupLive),
		TypePicker: pick(sub),

		Width:      num(s, sub, w.Width, building.WindowWidthMin, building.WindowWidthMax, 2),
		Height:     num(s, sub, w.Height, building.WindowHeightMin, building.WindowHeightMax, 2),
		SillHeight: num(s, sub, w.SillHeight, 0, building.SillHeightMax, 2),
		Spacing:    num(s, sub, w.Spacing, 0, building.WindowSpacingMax, 2),

		FakeDepthEnabled:  pick(sub),
		FakeDepthStrength: num(s, fake, w.FakeDepth.Strength, 0, building.FakeDepthStrengthMax, 3),
		FakeDepthInset:    num(s, fake, w.FakeDepth.InsetStrength, 0, 1, 2),
	}

	spacer := sub && w.SpaceColumns.Enabled
	wc.SpaceColumnsEnabled = pick(sub)
	wc.SpaceColumnEvery = num(s, spacer, float64(w.SpaceColumns.Every), 1, building.SpaceColumnEveryMax, 0)
	wc.SpaceColumnWidth = num(s, spacer, w.SpaceColumns.Width, building.SpaceColumnWidthMin, building.SpaceColumnWidthMax, 2)
	wc.SpaceColumnMaterial = pick(spacer)
	wc.SpaceColumnExtrude = num(s, spacer, w.SpaceColumns.ExtrudeDistance, 0, 1, 2)

	// Parametric-only controls are hidden, not just disabled, for baked
	// texture types: a frame-width field under a baked window reads like a
	// broken control.
	wc.FrameWidth = num(s, sub && parametric, w.FrameWidth, building.FrameWidthMin, building.FrameWidthMax, 3)
	wc.FrameWidth.Visible = parametric
	wc.FrameColor = colorControl(s, sub && parametric, parametric, w.FrameColor)
	wc.GlassTop = colorControl(s, sub && parametric, parametric, w.GlassTop)
	wc.GlassBottom = colorControl(s, sub && parametric, parametric, w.GlassBottom)
	return wc
}

// pick is a button/picker/toggle control: no value of its own, just gating.
func pick(enabled bool) Control {
	return Control{Enabled: enabled, Visible: true}
}

// num builds a numeric field + slider pair. Without a selection the field
// blanks and the slider rests at its minimum.
func num(s Snapshot, enabled bool, v, min, max float64, digits int) Control {
	c := Control{Enabled: enabled, Visible: true}
	if !s.Selected {
		return c
	}
	c.Text = numutil.FormatFloat(v, digits)
	if max > min {
		c.Slider = numutil.Clamp((v-min)/(max-min), 0, 1)
	}
	return c
}

// colorControl is a hex swatch field. Like num it blanks without a
// selection so a template color never shows through an empty form.
func colorControl(s Snapshot, enabled, visible bool, rgb int) Control {
	c := Control{Enabled: enabled, Visible: visible}
	if !s.Selected {
		return c
	}
	c.Text = packedRGBHex(rgb)
	return c
}

// packedRGBHex renders 0xRRGGBB as "#rrggbb" for color swatch fields.
func packedRGBHex(c int) string {
	const digits = "0123456789abcdef"
	out := [7]byte{'#'}
	for i := 0; i < 6; i++ {
		out[6-i] = digits[c&0xf]
		c >>= 4
	}
	return string(out[:])
}
