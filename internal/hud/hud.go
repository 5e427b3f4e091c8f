// Package hud is the on-screen control panel. It binds the widget layer to
// the editor session: retained widgets for the fixed property form on the
// left, immediate-mode rows for the dynamic layer stack, variation form and
// scene lists on the right. Widget display state is recomputed from the
// model every frame, so the screen can never drift from the session.
package hud

import (
	"fab-hud/internal/editor"
	"fab-hud/internal/graphics/uidraw"
	"fab-hud/internal/input"
	"fab-hud/internal/panel"
	"fab-hud/internal/ui/widget"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Column layout, in pixels.
const (
	colLeftX   = 16
	colMidX    = 450
	colRightX  = 884
	colWidth   = 410
	rowH       = 26
	rowGap     = 6
	fieldW     = 86
	sliderW    = 170
	labelScale = 0.38
	titleScale = 0.5
)

// HostCallbacks are the hooks the embedding application provides. The panel
// never fabricates building data itself; selection requests go to the host,
// which answers with SetSelectedBuilding on the session.
type HostCallbacks struct {
	SelectBuilding func(id string)
}

// Panel owns all control-panel state that is about presentation rather than
// the model: which layer row is highlighted, which picker dropdown is open,
// whether the UI as a whole accepts input.
type Panel struct {
	session *editor.Session
	ui      *uidraw.UI
	im      *input.InputManager
	host    HostCallbacks

	uiEnabled       bool
	selectedLayerID string
	windowTab       editor.WindowScope
	notice          string
	noticeTTL       int

	// Per-frame click state. clickConsumed stops one click from activating
	// two overlapping controls.
	justLeft      bool
	clickConsumed bool

	form *propertyForm
}

// NewPanel builds the panel and its retained widget form.
func NewPanel(session *editor.Session, ui *uidraw.UI, im *input.InputManager, host HostCallbacks) *Panel {
	p := &Panel{
		session:   session,
		ui:        ui,
		im:        im,
		host:      host,
		uiEnabled: true,
	}
	p.form = p.buildPropertyForm()
	return p
}

// UIEnabled reports whether the panel accepts input.
func (p *Panel) UIEnabled() bool { return p.uiEnabled }

// HandleChar routes typed characters to the focused text field, if any.
func (p *Panel) HandleChar(r rune) {
	for _, f := range p.form.fields {
		f.HandleChar(r)
	}
}

// HandleKey routes editing keys to the focused text field, if any.
func (p *Panel) HandleKey(key glfw.Key, action glfw.Action) {
	for _, f := range p.form.fields {
		f.HandleKey(key, action)
	}
}

// FieldFocused reports whether a text field owns the keyboard.
func (p *Panel) FieldFocused() bool {
	for _, f := range p.form.fields {
		if f.Focused() {
			return true
		}
	}
	return false
}

// Render runs one frame: apply model state to widgets, dispatch input, draw.
func (p *Panel) Render(window *glfw.Window) {
	if p.im.JustPressed(input.ActionToggleUI) {
		p.uiEnabled = !p.uiEnabled
	}
	if p.im.JustPressed(input.ActionClearSelection) && !p.FieldFocused() {
		p.session.ClearSelection()
	}

	p.justLeft = p.im.JustPressed(input.ActionMouseLeft)
	p.clickConsumed = false

	st := panel.Compute(panel.Snapshot{
		UIEnabled: p.uiEnabled,
		Selected:  p.session.HasSelection(),
		Limits:    p.session.Limits(),
		Config:    p.session.ActiveConfig(),
	})
	cfg := p.session.ActiveConfig()
	p.applyPropertyForm(st, cfg)

	// An open dropdown owns the click before anything underneath it.
	if op := p.openPicker(); op != nil {
		if op.HandleInput(window, p.justLeft) {
			p.clickConsumed = true
		}
	}
	for _, c := range p.form.components {
		if c.HandleInput(window, p.justLeft && !p.clickConsumed) {
			p.clickConsumed = true
		}
	}

	// Backgrounds
	bg := mgl32.Vec3{0.08, 0.08, 0.1}
	p.ui.DrawFilledRect(0, 0, colMidX-8, uidraw.WinHeight, bg, 0.92)
	p.ui.DrawFilledRect(colMidX-8, 0, colRightX-colMidX, uidraw.WinHeight, bg, 0.92)
	p.ui.DrawFilledRect(colRightX-8, 0, uidraw.WinWidth-colRightX+8, uidraw.WinHeight, bg, 0.92)

	for _, c := range p.form.components {
		c.Render(p.ui, window)
	}
	p.renderFormLabels()

	y := p.renderLayerList(window, colRightX, 16)
	y = p.renderLayerDetail(window, colRightX, y+12)
	p.renderVariation(window, colRightX, y+12)
	p.renderLists(window, colLeftX, p.form.bottomY+18)

	if op := p.openPicker(); op != nil {
		op.RenderOverlay(p.ui, window)
	}

	if !p.uiEnabled {
		p.ui.DrawFilledRect(0, 0, uidraw.WinWidth, uidraw.WinHeight, mgl32.Vec3{0, 0, 0}, 0.35)
		msg := "Panel locked (F1 to unlock)"
		tw, _ := p.ui.MeasureText(msg, 0.6)
		p.ui.DrawText(msg, (uidraw.WinWidth-tw)/2, 40, 0.6, mgl32.Vec3{1, 1, 1})
	}
}

func (p *Panel) openPicker() *widget.Picker {
	for _, pk := range p.form.pickers {
		if pk.Open {
			return pk
		}
	}
	return nil
}

// label draws static text with the baseline aligned to a row of height rowH.
func (p *Panel) label(text string, x, y float32, color mgl32.Vec3) {
	_, th := p.ui.MeasureText(text, labelScale)
	p.ui.DrawText(text, x, y+(rowH+th)/2, labelScale, color)
}

func (p *Panel) title(text string, x, y float32) {
	_, th := p.ui.MeasureText(text, titleScale)
	p.ui.DrawText(text, x, y+(rowH+th)/2, titleScale, mgl32.Vec3{0.85, 0.85, 0.95})
}

// button is an immediate-mode button for dynamic rows; returns true on click.
func (p *Panel) button(window *glfw.Window, text string, x, y, w, h float32, enabled bool) bool {
	mx, my := window.GetCursorPos()
	hover := enabled &&
		float32(mx) >= x && float32(mx) <= x+w &&
		float32(my) >= y && float32(my) <= y+h

	base := mgl32.Vec3{0.25, 0.25, 0.25}
	if !enabled {
		base = mgl32.Vec3{0.16, 0.16, 0.16}
	} else if hover {
		base = mgl32.Vec3{0.35, 0.35, 0.35}
	}
	p.ui.DrawFilledRect(x, y, w, h, base, 0.9)

	textColor := mgl32.Vec3{0.95, 0.95, 0.95}
	if !enabled {
		textColor = mgl32.Vec3{0.5, 0.5, 0.5}
	}
	tw, th := p.ui.MeasureText(text, labelScale)
	p.ui.DrawText(text, x+(w-tw)/2, y+(h+th)/2, labelScale, textColor)

	if hover && p.justLeft && !p.clickConsumed {
		p.clickConsumed = true
		return true
	}
	return false
}

// toggleBox is an immediate-mode on/off box; returns true when clicked.
func (p *Panel) toggleBox(window *glfw.Window, x, y float32, on, enabled bool) bool {
	const size = 16
	mx, my := window.GetCursorPos()
	hover := enabled &&
		float32(mx) >= x && float32(mx) <= x+size &&
		float32(my) >= y && float32(my) <= y+size

	color := mgl32.Vec3{0.5, 0.2, 0.2}
	if on {
		color = mgl32.Vec3{0.2, 0.5, 0.2}
	}
	if !enabled {
		color = mgl32.Vec3{0.22, 0.22, 0.22}
	} else if hover {
		color = color.Mul(1.2)
	}
	p.ui.DrawFilledRect(x, y, size, size, color, 0.9)

	if hover && p.justLeft && !p.clickConsumed {
		p.clickConsumed = true
		return true
	}
	return false
}

// sliderValue draws an immediate-mode slider bound to [min,max] and reports
// the (possibly unchanged) value plus whether the user moved it.
func (p *Panel) sliderValue(window *glfw.Window, id string, x, y, w float32, v, min, max float64, enabled bool) (float64, bool) {
	if max <= min {
		return v, false
	}
	norm := float32((v - min) / (max - min))
	if norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}
	var got float32
	if enabled {
		got = p.ui.DrawSlider(x, y+5, w, rowH-10, norm, window, 0, id)
	} else {
		got = p.ui.DrawSlider(x, y+5, w, rowH-10, norm, nil, 0, id)
	}
	if got == norm {
		return v, false
	}
	return min + float64(got)*(max-min), true
}
