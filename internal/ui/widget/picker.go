package widget

import (
	"fab-hud/internal/graphics/uidraw"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// PickerOption is one selectable entry in a Picker dropdown.
type PickerOption struct {
	ID    string
	Label string
}

// Picker shows the currently selected option and opens a dropdown list on
// click. The dropdown is drawn by RenderOverlay so the owner can paint it
// over everything else in the frame.
type Picker struct {
	BaseComponent
	Options    []PickerOption
	SelectedID string
	OnSelect   func(id string)
	IsHovered  bool
	Open       bool

	rowH float32
}

func NewPicker(x, y, w, h float32, options []PickerOption, selectedID string, onSelect func(id string)) *Picker {
	return &Picker{
		BaseComponent: NewBase(x, y, w, h),
		Options:       options,
		SelectedID:    selectedID,
		OnSelect:      onSelect,
		rowH:          h,
	}
}

// SetSelected updates the shown option without firing OnSelect.
func (p *Picker) SetSelected(id string) { p.SelectedID = id }

// SetOptions replaces the option list, closing an open dropdown.
func (p *Picker) SetOptions(options []PickerOption) {
	p.Options = options
	p.Open = false
}

func (p *Picker) selectedLabel() string {
	for _, o := range p.Options {
		if o.ID == p.SelectedID {
			return o.Label
		}
	}
	return p.SelectedID
}

func (p *Picker) Render(u *uidraw.UI, window *glfw.Window) {
	if !p.Visible {
		return
	}

	mx, my := cursor(window)
	p.IsHovered = p.Enabled && p.contains(mx, my)

	bg := mgl32.Vec3{0.25, 0.25, 0.32}
	if !p.Enabled {
		bg = mgl32.Vec3{0.18, 0.18, 0.18}
	} else if p.IsHovered || p.Open {
		bg = mgl32.Vec3{0.32, 0.32, 0.42}
	}
	u.DrawFilledRect(p.X, p.Y, p.W, p.H, bg, 0.9)

	textColor := mgl32.Vec3{0.95, 0.95, 0.95}
	if !p.Enabled {
		textColor = mgl32.Vec3{0.5, 0.5, 0.5}
	}
	label := p.selectedLabel()
	_, th := u.MeasureText(label, 0.4)
	u.DrawText(label, p.X+6, p.Y+(p.H+th)/2, 0.4, textColor)

	// Dropdown marker
	marker := "v"
	mw, mh := u.MeasureText(marker, 0.35)
	u.DrawText(marker, p.X+p.W-mw-6, p.Y+(p.H+mh)/2, 0.35, textColor)
}

// RenderOverlay draws the open dropdown. The owner calls this after all
// other widgets so the list paints on top of them.
func (p *Picker) RenderOverlay(u *uidraw.UI, window *glfw.Window) {
	if !p.Open || !p.Visible {
		return
	}
	mx, my := cursor(window)
	y := p.Y + p.H
	for _, o := range p.Options {
		bg := mgl32.Vec3{0.15, 0.15, 0.18}
		hovered := mx >= p.X && mx <= p.X+p.W && my >= y && my <= y+p.rowH
		if hovered {
			bg = mgl32.Vec3{0.3, 0.3, 0.4}
		}
		if o.ID == p.SelectedID {
			bg = bg.Add(mgl32.Vec3{0.05, 0.1, 0.05})
		}
		u.DrawFilledRect(p.X, y, p.W, p.rowH, bg, 0.97)
		_, th := u.MeasureText(o.Label, 0.4)
		u.DrawText(o.Label, p.X+6, y+(p.rowH+th)/2, 0.4, mgl32.Vec3{0.95, 0.95, 0.95})
		y += p.rowH
	}
}

func (p *Picker) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	if !justPressedLeft || !p.Visible {
		return false
	}
	mx, my := cursor(window)

	if p.Open {
		// Clicks inside the dropdown select; anywhere else closes it.
		y := p.Y + p.H
		for _, o := range p.Options {
			if mx >= p.X && mx <= p.X+p.W && my >= y && my <= y+p.rowH {
				p.Open = false
				if o.ID != p.SelectedID {
					p.SelectedID = o.ID
					if p.OnSelect != nil {
						p.OnSelect(o.ID)
					}
				}
				return true
			}
			y += p.rowH
		}
		p.Open = false
		return true
	}

	if p.Enabled && p.contains(mx, my) {
		p.Open = true
		return true
	}
	return false
}
