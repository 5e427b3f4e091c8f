package widget

import (
	"fab-hud/internal/graphics/uidraw"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// NumberField is a click-to-edit text box for numeric values. While focused
// it owns keyboard input; the buffered text is committed on Enter or when
// focus is lost, and reverted on Escape. Validation and clamping are the
// owner's job in OnCommit so that the field itself stays dumb.
type NumberField struct {
	BaseComponent
	Text      string // committed display text
	OnCommit  func(text string)
	Filter    func(r rune) bool // accepted characters; nil means numeric
	IsHovered bool

	focused bool
	buffer  []rune
}

func NewNumberField(x, y, w, h float32, onCommit func(text string)) *NumberField {
	return &NumberField{
		BaseComponent: NewBase(x, y, w, h),
		OnCommit:      onCommit,
	}
}

// SetText replaces the committed text without firing OnCommit. A focused
// field keeps its edit buffer; the model catches up once editing ends.
func (f *NumberField) SetText(text string) {
	f.Text = text
}

// Focused reports whether the field currently owns keyboard input.
func (f *NumberField) Focused() bool { return f.focused }

func (f *NumberField) Render(u *uidraw.UI, window *glfw.Window) {
	if !f.Visible {
		return
	}

	mx, my := cursor(window)
	f.IsHovered = f.Enabled && f.contains(mx, my)

	bg := mgl32.Vec3{0.15, 0.15, 0.15}
	if !f.Enabled {
		bg = mgl32.Vec3{0.12, 0.12, 0.12}
	} else if f.focused {
		bg = mgl32.Vec3{0.1, 0.1, 0.2}
	} else if f.IsHovered {
		bg = mgl32.Vec3{0.2, 0.2, 0.2}
	}
	u.DrawFilledRect(f.X, f.Y, f.W, f.H, bg, 0.9)

	if f.focused {
		// Focus border
		border := mgl32.Vec3{0.4, 0.6, 0.9}
		u.DrawFilledRect(f.X, f.Y, f.W, 1, border, 1)
		u.DrawFilledRect(f.X, f.Y+f.H-1, f.W, 1, border, 1)
		u.DrawFilledRect(f.X, f.Y, 1, f.H, border, 1)
		u.DrawFilledRect(f.X+f.W-1, f.Y, 1, f.H, border, 1)
	}

	text := f.Text
	if f.focused {
		text = string(f.buffer) + "_"
	}
	textColor := mgl32.Vec3{0.95, 0.95, 0.95}
	if !f.Enabled {
		textColor = mgl32.Vec3{0.5, 0.5, 0.5}
	}
	_, th := u.MeasureText(text, 0.4)
	u.DrawText(text, f.X+6, f.Y+(f.H+th)/2, 0.4, textColor)
}

func (f *NumberField) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	if !justPressedLeft {
		return false
	}
	if f.Visible && f.Enabled && f.IsHovered {
		if !f.focused {
			f.focused = true
			f.buffer = []rune(f.Text)
		}
		return true
	}
	// Clicking anywhere else commits an in-progress edit
	if f.focused {
		f.commit()
	}
	return false
}

// HandleChar feeds a typed character into the edit buffer.
func (f *NumberField) HandleChar(r rune) {
	if !f.focused {
		return
	}
	accept := f.Filter
	if accept == nil {
		accept = func(r rune) bool {
			return (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+'
		}
	}
	if accept(r) {
		f.buffer = append(f.buffer, r)
	}
}

// HandleKey handles editing keys while focused.
func (f *NumberField) HandleKey(key glfw.Key, action glfw.Action) {
	if !f.focused || (action != glfw.Press && action != glfw.Repeat) {
		return
	}
	switch key {
	case glfw.KeyBackspace:
		if len(f.buffer) > 0 {
			f.buffer = f.buffer[:len(f.buffer)-1]
		}
	case glfw.KeyEnter, glfw.KeyKPEnter:
		f.commit()
	case glfw.KeyEscape:
		f.focused = false
		f.buffer = nil
	}
}

func (f *NumberField) commit() {
	f.focused = false
	text := string(f.buffer)
	f.buffer = nil
	if f.OnCommit != nil {
		f.OnCommit(text)
	}
}
