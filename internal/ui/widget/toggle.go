package widget

import (
	"fab-hud/internal/graphics/uidraw"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type Toggle struct {
	BaseComponent
	Label     string
	IsOn      bool
	OnToggle  func(isOn bool)
	IsHovered bool
}

func NewToggle(label string, x, y, w, h float32, initial bool, onToggle func(isOn bool)) *Toggle {
	return &Toggle{
		BaseComponent: NewBase(x, y, w, h),
		Label:         label,
		IsOn:          initial,
		OnToggle:      onToggle,
	}
}

// SetOn updates the displayed state without firing OnToggle.
func (t *Toggle) SetOn(on bool) { t.IsOn = on }

func (t *Toggle) Render(u *uidraw.UI, window *glfw.Window) {
	if !t.Visible {
		return
	}

	mx, my := cursor(window)
	t.IsHovered = t.Enabled && t.contains(mx, my)

	bgColor := mgl32.Vec3{0.2, 0.5, 0.2} // Green when enabled
	if !t.IsOn {
		bgColor = mgl32.Vec3{0.5, 0.2, 0.2} // Red when disabled
	}
	if !t.Enabled {
		bgColor = mgl32.Vec3{0.25, 0.25, 0.25}
	}
	if t.IsHovered {
		bgColor = bgColor.Mul(1.2) // Brighten on hover
	}

	u.DrawFilledRect(t.X, t.Y, t.W, t.H, bgColor, 0.85)

	if t.Label != "" {
		labelColor := mgl32.Vec3{0.9, 0.9, 0.9}
		if !t.Enabled {
			labelColor = mgl32.Vec3{0.5, 0.5, 0.5}
		}
		_, th := u.MeasureText(t.Label, 0.4)
		u.DrawText(t.Label, t.X+t.W+8, t.Y+(t.H+th)/2, 0.4, labelColor)
	}
}

func (t *Toggle) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	if !t.Visible || !t.Enabled {
		return false
	}
	if t.IsHovered && justPressedLeft {
		t.IsOn = !t.IsOn
		if t.OnToggle != nil {
			t.OnToggle(t.IsOn)
		}
		return true
	}
	return false
}
