package widget

import (
	"fab-hud/internal/graphics/uidraw"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Component interface {
	Render(u *uidraw.UI, window *glfw.Window)
	HandleInput(window *glfw.Window, justPressedLeft bool) bool
	SetPosition(x, y float32)
	SetSize(w, h float32)
	GetSize() (float32, float32)
}

type BaseComponent struct {
	X, Y, W, H float32
	Enabled    bool
	Visible    bool
}

func NewBase(x, y, w, h float32) BaseComponent {
	return BaseComponent{X: x, Y: y, W: w, H: h, Enabled: true, Visible: true}
}

func (b *BaseComponent) SetPosition(x, y float32)    { b.X, b.Y = x, y }
func (b *BaseComponent) SetSize(w, h float32)        { b.W, b.H = w, h }
func (b *BaseComponent) GetSize() (float32, float32) { return b.W, b.H }

func (b *BaseComponent) contains(mx, my float32) bool {
	return mx >= b.X && mx <= b.X+b.W && my >= b.Y && my <= b.Y+b.H
}

func cursor(window *glfw.Window) (float32, float32) {
	mx, my := window.GetCursorPos()
	return float32(mx), float32(my)
}
