package widget

import (
	"fab-hud/internal/graphics/uidraw"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type Button struct {
	BaseComponent
	Text      string
	Subtitle  string
	OnClick   func()
	IsHovered bool

	NormalColor   mgl32.Vec3
	HoverColor    mgl32.Vec3
	TextColor     mgl32.Vec3
	SubtitleColor mgl32.Vec3
}

func NewButton(text string, x, y, w, h float32, onClick func()) *Button {
	return &Button{
		BaseComponent: NewBase(x, y, w, h),
		Text:          text,
		OnClick:       onClick,
		NormalColor:   mgl32.Vec3{0.3, 0.3, 0.3},
		HoverColor:    mgl32.Vec3{0.4, 0.4, 0.4},
		TextColor:     mgl32.Vec3{1, 1, 1},
		SubtitleColor: mgl32.Vec3{0.8, 0.8, 0.8},
	}
}

func (b *Button) Render(u *uidraw.UI, window *glfw.Window) {
	if !b.Visible {
		return
	}

	mx, my := cursor(window)
	b.IsHovered = b.Enabled && b.contains(mx, my)

	color := b.NormalColor
	if !b.Enabled {
		color = mgl32.Vec3{0.22, 0.22, 0.22}
	} else if b.IsHovered {
		color = b.HoverColor
	}

	u.DrawFilledRect(b.X, b.Y, b.W, b.H, color, 1.0)

	textColor := b.TextColor
	if !b.Enabled {
		textColor = mgl32.Vec3{0.5, 0.5, 0.5}
	}

	// Fit the main text into the button: if we have a subtitle the two
	// share the vertical space, otherwise the main text gets ~40% of it.
	mainTextHeightRatio := float32(0.4)
	if b.Subtitle != "" {
		mainTextHeightRatio = 0.3
	}

	_, rawH := u.MeasureText(b.Text, 1.0)
	if rawH == 0 {
		rawH = 20
	}

	targetH := b.H * mainTextHeightRatio
	textScale := targetH / rawH

	textW, _ := u.MeasureText(b.Text, textScale)
	maxW := b.W * 0.90
	if textW > maxW {
		correction := maxW / textW
		textScale *= correction
		targetH *= correction
		textW = maxW
	}

	var subScale, subW, subH, spacing float32
	if b.Subtitle != "" {
		subScale = textScale * 0.6
		subW, _ = u.MeasureText(b.Subtitle, subScale)
		if subW > maxW {
			correction := maxW / subW
			subScale *= correction
			subW = maxW
		}
		_, rawSubH := u.MeasureText(b.Subtitle, 1.0)
		subH = rawSubH * subScale
		spacing = b.H * 0.05
	}

	totalContentH := targetH
	if b.Subtitle != "" {
		totalContentH += spacing + subH
	}

	// Approximate baseline offset: ~75% of the line height.
	contentTopY := b.Y + (b.H-totalContentH)/2
	mainBaselineOffset := targetH * 0.75
	subBaselineOffset := subH * 0.75

	textX := b.X + (b.W-textW)/2
	u.DrawText(b.Text, textX, contentTopY+mainBaselineOffset, textScale, textColor)

	if b.Subtitle != "" {
		subX := b.X + (b.W-subW)/2
		subY := contentTopY + targetH + spacing + subBaselineOffset
		u.DrawText(b.Subtitle, subX, subY, subScale, b.SubtitleColor)
	}
}

func (b *Button) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	if !b.Visible || !b.Enabled {
		return false
	}
	if b.IsHovered && justPressedLeft {
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}
