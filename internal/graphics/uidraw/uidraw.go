// Package uidraw is the immediate-mode drawing layer for the control panel.
// Everything is drawn in screen pixels with a top-left origin; widgets call
// back into it every frame.
package uidraw

import (
	"fab-hud/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	WinWidth  = 1280
	WinHeight = 800
)

const rectVertShader = `#version 410 core
layout (location = 0) in vec2 aPos;
void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
}
`

const rectFragShader = `#version 410 core
out vec4 FragColor;
uniform vec4 uColor;
void main() {
    FragColor = uColor;
}
`

const fontVertShader = `#version 410 core
layout (location = 0) in vec4 vertex; // xy = position, zw = atlas px
uniform mat4 projection;
uniform vec2 atlasSize;
out vec2 TexCoords;
void main() {
    gl_Position = projection * vec4(vertex.xy, 0.0, 1.0);
    TexCoords = vertex.zw / atlasSize;
}
`

const fontFragShader = `#version 410 core
in vec2 TexCoords;
out vec4 color;
uniform sampler2D text;
uniform vec3 textColor;
void main() {
    float alpha = texture(text, TexCoords).r;
    color = vec4(textColor, alpha);
}
`

// UI draws rectangles, sliders and text for the panel. It also owns the
// slider drag capture state so only one slider follows the mouse at a time.
type UI struct {
	rectShader *graphics.Shader
	rectVAO    uint32
	rectVBO    uint32

	atlas      *graphics.FontAtlasInfo
	fontShader *graphics.Shader
	fontVAO    uint32
	fontVBO    uint32
	projection mgl32.Mat4

	isDraggingSlider bool
	activeSliderID   string
}

// NewUI creates the UI renderer; Init must be called with a current GL context.
func NewUI() *UI {
	return &UI{}
}

// Init compiles the shaders, builds the font atlas from the given TrueType
// bytes and allocates the dynamic vertex buffers.
func (u *UI) Init(fontBytes []byte) error {
	var err error
	u.rectShader, err = graphics.NewShader(rectVertShader, rectFragShader)
	if err != nil {
		return err
	}
	u.fontShader, err = graphics.NewShader(fontVertShader, fontFragShader)
	if err != nil {
		return err
	}
	u.atlas, err = graphics.BuildFontAtlas(fontBytes, 32)
	if err != nil {
		return err
	}
	u.projection = mgl32.Ortho(0, float32(WinWidth), float32(WinHeight), 0, 0, 1)

	gl.GenVertexArrays(1, &u.rectVAO)
	gl.GenBuffers(1, &u.rectVBO)
	gl.BindVertexArray(u.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.rectVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))

	gl.GenVertexArrays(1, &u.fontVAO)
	gl.GenBuffers(1, &u.fontVBO)
	gl.BindVertexArray(u.fontVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.fontVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 256*6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

// Dispose cleans up OpenGL resources
func (u *UI) Dispose() {
	if u.rectVAO != 0 {
		gl.DeleteVertexArrays(1, &u.rectVAO)
	}
	if u.rectVBO != 0 {
		gl.DeleteBuffers(1, &u.rectVBO)
	}
	if u.fontVAO != 0 {
		gl.DeleteVertexArrays(1, &u.fontVAO)
	}
	if u.fontVBO != 0 {
		gl.DeleteBuffers(1, &u.fontVBO)
	}
	if u.rectShader != nil {
		u.rectShader.Dispose()
	}
	if u.fontShader != nil {
		u.fontShader.Dispose()
	}
}

// DrawFilledRect draws a screen-space rectangle (pixels, top-left origin) with RGBA color.
func (u *UI) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	// Convert to NDC [-1,1]
	x0 := (x/float32(WinWidth))*2 - 1
	y0 := 1 - (y/float32(WinHeight))*2
	x1 := ((x+w)/float32(WinWidth))*2 - 1
	y1 := 1 - ((y+h)/float32(WinHeight))*2
	verts := []float32{
		x0, y0,
		x1, y0,
		x1, y1,
		x0, y0,
		x1, y1,
		x0, y1,
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	u.rectShader.Use()
	u.rectShader.SetVector4("uColor", color.X(), color.Y(), color.Z(), alpha)

	gl.BindVertexArray(u.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.rectVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// DrawSlider draws a horizontal slider with the given value (0.0-1.0) and returns the new value.
// Supports drag capture and optional step snapping with tick marks. sliderID must uniquely
// identify this slider so that only one slider is active during a drag.
func (u *UI) DrawSlider(x, y, w, h float32, value float32, window *glfw.Window, steps int, sliderID string) float32 {
	trackColor := mgl32.Vec3{0.3, 0.3, 0.3}
	u.DrawFilledRect(x, y, w, h, trackColor, 0.8)

	// Draw step ticks if requested (downsample to ~10 ticks max to reduce clutter)
	if steps > 1 {
		tickHeight := h * 0.6
		tickY := y + (h-tickHeight)*0.5
		tickWidth := float32(2)
		tickColor := mgl32.Vec3{0.9, 0.9, 0.9}
		stepSpacing := steps / 10
		if stepSpacing < 1 {
			stepSpacing = 1
		}
		for i := 0; i < steps; i++ {
			if i != 0 && i != steps-1 && (i%stepSpacing) != 0 {
				continue
			}
			ratio := float32(i) / float32(steps-1)
			tx := x + ratio*w - tickWidth*0.5
			u.DrawFilledRect(tx, tickY, tickWidth, tickHeight, tickColor, 0.18)
		}
	}

	thumbWidth := float32(14)
	thumbHeight := h

	// Mouse interaction with drag capture and snapping
	if window != nil {
		cx, cy := window.GetCursorPos()
		mouseX, mouseY := float32(cx), float32(cy)
		leftDown := window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press

		inside := mouseY >= y && mouseY <= y+h && mouseX >= x && mouseX <= x+w

		if u.isDraggingSlider && u.activeSliderID == sliderID {
			if leftDown {
				value = snapSlider((mouseX-x)/w, steps)
			} else {
				u.isDraggingSlider = false
				u.activeSliderID = ""
			}
		} else if !u.isDraggingSlider && leftDown && inside {
			// Begin drag
			u.isDraggingSlider = true
			u.activeSliderID = sliderID
			value = snapSlider((mouseX-x)/w, steps)
		}
	}

	thumbX := x + (w-thumbWidth)*value
	thumbColor := mgl32.Vec3{0.6, 0.6, 0.6}
	u.DrawFilledRect(thumbX, y, thumbWidth, thumbHeight, thumbColor, 0.9)

	return value
}

// Dragging reports whether any slider currently owns the mouse.
func (u *UI) Dragging() bool {
	return u.isDraggingSlider
}

func snapSlider(v float32, steps int) float32 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if steps > 1 {
		denom := float32(steps - 1)
		stepIndex := int(v*denom + 0.5)
		if stepIndex < 0 {
			stepIndex = 0
		}
		if stepIndex > steps-1 {
			stepIndex = steps - 1
		}
		v = float32(stepIndex) / denom
	}
	return v
}

// DrawText draws the given text at (x,y) in pixels; y is the baseline.
func (u *UI) DrawText(text string, x, y, scale float32, color mgl32.Vec3) {
	verts := u.buildVertices([]rune(text), x, y, scale)
	if len(verts) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)

	u.fontShader.Use()
	u.fontShader.SetVector3("textColor", color.X(), color.Y(), color.Z())
	u.fontShader.SetMatrix4("projection", &u.projection[0])
	u.fontShader.SetInt("text", 0)
	gl.Uniform2f(gl.GetUniformLocation(u.fontShader.ID, gl.Str("atlasSize\x00")),
		float32(u.atlas.AtlasW), float32(u.atlas.AtlasH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, u.atlas.TextureID)
	gl.BindVertexArray(u.fontVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.fontVBO)

	// Deterministic orphan to avoid GPU stalls on dynamic updates
	size := len(verts) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// MeasureText returns the approximate width and height in pixels the text
// will occupy at the given scale.
func (u *UI) MeasureText(text string, scale float32) (float32, float32) {
	var width float32
	var maxH float32
	for _, r := range text {
		fc, ok := u.atlas.Characters[r]
		if !ok {
			// fall back to space advance if glyph missing
			if space, ok2 := u.atlas.Characters[' ']; ok2 {
				width += float32(space.Advance) * scale
			}
			continue
		}
		width += float32(fc.Advance) * scale
		if fc.Height*scale > maxH {
			maxH = fc.Height * scale
		}
	}
	return width, maxH
}

func (u *UI) buildVertices(chars []rune, x, y, scale float32) []float32 {
	vertices := make([]float32, 0, len(chars)*6*4)
	for _, r := range chars {
		fc, ok := u.atlas.Characters[r]
		if !ok {
			// Skip missing glyphs
			x += float32(u.atlas.Characters[' '].Advance) * scale
			continue
		}
		quad := u.buildCharVertices(fc, x, y, scale)
		vertices = append(vertices, quad...)
		x += float32(fc.Advance) * scale
	}
	return vertices
}

func (u *UI) buildCharVertices(fc graphics.FontCharacter, x, y, scale float32) []float32 {
	// Screen position
	xPos := x + fc.BearingX*scale
	yPos := y - fc.BearingY*scale
	w := fc.Width * scale
	h := fc.Height * scale

	return []float32{
		// triangle 1
		xPos, yPos + h, fc.AtlasX, fc.AtlasY + fc.Height,
		xPos, yPos, fc.AtlasX, fc.AtlasY,
		xPos + w, yPos, fc.AtlasX + fc.Width, fc.AtlasY,
		// triangle 2
		xPos, yPos + h, fc.AtlasX, fc.AtlasY + fc.Height,
		xPos + w, yPos, fc.AtlasX + fc.Width, fc.AtlasY,
		xPos + w, yPos + h, fc.AtlasX + fc.Width, fc.AtlasY + fc.Height,
	}
}
