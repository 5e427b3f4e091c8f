package hud

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// renderLists draws the scene lists: selectable buildings plus read-only
// roads. The template row clears the selection, putting edits back onto the
// shared template.
func (p *Panel) renderLists(window *glfw.Window, x, y float32) float32 {
	s := p.session
	enabled := p.uiEnabled

	p.title("SCENE", x, y)
	y += rowStride

	const rowW = 280
	templateLabel := "Template (no selection)"
	if !s.HasSelection() {
		p.ui.DrawFilledRect(x-4, y-2, rowW+8, rowH+2, mgl32.Vec3{0.2, 0.3, 0.45}, 0.5)
	}
	if p.button(window, templateLabel, x, y, rowW, rowH-2, enabled) {
		s.ClearSelection()
	}
	y += rowStride

	for _, b := range s.Buildings() {
		label := fmt.Sprintf("%s  (%d floors)", b.Label, b.Floors)
		if b.ID == s.SelectedID() {
			p.ui.DrawFilledRect(x-4, y-2, rowW+8, rowH+2, mgl32.Vec3{0.2, 0.3, 0.45}, 0.5)
		}
		if p.button(window, label, x, y, rowW, rowH-2, enabled) {
			if p.host.SelectBuilding != nil {
				p.host.SelectBuilding(b.ID)
			}
		}
		y += rowStride
	}

	roads := s.Roads()
	if len(roads) > 0 {
		y += 8
		p.title("ROADS", x, y)
		y += rowStride
		for _, r := range roads {
			p.label(fmt.Sprintf("%s  %.0fm", r.Label, r.Length), x, y, dimText)
			y += rowStride
		}
	}
	return y
}
