package hud

import (
	"fmt"

	"fab-hud/internal/building"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// renderLayerList draws the layer stack with reorder and remove controls.
// Layers are editable in both scopes, so only the global UI lock gates it.
func (p *Panel) renderLayerList(window *glfw.Window, x, y float32) float32 {
	s := p.session
	p.title("LAYERS", x, y)
	y += rowStride

	layers := s.ActiveLayers()

	// Keep the highlighted row pointing at a layer that still exists.
	found := false
	for _, l := range layers {
		if l.ID == p.selectedLayerID {
			found = true
			break
		}
	}
	if !found {
		p.selectedLayerID = ""
		if len(layers) > 0 {
			p.selectedLayerID = layers[0].ID
		}
	}

	enabled := p.uiEnabled
	const nameW = 240
	const btnW = 26

	for i, l := range layers {
		name := fmt.Sprintf("%d  Floors x%d", i, l.Floors)
		if l.Kind == building.LayerRoof {
			name = fmt.Sprintf("%d  Roof (%s)", i, l.Roof.Type)
		}
		if l.ID == p.selectedLayerID {
			p.ui.DrawFilledRect(x-4, y-2, nameW+3*btnW+20, rowH+2, mgl32.Vec3{0.2, 0.3, 0.45}, 0.5)
		}
		if p.button(window, name, x, y, nameW, rowH-2, enabled) {
			p.selectedLayerID = l.ID
		}
		bx := x + nameW + 4
		if p.button(window, "^", bx, y, btnW, rowH-2, enabled && i > 0) {
			s.MoveLayer(l.ID, building.MoveUp)
		}
		bx += btnW + 4
		if p.button(window, "v", bx, y, btnW, rowH-2, enabled && i < len(layers)-1) {
			s.MoveLayer(l.ID, building.MoveDown)
		}
		bx += btnW + 4
		if p.button(window, "x", bx, y, btnW, rowH-2, enabled) {
			if !s.RemoveLayer(l.ID) {
				p.setNotice("Cannot remove the last layer of its kind")
			}
		}
		y += rowStride
	}

	atCap := len(layers) >= s.Limits().LayerMax
	if p.button(window, "+ Floor layer", x, y, 120, rowH, enabled && !atCap) {
		s.AddLayer(building.LayerFloor)
	}
	if p.button(window, "+ Roof layer", x+128, y, 120, rowH, enabled && !atCap) {
		s.AddLayer(building.LayerRoof)
	}
	y += rowStride

	if p.noticeTTL > 0 {
		p.noticeTTL--
		p.label(p.notice, x, y, mgl32.Vec3{0.95, 0.6, 0.3})
		y += rowStride
	}
	return y
}

func (p *Panel) setNotice(text string) {
	p.notice = text
	p.noticeTTL = 180 // ~3 seconds at 60 fps
}

// selectedLayer returns a copy of the highlighted layer, if any.
func (p *Panel) selectedLayer() (building.Layer, bool) {
	for _, l := range p.session.ActiveLayers() {
		if l.ID == p.selectedLayerID {
			return l, true
		}
	}
	return building.Layer{}, false
}

// renderLayerDetail draws the geometry controls of the highlighted layer.
func (p *Panel) renderLayerDetail(window *glfw.Window, x, y float32) float32 {
	l, ok := p.selectedLayer()
	if !ok {
		return y
	}
	s := p.session
	lim := s.Limits()
	enabled := p.uiEnabled
	id := l.ID

	if l.Kind == building.LayerFloor {
		p.title("FLOOR LAYER", x, y)
		y += rowStride

		p.label(fmt.Sprintf("Floors: %d", l.Floors), x, y, mgl32.Vec3{0.75, 0.75, 0.78})
		if v, changed := p.sliderValue(window, "layer.floors."+id, x+valueX, y, sliderW,
			float64(l.Floors), 1, float64(lim.FloorMax), enabled); changed {
			s.UpdateLayer(id, func(l *building.Layer) { l.Floors = int(v + 0.5) })
		}
		y += rowStride

		p.label(fmt.Sprintf("Floor height: %.2f", l.FloorHeight), x, y, mgl32.Vec3{0.75, 0.75, 0.78})
		if v, changed := p.sliderValue(window, "layer.floorHeight."+id, x+valueX, y, sliderW,
			l.FloorHeight, lim.FloorHeightMin, lim.FloorHeightMax, enabled); changed {
			s.UpdateLayer(id, func(l *building.Layer) { l.FloorHeight = v })
		}
		y += rowStride

		p.label(fmt.Sprintf("Plan offset: %.2f", l.PlanOffset), x, y, mgl32.Vec3{0.75, 0.75, 0.78})
		if v, changed := p.sliderValue(window, "layer.planOffset."+id, x+valueX, y, sliderW,
			l.PlanOffset, -lim.PlanOffsetMax, lim.PlanOffsetMax, enabled); changed {
			s.UpdateLayer(id, func(l *building.Layer) { l.PlanOffset = v })
		}
		y += rowStride

		p.label("Layer belt", x, y, mgl32.Vec3{0.75, 0.75, 0.78})
		if p.toggleBox(window, x+valueX, y+4, l.Belt.Enabled, enabled) {
			s.UpdateLayer(id, func(l *building.Layer) { l.Belt.Enabled = !l.Belt.Enabled })
		}
		p.label("Windows", x+valueX+40, y, mgl32.Vec3{0.75, 0.75, 0.78})
		if p.toggleBox(window, x+valueX+130, y+4, l.Windows.Enabled, enabled) {
			s.UpdateLayer(id, func(l *building.Layer) { l.Windows.Enabled = !l.Windows.Enabled })
		}
		y += rowStride
		return y
	}

	p.title("ROOF LAYER", x, y)
	y += rowStride

	if p.button(window, "Type: "+string(l.Roof.Type), x, y, 150, rowH-2, enabled) {
		s.UpdateLayer(id, func(l *building.Layer) { l.Roof.Type = nextRoofType(l.Roof.Type) })
	}
	p.label("Ring", x+170, y, mgl32.Vec3{0.75, 0.75, 0.78})
	if p.toggleBox(window, x+230, y+4, l.Ring.Enabled, enabled) {
		s.UpdateLayer(id, func(l *building.Layer) { l.Ring.Enabled = !l.Ring.Enabled })
	}
	y += rowStride

	if l.Ring.Enabled {
		p.label(fmt.Sprintf("Ring radius: %.2f", l.Ring.OuterRadius), x, y, mgl32.Vec3{0.75, 0.75, 0.78})
		if v, changed := p.sliderValue(window, "layer.ringRadius."+id, x+valueX, y, sliderW,
			l.Ring.OuterRadius, 0, building.RingRadiusMax, enabled); changed {
			s.UpdateLayer(id, func(l *building.Layer) { l.Ring.OuterRadius = v })
		}
		y += rowStride

		p.label(fmt.Sprintf("Ring height: %.2f", l.Ring.Height), x, y, mgl32.Vec3{0.75, 0.75, 0.78})
		if v, changed := p.sliderValue(window, "layer.ringHeight."+id, x+valueX, y, sliderW,
			l.Ring.Height, 0, building.RingHeightMax, enabled); changed {
			s.UpdateLayer(id, func(l *building.Layer) { l.Ring.Height = v })
		}
		y += rowStride
	}
	return y
}

func nextRoofType(t building.RoofType) building.RoofType {
	switch t {
	case building.RoofAsphalt:
		return building.RoofMetal
	case building.RoofMetal:
		return building.RoofTile
	default:
		return building.RoofAsphalt
	}
}
