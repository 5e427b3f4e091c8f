package building

import (
	"github.com/google/uuid"

	"fab-hud/internal/config"
	"fab-hud/internal/matvar"
	"fab-hud/internal/numutil"
)

// MoveDirection selects which neighbor a layer swaps with.
type MoveDirection int

const (
	MoveUp   MoveDirection = -1
	MoveDown MoveDirection = 1
)

// NormalizeLayers revalidates every field of every layer and enforces the
// structural invariant that a stack always contains at least one floor and
// one roof layer. A stack missing a kind gets a default layer of that kind
// appended; a generator cannot mesh a building without a roof or without
// walls. Idempotent.
func NormalizeLayers(layers []Layer, limits config.Limits) []Layer {
	out := make([]Layer, 0, len(layers)+2)
	for _, l := range layers {
		out = append(out, normalizeLayer(l, limits))
	}

	floors, roofs := countKinds(out)
	if floors == 0 {
		out = append(out, normalizeLayer(NewFloorLayer(FloorOverrides{}), limits))
	}
	if roofs == 0 {
		out = append(out, normalizeLayer(NewRoofLayer(RoofOverrides{}), limits))
	}
	return out
}

func normalizeLayer(l Layer, limits config.Limits) Layer {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	switch l.Kind {
	case LayerRoof:
		return normalizeRoofLayer(l, limits)
	default:
		l.Kind = LayerFloor
		return normalizeFloorLayer(l, limits)
	}
}

func normalizeFloorLayer(l Layer, limits config.Limits) Layer {
	l.Floors = numutil.ClampInt(float64(l.Floors), 1, limits.FloorMax)
	l.FloorHeight = numutil.Clamp(l.FloorHeight, limits.FloorHeightMin, limits.FloorHeightMax)
	l.PlanOffset = numutil.Clamp(l.PlanOffset, -limits.PlanOffsetMax, limits.PlanOffsetMax)
	if l.Style == "" {
		l.Style = DefaultStyle
	}
	if l.Material.ID == "" {
		l.Material = MaterialRef{Kind: MaterialTexture, ID: DefaultWallMat}
	}
	l.Tiling = normalizeTiling(l.Tiling)
	l.MaterialVariation = matvar.Normalize(l.MaterialVariation, matvar.RootWall)
	l.Belt = normalizeBelt(l.Belt)
	l.Windows = normalizeWindows(l.Windows)

	// Roof fields have no meaning on a floor layer.
	l.Roof = RoofConfig{}
	l.Ring = RingConfig{}
	return l
}

func normalizeRoofLayer(l Layer, limits config.Limits) Layer {
	switch l.Roof.Type {
	case RoofAsphalt, RoofMetal, RoofTile:
	default:
		l.Roof.Type = RoofAsphalt
	}
	if l.Roof.Color == "" {
		l.Roof.Color = DefaultRoofColor
	}
	if l.Roof.Material.ID == "" {
		l.Roof.Material = MaterialRef{Kind: MaterialTexture, ID: DefaultRoofMat}
	}
	l.Roof.Tiling = normalizeTiling(l.Roof.Tiling)
	l.Roof.MaterialVariation = matvar.Normalize(l.Roof.MaterialVariation, matvar.RootSurface)

	l.Ring.OuterRadius = numutil.Clamp(l.Ring.OuterRadius, 0, RingRadiusMax)
	l.Ring.InnerRadius = numutil.Clamp(l.Ring.InnerRadius, 0, RingRadiusMax)
	l.Ring.Height = numutil.Clamp(l.Ring.Height, 0, RingHeightMax)
	if l.Ring.Material.ID == "" {
		l.Ring.Material = MaterialRef{Kind: MaterialTexture, ID: DefaultBeltMat}
	}

	// Floor fields have no meaning on a roof layer.
	l.Floors = 0
	l.FloorHeight = 0
	l.PlanOffset = 0
	l.Style = ""
	l.Material = MaterialRef{}
	l.Tiling = TilingConfig{}
	l.MaterialVariation = matvar.Config{}
	l.Belt = BeltConfig{}
	l.Windows = WindowsConfig{}
	return l
}

func normalizeTiling(t TilingConfig) TilingConfig {
	if t.TileMeters == 0 {
		return t
	}
	t.TileMeters = numutil.Clamp(t.TileMeters, TileMetersMin, TileMetersMax)
	return t
}

func normalizeBelt(b BeltConfig) BeltConfig {
	b.Height = numutil.Clamp(b.Height, BeltHeightMin, BeltHeightMax)
	b.Extrusion = numutil.Clamp(b.Extrusion, 0, BeltExtrusionMax)
	if b.Material.ID == "" {
		b.Material = MaterialRef{Kind: MaterialTexture, ID: DefaultBeltMat}
	}
	return b
}

func normalizeWindows(w WindowsConfig) WindowsConfig {
	if w.Type == "" {
		w.Type = DefaultWindowType
	}
	w.FrameWidth = numutil.Clamp(w.FrameWidth, FrameWidthMin, FrameWidthMax)
	w.FrameColor = clampRGB(w.FrameColor)
	w.GlassTop = clampRGB(w.GlassTop)
	w.GlassBottom = clampRGB(w.GlassBottom)
	w.Width = numutil.Clamp(w.Width, WindowWidthMin, WindowWidthMax)
	w.Height = numutil.Clamp(w.Height, WindowHeightMin, WindowHeightMax)
	w.SillHeight = numutil.Clamp(w.SillHeight, 0, SillHeightMax)
	w.Spacing = numutil.Clamp(w.Spacing, 0, WindowSpacingMax)
	w.FakeDepth.Strength = numutil.Clamp(w.FakeDepth.Strength, 0, FakeDepthStrengthMax)
	w.FakeDepth.InsetStrength = numutil.Clamp(w.FakeDepth.InsetStrength, 0, 1)
	w.SpaceColumns.Every = numutil.ClampInt(float64(w.SpaceColumns.Every), 1, SpaceColumnEveryMax)
	w.SpaceColumns.Width = numutil.Clamp(w.SpaceColumns.Width, SpaceColumnWidthMin, SpaceColumnWidthMax)
	if w.SpaceColumns.Material.ID == "" {
		w.SpaceColumns.Material = MaterialRef{Kind: MaterialTexture, ID: DefaultWallMat}
	}
	w.SpaceColumns.ExtrudeDistance = numutil.Clamp(w.SpaceColumns.ExtrudeDistance, 0, 1)
	return w
}

// clampRGB clamps a packed 0xRRGGBB color.
func clampRGB(c int) int {
	if c < 0 {
		return 0
	}
	if c > 0xffffff {
		return 0xffffff
	}
	return c
}

// CloneLayers returns a deep value copy of a layer stack. Every struct in a
// Layer is value-typed (no slices, maps, or pointers), so copying the slice
// elements is a full deep copy. Callers on either side of the
// template/building boundary always get their own stack and can never alias
// the other scope's data.
func CloneLayers(layers []Layer) []Layer {
	if layers == nil {
		return nil
	}
	out := make([]Layer, len(layers))
	copy(out, layers)
	return out
}

// AddLayer appends a new layer of the requested kind, seeded from the last
// existing layer of that kind so progressive additions stay visually
// consistent. The seed keeps everything except identity. Returns the input
// unchanged when the stack is already at the layer cap.
func AddLayer(layers []Layer, kind LayerKind, limits config.Limits) []Layer {
	if len(layers) >= limits.LayerMax {
		return layers
	}
	var newLayer Layer
	if last, ok := lastOfKind(layers, kind); ok {
		newLayer = last
		newLayer.ID = uuid.NewString()
	} else if kind == LayerRoof {
		newLayer = NewRoofLayer(RoofOverrides{})
	} else {
		newLayer = NewFloorLayer(FloorOverrides{})
	}
	return NormalizeLayers(append(CloneLayers(layers), newLayer), limits)
}

func lastOfKind(layers []Layer, kind LayerKind) (Layer, bool) {
	for i := len(layers) - 1; i >= 0; i-- {
		if layers[i].Kind == kind {
			return layers[i], true
		}
	}
	return Layer{}, false
}

// MoveLayer swaps the layer with its neighbor in the given direction.
// No-op at the stack boundaries or for an unknown id.
func MoveLayer(layers []Layer, id string, dir MoveDirection, limits config.Limits) []Layer {
	idx := indexOf(layers, id)
	if idx < 0 {
		return layers
	}
	j := idx + int(dir)
	if j < 0 || j >= len(layers) {
		return layers
	}
	out := CloneLayers(layers)
	out[idx], out[j] = out[j], out[idx]
	return NormalizeLayers(out, limits)
}

// RemoveLayer filters out the layer with the given id. Removing the last
// floor layer or the last roof layer is rejected and the input is returned
// unchanged with ok=false: a stack without either kind is meaningless to the
// generator, and this guard is what keeps every reachable state valid.
func RemoveLayer(layers []Layer, id string, limits config.Limits) (out []Layer, ok bool) {
	idx := indexOf(layers, id)
	if idx < 0 {
		return layers, false
	}
	floors, roofs := countKinds(layers)
	if layers[idx].Kind == LayerFloor && floors <= 1 {
		return layers, false
	}
	if layers[idx].Kind == LayerRoof && roofs <= 1 {
		return layers, false
	}
	trimmed := make([]Layer, 0, len(layers)-1)
	trimmed = append(trimmed, layers[:idx]...)
	trimmed = append(trimmed, layers[idx+1:]...)
	return NormalizeLayers(trimmed, limits), true
}

func indexOf(layers []Layer, id string) int {
	for i := range layers {
		if layers[i].ID == id {
			return i
		}
	}
	return -1
}

func countKinds(layers []Layer) (floors, roofs int) {
	for _, l := range layers {
		switch l.Kind {
		case LayerFloor:
			floors++
		case LayerRoof:
			roofs++
		}
	}
	return floors, roofs
}
