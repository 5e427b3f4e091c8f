// Package editor owns the editing session: the unsaved template used before
// any building exists, the currently selected building, and the one code
// path through which either of them is read or written. Widgets never branch
// on "template or building" — they call the accessors here and the session
// routes the write and the change notifications.
package editor

import (
	"fab-hud/internal/building"
	"fab-hud/internal/catalog"
	"fab-hud/internal/config"
	"fab-hud/internal/matvar"
)

// Session is the single owner of the active BuildingConfig. All mutation
// handlers run on the UI thread; there is no locking because there is no
// concurrent access.
type Session struct {
	limits config.Limits
	cats   *catalog.Set
	cb     Callbacks

	template building.BuildingConfig
	selected *building.BuildingConfig

	buildings  []BuildingSummary
	selectedID string
	roads      []Road

	// detailsOpen remembers which collapsible panel sections are expanded,
	// keyed by scope key, so re-rendering the layer list restores them.
	detailsOpen map[string]bool
}

// BuildingSummary is a row in the read-only buildings list.
type BuildingSummary struct {
	ID     string
	Label  string
	Floors int
}

// Road is a row in the read-only roads list.
type Road struct {
	ID     string
	Label  string
	Length float64
}

// New creates a session editing a fresh template. cats must not be nil.
func New(limits config.Limits, cats *catalog.Set, cb Callbacks) *Session {
	return &Session{
		limits:      limits,
		cats:        cats,
		cb:          cb,
		template:    building.NewTemplate(limits),
		detailsOpen: make(map[string]bool),
	}
}

// active returns the storage scope mutations land in: the selected building
// when there is one, the template otherwise. Never both.
func (s *Session) active() *building.BuildingConfig {
	if s.selected != nil {
		return s.selected
	}
	return &s.template
}

// HasSelection reports whether a building is selected.
func (s *Session) HasSelection() bool { return s.selected != nil }

// SelectedID returns the id the buildings list should highlight: the id of
// the decoded selection, or the one the host passed to SetBuildings, or "".
func (s *Session) SelectedID() string { return s.selectedID }

// Limits returns the session's model bounds.
func (s *Session) Limits() config.Limits { return s.limits }

// Catalogs returns the option catalogs the pickers read.
func (s *Session) Catalogs() *catalog.Set { return s.cats }

// ActiveConfig returns a clone of the active configuration for display.
func (s *Session) ActiveConfig() building.BuildingConfig {
	return s.active().Clone()
}

// SetSelectedBuilding decodes a host building record and makes it the
// active scope. The template is left untouched. Returns the decoder's
// defaulted-field report.
func (s *Session) SetSelectedBuilding(raw map[string]any) []building.Defaulted {
	if raw == nil {
		s.ClearSelection()
		return nil
	}
	cfg, report := building.DecodeBuilding(raw, s.limits, s.cats)
	s.selected = &cfg
	s.selectedID = cfg.ID
	return report
}

// ClearSelection returns the session to template editing.
func (s *Session) ClearSelection() {
	s.selected = nil
	s.selectedID = ""
}

// ActiveLayers returns a clone of the active scope's layer stack. The clone
// keeps callers from aliasing template layers into a building or vice versa.
func (s *Session) ActiveLayers() []building.Layer {
	return building.CloneLayers(s.active().Layers)
}

// SetActiveLayers normalizes and stores a layer stack into the active scope
// and notifies the host if a building is selected.
func (s *Session) SetActiveLayers(layers []building.Layer) {
	s.active().Layers = building.NormalizeLayers(building.CloneLayers(layers), s.limits)
	s.notifySelectedLayersChanged()
}

// ActiveMaterialVariationSeed returns the active scope's seed override, or
// nil when the generator should derive its own seed.
func (s *Session) ActiveMaterialVariationSeed() *uint32 {
	seed := s.active().MaterialVariationSeed
	if seed == nil {
		return nil
	}
	v := *seed
	return &v
}

// SetActiveMaterialVariationSeed stores a seed override (nil clears it) and
// notifies the host if a building is selected. Values are already uint32 so
// the [0, 4294967295] clamp is the type itself.
func (s *Session) SetActiveMaterialVariationSeed(seed *uint32) {
	cfg := s.active()
	if seed == nil {
		if cfg.MaterialVariationSeed == nil {
			return
		}
		cfg.MaterialVariationSeed = nil
	} else {
		if cfg.MaterialVariationSeed != nil && *cfg.MaterialVariationSeed == *seed {
			return
		}
		v := *seed
		cfg.MaterialVariationSeed = &v
	}
	if s.selected != nil && s.cb.OnSelectedBuildingMaterialVariationSeedChange != nil {
		s.cb.OnSelectedBuildingMaterialVariationSeedChange(s.ActiveMaterialVariationSeed())
	}
}

// notifySelectedLayersChanged emits the layers change event. Template edits
// are deliberately silent: nothing downstream exists until a building is
// created from the template, and firing during template setup would spam
// the host with meaningless events.
func (s *Session) notifySelectedLayersChanged() {
	if s.selected == nil || s.cb.OnSelectedBuildingLayersChange == nil {
		return
	}
	s.cb.OnSelectedBuildingLayersChange(building.CloneLayers(s.selected.Layers))
}

// AddLayer appends a layer of the given kind to the active stack, seeded
// from the last layer of that kind.
func (s *Session) AddLayer(kind building.LayerKind) {
	s.SetActiveLayers(building.AddLayer(s.active().Layers, kind, s.limits))
}

// MoveLayer swaps a layer with its neighbor.
func (s *Session) MoveLayer(id string, dir building.MoveDirection) {
	s.SetActiveLayers(building.MoveLayer(s.active().Layers, id, dir, s.limits))
}

// RemoveLayer removes a layer unless it is the last of its kind. Returns
// whether the stack changed; a rejected removal emits nothing.
func (s *Session) RemoveLayer(id string) bool {
	out, ok := building.RemoveLayer(s.active().Layers, id, s.limits)
	if !ok {
		return false
	}
	s.SetActiveLayers(out)
	return true
}

// UpdateLayer applies mutate to the layer with the given id, then
// re-normalizes and notifies. This is the write path for every per-layer
// widget (belt, windows, ring, roof, variation numerics); mutate receives a
// copy and range violations are cleaned up by normalization afterwards.
func (s *Session) UpdateLayer(id string, mutate func(*building.Layer)) {
	layers := s.ActiveLayers()
	for i := range layers {
		if layers[i].ID == id {
			mutate(&layers[i])
			s.SetActiveLayers(layers)
			return
		}
	}
}

// layerVariation returns the variation config slot for a layer.
func layerVariation(l *building.Layer) *matvar.Config {
	if l.Kind == building.LayerRoof {
		return &l.Roof.MaterialVariation
	}
	return &l.MaterialVariation
}

// SetLayerVariationEnabled toggles a layer's material variation. Enabling a
// config the user never customized swaps in the full preset for the layer's
// root (wall vs surface), preserving the seed offset and normal-map flips;
// enabling a customized config just flips the bit.
func (s *Session) SetLayerVariationEnabled(id string, enabled bool) {
	s.UpdateLayer(id, func(l *building.Layer) {
		slot := layerVariation(l)
		if enabled && matvar.IsMinimal(*slot, l.VariationRoot()) {
			preset := matvar.DefaultPreset(l.VariationRoot())
			preset.SeedOffset = slot.SeedOffset
			preset.NormalMap = slot.NormalMap
			*slot = preset
		}
		slot.Enabled = enabled
	})
}

// ResetLayerVariation returns a layer's variation to the disabled-preset
// state, keeping the enable flag and seed offset.
func (s *Session) ResetLayerVariation(id string) {
	s.UpdateLayer(id, func(l *building.Layer) {
		slot := layerVariation(l)
		enabled := slot.Enabled
		*slot = matvar.NewDisabled(l.VariationRoot(), slot.SeedOffset, slot.NormalMap)
		slot.Enabled = enabled
	})
}

// UpdateLayerVariation applies mutate to a layer's variation config and
// re-normalizes. The material-variation form's ~15 strategy sections all
// write through here.
func (s *Session) UpdateLayerVariation(id string, mutate func(*matvar.Config)) {
	s.UpdateLayer(id, func(l *building.Layer) {
		mutate(layerVariation(l))
	})
}

// SetBuildings replaces the read-only buildings list.
func (s *Session) SetBuildings(list []BuildingSummary, selectedID string) {
	s.buildings = append([]BuildingSummary(nil), list...)
	s.selectedID = selectedID
}

// Buildings returns the buildings list rows.
func (s *Session) Buildings() []BuildingSummary {
	return append([]BuildingSummary(nil), s.buildings...)
}

// SetRoads replaces the read-only roads list.
func (s *Session) SetRoads(list []Road) {
	s.roads = append([]Road(nil), list...)
}

// Roads returns the roads list rows.
func (s *Session) Roads() []Road {
	return append([]Road(nil), s.roads...)
}

// ScopeKey builds the persistence key for a collapsible layer section:
// "template:layer:<id>:<feature>" or "building:<bid>:layer:<id>:<feature>".
func (s *Session) ScopeKey(layerID, feature string) string {
	scope := "template"
	if s.selected != nil {
		scope = "building:" + s.selected.ID
	}
	return scope + ":layer:" + layerID + ":" + feature
}

// DetailsOpen reports whether a collapsible section is expanded.
func (s *Session) DetailsOpen(key string) bool { return s.detailsOpen[key] }

// SetDetailsOpen records a section's expanded state.
func (s *Session) SetDetailsOpen(key string, open bool) {
	if open {
		s.detailsOpen[key] = true
	} else {
		delete(s.detailsOpen, key)
	}
}
