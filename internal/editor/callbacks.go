package editor

import "fab-hud/internal/building"

// WindowCallbacks is the per-field change surface of one window group.
// Main-floor and street-floor windows carry identical groups.
type WindowCallbacks struct {
	OnEnabledChange           func(bool)
	OnTypeChange              func(building.WindowType)
	OnFrameWidthChange        func(float64)
	OnFrameColorChange        func(int)
	OnGlassTopChange          func(int)
	OnGlassBottomChange       func(int)
	OnWidthChange             func(float64)
	OnHeightChange            func(float64)
	OnSillHeightChange        func(float64)
	OnSpacingChange           func(float64)
	OnFakeDepthEnabledChange  func(bool)
	OnFakeDepthStrengthChange func(float64)
	OnFakeDepthInsetChange    func(float64)
	OnSpaceColumnsChange      func(building.SpaceColumnsConfig)
}

// BeltCallbacks is the per-field change surface of one belt group.
type BeltCallbacks struct {
	OnEnabledChange   func(bool)
	OnHeightChange    func(float64)
	OnExtrusionChange func(float64)
	OnColorChange     func(string)
}

// Callbacks is everything the session emits to its host. Each scalar
// callback fires with the already-clamped value, only on an actual change
// (strict inequality), and only while a building is selected — template
// edits stay local until a building is created from the template.
// Nil callbacks are skipped.
type Callbacks struct {
	OnSelectedBuildingLayersChange                func([]building.Layer)
	OnSelectedBuildingMaterialVariationSeedChange func(*uint32)

	OnTypeChange        func(string)
	OnStyleChange       func(string)
	OnFloorsChange      func(int)
	OnFloorHeightChange func(float64)
	OnWallInsetChange   func(float64)
	OnRoofTypeChange    func(building.RoofType)
	OnRoofColorChange   func(string)

	OnStreetFloorsChange      func(int)
	OnStreetFloorHeightChange func(float64)
	OnStreetStyleChange       func(string)

	BeltCourse BeltCallbacks
	TopBelt    BeltCallbacks

	Windows       WindowCallbacks
	StreetWindows WindowCallbacks
}
