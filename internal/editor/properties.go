package editor

import (
	"fab-hud/internal/building"
	"fab-hud/internal/numutil"
)

// Scalar property setters. Each one clamps, writes to the active scope only
// on an actual change, and fires its callback only while a building is
// selected. Widgets call these for every keystroke and drag tick, so the
// strict-inequality guard is what keeps hosts from drowning in no-op events.

// emit reports whether callbacks should fire for the current write.
func (s *Session) emit() bool { return s.selected != nil }

func emitBool(ok bool, cb func(bool), v bool) {
	if ok && cb != nil {
		cb(v)
	}
}

func emitInt(ok bool, cb func(int), v int) {
	if ok && cb != nil {
		cb(v)
	}
}

func emitFloat(ok bool, cb func(float64), v float64) {
	if ok && cb != nil {
		cb(v)
	}
}

func emitString(ok bool, cb func(string), v string) {
	if ok && cb != nil {
		cb(v)
	}
}

// SetType sets the building type id.
func (s *Session) SetType(v string) {
	if v == "" {
		v = "generic"
	}
	cfg := s.active()
	if cfg.Type == v {
		return
	}
	cfg.Type = v
	emitString(s.emit(), s.cb.OnTypeChange, v)
}

// SetStyle sets the building style, resolving unknown catalog ids.
func (s *Session) SetStyle(v string) {
	v = s.cats.ResolveStyle(v)
	cfg := s.active()
	if cfg.Style == v {
		return
	}
	cfg.Style = v
	emitString(s.emit(), s.cb.OnStyleChange, v)
}

// SetFloors sets the total floor count. Street floors are re-clamped
// against the new total.
func (s *Session) SetFloors(v float64) {
	cfg := s.active()
	n := numutil.ClampInt(v, 1, s.limits.FloorMax)
	if cfg.Floors == n {
		return
	}
	cfg.Floors = n
	emitInt(s.emit(), s.cb.OnFloorsChange, n)
	if street := numutil.ClampInt(float64(cfg.Street.Floors), 0, n); street != cfg.Street.Floors {
		cfg.Street.Floors = street
		emitInt(s.emit(), s.cb.OnStreetFloorsChange, street)
	}
}

// SetFloorHeight sets the default floor height in meters.
func (s *Session) SetFloorHeight(v float64) {
	cfg := s.active()
	h := numutil.Clamp(v, s.limits.FloorHeightMin, s.limits.FloorHeightMax)
	if cfg.FloorHeight == h {
		return
	}
	cfg.FloorHeight = h
	emitFloat(s.emit(), s.cb.OnFloorHeightChange, h)
}

// SetWallInset sets the upper-wall inset in meters.
func (s *Session) SetWallInset(v float64) {
	cfg := s.active()
	w := numutil.Clamp(v, 0, building.WallInsetMax)
	if cfg.WallInset == w {
		return
	}
	cfg.WallInset = w
	emitFloat(s.emit(), s.cb.OnWallInsetChange, w)
}

// SetRoofType sets the roof construction.
func (s *Session) SetRoofType(v building.RoofType) {
	switch v {
	case building.RoofAsphalt, building.RoofMetal, building.RoofTile:
	default:
		v = building.RoofAsphalt
	}
	cfg := s.active()
	if cfg.RoofType == v {
		return
	}
	cfg.RoofType = v
	if s.emit() && s.cb.OnRoofTypeChange != nil {
		s.cb.OnRoofTypeChange(v)
	}
}

// SetRoofColor sets the roof color catalog id.
func (s *Session) SetRoofColor(v string) {
	v = s.cats.ResolveRoofColor(v)
	cfg := s.active()
	if cfg.RoofColor == v {
		return
	}
	cfg.RoofColor = v
	emitString(s.emit(), s.cb.OnRoofColorChange, v)
}

// SetStreetFloors sets how many bottom floors get the street treatment.
func (s *Session) SetStreetFloors(v float64) {
	cfg := s.active()
	n := numutil.ClampInt(v, 0, cfg.Floors)
	if cfg.Street.Floors == n {
		return
	}
	cfg.Street.Floors = n
	emitInt(s.emit(), s.cb.OnStreetFloorsChange, n)
}

// SetStreetFloorHeight sets the street-floor height in meters.
func (s *Session) SetStreetFloorHeight(v float64) {
	cfg := s.active()
	h := numutil.Clamp(v, s.limits.FloorHeightMin, s.limits.FloorHeightMax)
	if cfg.Street.FloorHeight == h {
		return
	}
	cfg.Street.FloorHeight = h
	emitFloat(s.emit(), s.cb.OnStreetFloorHeightChange, h)
}

// SetStreetStyle sets the street-floor style id.
func (s *Session) SetStreetStyle(v string) {
	v = s.cats.ResolveStyle(v)
	cfg := s.active()
	if cfg.Street.Style == v {
		return
	}
	cfg.Street.Style = v
	emitString(s.emit(), s.cb.OnStreetStyleChange, v)
}

// BeltScope selects which belt group a setter addresses.
type BeltScope uint8

const (
	BeltCourseScope BeltScope = iota
	TopBeltScope
)

func (s *Session) beltSlot(scope BeltScope) (*building.BeltConfig, *BeltCallbacks) {
	cfg := s.active()
	if scope == TopBeltScope {
		return &cfg.TopBelt, &s.cb.TopBelt
	}
	return &cfg.BeltCourse, &s.cb.BeltCourse
}

// SetBeltEnabled toggles a belt band.
func (s *Session) SetBeltEnabled(scope BeltScope, v bool) {
	belt, cb := s.beltSlot(scope)
	if belt.Enabled == v {
		return
	}
	belt.Enabled = v
	emitBool(s.emit(), cb.OnEnabledChange, v)
}

// SetBeltHeight sets a belt band's height in meters.
func (s *Session) SetBeltHeight(scope BeltScope, v float64) {
	belt, cb := s.beltSlot(scope)
	h := numutil.Clamp(v, building.BeltHeightMin, building.BeltHeightMax)
	if belt.Height == h {
		return
	}
	belt.Height = h
	emitFloat(s.emit(), cb.OnHeightChange, h)
}

// SetBeltExtrusion sets how far a belt band protrudes from the facade.
func (s *Session) SetBeltExtrusion(scope BeltScope, v float64) {
	belt, cb := s.beltSlot(scope)
	e := numutil.Clamp(v, 0, building.BeltExtrusionMax)
	if belt.Extrusion == e {
		return
	}
	belt.Extrusion = e
	emitFloat(s.emit(), cb.OnExtrusionChange, e)
}

// SetBeltColor sets a belt band's color catalog id.
func (s *Session) SetBeltColor(scope BeltScope, id string) {
	id = s.cats.ResolveBeltColor(id)
	belt, cb := s.beltSlot(scope)
	ref := building.MaterialRef{Kind: building.MaterialColor, ID: id}
	if belt.Material == ref {
		return
	}
	belt.Material = ref
	emitString(s.emit(), cb.OnColorChange, id)
}

// WindowScope selects which window group a setter addresses.
type WindowScope uint8

const (
	MainWindows WindowScope = iota
	StreetWindows
)

func (s *Session) windowSlot(scope WindowScope) (*building.WindowsConfig, *WindowCallbacks) {
	cfg := s.active()
	if scope == StreetWindows {
		return &cfg.Street.Windows, &s.cb.StreetWindows
	}
	return &cfg.Windows, &s.cb.Windows
}

// SetWindowEnabled toggles a window group.
func (s *Session) SetWindowEnabled(scope WindowScope, v bool) {
	w, cb := s.windowSlot(scope)
	if w.Enabled == v {
		return
	}
	w.Enabled = v
	emitBool(s.emit(), cb.OnEnabledChange, v)
}

// SetWindowType sets a window group's type, resolving unknown catalog ids.
func (s *Session) SetWindowType(scope WindowScope, id string) {
	w, cb := s.windowSlot(scope)
	t := building.WindowType(s.cats.ResolveWindowType(id))
	if w.Type == t {
		return
	}
	w.Type = t
	if s.emit() && cb.OnTypeChange != nil {
		cb.OnTypeChange(t)
	}
}

// SetWindowFrameWidth sets the frame width (parametric types only).
func (s *Session) SetWindowFrameWidth(scope WindowScope, v float64) {
	w, cb := s.windowSlot(scope)
	f := numutil.Clamp(v, building.FrameWidthMin, building.FrameWidthMax)
	if w.FrameWidth == f {
		return
	}
	w.FrameWidth = f
	emitFloat(s.emit(), cb.OnFrameWidthChange, f)
}

// SetWindowFrameColor sets the packed-RGB frame color.
func (s *Session) SetWindowFrameColor(scope WindowScope, rgb int) {
	w, cb := s.windowSlot(scope)
	c := clampPackedRGB(rgb)
	if w.FrameColor == c {
		return
	}
	w.FrameColor = c
	emitInt(s.emit(), cb.OnFrameColorChange, c)
}

// SetWindowGlassTop sets the packed-RGB upper glass tint.
func (s *Session) SetWindowGlassTop(scope WindowScope, rgb int) {
	w, cb := s.windowSlot(scope)
	c := clampPackedRGB(rgb)
	if w.GlassTop == c {
		return
	}
	w.GlassTop = c
	emitInt(s.emit(), cb.OnGlassTopChange, c)
}

// SetWindowGlassBottom sets the packed-RGB lower glass tint.
func (s *Session) SetWindowGlassBottom(scope WindowScope, rgb int) {
	w, cb := s.windowSlot(scope)
	c := clampPackedRGB(rgb)
	if w.GlassBottom == c {
		return
	}
	w.GlassBottom = c
	emitInt(s.emit(), cb.OnGlassBottomChange, c)
}

// SetWindowWidth sets window width in meters.
func (s *Session) SetWindowWidth(scope WindowScope, v float64) {
	w, cb := s.windowSlot(scope)
	f := numutil.Clamp(v, building.WindowWidthMin, building.WindowWidthMax)
	if w.Width == f {
		return
	}
	w.Width = f
	emitFloat(s.emit(), cb.OnWidthChange, f)
}

// SetWindowHeight sets window height in meters.
func (s *Session) SetWindowHeight(scope WindowScope, v float64) {
	w, cb := s.windowSlot(scope)
	f := numutil.Clamp(v, building.WindowHeightMin, building.WindowHeightMax)
	if w.Height == f {
		return
	}
	w.Height = f
	emitFloat(s.emit(), cb.OnHeightChange, f)
}

// SetWindowSillHeight sets the sill height in meters.
func (s *Session) SetWindowSillHeight(scope WindowScope, v float64) {
	w, cb := s.windowSlot(scope)
	f := numutil.Clamp(v, 0, building.SillHeightMax)
	if w.SillHeight == f {
		return
	}
	w.SillHeight = f
	emitFloat(s.emit(), cb.OnSillHeightChange, f)
}

// SetWindowSpacing sets the horizontal gap between windows in meters.
func (s *Session) SetWindowSpacing(scope WindowScope, v float64) {
	w, cb := s.windowSlot(scope)
	f := numutil.Clamp(v, 0, building.WindowSpacingMax)
	if w.Spacing == f {
		return
	}
	w.Spacing = f
	emitFloat(s.emit(), cb.OnSpacingChange, f)
}

// SetWindowFakeDepthEnabled toggles shader-faked window recession.
func (s *Session) SetWindowFakeDepthEnabled(scope WindowScope, v bool) {
	w, cb := s.windowSlot(scope)
	if w.FakeDepth.Enabled == v {
		return
	}
	w.FakeDepth.Enabled = v
	emitBool(s.emit(), cb.OnFakeDepthEnabledChange, v)
}

// SetWindowFakeDepthStrength sets the fake-depth strength.
func (s *Session) SetWindowFakeDepthStrength(scope WindowScope, v float64) {
	w, cb := s.windowSlot(scope)
	f := numutil.Clamp(v, 0, building.FakeDepthStrengthMax)
	if w.FakeDepth.Strength == f {
		return
	}
	w.FakeDepth.Strength = f
	emitFloat(s.emit(), cb.OnFakeDepthStrengthChange, f)
}

// SetWindowFakeDepthInset sets the fake-depth inset strength.
func (s *Session) SetWindowFakeDepthInset(scope WindowScope, v float64) {
	w, cb := s.windowSlot(scope)
	f := numutil.Clamp(v, 0, 1)
	if w.FakeDepth.InsetStrength == f {
		return
	}
	w.FakeDepth.InsetStrength = f
	emitFloat(s.emit(), cb.OnFakeDepthInsetChange, f)
}

// UpdateWindowSpaceColumns applies a mutation to the space-column spacer
// config of one window group, then clamps it. The whole group is emitted as
// one change because its fields are edited together.
func (s *Session) UpdateWindowSpaceColumns(scope WindowScope, mutate func(*building.SpaceColumnsConfig)) {
	w, cb := s.windowSlot(scope)
	before := w.SpaceColumns
	mutate(&w.SpaceColumns)
	w.SpaceColumns.Every = numutil.ClampInt(float64(w.SpaceColumns.Every), 1, building.SpaceColumnEveryMax)
	w.SpaceColumns.Width = numutil.Clamp(w.SpaceColumns.Width, building.SpaceColumnWidthMin, building.SpaceColumnWidthMax)
	w.SpaceColumns.ExtrudeDistance = numutil.Clamp(w.SpaceColumns.ExtrudeDistance, 0, 1)
	if w.SpaceColumns == before {
		return
	}
	if s.emit() && cb.OnSpaceColumnsChange != nil {
		cb.OnSpaceColumnsChange(w.SpaceColumns)
	}
}

func clampPackedRGB(c int) int {
	if c < 0 {
		return 0
	}
	if c > 0xffffff {
		return 0xffffff
	}
	return c
}
