package hud

import (
	"strconv"
	"strings"

	"fab-hud/internal/building"
	"fab-hud/internal/catalog"
	"fab-hud/internal/editor"
	"fab-hud/internal/numutil"
	"fab-hud/internal/panel"
	"fab-hud/internal/ui/widget"

	"github.com/go-gl/mathgl/mgl32"
)

// numRow pairs the text field and slider that edit one numeric property.
type numRow struct {
	field  *widget.NumberField
	slider *widget.Slider
}

type beltWidgets struct {
	toggle            *widget.Toggle
	height, extrusion numRow
	color             *widget.Picker
}

// windowWidgets is one set of window-property widgets. The same set serves
// both window groups; a tab selects which editor scope the callbacks hit.
type windowWidgets struct {
	toggle     *widget.Toggle
	typePicker *widget.Picker

	width, height, sill, spacing numRow
	frameWidth                   numRow
	frameColor                   *widget.NumberField
	glassTop                     *widget.NumberField
	glassBottom                  *widget.NumberField

	fakeToggle               *widget.Toggle
	fakeStrength, fakeInset  numRow
	spacerToggle             *widget.Toggle
	spacerEvery, spacerWidth numRow
	spacerMaterial           *widget.Picker
	spacerExtrude            numRow
}

type formLabel struct {
	text  string
	x, y  float32
	title bool
}

type propertyForm struct {
	components []widget.Component
	fields     []*widget.NumberField
	pickers    []*widget.Picker
	labels     []formLabel

	style                          *widget.Picker
	floors, floorHeight, wallInset numRow
	roofType, roofColor            *widget.Picker
	seed                           *widget.NumberField

	streetFloors, streetFloorHeight numRow
	streetStyle                     *widget.Picker

	beltCourse, topBelt beltWidgets

	windows            windowWidgets
	tabMain, tabStreet *widget.Button

	bottomY float32
}

const rowStride = rowH + rowGap
const valueX = 148 // offset of the field within a column

func hexFilter(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') || r == '#'
}

// parseHexRGB parses "#rrggbb" (or "rrggbb") into a packed RGB int.
func parseHexRGB(text string) (int, bool) {
	text = strings.TrimPrefix(strings.TrimSpace(text), "#")
	if len(text) != 6 {
		return 0, false
	}
	v, err := strconv.ParseInt(text, 16, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

func pickerOptions(opts []catalog.Option) []widget.PickerOption {
	out := make([]widget.PickerOption, len(opts))
	for i, o := range opts {
		out[i] = widget.PickerOption{ID: o.ID, Label: o.Label}
	}
	return out
}

func (f *propertyForm) addLabel(text string, x, y float32, title bool) {
	f.labels = append(f.labels, formLabel{text: text, x: x, y: y, title: title})
}

func (f *propertyForm) track(c widget.Component) {
	f.components = append(f.components, c)
	switch w := c.(type) {
	case *widget.NumberField:
		f.fields = append(f.fields, w)
	case *widget.Picker:
		f.pickers = append(f.pickers, w)
	}
}

// newNumRow creates a labeled field+slider row editing a [min,max] value.
func (p *Panel) newNumRow(f *propertyForm, label string, x, y float32, min, max float64, steps int, set func(float64)) numRow {
	f.addLabel(label, x, y, false)
	field := widget.NewNumberField(x+valueX, y, fieldW, rowH-2, func(text string) {
		set(numutil.ParseClamp(text, min, max))
	})
	slider := widget.NewSlider(x+valueX+fieldW+8, y+6, sliderW, rowH-12, 0, steps, label+"#"+strconv.Itoa(int(y)), func(v float32) {
		set(min + float64(v)*(max-min))
	})
	f.track(field)
	f.track(slider)
	return numRow{field: field, slider: slider}
}

func (p *Panel) newPickerRow(f *propertyForm, label string, x, y float32, opts []widget.PickerOption, onSelect func(id string)) *widget.Picker {
	f.addLabel(label, x, y, false)
	pk := widget.NewPicker(x+valueX, y, fieldW+sliderW+8, rowH-2, opts, "", onSelect)
	f.track(pk)
	return pk
}

func (p *Panel) newToggleRow(f *propertyForm, label string, x, y float32, onToggle func(bool)) *widget.Toggle {
	f.addLabel(label, x, y, false)
	t := widget.NewToggle("", x+valueX, y+2, 18, 18, false, onToggle)
	f.track(t)
	return t
}

func (p *Panel) newHexRow(f *propertyForm, label string, x, y float32, set func(rgb int)) *widget.NumberField {
	f.addLabel(label, x, y, false)
	field := widget.NewNumberField(x+valueX, y, fieldW+40, rowH-2, func(text string) {
		if rgb, ok := parseHexRGB(text); ok {
			set(rgb)
		}
	})
	field.Filter = hexFilter
	f.track(field)
	return field
}

func (p *Panel) buildPropertyForm() *propertyForm {
	f := &propertyForm{}
	s := p.session
	lim := s.Limits()
	cats := s.Catalogs()

	x := float32(colLeftX)
	y := float32(16)

	f.addLabel("BUILDING", x, y, true)
	y += rowStride

	f.style = p.newPickerRow(f, "Style", x, y, pickerOptions(cats.Styles), s.SetStyle)
	y += rowStride
	f.floors = p.newNumRow(f, "Floors", x, y, 1, float64(lim.FloorMax), lim.FloorMax, s.SetFloors)
	y += rowStride
	f.floorHeight = p.newNumRow(f, "Floor height", x, y, lim.FloorHeightMin, lim.FloorHeightMax, 0, s.SetFloorHeight)
	y += rowStride
	f.wallInset = p.newNumRow(f, "Wall inset", x, y, 0, building.WallInsetMax, 0, s.SetWallInset)
	y += rowStride
	f.roofType = p.newPickerRow(f, "Roof type", x, y, []widget.PickerOption{
		{ID: string(building.RoofAsphalt), Label: "Asphalt"},
		{ID: string(building.RoofMetal), Label: "Metal"},
		{ID: string(building.RoofTile), Label: "Tile"},
	}, func(id string) { s.SetRoofType(building.RoofType(id)) })
	y += rowStride
	f.roofColor = p.newPickerRow(f, "Roof color", x, y, pickerOptions(cats.RoofColors), s.SetRoofColor)
	y += rowStride

	f.addLabel("Variation seed", x, y, false)
	f.seed = widget.NewNumberField(x+valueX, y, fieldW+40, rowH-2, func(text string) {
		if strings.TrimSpace(text) == "" {
			s.SetActiveMaterialVariationSeed(nil)
			return
		}
		v := uint32(numutil.ParseClamp(text, 0, building.SeedMax))
		s.SetActiveMaterialVariationSeed(&v)
	})
	f.track(f.seed)
	y += rowStride + 8

	f.addLabel("STREET LEVEL", x, y, true)
	y += rowStride
	f.streetFloors = p.newNumRow(f, "Street floors", x, y, 0, float64(lim.FloorMax), lim.FloorMax+1, s.SetStreetFloors)
	y += rowStride
	f.streetFloorHeight = p.newNumRow(f, "Street height", x, y, lim.FloorHeightMin, lim.FloorHeightMax, 0, s.SetStreetFloorHeight)
	y += rowStride
	f.streetStyle = p.newPickerRow(f, "Street style", x, y, pickerOptions(cats.Styles), s.SetStreetStyle)
	y += rowStride + 8

	f.beltCourse, y = p.buildBeltGroup(f, "BELT COURSE", x, y, editor.BeltCourseScope)
	f.topBelt, y = p.buildBeltGroup(f, "TOP BELT", x, y, editor.TopBeltScope)
	f.bottomY = y

	p.buildWindowColumn(f)
	return f
}

func (p *Panel) buildBeltGroup(f *propertyForm, title string, x, y float32, scope editor.BeltScope) (beltWidgets, float32) {
	s := p.session
	var b beltWidgets

	f.addLabel(title, x, y, true)
	y += rowStride
	b.toggle = p.newToggleRow(f, "Enabled", x, y, func(on bool) { s.SetBeltEnabled(scope, on) })
	y += rowStride
	b.height = p.newNumRow(f, "Height", x, y, building.BeltHeightMin, building.BeltHeightMax, 0,
		func(v float64) { s.SetBeltHeight(scope, v) })
	y += rowStride
	b.extrusion = p.newNumRow(f, "Extrusion", x, y, 0, building.BeltExtrusionMax, 0,
		func(v float64) { s.SetBeltExtrusion(scope, v) })
	y += rowStride
	b.color = p.newPickerRow(f, "Color", x, y, pickerOptions(s.Catalogs().BeltColors),
		func(id string) { s.SetBeltColor(scope, id) })
	y += rowStride + 8
	return b, y
}

func (p *Panel) buildWindowColumn(f *propertyForm) {
	s := p.session
	x := float32(colMidX)
	y := float32(16)

	f.addLabel("WINDOWS", x, y, true)
	y += rowStride

	// Both window groups share this widget set; the tabs pick the scope.
	tabW := float32((fieldW + sliderW + valueX) / 2)
	f.tabMain = widget.NewButton("Main floors", x, y, tabW, rowH-2, func() { p.windowTab = editor.MainWindows })
	f.tabStreet = widget.NewButton("Street floors", x+tabW+8, y, tabW, rowH-2, func() { p.windowTab = editor.StreetWindows })
	f.track(f.tabMain)
	f.track(f.tabStreet)
	y += rowStride

	scope := func() editor.WindowScope { return p.windowTab }
	var w windowWidgets

	w.toggle = p.newToggleRow(f, "Enabled", x, y, func(on bool) { s.SetWindowEnabled(scope(), on) })
	y += rowStride
	w.typePicker = p.newPickerRow(f, "Type", x, y, pickerOptions(s.Catalogs().WindowTypes),
		func(id string) { s.SetWindowType(scope(), id) })
	y += rowStride
	w.width = p.newNumRow(f, "Width", x, y, building.WindowWidthMin, building.WindowWidthMax, 0,
		func(v float64) { s.SetWindowWidth(scope(), v) })
	y += rowStride
	w.height = p.newNumRow(f, "Height", x, y, building.WindowHeightMin, building.WindowHeightMax, 0,
		func(v float64) { s.SetWindowHeight(scope(), v) })
	y += rowStride
	w.sill = p.newNumRow(f, "Sill height", x, y, 0, building.SillHeightMax, 0,
		func(v float64) { s.SetWindowSillHeight(scope(), v) })
	y += rowStride
	w.spacing = p.newNumRow(f, "Spacing", x, y, 0, building.WindowSpacingMax, 0,
		func(v float64) { s.SetWindowSpacing(scope(), v) })
	y += rowStride
	w.frameWidth = p.newNumRow(f, "Frame width", x, y, building.FrameWidthMin, building.FrameWidthMax, 0,
		func(v float64) { s.SetWindowFrameWidth(scope(), v) })
	y += rowStride
	w.frameColor = p.newHexRow(f, "Frame color", x, y, func(rgb int) { s.SetWindowFrameColor(scope(), rgb) })
	y += rowStride
	w.glassTop = p.newHexRow(f, "Glass top", x, y, func(rgb int) { s.SetWindowGlassTop(scope(), rgb) })
	y += rowStride
	w.glassBottom = p.newHexRow(f, "Glass bottom", x, y, func(rgb int) { s.SetWindowGlassBottom(scope(), rgb) })
	y += rowStride + 8

	f.addLabel("FAKE DEPTH", x, y, true)
	y += rowStride
	w.fakeToggle = p.newToggleRow(f, "Enabled", x, y, func(on bool) { s.SetWindowFakeDepthEnabled(scope(), on) })
	y += rowStride
	w.fakeStrength = p.newNumRow(f, "Strength", x, y, 0, building.FakeDepthStrengthMax, 0,
		func(v float64) { s.SetWindowFakeDepthStrength(scope(), v) })
	y += rowStride
	w.fakeInset = p.newNumRow(f, "Inset", x, y, 0, 1, 0,
		func(v float64) { s.SetWindowFakeDepthInset(scope(), v) })
	y += rowStride + 8

	f.addLabel("SPACE COLUMNS", x, y, true)
	y += rowStride
	w.spacerToggle = p.newToggleRow(f, "Enabled", x, y, func(on bool) {
		s.UpdateWindowSpaceColumns(scope(), func(sc *building.SpaceColumnsConfig) { sc.Enabled = on })
	})
	y += rowStride
	w.spacerEvery = p.newNumRow(f, "Every N", x, y, 1, building.SpaceColumnEveryMax, building.SpaceColumnEveryMax,
		func(v float64) {
			s.UpdateWindowSpaceColumns(scope(), func(sc *building.SpaceColumnsConfig) { sc.Every = int(v + 0.5) })
		})
	y += rowStride
	w.spacerWidth = p.newNumRow(f, "Column width", x, y, building.SpaceColumnWidthMin, building.SpaceColumnWidthMax, 0,
		func(v float64) {
			s.UpdateWindowSpaceColumns(scope(), func(sc *building.SpaceColumnsConfig) { sc.Width = v })
		})
	y += rowStride
	w.spacerMaterial = p.newPickerRow(f, "Column material", x, y, pickerOptions(s.Catalogs().Materials),
		func(id string) {
			s.UpdateWindowSpaceColumns(scope(), func(sc *building.SpaceColumnsConfig) {
				sc.Material = building.ParseMaterialRef(id)
			})
		})
	y += rowStride
	w.spacerExtrude = p.newNumRow(f, "Extrude dist", x, y, 0, 1, 0,
		func(v float64) {
			s.UpdateWindowSpaceColumns(scope(), func(sc *building.SpaceColumnsConfig) {
				sc.Extrude = v > 0
				sc.ExtrudeDistance = v
			})
		})

	f.windows = w
}

// applyNum pushes one computed control onto a field+slider row. A focused
// field keeps its edit buffer so typing is not clobbered mid-edit.
func applyNum(c panel.Control, r numRow) {
	r.field.Enabled = c.Enabled
	r.field.Visible = c.Visible
	if !r.field.Focused() {
		r.field.SetText(c.Text)
	}
	r.slider.Enabled = c.Enabled
	r.slider.Visible = c.Visible
	r.slider.SetValue(float32(c.Slider))
}

func applyPicker(c panel.Control, pk *widget.Picker, selected string) {
	pk.Enabled = c.Enabled
	pk.Visible = c.Visible
	if !pk.Open {
		pk.SetSelected(selected)
	}
	if !c.Enabled {
		pk.Open = false
	}
}

func applyToggle(c panel.Control, t *widget.Toggle, on bool) {
	t.Enabled = c.Enabled
	t.Visible = c.Visible
	t.SetOn(on)
}

func applyHex(c panel.Control, f *widget.NumberField) {
	f.Enabled = c.Enabled
	f.Visible = c.Visible
	if !f.Focused() {
		f.SetText(c.Text)
	}
}

// applyPropertyForm pushes the computed widget state onto every retained
// widget, once per frame.
func (p *Panel) applyPropertyForm(st panel.State, cfg building.BuildingConfig) {
	f := p.form

	applyPicker(st.StylePicker, f.style, cfg.Style)
	applyNum(st.Floors, f.floors)
	applyNum(st.FloorHeight, f.floorHeight)
	applyNum(st.WallInset, f.wallInset)
	applyPicker(st.RoofType, f.roofType, string(cfg.RoofType))
	applyPicker(st.RoofColor, f.roofColor, cfg.RoofColor)
	applyHex(st.Seed, f.seed)

	applyNum(st.StreetFloors, f.streetFloors)
	applyNum(st.StreetFloorHeight, f.streetFloorHeight)
	applyPicker(st.StreetStyle, f.streetStyle, cfg.Street.Style)

	applyBelt(st.BeltCourse, f.beltCourse, cfg.BeltCourse)
	applyBelt(st.TopBelt, f.topBelt, cfg.TopBelt)

	wc := st.Windows
	wcfg := cfg.Windows
	f.tabMain.Text = "[ Main floors ]"
	f.tabStreet.Text = "Street floors"
	if p.windowTab == editor.StreetWindows {
		wc = st.StreetWindows
		wcfg = cfg.Street.Windows
		f.tabMain.Text = "Main floors"
		f.tabStreet.Text = "[ Street floors ]"
	}
	applyWindows(wc, &f.windows, wcfg)
}

func applyBelt(c panel.BeltControls, b beltWidgets, cfg building.BeltConfig) {
	applyToggle(c.Enabled, b.toggle, cfg.Enabled)
	applyNum(c.Height, b.height)
	applyNum(c.Extrusion, b.extrusion)
	applyPicker(c.Color, b.color, cfg.Material.ID)
}

func applyWindows(c panel.WindowControls, w *windowWidgets, cfg building.WindowsConfig) {
	applyToggle(c.Enabled, w.toggle, cfg.Enabled)
	applyPicker(c.TypePicker, w.typePicker, string(cfg.Type))
	applyNum(c.Width, w.width)
	applyNum(c.Height, w.height)
	applyNum(c.SillHeight, w.sill)
	applyNum(c.Spacing, w.spacing)
	applyNum(c.FrameWidth, w.frameWidth)
	applyHex(c.FrameColor, w.frameColor)
	applyHex(c.GlassTop, w.glassTop)
	applyHex(c.GlassBottom, w.glassBottom)
	applyToggle(c.FakeDepthEnabled, w.fakeToggle, cfg.FakeDepth.Enabled)
	applyNum(c.FakeDepthStrength, w.fakeStrength)
	applyNum(c.FakeDepthInset, w.fakeInset)
	applyToggle(c.SpaceColumnsEnabled, w.spacerToggle, cfg.SpaceColumns.Enabled)
	applyNum(c.SpaceColumnEvery, w.spacerEvery)
	applyNum(c.SpaceColumnWidth, w.spacerWidth)
	applyPicker(c.SpaceColumnMaterial, w.spacerMaterial, cfg.SpaceColumns.Material.ID)
	applyNum(c.SpaceColumnExtrude, w.spacerExtrude)
}

// renderFormLabels draws the static labels and the window group tab.
func (p *Panel) renderFormLabels() {
	for _, l := range p.form.labels {
		if l.title {
			p.title(l.text, l.x, l.y)
		} else {
			p.label(l.text, l.x, l.y, mgl32.Vec3{0.75, 0.75, 0.78})
		}
	}
}
