package building

import (
	"fmt"
	"math"

	"fab-hud/internal/config"
	"fab-hud/internal/matvar"
)

// CatalogResolver validates catalog ids arriving in host records. Unknown
// ids resolve to the catalog's documented default id.
type CatalogResolver interface {
	ResolveStyle(id string) string
	ResolveWindowType(id string) string
	ResolveBeltColor(id string) string
	ResolveRoofColor(id string) string
	ResolveMaterial(id string) string
}

// Defaulted records one host-record field that was missing or invalid and
// got replaced by a default. Hosts ship records with whatever fields their
// version knew about, so some defaulting is normal; the report lets a host
// log or surface it instead of silently diverging.
type Defaulted struct {
	Field  string
	Reason string
}

// legacyWindowStyles maps pre-catalog window style names to typed ids.
var legacyWindowStyles = map[string]WindowType{
	"arch":   WindowArchV1,
	"arched": WindowArchV1,
	"modern": WindowModernV1,
	"plain":  WindowModernV1,
}

// DecodeBuilding turns a duck-typed host record into a normalized
// BuildingConfig. It never fails: missing or mistyped fields take documented
// defaults and are listed in the report. This replaces per-field inline
// guards at every read site with one validating boundary.
func DecodeBuilding(raw map[string]any, limits config.Limits, cats CatalogResolver) (BuildingConfig, []Defaulted) {
	d := &decoder{raw: raw, cats: cats}

	b := BuildingConfig{
		ID:          d.str("id", ""),
		Type:        d.str("type", "generic"),
		Style:       d.style("style"),
		Floors:      d.intField("floors", 6),
		FloorHeight: d.num("floorHeight", 3.0),
		WallInset:   d.num("wallInset", 0),
		RoofColor:   d.roofColor("roofColor"),
	}

	switch d.str("roofType", string(RoofAsphalt)) {
	case string(RoofMetal):
		b.RoofType = RoofMetal
	case string(RoofTile):
		b.RoofType = RoofTile
	default:
		b.RoofType = RoofAsphalt
	}

	street := StreetConfig{
		FloorHeight: d.num("streetFloorHeight", 4.0),
		Style:       d.style("streetStyle"),
	}
	if d.boolField("streetEnabled", false) {
		street.Floors = d.intField("streetFloors", 1)
	}
	street.Windows = d.windows("street")
	b.Street = street

	b.Windows = d.windows("")
	b.BeltCourse = d.belt("beltCourse")
	b.TopBelt = d.belt("topBelt")

	if seed, ok := d.raw["materialVariationSeed"]; ok {
		if v, isNum := toFloat(seed); isNum && !math.IsNaN(v) && !math.IsInf(v, 0) {
			clamped := uint32(math.Min(math.Max(v, 0), SeedMax))
			b.MaterialVariationSeed = &clamped
		} else {
			d.defaulted("materialVariationSeed", "not a number")
		}
	}

	if rawLayers, ok := d.raw["layers"].([]any); ok {
		for i, rl := range rawLayers {
			lm, isMap := rl.(map[string]any)
			if !isMap {
				d.defaulted(fmt.Sprintf("layers[%d]", i), "not an object")
				continue
			}
			b.Layers = append(b.Layers, d.layer(lm, i))
		}
	}

	return b.Normalize(limits), d.report
}

type decoder struct {
	raw    map[string]any
	cats   CatalogResolver
	report []Defaulted
}

func (d *decoder) defaulted(field, reason string) {
	d.report = append(d.report, Defaulted{Field: field, Reason: reason})
}

func (d *decoder) str(key, def string) string {
	v, ok := d.raw[key]
	if !ok {
		return def
	}
	s, isStr := v.(string)
	if !isStr {
		d.defaulted(key, "not a string")
		return def
	}
	return s
}

func (d *decoder) num(key string, def float64) float64 {
	v, ok := d.raw[key]
	if !ok {
		return def
	}
	f, isNum := toFloat(v)
	if !isNum {
		d.defaulted(key, "not a number")
		return def
	}
	return f
}

func (d *decoder) intField(key string, def int) int {
	return int(math.Round(d.num(key, float64(def))))
}

func (d *decoder) boolField(key string, def bool) bool {
	v, ok := d.raw[key]
	if !ok {
		return def
	}
	b, isBool := v.(bool)
	if !isBool {
		d.defaulted(key, "not a bool")
		return def
	}
	return b
}

func (d *decoder) style(key string) string {
	id := d.str(key, DefaultStyle)
	resolved := d.cats.ResolveStyle(id)
	if resolved != id {
		d.defaulted(key, "unknown style "+id)
	}
	return resolved
}

func (d *decoder) roofColor(key string) string {
	id := d.str(key, DefaultRoofColor)
	resolved := d.cats.ResolveRoofColor(id)
	if resolved != id {
		d.defaulted(key, "unknown roof color "+id)
	}
	return resolved
}

// windows decodes the flat windowTypeId/windowWidth/... property group.
// prefix "" reads the main-floor group, "street" reads streetWindowTypeId etc.
func (d *decoder) windows(prefix string) WindowsConfig {
	key := func(name string) string {
		if prefix == "" {
			return "window" + name
		}
		return prefix + "Window" + name
	}

	w := DefaultWindows()
	w.Enabled = d.boolField(key("Enabled"), true)

	w.Type = d.windowType(key("TypeId"), key("Style"))

	w.FrameWidth = d.num(key("FrameWidth"), w.FrameWidth)
	w.FrameColor = d.intField(key("FrameColor"), w.FrameColor)
	w.GlassTop = d.intField(key("GlassTop"), w.GlassTop)
	w.GlassBottom = d.intField(key("GlassBottom"), w.GlassBottom)
	w.Width = d.num(key("Width"), w.Width)
	w.Height = d.num(key("Height"), w.Height)
	w.SillHeight = d.num(key("SillHeight"), w.SillHeight)
	w.Spacing = d.num(key("Spacing"), w.Spacing)
	return w
}

// windowType resolves the window type id. Records that predate typed window
// ids carry a windowStyle name instead; when no typeId key is present the
// style name routes through the legacy alias table.
func (d *decoder) windowType(typeKey, styleKey string) WindowType {
	if _, ok := d.raw[typeKey]; !ok {
		if _, ok := d.raw[styleKey]; ok {
			name := d.str(styleKey, "")
			if t, ok := legacyWindowStyles[name]; ok {
				return t
			}
			d.defaulted(styleKey, "unknown legacy window style "+name)
			return DefaultWindowType
		}
	}
	typeID := d.str(typeKey, string(DefaultWindowType))
	if legacy, ok := legacyWindowStyles[typeID]; ok {
		return legacy
	}
	resolved := d.cats.ResolveWindowType(typeID)
	if resolved != typeID {
		d.defaulted(typeKey, "unknown window type "+typeID)
	}
	return WindowType(resolved)
}

func (d *decoder) belt(prefix string) BeltConfig {
	b := DefaultBelt()
	b.Enabled = d.boolField(prefix+"Enabled", false)
	b.Height = d.num(prefix+"Height", b.Height)
	b.Extrusion = d.num(prefix+"Extrusion", b.Extrusion)
	if id := d.str(prefix+"Color", ""); id != "" {
		resolved := d.cats.ResolveBeltColor(id)
		if resolved != id {
			d.defaulted(prefix+"Color", "unknown belt color "+id)
		}
		b.Material = MaterialRef{Kind: MaterialColor, ID: resolved}
	}
	return b
}

// layer decodes one raw layer object. Unknown kinds decode as floor layers;
// NormalizeLayers applies range clamping afterwards.
func (d *decoder) layer(lm map[string]any, idx int) Layer {
	ld := &decoder{raw: lm, cats: d.cats}

	var l Layer
	if ld.str("type", "FLOOR") == "ROOF" {
		l = NewRoofLayer(RoofOverrides{})
		l.Roof.Color = ld.roofColor("roofColor")
		if mat := ld.str("material", ""); mat != "" {
			l.Roof.Material = ParseMaterialRef(d.cats.ResolveMaterial(mat))
		}
	} else {
		l = NewFloorLayer(FloorOverrides{
			Floors:      ld.intField("floors", 4),
			FloorHeight: ld.num("floorHeight", 3.0),
			Style:       ld.style("style"),
		})
		l.PlanOffset = ld.num("planOffset", 0)
		if mat := ld.str("material", ""); mat != "" {
			l.Material = ParseMaterialRef(d.cats.ResolveMaterial(mat))
		}
	}
	if id := ld.str("id", ""); id != "" {
		l.ID = id
	}
	if mv, ok := lm["materialVariation"].(map[string]any); ok {
		l = decodeVariation(l, mv)
	}

	for _, rec := range ld.report {
		d.defaulted(fmt.Sprintf("layers[%d].%s", idx, rec.Field), rec.Reason)
	}
	return l
}

// decodeVariation reads only the portable subset of a host-supplied
// variation block (enabled, seed offset, normal-map flips). Anything beyond
// that means the host already holds a full config and resends it through the
// layer change events, so a partial decode here stays minimal on purpose:
// the enable toggle then swaps in a root preset exactly as it would for a
// fresh layer.
func decodeVariation(l Layer, mv map[string]any) Layer {
	vd := &decoder{raw: mv}
	seed := vd.intField("seedOffset", 0)
	flips := matvar.NormalMapFlips{
		FlipX: vd.boolField("flipX", false),
		FlipY: vd.boolField("flipY", false),
		FlipZ: vd.boolField("flipZ", false),
	}
	cfg := matvar.NewDisabled(l.VariationRoot(), seed, flips)
	cfg.Enabled = vd.boolField("enabled", false)
	if l.Kind == LayerRoof {
		l.Roof.MaterialVariation = cfg
	} else {
		l.MaterialVariation = cfg
	}
	return l
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	default:
		return 0, false
	}
}
