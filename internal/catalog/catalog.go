// Package catalog adapts external option catalogs (building styles, window
// types, belt and roof colors, PBR materials) into the uniform records the
// picker widgets consume. Catalogs can change between sessions, so every
// lookup resolves unknown ids to a documented default instead of failing.
package catalog

// Option is one pickable entry. PreviewURL is set for texture-backed
// options, Hex for color swatches; pickers render whichever is present.
type Option struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	PreviewURL string `json:"previewUrl,omitempty"`
	Hex        string `json:"hex,omitempty"`

	// PBR preview metadata, present on material options only.
	Roughness float64 `json:"roughness,omitempty"`
	Metallic  float64 `json:"metallic,omitempty"`
}

// Default ids returned for unknown lookups. These must exist in the
// built-in catalogs.
const (
	DefaultStyleID      = "default"
	DefaultWindowTypeID = "MODERN_V1"
	DefaultBeltColorID  = "sandstone"
	DefaultRoofColorID  = "graphite"
	DefaultMaterialID   = "plaster_white"
)

// Set holds every catalog the HUD reads. Construct with Builtin or Load.
type Set struct {
	Styles      []Option
	WindowTypes []Option
	BeltColors  []Option
	RoofColors  []Option
	Materials   []Option
}

// Builtin returns the catalogs compiled into the binary, used when no
// catalog files are supplied by the host.
func Builtin() *Set {
	return &Set{
		Styles: []Option{
			{ID: "default", Label: "Default", PreviewURL: "previews/styles/default.png"},
			{ID: "brick_red", Label: "Red Brick", PreviewURL: "previews/styles/brick_red.png"},
			{ID: "brick_brown", Label: "Brown Brick", PreviewURL: "previews/styles/brick_brown.png"},
			{ID: "plaster", Label: "Plaster", PreviewURL: "previews/styles/plaster.png"},
			{ID: "panel_concrete", Label: "Concrete Panel", PreviewURL: "previews/styles/panel_concrete.png"},
			{ID: "glass_curtain", Label: "Glass Curtain", PreviewURL: "previews/styles/glass_curtain.png"},
		},
		WindowTypes: []Option{
			{ID: "ARCH_V1", Label: "Arched (parametric)", PreviewURL: "previews/windows/arch_v1.png"},
			{ID: "MODERN_V1", Label: "Modern (parametric)", PreviewURL: "previews/windows/modern_v1.png"},
			{ID: "BAKED_CLASSIC", Label: "Classic", PreviewURL: "previews/windows/baked_classic.png"},
			{ID: "BAKED_WAREHOUSE", Label: "Warehouse", PreviewURL: "previews/windows/baked_warehouse.png"},
			{ID: "BAKED_SHUTTERED", Label: "Shuttered", PreviewURL: "previews/windows/baked_shuttered.png"},
		},
		BeltColors: []Option{
			{ID: "sandstone", Label: "Sandstone", Hex: "#d8c49a"},
			{ID: "limestone", Label: "Limestone", Hex: "#cfc8b8"},
			{ID: "granite", Label: "Granite", Hex: "#8a8a8f"},
			{ID: "brick", Label: "Brick", Hex: "#9c5040"},
			{ID: "white", Label: "White", Hex: "#f2f0ea"},
		},
		RoofColors: []Option{
			{ID: "graphite", Label: "Graphite", Hex: "#3c3f42"},
			{ID: "terracotta", Label: "Terracotta", Hex: "#b0563a"},
			{ID: "copper", Label: "Copper", Hex: "#5d8a74"},
			{ID: "slate", Label: "Slate", Hex: "#55616e"},
		},
		Materials: []Option{
			{ID: "plaster_white", Label: "White Plaster", PreviewURL: "previews/materials/plaster_white.png", Roughness: 0.9},
			{ID: "concrete_smooth", Label: "Smooth Concrete", PreviewURL: "previews/materials/concrete_smooth.png", Roughness: 0.7},
			{ID: "brick_red", Label: "Red Brick", PreviewURL: "previews/materials/brick_red.png", Roughness: 0.85},
			{ID: "asphalt_dark", Label: "Dark Asphalt", PreviewURL: "previews/materials/asphalt_dark.png", Roughness: 0.95},
			{ID: "metal_standing_seam", Label: "Standing Seam", PreviewURL: "previews/materials/metal_standing_seam.png", Roughness: 0.4, Metallic: 1},
		},
	}
}

func resolve(opts []Option, id, def string) string {
	for _, o := range opts {
		if o.ID == id {
			return id
		}
	}
	return def
}

// ResolveStyle returns id if the style exists, else the default style id.
func (s *Set) ResolveStyle(id string) string {
	return resolve(s.Styles, id, DefaultStyleID)
}

// ResolveWindowType returns id if the window type exists, else the default.
func (s *Set) ResolveWindowType(id string) string {
	return resolve(s.WindowTypes, id, DefaultWindowTypeID)
}

// ResolveBeltColor returns id if the belt color exists, else the default.
func (s *Set) ResolveBeltColor(id string) string {
	return resolve(s.BeltColors, id, DefaultBeltColorID)
}

// ResolveRoofColor returns id if the roof color exists, else the default.
func (s *Set) ResolveRoofColor(id string) string {
	return resolve(s.RoofColors, id, DefaultRoofColorID)
}

// ResolveMaterial returns id if the material exists, else the default.
func (s *Set) ResolveMaterial(id string) string {
	return resolve(s.Materials, id, DefaultMaterialID)
}

// Find returns the option record for an id, falling back to the first
// option when the id is unknown. Pickers use this to show the current
// selection's label and preview.
func Find(opts []Option, id string) Option {
	for _, o := range opts {
		if o.ID == id {
			return o
		}
	}
	if len(opts) > 0 {
		return opts[0]
	}
	return Option{}
}
