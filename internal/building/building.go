package building

import (
	"fab-hud/internal/config"
	"fab-hud/internal/numutil"
)

// Top-level scalar ranges.
const (
	WallInsetMax = 4.0

	SeedMax = 4294967295 // uint32 range; the generator feeds it to a PRNG
)

// StreetConfig is the street-level sub-configuration of a building: how many
// of the bottom floors are street floors and how they differ from the rest.
type StreetConfig struct {
	Floors      int     // 0 disables the street treatment
	FloorHeight float64 // [FloorHeightMin, FloorHeightMax]
	Style       string
	Windows     WindowsConfig
}

// BuildingConfig is the complete description of one building the HUD edits
// and the generator consumes. Exactly one scope (the template or a selected
// building) owns a given value at a time; layers cross that boundary only
// through CloneLayers.
type BuildingConfig struct {
	ID          string
	Type        string
	Style       string
	Floors      int
	FloorHeight float64
	Street      StreetConfig
	WallInset   float64

	BeltCourse BeltConfig // band at the street-floor transition
	TopBelt    BeltConfig // band at the top of the building

	RoofType  RoofType
	RoofColor string

	Windows WindowsConfig // main floors

	Layers                []Layer
	MaterialVariationSeed *uint32
}

// Normalize clamps every scalar and normalizes the layer stack.
func (b BuildingConfig) Normalize(limits config.Limits) BuildingConfig {
	if b.Type == "" {
		b.Type = "generic"
	}
	if b.Style == "" {
		b.Style = DefaultStyle
	}
	b.Floors = numutil.ClampInt(float64(b.Floors), 1, limits.FloorMax)
	b.FloorHeight = numutil.Clamp(b.FloorHeight, limits.FloorHeightMin, limits.FloorHeightMax)
	b.Street.Floors = numutil.ClampInt(float64(b.Street.Floors), 0, b.Floors)
	b.Street.FloorHeight = numutil.Clamp(b.Street.FloorHeight, limits.FloorHeightMin, limits.FloorHeightMax)
	if b.Street.Style == "" {
		b.Street.Style = b.Style
	}
	b.Street.Windows = normalizeWindows(b.Street.Windows)
	b.WallInset = numutil.Clamp(b.WallInset, 0, WallInsetMax)
	b.BeltCourse = normalizeBelt(b.BeltCourse)
	b.TopBelt = normalizeBelt(b.TopBelt)
	switch b.RoofType {
	case RoofAsphalt, RoofMetal, RoofTile:
	default:
		b.RoofType = RoofAsphalt
	}
	if b.RoofColor == "" {
		b.RoofColor = DefaultRoofColor
	}
	b.Windows = normalizeWindows(b.Windows)
	b.Layers = NormalizeLayers(b.Layers, limits)
	if b.MaterialVariationSeed != nil {
		seed := *b.MaterialVariationSeed
		b.MaterialVariationSeed = &seed
	}
	return b
}

// Clone returns a deep value copy.
func (b BuildingConfig) Clone() BuildingConfig {
	out := b
	out.Layers = CloneLayers(b.Layers)
	if b.MaterialVariationSeed != nil {
		seed := *b.MaterialVariationSeed
		out.MaterialVariationSeed = &seed
	}
	return out
}

// NewTemplate returns the default template configuration used before any
// building exists: one floor stack and one roof cap.
func NewTemplate(limits config.Limits) BuildingConfig {
	b := BuildingConfig{
		Type:        "generic",
		Style:       DefaultStyle,
		Floors:      6,
		FloorHeight: 3.0,
		Street: StreetConfig{
			Floors:      1,
			FloorHeight: 4.0,
			Windows:     DefaultWindows(),
		},
		BeltCourse: DefaultBelt(),
		TopBelt:    DefaultBelt(),
		RoofType:   RoofAsphalt,
		RoofColor:  DefaultRoofColor,
		Windows:    DefaultWindows(),
		Layers: []Layer{
			NewFloorLayer(FloorOverrides{Floors: 6}),
			NewRoofLayer(RoofOverrides{}),
		},
	}
	return b.Normalize(limits)
}
