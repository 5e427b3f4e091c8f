package building

import "fab-hud/internal/matvar"

// LayerKind discriminates the two layer variants in a building stack.
type LayerKind uint8

const (
	LayerFloor LayerKind = iota
	LayerRoof
)

// RoofType is the roof construction the generator meshes.
type RoofType string

const (
	RoofAsphalt RoofType = "asphalt"
	RoofMetal   RoofType = "metal"
	RoofTile    RoofType = "tile"
)

// WindowType identifies a window style from the catalog. ARCH_V1 and
// MODERN_V1 are parametric (frame and glass are generated, so frame width
// and glass colors apply); everything else is a baked texture.
type WindowType string

const (
	WindowArchV1   WindowType = "ARCH_V1"
	WindowModernV1 WindowType = "MODERN_V1"
)

// IsParametricWindowType reports whether frame/glass sub-parameters have any
// meaning for the given type.
func IsParametricWindowType(t WindowType) bool {
	return t == WindowArchV1 || t == WindowModernV1
}

// Value ranges for layer geometry. Floor count and floor height ceilings come
// from config.Limits instead; these are the fixed ones.
const (
	BeltHeightMin    = 0.02
	BeltHeightMax    = 1.2
	BeltExtrusionMax = 4.0

	FrameWidthMin = 0.02
	FrameWidthMax = 0.2

	WindowWidthMin   = 0.3
	WindowWidthMax   = 12.0
	WindowHeightMin  = 0.3
	WindowHeightMax  = 10.0
	SillHeightMax    = 12.0
	WindowSpacingMax = 24.0

	FakeDepthStrengthMax = 0.25

	SpaceColumnEveryMax = 99
	SpaceColumnWidthMin = 0.1
	SpaceColumnWidthMax = 10.0

	RingRadiusMax = 8.0
	RingHeightMax = 2.0

	TileMetersMin = 0.05
	TileMetersMax = 64.0
)

// BeltConfig is a horizontal decorative band (street-floor transition belt,
// top belt, or a per-layer belt).
type BeltConfig struct {
	Enabled   bool
	Height    float64 // [0.02, 1.2] meters
	Extrusion float64 // [0, 4] meters out from the facade
	Material  MaterialRef
}

// FakeDepthConfig fakes window recession in the shader instead of geometry.
type FakeDepthConfig struct {
	Enabled       bool
	Strength      float64 // [0, 0.25]
	InsetStrength float64 // [0, 1]
}

// SpaceColumnsConfig inserts a vertical spacer element every N windows.
type SpaceColumnsConfig struct {
	Enabled         bool
	Every           int     // [1, 99]
	Width           float64 // [0.1, 10] meters
	Material        MaterialRef
	Extrude         bool
	ExtrudeDistance float64 // [0, 1] meters
}

// WindowsConfig describes the window grid of a floor layer.
// FrameColor/GlassTop/GlassBottom are packed 0xRRGGBB integers and only
// meaningful for parametric window types.
type WindowsConfig struct {
	Enabled      bool
	Type         WindowType
	FrameWidth   float64 // [0.02, 0.2], parametric types only
	FrameColor   int
	GlassTop     int
	GlassBottom  int
	Width        float64 // [0.3, 12] meters
	Height       float64 // [0.3, 10] meters
	SillHeight   float64 // [0, 12] meters
	Spacing      float64 // [0, 24] meters between windows
	FakeDepth    FakeDepthConfig
	SpaceColumns SpaceColumnsConfig
}

// RingConfig is the decorative ring around a roof perimeter.
type RingConfig struct {
	Enabled     bool
	OuterRadius float64 // [0, 8]
	InnerRadius float64 // [0, 8]
	Height      float64 // [0, 2]
	Material    MaterialRef
}

// TilingConfig overrides the texture tile size. TileMeters 0 means
// "use the material's own default".
type TilingConfig struct {
	TileMeters float64 // 0 or [0.05, 64]
}

// RoofConfig is the roof-specific body of a roof layer.
type RoofConfig struct {
	Type              RoofType
	Color             string // roof color catalog id
	Material          MaterialRef
	Tiling            TilingConfig
	MaterialVariation matvar.Config
}

// Layer is one stackable slice of a building: either repeated floors with
// windows and a belt, or a roof cap with an optional ring. ID is stable
// across reorders and is how operations address a layer.
type Layer struct {
	ID   string
	Kind LayerKind

	// Floor variant.
	Floors            int
	FloorHeight       float64
	PlanOffset        float64
	Style             string // legacy texture id, kept for old hosts
	Material          MaterialRef
	Tiling            TilingConfig
	MaterialVariation matvar.Config
	Belt              BeltConfig
	Windows           WindowsConfig

	// Roof variant.
	Roof RoofConfig
	Ring RingConfig
}

// VariationRoot maps the layer kind to the preset family its material
// variation uses.
func (l Layer) VariationRoot() matvar.Root {
	if l.Kind == LayerRoof {
		return matvar.RootSurface
	}
	return matvar.RootWall
}
