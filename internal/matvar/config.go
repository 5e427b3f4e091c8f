package matvar

import "github.com/go-gl/mathgl/mgl32"

// Root selects which default preset family a variation config uses.
// Walls and roof surfaces want very different default brick density,
// wear placement, and macro scales.
type Root uint8

const (
	RootWall Root = iota
	RootSurface
)

// Space selects the coordinate space the variation noise is sampled in.
type Space string

const (
	SpaceWorld  Space = "world"
	SpaceObject Space = "object"
)

// StairMode selects how per-course shifting is applied across a facade.
type StairMode string

const (
	StairModeStair     StairMode = "stair"
	StairModeAlternate StairMode = "alternate"
	StairModeRandom    StairMode = "random"
	StairModePattern3  StairMode = "pattern3"
)

// ShiftDirection is the axis a stair shift runs along.
type ShiftDirection string

const (
	ShiftHorizontal ShiftDirection = "horizontal"
	ShiftVertical   ShiftDirection = "vertical"
)

// Value ranges for every numeric field in the config. The generator on the
// other side of the change events assumes these hold.
const (
	SeedOffsetMin = -9999
	SeedOffsetMax = 9999

	SpaceScaleMin = 0.05
	SpaceScaleMax = 4.0

	GlobalIntensityMax = 2.0

	MacroScaleMin = 0.01
	MacroScaleMax = 20.0

	HueDegreesMin = -180.0
	HueDegreesMax = 180.0

	BlendWidthMax = 0.49

	BricksPerTileMin = 0.25
	BricksPerTileMax = 200.0

	BrickOffsetMin = -10.0
	BrickOffsetMax = 10.0
)

// MacroLayerCount is the fixed number of macro blotch slots.
const MacroLayerCount = 4

// CoverageSlot is the single macro slot that carries a coverage control.
const CoverageSlot = 3

// Contribution is the color/material delta a strategy applies where it hits.
// Shared by macro layers, streaks, exposure, wear bands, cracks, and brick
// variation. Value/Saturation/Roughness/Normal are in [-1, 1]; HueDegrees is
// in [-180, 180].
type Contribution struct {
	HueDegrees float64
	Value      float64
	Saturation float64
	Roughness  float64
	Normal     float64
}

// NormalMapFlips flips the sampled normal map per axis.
type NormalMapFlips struct {
	FlipX bool
	FlipY bool
	FlipZ bool
}

// MacroLayer is one of four large-scale blotch layers.
// Coverage is only meaningful on slot CoverageSlot.
type MacroLayer struct {
	Enabled   bool
	Intensity float64 // [0, 2]
	Scale     float64 // [0.01, 20]
	Contribution
	Coverage float64 // [0, 1]
}

// StreaksLayer adds vertical run-off streaking.
type StreaksLayer struct {
	Enabled   bool
	Intensity float64 // [0, 2]
	Scale     float64 // [0.01, 20]
	Contribution
}

// ExposureLayer tints surfaces by how much they face Direction
// (weathering from sun/rain direction). Direction is a unit vector; the UI
// edits it as azimuth [0, 360) and elevation [0, 90] degrees.
type ExposureLayer struct {
	Enabled   bool
	Intensity float64 // [0, 2]
	Direction mgl32.Vec3
	Contribution
}

// WearBand is a band of wear anchored to the top, bottom, or side edges.
type WearBand struct {
	Enabled   bool
	Intensity float64 // [0, 2]
	Width     float64 // [0, 1], fraction of the surface
	Scale     float64 // [0.01, 20]
	Contribution
}

// CracksLayer overlays a crack pattern.
type CracksLayer struct {
	Enabled   bool
	Intensity float64 // [0, 2]
	Scale     float64 // [0.01, 20]
	Contribution
}

// AntiTiling is a UV-space transform that breaks visible texture repetition.
// Unlike the contribution strategies it changes where texels are sampled,
// not what color they get.
type AntiTiling struct {
	Enabled  bool
	Strength float64 // [0, 1]
	Scale    float64 // [0.01, 20]
}

// StairShift is a UV-space per-course shift (brick course offsetting).
type StairShift struct {
	Enabled    bool
	Mode       StairMode
	PatternA   float64 // [0, 1], shift fraction for even courses
	PatternB   float64 // [0, 1], shift fraction for odd courses
	BlendWidth float64 // [0, 0.49]
	Direction  ShiftDirection
}

// BrickLayout is the brick grid a per-brick/mortar variation samples on.
type BrickLayout struct {
	BricksPerTileX float64 // [0.25, 200]
	BricksPerTileY float64 // [0.25, 200]
	MortarWidth    float64 // [0, 0.49]
	OffsetX        float64 // [-10, 10]
	OffsetY        float64 // [-10, 10]
}

// BrickVariation varies individual bricks (or the mortar between them).
type BrickVariation struct {
	Enabled   bool
	Intensity float64 // [0, 2]
	Contribution
	Layout BrickLayout
}

// BrickConfig groups the two brick-grid strategies.
type BrickConfig struct {
	PerBrick BrickVariation
	Mortar   BrickVariation
}

// Config is the full material-variation block carried by every layer.
// A zero Config is not valid; construct through DefaultPreset, NewDisabled,
// or Normalize.
type Config struct {
	Enabled          bool
	SeedOffset       int   // [-9999, 9999]
	Space            Space // world or object
	WorldSpaceScale  float64
	ObjectSpaceScale float64
	GlobalIntensity  float64 // [0, 2]
	AOAmount         float64 // [0, 1]
	NormalMap        NormalMapFlips

	MacroLayers [MacroLayerCount]MacroLayer
	Streaks     StreaksLayer
	Exposure    ExposureLayer
	WearTop     WearBand
	WearBottom  WearBand
	WearSide    WearBand
	Cracks      CracksLayer
	AntiTiling  AntiTiling
	StairShift  StairShift
	Brick       BrickConfig
}
