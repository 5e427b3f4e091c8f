package building

import (
	"github.com/google/uuid"

	"fab-hud/internal/matvar"
)

// Default catalog ids used when a host record or catalog lookup comes back
// with something we do not recognize.
const (
	DefaultStyle      = "default"
	DefaultWindowType = WindowModernV1
	DefaultRoofColor  = "graphite"
	DefaultWallMat    = "plaster_white"
	DefaultBeltMat    = "concrete_smooth"
	DefaultRoofMat    = "asphalt_dark"
)

// FloorOverrides selects which parts of a new floor layer to override.
// Nil sub-configs fall back to defaults.
type FloorOverrides struct {
	Floors      int
	FloorHeight float64
	Style       string
	Material    *MaterialRef
	Belt        *BeltConfig
	Windows     *WindowsConfig
}

// RoofOverrides selects which parts of a new roof layer to override.
type RoofOverrides struct {
	Roof *RoofConfig
	Ring *RingConfig
}

// DefaultBelt returns the belt used on new floor layers (disabled, but with
// usable numbers so enabling the toggle shows something sensible).
func DefaultBelt() BeltConfig {
	return BeltConfig{
		Height:    0.3,
		Extrusion: 0.15,
		Material:  MaterialRef{Kind: MaterialTexture, ID: DefaultBeltMat},
	}
}

// DefaultWindows returns the window grid used on new floor layers.
func DefaultWindows() WindowsConfig {
	return WindowsConfig{
		Enabled:     true,
		Type:        DefaultWindowType,
		FrameWidth:  0.06,
		FrameColor:  0x2b2b2b,
		GlassTop:    0x9fb4c7,
		GlassBottom: 0x5f7a8c,
		Width:       1.4,
		Height:      1.6,
		SillHeight:  0.9,
		Spacing:     1.2,
		FakeDepth: FakeDepthConfig{
			Enabled:       true,
			Strength:      0.12,
			InsetStrength: 0.5,
		},
		SpaceColumns: SpaceColumnsConfig{
			Every:    3,
			Width:    0.4,
			Material: MaterialRef{Kind: MaterialTexture, ID: DefaultWallMat},
		},
	}
}

// DefaultRing returns the roof ring used on new roof layers.
func DefaultRing() RingConfig {
	return RingConfig{
		OuterRadius: 0.4,
		InnerRadius: 0.2,
		Height:      0.6,
		Material:    MaterialRef{Kind: MaterialTexture, ID: DefaultBeltMat},
	}
}

// DefaultRoof returns the roof body used on new roof layers.
func DefaultRoof() RoofConfig {
	return RoofConfig{
		Type:              RoofAsphalt,
		Color:             DefaultRoofColor,
		Material:          MaterialRef{Kind: MaterialTexture, ID: DefaultRoofMat},
		MaterialVariation: matvar.NewDisabled(matvar.RootSurface, 0, matvar.NormalMapFlips{}),
	}
}

// NewFloorLayer builds a floor layer from defaults plus overrides and
// assigns it a fresh stable id.
func NewFloorLayer(o FloorOverrides) Layer {
	l := Layer{
		ID:                uuid.NewString(),
		Kind:              LayerFloor,
		Floors:            4,
		FloorHeight:       3.0,
		Style:             DefaultStyle,
		Material:          MaterialRef{Kind: MaterialTexture, ID: DefaultWallMat},
		MaterialVariation: matvar.NewDisabled(matvar.RootWall, 0, matvar.NormalMapFlips{}),
		Belt:              DefaultBelt(),
		Windows:           DefaultWindows(),
	}
	if o.Floors > 0 {
		l.Floors = o.Floors
	}
	if o.FloorHeight > 0 {
		l.FloorHeight = o.FloorHeight
	}
	if o.Style != "" {
		l.Style = o.Style
	}
	if o.Material != nil {
		l.Material = *o.Material
	}
	if o.Belt != nil {
		l.Belt = *o.Belt
	}
	if o.Windows != nil {
		l.Windows = *o.Windows
	}
	return l
}

// NewRoofLayer builds a roof layer from defaults plus overrides and assigns
// it a fresh stable id.
func NewRoofLayer(o RoofOverrides) Layer {
	l := Layer{
		ID:   uuid.NewString(),
		Kind: LayerRoof,
		Roof: DefaultRoof(),
		Ring: DefaultRing(),
	}
	if o.Roof != nil {
		l.Roof = *o.Roof
	}
	if o.Ring != nil {
		l.Ring = *o.Ring
	}
	return l
}
