package building

import "strings"

// MaterialKind discriminates texture-backed from flat-color materials.
type MaterialKind uint8

const (
	MaterialTexture MaterialKind = iota
	MaterialColor
)

// MaterialRef points at a catalog material. The popup widget library speaks
// a legacy "texture:foo" / "color:bar" string encoding; that encoding exists
// only at that boundary, everything else passes MaterialRef values around.
type MaterialRef struct {
	Kind MaterialKind
	ID   string
}

// ParseMaterialRef decodes the legacy prefixed-id encoding. An unprefixed id
// is treated as a texture reference, which is what every catalog shipped
// before the color kind existed.
func ParseMaterialRef(s string) MaterialRef {
	if id, ok := strings.CutPrefix(s, "color:"); ok {
		return MaterialRef{Kind: MaterialColor, ID: id}
	}
	if id, ok := strings.CutPrefix(s, "texture:"); ok {
		return MaterialRef{Kind: MaterialTexture, ID: id}
	}
	return MaterialRef{Kind: MaterialTexture, ID: s}
}

// String re-encodes the ref for the popup boundary.
func (m MaterialRef) String() string {
	if m.Kind == MaterialColor {
		return "color:" + m.ID
	}
	return "texture:" + m.ID
}
