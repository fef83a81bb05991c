// Package entities defines the core domain types for the Pixself Studio API
package entities

// PartKey identifies one fixed character slot
type PartKey string

// The fixed set of character parts. The set and its order never change at
// runtime; a character has exactly one selection per part.
const (
	PartBody       PartKey = "body"
	PartHairBehind PartKey = "hairBehind"
	PartClothes    PartKey = "clothes"
	PartBlush      PartKey = "blush"
	PartMouth      PartKey = "mouth"
	PartEyes       PartKey = "eyes"
	PartEyebrows   PartKey = "eyebrows"
	PartHairFront  PartKey = "hairFront"
	PartEarring    PartKey = "earring"
	PartGlasses    PartKey = "glasses"
)

// AllParts lists every part in its canonical (display) order
var AllParts = []PartKey{
	PartBody,
	PartClothes,
	PartHairBehind,
	PartHairFront,
	PartEyebrows,
	PartEyes,
	PartMouth,
	PartBlush,
	PartEarring,
	PartGlasses,
}

// LayerOrder lists parts topmost first. Compositing iterates it reversed so
// the bottom layer is painted first.
var LayerOrder = []PartKey{
	PartGlasses,
	PartEarring,
	PartHairFront,
	PartEyebrows,
	PartEyes,
	PartMouth,
	PartBlush,
	PartClothes,
	PartBody,
	PartHairBehind,
}

// IsValidPart reports whether key is a member of the fixed part set
func IsValidPart(key PartKey) bool {
	for _, p := range AllParts {
		if p == key {
			return true
		}
	}
	return false
}

// NoneAssetID is the sentinel asset ID for an optional part with nothing
// selected. Its path is always the empty string.
const NoneAssetID = "none"

// AssetDefinition is one selectable sprite for one part.
// ID is a logical selector and may encode a style plus an implicit color
// ("tomboy-brown"). Path is empty for the none sentinel.
type AssetDefinition struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Path    string `json:"path"`
	Enabled bool   `json:"enabled"`
}

// IsNone reports whether this is the sentinel asset
func (a *AssetDefinition) IsNone() bool {
	return a.ID == NoneAssetID && a.Path == ""
}

// PartDefinition describes one character slot and its selectable assets.
// If Optional is true, Assets contains the none sentinel; body is the only
// non-optional part and always resolves to a concrete default.
type PartDefinition struct {
	Key          PartKey           `json:"key"`
	Label        string            `json:"label"`
	Icon         string            `json:"icon"`
	Category     string            `json:"category"`
	Assets       []AssetDefinition `json:"assets"`
	DefaultAsset string            `json:"defaultAsset"`
	Optional     bool              `json:"optional"`
}
