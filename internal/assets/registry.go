// Package assets implements the sprite catalog for character parts: the
// color registry, the manifest provider, the asset catalog built from it,
// the (part, assetID) path resolver, and the best-effort availability
// prober. The resolver is a pure function of the loaded catalog; anything
// that touches the network lives in the provider or the prober.
package assets

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pixself/pixself-api/internal/entities"
)

// Color is one display color for a part category
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// colorTable maps part category to its closed color vocabulary. The order
// is the display order. These names are the only tokens the resolver will
// ever treat as a trailing color suffix.
var colorTable = map[string][]Color{
	"hair": {
		{Name: "black", Hex: "#2c222b"},
		{Name: "brown", Hex: "#6d4730"},
		{Name: "blonde", Hex: "#e8c475"},
		{Name: "red", Hex: "#a03c28"},
		{Name: "blue", Hex: "#3f5d8c"},
		{Name: "pink", Hex: "#d98a9e"},
		{Name: "purple", Hex: "#6a4a7c"},
		{Name: "green", Hex: "#4f6f46"},
		{Name: "white", Hex: "#e8e6e3"},
		{Name: "gray", Hex: "#8a8a8a"},
	},
	"eyes": {
		{Name: "black", Hex: "#1f1a1d"},
		{Name: "brown", Hex: "#5c3a21"},
		{Name: "blue", Hex: "#4a6fa5"},
		{Name: "green", Hex: "#4e7a4e"},
		{Name: "gray", Hex: "#7d7d85"},
	},
	"blush": {
		{Name: "pink", Hex: "#f2a0ae"},
		{Name: "peach", Hex: "#f2b09a"},
		{Name: "red", Hex: "#e06c75"},
	},
	"clothes": {
		{Name: "red", Hex: "#b8403a"},
		{Name: "blue", Hex: "#3b5f8a"},
		{Name: "black", Hex: "#2b2b2e"},
		{Name: "white", Hex: "#efede9"},
	},
}

// partCategories groups parts into color categories. hairFront, hairBehind
// and eyebrows share the "hair" palette; the relation is many-to-one, not
// ownership.
var partCategories = map[entities.PartKey]string{
	entities.PartBody:       "body",
	entities.PartHairBehind: "hair",
	entities.PartHairFront:  "hair",
	entities.PartEyebrows:   "hair",
	entities.PartEyes:       "eyes",
	entities.PartMouth:      "mouth",
	entities.PartBlush:      "blush",
	entities.PartClothes:    "clothes",
	entities.PartEarring:    "earring",
	entities.PartGlasses:    "glasses",
}

// CategoryOf returns the color category for a part
func CategoryOf(part entities.PartKey) string {
	return partCategories[part]
}

// Colors returns the display colors for a category, in display order.
// Categories without variants return nil.
func Colors(category string) []Color {
	src := colorTable[category]
	if len(src) == 0 {
		return nil
	}
	out := make([]Color, len(src))
	copy(out, src)
	return out
}

// ColorsForPart returns the display colors for a part's category
func ColorsForPart(part entities.PartKey) []Color {
	return Colors(CategoryOf(part))
}

// IsColorToken reports whether token is a recognized color name for the
// category. Used to tell a trailing color suffix apart from a style token.
func IsColorToken(category, token string) bool {
	for _, c := range colorTable[category] {
		if c.Name == token {
			return true
		}
	}
	return false
}

// ValidateRegistry checks every hex value in the color table parses.
// A bad entry is a programmer error; called once at composition root.
func ValidateRegistry() error {
	for category, colors := range colorTable {
		for _, c := range colors {
			if _, err := colorful.Hex(c.Hex); err != nil {
				return fmt.Errorf("color registry: %s/%s: %w", category, c.Name, err)
			}
		}
	}
	return nil
}
