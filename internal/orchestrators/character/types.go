package character

import (
	"github.com/pixself/pixself-api/internal/assets"
	"github.com/pixself/pixself-api/internal/entities"
)

// ListPartsInput defines the request for listing parts
type ListPartsInput struct{}

// ListPartsOutput defines the response for listing parts
type ListPartsOutput struct {
	Parts []entities.PartDefinition
	// Colors maps a part category to its display palette
	Colors map[string][]assets.Color
}

// ListVariantsInput defines the request for listing color variant groups
type ListVariantsInput struct{}

// ListVariantsOutput defines the response for listing color variant groups
type ListVariantsOutput struct {
	Variants assets.VariantsManifest
}

// ResolveAssetInput defines the request for resolving one asset
type ResolveAssetInput struct {
	Part    entities.PartKey
	AssetID string
	Color   string
	// CheckExists additionally probes the CDN for the resolved file
	CheckExists bool
}

// ResolveAssetOutput defines the response for resolving one asset
type ResolveAssetOutput struct {
	Path     string
	Resolved bool
	// Exists is set only when CheckExists was requested
	Exists *bool
}

// RandomizeInput defines the request for a random character
type RandomizeInput struct {
	Seed int64
}

// RandomizeOutput defines the response for a random character
type RandomizeOutput struct {
	Selections entities.SelectionSet
}

// ComposeInput defines the request for rendering a character
type ComposeInput struct {
	Selections entities.SelectionSet
	// Thumbnail additionally renders a downscaled variant
	Thumbnail bool
	// ThumbnailSize is the square thumbnail edge; defaults to 128
	ThumbnailSize int
}

// ComposeOutput defines the response for rendering a character
type ComposeOutput struct {
	PNG          []byte
	DataURL      string
	ThumbnailPNG []byte
}

// SaveDraftInput defines the request for saving a character draft
type SaveDraftInput struct {
	SessionID  string
	Name       string
	Selections entities.SelectionSet
}

// SaveDraftOutput defines the response for saving a character draft
type SaveDraftOutput struct {
	Draft *entities.CharacterDraft
}

// GetDraftInput defines the request for fetching a session's draft
type GetDraftInput struct {
	SessionID string
}

// GetDraftOutput defines the response for fetching a session's draft
type GetDraftOutput struct {
	Draft *entities.CharacterDraft
}

// RefreshInput defines the request for reloading the asset catalog
type RefreshInput struct{}

// RefreshOutput defines the response for reloading the asset catalog
type RefreshOutput struct {
	Parts int
}
