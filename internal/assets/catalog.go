package assets

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/errors"
)

// assetRoot is where sprite files live, on disk and on the CDN
const assetRoot = "/assets/character"

// partConfig is the static per-part layout: where files live, how they are
// prefixed on disk, and how stored asset IDs are prefixed for the two hair
// slots that share a style namespace.
type partConfig struct {
	key          entities.PartKey
	label        string
	icon         string
	folder       string
	filePrefix   string
	idPrefix     string
	optional     bool
	defaultAsset string
}

var partConfigs = []partConfig{
	{key: entities.PartBody, label: "Body", icon: "🧍", folder: "body", filePrefix: "body", defaultAsset: "default"},
	{key: entities.PartClothes, label: "Clothes", icon: "👕", folder: "clothes", filePrefix: "clothes", optional: true, defaultAsset: "hoodie"},
	{key: entities.PartHairBehind, label: "Hair (back)", icon: "💇", folder: "hair-behind", filePrefix: "hair-behind", idPrefix: "behind-", optional: true},
	{key: entities.PartHairFront, label: "Hair (front)", icon: "💇", folder: "hair-front", filePrefix: "hair-front", idPrefix: "front-", optional: true, defaultAsset: "front-tomboy"},
	{key: entities.PartEyebrows, label: "Eyebrows", icon: "✏️", folder: "eyebrows", filePrefix: "eyebrows", optional: true, defaultAsset: "basic"},
	{key: entities.PartEyes, label: "Eyes", icon: "👀", folder: "eyes", filePrefix: "eyes", optional: true, defaultAsset: "round"},
	{key: entities.PartMouth, label: "Mouth", icon: "👄", folder: "mouth", filePrefix: "mouth", optional: true, defaultAsset: "smile"},
	{key: entities.PartBlush, label: "Blush", icon: "🌸", folder: "blush", filePrefix: "blush", optional: true},
	{key: entities.PartEarring, label: "Earring", icon: "💎", folder: "earring", filePrefix: "earring", optional: true},
	{key: entities.PartGlasses, label: "Glasses", icon: "👓", folder: "glasses", filePrefix: "glasses", optional: true},
}

func configFor(part entities.PartKey) (partConfig, bool) {
	for _, cfg := range partConfigs {
		if cfg.key == part {
			return cfg, true
		}
	}
	return partConfig{}, false
}

// Catalog owns the part definitions built from the asset manifest. It is
// constructed explicitly and refreshed explicitly; there is no module-level
// cached state.
type Catalog struct {
	provider ManifestProvider
	logger   *slog.Logger

	mu    sync.RWMutex
	parts []entities.PartDefinition
	index map[entities.PartKey]map[string]entities.AssetDefinition
}

// CatalogConfig holds the dependencies for a Catalog
type CatalogConfig struct {
	Provider ManifestProvider
	Logger   *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *CatalogConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Provider == nil {
		vb.RequiredField("Provider")
	}
	if err := ValidateRegistry(); err != nil {
		vb.InvalidField("ColorRegistry", err.Error())
	}

	return vb.Build()
}

// NewCatalog creates an empty catalog; call Load before first use
func NewCatalog(cfg *CatalogConfig) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Catalog{
		provider: cfg.Provider,
		logger:   logger,
		index:    make(map[entities.PartKey]map[string]entities.AssetDefinition),
	}, nil
}

// Load fetches the manifest and rebuilds all part definitions. A fetch
// failure falls back to the built-in manifest so the catalog is never
// empty. The swap is atomic: readers see either the old set or the new
// one, never a partial rebuild.
func (c *Catalog) Load(ctx context.Context) error {
	manifest, err := c.provider.Fetch(ctx)
	if err != nil {
		c.logger.Warn("manifest fetch failed, using fallback catalog", "error", err)
		manifest = FallbackManifest()
	}

	parts, index := buildDefinitions(manifest, c.logger)

	c.mu.Lock()
	c.parts = parts
	c.index = index
	c.mu.Unlock()

	c.logger.Info("asset catalog loaded", "parts", len(parts))
	return nil
}

// Parts returns all part definitions in canonical order
func (c *Catalog) Parts() []entities.PartDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entities.PartDefinition, len(c.parts))
	copy(out, c.parts)
	return out
}

// Part returns the definition for one part
func (c *Catalog) Part(key entities.PartKey) (entities.PartDefinition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.parts {
		if p.Key == key {
			return p, true
		}
	}
	return entities.PartDefinition{}, false
}

// Find looks up a registered asset by ID. Lookup tolerates the stored-ID
// prefix of the hair slots: "tomboy" matches a stored "front-tomboy" and
// vice versa. An exact ID match always wins.
func (c *Catalog) Find(part entities.PartKey, id string) (entities.AssetDefinition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	byID, ok := c.index[part]
	if !ok {
		return entities.AssetDefinition{}, false
	}

	if def, ok := byID[id]; ok {
		return def, true
	}

	cfg, ok := configFor(part)
	if !ok || cfg.idPrefix == "" {
		return entities.AssetDefinition{}, false
	}

	if def, ok := byID[cfg.idPrefix+id]; ok {
		return def, true
	}
	if trimmed := strings.TrimPrefix(id, cfg.idPrefix); trimmed != id {
		if def, ok := byID[trimmed]; ok {
			return def, true
		}
	}
	return entities.AssetDefinition{}, false
}

// Variants groups every registered compound asset under its base style, so
// the UI can offer color swatches without probing for each file. A token is
// treated as a color only when the part's palette knows it and the base
// style is itself registered.
func (c *Catalog) Variants() VariantsManifest {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := VariantsManifest{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for _, cfg := range partConfigs {
		byID := c.index[cfg.key]
		category := CategoryOf(cfg.key)

		grouped := make(map[string][]VariantEntry)
		for _, part := range c.parts {
			if part.Key != cfg.key {
				continue
			}
			for _, asset := range part.Assets {
				if asset.IsNone() {
					continue
				}
				idx := strings.LastIndex(asset.ID, "-")
				if idx <= 0 || idx >= len(asset.ID)-1 {
					continue
				}
				base, color := asset.ID[:idx], asset.ID[idx+1:]
				if !IsColorToken(category, color) {
					continue
				}
				if _, ok := byID[base]; !ok {
					continue
				}
				grouped[base] = append(grouped[base], VariantEntry{
					ID:    asset.ID,
					Name:  asset.Name,
					Path:  asset.Path,
					Color: color,
				})
			}
		}

		for _, part := range c.parts {
			if part.Key != cfg.key {
				continue
			}
			for _, asset := range part.Assets {
				variants, ok := grouped[asset.ID]
				if !ok {
					continue
				}
				out.Assets = append(out.Assets, VariantAsset{
					BaseID:    asset.ID,
					Prefix:    cfg.idPrefix,
					BaseStyle: strings.TrimPrefix(asset.ID, cfg.idPrefix),
					BasePath:  asset.Path,
					Variants:  variants,
				})
			}
		}
	}

	return out
}

func buildDefinitions(manifest Manifest, logger *slog.Logger) ([]entities.PartDefinition, map[entities.PartKey]map[string]entities.AssetDefinition) {
	parts := make([]entities.PartDefinition, 0, len(partConfigs))
	index := make(map[entities.PartKey]map[string]entities.AssetDefinition, len(partConfigs))

	for _, cfg := range partConfigs {
		def := entities.PartDefinition{
			Key:      cfg.key,
			Label:    cfg.label,
			Icon:     cfg.icon,
			Category: CategoryOf(cfg.key),
			Optional: cfg.optional,
		}

		byID := make(map[string]entities.AssetDefinition)

		if cfg.optional {
			none := entities.AssetDefinition{ID: entities.NoneAssetID, Name: "None", Path: "", Enabled: true}
			def.Assets = append(def.Assets, none)
			byID[none.ID] = none
		}

		for _, filename := range manifest[string(cfg.key)] {
			asset, ok := assetFromFilename(cfg, filename)
			if !ok {
				logger.Debug("skipping unrecognized asset file", "part", cfg.key, "file", filename)
				continue
			}
			if _, dup := byID[asset.ID]; dup {
				continue
			}
			def.Assets = append(def.Assets, asset)
			byID[asset.ID] = asset
		}

		def.DefaultAsset = pickDefault(cfg, def.Assets)
		parts = append(parts, def)
		index[cfg.key] = byID
	}

	return parts, index
}

// assetFromFilename parses "{filePrefix}-{style}[-{color}].png" into an
// AssetDefinition. The style may itself contain hyphens; the full token
// sequence stays in the ID so compound IDs register verbatim.
func assetFromFilename(cfg partConfig, filename string) (entities.AssetDefinition, bool) {
	base, ok := strings.CutSuffix(filename, ".png")
	if !ok {
		return entities.AssetDefinition{}, false
	}
	rest, ok := strings.CutPrefix(base, cfg.filePrefix+"-")
	if !ok || rest == "" {
		return entities.AssetDefinition{}, false
	}

	return entities.AssetDefinition{
		ID:      cfg.idPrefix + rest,
		Name:    displayName(rest),
		Path:    assetRoot + "/" + cfg.folder + "/" + filename,
		Enabled: true,
	}, true
}

func displayName(token string) string {
	words := strings.Split(token, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func pickDefault(cfg partConfig, assets []entities.AssetDefinition) string {
	if cfg.defaultAsset != "" {
		for _, a := range assets {
			if a.ID == cfg.defaultAsset {
				return a.ID
			}
		}
	}
	if cfg.optional {
		return entities.NoneAssetID
	}
	// body: first concrete asset must exist even under the fallback manifest
	for _, a := range assets {
		if a.Path != "" {
			return a.ID
		}
	}
	return ""
}
