package assets

import (
	"path"
	"strings"
	"sync"

	"github.com/pixself/pixself-api/internal/entities"
)

// Resolver maps a (part, assetID) pair to a concrete sprite path. It
// handles three ID shapes: a bare style ("tomboy"), a style+color compound
// ("tomboy-brown"), and the part-prefixed form some slots store internally
// ("front-tomboy").
//
// Resolution never errors: the none sentinel resolves to "", and an
// unresolvable pair reports not-ok so the caller skips the layer. Results
// are memoized; Reset empties the memo in one critical section so no
// reader ever sees a half-cleared cache.
type Resolver struct {
	catalog *Catalog

	mu    sync.RWMutex
	cache map[string]string
}

// NewResolver creates a resolver over the given catalog
func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{
		catalog: catalog,
		cache:   make(map[string]string),
	}
}

// Resolve returns the sprite path for an asset ID. The empty string with
// ok=true means "nothing to draw" (the none sentinel); ok=false means the
// pair cannot be resolved at all.
//
// Precedence is load-bearing: an exact registered match always wins over
// compound decomposition, so a style literally named "tomboy-brown" is
// never misread as style "tomboy" plus color "brown".
func (r *Resolver) Resolve(part entities.PartKey, assetID string) (string, bool) {
	if assetID == "" || assetID == entities.NoneAssetID {
		return "", true
	}

	cfg, ok := configFor(part)
	if !ok {
		return "", false
	}

	key := string(part) + "|" + assetID

	r.mu.RLock()
	cached, hit := r.cache[key]
	r.mu.RUnlock()
	if hit {
		return cached, true
	}

	resolved := r.resolve(cfg, part, assetID)

	r.mu.Lock()
	r.cache[key] = resolved
	r.mu.Unlock()

	return resolved, true
}

func (r *Resolver) resolve(cfg partConfig, part entities.PartKey, assetID string) string {
	// Direct lookup: base styles and any pre-registered compound ID.
	if def, ok := r.catalog.Find(part, assetID); ok {
		return def.Path
	}

	// Compound decomposition: split at the LAST separator so multi-word
	// styles like "2side" survive intact, then retry the base. The color
	// file is assumed to live alongside the base as {base}-{color}.png;
	// existence is the prober's concern, not the resolver's.
	if idx := strings.LastIndex(assetID, "-"); idx > 0 && idx < len(assetID)-1 {
		base, color := assetID[:idx], assetID[idx+1:]
		if def, ok := r.catalog.Find(part, base); ok && def.Path != "" {
			return withColorSuffix(def.Path, color)
		}
	}

	// Deterministic construction from the static per-part layout.
	style := strings.TrimPrefix(assetID, cfg.idPrefix)
	return assetRoot + "/" + cfg.folder + "/" + cfg.filePrefix + "-" + style + ".png"
}

// ResolveSelection resolves one part's runtime selection, combining the
// base asset with its color variant when one is set
func (r *Resolver) ResolveSelection(part entities.PartKey, sel entities.Selection) (string, bool) {
	if sel.AssetID == "" || sel.AssetID == entities.NoneAssetID {
		return "", true
	}
	if sel.ColorVariant == "" {
		return r.Resolve(part, sel.AssetID)
	}
	return r.Resolve(part, sel.AssetID+"-"+sel.ColorVariant)
}

// Reset clears the memo cache. Called on catalog refresh.
func (r *Resolver) Reset() {
	r.mu.Lock()
	r.cache = make(map[string]string)
	r.mu.Unlock()
}

// withColorSuffix rewrites ".../hair-front-2side.png" + "blue" into
// ".../hair-front-2side-blue.png"
func withColorSuffix(basePath, color string) string {
	ext := path.Ext(basePath)
	return strings.TrimSuffix(basePath, ext) + "-" + color + ext
}
