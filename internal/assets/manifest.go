package assets

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pixself/pixself-api/internal/errors"
)

// Manifest maps a part key to the raw sprite filenames available for it.
// It is produced externally (a build-time scan of the asset tree) and
// consumed here; no discovery logic lives in this package.
type Manifest map[string][]string

// VariantEntry is one known color variant of a base asset
type VariantEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	Color string `json:"color"`
}

// VariantAsset groups a base asset with its pre-computed color variants
type VariantAsset struct {
	BaseID    string         `json:"baseId"`
	Prefix    string         `json:"prefix"`
	BaseStyle string         `json:"baseStyle"`
	BasePath  string         `json:"basePath"`
	Variants  []VariantEntry `json:"variants"`
}

// VariantsManifest is the optional pre-computed variant grouping. When
// present it lets the UI skip per-color existence probing at runtime.
type VariantsManifest struct {
	GeneratedAt string         `json:"generatedAt"`
	Assets      []VariantAsset `json:"assets"`
}

// ManifestProvider fetches the asset manifest
type ManifestProvider interface {
	Fetch(ctx context.Context) (Manifest, error)
}

const defaultFetchTimeout = 10 * time.Second

// HTTPManifestProvider fetches the manifest JSON from a stable URL
type HTTPManifestProvider struct {
	url    string
	client *http.Client
}

// NewHTTPManifestProvider creates a provider for the given manifest URL
func NewHTTPManifestProvider(url string, timeout time.Duration) *HTTPManifestProvider {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &HTTPManifestProvider{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads and decodes the manifest
func (p *HTTPManifestProvider) Fetch(ctx context.Context) (Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build manifest request")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to fetch manifest")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("manifest fetch returned status %d", resp.StatusCode)
	}

	var m Manifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, errors.Wrapf(err, "failed to decode manifest")
	}
	return m, nil
}

// StaticManifestProvider serves a fixed in-memory manifest. Used for tests
// and as the fail-over when the manifest URL is unreachable.
type StaticManifestProvider struct {
	manifest Manifest
}

// NewStaticManifestProvider wraps a fixed manifest
func NewStaticManifestProvider(m Manifest) *StaticManifestProvider {
	return &StaticManifestProvider{manifest: m}
}

// Fetch returns the fixed manifest
func (p *StaticManifestProvider) Fetch(_ context.Context) (Manifest, error) {
	return p.manifest, nil
}

// FallbackManifest is the built-in catalog used when the manifest fetch
// fails. Every part keeps at least its default entries so the UI never
// renders empty.
func FallbackManifest() Manifest {
	return Manifest{
		"body": {
			"body-default.png",
			"body-tan.png",
		},
		"hairBehind": {
			"hair-behind-long.png",
			"hair-behind-long-brown.png",
			"hair-behind-2side.png",
		},
		"hairFront": {
			"hair-front-tomboy.png",
			"hair-front-tomboy-brown.png",
			"hair-front-2side.png",
			"hair-front-bangs.png",
		},
		"eyebrows": {
			"eyebrows-basic.png",
			"eyebrows-soft.png",
		},
		"eyes": {
			"eyes-round.png",
			"eyes-round-brown.png",
			"eyes-sleepy.png",
		},
		"mouth": {
			"mouth-smile.png",
			"mouth-neutral.png",
		},
		"blush": {
			"blush-soft.png",
		},
		"clothes": {
			"clothes-hoodie.png",
			"clothes-hoodie-blue.png",
			"clothes-tshirt.png",
		},
		"earring": {
			"earring-stud.png",
		},
		"glasses": {
			"glasses-round.png",
			"glasses-square.png",
		},
	}
}
