package assets

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const defaultProbeTimeout = 3 * time.Second

// Prober answers "does this sprite file actually exist?" with a bounded,
// best-effort HEAD request. It is kept apart from the Resolver on purpose:
// the resolver stays a pure function of the manifest while the prober
// talks to the CDN.
//
// Fail-closed: a timeout or transport error counts as "does not exist" and
// is cached, so a slow CDN can never hang the caller.
type Prober struct {
	baseURL string
	client  *http.Client
	timeout time.Duration

	mu    sync.RWMutex
	cache map[string]bool
}

// ProberConfig configures a Prober
type ProberConfig struct {
	// BaseURL is prepended to resolved asset paths
	BaseURL string
	// Timeout bounds each probe; defaults to 3s
	Timeout time.Duration
	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// NewProber creates a prober against the given asset host
func NewProber(cfg *ProberConfig) *Prober {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &Prober{
		baseURL: cfg.BaseURL,
		client:  client,
		timeout: timeout,
		cache:   make(map[string]bool),
	}
}

// Exists reports whether the asset at path is reachable. Results are
// memoized per path until Reset.
func (p *Prober) Exists(ctx context.Context, assetPath string) bool {
	if assetPath == "" {
		return false
	}

	p.mu.RLock()
	cached, hit := p.cache[assetPath]
	p.mu.RUnlock()
	if hit {
		return cached
	}

	exists := p.probe(ctx, assetPath)

	p.mu.Lock()
	p.cache[assetPath] = exists
	p.mu.Unlock()

	return exists
}

func (p *Prober) probe(ctx context.Context, assetPath string) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.baseURL+assetPath, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Reset clears the probe cache. Called on catalog refresh.
func (p *Prober) Reset() {
	p.mu.Lock()
	p.cache = make(map[string]bool)
	p.mu.Unlock()
}
