// Package render implements the character composition engine: loading
// sprite images, painting them onto a canvas in fixed z-order, encoding
// the result, and coalescing interactive redraw requests.
package render

import (
	"context"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/pixself/pixself-api/internal/errors"
)

// Source loads a sprite image by its resolved path
type Source interface {
	Load(ctx context.Context, path string) (image.Image, error)
}

const defaultLoadTimeout = 10 * time.Second

// HTTPSource loads sprites over HTTP from the asset host
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates a source rooted at baseURL
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}
	return &HTTPSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Load fetches and decodes one PNG sprite
func (s *HTTPSource) Load(ctx context.Context, path string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build image request for %s", path)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to fetch image "+path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.NotFoundf("image %s not found", path)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("image fetch for %s returned status %d", path, resp.StatusCode)
	}

	img, err := png.Decode(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode image %s", path)
	}
	return img, nil
}

// MapSource serves images from memory, keyed by path. Used in tests and
// for pre-decoded sprite fixtures.
type MapSource map[string]image.Image

// Load returns the image registered for path
func (s MapSource) Load(_ context.Context, path string) (image.Image, error) {
	img, ok := s[path]
	if !ok {
		return nil, errors.NotFoundf("image %s not found", path)
	}
	return img, nil
}
