package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/draw"
	"image/png"
	"log/slog"

	"github.com/pixself/pixself-api/internal/assets"
	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/errors"
)

// Compositor renders a full selection set into a single bitmap. Layers are
// painted bottom-up in the fixed order; a layer that fails to resolve,
// load, or decode is logged and skipped so a missing accessory never
// aborts the character.
type Compositor struct {
	resolver *assets.Resolver
	source   Source
	size     int
	logger   *slog.Logger
}

// CompositorConfig holds the dependencies for a Compositor
type CompositorConfig struct {
	Resolver *assets.Resolver
	Source   Source
	// Size is the square canvas edge in pixels
	Size   int
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *CompositorConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Source == nil {
		vb.RequiredField("Source")
	}
	if c.Size <= 0 {
		vb.InvalidField("Size", "must be positive")
	}

	return vb.Build()
}

// NewCompositor creates a compositor with the provided dependencies
func NewCompositor(cfg *CompositorConfig) (*Compositor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Compositor{
		resolver: cfg.Resolver,
		source:   cfg.Source,
		size:     cfg.Size,
		logger:   logger,
	}, nil
}

// Compose renders the selections onto a fresh canvas. The layer order is
// iterated reversed so the bottom layer paints first; draws are strictly
// serialized in z-order, which keeps the output deterministic for a fixed
// selection set and manifest.
func (c *Compositor) Compose(ctx context.Context, selections entities.SelectionSet) (*image.RGBA, error) {
	if selections == nil {
		return nil, errors.InvalidArgument("selections are required")
	}
	selections = selections.Normalize()

	canvas := image.NewRGBA(image.Rect(0, 0, c.size, c.size))

	order := entities.LayerOrder
	for i := len(order) - 1; i >= 0; i-- {
		part := order[i]
		sel, ok := selections[part]
		if !ok {
			continue
		}
		if !sel.Enabled && part != entities.PartBody {
			continue
		}

		path, ok := c.resolver.ResolveSelection(part, sel)
		if !ok {
			c.logger.Warn("asset resolution miss", "part", part, "asset", sel.AssetID)
			continue
		}
		if path == "" {
			continue
		}

		img, err := c.source.Load(ctx, path)
		if err != nil {
			c.logger.Warn("layer load failed, skipping", "part", part, "path", path, "error", err)
			continue
		}

		drawScaled(canvas, img)
	}

	return canvas, nil
}

// ComposePNG renders the selections and encodes the canvas as PNG
func (c *Compositor) ComposePNG(ctx context.Context, selections entities.SelectionSet) ([]byte, error) {
	canvas, err := c.Compose(ctx, selections)
	if err != nil {
		return nil, err
	}
	return EncodePNG(canvas)
}

// EncodePNG encodes an image as PNG bytes
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrapf(err, "failed to encode png")
	}
	return buf.Bytes(), nil
}

// DataURL wraps encoded PNG bytes as a data URL for the UI
func DataURL(pngBytes []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}

// Thumbnail scales an image to a square thumbnail. Nearest-neighbor keeps
// pixel-art edges hard.
func Thumbnail(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	scaleNearest(dst, src)
	return dst
}

// drawScaled paints src over dst, scaled to fill the whole canvas
func drawScaled(dst *image.RGBA, src image.Image) {
	if src.Bounds().Dx() == dst.Bounds().Dx() && src.Bounds().Dy() == dst.Bounds().Dy() {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
		return
	}

	scaled := image.NewRGBA(dst.Bounds())
	scaleNearest(scaled, src)
	draw.Draw(dst, dst.Bounds(), scaled, scaled.Bounds().Min, draw.Over)
}

// scaleNearest is a nearest-neighbor resample of src into dst's bounds
func scaleNearest(dst *image.RGBA, src image.Image) {
	db := dst.Bounds()
	sb := src.Bounds()
	dw, dh := db.Dx(), db.Dy()
	sw, sh := sb.Dx(), sb.Dy()
	if dw == 0 || dh == 0 || sw == 0 || sh == 0 {
		return
	}

	for y := 0; y < dh; y++ {
		sy := sb.Min.Y + y*sh/dh
		for x := 0; x < dw; x++ {
			sx := sb.Min.X + x*sw/dw
			dst.Set(db.Min.X+x, db.Min.Y+y, src.At(sx, sy))
		}
	}
}
