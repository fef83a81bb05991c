package render_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pixself/pixself-api/internal/assets"
	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/render"
)

const canvasSize = 16

var (
	bodyColor    = color.RGBA{R: 200, G: 150, B: 120, A: 255}
	clothesColor = color.RGBA{R: 40, G: 60, B: 180, A: 255}
	eyesColor    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// solid returns a fully opaque single-color sprite
func solid(c color.RGBA, size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// topHalf returns a sprite opaque in the top half, transparent below
func topHalf(c color.RGBA, size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size/2; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

type CompositorTestSuite struct {
	suite.Suite
	compositor *render.Compositor
	ctx        context.Context
}

func (s *CompositorTestSuite) SetupTest() {
	catalog, err := assets.NewCatalog(&assets.CatalogConfig{
		Provider: assets.NewStaticManifestProvider(assets.FallbackManifest()),
	})
	s.Require().NoError(err)
	s.Require().NoError(catalog.Load(context.Background()))

	source := render.MapSource{
		"/assets/character/body/body-default.png":      solid(bodyColor, canvasSize),
		"/assets/character/clothes/clothes-hoodie.png": topHalf(clothesColor, canvasSize),
		"/assets/character/eyes/eyes-round.png":        topHalf(eyesColor, canvasSize),
	}

	compositor, err := render.NewCompositor(&render.CompositorConfig{
		Resolver: assets.NewResolver(catalog),
		Source:   source,
		Size:     canvasSize,
	})
	s.Require().NoError(err)

	s.compositor = compositor
	s.ctx = context.Background()
}

func (s *CompositorTestSuite) TestComposeBodyOnly() {
	canvas, err := s.compositor.Compose(s.ctx, entities.SelectionSet{
		entities.PartBody: {AssetID: "default", Enabled: true},
	})
	s.Require().NoError(err)

	s.Equal(bodyColor, canvas.RGBAAt(0, 0))
	s.Equal(bodyColor, canvas.RGBAAt(canvasSize-1, canvasSize-1))
}

func (s *CompositorTestSuite) TestLayerOrder() {
	canvas, err := s.compositor.Compose(s.ctx, entities.SelectionSet{
		entities.PartBody:    {AssetID: "default", Enabled: true},
		entities.PartClothes: {AssetID: "hoodie", Enabled: true},
		entities.PartEyes:    {AssetID: "round", Enabled: true},
	})
	s.Require().NoError(err)

	// Eyes paint above clothes, clothes above body.
	s.Equal(eyesColor, canvas.RGBAAt(0, 0))
	// Below the overlays the body shows through.
	s.Equal(bodyColor, canvas.RGBAAt(0, canvasSize-1))
}

func (s *CompositorTestSuite) TestDisabledPartSkipped() {
	canvas, err := s.compositor.Compose(s.ctx, entities.SelectionSet{
		entities.PartBody:    {AssetID: "default", Enabled: true},
		entities.PartClothes: {AssetID: "hoodie", Enabled: false},
	})
	s.Require().NoError(err)

	s.Equal(bodyColor, canvas.RGBAAt(0, 0))
}

func (s *CompositorTestSuite) TestBodyAlwaysDrawn() {
	// Normalize forces the body on even when the client disables it.
	canvas, err := s.compositor.Compose(s.ctx, entities.SelectionSet{
		entities.PartBody: {AssetID: "default", Enabled: false},
	})
	s.Require().NoError(err)

	s.Equal(bodyColor, canvas.RGBAAt(0, 0))
}

func (s *CompositorTestSuite) TestMissingLayerSkipped() {
	// The glasses sprite is not in the source; the rest still renders.
	canvas, err := s.compositor.Compose(s.ctx, entities.SelectionSet{
		entities.PartBody:    {AssetID: "default", Enabled: true},
		entities.PartGlasses: {AssetID: "round", Enabled: true},
	})
	s.Require().NoError(err)

	s.Equal(bodyColor, canvas.RGBAAt(0, 0))
}

func (s *CompositorTestSuite) TestNoneSelectionSkipped() {
	canvas, err := s.compositor.Compose(s.ctx, entities.SelectionSet{
		entities.PartBody:    {AssetID: "default", Enabled: true},
		entities.PartClothes: {AssetID: entities.NoneAssetID, Enabled: true},
	})
	s.Require().NoError(err)

	s.Equal(bodyColor, canvas.RGBAAt(0, 0))
}

func (s *CompositorTestSuite) TestNilSelectionsRejected() {
	_, err := s.compositor.Compose(s.ctx, nil)
	s.Error(err)
}

func (s *CompositorTestSuite) TestDeterministicOutput() {
	selections := entities.SelectionSet{
		entities.PartBody:    {AssetID: "default", Enabled: true},
		entities.PartClothes: {AssetID: "hoodie", Enabled: true},
		entities.PartEyes:    {AssetID: "round", Enabled: true},
	}

	first, err := s.compositor.ComposePNG(s.ctx, selections)
	s.Require().NoError(err)

	for i := 0; i < 5; i++ {
		again, err := s.compositor.ComposePNG(s.ctx, selections)
		s.Require().NoError(err)
		s.True(bytes.Equal(first, again))
	}
}

func (s *CompositorTestSuite) TestDataURL() {
	pngBytes, err := s.compositor.ComposePNG(s.ctx, entities.SelectionSet{
		entities.PartBody: {AssetID: "default", Enabled: true},
	})
	s.Require().NoError(err)

	url := render.DataURL(pngBytes)
	s.Contains(url, "data:image/png;base64,")
}

func (s *CompositorTestSuite) TestThumbnail() {
	canvas, err := s.compositor.Compose(s.ctx, entities.SelectionSet{
		entities.PartBody: {AssetID: "default", Enabled: true},
	})
	s.Require().NoError(err)

	thumb := render.Thumbnail(canvas, 8)
	s.Equal(8, thumb.Bounds().Dx())
	s.Equal(8, thumb.Bounds().Dy())
	s.Equal(bodyColor, thumb.RGBAAt(0, 0))
}

func TestCompositorSuite(t *testing.T) {
	suite.Run(t, new(CompositorTestSuite))
}
