package assets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pixself/pixself-api/internal/assets"
	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/errors"
)

// failingProvider always errors, to exercise the fallback path
type failingProvider struct{}

func (failingProvider) Fetch(_ context.Context) (assets.Manifest, error) {
	return nil, errors.Unavailable("manifest host unreachable")
}

type CatalogTestSuite struct {
	suite.Suite
	catalog *assets.Catalog
	ctx     context.Context
}

func (s *CatalogTestSuite) SetupTest() {
	catalog, err := assets.NewCatalog(&assets.CatalogConfig{
		Provider: assets.NewStaticManifestProvider(assets.FallbackManifest()),
	})
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.Require().NoError(catalog.Load(s.ctx))
	s.catalog = catalog
}

func (s *CatalogTestSuite) TestNewCatalogRequiresProvider() {
	_, err := assets.NewCatalog(&assets.CatalogConfig{})
	s.Error(err)
}

func (s *CatalogTestSuite) TestPartsCanonicalOrder() {
	parts := s.catalog.Parts()
	s.Require().Len(parts, 10)

	s.Equal(entities.PartBody, parts[0].Key)
	for _, p := range parts {
		s.True(entities.IsValidPart(p.Key))
		s.NotEmpty(p.Label)
	}
}

func (s *CatalogTestSuite) TestOptionalPartsCarryNoneSentinel() {
	part, ok := s.catalog.Part(entities.PartGlasses)
	s.Require().True(ok)
	s.True(part.Optional)

	s.Require().NotEmpty(part.Assets)
	none := part.Assets[0]
	s.Equal(entities.NoneAssetID, none.ID)
	s.Empty(none.Path)
	s.True(none.IsNone())
}

func (s *CatalogTestSuite) TestBodyHasConcreteDefault() {
	part, ok := s.catalog.Part(entities.PartBody)
	s.Require().True(ok)
	s.False(part.Optional)
	s.Equal("default", part.DefaultAsset)

	def, ok := s.catalog.Find(entities.PartBody, part.DefaultAsset)
	s.Require().True(ok)
	s.NotEmpty(def.Path)
}

func (s *CatalogTestSuite) TestFindPrefixTolerance() {
	s.Run("exact stored ID", func() {
		def, ok := s.catalog.Find(entities.PartHairFront, "front-tomboy")
		s.True(ok)
		s.Equal("front-tomboy", def.ID)
	})

	s.Run("bare style finds the prefixed registration", func() {
		def, ok := s.catalog.Find(entities.PartHairFront, "tomboy")
		s.True(ok)
		s.Equal("front-tomboy", def.ID)
	})

	s.Run("unknown ID misses", func() {
		_, ok := s.catalog.Find(entities.PartHairFront, "mohawk")
		s.False(ok)
	})
}

func (s *CatalogTestSuite) TestDisplayNames() {
	def, ok := s.catalog.Find(entities.PartHairFront, "front-tomboy-brown")
	s.Require().True(ok)
	s.Equal("Tomboy Brown", def.Name)
}

func (s *CatalogTestSuite) TestManifestFilesDriveAssets() {
	catalog, err := assets.NewCatalog(&assets.CatalogConfig{
		Provider: assets.NewStaticManifestProvider(assets.Manifest{
			"body": {"body-default.png", "body-default.png", "notes.txt"},
			"eyes": {"eyes-sleepy.png"},
		}),
	})
	s.Require().NoError(err)
	s.Require().NoError(catalog.Load(s.ctx))

	body, ok := catalog.Part(entities.PartBody)
	s.Require().True(ok)
	// Duplicate filenames and non-sprite files are dropped.
	s.Len(body.Assets, 1)

	eyes, ok := catalog.Part(entities.PartEyes)
	s.Require().True(ok)
	// none sentinel plus the one manifest entry
	s.Len(eyes.Assets, 2)
	s.Equal("sleepy", eyes.Assets[1].ID)
}

func (s *CatalogTestSuite) TestVariants() {
	variants := s.catalog.Variants()
	s.NotEmpty(variants.GeneratedAt)

	byBase := make(map[string]assets.VariantAsset)
	for _, a := range variants.Assets {
		byBase[a.BaseID] = a
	}

	s.Run("compound assets group under their base", func() {
		group, ok := byBase["front-tomboy"]
		s.Require().True(ok)
		s.Equal("front-", group.Prefix)
		s.Equal("tomboy", group.BaseStyle)
		s.Require().Len(group.Variants, 1)
		s.Equal("front-tomboy-brown", group.Variants[0].ID)
		s.Equal("brown", group.Variants[0].Color)
	})

	s.Run("styles without color variants are absent", func() {
		_, ok := byBase["front-bangs"]
		s.False(ok)
	})

	s.Run("non-color trailing tokens are not variants", func() {
		// "2side" ends in a token the palette does not know, so it is a
		// base style, never a variant of "front".
		_, ok := byBase["front-2side"]
		s.False(ok)
	})
}

func (s *CatalogTestSuite) TestLoadFallsBackOnFetchFailure() {
	catalog, err := assets.NewCatalog(&assets.CatalogConfig{
		Provider: failingProvider{},
	})
	s.Require().NoError(err)

	s.Require().NoError(catalog.Load(s.ctx))

	parts := catalog.Parts()
	s.Len(parts, 10)

	body, ok := catalog.Part(entities.PartBody)
	s.Require().True(ok)
	s.NotEmpty(body.DefaultAsset)
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}
