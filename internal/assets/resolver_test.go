package assets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pixself/pixself-api/internal/assets"
	"github.com/pixself/pixself-api/internal/entities"
)

type ResolverTestSuite struct {
	suite.Suite
	catalog  *assets.Catalog
	resolver *assets.Resolver
}

func (s *ResolverTestSuite) SetupTest() {
	catalog, err := assets.NewCatalog(&assets.CatalogConfig{
		Provider: assets.NewStaticManifestProvider(assets.FallbackManifest()),
	})
	s.Require().NoError(err)
	s.Require().NoError(catalog.Load(context.Background()))

	s.catalog = catalog
	s.resolver = assets.NewResolver(catalog)
}

func (s *ResolverTestSuite) TestNoneSentinel() {
	s.Run("none resolves to empty path", func() {
		path, ok := s.resolver.Resolve(entities.PartHairFront, entities.NoneAssetID)
		s.True(ok)
		s.Empty(path)
	})

	s.Run("empty ID resolves to empty path", func() {
		path, ok := s.resolver.Resolve(entities.PartGlasses, "")
		s.True(ok)
		s.Empty(path)
	})
}

func (s *ResolverTestSuite) TestUnknownPart() {
	_, ok := s.resolver.Resolve(entities.PartKey("tail"), "fluffy")
	s.False(ok)
}

func (s *ResolverTestSuite) TestDirectMatch() {
	s.Run("registered base style", func() {
		path, ok := s.resolver.Resolve(entities.PartHairFront, "front-tomboy")
		s.True(ok)
		s.Equal("/assets/character/hair-front/hair-front-tomboy.png", path)
	})

	s.Run("registered compound wins over decomposition", func() {
		// "front-tomboy-brown" is registered verbatim from the manifest,
		// so it must not be split into base "front-tomboy" plus color.
		path, ok := s.resolver.Resolve(entities.PartHairFront, "front-tomboy-brown")
		s.True(ok)
		s.Equal("/assets/character/hair-front/hair-front-tomboy-brown.png", path)
	})

	s.Run("unprefixed ID finds the prefixed registration", func() {
		path, ok := s.resolver.Resolve(entities.PartHairFront, "tomboy")
		s.True(ok)
		s.Equal("/assets/character/hair-front/hair-front-tomboy.png", path)
	})
}

func (s *ResolverTestSuite) TestCompoundDecomposition() {
	s.Run("unregistered color variant of a registered base", func() {
		path, ok := s.resolver.Resolve(entities.PartHairFront, "front-2side-blue")
		s.True(ok)
		s.Equal("/assets/character/hair-front/hair-front-2side-blue.png", path)
	})

	s.Run("multi-word style survives the split", func() {
		// The split happens at the LAST separator only, so the "2side"
		// token is never broken apart.
		path, ok := s.resolver.Resolve(entities.PartHairBehind, "behind-2side-pink")
		s.True(ok)
		s.Equal("/assets/character/hair-behind/hair-behind-2side-pink.png", path)
	})
}

func (s *ResolverTestSuite) TestFallbackConstruction() {
	// An ID the catalog has never seen still resolves to the
	// deterministic per-part path.
	path, ok := s.resolver.Resolve(entities.PartHairFront, "front-mystery")
	s.True(ok)
	s.Equal("/assets/character/hair-front/hair-front-mystery.png", path)
}

func (s *ResolverTestSuite) TestResolveSelection() {
	s.Run("color variant appends to the asset ID", func() {
		path, ok := s.resolver.ResolveSelection(entities.PartEyes, entities.Selection{
			AssetID:      "round",
			Enabled:      true,
			ColorVariant: "brown",
		})
		s.True(ok)
		s.Equal("/assets/character/eyes/eyes-round-brown.png", path)
	})

	s.Run("no color variant passes through", func() {
		path, ok := s.resolver.ResolveSelection(entities.PartEyes, entities.Selection{
			AssetID: "round",
			Enabled: true,
		})
		s.True(ok)
		s.Equal("/assets/character/eyes/eyes-round.png", path)
	})

	s.Run("none selection draws nothing", func() {
		path, ok := s.resolver.ResolveSelection(entities.PartGlasses, entities.Selection{
			AssetID:      entities.NoneAssetID,
			ColorVariant: "blue",
		})
		s.True(ok)
		s.Empty(path)
	})
}

func (s *ResolverTestSuite) TestDeterminism() {
	first, ok := s.resolver.Resolve(entities.PartClothes, "hoodie-blue")
	s.True(ok)

	for i := 0; i < 10; i++ {
		again, ok := s.resolver.Resolve(entities.PartClothes, "hoodie-blue")
		s.True(ok)
		s.Equal(first, again)
	}
}

func (s *ResolverTestSuite) TestReset() {
	before, ok := s.resolver.Resolve(entities.PartBody, "default")
	s.True(ok)

	s.resolver.Reset()

	after, ok := s.resolver.Resolve(entities.PartBody, "default")
	s.True(ok)
	s.Equal(before, after)
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}
