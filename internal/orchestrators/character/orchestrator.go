// Package character implements the character orchestrator: catalog
// listing, asset resolution, randomization, composition, and draft
// persistence.
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/pixself/pixself-api/internal/orchestrators/character Service

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/pixself/pixself-api/internal/assets"
	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/errors"
	"github.com/pixself/pixself-api/internal/pkg/clock"
	"github.com/pixself/pixself-api/internal/pkg/idgen"
	"github.com/pixself/pixself-api/internal/render"
	characterdraft "github.com/pixself/pixself-api/internal/repositories/characterdraft"
)

// Service defines the interface for character operations
type Service interface {
	// ListParts returns all part definitions and color palettes
	ListParts(ctx context.Context, input *ListPartsInput) (*ListPartsOutput, error)

	// ListVariants returns the pre-computed color variant grouping
	ListVariants(ctx context.Context, input *ListVariantsInput) (*ListVariantsOutput, error)

	// ResolveAsset resolves one (part, asset, color) to a sprite path
	ResolveAsset(ctx context.Context, input *ResolveAssetInput) (*ResolveAssetOutput, error)

	// RandomizeSelections builds a full character from a PRNG seed.
	// The result is a pure function of the seed and the loaded catalog.
	RandomizeSelections(ctx context.Context, input *RandomizeInput) (*RandomizeOutput, error)

	// ComposeCharacter renders a selection set to PNG
	ComposeCharacter(ctx context.Context, input *ComposeInput) (*ComposeOutput, error)

	// SaveDraft persists the session's character
	SaveDraft(ctx context.Context, input *SaveDraftInput) (*SaveDraftOutput, error)

	// GetDraft fetches the session's character
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)

	// RefreshCatalog reloads the manifest and clears resolution caches
	RefreshCatalog(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
}

const defaultThumbnailSize = 128

// colorVariantChance is the 1-in-N odds that a randomized part also gets a
// color variant
const colorVariantChance = 2

// Config holds the dependencies for the character orchestrator
type Config struct {
	Catalog     *assets.Catalog
	Resolver    *assets.Resolver
	Prober      *assets.Prober
	Compositor  *render.Compositor
	DraftRepo   characterdraft.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	Logger      *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Compositor == nil {
		vb.RequiredField("Compositor")
	}
	if c.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog    *assets.Catalog
	resolver   *assets.Resolver
	prober     *assets.Prober
	compositor *render.Compositor
	draftRepo  characterdraft.Repository
	idGen      idgen.Generator
	clock      clock.Clock
	logger     *slog.Logger
}

// NewOrchestrator creates a new character orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		catalog:    cfg.Catalog,
		resolver:   cfg.Resolver,
		prober:     cfg.Prober,
		compositor: cfg.Compositor,
		draftRepo:  cfg.DraftRepo,
		idGen:      cfg.IDGenerator,
		clock:      clk,
		logger:     logger,
	}, nil
}

func (o *orchestrator) ListParts(_ context.Context, input *ListPartsInput) (*ListPartsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	parts := o.catalog.Parts()

	colors := make(map[string][]assets.Color)
	for _, p := range parts {
		if _, ok := colors[p.Category]; ok {
			continue
		}
		if palette := assets.Colors(p.Category); palette != nil {
			colors[p.Category] = palette
		}
	}

	return &ListPartsOutput{Parts: parts, Colors: colors}, nil
}

func (o *orchestrator) ListVariants(_ context.Context, input *ListVariantsInput) (*ListVariantsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &ListVariantsOutput{Variants: o.catalog.Variants()}, nil
}

func (o *orchestrator) ResolveAsset(ctx context.Context, input *ResolveAssetInput) (*ResolveAssetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !entities.IsValidPart(input.Part) {
		return nil, errors.InvalidArgumentf("unknown part %q", input.Part)
	}

	path, ok := o.resolver.ResolveSelection(input.Part, entities.Selection{
		AssetID:      input.AssetID,
		ColorVariant: input.Color,
	})

	out := &ResolveAssetOutput{Path: path, Resolved: ok}

	if input.CheckExists && ok && path != "" && o.prober != nil {
		exists := o.prober.Exists(ctx, path)
		out.Exists = &exists
	}

	return out, nil
}

func (o *orchestrator) RandomizeSelections(_ context.Context, input *RandomizeInput) (*RandomizeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	rng := rand.New(rand.NewSource(input.Seed))
	selections := make(entities.SelectionSet, len(entities.AllParts))

	// Iterate the canonical part order so the same seed always walks the
	// PRNG identically.
	for _, def := range o.catalog.Parts() {
		candidates := make([]entities.AssetDefinition, 0, len(def.Assets))
		for _, a := range def.Assets {
			if a.Enabled {
				candidates = append(candidates, a)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		pick := candidates[rng.Intn(len(candidates))]
		sel := entities.Selection{
			AssetID: pick.ID,
			Enabled: !pick.IsNone(),
		}
		if def.Key == entities.PartBody {
			sel.Enabled = true
		}

		if sel.Enabled && !pick.IsNone() {
			if palette := assets.Colors(def.Category); len(palette) > 0 && rng.Intn(colorVariantChance) == 0 {
				sel.ColorVariant = palette[rng.Intn(len(palette))].Name
			}
		}

		selections[def.Key] = sel
	}

	return &RandomizeOutput{Selections: selections}, nil
}

func (o *orchestrator) ComposeCharacter(ctx context.Context, input *ComposeInput) (*ComposeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Selections == nil {
		return nil, errors.InvalidArgument("selections are required")
	}

	canvas, err := o.compositor.Compose(ctx, input.Selections)
	if err != nil {
		return nil, err
	}

	pngBytes, err := render.EncodePNG(canvas)
	if err != nil {
		return nil, err
	}

	out := &ComposeOutput{
		PNG:     pngBytes,
		DataURL: render.DataURL(pngBytes),
	}

	if input.Thumbnail {
		size := input.ThumbnailSize
		if size <= 0 {
			size = defaultThumbnailSize
		}
		thumbPNG, err := render.EncodePNG(render.Thumbnail(canvas, size))
		if err != nil {
			return nil, err
		}
		out.ThumbnailPNG = thumbPNG
	}

	return out, nil
}

func (o *orchestrator) SaveDraft(ctx context.Context, input *SaveDraftInput) (*SaveDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.Selections == nil {
		return nil, errors.InvalidArgument("selections are required")
	}

	now := o.clock.Now().Unix()
	draft := &entities.CharacterDraft{
		ID:         o.idGen.Generate(),
		SessionID:  input.SessionID,
		Name:       input.Name,
		Selections: input.Selections.Normalize(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	saved, err := o.draftRepo.Save(ctx, characterdraft.SaveInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save draft")
	}

	o.logger.Info("character draft saved", "session_id", input.SessionID, "draft_id", draft.ID)

	return &SaveDraftOutput{Draft: saved.Draft}, nil
}

func (o *orchestrator) GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	got, err := o.draftRepo.GetBySession(ctx, characterdraft.GetBySessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	return &GetDraftOutput{Draft: got.Draft}, nil
}

func (o *orchestrator) RefreshCatalog(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := o.catalog.Load(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to reload catalog")
	}

	// Caches clear after the swap so no stale path survives the reload
	o.resolver.Reset()
	if o.prober != nil {
		o.prober.Reset()
	}

	parts := o.catalog.Parts()
	o.logger.Info("asset catalog refreshed", "parts", len(parts))

	return &RefreshOutput{Parts: len(parts)}, nil
}
