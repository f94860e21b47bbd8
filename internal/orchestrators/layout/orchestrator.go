// Package layout implements the layout orchestrator: it drives dungeon
// generation runs, hands the resulting plan to the placement sink, triggers
// navigation baking, and persists layouts through the repository.
package layout

//go:generate mockgen -destination=mock/mock_service.go -package=layoutmock github.com/KirkDiggler/dungeon-api/internal/orchestrators/layout Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dungeon-api/internal/dungeon"
	"github.com/KirkDiggler/dungeon-api/internal/errors"
	"github.com/KirkDiggler/dungeon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/dungeon-api/internal/repositories/layouts"
)

// Service defines the interface for layout operations
type Service interface {
	// GenerateLayout runs a full generation and persists the result
	GenerateLayout(ctx context.Context, input *GenerateLayoutInput) (*GenerateLayoutOutput, error)

	// GetLayout retrieves a stored layout
	GetLayout(ctx context.Context, input *GetLayoutInput) (*GetLayoutOutput, error)

	// ListLayouts lists stored layout IDs for a seed
	ListLayouts(ctx context.Context, input *ListLayoutsInput) (*ListLayoutsOutput, error)

	// DeleteLayout removes a stored layout
	DeleteLayout(ctx context.Context, input *DeleteLayoutInput) (*DeleteLayoutOutput, error)
}

// Config holds the dependencies for the layout orchestrator
type Config struct {
	Repository  layouts.Repository
	IDGenerator idgen.Generator

	// Sink receives the plan's placement requests after generation. Optional;
	// without one the plan only travels inside the layout.
	Sink dungeon.PlacementSink

	// NavBaker is triggered once per finished layout. Optional; defaults to
	// the logging trigger.
	NavBaker dungeon.NavBaker
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repo  layouts.Repository
	idGen idgen.Generator
	sink  dungeon.PlacementSink
	baker dungeon.NavBaker
}

// NewOrchestrator creates a new layout orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	baker := cfg.NavBaker
	if baker == nil {
		baker = dungeon.LogNavBaker{}
	}

	return &orchestrator{
		repo:  cfg.Repository,
		idGen: cfg.IDGenerator,
		sink:  cfg.Sink,
		baker: baker,
	}, nil
}

// GenerateLayout runs a full generation and persists the result
func (o *orchestrator) GenerateLayout(ctx context.Context, input *GenerateLayoutInput) (*GenerateLayoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	layout, err := dungeon.Generate(input.Seed, input.Config)
	if err != nil {
		return nil, err
	}

	layoutID := o.idGen.Generate()

	slog.Info("layout generated",
		"layout_id", layoutID,
		"seed", input.Seed,
		"rooms", len(layout.Rooms),
		"enabled_rooms", layout.EnabledRoomCount(),
		"walls", len(layout.Walls),
		"doors", len(layout.Doors),
		"uncovered_cells", len(layout.Plan.Uncovered),
	)

	if err := o.dispatchPlan(ctx, layout); err != nil {
		return nil, errors.Wrap(err, "failed to dispatch placement plan")
	}

	if err := o.baker.Bake(ctx); err != nil {
		// Baking is a trigger for an external collaborator; its failure
		// does not invalidate the layout.
		slog.Warn("navigation bake failed", "layout_id", layoutID, "error", err)
	}

	if _, err := o.repo.Save(ctx, &layouts.SaveInput{
		Data: &layouts.LayoutData{
			ID:     layoutID,
			Seed:   input.Seed,
			Layout: layout,
		},
	}); err != nil {
		return nil, errors.Wrap(err, "failed to save layout")
	}

	return &GenerateLayoutOutput{
		LayoutID: layoutID,
		Layout:   layout,
	}, nil
}

func (o *orchestrator) dispatchPlan(ctx context.Context, layout *dungeon.Layout) error {
	if o.sink == nil {
		return nil
	}
	for _, tile := range layout.Plan.Tiles {
		if err := o.sink.PlaceTile(ctx, tile); err != nil {
			return err
		}
	}
	for _, floor := range layout.Plan.Floors {
		if err := o.sink.PlaceFloor(ctx, floor); err != nil {
			return err
		}
	}
	return nil
}

// GetLayout retrieves a stored layout
func (o *orchestrator) GetLayout(ctx context.Context, input *GetLayoutInput) (*GetLayoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LayoutID == "" {
		return nil, errors.InvalidArgument("layout ID is required")
	}

	out, err := o.repo.Get(ctx, &layouts.GetInput{LayoutID: input.LayoutID})
	if err != nil {
		return nil, err
	}

	return &GetLayoutOutput{
		LayoutID:  out.Data.ID,
		Seed:      out.Data.Seed,
		CreatedAt: out.Data.CreatedAt,
		Layout:    out.Data.Layout,
	}, nil
}

// ListLayouts lists stored layout IDs for a seed
func (o *orchestrator) ListLayouts(ctx context.Context, input *ListLayoutsInput) (*ListLayoutsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.repo.ListBySeed(ctx, &layouts.ListBySeedInput{Seed: input.Seed})
	if err != nil {
		return nil, err
	}

	return &ListLayoutsOutput{LayoutIDs: out.LayoutIDs}, nil
}

// DeleteLayout removes a stored layout
func (o *orchestrator) DeleteLayout(ctx context.Context, input *DeleteLayoutInput) (*DeleteLayoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LayoutID == "" {
		return nil, errors.InvalidArgument("layout ID is required")
	}

	if _, err := o.repo.Delete(ctx, &layouts.DeleteInput{LayoutID: input.LayoutID}); err != nil {
		return nil, err
	}

	return &DeleteLayoutOutput{Success: true}, nil
}
