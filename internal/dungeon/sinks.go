package dungeon

import (
	"context"
	"log/slog"
)

//go:generate mockgen -destination=mock/mock_sinks.go -package=dungeonmock github.com/KirkDiggler/dungeon-api/internal/dungeon PlacementSink,NavBaker

// PlacementSink receives the plan's placement requests. Implementations map
// a tile category to a concrete visual asset; the generator never does.
type PlacementSink interface {
	PlaceTile(ctx context.Context, req TilePlacement) error
	PlaceFloor(ctx context.Context, req FloorPlacement) error
}

// NavBaker is triggered exactly once after a layout is final. It takes no
// inputs beyond the trigger itself.
type NavBaker interface {
	Bake(ctx context.Context) error
}

// RecordingSink collects placement requests in memory. Test double and
// default sink for callers that only want the plan.
type RecordingSink struct {
	Tiles  []TilePlacement
	Floors []FloorPlacement
}

// PlaceTile records a wall tile request.
func (s *RecordingSink) PlaceTile(_ context.Context, req TilePlacement) error {
	s.Tiles = append(s.Tiles, req)
	return nil
}

// PlaceFloor records a floor tile request.
func (s *RecordingSink) PlaceFloor(_ context.Context, req FloorPlacement) error {
	s.Floors = append(s.Floors, req)
	return nil
}

// LogNavBaker is the default baking trigger: it only notes that the layout
// went final.
type LogNavBaker struct{}

// Bake logs the trigger and succeeds.
func (LogNavBaker) Bake(ctx context.Context) error {
	slog.InfoContext(ctx, "navigation bake triggered")
	return nil
}
