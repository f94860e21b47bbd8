package layout

import (
	"time"

	"github.com/KirkDiggler/dungeon-api/internal/dungeon"
)

// GenerateLayoutInput defines the request for generating a layout
type GenerateLayoutInput struct {
	Seed   int64
	Config dungeon.Config
}

// GenerateLayoutOutput defines the response for generating a layout
type GenerateLayoutOutput struct {
	LayoutID string
	Layout   *dungeon.Layout
}

// GetLayoutInput defines the request for retrieving a layout
type GetLayoutInput struct {
	LayoutID string
}

// GetLayoutOutput defines the response for retrieving a layout
type GetLayoutOutput struct {
	LayoutID  string
	Seed      int64
	CreatedAt time.Time
	Layout    *dungeon.Layout
}

// ListLayoutsInput defines the request for listing layouts by seed
type ListLayoutsInput struct {
	Seed int64
}

// ListLayoutsOutput defines the response for listing layouts by seed
type ListLayoutsOutput struct {
	LayoutIDs []string
}

// DeleteLayoutInput defines the request for deleting a layout
type DeleteLayoutInput struct {
	LayoutID string
}

// DeleteLayoutOutput defines the response for deleting a layout
type DeleteLayoutOutput struct {
	Success bool
}
