// Package layouts stores generated dungeon layouts.
package layouts

//go:generate mockgen -destination=mock/mock_repository.go -package=layoutsmock github.com/KirkDiggler/dungeon-api/internal/repositories/layouts Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/dungeon-api/internal/dungeon"
)

// Repository defines the storage interface for generated layouts
type Repository interface {
	// Save stores a layout
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a layout by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// ListBySeed returns the IDs of layouts generated from a seed
	ListBySeed(ctx context.Context, input *ListBySeedInput) (*ListBySeedOutput, error)

	// Delete removes a layout
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// LayoutData is the persistent form of a generated layout
type LayoutData struct {
	ID        string          `json:"id"`
	Seed      int64           `json:"seed"`
	CreatedAt time.Time       `json:"createdAt"`
	Layout    *dungeon.Layout `json:"layout"`
}

// SaveInput defines the request for saving a layout
type SaveInput struct {
	Data *LayoutData
}

// SaveOutput defines the response for saving a layout
type SaveOutput struct {
	Success bool
}

// GetInput defines the request for retrieving a layout
type GetInput struct {
	LayoutID string
}

// GetOutput defines the response for retrieving a layout
type GetOutput struct {
	Data *LayoutData
}

// ListBySeedInput defines the request for listing layouts by seed
type ListBySeedInput struct {
	Seed int64
}

// ListBySeedOutput defines the response for listing layouts by seed
type ListBySeedOutput struct {
	LayoutIDs []string
}

// DeleteInput defines the request for deleting a layout
type DeleteInput struct {
	LayoutID string
}

// DeleteOutput defines the response for deleting a layout
type DeleteOutput struct {
	Success bool
}
