package layouts

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dungeon-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu     sync.RWMutex
	store  map[string]*LayoutData
	bySeed map[int64][]string
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store:  make(map[string]*LayoutData),
		bySeed: make(map[int64][]string),
	}
}

// Save stores a layout
func (r *InMemoryRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Data == nil {
		return nil, errors.InvalidArgument("layout data is required")
	}
	if input.Data.ID == "" {
		return nil, errors.InvalidArgument("layout ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Data.ID]; exists {
		return nil, errors.AlreadyExistsf("layout with ID %s already exists", input.Data.ID)
	}

	r.store[input.Data.ID] = input.Data
	r.bySeed[input.Data.Seed] = append(r.bySeed[input.Data.Seed], input.Data.ID)

	return &SaveOutput{Success: true}, nil
}

// Get retrieves a layout by ID
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LayoutID == "" {
		return nil, errors.InvalidArgument("layout ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.store[input.LayoutID]
	if !exists {
		return nil, errors.NotFoundf("layout with ID %s not found", input.LayoutID)
	}

	return &GetOutput{Data: data}, nil
}

// ListBySeed returns the IDs of layouts generated from a seed
func (r *InMemoryRepository) ListBySeed(ctx context.Context, input *ListBySeedInput) (*ListBySeedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.bySeed[input.Seed]))
	copy(ids, r.bySeed[input.Seed])

	return &ListBySeedOutput{LayoutIDs: ids}, nil
}

// Delete removes a layout
func (r *InMemoryRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LayoutID == "" {
		return nil, errors.InvalidArgument("layout ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.store[input.LayoutID]
	if !exists {
		return nil, errors.NotFoundf("layout with ID %s not found", input.LayoutID)
	}

	delete(r.store, input.LayoutID)

	ids := r.bySeed[data.Seed]
	for i, id := range ids {
		if id == input.LayoutID {
			r.bySeed[data.Seed] = append(ids[:i], ids[i+1:]...)
			break
		}
	}

	return &DeleteOutput{Success: true}, nil
}
