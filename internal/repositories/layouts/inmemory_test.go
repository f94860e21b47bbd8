package layouts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-api/internal/repositories/layouts"
)

func TestInMemoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := layouts.NewInMemory()

	_, err := repo.Save(ctx, &layouts.SaveInput{
		Data: &layouts.LayoutData{ID: "lay_1", Seed: 42},
	})
	require.NoError(t, err)

	_, err = repo.Save(ctx, &layouts.SaveInput{
		Data: &layouts.LayoutData{ID: "lay_1", Seed: 42},
	})
	assert.Error(t, err, "duplicate IDs are rejected")

	got, err := repo.Get(ctx, &layouts.GetInput{LayoutID: "lay_1"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Data.Seed)

	list, err := repo.ListBySeed(ctx, &layouts.ListBySeedInput{Seed: 42})
	require.NoError(t, err)
	assert.Equal(t, []string{"lay_1"}, list.LayoutIDs)

	_, err = repo.Delete(ctx, &layouts.DeleteInput{LayoutID: "lay_1"})
	require.NoError(t, err)

	_, err = repo.Get(ctx, &layouts.GetInput{LayoutID: "lay_1"})
	assert.Error(t, err)

	list, err = repo.ListBySeed(ctx, &layouts.ListBySeedInput{Seed: 42})
	require.NoError(t, err)
	assert.Empty(t, list.LayoutIDs)
}

func TestInMemoryValidation(t *testing.T) {
	ctx := context.Background()
	repo := layouts.NewInMemory()

	_, err := repo.Save(ctx, nil)
	assert.Error(t, err)

	_, err = repo.Save(ctx, &layouts.SaveInput{Data: &layouts.LayoutData{}})
	assert.Error(t, err, "empty ID is rejected")

	_, err = repo.Get(ctx, &layouts.GetInput{})
	assert.Error(t, err)

	_, err = repo.Delete(ctx, &layouts.DeleteInput{LayoutID: "missing"})
	assert.Error(t, err)
}
