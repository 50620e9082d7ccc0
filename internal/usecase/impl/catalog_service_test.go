package impl

import (
	"context"
	"testing"

	apperrors "herbwise/internal/domain/errors"
	"herbwise/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlant(t *testing.T) {
	svc := NewCatalogService(memory.NewPlantRepository())

	plant, err := svc.GetPlant(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Turmeric", plant.Name)

	_, err = svc.GetPlant(context.Background(), "999")
	assert.ErrorIs(t, err, apperrors.ErrPlantNotFound)
}

func TestSearchPlants(t *testing.T) {
	svc := NewCatalogService(memory.NewPlantRepository())
	ctx := context.Background()

	all, err := svc.SearchPlants(ctx, "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	byName, err := svc.SearchPlants(ctx, "turmeric", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	byCategory, err := svc.SearchPlants(ctx, "", "Immune")
	require.NoError(t, err)
	require.NotEmpty(t, byCategory)
	for _, plant := range byCategory {
		assert.Contains(t, plant.Categories, "Immune")
	}

	none, err := svc.SearchPlants(ctx, "nonexistent-herb", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}
