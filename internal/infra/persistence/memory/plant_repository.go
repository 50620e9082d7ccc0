package memory

import (
	"context"
	"slices"
	"strings"

	"herbwise/internal/domain/entity"
	"herbwise/internal/domain/repository"
)

// PlantRepository is the read-only catalog provider. The collection is
// immutable after load, so reads need no locking.
type PlantRepository struct {
	plants []*entity.Plant
	byID   map[string]*entity.Plant
}

// NewPlantRepository loads the seeded catalog.
func NewPlantRepository() repository.PlantRepository {
	plants := SeedPlants()
	byID := make(map[string]*entity.Plant, len(plants))
	for _, plant := range plants {
		byID[plant.ID] = plant
	}

	return &PlantRepository{plants: plants, byID: byID}
}

// FindByID retrieves a single plant record.
func (r *PlantRepository) FindByID(_ context.Context, id string) (*entity.Plant, error) {
	plant, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrPlantNotFound
	}

	return plant, nil
}

// All returns the full catalog in insertion order.
func (r *PlantRepository) All(_ context.Context) ([]*entity.Plant, error) {
	return slices.Clone(r.plants), nil
}

// Search filters case-insensitively over name, scientific name, benefits and
// uses, intersected with an optional exact category match. Results keep the
// insertion order of the underlying collection.
func (r *PlantRepository) Search(_ context.Context, query, category string) ([]*entity.Plant, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	var matches []*entity.Plant
	for _, plant := range r.plants {
		if needle != "" && !matchesQuery(plant, needle) {
			continue
		}
		if category != "" && !slices.Contains(plant.Categories, category) {
			continue
		}
		matches = append(matches, plant)
	}

	return matches, nil
}

func matchesQuery(plant *entity.Plant, needle string) bool {
	if strings.Contains(strings.ToLower(plant.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(plant.ScientificName), needle) {
		return true
	}
	for _, benefit := range plant.Benefits {
		if strings.Contains(strings.ToLower(benefit), needle) {
			return true
		}
	}
	for _, use := range plant.Uses {
		if strings.Contains(strings.ToLower(use), needle) {
			return true
		}
	}

	return false
}
