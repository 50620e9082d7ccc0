// Package usecase defines the application's business use case interfaces.
package usecase

import (
	"context"

	"herbwise/internal/domain/entity"
)

// CatalogUsecase exposes the read-only plant catalog.
type CatalogUsecase interface {
	// GetPlant retrieves a single plant record by id.
	GetPlant(ctx context.Context, id string) (*entity.Plant, error)

	// SearchPlants filters the catalog by free text and optional category.
	// An empty query and category returns the full catalog.
	SearchPlants(ctx context.Context, query, category string) ([]*entity.Plant, error)
}
