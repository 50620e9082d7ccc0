// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"herbwise/internal/domain/entity"
	"herbwise/internal/errors"
)

// ErrPlantNotFound is returned when a catalog lookup misses.
var ErrPlantNotFound = errors.New("plant not found")

// PlantRepository is the read-only catalog provider. The underlying
// collection is immutable after load.
type PlantRepository interface {
	// FindByID retrieves a single plant record.
	FindByID(ctx context.Context, id string) (*entity.Plant, error)

	// Search filters case-insensitively over name, scientific name, benefits
	// and uses, intersected with an optional exact category match. Results
	// keep the insertion order of the underlying collection.
	Search(ctx context.Context, query, category string) ([]*entity.Plant, error)

	// All returns the full catalog in insertion order.
	All(ctx context.Context) ([]*entity.Plant, error)
}
