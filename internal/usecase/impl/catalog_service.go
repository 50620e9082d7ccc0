package impl

import (
	"context"

	"herbwise/internal/domain/entity"
	apperrors "herbwise/internal/domain/errors"
	"herbwise/internal/domain/repository"
	"herbwise/internal/errors"
	"herbwise/internal/usecase"
)

type catalogService struct {
	plantRepo repository.PlantRepository
}

// NewCatalogService creates a new catalog reader instance.
func NewCatalogService(plantRepo repository.PlantRepository) usecase.CatalogUsecase {
	return &catalogService{plantRepo: plantRepo}
}

func (s *catalogService) GetPlant(ctx context.Context, id string) (*entity.Plant, error) {
	plant, err := s.plantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, apperrors.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "find plant")
	}

	return plant, nil
}

func (s *catalogService) SearchPlants(ctx context.Context, query, category string) ([]*entity.Plant, error) {
	plants, err := s.plantRepo.Search(ctx, query, category)
	if err != nil {
		return nil, errors.Wrap(err, "search plants")
	}

	return plants, nil
}
