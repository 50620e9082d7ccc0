package impl

import (
	"context"
	"time"

	"herbwise/internal/domain/entity"
	apperrors "herbwise/internal/domain/errors"
	"herbwise/internal/domain/pricing"
	"herbwise/internal/domain/repository"
	"herbwise/internal/errors"
	"herbwise/internal/usecase"

	"github.com/google/uuid"
)

type cartService struct {
	plantRepo repository.PlantRepository
	cartRepo  repository.CartRepository
	now       func() time.Time
}

// NewCartService creates a new cart store instance.
func NewCartService(plantRepo repository.PlantRepository, cartRepo repository.CartRepository) usecase.CartUsecase {
	return &cartService{
		plantRepo: plantRepo,
		cartRepo:  cartRepo,
		now:       time.Now,
	}
}

// AddToCart adds quantity units of the plant in the chosen form. The unit
// price is parsed once from the plant's cost string; a line already holding
// the same (plant, form) pair absorbs the quantity without re-deriving the
// price.
func (s *cartService) AddToCart(ctx context.Context, userID uuid.UUID, plantID string, form entity.PlantForm, quantity int) (*entity.CartItem, error) {
	if !form.Valid() {
		return nil, apperrors.ErrInvalidPlantForm
	}
	if quantity <= 0 {
		return nil, apperrors.ErrInvalidQuantity
	}

	plant, err := s.plantRepo.FindByID(ctx, plantID)
	if err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, apperrors.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "find plant")
	}

	items, err := s.cartRepo.Items(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}

	for i := range items {
		if items[i].Plant != nil && items[i].Plant.ID == plantID && items[i].Form == form {
			items[i].Quantity += quantity
			if err := s.cartRepo.Save(ctx, userID, items); err != nil {
				return nil, errors.Wrap(err, "save cart")
			}

			return &items[i], nil
		}
	}

	item := entity.CartItem{
		ID:       entity.NewCartItemID(plantID, form, s.now()),
		Plant:    plant,
		Form:     form,
		Quantity: quantity,
		Price:    pricing.ParseUnitPrice(plant.Cost.For(form)),
	}
	items = append(items, item)

	if err := s.cartRepo.Save(ctx, userID, items); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	return &item, nil
}

// RemoveFromCart removes the matching line; removing an absent line is a
// no-op.
func (s *cartService) RemoveFromCart(ctx context.Context, userID uuid.UUID, itemID string) error {
	items, err := s.cartRepo.Items(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "load cart")
	}

	filtered := items[:0:0]
	for _, item := range items {
		if item.ID != itemID {
			filtered = append(filtered, item)
		}
	}

	return errors.Wrap(s.cartRepo.Save(ctx, userID, filtered), "save cart")
}

// UpdateQuantity replaces a line's quantity in place; zero or below removes
// the line.
func (s *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, itemID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, userID, itemID)
	}

	items, err := s.cartRepo.Items(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "load cart")
	}

	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity

			break
		}
	}

	return errors.Wrap(s.cartRepo.Save(ctx, userID, items), "save cart")
}

// ClearCart empties the cart.
func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	return errors.Wrap(s.cartRepo.Clear(ctx, userID), "clear cart")
}

// GetCart returns the current snapshot with derived totals.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartSummary, error) {
	items, err := s.cartRepo.Items(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}
	if items == nil {
		items = []entity.CartItem{}
	}

	return &usecase.CartSummary{
		Items:      items,
		Total:      entity.CartTotal(items),
		ItemsCount: entity.CartItemsCount(items),
	}, nil
}
