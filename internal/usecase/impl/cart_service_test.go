package impl

import (
	"context"
	"testing"

	"herbwise/internal/domain/entity"
	apperrors "herbwise/internal/domain/errors"
	"herbwise/internal/infra/kvstore"
	"herbwise/internal/infra/persistence/kv"
	"herbwise/internal/infra/persistence/memory"
	"herbwise/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartService(t *testing.T) (usecase.CartUsecase, uuid.UUID) {
	t.Helper()

	cartRepo := kv.NewCartRepository(kvstore.NewMemoryStore(), testLogger())

	return NewCartService(memory.NewPlantRepository(), cartRepo), uuid.New()
}

func TestAddToCart_ParsesUnitPrice(t *testing.T) {
	svc, userID := newTestCartService(t)

	item, err := svc.AddToCart(context.Background(), userID, "1", entity.FormFresh, 2)
	require.NoError(t, err)

	// Turmeric fresh is listed as "$6-10/lb".
	assert.InDelta(t, 6.0, item.Price, 1e-9)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "Turmeric", item.Plant.Name)
}

func TestAddToCart_MergesSamePlantAndForm(t *testing.T) {
	svc, userID := newTestCartService(t)
	ctx := context.Background()

	first, err := svc.AddToCart(ctx, userID, "1", entity.FormFresh, 2)
	require.NoError(t, err)

	merged, err := svc.AddToCart(ctx, userID, "1", entity.FormFresh, 3)
	require.NoError(t, err)
	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, 5, merged.Quantity)

	summary, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, summary.Items, 1)
	assert.Equal(t, 5, summary.ItemsCount)
}

func TestAddToCart_DifferentFormsStaySeparate(t *testing.T) {
	svc, userID := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, userID, "1", entity.FormFresh, 1)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, userID, "1", entity.FormDried, 1)
	require.NoError(t, err)

	summary, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, summary.Items, 2)
}

func TestAddToCart_RejectsBadInput(t *testing.T) {
	svc, userID := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, userID, "1", "powder", 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPlantForm)

	_, err = svc.AddToCart(ctx, userID, "1", entity.FormFresh, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidQuantity)

	_, err = svc.AddToCart(ctx, userID, "999", entity.FormFresh, 1)
	assert.ErrorIs(t, err, apperrors.ErrPlantNotFound)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	svc, userID := newTestCartService(t)
	ctx := context.Background()

	item, err := svc.AddToCart(ctx, userID, "2", entity.FormFresh, 2)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQuantity(ctx, userID, item.ID, 0))

	summary, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestUpdateQuantity_ReplacesInPlace(t *testing.T) {
	svc, userID := newTestCartService(t)
	ctx := context.Background()

	item, err := svc.AddToCart(ctx, userID, "2", entity.FormFresh, 2)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQuantity(ctx, userID, item.ID, 7))

	summary, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 7, summary.Items[0].Quantity)
}

func TestRemoveFromCart_IsIdempotent(t *testing.T) {
	svc, userID := newTestCartService(t)
	ctx := context.Background()

	item, err := svc.AddToCart(ctx, userID, "1", entity.FormFresh, 1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFromCart(ctx, userID, item.ID))
	require.NoError(t, svc.RemoveFromCart(ctx, userID, item.ID))

	summary, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestGetCart_ComputesTotals(t *testing.T) {
	svc, userID := newTestCartService(t)
	ctx := context.Background()

	// Turmeric fresh $6 x2, ginger fresh $4 x3.
	_, err := svc.AddToCart(ctx, userID, "1", entity.FormFresh, 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, userID, "2", entity.FormFresh, 3)
	require.NoError(t, err)

	summary, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.InDelta(t, 24.0, summary.Total, 1e-9)
	assert.Equal(t, 5, summary.ItemsCount)
}

func TestClearCart(t *testing.T) {
	svc, userID := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, userID, "1", entity.FormFresh, 1)
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx, userID))

	summary, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Zero(t, summary.Total)
}

func TestCarts_AreIsolatedPerUser(t *testing.T) {
	store := kvstore.NewMemoryStore()
	svc := NewCartService(memory.NewPlantRepository(), kv.NewCartRepository(store, testLogger()))
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.AddToCart(ctx, alice, "1", entity.FormFresh, 1)
	require.NoError(t, err)

	summary, err := svc.GetCart(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}
