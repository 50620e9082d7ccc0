package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

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

type orderTestEnv struct {
	svc       *orderService
	cart      usecase.CartUsecase
	offerRepo *fakeOfferRepo
	scheduler *fakeScheduler
	userID    uuid.UUID
	clock     *time.Time
}

func newOrderTestEnv(t *testing.T, offers ...*entity.Offer) *orderTestEnv {
	t.Helper()

	store := kvstore.NewMemoryStore()
	logger := testLogger()
	cartRepo := kv.NewCartRepository(store, logger)
	orderRepo := kv.NewOrderRepository(store, logger)

	offerRepo := &fakeOfferRepo{offers: offers}
	offerSvc := NewOfferService(offerRepo).(*offerService)
	offerSvc.now = func() time.Time { return offerTestTime }

	scheduler := &fakeScheduler{}
	clock := offerTestTime

	suffixSeq := 0
	svc := &orderService{
		cartRepo:         cartRepo,
		orderRepo:        orderRepo,
		offerUC:          offerSvc,
		scheduler:        scheduler,
		logger:           logger,
		confirmDelay:     2 * time.Second,
		deliveryLeadTime: 7 * 24 * time.Hour,
		now:              func() time.Time { return clock },
		randSuffix: func() string {
			suffixSeq++

			return fmt.Sprintf("suffix%03d", suffixSeq)
		},
	}

	return &orderTestEnv{
		svc:       svc,
		cart:      NewCartService(memory.NewPlantRepository(), cartRepo),
		offerRepo: offerRepo,
		scheduler: scheduler,
		userID:    uuid.New(),
		clock:     &clock,
	}
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	env := newOrderTestEnv(t)

	_, err := env.svc.CreateOrder(context.Background(), env.userID, usecase.CreateOrderInput{})
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
}

func TestCreateOrder_SnapshotsCartAndBurnsOffer(t *testing.T) {
	env := newOrderTestEnv(t, welcomeOffer())
	ctx := context.Background()

	// Turmeric fresh $6 x5 plus ginger fresh $4 x3 puts the subtotal at 42.
	_, err := env.cart.AddToCart(ctx, env.userID, "1", entity.FormFresh, 5)
	require.NoError(t, err)
	_, err = env.cart.AddToCart(ctx, env.userID, "2", entity.FormFresh, 3)
	require.NoError(t, err)

	discount, err := env.svc.offerUC.DiscountAmount(ctx, "WELCOME25", 42)
	require.NoError(t, err)
	assert.InDelta(t, 10.5, discount, 1e-9)

	order, err := env.svc.CreateOrder(ctx, env.userID, usecase.CreateOrderInput{
		PaymentMethod:  "card",
		DiscountAmount: discount,
		OfferCode:      "WELCOME25",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 31.5, order.Total, 1e-9)
	assert.Equal(t, entity.NewOrderID(offerTestTime, "suffix001"), order.ID)
	assert.Equal(t, entity.NewTrackingNumber(offerTestTime), order.TrackingNumber)
	assert.Equal(t, offerTestTime.Add(7*24*time.Hour), order.EstimatedDelivery)

	// The offer is burned exactly once and the cart is emptied.
	assert.Equal(t, 1, env.offerRepo.offers[0].UsedCount)

	summary, err := env.cart.GetCart(ctx, env.userID)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestCreateOrder_InapplicableOfferLeavesTotalIntact(t *testing.T) {
	env := newOrderTestEnv(t, &entity.Offer{
		ID:             "bulk30",
		Code:           "BULK30",
		DiscountType:   entity.DiscountFixed,
		DiscountValue:  30,
		MinOrderAmount: 150,
		StartDate:      offerTestTime.Add(-24 * time.Hour),
		EndDate:        offerTestTime.Add(14 * 24 * time.Hour),
		IsActive:       true,
		UsageLimit:     50,
	})
	ctx := context.Background()

	// Turmeric supplement $15 plus echinacea fresh $8 x5 totals 55, below the
	// offer's minimum.
	_, err := env.cart.AddToCart(ctx, env.userID, "1", entity.FormSupplement, 1)
	require.NoError(t, err)
	_, err = env.cart.AddToCart(ctx, env.userID, "3", entity.FormFresh, 5)
	require.NoError(t, err)

	validation, err := env.svc.offerUC.ValidateOffer(ctx, "BULK30", 55)
	require.NoError(t, err)
	assert.False(t, validation.Valid)

	discount, err := env.svc.offerUC.DiscountAmount(ctx, "BULK30", 55)
	require.NoError(t, err)
	assert.Zero(t, discount)

	order, err := env.svc.CreateOrder(ctx, env.userID, usecase.CreateOrderInput{DiscountAmount: discount})
	require.NoError(t, err)
	assert.InDelta(t, 55.0, order.Total, 1e-9)
	assert.Zero(t, env.offerRepo.offers[0].UsedCount)

	summary, err := env.cart.GetCart(ctx, env.userID)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestCreateOrder_ConfirmsAfterDelay(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	_, err := env.cart.AddToCart(ctx, env.userID, "1", entity.FormFresh, 1)
	require.NoError(t, err)

	order, err := env.svc.CreateOrder(ctx, env.userID, usecase.CreateOrderInput{})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)

	env.scheduler.Flush()

	confirmed, err := env.svc.GetOrder(ctx, env.userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, confirmed.Status)
}

func TestCreateOrder_ConfirmationSkipsCancelledOrder(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	_, err := env.cart.AddToCart(ctx, env.userID, "1", entity.FormFresh, 1)
	require.NoError(t, err)

	order, err := env.svc.CreateOrder(ctx, env.userID, usecase.CreateOrderInput{})
	require.NoError(t, err)

	require.NoError(t, env.svc.UpdateOrderStatus(ctx, env.userID, order.ID, entity.OrderCancelled))

	env.scheduler.Flush()

	cancelled, err := env.svc.GetOrder(ctx, env.userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, cancelled.Status)
}

func TestUpdateOrderStatus_RejectsIllegalTransitions(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	_, err := env.cart.AddToCart(ctx, env.userID, "1", entity.FormFresh, 1)
	require.NoError(t, err)

	order, err := env.svc.CreateOrder(ctx, env.userID, usecase.CreateOrderInput{})
	require.NoError(t, err)

	err = env.svc.UpdateOrderStatus(ctx, env.userID, order.ID, entity.OrderShipped)
	assert.ErrorIs(t, err, apperrors.ErrIllegalStatusTransition)

	err = env.svc.UpdateOrderStatus(ctx, env.userID, order.ID, "refunded")
	assert.ErrorIs(t, err, apperrors.ErrInvalidOrderStatus)

	err = env.svc.UpdateOrderStatus(ctx, env.userID, "ORD-missing", entity.OrderConfirmed)
	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
}

func TestUpdateOrderStatus_WalksForwardChain(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	_, err := env.cart.AddToCart(ctx, env.userID, "1", entity.FormFresh, 1)
	require.NoError(t, err)

	order, err := env.svc.CreateOrder(ctx, env.userID, usecase.CreateOrderInput{})
	require.NoError(t, err)

	for _, status := range []entity.OrderStatus{
		entity.OrderConfirmed,
		entity.OrderProcessing,
		entity.OrderShipped,
		entity.OrderDelivered,
	} {
		require.NoError(t, env.svc.UpdateOrderStatus(ctx, env.userID, order.ID, status))
	}

	// Delivered is terminal.
	err = env.svc.UpdateOrderStatus(ctx, env.userID, order.ID, entity.OrderCancelled)
	assert.ErrorIs(t, err, apperrors.ErrIllegalStatusTransition)
}

func TestListOrders_MostRecentFirst(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	_, err := env.cart.AddToCart(ctx, env.userID, "1", entity.FormFresh, 1)
	require.NoError(t, err)
	first, err := env.svc.CreateOrder(ctx, env.userID, usecase.CreateOrderInput{})
	require.NoError(t, err)

	*env.clock = env.clock.Add(time.Minute)

	_, err = env.cart.AddToCart(ctx, env.userID, "2", entity.FormFresh, 1)
	require.NoError(t, err)
	second, err := env.svc.CreateOrder(ctx, env.userID, usecase.CreateOrderInput{})
	require.NoError(t, err)

	orders, err := env.svc.ListOrders(ctx, env.userID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestGetOrder_UnknownID(t *testing.T) {
	env := newOrderTestEnv(t)

	_, err := env.svc.GetOrder(context.Background(), env.userID, "ORD-missing")
	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
}
