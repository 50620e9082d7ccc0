package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"herbwise/config"
	"herbwise/internal/domain/entity"
	apperrors "herbwise/internal/domain/errors"
	"herbwise/internal/domain/repository"
	"herbwise/internal/domain/service"
	"herbwise/internal/errors"
	"herbwise/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const orderIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

type orderService struct {
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	offerUC   usecase.OfferUsecase
	scheduler service.Scheduler
	logger    *slog.Logger

	confirmDelay     time.Duration
	deliveryLeadTime time.Duration

	now        func() time.Time
	randSuffix func() string
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	CartRepo  repository.CartRepository
	OrderRepo repository.OrderRepository
	OfferUC   usecase.OfferUsecase
	Scheduler service.Scheduler
	Logger    *slog.Logger
	Config    *config.Config
}

// NewOrderService creates a new order lifecycle manager instance.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		cartRepo:         params.CartRepo,
		orderRepo:        params.OrderRepo,
		offerUC:          params.OfferUC,
		scheduler:        params.Scheduler,
		logger:           params.Logger,
		confirmDelay:     params.Config.Orders.ConfirmDelay,
		deliveryLeadTime: params.Config.Orders.DeliveryLeadTime,
		now:              time.Now,
		randSuffix:       randomSuffix,
	}
}

// CreateOrder snapshots the user's cart into a new pending order. The cart is
// cleared, the applied offer's usage is burned exactly once, and a single
// deferred pending-to-confirmed transition is scheduled.
func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input usecase.CreateOrderInput) (*entity.Order, error) {
	items, err := s.cartRepo.Items(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}
	if len(items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	// Snapshot by value so later cart mutations cannot leak into the order.
	snapshot := make([]entity.CartItem, len(items))
	copy(snapshot, items)

	createdAt := s.now()
	order := &entity.Order{
		ID:                entity.NewOrderID(createdAt, s.randSuffix()),
		Items:             snapshot,
		Total:             entity.CartTotal(snapshot) - input.DiscountAmount,
		Status:            entity.OrderPending,
		CreatedAt:         createdAt,
		EstimatedDelivery: createdAt.Add(s.deliveryLeadTime),
		TrackingNumber:    entity.NewTrackingNumber(createdAt),
		ShippingAddress:   input.ShippingAddress,
		PaymentMethod:     input.PaymentMethod,
		DiscountAmount:    input.DiscountAmount,
		OfferCode:         input.OfferCode,
	}

	if err := s.orderRepo.Insert(ctx, userID, order); err != nil {
		return nil, errors.Wrap(err, "insert order")
	}

	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "clear cart after order placement")
	}

	if input.OfferCode != "" {
		if err := s.offerUC.ApplyOffer(ctx, input.OfferCode); err != nil {
			return nil, errors.Wrap(err, "apply offer")
		}
	}

	s.scheduleConfirmation(userID, order.ID)

	return order, nil
}

// scheduleConfirmation queues the single automatic pending-to-confirmed
// transition. The task no-ops if the order has already left pending.
func (s *orderService) scheduleConfirmation(userID uuid.UUID, orderID string) {
	s.scheduler.Schedule(s.confirmDelay, func() {
		ctx := context.Background()

		order, err := s.orderRepo.FindByID(ctx, userID, orderID)
		if err != nil {
			s.logger.Error("Deferred confirmation lookup failed",
				slog.String("orderID", orderID),
				slog.Any("error", err))

			return
		}

		if order.Status != entity.OrderPending {
			return
		}

		if err := s.orderRepo.UpdateStatus(ctx, userID, orderID, entity.OrderConfirmed); err != nil {
			s.logger.Error("Deferred confirmation update failed",
				slog.String("orderID", orderID),
				slog.Any("error", err))
		}
	})
}

// UpdateOrderStatus moves an order to a new status, rejecting illegal
// lifecycle transitions.
func (s *orderService) UpdateOrderStatus(ctx context.Context, userID uuid.UUID, orderID string, status entity.OrderStatus) error {
	if !status.Valid() {
		return apperrors.ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.FindByID(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return apperrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "find order")
	}

	if !order.Status.CanTransitionTo(status) {
		return apperrors.ErrIllegalStatusTransition
	}

	return errors.Wrap(s.orderRepo.UpdateStatus(ctx, userID, orderID, status), "update order status")
}

// GetOrder retrieves one of the user's orders.
func (s *orderService) GetOrder(ctx context.Context, userID uuid.UUID, orderID string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "find order")
	}

	return order, nil
}

// ListOrders returns the user's order history, most-recent-first.
func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	return orders, nil
}

func randomSuffix() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = orderIDAlphabet[rand.IntN(len(orderIDAlphabet))]
	}

	return string(suffix)
}
