package order

import (
	"context"
	"time"

	"digipasal-be/internal/cart"
	"digipasal-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CheckoutParams struct {
	UserID          string
	PaymentMethod   string
	ShippingAddress string
	Phone           string
}

type Service interface {
	Checkout(ctx context.Context, params CheckoutParams) (*Order, error)
	ListOrders(ctx context.Context, userID string) ([]*Order, error)
	GetOrder(ctx context.Context, userID, orderID string, isAdmin bool) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
}

type service struct {
	repo    Repository
	cartSvc cart.Service
}

func NewService(repo Repository, cartSvc cart.Service) Service {
	return &service{repo: repo, cartSvc: cartSvc}
}

// Checkout snapshots the user's cart into a new order and clears the
// cart. The order starts in status "placed"; the operator moves it
// forward once the manual payment is confirmed.
func (s *service) Checkout(ctx context.Context, params CheckoutParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(zap.String("user_id", params.UserID))

	if params.PaymentMethod == "" {
		return nil, ErrMethodRequired
	}

	items, err := s.cartSvc.Get(ctx, params.UserID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	o := &Order{
		ID:              uuid.NewString(),
		UserID:          params.UserID,
		PaymentMethod:   params.PaymentMethod,
		ShippingAddress: params.ShippingAddress,
		Phone:           params.Phone,
		Status:          StatusPlaced,
		CreatedAt:       time.Now(),
	}
	for _, li := range items {
		o.Items = append(o.Items, Item{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			ProductID: li.ProductID,
			Title:     li.Title,
			Price:     li.Price,
			Quantity:  li.Quantity,
		})
	}

	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		log.Error("checkout failed", zap.Error(err))
		return nil, err
	}

	// The transaction removed the persisted snapshot; drop the in-memory
	// cart as well.
	if err := s.cartSvc.Clear(ctx, params.UserID); err != nil {
		log.Warn("cart clear after checkout failed", zap.Error(err))
	}

	log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.Int64("total", o.Total()),
		zap.Int("items", len(o.Items)),
	)

	return o, nil
}

func (s *service) ListOrders(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.GetOrdersByUser(ctx, userID)
}

// GetOrder returns an order; a non-admin only sees their own.
func (s *service) GetOrder(ctx context.Context, userID, orderID string, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && o.UserID != userID {
		return nil, ErrForbidden
	}

	return o, nil
}

// UpdateStatus is the operator-side transition; the client is strictly a
// read-only projector of the result.
func (s *service) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	return s.repo.UpdateStatus(ctx, orderID, status)
}
