package cart

import (
	"context"
	"sync"

	"digipasal-be/internal/logger"
	"digipasal-be/internal/product"

	"go.uber.org/zap"
)

// Service maintains the ordered set of cart line items in memory and
// mirrors every change to the persistent snapshot slot.
type Service interface {
	Get(ctx context.Context, userID string) ([]LineItem, error)
	Add(ctx context.Context, userID string, p product.Product) ([]LineItem, error)
	SetQuantity(ctx context.Context, userID, productID string, quantity int) ([]LineItem, error)
	Remove(ctx context.Context, userID, productID string) ([]LineItem, error)
	Clear(ctx context.Context, userID string) error
}

type service struct {
	repo Repository

	mu    sync.Mutex
	carts map[string][]LineItem
}

func NewService(repo Repository) Service {
	return &service{
		repo:  repo,
		carts: make(map[string][]LineItem),
	}
}

// items returns the in-memory cart, loading the persisted snapshot on the
// first access of a session.
func (s *service) items(ctx context.Context, userID string) ([]LineItem, error) {
	if existing, ok := s.carts[userID]; ok {
		return existing, nil
	}

	loaded, err := s.repo.LoadSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.carts[userID] = loaded
	return loaded, nil
}

// persist mirrors the collection to storage. Fire-and-forget: a failed
// write is logged, not surfaced, and the next change overwrites it.
func (s *service) persist(ctx context.Context, userID string, items []LineItem) {
	if err := s.repo.SaveSnapshot(ctx, userID, items); err != nil {
		logger.FromCtx(ctx).Warn("cart persistence failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

func (s *service) Get(ctx context.Context, userID string) ([]LineItem, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.items(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]LineItem, len(items))
	copy(out, items)
	return out, nil
}

// Add appends a line item with quantity 1 unless the product is already
// present, in which case the cart is left unchanged.
func (s *service) Add(ctx context.Context, userID string, p product.Product) ([]LineItem, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	if p.ID == "" {
		return nil, ErrProductRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.items(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, li := range items {
		if li.ProductID == p.ID {
			out := make([]LineItem, len(items))
			copy(out, items)
			return out, nil
		}
	}

	items = append(items, NewLineItem(p))
	s.carts[userID] = items
	s.persist(ctx, userID, items)

	out := make([]LineItem, len(items))
	copy(out, items)
	return out, nil
}

// SetQuantity is the explicit quantity mutator; zero or negative removes
// the line item.
func (s *service) SetQuantity(ctx context.Context, userID, productID string, quantity int) ([]LineItem, error) {
	if quantity <= 0 {
		return s.Remove(ctx, userID, productID)
	}

	if userID == "" {
		return nil, ErrUserRequired
	}
	if productID == "" {
		return nil, ErrProductRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.items(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			s.persist(ctx, userID, items)
			break
		}
	}

	out := make([]LineItem, len(items))
	copy(out, items)
	return out, nil
}

// Remove filters out the matching line item; absent is a no-op, not
// an error.
func (s *service) Remove(ctx context.Context, userID, productID string) ([]LineItem, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	if productID == "" {
		return nil, ErrProductRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.items(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := make([]LineItem, 0, len(items))
	removed := false
	for _, li := range items {
		if li.ProductID == productID {
			removed = true
			continue
		}
		filtered = append(filtered, li)
	}

	if removed {
		s.carts[userID] = filtered
		s.persist(ctx, userID, filtered)
	}

	out := make([]LineItem, len(filtered))
	copy(out, filtered)
	return out, nil
}

// Clear empties the collection, e.g. after checkout confirmation.
func (s *service) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUserRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = []LineItem{}
	s.persist(ctx, userID, []LineItem{})
	return nil
}
