package service

import (
	"context"
	"math"
	"sync"

	"github.com/akramov/telepos/internal/core/domain"
	"github.com/akramov/telepos/internal/core/logger"
	"github.com/akramov/telepos/internal/core/serviceerrors"
)

// CartService owns the single in-memory cart. Lines are value
// snapshots: once added they live their own life regardless of what
// happens to the catalog.
type CartService struct {
	mu      sync.Mutex
	cart    *domain.Cart
	catalog *CatalogService
}

func NewCartService(catalog *CatalogService) *CartService {
	return &CartService{
		cart:    domain.NewCart(),
		catalog: catalog,
	}
}

// AddOrIncrement adds the product to the cart or bumps its quantity
// by one.
func (s *CartService) AddOrIncrement(ctx context.Context, id domain.ID) (domain.CartLine, error) {
	product, ok := s.catalog.Get(id)
	if !ok {
		return domain.CartLine{}, serviceerrors.NewNotFoundError("товар не найден")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.AddOrIncrement(product)
	line, _ := s.cart.Get(id)
	logger.Debug(ctx, "cart: line incremented", map[string]any{"product_id": id, "quantity": line.Quantity})
	return line, nil
}

// Increment bumps an existing line without consulting the catalog, so
// it keeps working after the product was deleted upstream.
func (s *CartService) Increment(ctx context.Context, id domain.ID) (domain.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.cart.Get(id)
	if !ok {
		return domain.CartLine{}, serviceerrors.NewNotFoundError("позиция не найдена")
	}
	s.cart.SetQuantity(id, line.Quantity+1)
	line, _ = s.cart.Get(id)
	return line, nil
}

// Decrement lowers the quantity by one; reaching zero removes the line.
func (s *CartService) Decrement(ctx context.Context, id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.Decrement(id) {
		return serviceerrors.NewNotFoundError("позиция не найдена")
	}
	return nil
}

// SetQuantity applies the validated-quantity contract: zero removes
// the line, negatives and NaN are rejected leaving the line untouched.
func (s *CartService) SetQuantity(ctx context.Context, id domain.ID, qty float64) error {
	if math.IsNaN(qty) || math.IsInf(qty, 0) || qty < 0 {
		return serviceerrors.NewValidationError("некорректное количество")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.SetQuantity(id, qty) {
		return serviceerrors.NewNotFoundError("позиция не найдена")
	}
	return nil
}

// SetPrice overwrites the line price. Negative and NaN prices are
// rejected as a no-op. The stored value is not rounded; rounding
// happens at display and total time.
func (s *CartService) SetPrice(ctx context.Context, id domain.ID, price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return serviceerrors.NewValidationError("некорректная цена")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.SetPrice(id, price) {
		return serviceerrors.NewNotFoundError("позиция не найдена")
	}
	return nil
}

func (s *CartService) Remove(ctx context.Context, id domain.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(id)
}

func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	logger.Debug(ctx, "cart: cleared", nil)
}

func (s *CartService) Line(id domain.ID) (domain.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Get(id)
}

func (s *CartService) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// setQuantityDirect writes a best-effort value without the validation
// contract. Used by the live inline-edit path only; never deletes.
func (s *CartService) setQuantityDirect(id domain.ID, qty float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if qty <= 0 {
		return
	}
	s.cart.SetQuantity(id, qty)
}

func (s *CartService) setPriceDirect(id domain.ID, price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if price < 0 {
		return
	}
	s.cart.SetPrice(id, price)
}

// removeLine is the typed-zero deletion path shared by the entry
// controller's commit and finalize.
func (s *CartService) removeLine(id domain.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(id)
}
