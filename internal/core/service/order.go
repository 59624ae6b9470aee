package service

import (
	"context"

	"github.com/akramov/telepos/internal/core/domain"
	"github.com/akramov/telepos/internal/core/logger"
	"github.com/akramov/telepos/internal/core/port"
)

// OrderService turns the cart into a receipt or an outbound order
// message. The transport variant (bridge or local fallback) is picked
// once at startup.
type OrderService struct {
	cart      *CartService
	transport port.TransportPort
}

func NewOrderService(cart *CartService, transport port.TransportPort) *OrderService {
	return &OrderService{cart: cart, transport: transport}
}

// Receipt formats the current cart and clears it. The returned text
// carries explicit "\n" breaks; display layers substitute their own.
func (s *OrderService) Receipt(ctx context.Context) (string, float64) {
	lines := s.cart.Lines()
	text, amount := domain.FormatReceipt(lines)

	s.cart.Clear(ctx)
	logger.Info(ctx, "order: receipt produced", map[string]any{
		"lines":  len(lines),
		"amount": amount,
	})
	return text, amount
}

// BuildMessage serializes the cart without side effects.
func (s *OrderService) BuildMessage() string {
	return domain.BuildOrderMessage(s.cart.Lines())
}

// Submit hands the order message to the transport. Delivery problems
// are logged and reported through the delivered flag; the message is
// always returned so the caller can surface it locally. Submit never
// fails.
func (s *OrderService) Submit(ctx context.Context) (message string, delivered bool) {
	message = s.BuildMessage()

	if err := s.transport.Send(ctx, message); err != nil {
		logger.Warn(ctx, "order: transport send failed, surfacing locally", map[string]any{
			"transport": s.transport.Name(),
			"error":     err.Error(),
		})
		return message, false
	}

	logger.Info(ctx, "order: submitted", map[string]any{"transport": s.transport.Name()})
	return message, true
}
