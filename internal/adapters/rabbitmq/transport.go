package rabbitmq

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/akramov/telepos/internal/adapters/config"
	"github.com/akramov/telepos/internal/core/logger"
)

// BridgeTransport delivers submitted order messages to the chat bridge
// through a durable RabbitMQ exchange. A broken channel is dropped and
// redialed on the next publish attempt.
type BridgeTransport struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	config  config.BridgeConfig
}

func NewBridgeTransport(cfg config.BridgeConfig) (*BridgeTransport, error) {
	transport := &BridgeTransport{config: cfg}

	if err := transport.connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	return transport, nil
}

func (b *BridgeTransport) Name() string {
	return "bridge"
}

func (b *BridgeTransport) connect() error {
	conn, err := amqp.Dial(b.config.URL)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(b.config.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to declare exchange %s: %w", b.config.Exchange, err)
	}

	b.conn = conn
	b.channel = ch
	return nil
}

func (b *BridgeTransport) reconnect() error {
	if b.channel != nil {
		b.channel.Close()
		b.channel = nil
	}
	if b.conn != nil {
		b.conn.Close()
		b.conn = nil
	}
	return b.connect()
}

// Send publishes the order text and retries over a fresh connection
// when the channel has gone away.
func (b *BridgeTransport) Send(ctx context.Context, message string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	msg := amqp.Publishing{
		ContentType:  "text/plain",
		Body:         []byte(message),
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}

	var lastErr error
	for attempt := 0; attempt <= b.config.MaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(b.config.RetryDelay)
		}

		b.mu.Lock()

		if b.channel == nil {
			if err := b.reconnect(); err != nil {
				b.mu.Unlock()
				lastErr = fmt.Errorf("reconnect failed: %w", err)
				logger.Error(ctx, "send: reconnect failed", err, map[string]any{
					"attempt": attempt + 1,
				})
				continue
			}
		}

		err := b.channel.PublishWithContext(ctx, b.config.Exchange, b.config.RoutingKey, false, false, msg)
		if err != nil {
			b.channel = nil
			b.mu.Unlock()
			lastErr = err
			logger.Error(ctx, "send: publish failed", err, map[string]any{
				"attempt": attempt + 1,
			})
			continue
		}

		b.mu.Unlock()
		return nil
	}

	return fmt.Errorf("failed to publish after %d attempts: %w", b.config.MaxRetries+1, lastErr)
}

func (b *BridgeTransport) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var errs []error
	if b.channel != nil {
		if err := b.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing channel: %w", err))
		}
		b.channel = nil
	}
	if b.conn != nil {
		if err := b.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing connection: %w", err))
		}
		b.conn = nil
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing RabbitMQ: %v", errs)
	}
	return nil
}

func (b *BridgeTransport) HealthCheck() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn == nil || b.conn.IsClosed() {
		return fmt.Errorf("connection is closed")
	}
	if b.channel == nil {
		return fmt.Errorf("channel is nil")
	}
	return nil
}
