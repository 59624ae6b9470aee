package local

import (
	"context"
	"testing"
)

func TestFallbackTransport(t *testing.T) {
	ctx := context.Background()

	t.Run("should never fail to send", func(t *testing.T) {
		transport := NewFallbackTransport()

		if err := transport.Send(ctx, "Ваш заказ:\n\nПлов x 2 (64000 сум)\n\nИтого: 64000 сум"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("should remember the last message", func(t *testing.T) {
		transport := NewFallbackTransport()

		_ = transport.Send(ctx, "first")
		_ = transport.Send(ctx, "second")

		if got := transport.LastMessage(); got != "second" {
			t.Errorf("expected second, got %s", got)
		}
	})

	t.Run("should return empty before any send", func(t *testing.T) {
		transport := NewFallbackTransport()

		if got := transport.LastMessage(); got != "" {
			t.Errorf("expected empty message, got %s", got)
		}
	})
}
