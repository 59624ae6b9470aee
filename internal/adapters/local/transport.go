// Package local provides a fallback order transport for environments
// without a chat bridge, such as local development and browser preview.
package local

import (
	"context"
	"sync"

	"github.com/akramov/telepos/internal/core/logger"
)

// FallbackTransport logs the order text instead of forwarding it. It
// keeps the last message so the HTTP layer can show what would have
// been sent.
type FallbackTransport struct {
	mu   sync.Mutex
	last string
}

func NewFallbackTransport() *FallbackTransport {
	return &FallbackTransport{}
}

func (f *FallbackTransport) Name() string {
	return "local"
}

func (f *FallbackTransport) Send(ctx context.Context, message string) error {
	f.mu.Lock()
	f.last = message
	f.mu.Unlock()

	logger.Info(ctx, "order message (no bridge configured)", map[string]any{
		"message": message,
	})
	return nil
}

// LastMessage returns the most recently sent order text, or an empty
// string when nothing has been sent.
func (f *FallbackTransport) LastMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}
