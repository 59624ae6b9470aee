package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/akramov/telepos/internal/core/port"
)

// Store implements the catalog snapshot store on redis. Values are
// kept without TTL: a snapshot lives until overwritten or deleted.
type Store struct {
	client *Client
	prefix string
}

func NewStore(client *Client, prefix string) port.StorePort {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) key(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := s.client.Get(ctx, s.key(key))
	if err != nil {
		if err == goredis.Nil {
			return "", false, nil
		}
		return "", false, err
	}
	return data, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value string) error {
	return s.client.Set(ctx, s.key(key), value, 0)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key))
}
