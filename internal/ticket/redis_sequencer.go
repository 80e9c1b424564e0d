package ticket

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Key holding the ticket counter. The stored value is the count of numbers
// issued so far, so INCR yields 1 for the first ticket, which is number 0.
const counterKey = "loja:orders:ticket_seq"

// RedisSequencer assigns ticket numbers through an atomic Redis INCR, which
// keeps them unique across every process sharing the same Redis.
type RedisSequencer struct {
	client *redis.Client
}

// NewRedisSequencer creates a RedisSequencer on top of an existing client.
func NewRedisSequencer(client *redis.Client) *RedisSequencer {
	return &RedisSequencer{client: client}
}

// Next returns the next ticket number.
func (s *RedisSequencer) Next(ctx context.Context) (int, error) {
	n, err := s.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment ticket counter: %w", err)
	}
	return int(n - 1), nil
}

// Seed aligns the counter with an existing order collection so the next
// issued ticket is next. It only writes when the key is absent; a counter
// that is already live wins.
func (s *RedisSequencer) Seed(ctx context.Context, next int) error {
	if _, err := s.client.SetNX(ctx, counterKey, next, 0).Result(); err != nil {
		return fmt.Errorf("failed to seed ticket counter: %w", err)
	}
	return nil
}
