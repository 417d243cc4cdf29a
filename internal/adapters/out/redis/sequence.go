// Package redis provides an order number allocator backed by Redis counters.
//
// Each day prefix owns the key order_seq:{prefix}. The key is seeded from the
// greatest order number already stored, so switching allocators never reissues
// a number, and it expires once the day can no longer allocate.
package redis

import (
	"context"
	"fmt"
	"time"

	"sales/internal/core/domain/services"

	goredis "github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces the day counters.
const KeyPrefix = "order_seq:"

// DefaultTTL keeps a day counter for a week after its last allocation.
const DefaultTTL = 7 * 24 * time.Hour

// nextSequenceScript seeds and increments a day counter atomically.
// KEYS[1] = counter key
// ARGV[1] = seed, the last sequence already used
// ARGV[2] = ttl in milliseconds
var nextSequenceScript = goredis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
    redis.call("SET", KEYS[1], ARGV[1])
end
local next = redis.call("INCR", KEYS[1])
redis.call("PEXPIRE", KEYS[1], ARGV[2])
return next
`)

// NumberSeeder reports the greatest stored order number with a prefix.
// ports.OrderRepository satisfies it.
type NumberSeeder interface {
	MaxOrderNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}

// OrderNumberSequence implements ports.OrderNumberSequence with Redis INCR.
// Allocation happens outside the database transaction, so an order that rolls
// back leaves a gap in its day.
type OrderNumberSequence struct {
	client goredis.UniversalClient
	seeder NumberSeeder
	ttl    time.Duration
}

func NewOrderNumberSequence(client goredis.UniversalClient, seeder NumberSeeder, ttl time.Duration) *OrderNumberSequence {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &OrderNumberSequence{client: client, seeder: seeder, ttl: ttl}
}

// NewClient creates a client for a single Redis node.
func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (s *OrderNumberSequence) Next(ctx context.Context, dayPrefix string) (int, error) {
	key := KeyPrefix + dayPrefix

	seed, err := s.seed(ctx, key, dayPrefix)
	if err != nil {
		return 0, err
	}

	next, err := nextSequenceScript.Run(ctx, s.client, []string{key}, seed, s.ttl.Milliseconds()).Int()
	if err != nil {
		return 0, fmt.Errorf("redis sequence error: %w", err)
	}
	return next, nil
}

// seed reads the stored maximum only when the day counter does not exist yet.
func (s *OrderNumberSequence) seed(ctx context.Context, key, dayPrefix string) (int, error) {
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis sequence error: %w", err)
	}
	if exists > 0 {
		return 0, nil
	}

	maxNumber, err := s.seeder.MaxOrderNumberWithPrefix(ctx, dayPrefix)
	if err != nil {
		return 0, err
	}
	return services.LastSequence(maxNumber)
}
