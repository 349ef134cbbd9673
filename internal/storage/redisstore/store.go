package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	domainErrors "github.com/grocermart/partnersync/internal/domain/errors"
	"github.com/grocermart/partnersync/internal/domain/model"
)

const keyPrefix = "simorder:"

// Store keeps simulated orders in Redis under a TTL. Entries are never
// authoritative: they expire on their own and can be dropped at any time
// without affecting the purchase order they were projected from.
type Store struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, redisURI string, ttl time.Duration, logger *slog.Logger) (*Store, error) {
	opt, err := redis.ParseURL(redisURI)
	if err != nil {
		return nil, fmt.Errorf("parse redis uri: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return NewWithClient(rdb, ttl, logger), nil
}

// NewWithClient wraps an existing client, mainly for tests.
func NewWithClient(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{rdb: rdb, ttl: ttl, logger: logger}
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.rdb.Close()
}

func key(id string) string {
	return keyPrefix + id
}

// Save stores the simulated order with the configured TTL.
func (s *Store) Save(ctx context.Context, order *model.SimulatedOrder) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal simulated order: %w", err)
	}
	if err := s.rdb.Set(ctx, key(order.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store simulated order: %w", err)
	}
	return nil
}

// Get loads a simulated order by id.
func (s *Store) Get(ctx context.Context, id string) (*model.SimulatedOrder, error) {
	val, err := s.rdb.Get(ctx, key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("load simulated order: %w", err)
	}

	var order model.SimulatedOrder
	if err := json.Unmarshal([]byte(val), &order); err != nil {
		return nil, fmt.Errorf("unmarshal simulated order: %w", err)
	}
	return &order, nil
}

// Delete removes a simulated order. Deleting an absent id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("delete simulated order: %w", err)
	}
	return nil
}

// DeleteAll removes every simulated order currently stored.
func (s *Store) DeleteAll(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("scan simulated orders: %w", err)
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("delete simulated orders: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
