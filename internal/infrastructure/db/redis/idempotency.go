package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/user-roles-api/internal/core/ports"
)

const defaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStore keeps successful POST responses so retries carrying the
// same Idempotency-Key can be replayed.
// Key format: idempotency:<scope>:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the stored response for key, or nil when none exists.
func (s *IdempotencyStore) Lookup(ctx context.Context, scope, key string) (*ports.StoredResponse, error) {
	raw, err := s.client.Get(ctx, s.key(scope, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("idempotency lookup: %w", err)
	}

	var resp ports.StoredResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("idempotency decode: %w", err)
	}
	return &resp, nil
}

// Save records resp under key. The first writer wins: a concurrent retry
// that finished later does not overwrite it.
func (s *IdempotencyStore) Save(ctx context.Context, scope, key string, resp ports.StoredResponse, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("idempotency encode: %w", err)
	}
	if err := s.client.SetNX(ctx, s.key(scope, key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("idempotency save: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(scope, key string) string {
	return fmt.Sprintf("idempotency:%s:%s", scope, key)
}
