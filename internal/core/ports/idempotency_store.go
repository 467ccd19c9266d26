package ports

import (
	"context"
	"time"
)

// StoredResponse is a previously returned HTTP response kept for replay.
type StoredResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// IdempotencyStore remembers responses keyed by scope (method and route) and
// the client supplied Idempotency-Key.
type IdempotencyStore interface {
	// Lookup returns (nil, nil) when nothing is stored for the key.
	Lookup(ctx context.Context, scope, key string) (*StoredResponse, error)
	Save(ctx context.Context, scope, key string, resp StoredResponse, ttl time.Duration) error
}
