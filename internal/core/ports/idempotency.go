package ports

import "context"

// IdempotencyStore remembers which storage id a client-supplied
// Idempotency-Key produced, so retried creates return the same id.
type IdempotencyStore interface {
	Lookup(ctx context.Context, scope, key string) (id string, found bool, err error)
	Remember(ctx context.Context, scope, key, id string) error
}
