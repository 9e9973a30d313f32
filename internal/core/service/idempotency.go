package service

import "context"

const (
	scopeRooms     = "rooms"
	scopeCustomers = "customers"
)

// noopIdempotency is used when no idempotency store is configured.
type noopIdempotency struct{}

func (noopIdempotency) Lookup(context.Context, string, string) (string, bool, error) {
	return "", false, nil
}

func (noopIdempotency) Remember(context.Context, string, string, string) error {
	return nil
}

// noopMetrics is used when no metrics recorder is configured.
type noopMetrics struct{}

func (noopMetrics) LoginAttempt(string)   {}
func (noopMetrics) EntityOp(string, string) {}
