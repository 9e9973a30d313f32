package ports

// Metrics records the service-level counters.
type Metrics interface {
	// LoginAttempt counts one login; result is "success" or "rejected".
	LoginAttempt(result string)
	// EntityOp counts one successful mutation of entity ("rooms", "customers").
	EntityOp(entity, op string)
}
